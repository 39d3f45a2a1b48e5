// Package promise implements Promises/A+-style deferred values
// (https://promisesaplus.com/) for Go.
//
// A Promise starts out pending and settles exactly once, either fulfilled with
// a value or rejected with an error. Handlers registered through Then, Catch
// and ThenCatch run on the promise's Scheduler, never inline in the call that
// registered them, and in registration order. Resolving with a value that
// implements Thenable (or with another *Promise) adopts that value's eventual
// settlement instead of fulfilling with it directly.
package promise

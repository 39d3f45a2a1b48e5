package promise

import "time"

type State string

const (
	StatePending   = State("pending")
	StateFulfilled = State("fulfilled")
	StateRejected  = State("rejected")
)

type Resolver func(value any)
type Rejector func(reason error)
type FulfillHandler func(value any) (result any, err error)
type RejectHandler func(reason error) (result any, err error)

// Thenable is any value that reports its eventual outcome through a pair of
// settlement callbacks. Values implementing it are adopted during resolution
// instead of being used as plain fulfillment values: the adopting promise
// settles the way the thenable does, with a first-call-wins guard against
// implementations that call back more than once.
type Thenable interface {
	Then(resolve Resolver, reject Rejector)
}

// Scheduler defers task execution to a later turn. Implementations must never
// run task inline in the caller's stack and must preserve FIFO order among
// tasks handed to them during the same synchronous phase.
type Scheduler interface {
	Schedule(task func())
}

type Promiser interface {
	Then(onFulfilled FulfillHandler) *Promise
	Catch(onRejected RejectHandler) *Promise
	ThenCatch(onFulfilled FulfillHandler, onRejected RejectHandler) *Promise
	Done(onFulfilled FulfillHandler, onRejected RejectHandler)
	Delay(duration time.Duration) *Promise
	Await() (any, error)
	State() State
	Fulfilled() bool
	Rejected() bool
}

package promise

// Deferred pairs a Promise with imperative settlement triggers, for callers
// to whom the resolver-function style is inconvenient. The triggers are the
// same first-call-wins pair a resolver would receive: whichever fires first
// settles the promise, later calls are no-ops.
type Deferred struct {
	promise *Promise
	resolve Resolver
	reject  Rejector
}

// Defer creates a Deferred on the default Scheduler.
func Defer() Deferred {
	return DeferOn(nil)
}

// DeferOn creates a Deferred on the given Scheduler; nil selects the default.
func DeferOn(sched Scheduler) Deferred {
	p := newPromise(sched)
	resolve, reject := p.triggers()

	return Deferred{
		promise: p,
		resolve: resolve,
		reject:  reject,
	}
}

// Promise exposes the underlying Promise for chaining.
func (d Deferred) Promise() *Promise {
	return d.promise
}

func (d Deferred) Resolve(value any) {
	d.resolve(value)
}

func (d Deferred) Reject(reason error) {
	d.reject(reason)
}

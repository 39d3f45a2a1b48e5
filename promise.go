package promise

import (
	"sync"
	"time"
)

// Promise is the eventual result of an asynchronous operation. It is created
// pending and settles exactly once: pending→fulfilled or pending→rejected,
// never reversed, never repeated. Observers registered while pending are
// notified in registration order once the promise settles.
type Promise struct {
	mutex     sync.Mutex
	state     State
	value     any
	err       error
	observers []*observer
	sched     Scheduler
	settled   chan struct{}
}

// New creates a Promise on the default Scheduler and invokes resolver
// synchronously with a first-call-wins resolve/reject trigger pair.
func New(resolver func(resolve Resolver, reject Rejector)) *Promise {
	return NewOn(nil, resolver)
}

// NewOn is New with an explicit Scheduler; a nil sched selects the default.
// A nil resolver panics with ErrMissingResolver before any Promise exists.
// A panic inside the resolver rejects the promise, unless it already settled.
func NewOn(sched Scheduler, resolver func(resolve Resolver, reject Rejector)) *Promise {
	if nil == resolver {
		panic(ErrMissingResolver)
	}

	p := newPromise(sched)
	resolve, reject := p.triggers()

	func() {
		defer func() {
			if r := recover(); nil != r {
				reject(asError(r))
			}
		}()

		resolver(resolve, reject)
	}()

	return p
}

// Pending creates a Promise with no resolver attached. It settles only
// through a Deferred trigger or combinator-internal resolution.
func Pending() *Promise {
	return newPromise(nil)
}

func newPromise(sched Scheduler) *Promise {
	if nil == sched {
		sched = defaultScheduler
	}

	return &Promise{
		state:   StatePending,
		sched:   sched,
		settled: make(chan struct{}),
	}
}

// triggers returns a resolve/reject pair sharing a single first-call-wins
// latch: whichever trigger fires first settles the promise, every later call
// through either trigger is a no-op.
func (p *Promise) triggers() (Resolver, Rejector) {
	var once sync.Once

	resolve := func(value any) {
		once.Do(func() { p.resolveWith(value) })
	}
	reject := func(reason error) {
		once.Do(func() { p.rejectWith(reason) })
	}

	return resolve, reject
}

func (p *Promise) Then(onFulfilled FulfillHandler) *Promise {
	return p.registerHandlers(onFulfilled, nil)
}

func (p *Promise) Catch(onRejected RejectHandler) *Promise {
	return p.registerHandlers(nil, onRejected)
}

// ThenCatch registers both handlers at once. A nil handler passes the
// matching outcome through to the returned promise unchanged.
func (p *Promise) ThenCatch(onFulfilled FulfillHandler, onRejected RejectHandler) *Promise {
	return p.registerHandlers(onFulfilled, onRejected)
}

// Done consumes the end of a chain. A rejection that survives the handlers is
// escalated on a later scheduler turn through the uncaught-rejection handler
// instead of being silently dropped. Done returns nothing and is not
// chainable.
func (p *Promise) Done(onFulfilled FulfillHandler, onRejected RejectHandler) {
	p.registerHandlers(onFulfilled, onRejected).Catch(func(reason error) (any, error) {
		p.sched.Schedule(func() {
			uncaughtHandler()(reason)
		})

		return nil, nil
	})
}

// Delay reproduces this promise's settlement, kind preserved, once duration
// has elapsed after the settlement.
func (p *Promise) Delay(duration time.Duration) *Promise {
	return p.ThenCatch(
		func(value any) (any, error) {
			deferred := DeferOn(p.sched)
			time.AfterFunc(duration, func() { deferred.Resolve(value) })

			return deferred.Promise(), nil
		},
		func(reason error) (any, error) {
			deferred := DeferOn(p.sched)
			time.AfterFunc(duration, func() { deferred.Reject(reason) })

			return deferred.Promise(), nil
		},
	)
}

// Await blocks until the promise settles and returns its outcome. A promise
// that never settles blocks forever.
func (p *Promise) Await() (any, error) {
	<-p.settled

	return p.value, p.err
}

func (p *Promise) State() State {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.state
}

func (p *Promise) Fulfilled() bool {
	return StateFulfilled == p.State()
}

func (p *Promise) Rejected() bool {
	return StateRejected == p.State()
}

func (p *Promise) registerHandlers(onFulfilled FulfillHandler, onRejected RejectHandler) *Promise {
	next := newPromise(p.sched)

	p.addObserver(&observer{
		next:        next,
		onFulfilled: onFulfilled,
		onRejected:  onRejected,
	})

	return next
}

// addObserver queues o while pending, or dispatches the recorded settlement
// to it right away. Dispatch always goes through the scheduler.
func (p *Promise) addObserver(o *observer) {
	p.mutex.Lock()

	if StatePending == p.state {
		p.observers = append(p.observers, o)
		p.mutex.Unlock()

		return
	}

	state, value, err := p.state, p.value, p.err
	p.mutex.Unlock()

	o.notify(state, value, err)
}

// resolveWith implements the resolution procedure: resolving with the promise
// itself rejects, a *Promise or Thenable value is adopted, anything else
// fulfills as-is. No-op once settled; the pending check lives in settle
// because adoption can re-enter asynchronously.
func (p *Promise) resolveWith(value any) {
	switch v := value.(type) {
	case *Promise:
		if v == p {
			p.rejectWith(ErrSelfResolution)

			return
		}

		// Adopt by registering a handler-less observer: whatever v settles
		// to flows back into this same resolution procedure.
		v.addObserver(&observer{next: p})

	case Thenable:
		p.adopt(v)

	default:
		p.settle(StateFulfilled, value, nil)
	}
}

func (p *Promise) rejectWith(reason error) {
	p.settle(StateRejected, nil, reason)
}

// adopt chases a foreign thenable. The latch makes each adoption single-shot:
// a thenable that calls back more than once, or both ways, only takes effect
// once. A panic out of Then rejects, unless the thenable called back first.
func (p *Promise) adopt(t Thenable) {
	var once sync.Once

	defer func() {
		if r := recover(); nil != r {
			once.Do(func() { p.rejectWith(asError(r)) })
		}
	}()

	t.Then(
		func(value any) {
			once.Do(func() { p.resolveWith(value) })
		},
		func(reason error) {
			once.Do(func() { p.rejectWith(reason) })
		},
	)
}

// settle performs the single pending→settled transition and notifies the
// observers in registration order. Later calls are no-ops.
func (p *Promise) settle(state State, value any, err error) {
	p.mutex.Lock()

	if StatePending != p.state {
		p.mutex.Unlock()

		return
	}

	p.state = state
	p.value = value
	p.err = err

	observers := p.observers
	p.observers = nil

	p.mutex.Unlock()

	close(p.settled)

	for _, o := range observers {
		o.notify(state, value, err)
	}
}

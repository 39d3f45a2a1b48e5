package promise

// observer pairs a downstream promise with the handlers registered for it.
// Created once per registration, owned by the upstream promise's observer
// queue while pending, then handed to the scheduler exactly once. Never
// mutated after creation.
type observer struct {
	next        *Promise
	onFulfilled FulfillHandler
	onRejected  RejectHandler
}

// notify schedules the dispatch of an upstream settlement. Handlers never run
// inline in the stack that settled the upstream promise.
func (o *observer) notify(state State, value any, reason error) {
	o.next.sched.Schedule(func() {
		if StateFulfilled == state {
			o.fulfill(value)
		} else {
			o.reject(reason)
		}
	})
}

func (o *observer) fulfill(value any) {
	if nil == o.onFulfilled {
		o.next.resolveWith(value)

		return
	}

	o.complete(func() (any, error) { return o.onFulfilled(value) })
}

func (o *observer) reject(reason error) {
	if nil == o.onRejected {
		o.next.rejectWith(reason)

		return
	}

	o.complete(func() (any, error) { return o.onRejected(reason) })
}

// complete runs a handler inside a failure boundary and settles the
// downstream promise with its outcome: an error return or a panic rejects,
// anything else resolves, chasing thenables as needed. A handler returning
// the downstream promise itself rejects it with ErrSelfResolution.
func (o *observer) complete(handler func() (any, error)) {
	result, err := protect(handler)
	if nil != err {
		o.next.rejectWith(err)

		return
	}

	o.next.resolveWith(result)
}

package promise

import (
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
)

// Resolve returns value as a Promise. A *Promise is returned unchanged
// (already-wrapped values are not wrapped again); a Thenable is adopted; any
// other value fulfills a fresh promise immediately.
func Resolve(value any) *Promise {
	if p, ok := value.(*Promise); ok {
		return p
	}

	p := Pending()
	p.resolveWith(value)

	return p
}

// Reject returns a Promise rejected with reason. There is no thenable
// adoption on rejection paths.
func Reject(reason error) *Promise {
	p := Pending()
	p.rejectWith(reason)

	return p
}

// All resolves with every item's fulfillment value, in input order regardless
// of completion order, once all of them fulfilled. It rejects with the first
// rejection reason; later outcomes are no-ops on the already-settled
// aggregate. Plain values count as already fulfilled. All of nothing resolves
// with an empty slice.
func All(items ...any) *Promise {
	aggregate := Pending()

	if 0 == len(items) {
		aggregate.resolveWith([]any{})

		return aggregate
	}

	results := make([]any, len(items))
	remaining := int64(len(items))

	for i, item := range items {
		i := i

		Resolve(item).ThenCatch(
			func(value any) (any, error) {
				results[i] = value

				if 0 == atomic.AddInt64(&remaining, -1) {
					aggregate.resolveWith(results)
				}

				return nil, nil
			},
			func(reason error) (any, error) {
				aggregate.rejectWith(reason)

				return nil, nil
			},
		)
	}

	return aggregate
}

// Race settles the way whichever item settles first does, kind preserved.
// Later settlements are no-ops under the exactly-once rule. Race of nothing
// stays pending forever.
func Race(items ...any) *Promise {
	aggregate := Pending()

	for _, item := range items {
		Resolve(item).ThenCatch(
			func(value any) (any, error) {
				aggregate.resolveWith(value)

				return nil, nil
			},
			func(reason error) (any, error) {
				aggregate.rejectWith(reason)

				return nil, nil
			},
		)
	}

	return aggregate
}

// Any resolves with the first fulfillment value. Once every item rejected, it
// rejects with ErrNoneFulfilled heading an aggregate of all the reasons, in
// input order. Any of nothing rejects with ErrNoneFulfilled alone.
func Any(items ...any) *Promise {
	aggregate := Pending()

	if 0 == len(items) {
		aggregate.rejectWith(ErrNoneFulfilled)

		return aggregate
	}

	reasons := make([]error, len(items))
	remaining := int64(len(items))

	for i, item := range items {
		i := i

		Resolve(item).ThenCatch(
			func(value any) (any, error) {
				aggregate.resolveWith(value)

				return nil, nil
			},
			func(reason error) (any, error) {
				reasons[i] = reason

				if 0 == atomic.AddInt64(&remaining, -1) {
					aggregate.rejectWith(multierror.Append(ErrNoneFulfilled, reasons...))
				}

				return nil, nil
			},
		)
	}

	return aggregate
}

// AllSettled waits for every item to settle and fulfills with the outcomes as
// a []Result, in input order. It never rejects.
func AllSettled(items ...any) *Promise {
	aggregate := Pending()

	if 0 == len(items) {
		aggregate.resolveWith([]Result{})

		return aggregate
	}

	results := make([]Result, len(items))
	remaining := int64(len(items))

	record := func(i int, r Result) {
		results[i] = r

		if 0 == atomic.AddInt64(&remaining, -1) {
			aggregate.resolveWith(results)
		}
	}

	for i, item := range items {
		i := i

		Resolve(item).ThenCatch(
			func(value any) (any, error) {
				record(i, fulfilledResult(value))

				return nil, nil
			},
			func(reason error) (any, error) {
				record(i, rejectedResult(reason))

				return nil, nil
			},
		)
	}

	return aggregate
}

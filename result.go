package promise

// Result is a settled outcome: a fulfillment value or a rejection reason.
// AllSettled reports one Result per input item.
type Result struct {
	value any
	err   error
}

func fulfilledResult(value any) Result {
	return Result{value: value}
}

func rejectedResult(reason error) Result {
	return Result{err: reason}
}

// Value returns the fulfillment value; nil for a rejected Result.
func (r Result) Value() any {
	return r.value
}

// Err returns the rejection reason; nil for a fulfilled Result.
func (r Result) Err() error {
	return r.err
}

func (r Result) Fulfilled() bool {
	return nil == r.err
}

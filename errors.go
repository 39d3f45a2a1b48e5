package promise

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrSelfResolution is the rejection reason of a promise that was asked
	// to resolve with itself; adopting would wait on its own settlement
	// forever.
	ErrSelfResolution = errors.New("promise: cannot resolve a promise with itself")

	// ErrMissingResolver is the panic value of New when given a nil resolver.
	ErrMissingResolver = errors.New("promise: resolver must not be nil")

	// ErrNoneFulfilled rejects Any when no item fulfilled. When items were
	// given, it heads the aggregate of their rejection reasons.
	ErrNoneFulfilled = errors.New("promise: no promise was fulfilled")
)

// protect runs fn, converting a panic into an error return.
func protect(fn func() (any, error)) (result any, err error) {
	defer func() {
		if r := recover(); nil != r {
			err = asError(r)
		}
	}()

	return fn()
}

func asError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}

	return fmt.Errorf("%+v", recovered)
}

var (
	uncaughtMutex sync.RWMutex
	uncaughtFn    func(reason error)
)

// SetUncaughtRejectionHandler replaces the hook invoked when a rejection
// reaches the end of a Done chain. Passing nil restores the default, which
// panics with the reason on the scheduler goroutine.
func SetUncaughtRejectionHandler(fn func(reason error)) {
	uncaughtMutex.Lock()
	uncaughtFn = fn
	uncaughtMutex.Unlock()
}

func uncaughtHandler() func(reason error) {
	uncaughtMutex.RLock()
	defer uncaughtMutex.RUnlock()

	if nil == uncaughtFn {
		return func(reason error) { panic(reason) }
	}

	return uncaughtFn
}

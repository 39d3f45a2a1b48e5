// Package instrumented provides drop-in observability wrappers for the
// promise package, logging through logr. The core package stays log-free;
// callers opt in by building promises on an instrumented Scheduler or by
// observing individual promises.
package instrumented

import (
	"github.com/go-logr/logr"

	"github.com/aplus-go/promise"
)

// Scheduler decorates a promise.Scheduler with per-task dispatch logging at
// verbosity 1. It preserves the wrapped scheduler's ordering and asynchrony
// guarantees.
type Scheduler struct {
	log   logr.Logger
	inner promise.Scheduler
}

// NewScheduler wraps inner; a nil inner wraps a fresh serial scheduler.
func NewScheduler(log logr.Logger, inner promise.Scheduler) *Scheduler {
	if nil == inner {
		inner = promise.NewSerialScheduler()
	}

	return &Scheduler{
		log:   log,
		inner: inner,
	}
}

func (s *Scheduler) Schedule(task func()) {
	s.log.V(1).Info("task scheduled")

	s.inner.Schedule(func() {
		s.log.V(1).Info("task running")

		task()
	})
}

// Observe attaches logging handlers to p and returns p for further chaining.
// The settlement itself is unaffected; fulfillments log at the default level,
// rejections log as errors.
func Observe(log logr.Logger, name string, p *promise.Promise) *promise.Promise {
	p.ThenCatch(
		func(value any) (any, error) {
			log.Info("promise fulfilled", "promise", name, "value", value)

			return nil, nil
		},
		func(reason error) (any, error) {
			log.Error(reason, "promise rejected", "promise", name)

			return nil, nil
		},
	)

	return p
}

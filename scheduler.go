package promise

import "sync"

// serialScheduler is the default Scheduler: a lazily started goroutine
// draining a FIFO queue in batches. Tasks scheduled during the same
// synchronous phase run in order, and never inline in the caller's stack. The
// goroutine exits when the queue drains and is restarted by the next
// Schedule.
type serialScheduler struct {
	mutex sync.Mutex
	queue []func()
	idle  bool
}

// NewSerialScheduler creates an independent serial FIFO scheduler. The
// package maintains one default instance; separate instances are useful to
// isolate chains from each other or to wrap with instrumentation.
func NewSerialScheduler() Scheduler {
	return &serialScheduler{idle: true}
}

var defaultScheduler = NewSerialScheduler()

func (s *serialScheduler) Schedule(task func()) {
	s.mutex.Lock()

	s.queue = append(s.queue, task)

	if s.idle {
		s.idle = false

		go s.drain()
	}

	s.mutex.Unlock()
}

func (s *serialScheduler) drain() {
	for {
		s.mutex.Lock()

		if 0 == len(s.queue) {
			s.idle = true
			s.mutex.Unlock()

			return
		}

		batch := s.queue
		s.queue = nil

		s.mutex.Unlock()

		for _, task := range batch {
			task()
		}
	}
}

package complaints

import (
	"sync"
	"time"
)

// Scheduler runs deferred tasks. Cancel reports whether the task was stopped
// before it ran.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) (cancel func() bool)
}

// TimerScheduler schedules tasks on the runtime timer.
type TimerScheduler struct{}

// Schedule runs task after delay on its own goroutine.
func (TimerScheduler) Schedule(delay time.Duration, task func()) func() bool {
	timer := time.AfterFunc(delay, task)
	return timer.Stop
}

// ManualScheduler queues tasks until Advance is called. Useful for tests and
// deterministic replays.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*manualTask
}

type manualTask struct {
	at        time.Duration
	task      func()
	cancelled bool
	done      bool
}

// NewManualScheduler builds a scheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule queues task to run once the clock passes delay.
func (s *ManualScheduler) Schedule(delay time.Duration, task func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := &manualTask{at: s.now + delay, task: task}
	s.tasks = append(s.tasks, entry)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if entry.done || entry.cancelled {
			return false
		}
		entry.cancelled = true
		return true
	}
}

// Advance moves the clock forward and runs every due task in schedule order.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	s.now += d
	var due []*manualTask
	pending := s.tasks[:0]
	for _, entry := range s.tasks {
		switch {
		case entry.cancelled:
		case entry.at <= s.now:
			entry.done = true
			due = append(due, entry)
		default:
			pending = append(pending, entry)
		}
	}
	s.tasks = pending
	s.mu.Unlock()

	for _, entry := range due {
		entry.task()
	}
	return len(due)
}

// Pending returns the number of queued, uncancelled tasks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, entry := range s.tasks {
		if !entry.cancelled {
			count++
		}
	}
	return count
}

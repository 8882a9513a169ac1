package invaders

import "time"

// TaskID identifies a scheduled task. The zero value never names a live task.
type TaskID uint64

type task struct {
	id       TaskID
	due      time.Duration
	period   time.Duration // Zero for one-shot tasks
	fn       func()
	canceled bool
}

// Scheduler runs periodic and one-shot callbacks against a virtual clock.
// Time only moves inside Advance, so every callback runs to completion before
// the next one starts and a seeded match replays identically.
type Scheduler struct {
	now    time.Duration
	nextID TaskID
	tasks  []*task
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every arms fn to run each period, first at now+period.
// Periods below one millisecond are raised to one millisecond.
func (s *Scheduler) Every(period time.Duration, fn func()) TaskID {
	if period < time.Millisecond {
		period = time.Millisecond
	}
	return s.add(period, period, fn)
}

// After arms fn to run once at now+delay.
func (s *Scheduler) After(delay time.Duration, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, fn)
}

func (s *Scheduler) add(delay, period time.Duration, fn func()) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, &task{
		id:     s.nextID,
		due:    s.now + delay,
		period: period,
		fn:     fn,
	})
	return s.nextID
}

// Cancel stops a task. A canceled task never runs again, even when it was
// due at the instant it got canceled. Unknown ids are ignored.
func (s *Scheduler) Cancel(id TaskID) {
	for i, t := range s.tasks {
		if t.id == id {
			t.canceled = true
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Active reports whether the task is still armed.
func (s *Scheduler) Active(id TaskID) bool {
	for _, t := range s.tasks {
		if t.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of armed tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Advance moves the clock forward by d, running every task that falls due.
// Tasks run in due-time order; ties run in the order they were armed.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.period > 0 {
			t.due += t.period
		} else {
			s.Cancel(t.id)
		}
		t.fn()
	}
	s.now = target
}

// nextDue returns the earliest live task due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *task {
	var best *task
	for _, t := range s.tasks {
		if t.canceled || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

package sched

import (
	"cmp"
	"slices"
)

// TaskID uniquely identifies a task in a workload.
type TaskID uint64

// Task represents one schedulable unit of simulated work.
type Task struct {
	ID      TaskID
	Arrival int64 // tick at which the task becomes eligible to run
	Burst   int64 // total ticks of work the task needs

	remaining int64 // work left; owned by a single scheduler run
}

// NewTask creates a task with its remaining time set to the full burst.
// NOTE: no validation happens here, malformed rows are dropped by the loader.
func NewTask(id TaskID, arrival, burst int64) Task {
	return Task{
		ID:        id,
		Arrival:   arrival,
		Burst:     burst,
		remaining: burst,
	}
}

// Remaining reports how many ticks of work are left.
func (t Task) Remaining() int64 { return t.remaining }

// Done reports whether the task has no work left.
func (t Task) Done() bool { return t.remaining <= 0 }

// run consumes at most n ticks of work and returns how many were used.
func (t *Task) run(n int64) int64 {
	if n > t.remaining {
		n = t.remaining
	}
	if n < 0 {
		n = 0
	}
	t.remaining -= n
	return n
}

// workingSet returns a private copy of tasks with remaining time reset,
// ordered by arrival. Equal arrivals keep their input order.
func workingSet(tasks []Task) []*Task {
	work := make([]*Task, len(tasks))
	for i := range tasks {
		t := tasks[i]
		t.remaining = t.Burst
		work[i] = &t
	}
	slices.SortStableFunc(work, func(a, b *Task) int {
		return cmp.Compare(a.Arrival, b.Arrival)
	})
	return work
}

// pending holds the tasks that have not arrived yet, in arrival order.
type pending struct {
	tasks []*Task
	next  int
}

func (p *pending) empty() bool { return p.next >= len(p.tasks) }

func (p *pending) peek() *Task {
	if p.empty() {
		return nil
	}
	return p.tasks[p.next]
}

// admit hands every task with Arrival <= now to fn, in arrival order.
func (p *pending) admit(now int64, fn func(*Task)) {
	for !p.empty() && p.tasks[p.next].Arrival <= now {
		fn(p.tasks[p.next])
		p.next++
	}
}

package sched

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// DefaultQuantum is the time slice used when none is configured.
const DefaultQuantum int64 = 2

// ErrInvalidQuantum is returned for a non-positive time slice.
var ErrInvalidQuantum = errors.New("quantum must be positive")

// RoundRobin is a time-sliced preemptive scheduler with a FIFO ready queue.
type RoundRobin struct {
	quantum int64
}

// NewRoundRobin creates a round robin scheduler with the given time slice.
func NewRoundRobin(quantum int64) (*RoundRobin, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
	}
	return &RoundRobin{quantum: quantum}, nil
}

func (*RoundRobin) Algorithm() Algorithm { return AlgorithmRR }

// Quantum returns the configured time slice.
func (s *RoundRobin) Quantum() int64 { return s.quantum }

// Schedule runs the round robin loop starting at the earliest arrival.
//
// A task that yields its slice goes to the back of the queue only after every
// task that arrived by the end of that slice has been admitted. The record of
// a task spans its final slice: Start is when that slice began, not the first
// dispatch.
func (s *RoundRobin) Schedule(tasks []Task) (*Result, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	work := workingSet(tasks)
	arrivals := &pending{tasks: work}
	clock := NewClock(work[0].Arrival)
	ready := linkedlistqueue.New()
	res := newResult(AlgorithmRR, len(tasks))
	res.Quantum = s.quantum

	admit := func(t *Task) {
		ready.Enqueue(t)
		res.emit(StatusEvent{Tick: clock.Now(), Kind: StatusArrive, TaskID: t.ID, Remaining: t.remaining})
	}
	arrivals.admit(clock.Now(), admit)

	for !arrivals.empty() || !ready.Empty() {
		v, ok := ready.Dequeue()
		if !ok {
			from := clock.Now()
			res.idle(from, clock.JumpTo(arrivals.peek().Arrival))
			arrivals.admit(clock.Now(), admit)
			continue
		}

		t := v.(*Task)
		start := clock.Now()
		res.emit(StatusEvent{Tick: start, Kind: StatusDispatch, TaskID: t.ID, Remaining: t.remaining})
		ran := t.run(s.quantum)
		now := clock.Advance(ran)

		if t.Done() {
			res.emit(StatusEvent{Tick: now, Kind: StatusFinish, TaskID: t.ID, Span: ran})
			res.complete(t.ID, start, now)
			arrivals.admit(now, admit)
			continue
		}

		res.emit(StatusEvent{Tick: now, Kind: StatusPreempt, TaskID: t.ID, Remaining: t.remaining, Span: ran})
		arrivals.admit(now, admit)
		ready.Enqueue(t)
	}

	res.IdleTicks = clock.Idle()
	return res, nil
}

package sched

import "github.com/emirpasic/gods/trees/redblacktree"

// SRTF always runs the arrived task with the least remaining work,
// re-evaluating the choice after every tick.
type SRTF struct{}

// NewSRTF creates a shortest-remaining-time-first scheduler.
func NewSRTF() *SRTF { return &SRTF{} }

func (*SRTF) Algorithm() Algorithm { return AlgorithmSRTF }

// Schedule runs the unit-time SRTF loop starting at the earliest arrival.
//
// The start of each record is reconstructed as finish - burst, so for a
// preempted task it is not the tick it was first dispatched.
func (s *SRTF) Schedule(tasks []Task) (*Result, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	work := workingSet(tasks)
	arrivals := &pending{tasks: work}
	clock := NewClock(work[0].Arrival)
	pool := newReadyPool()
	res := newResult(AlgorithmSRTF, len(tasks))

	admit := func(t *Task) {
		pool.push(t)
		res.emit(StatusEvent{Tick: clock.Now(), Kind: StatusArrive, TaskID: t.ID, Remaining: t.remaining})
	}

	// prev is the unfinished task that ran during the previous tick.
	var prev *Task
	var sliceStart int64

	for !arrivals.empty() || !pool.empty() {
		arrivals.admit(clock.Now(), admit)

		t, ok := pool.pop()
		if !ok {
			from := clock.Now()
			res.idle(from, clock.JumpTo(arrivals.peek().Arrival))
			continue
		}

		now := clock.Now()
		if t != prev {
			if prev != nil {
				res.emit(StatusEvent{Tick: now, Kind: StatusPreempt, TaskID: prev.ID, Remaining: prev.remaining, Span: now - sliceStart})
			}
			res.emit(StatusEvent{Tick: now, Kind: StatusDispatch, TaskID: t.ID, Remaining: t.remaining})
			sliceStart = now
		}

		now = clock.Advance(t.run(1))
		if t.Done() {
			res.emit(StatusEvent{Tick: now, Kind: StatusFinish, TaskID: t.ID, Span: now - sliceStart})
			res.complete(t.ID, now-t.Burst, now)
			prev = nil
			continue
		}

		pool.push(t)
		prev = t
	}

	res.IdleTicks = clock.Idle()
	return res, nil
}

// poolKey orders the ready pool by remaining work, then by insertion order.
type poolKey struct {
	remaining int64
	seq       uint64
}

// byRemaining implements the Comparator interface for red-black tree ordering.
func byRemaining(a, b any) int {
	ka, kb := a.(poolKey), b.(poolKey)
	switch {
	case ka.remaining < kb.remaining:
		return -1
	case ka.remaining > kb.remaining:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// readyPool holds arrived, unfinished tasks keyed by poolKey.
type readyPool struct {
	tree *redblacktree.Tree
	seq  uint64
}

func newReadyPool() *readyPool {
	return &readyPool{tree: redblacktree.NewWith(byRemaining)}
}

func (p *readyPool) push(t *Task) {
	p.seq++
	p.tree.Put(poolKey{remaining: t.remaining, seq: p.seq}, t)
}

// pop removes and returns the task with the least remaining work.
func (p *readyPool) pop() (*Task, bool) {
	node := p.tree.Left()
	if node == nil {
		return nil, false
	}
	p.tree.Remove(node.Key)
	return node.Value.(*Task), true
}

func (p *readyPool) empty() bool { return p.tree.Empty() }

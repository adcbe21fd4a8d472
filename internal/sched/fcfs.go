package sched

// FCFS runs tasks to completion in arrival order, without preemption.
type FCFS struct{}

// NewFCFS creates a first-come-first-served scheduler.
func NewFCFS() *FCFS { return &FCFS{} }

func (*FCFS) Algorithm() Algorithm { return AlgorithmFCFS }

// Schedule dispatches each task once at max(now, arrival). Idle gaps show up
// in the event trace only, never as a record.
func (s *FCFS) Schedule(tasks []Task) (*Result, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	res := newResult(AlgorithmFCFS, len(tasks))
	clock := NewClock(0)

	for _, t := range workingSet(tasks) {
		from := clock.Now()
		res.idle(from, clock.JumpTo(t.Arrival))

		start := clock.Now()
		res.emit(StatusEvent{Tick: start, Kind: StatusDispatch, TaskID: t.ID, Remaining: t.remaining})

		finish := clock.Advance(t.run(t.remaining))
		res.emit(StatusEvent{Tick: finish, Kind: StatusFinish, TaskID: t.ID, Span: finish - start})
		res.complete(t.ID, start, finish)
	}

	res.IdleTicks = clock.Idle()
	return res, nil
}

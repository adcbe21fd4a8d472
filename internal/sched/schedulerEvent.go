// internal/sched/schedulerEvent.go

package sched

// StatusKind represents the type of scheduler event
type StatusKind int

const (
	StatusArrive StatusKind = iota
	StatusDispatch
	StatusPreempt
	StatusFinish
	StatusIdle
)

// StatusEvent is emitted by a scheduler on every state change of a run.
type StatusEvent struct {
	Tick      int64
	Kind      StatusKind
	TaskID    TaskID
	Remaining int64 // remaining work after the event
	Span      int64 // slice length for Preempt/Finish, gap length for Idle
}

func (sk StatusKind) String() string {
	switch sk {
	case StatusArrive:
		return "Arrive"
	case StatusDispatch:
		return "Dispatch"
	case StatusPreempt:
		return "Preempt"
	case StatusFinish:
		return "Finish"
	case StatusIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// CompletionRecord is the (pid, start, finish) tuple a scheduler emits once
// per task.
type CompletionRecord struct {
	TaskID TaskID
	Start  int64
	Finish int64
}

// Result is the outcome of one scheduling run.
type Result struct {
	Algorithm Algorithm
	Records   []CompletionRecord
	Events    []StatusEvent
	IdleTicks int64
	Quantum   int64 // round robin time slice, zero otherwise
}

func newResult(alg Algorithm, n int) *Result {
	return &Result{
		Algorithm: alg,
		Records:   make([]CompletionRecord, 0, n),
	}
}

func (r *Result) emit(ev StatusEvent) {
	r.Events = append(r.Events, ev)
}

func (r *Result) idle(from, gap int64) {
	if gap <= 0 {
		return
	}
	r.emit(StatusEvent{Tick: from, Kind: StatusIdle, Span: gap})
}

func (r *Result) complete(id TaskID, start, finish int64) {
	r.Records = append(r.Records, CompletionRecord{TaskID: id, Start: start, Finish: finish})
}

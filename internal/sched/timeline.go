package sched

// Slice is one contiguous stretch of a Gantt chart.
type Slice struct {
	TaskID TaskID
	Start  int64
	Stop   int64
	Idle   bool
}

// Timeline folds the event trace into Gantt slices. Contiguous slices of the
// same task are merged.
func (r *Result) Timeline() []Slice {
	var (
		out     []Slice
		open    bool
		current Slice
	)
	add := func(s Slice) {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Stop == s.Start && last.Idle == s.Idle && last.TaskID == s.TaskID {
				last.Stop = s.Stop
				return
			}
		}
		out = append(out, s)
	}

	for _, ev := range r.Events {
		switch ev.Kind {
		case StatusDispatch:
			current = Slice{TaskID: ev.TaskID, Start: ev.Tick}
			open = true
		case StatusPreempt, StatusFinish:
			if !open || ev.TaskID != current.TaskID {
				continue
			}
			current.Stop = ev.Tick
			open = false
			if current.Stop > current.Start {
				add(current)
			}
		case StatusIdle:
			add(Slice{Start: ev.Tick, Stop: ev.Tick + ev.Span, Idle: true})
		}
	}
	return out
}

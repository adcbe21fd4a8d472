package sched

import (
	"errors"
	"fmt"
)

// ErrUnknownTask means a record names a pid that is not in the task set.
var ErrUnknownTask = errors.New("record references unknown task")

// Stats aggregates one scheduling run.
type Stats struct {
	Tasks           int
	TotalTurnaround int64
	TotalWaiting    int64
	AvgWaiting      float64
	AvgTurnaround   float64
	Makespan        int64   // last finish minus first arrival
	Throughput      float64 // tasks per tick of makespan
}

// TaskMetrics holds the derived timings of a single record.
type TaskMetrics struct {
	Task       Task
	Start      int64
	Finish     int64
	Turnaround int64
	Waiting    int64
}

// Statistics derives average waiting and turnaround time from the records of
// one run and the canonical, unmodified task set.
func Statistics(records []CompletionRecord, tasks []Task) (Stats, error) {
	if len(tasks) == 0 {
		return Stats{}, ErrNoTasks
	}

	var (
		turnaround int64
		bursts     int64
		lastFinish int64
		firstIn    = tasks[0].Arrival
	)
	for _, t := range tasks {
		bursts += t.Burst
		firstIn = min(firstIn, t.Arrival)
	}
	for _, rec := range records {
		t, err := lookup(tasks, rec.TaskID)
		if err != nil {
			return Stats{}, err
		}
		turnaround += rec.Finish - t.Arrival
		lastFinish = max(lastFinish, rec.Finish)
	}

	count := float64(len(tasks))
	waiting := turnaround - bursts
	st := Stats{
		Tasks:           len(tasks),
		TotalTurnaround: turnaround,
		TotalWaiting:    waiting,
		AvgWaiting:      float64(waiting) / count,
		AvgTurnaround:   float64(turnaround) / count,
	}
	if len(records) > 0 {
		st.Makespan = lastFinish - firstIn
	}
	if st.Makespan > 0 {
		st.Throughput = count / float64(st.Makespan)
	}
	return st, nil
}

// Metrics returns per-record turnaround and waiting time, in record order.
func Metrics(records []CompletionRecord, tasks []Task) ([]TaskMetrics, error) {
	out := make([]TaskMetrics, 0, len(records))
	for _, rec := range records {
		t, err := lookup(tasks, rec.TaskID)
		if err != nil {
			return nil, err
		}
		turnaround := rec.Finish - t.Arrival
		out = append(out, TaskMetrics{
			Task:       t,
			Start:      rec.Start,
			Finish:     rec.Finish,
			Turnaround: turnaround,
			Waiting:    turnaround - t.Burst,
		})
	}
	return out, nil
}

// lookup scans tasks linearly; workloads are small.
func lookup(tasks []Task, id TaskID) (Task, error) {
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return Task{}, fmt.Errorf("%w: pid %d", ErrUnknownTask, id)
}

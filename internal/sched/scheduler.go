// internal/sched/scheduler.go

package sched

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoTasks is returned when a run or a statistics pass gets an empty task set.
	ErrNoTasks = errors.New("no tasks to schedule")
	// ErrUnknownAlgorithm is returned for algorithm names ParseAlgorithm cannot map.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Algorithm names a scheduling discipline.
type Algorithm string

const (
	AlgorithmFCFS Algorithm = "fcfs"
	AlgorithmRR   Algorithm = "rr"
	AlgorithmSRTF Algorithm = "srtf"
)

// Algorithms lists every supported discipline in report order.
var Algorithms = []Algorithm{AlgorithmFCFS, AlgorithmRR, AlgorithmSRTF}

// Title returns the human readable name of the discipline.
func (a Algorithm) Title() string {
	switch a {
	case AlgorithmFCFS:
		return "First-Come-First-Served"
	case AlgorithmRR:
		return "Round Robin"
	case AlgorithmSRTF:
		return "Shortest-Remaining-Time-First"
	default:
		return string(a)
	}
}

// ParseAlgorithm maps a user supplied name (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "fifo", "first-come-first-served":
		return AlgorithmFCFS, nil
	case "rr", "round-robin", "roundrobin":
		return AlgorithmRR, nil
	case "srtf", "srt", "shortest-remaining-time-first":
		return AlgorithmSRTF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Scheduler turns a task set into an ordered sequence of completion records.
// Implementations never mutate the caller's tasks.
type Scheduler interface {
	Algorithm() Algorithm
	Schedule(tasks []Task) (*Result, error)
}

// New builds the scheduler for alg using cfg for tunables such as the quantum.
func New(alg Algorithm, cfg Config) (Scheduler, error) {
	switch alg {
	case AlgorithmFCFS:
		return NewFCFS(), nil
	case AlgorithmRR:
		return NewRoundRobin(cfg.Quantum)
	case AlgorithmSRTF:
		return NewSRTF(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

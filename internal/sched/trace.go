package sched

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteTraceCSV writes the event trace of every result as CSV.
func WriteTraceCSV(w io.Writer, results []*Result) error {
	cw := csv.NewWriter(w)

	// write header
	if err := cw.Write([]string{"algorithm", "tick", "event", "task_id", "remaining", "span"}); err != nil {
		return fmt.Errorf("write trace header: %w", err)
	}
	for _, res := range results {
		for _, ev := range res.Events {
			rec := []string{
				string(res.Algorithm),
				strconv.FormatInt(ev.Tick, 10),
				ev.Kind.String(),
				strconv.FormatUint(uint64(ev.TaskID), 10),
				strconv.FormatInt(ev.Remaining, 10),
				strconv.FormatInt(ev.Span, 10),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("write trace row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

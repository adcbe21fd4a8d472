package job

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cpusched/internal/sched"
)

// LoadFile opens path and parses it with Load.
func LoadFile(path string, logger *slog.Logger) ([]sched.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	return Load(f, logger)
}

// Load reads one task per line as "pid arrival burst". Lines that do not hold
// exactly three non-negative integers are skipped.
func Load(r io.Reader, logger *slog.Logger) ([]sched.Task, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var tasks []sched.Task
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t, err := parseLine(line)
		if err != nil {
			logger.Debug("skipping workload line", "line", lineNo, "text", line, "err", err)
			continue
		}
		tasks = append(tasks, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read workload: %w", err)
	}

	logger.Debug("workload loaded", "tasks", len(tasks), "lines", lineNo)
	return tasks, nil
}

func parseLine(line string) (sched.Task, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return sched.Task{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}

	var nums [3]uint64
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 63)
		if err != nil {
			return sched.Task{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		nums[i] = n
	}
	return sched.NewTask(sched.TaskID(nums[0]), int64(nums[1]), int64(nums[2])), nil
}

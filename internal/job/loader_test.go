package job

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpusched/internal/sched"
)

func TestLoadSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"1 0 5",
		"",
		"2\t1   3",
		"3 2",     // too few fields
		"4 2 1 9", // too many fields
		"5 x 2",   // not a number
		"6 -1 2",  // negative
		"  7 4 2  ",
		"# 8 1 1",
	}, "\n")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tasks, err := Load(strings.NewReader(input), logger)
	require.NoError(t, err)
	assert.Equal(t, []sched.Task{
		sched.NewTask(1, 0, 5),
		sched.NewTask(2, 1, 3),
		sched.NewTask(7, 4, 2),
	}, tasks)
	assert.Equal(t, 5, strings.Count(logs.String(), "skipping workload line"))
}

func TestLoadEmpty(t *testing.T) {
	tasks, err := Load(strings.NewReader("\n\n"), nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 0 8\n2 1 4\n"), 0o644))

	tasks, err := LoadFile(path, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(4), tasks[1].Remaining())

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
quantum: 4
algorithms: [srtf, rr]
parallel: true
trace_csv: trace.csv
gantt: false
log_level: debug
log_format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Quantum:    4,
		Algorithms: []string{"srtf", "rr"},
		Parallel:   true,
		TraceCSV:   "trace.csv",
		Gantt:      false,
		LogLevel:   "debug",
		LogFormat:  "json",
	}, cfg)

	algs, err := cfg.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []Algorithm{AlgorithmSRTF, AlgorithmRR}, algs)
}

func TestLoadClampsBadValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, "quantum: -3\nalgorithms: []\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultQuantum, cfg.Quantum)
	assert.Equal(t, DefaultConfig().Algorithms, cfg.Algorithms)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "algorithms: [fcfs, rr\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestParsedAlgorithmsDropsDuplicates(t *testing.T) {
	cfg := Config{Algorithms: []string{"rr", "round-robin", "fcfs"}}
	algs, err := cfg.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []Algorithm{AlgorithmRR, AlgorithmFCFS}, algs)

	_, err = Config{}.ParsedAlgorithms()
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

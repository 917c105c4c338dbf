package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testJob = `
seeds: ["0", "1"]
start: "0"
vertices: ["iso"]
edges:
  - {from: "0", to: "2", prob: 0.5}
  - {from: "1", to: "2", prob: 0.4}
  - {from: "0", to: "3", prob: 0.3}
  - {from: "2", to: "4", prob: 0.5}
`

// runCLI executes the root command with args against a job file in a temp dir.
func runCLI(t *testing.T, job string, args ...string) (string, string, string, error) {
	t.Helper()
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.yaml")
	job += "output:\n  dir: " + filepath.Join(dir, "out") + "\n"
	require.NoError(t, os.WriteFile(jobPath, []byte(job), 0o600))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", jobPath))
	err := cmd.Execute()

	return dir, stdout.String(), stderr.String(), err
}

func TestAggregateCmd(t *testing.T) {
	_, out, logs, err := runCLI(t, testJob, "aggregate")
	require.NoError(t, err)

	assert.Contains(t, out, "0.700000")
	assert.Contains(t, out, "0.300000")
	assert.NotContains(t, out, "0.500000")
	assert.Contains(t, logs, "seeds aggregated")
}

func TestPathsCmd(t *testing.T) {
	_, out, _, err := runCLI(t, testJob, "paths")
	require.NoError(t, err)
	assert.Contains(t, out, "0 -> 2 -> 4")
	assert.NotContains(t, out, "iso")

	_, out, _, err = runCLI(t, testJob, "paths", "--start", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 -> 2")
	assert.NotContains(t, out, "0 -> 3")
}

func TestPathsCmd_NoStart(t *testing.T) {
	_, _, _, err := runCLI(t, "edges:\n  - {from: a, to: b, prob: 0.5}\n", "paths")
	require.ErrorIs(t, err, errNoStart)
}

func TestRunCmd_WritesDistances(t *testing.T) {
	dir, out, logs, err := runCLI(t, testJob, "run", "--log-json")
	require.NoError(t, err)
	assert.Contains(t, out, "s -> 2 -> 4")
	assert.Contains(t, logs, `"msg":"results saved"`)

	raw, err := os.ReadFile(filepath.Join(dir, "out", "order.yaml"))
	require.NoError(t, err)
	var order []string
	require.NoError(t, yaml.Unmarshal(raw, &order))
	assert.Equal(t, []string{"2", "3", "4", "iso", "s"}, order)

	f, err := os.Open(filepath.Join(dir, "out", "distances.npy"))
	require.NoError(t, err)
	defer f.Close()
	var dist []float64
	require.NoError(t, npyio.Read(f, &dist))
	require.Len(t, dist, 5)

	assert.InDelta(t, -math.Log(0.7), dist[0], 1e-12)
	assert.InDelta(t, -math.Log(0.3), dist[1], 1e-12)
	assert.InDelta(t, -math.Log(0.7)-math.Log(0.5), dist[2], 1e-12)
	assert.True(t, math.IsInf(dist[3], 1))
	assert.Equal(t, 0.0, dist[4])
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	_, _, _, err := runCLI(t, testJob, "aggregate", "--log-level", "loud")
	require.Error(t, err)
}

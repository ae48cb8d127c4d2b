package commands_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortviz/sortviz/cmd/sortviz/commands"
	"github.com/sortviz/sortviz/pkg/generate"
	"github.com/sortviz/sortviz/pkg/trace"
)

// writeTraceFile generates a trace and saves it under dir.
func writeTraceFile(t *testing.T, dir string, alg generate.Algorithm, values []int) string {
	t.Helper()

	path := filepath.Join(dir, string(alg)+".json")

	doc := &trace.Trace{
		Algorithm: string(alg),
		Input:     values,
		Steps:     generate.Generate(alg, values),
	}
	require.NoError(t, trace.Save(path, doc))

	return path
}

func TestReplayCommand_SummaryOnly(t *testing.T) {
	path := writeTraceFile(t, t.TempDir(), generate.Insertion, []int{2, 1})

	output, err := executeCommand(t, commands.NewReplayCommand(), path, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "insertion")
	assert.Contains(t, output, "Comparisons")
}

func TestReplayCommand_ListPrintsEveryStep(t *testing.T) {
	path := writeTraceFile(t, t.TempDir(), generate.Bubble, []int{3, 1, 2})

	output, err := executeCommand(t, commands.NewReplayCommand(), path, "--list", "--no-color")
	require.NoError(t, err)

	// Bubble over [3,1,2] expands to 9 steps.
	assert.Equal(t, 9, strings.Count(output, "/9"))
	assert.Contains(t, output, "complete")
}

func TestReplayCommand_PlayReplaysLive(t *testing.T) {
	path := writeTraceFile(t, t.TempDir(), generate.Selection, []int{2, 1})

	output, err := executeCommand(t, commands.NewReplayCommand(), path,
		"--play", "--interval", "1ms", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "complete")
}

func TestReplayCommand_RejectsCorruptTrace(t *testing.T) {
	dir := t.TempDir()
	path := writeTraceFile(t, dir, generate.Bubble, []int{3, 1, 2})

	// Corrupt the stats of a step so invariant validation fails.
	loaded, loadErr := trace.Load(path)
	require.NoError(t, loadErr)

	loaded.Steps[0].Stats.Comparisons += 10
	require.NoError(t, trace.Save(path, loaded))

	_, err := executeCommand(t, commands.NewReplayCommand(), path, "--no-color")
	require.Error(t, err)
}

func TestReplayCommand_RejectsMissingFile(t *testing.T) {
	_, err := executeCommand(t, commands.NewReplayCommand(),
		filepath.Join(t.TempDir(), "absent.json"), "--no-color")
	require.Error(t, err)
}

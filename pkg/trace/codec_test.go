package trace_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortviz/sortviz/pkg/generate"
	"github.com/sortviz/sortviz/pkg/trace"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	extensions := []string{".json", ".yaml", ".json.lz4"}

	for _, ext := range extensions {
		ext := ext
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			tr := generatedTrace(t, generate.Quicksort, []int{4, 2, 7, 1, 9, 3})
			path := filepath.Join(t.TempDir(), "trace"+ext)

			require.NoError(t, trace.Save(path, tr))

			loaded, err := trace.Load(path)
			require.NoError(t, err)

			assert.Equal(t, tr.Algorithm, loaded.Algorithm)
			assert.Equal(t, tr.Input, loaded.Input)
			assert.Equal(t, tr.Steps, loaded.Steps)
			require.NoError(t, loaded.Validate())
		})
	}
}

func TestCodecFor_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := trace.CodecFor("trace.xml")
	assert.ErrorIs(t, err, trace.ErrUnsupportedFormat)

	_, saveErr := trace.CodecFor("trace")
	assert.ErrorIs(t, saveErr, trace.ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := trace.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadValidated_AcceptsWellFormedTrace(t *testing.T) {
	t.Parallel()

	tr := generatedTrace(t, generate.Selection, []int{3, 1, 2})
	path := filepath.Join(t.TempDir(), "trace.json")

	require.NoError(t, trace.Save(path, tr))

	loaded, err := trace.LoadValidated(path)
	require.NoError(t, err)
	assert.Equal(t, tr.Steps, loaded.Steps)
}

func TestLoadValidated_RejectsSchemaViolation(t *testing.T) {
	t.Parallel()

	// Steps must be an array of objects, not strings.
	doc := `{"algorithm":"bubble","input":[1],"steps":["nope"]}`
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := trace.LoadValidated(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, trace.ErrSchema)
}

func TestLoadValidated_RejectsInvariantViolation(t *testing.T) {
	t.Parallel()

	tr := generatedTrace(t, generate.Bubble, []int{2, 1})
	tr.Steps[0].Stats.Comparisons = 9

	raw, err := json.Marshal(tr)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	_, loadErr := trace.LoadValidated(path)
	require.Error(t, loadErr)
	assert.ErrorIs(t, loadErr, trace.ErrStats)
}

func TestValidateDocument_AcceptsGeneratedDocument(t *testing.T) {
	t.Parallel()

	tr := generatedTrace(t, generate.Insertion, []int{3, 1, 2})

	raw, err := json.Marshal(tr)
	require.NoError(t, err)

	require.NoError(t, trace.ValidateDocument(raw))
}

func TestValidateDocument_RejectsMissingFields(t *testing.T) {
	t.Parallel()

	err := trace.ValidateDocument([]byte(`{"algorithm":"bubble"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, trace.ErrSchema)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortviz/sortviz/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPlaybackAlgorithm, cfg.Playback.Algorithm)
	assert.Equal(t, config.DefaultPlaybackInterval, cfg.Playback.Interval)
	assert.Equal(t, config.DefaultInputSize, cfg.Input.Size)
	assert.Equal(t, config.DefaultInputShape, cfg.Input.Shape)
	assert.Equal(t, config.DefaultServeListen, cfg.Serve.Listen)
	assert.Equal(t, config.DefaultRenderOutputDir, cfg.Render.OutputDir)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
playback:
  algorithm: quicksort
  interval: 250ms
input:
  size: 12
  seed: 42
  shape: reversed
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "quicksort", cfg.Playback.Algorithm)
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.Interval)
	assert.Equal(t, 12, cfg.Input.Size)
	assert.Equal(t, int64(42), cfg.Input.Seed)
	assert.Equal(t, "reversed", cfg.Input.Shape)

	// Untouched keys keep their defaults.
	assert.Equal(t, config.DefaultServeListen, cfg.Serve.Listen)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "non-positive interval",
			content: "playback:\n  interval: 0s\n",
			wantErr: config.ErrInvalidInterval,
		},
		{
			name:    "negative size",
			content: "input:\n  size: -3\n",
			wantErr: config.ErrInvalidSize,
		},
		{
			name:    "size above cap",
			content: "input:\n  size: 600\n",
			wantErr: config.ErrSizeAboveCap,
		},
		{
			name:    "min above max",
			content: "input:\n  min: 50\n  max: 10\n",
			wantErr: config.ErrInvalidValueRange,
		},
		{
			name:    "unknown shape",
			content: "input:\n  shape: zigzag\n",
			wantErr: config.ErrInvalidShape,
		},
		{
			name:    "empty listen address",
			content: "serve:\n  listen: \"\"\n",
			wantErr: config.ErrNoListenAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := config.Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("playback: ["), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortviz/sortviz/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Playback: config.PlaybackConfig{
			Algorithm: config.DefaultPlaybackAlgorithm,
			Interval:  config.DefaultPlaybackInterval,
		},
		Input: config.InputConfig{
			Size:    5,
			MaxSize: 10,
			Min:     1,
			Max:     100,
			Seed:    42,
			Shape:   "random",
		},
	}
}

func TestParseValues(t *testing.T) {
	t.Parallel()

	values, err := parseValues("3, 1,2")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, values)
}

func TestParseValues_SkipsEmptyParts(t *testing.T) {
	t.Parallel()

	values, err := parseValues("1,,2,")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, values)
}

func TestParseValues_RejectsNonInteger(t *testing.T) {
	t.Parallel()

	_, err := parseValues("1,two,3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "two")
}

func TestResolveValues_ExplicitList(t *testing.T) {
	t.Parallel()

	flags := &inputFlags{values: "5,4,3"}

	values, err := resolveValues(flags, testConfig())
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3}, values)
}

func TestResolveValues_ExplicitListAboveCap(t *testing.T) {
	t.Parallel()

	flags := &inputFlags{values: "1,2,3,4,5,6,7,8,9,10,11"}

	_, err := resolveValues(flags, testConfig())
	require.ErrorIs(t, err, ErrTooManyValues)
}

func TestResolveValues_GeneratedUsesConfigDefaults(t *testing.T) {
	t.Parallel()

	values, err := resolveValues(&inputFlags{}, testConfig())
	require.NoError(t, err)
	assert.Len(t, values, 5)
}

func TestResolveValues_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	flags := &inputFlags{size: 8, seed: 7, shape: "sorted"}

	values, err := resolveValues(flags, testConfig())
	require.NoError(t, err)
	require.Len(t, values, 8)

	for i := 1; i < len(values); i++ {
		assert.LessOrEqual(t, values[i-1], values[i])
	}
}

func TestResolveValues_GeneratedSizeAboveCap(t *testing.T) {
	t.Parallel()

	flags := &inputFlags{size: 11}

	_, err := resolveValues(flags, testConfig())
	require.ErrorIs(t, err, ErrTooManyValues)
}

func TestResolveValues_UnknownShape(t *testing.T) {
	t.Parallel()

	flags := &inputFlags{shape: "spiral"}

	_, err := resolveValues(flags, testConfig())
	require.Error(t, err)
}

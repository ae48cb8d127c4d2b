package safeconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustInt64ToUint64(t *testing.T) {
	t.Parallel()

	t.Run("normal_value", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uint64(42), MustInt64ToUint64(42))
	})

	t.Run("zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uint64(0), MustInt64ToUint64(0))
	})

	t.Run("max_int64", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uint64(math.MaxInt64), MustInt64ToUint64(math.MaxInt64))
	})

	t.Run("negative_panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { MustInt64ToUint64(-1) })
	})
}

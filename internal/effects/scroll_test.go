package effects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrolledPast(t *testing.T) {
	reduce := ScrolledPast(DefaultScrollThreshold)

	tests := []struct {
		offset float64
		want   bool
	}{
		{0, false},
		{50, false},
		{100, false},
		{100.5, true},
		{101, true},
		{5000, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, reduce(false, ScrollEvent{Offset: tt.offset}), "offset %v", tt.offset)
		assert.Equal(t, tt.want, reduce(true, ScrollEvent{Offset: tt.offset}), "offset %v", tt.offset)
	}
}

func TestScrollHeader(t *testing.T) {
	ctx := context.Background()

	t.Run("tracks the last offset", func(t *testing.T) {
		h := NewScrollHeader(DefaultScrollThreshold)
		h.Mount(ctx)
		defer h.Unmount()

		steps := []struct {
			offset  float64
			scroll  bool
			changed bool
		}{
			{0, false, false},
			{50, false, false},
			{101, true, true},
			{400, true, false},
			{100, false, true},
			{20, false, false},
		}

		for _, step := range steps {
			scrolled, changed, err := h.Observe(ctx, step.offset)
			require.NoError(t, err)
			assert.Equal(t, step.scroll, scrolled, "offset %v", step.offset)
			assert.Equal(t, step.changed, changed, "offset %v", step.offset)
			assert.Equal(t, step.scroll, h.Scrolled())
		}
	})

	t.Run("default threshold", func(t *testing.T) {
		assert.Equal(t, float64(DefaultScrollThreshold), NewScrollHeader(0).Threshold())
		assert.Equal(t, float64(250), NewScrollHeader(250).Threshold())
	})

	t.Run("unmounted header ignores offsets", func(t *testing.T) {
		h := NewScrollHeader(DefaultScrollThreshold)
		h.Mount(ctx)
		h.Unmount()

		scrolled, changed, err := h.Observe(ctx, 500)
		assert.ErrorIs(t, err, ErrUnmounted)
		assert.False(t, scrolled)
		assert.False(t, changed)
	})
}

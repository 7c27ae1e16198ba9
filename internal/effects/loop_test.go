package effects

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add(state int, delta int) int { return state + delta }

func TestLoop_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the reduced state", func(t *testing.T) {
		l := NewLoop(0, add)
		l.Mount(ctx)
		defer l.Unmount()

		got, err := l.Dispatch(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, got)

		got, err = l.Dispatch(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
		assert.Equal(t, 7, l.State())
	})

	t.Run("reports the transition", func(t *testing.T) {
		l := NewLoop(10, add)
		l.Mount(ctx)
		defer l.Unmount()

		prev, next, err := l.DispatchChange(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, 10, prev)
		assert.Equal(t, 15, next)
	})

	t.Run("serializes concurrent events", func(t *testing.T) {
		l := NewLoop(0, add)
		l.Mount(ctx)
		defer l.Unmount()

		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := l.Dispatch(ctx, 1)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 100, l.State())
	})
}

func TestLoop_ChangeFunc(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32

	l := NewLoop(0, add, WithChangeFunc[int, int](func(prev, next int) {
		calls.Add(1)
	}))
	l.Mount(ctx)
	defer l.Unmount()

	_, err := l.Dispatch(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), calls.Load(), "no-op events must not notify")

	_, err = l.Dispatch(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLoop_Unmounted(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects events before mount", func(t *testing.T) {
		l := NewLoop(1, add)

		got, err := l.Dispatch(ctx, 1)
		assert.ErrorIs(t, err, ErrUnmounted)
		assert.Equal(t, 1, got)
		assert.False(t, l.Mounted())
	})

	t.Run("rejects events after unmount without mutating", func(t *testing.T) {
		l := NewLoop(1, add)
		l.Mount(ctx)
		_, err := l.Dispatch(ctx, 1)
		require.NoError(t, err)

		l.Unmount()
		l.Unmount()

		got, err := l.Dispatch(ctx, 100)
		assert.ErrorIs(t, err, ErrUnmounted)
		assert.Equal(t, 2, got)
		assert.Equal(t, 2, l.State())
	})

	t.Run("cannot be remounted", func(t *testing.T) {
		l := NewLoop(0, add)
		l.Mount(ctx)
		l.Unmount()
		l.Mount(ctx)

		assert.False(t, l.Mounted())
		_, err := l.Dispatch(ctx, 1)
		assert.ErrorIs(t, err, ErrUnmounted)
	})

	t.Run("unmounts when the context is cancelled", func(t *testing.T) {
		mountCtx, cancel := context.WithCancel(ctx)
		l := NewLoop(0, add)
		l.Mount(mountCtx)
		require.True(t, l.Mounted())

		cancel()

		require.Eventually(t, func() bool { return !l.Mounted() }, time.Second, 5*time.Millisecond)
		_, err := l.Dispatch(ctx, 1)
		assert.ErrorIs(t, err, ErrUnmounted)
	})

	t.Run("unmount on a never mounted loop returns", func(t *testing.T) {
		l := NewLoop(0, add)
		done := make(chan struct{})
		go func() {
			l.Unmount()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Unmount blocked on a loop that was never mounted")
		}
	})
}

func TestLoop_DispatchHonorsContext(t *testing.T) {
	block := make(chan struct{})
	l := NewLoop(0, func(s, e int) int {
		<-block
		return s + e
	})
	l.Mount(context.Background())
	defer func() {
		close(block)
		l.Unmount()
	}()

	// Occupy the loop goroutine.
	go func() { _, _ = l.Dispatch(context.Background(), 1) }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := l.Dispatch(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

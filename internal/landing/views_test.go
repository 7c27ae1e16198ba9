package landing

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashcode/flashweb/internal/domain"
	"github.com/flashcode/flashweb/internal/effects"
	"github.com/flashcode/flashweb/internal/landing/components"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// heldTimers is an effects.AfterFunc that only fires when the test says so.
type heldTimers struct {
	mu      sync.Mutex
	pending []*heldTimer
}

type heldTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (h *heldTimers) AfterFunc(d time.Duration, f func()) func() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	t := &heldTimer{d: d, f: f}
	h.pending = append(h.pending, t)
	return func() bool {
		h.mu.Lock()
		defer h.mu.Unlock()
		was := !t.stopped
		t.stopped = true
		return was
	}
}

// fire runs the timers armed with d so far. Timers they arm wait for the next call.
func (h *heldTimers) fire(d time.Duration) {
	h.mu.Lock()
	var due []*heldTimer
	for _, t := range h.pending {
		if !t.stopped && t.d == d {
			t.stopped = true
			due = append(due, t)
		}
	}
	h.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

type glitchFlip struct {
	viewID string
	active bool
}

type hookRecorder struct {
	mu        sync.Mutex
	flips     []glitchFlip
	unmounted []string
}

func (r *hookRecorder) glitch(viewID string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flips = append(r.flips, glitchFlip{viewID, active})
}

func (r *hookRecorder) unmount(viewID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unmounted = append(r.unmounted, viewID)
}

func (r *hookRecorder) glitches() []glitchFlip {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]glitchFlip(nil), r.flips...)
}

func (r *hookRecorder) unmounts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.unmounted...)
}

func sequentialIDs() func() string {
	var n int
	return func() string {
		n++
		return "view-" + strconv.Itoa(n)
	}
}

func testViewConfig() ViewConfig {
	return ViewConfig{
		FAQSize:         3,
		ScrollThreshold: 100,
		RevealEnabled:   true,
		RevealBlocks:    []components.RevealBlock{{ID: components.RevealHero}, {ID: "module-1", Delay: 100 * time.Millisecond}},
		Glitch:          effects.DefaultGlitchSchedule(),
		IdleTTL:         time.Minute,
		ConnectGrace:    30 * time.Second,
		ReconnectGrace:  time.Minute,
		MaxViews:        2,
	}
}

func TestViewStore_MountAndCap(t *testing.T) {
	rec := &hookRecorder{}
	s := NewViewStore(testViewConfig(), WithIDGenerator(sequentialIDs()), WithUnmountHook(rec.unmount))
	t.Cleanup(s.Close)

	a, err := s.Mount()
	require.NoError(t, err)
	assert.Equal(t, "view-1", a.ID())

	_, err = s.Mount()
	require.NoError(t, err)

	_, err = s.Mount()
	assert.ErrorIs(t, err, domain.ErrTooManyViews)
	assert.Equal(t, 2, s.Len())

	require.True(t, s.Unmount("view-1"))
	assert.False(t, s.Unmount("view-1"))
	assert.Equal(t, []string{"view-1"}, rec.unmounts())

	c, err := s.Mount()
	require.NoError(t, err)
	assert.Equal(t, "view-3", c.ID())
}

func TestViewStore_ControllersStartOnFirstContact(t *testing.T) {
	s := NewViewStore(testViewConfig(), WithIDGenerator(sequentialIDs()))
	t.Cleanup(s.Close)

	v, err := s.Mount()
	require.NoError(t, err)
	assert.False(t, v.Mounted(), "registering a view starts nothing")

	st := v.Snapshot()
	assert.True(t, st.FAQ.IsOpen(0))
	assert.Equal(t, 100*time.Millisecond, st.Delays["module-1"])

	_, err = v.ToggleFAQ(context.Background(), 1)
	assert.ErrorIs(t, err, effects.ErrUnmounted)

	assert.False(t, s.Attach("missing"))
	require.True(t, s.Attach(v.ID()))
	assert.True(t, v.Mounted())

	w, err := s.Mount()
	require.NoError(t, err)
	got, err := s.Get(w.ID())
	require.NoError(t, err)
	assert.Same(t, w, got)
	assert.True(t, w.Mounted())

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, domain.ErrUnknownView)
	assert.False(t, s.Has("missing"))
}

func TestView_Controllers(t *testing.T) {
	s := NewViewStore(testViewConfig())
	t.Cleanup(s.Close)
	ctx := context.Background()

	registered, err := s.Mount()
	require.NoError(t, err)
	v, err := s.Get(registered.ID())
	require.NoError(t, err)

	st := v.Snapshot()
	assert.True(t, st.FAQ.IsOpen(0), "first entry starts open")
	assert.False(t, st.Scrolled)
	assert.False(t, st.Glitching)
	assert.False(t, st.Visible[components.RevealHero])

	faq, err := v.ToggleFAQ(ctx, 0)
	require.NoError(t, err)
	_, open := faq.Open()
	assert.False(t, open)

	_, err = v.ToggleFAQ(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	scrolled, changed, err := v.Scroll(ctx, 101)
	require.NoError(t, err)
	assert.True(t, scrolled)
	assert.True(t, changed)

	visible, err := v.Reveal(ctx, "module-1", 0.2)
	require.NoError(t, err)
	assert.True(t, visible)

	_, err = v.Reveal(ctx, "pricing", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownSection)

	st = v.Snapshot()
	assert.True(t, st.Scrolled)
	assert.True(t, st.Visible["module-1"])
	assert.False(t, st.Visible[components.RevealHero])
	assert.True(t, st.Interactive())

	require.True(t, s.Unmount(v.ID()))
	_, err = v.ToggleFAQ(ctx, 1)
	assert.ErrorIs(t, err, effects.ErrUnmounted)
	_, _, err = v.Scroll(ctx, 0)
	assert.ErrorIs(t, err, effects.ErrUnmounted)
}

func TestView_GlitchTimerPerView(t *testing.T) {
	cfg := testViewConfig()
	timers := &heldTimers{}
	rec := &hookRecorder{}
	s := NewViewStore(cfg,
		WithIDGenerator(sequentialIDs()),
		WithGlitchHook(rec.glitch),
		WithGlitchOptions(effects.WithAfterFunc(timers.AfterFunc)),
	)
	t.Cleanup(s.Close)

	first, err := s.Mount()
	require.NoError(t, err)
	timers.fire(cfg.Glitch.Period)
	assert.False(t, first.Glitching(), "the timer of an untouched view is not running")

	require.True(t, s.Attach(first.ID()))
	assert.False(t, first.Snapshot().Glitching)

	timers.fire(cfg.Glitch.Period)
	require.True(t, first.Glitching())

	second, err := s.Mount()
	require.NoError(t, err)
	assert.False(t, second.Snapshot().Glitching, "a new page starts without the glitch")
	require.True(t, s.Attach(second.ID()))
	assert.False(t, second.Glitching())

	timers.fire(cfg.Glitch.Duration)
	assert.False(t, first.Glitching())
	assert.False(t, second.Glitching())

	assert.Equal(t, []glitchFlip{{"view-1", true}, {"view-1", false}}, rec.glitches())

	require.True(t, s.Unmount(first.ID()))
	timers.fire(cfg.Glitch.Period)
	assert.Equal(t, []glitchFlip{{"view-1", true}, {"view-1", false}, {"view-2", true}}, rec.glitches(),
		"an unmounted view's timer is stopped")
}

func TestViewStore_ReleaseAndReclaim(t *testing.T) {
	cfg := testViewConfig()
	cfg.ReconnectGrace = 30 * time.Millisecond
	rec := &hookRecorder{}
	s := NewViewStore(cfg, WithUnmountHook(rec.unmount))
	t.Cleanup(s.Close)

	v, err := s.Mount()
	require.NoError(t, err)
	require.True(t, s.Attach(v.ID()))

	s.Release(v.ID())
	require.True(t, s.Attach(v.ID()), "a reconnect within the grace reclaims the view")

	time.Sleep(3 * cfg.ReconnectGrace)
	assert.True(t, s.Has(v.ID()))
	assert.Empty(t, rec.unmounts())

	s.Release(v.ID())
	require.Eventually(t, func() bool { return !s.Has(v.ID()) }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{v.ID()}, rec.unmounts())

	_, err = v.ToggleFAQ(context.Background(), 1)
	assert.ErrorIs(t, err, effects.ErrUnmounted)

	s.Release("missing")
	assert.False(t, s.Attach(v.ID()))
}

func TestViewStore_ReleaseKeepsLiveViews(t *testing.T) {
	cfg := testViewConfig()
	cfg.ReconnectGrace = 10 * time.Millisecond
	var live atomic.Bool
	s := NewViewStore(cfg, WithLiveCheck(func(string) bool { return live.Load() }))
	t.Cleanup(s.Close)

	v, err := s.Mount()
	require.NoError(t, err)
	require.True(t, s.Attach(v.ID()))

	s.Release(v.ID())
	live.Store(true)
	time.Sleep(5 * cfg.ReconnectGrace)
	assert.True(t, s.Has(v.ID()), "a late release does not drop a view that reconnected")

	s.Release(v.ID())
	time.Sleep(5 * cfg.ReconnectGrace)
	assert.True(t, s.Has(v.ID()))
}

func TestViewStore_Sweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rec := &hookRecorder{}
	var liveMu sync.Mutex
	live := map[string]bool{}
	cfg := testViewConfig()
	cfg.MaxViews = 10
	s := NewViewStore(cfg,
		WithClock(clock.Now),
		WithIDGenerator(sequentialIDs()),
		WithUnmountHook(rec.unmount),
		WithLiveCheck(func(id string) bool {
			liveMu.Lock()
			defer liveMu.Unlock()
			return live[id]
		}),
	)
	t.Cleanup(s.Close)

	never, err := s.Mount()
	require.NoError(t, err)
	idle, err := s.Mount()
	require.NoError(t, err)
	active, err := s.Mount()
	require.NoError(t, err)
	socket, err := s.Mount()
	require.NoError(t, err)
	for _, v := range []*View{idle, active, socket} {
		require.True(t, s.Attach(v.ID()))
	}
	liveMu.Lock()
	live[socket.ID()] = true
	liveMu.Unlock()

	clock.Advance(31 * time.Second)
	assert.Equal(t, 1, s.Sweep(), "a view that never made contact is dropped after the connect grace")
	assert.False(t, s.Has(never.ID()))
	assert.False(t, never.Mounted())

	clock.Advance(14 * time.Second)
	_, err = s.Get(active.ID())
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	assert.Equal(t, 1, s.Sweep())
	assert.False(t, s.Has(idle.ID()))
	assert.True(t, s.Has(active.ID()))
	assert.True(t, s.Has(socket.ID()), "a view with an open websocket is never idle")

	_, err = idle.ToggleFAQ(context.Background(), 0)
	assert.ErrorIs(t, err, effects.ErrUnmounted)
	assert.Equal(t, []string{never.ID(), idle.ID()}, rec.unmounts())
}

func TestViewStore_Close(t *testing.T) {
	s := NewViewStore(testViewConfig())

	v, err := s.Mount()
	require.NoError(t, err)
	require.True(t, s.Attach(v.ID()))

	s.Close()
	assert.Zero(t, s.Len())

	_, _, err = v.Scroll(context.Background(), 10)
	assert.ErrorIs(t, err, effects.ErrUnmounted)
	assert.False(t, v.Glitching())

	_, err = s.Mount()
	assert.ErrorIs(t, err, effects.ErrUnmounted)
}

func TestSweepInterval(t *testing.T) {
	assert.Equal(t, time.Second, sweepInterval(time.Second))
	assert.Equal(t, 15*time.Second, sweepInterval(time.Minute))
	assert.Equal(t, time.Minute, sweepInterval(time.Hour))
}

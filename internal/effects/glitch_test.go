package effects

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualTimers is an AfterFunc whose clock only moves when the test advances it.
// Callbacks run synchronously on the advancing goroutine, in deadline order.
type manualTimers struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	at   time.Duration
	seq  int
	f    func()
	done bool
}

func (m *manualTimers) AfterFunc(d time.Duration, f func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{at: m.now + d, seq: m.seq, f: f}
	m.seq++
	m.pending = append(m.pending, t)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		was := !t.done
		t.done = true
		return was
	}
}

// AdvanceTo fires every callback due at or before to.
func (m *manualTimers) AdvanceTo(to time.Duration) {
	for {
		m.mu.Lock()
		var next *manualTimer
		for _, t := range m.pending {
			if t.done || t.at > to {
				continue
			}
			if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
				next = t
			}
		}
		if next == nil {
			m.now = to
			m.mu.Unlock()
			return
		}
		next.done = true
		m.now = next.at
		m.mu.Unlock()

		next.f()
	}
}

func startManualGlitch(t *testing.T, s GlitchSchedule) (*GlitchTimer, *manualTimers, *flagRecorder) {
	t.Helper()
	clock := &manualTimers{}
	rec := &flagRecorder{}
	g := NewGlitchTimer(s, rec.record, WithAfterFunc(clock.AfterFunc))
	g.Start(context.Background())
	t.Cleanup(g.Stop)
	return g, clock, rec
}

func TestGlitchTimer_Schedule(t *testing.T) {
	g, clock, rec := startManualGlitch(t, DefaultGlitchSchedule())

	tests := []struct {
		elapsed time.Duration
		want    bool
	}{
		{0, false},
		{7999 * time.Millisecond, false},
		{8000 * time.Millisecond, true},
		{9199 * time.Millisecond, true},
		{9200 * time.Millisecond, false},
		{15999 * time.Millisecond, false},
		{16000 * time.Millisecond, true},
		{17200 * time.Millisecond, false},
	}

	for _, tt := range tests {
		clock.AdvanceTo(tt.elapsed)
		assert.Equal(t, tt.want, g.Active(), "elapsed %v", tt.elapsed)
	}
	assert.Equal(t, []bool{true, false, true, false}, rec.snapshot())
}

func TestGlitchTimer_DurationCoversPeriod(t *testing.T) {
	for _, s := range []GlitchSchedule{
		{Period: time.Second, Duration: 2 * time.Second},
		{Period: time.Second, Duration: time.Second},
	} {
		g, clock, rec := startManualGlitch(t, s)
		assert.True(t, s.Continuous())

		clock.AdvanceTo(999 * time.Millisecond)
		assert.False(t, g.Active())

		for _, ms := range []int{1000, 1500, 1999, 2000, 2999, 10000} {
			clock.AdvanceTo(time.Duration(ms) * time.Millisecond)
			assert.True(t, g.Active(), "%v: elapsed %dms", s, ms)
		}
		assert.Equal(t, []bool{true}, rec.snapshot(), "%v: one change, no flicker", s)
	}
}

func TestGlitchTimer_StopReleasesPendingTimers(t *testing.T) {
	g, clock, rec := startManualGlitch(t, GlitchSchedule{Period: time.Second, Duration: 500 * time.Millisecond})

	clock.AdvanceTo(time.Second)
	require.True(t, g.Active())

	g.Stop()
	clock.AdvanceTo(10 * time.Second)
	assert.Equal(t, []bool{true}, rec.snapshot(), "neither the expiry nor later ticks report after Stop")
}

func TestReduceGlitch(t *testing.T) {
	s := GlitchState{}

	s = ReduceGlitch(s, GlitchEvent{})
	assert.Equal(t, GlitchState{Active: true, Generation: 1}, s)

	s = ReduceGlitch(s, GlitchEvent{})
	assert.Equal(t, GlitchState{Active: true, Generation: 2}, s)

	// Expiry of the superseded tick is ignored.
	s = ReduceGlitch(s, GlitchEvent{Expire: true, Generation: 1})
	assert.Equal(t, GlitchState{Active: true, Generation: 2}, s)

	s = ReduceGlitch(s, GlitchEvent{Expire: true, Generation: 2})
	assert.Equal(t, GlitchState{Active: false, Generation: 2}, s)
}

type flagRecorder struct {
	mu     sync.Mutex
	events []bool
}

func (r *flagRecorder) record(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, active)
}

func (r *flagRecorder) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.events...)
}

func TestGlitchTimer(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		g := NewGlitchTimer(GlitchSchedule{}, nil)
		assert.Equal(t, DefaultGlitchSchedule(), g.Schedule())
		assert.False(t, g.Active())
		g.Stop()
	})

	t.Run("alternates on and off", func(t *testing.T) {
		rec := &flagRecorder{}
		g := NewGlitchTimer(GlitchSchedule{Period: 40 * time.Millisecond, Duration: 10 * time.Millisecond}, rec.record)
		g.Start(context.Background())
		defer g.Stop()

		require.Eventually(t, func() bool {
			return len(rec.snapshot()) >= 4
		}, 2*time.Second, 5*time.Millisecond)

		events := rec.snapshot()
		for i, active := range events {
			assert.Equal(t, i%2 == 0, active, "event %d", i)
		}
	})

	t.Run("stays active when the window covers the period", func(t *testing.T) {
		rec := &flagRecorder{}
		g := NewGlitchTimer(GlitchSchedule{Period: 10 * time.Millisecond, Duration: 500 * time.Millisecond}, rec.record)
		g.Start(context.Background())
		defer g.Stop()

		require.Eventually(t, g.Active, time.Second, 5*time.Millisecond)
		time.Sleep(100 * time.Millisecond)

		assert.True(t, g.Active())
		assert.Equal(t, []bool{true}, rec.snapshot())
	})

	t.Run("no changes after stop", func(t *testing.T) {
		rec := &flagRecorder{}
		g := NewGlitchTimer(GlitchSchedule{Period: 10 * time.Millisecond, Duration: 5 * time.Millisecond}, rec.record)
		g.Start(context.Background())

		require.Eventually(t, func() bool {
			return len(rec.snapshot()) >= 2
		}, 2*time.Second, 5*time.Millisecond)

		g.Stop()
		stopped := len(rec.snapshot())
		time.Sleep(60 * time.Millisecond)

		assert.Len(t, rec.snapshot(), stopped)
		g.Stop()
	})

	t.Run("start after stop is a no-op", func(t *testing.T) {
		rec := &flagRecorder{}
		g := NewGlitchTimer(GlitchSchedule{Period: 5 * time.Millisecond, Duration: time.Millisecond}, rec.record)
		g.Stop()
		g.Start(context.Background())

		time.Sleep(30 * time.Millisecond)
		assert.Empty(t, rec.snapshot())
	})

	t.Run("context cancellation stops ticking", func(t *testing.T) {
		rec := &flagRecorder{}
		ctx, cancel := context.WithCancel(context.Background())
		g := NewGlitchTimer(GlitchSchedule{Period: 10 * time.Millisecond, Duration: 5 * time.Millisecond}, rec.record)
		g.Start(ctx)

		require.Eventually(t, func() bool {
			return len(rec.snapshot()) >= 1
		}, 2*time.Second, 5*time.Millisecond)

		cancel()
		g.Stop()
		n := len(rec.snapshot())
		time.Sleep(50 * time.Millisecond)
		assert.Len(t, rec.snapshot(), n)
	})
}

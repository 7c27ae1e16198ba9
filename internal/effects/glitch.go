package effects

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultGlitchPeriod is the interval between two glitch bursts.
	DefaultGlitchPeriod = 8000 * time.Millisecond
	// DefaultGlitchDuration is how long a burst stays active.
	DefaultGlitchDuration = 1200 * time.Millisecond
)

// GlitchSchedule describes the repeating glitch cycle. Ticks happen at every
// positive multiple of Period; each tick turns the flag on for Duration.
type GlitchSchedule struct {
	Period   time.Duration
	Duration time.Duration
}

// DefaultGlitchSchedule returns the 8s / 1.2s cycle.
func DefaultGlitchSchedule() GlitchSchedule {
	return GlitchSchedule{Period: DefaultGlitchPeriod, Duration: DefaultGlitchDuration}
}

// Continuous reports whether every window is renewed by the next tick before
// it closes, so the flag stays on from the first tick.
func (s GlitchSchedule) Continuous() bool {
	return s.Duration >= s.Period
}

// GlitchState is the glitch flag plus the generation of the tick that set it.
type GlitchState struct {
	Active     bool
	Generation uint64
}

// GlitchEvent is either a tick or the expiry of a tick's window.
type GlitchEvent struct {
	Expire     bool
	Generation uint64
}

// ReduceGlitch activates on every tick. An expiry only deactivates when it
// belongs to the latest tick; stale expiries are dropped.
func ReduceGlitch(s GlitchState, e GlitchEvent) GlitchState {
	if !e.Expire {
		return GlitchState{Active: true, Generation: s.Generation + 1}
	}
	if e.Generation != s.Generation {
		return s
	}
	return GlitchState{Active: false, Generation: s.Generation}
}

// AfterFunc schedules f to run once after d and returns a function that
// cancels it. time.AfterFunc is the production implementation.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func realAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// GlitchOption configures a GlitchTimer.
type GlitchOption func(*GlitchTimer)

// WithAfterFunc replaces time.AfterFunc.
func WithAfterFunc(after AfterFunc) GlitchOption {
	return func(g *GlitchTimer) { g.after = after }
}

// GlitchTimer drives the decorative glitch flag on a repeating schedule.
type GlitchTimer struct {
	schedule GlitchSchedule
	loop     *Loop[GlitchState, GlitchEvent]
	after    AfterFunc
	logger   *slog.Logger

	mu         sync.Mutex
	started    bool
	stopped    bool
	stopTick   func() bool
	stopExpiry func() bool
}

// NewGlitchTimer creates a stopped timer. onChange is called with the new flag
// every time it flips; it runs on the timer's goroutine and must not block.
func NewGlitchTimer(schedule GlitchSchedule, onChange func(active bool), opts ...GlitchOption) *GlitchTimer {
	if schedule.Period <= 0 {
		schedule.Period = DefaultGlitchPeriod
	}
	if schedule.Duration <= 0 {
		schedule.Duration = DefaultGlitchDuration
	}

	g := &GlitchTimer{
		schedule: schedule,
		after:    realAfterFunc,
		logger:   slog.Default().With("service", "glitch"),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.loop = NewLoop(GlitchState{}, ReduceGlitch, WithChangeFunc[GlitchState, GlitchEvent](func(prev, next GlitchState) {
		if prev.Active == next.Active {
			return
		}
		g.logger.Debug("glitch state changed", "active", next.Active, "generation", next.Generation)
		if onChange != nil {
			onChange(next.Active)
		}
	}))
	return g
}

// Schedule returns the effective schedule.
func (g *GlitchTimer) Schedule() GlitchSchedule { return g.schedule }

// Active returns the current flag.
func (g *GlitchTimer) Active() bool { return g.loop.State().Active }

// Start begins ticking. The first tick fires one Period after Start.
// Cancelling ctx ends the cycle at the next tick.
func (g *GlitchTimer) Start(ctx context.Context) {
	g.mu.Lock()
	if g.started || g.stopped {
		g.mu.Unlock()
		return
	}
	g.started = true
	g.mu.Unlock()

	g.loop.Mount(ctx)
	g.scheduleTick()
}

func (g *GlitchTimer) scheduleTick() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return
	}
	g.stopTick = g.after(g.schedule.Period, g.tick)
}

func (g *GlitchTimer) tick() {
	if !g.loop.Mounted() {
		return
	}
	// The next tick is armed first so the cycle keeps its period.
	g.scheduleTick()

	state, err := g.loop.Dispatch(context.Background(), GlitchEvent{})
	if err != nil {
		return
	}
	g.scheduleExpiry(state.Generation)
}

func (g *GlitchTimer) scheduleExpiry(generation uint64) {
	if g.schedule.Continuous() {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return
	}
	if g.stopExpiry != nil {
		g.stopExpiry()
	}
	g.stopExpiry = g.after(g.schedule.Duration, func() {
		// ErrUnmounted after Stop is expected and ignored.
		_, _ = g.loop.Dispatch(context.Background(), GlitchEvent{Expire: true, Generation: generation})
	})
}

// Stop releases the pending tick and expiry together. Once Stop returns no
// further state change is reported.
func (g *GlitchTimer) Stop() {
	g.mu.Lock()
	g.stopped = true
	if g.stopTick != nil {
		g.stopTick()
	}
	if g.stopExpiry != nil {
		g.stopExpiry()
	}
	g.mu.Unlock()

	g.loop.Unmount()
}

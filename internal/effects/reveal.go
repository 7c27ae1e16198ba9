package effects

import (
	"context"
	"time"
)

// Intersection is one notification that the observed element changed its
// intersection with the viewport.
type Intersection struct {
	Ratio float64
}

// ReduceVisibility latches to true on the first positive intersection ratio and
// never resets.
func ReduceVisibility(visible bool, e Intersection) bool {
	return visible || e.Ratio > 0
}

// Revealer gates the entrance transition of one content block.
type Revealer struct {
	loop  *Loop[bool, Intersection]
	delay time.Duration
}

// NewRevealer creates a revealer. When observable is false the runtime cannot
// report intersections and the block is treated as always visible.
func NewRevealer(observable bool, delay time.Duration, opts ...LoopOption[bool, Intersection]) *Revealer {
	if delay < 0 {
		delay = 0
	}
	return &Revealer{
		loop:  NewLoop(!observable, ReduceVisibility, opts...),
		delay: delay,
	}
}

// Mount starts observing.
func (r *Revealer) Mount(ctx context.Context) { r.loop.Mount(ctx) }

// Unmount releases the observation.
func (r *Revealer) Unmount() { r.loop.Unmount() }

// Delay is the start delay of the transition, used to stagger siblings.
func (r *Revealer) Delay() time.Duration { return r.delay }

// Visible reports the latch.
func (r *Revealer) Visible() bool { return r.loop.State() }

// Intersect records an intersection notification and returns the latch.
func (r *Revealer) Intersect(ctx context.Context, ratio float64) (bool, error) {
	return r.loop.Dispatch(ctx, Intersection{Ratio: ratio})
}

package effects

import "context"

// DefaultScrollThreshold is the vertical offset past which the header switches to
// its opaque style.
const DefaultScrollThreshold = 100

// ScrollEvent carries the page's vertical scroll offset, in the same units as
// the browser's scrollY.
type ScrollEvent struct {
	Offset float64
}

// ScrolledPast returns the reducer for isScrolled = offset > threshold.
func ScrolledPast(threshold float64) Reducer[bool, ScrollEvent] {
	return func(_ bool, e ScrollEvent) bool {
		return e.Offset > threshold
	}
}

// ScrollHeader tracks whether the page has scrolled past the threshold.
type ScrollHeader struct {
	loop      *Loop[bool, ScrollEvent]
	threshold float64
}

// NewScrollHeader creates the controller. A non-positive threshold falls back to
// DefaultScrollThreshold.
func NewScrollHeader(threshold float64, opts ...LoopOption[bool, ScrollEvent]) *ScrollHeader {
	if threshold <= 0 {
		threshold = DefaultScrollThreshold
	}
	return &ScrollHeader{
		loop:      NewLoop(false, ScrolledPast(threshold), opts...),
		threshold: threshold,
	}
}

// Mount subscribes to scroll notifications.
func (h *ScrollHeader) Mount(ctx context.Context) { h.loop.Mount(ctx) }

// Unmount releases the subscription.
func (h *ScrollHeader) Unmount() { h.loop.Unmount() }

// Threshold returns the configured threshold.
func (h *ScrollHeader) Threshold() float64 { return h.threshold }

// Scrolled returns the current flag.
func (h *ScrollHeader) Scrolled() bool { return h.loop.State() }

// Observe recomputes the flag from a new offset. changed reports whether the
// flag flipped.
func (h *ScrollHeader) Observe(ctx context.Context, offset float64) (scrolled, changed bool, err error) {
	prev, next, err := h.loop.DispatchChange(ctx, ScrollEvent{Offset: offset})
	if err != nil {
		return prev, false, err
	}
	return next, next != prev, nil
}

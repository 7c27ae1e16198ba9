package effects

import (
	"context"
	"fmt"

	"github.com/flashcode/flashweb/internal/domain"
)

const noneOpen = -1

// AccordionState records which entry of an accordion is expanded. At most one
// entry is open at any time.
type AccordionState struct {
	open int
}

// OpenAt returns a state with entry i expanded.
func OpenAt(i int) AccordionState {
	if i < 0 {
		return AccordionState{open: noneOpen}
	}
	return AccordionState{open: i}
}

// Collapsed returns a state with every entry closed.
func Collapsed() AccordionState {
	return AccordionState{open: noneOpen}
}

// Open returns the expanded index, if any.
func (s AccordionState) Open() (int, bool) {
	if s.open == noneOpen {
		return 0, false
	}
	return s.open, true
}

// IsOpen reports whether entry i is the expanded one.
func (s AccordionState) IsOpen(i int) bool {
	return s.open != noneOpen && s.open == i
}

// Toggle is the click on an accordion header.
type Toggle struct {
	Index int
}

// ReduceAccordion collapses the entry when it is already open, and otherwise
// expands it (closing whichever entry was open).
func ReduceAccordion(s AccordionState, t Toggle) AccordionState {
	if s.open == t.Index {
		return Collapsed()
	}
	return OpenAt(t.Index)
}

// Accordion is the controller for a fixed list of collapsible entries.
type Accordion struct {
	loop *Loop[AccordionState, Toggle]
	size int
}

// NewAccordion creates an accordion over size entries with the first entry open.
func NewAccordion(size int, opts ...LoopOption[AccordionState, Toggle]) *Accordion {
	initial := Collapsed()
	if size > 0 {
		initial = OpenAt(0)
	}
	return &Accordion{
		loop: NewLoop(initial, ReduceAccordion, opts...),
		size: size,
	}
}

// Mount starts the controller.
func (a *Accordion) Mount(ctx context.Context) { a.loop.Mount(ctx) }

// Unmount releases the controller.
func (a *Accordion) Unmount() { a.loop.Unmount() }

// Size returns the number of entries.
func (a *Accordion) Size() int { return a.size }

// State returns the current state.
func (a *Accordion) State() AccordionState { return a.loop.State() }

// Toggle expands or collapses entry i.
func (a *Accordion) Toggle(ctx context.Context, i int) (AccordionState, error) {
	if i < 0 || i >= a.size {
		return a.State(), fmt.Errorf("toggle entry %d of %d: %w", i, a.size, domain.ErrIndexOutOfRange)
	}
	return a.loop.Dispatch(ctx, Toggle{Index: i})
}

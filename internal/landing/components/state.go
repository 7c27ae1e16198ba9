// Package components renders the sections of the landing page with gomponents.
//
// Every component takes the page copy and a State snapshot. When the State
// belongs to a mounted view the markup carries the HTMX attributes that feed
// the view's controllers; otherwise it falls back to a fully static document.
package components

import (
	"strconv"
	"time"

	"github.com/flashcode/flashweb/internal/content"
	"github.com/flashcode/flashweb/internal/effects"
)

// Reveal block identifiers that are not derived from content IDs.
const (
	RevealHero       = "hero"
	RevealComparison = "comparison"
)

// State is the per-view UI state a render reflects.
type State struct {
	ViewID    string
	Static    bool
	Scrolled  bool
	Glitching bool
	FAQ       effects.AccordionState
	Visible   map[string]bool
	// Delays holds the transition delay of every reveal block.
	Delays map[string]time.Duration
}

// StaticState is the state used for exports and for pages served without a view.
func StaticState() State {
	return State{Static: true, FAQ: effects.OpenAt(0)}
}

// Interactive reports whether the render is wired to a mounted view.
func (s State) Interactive() bool {
	return s.ViewID != "" && !s.Static
}

func (s State) visible(id string) bool {
	if !s.Interactive() {
		return true
	}
	return s.Visible[id]
}

// RevealBlock is one block that fades in on first intersection.
type RevealBlock struct {
	ID    string
	Delay time.Duration
}

// ModuleRevealID names the reveal block of a curriculum module.
func ModuleRevealID(m content.ModuleEntry) string {
	return "module-" + strconv.Itoa(m.ID)
}

// PlanRevealID names the reveal block of a pricing plan.
func PlanRevealID(p content.Plan) string {
	return "plan-" + p.ID
}

// RevealBlocks lists every reveal block of the page in document order.
// Modules are staggered by 100ms and plans by 200ms.
func RevealBlocks(page content.Page) []RevealBlock {
	blocks := []RevealBlock{
		{ID: RevealHero},
		{ID: RevealComparison},
	}
	for idx, m := range page.Modules.Entries {
		blocks = append(blocks, RevealBlock{
			ID:    ModuleRevealID(m),
			Delay: moduleDelay(idx),
		})
	}
	for idx, p := range page.Pricing.Plans {
		blocks = append(blocks, RevealBlock{
			ID:    PlanRevealID(p),
			Delay: planDelay(idx),
		})
	}
	return blocks
}

func moduleDelay(idx int) time.Duration { return time.Duration(idx) * 100 * time.Millisecond }

func planDelay(idx int) time.Duration { return time.Duration(idx) * 200 * time.Millisecond }

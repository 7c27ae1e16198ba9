package landing

import "github.com/flashcode/flashweb/internal/pubsub"

// GlitchChanged is published each time the glitch flag of a view flips.
type GlitchChanged struct {
	ViewID string `json:"view_id"`
	Active bool   `json:"active"`
}

// GlitchChangedEvent is the typed topic of glitch flips.
var GlitchChangedEvent = pubsub.NewEvent[GlitchChanged](
	"landing.glitch.changed",
	"The decorative glitch flag of one landing page view flipped",
	`{"view_id":"0b6f...","active":true}`,
)

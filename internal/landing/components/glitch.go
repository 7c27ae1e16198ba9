package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// GlitchMarkerID is the element the glitch styles key off.
const GlitchMarkerID = "glitch-marker"

// GlitchMarker renders the glitch flag. The oob variant is pushed over the
// websocket and swapped in place by the htmx ws extension.
func GlitchMarker(active, oob bool) g.Node {
	class := "glitch-marker"
	if active {
		class += " hacker-glitch-active"
	}
	return Div(
		ID(GlitchMarkerID),
		Class(class),
		Aria("hidden", "true"),
		g.If(oob, hx.SwapOOB("true")),
	)
}

package components

import (
	"encoding/json"
	"net/url"

	"github.com/flashcode/flashweb/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ViewHeader carries the view ID on every HTMX request of a page.
const ViewHeader = "X-View-ID"

// PageBody renders the whole landing page inside the #app root. Interactive
// pages open the view's websocket and tag requests with the view ID.
func PageBody(page content.Page, st State) g.Node {
	return Div(
		ID("app"),
		Class("min-h-screen bg-darkBg font-sans text-gray-100 selection:bg-neonYellow selection:text-black overflow-x-hidden"),
		g.If(st.Interactive(), g.Group{
			hx.Ext("ws"),
			g.Attr("ws-connect", "/ws/landing?view="+url.QueryEscape(st.ViewID)),
			hx.Headers(viewHeaders(st.ViewID)),
		}),
		GlitchMarker(st.Glitching, false),
		SiteHeader(page, st),
		Main(
			HeroSection(page.Hero, st),
			ComparisonSection(page.Comparison, st),
			ModulesSection(page.Modules, st),
			InstructorSection(page.Instructor),
			PricingSection(page.Pricing, st),
			BonusesSection(page.Bonuses),
			FAQSection(page.FAQ, st),
			FinalCTASection(page.FinalCTA),
		),
		SiteFooter(page.Footer),
	)
}

func viewHeaders(viewID string) string {
	b, _ := json.Marshal(map[string]string{ViewHeader: viewID})
	return string(b)
}

package components

import (
	"strconv"

	"github.com/flashcode/flashweb/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const (
	headerBase        = "fixed top-0 left-0 right-0 z-50 transition-all duration-300"
	headerTransparent = "bg-transparent py-4 border-b border-transparent"
	headerOpaque      = "bg-black/90 backdrop-blur-md py-3 border-b border-gray-800"
)

// SiteHeader renders the sticky header. On an interactive page every window
// scroll posts the offset; the response replaces the header only when the
// scrolled flag flips.
func SiteHeader(page content.Page, st State) g.Node {
	style := headerTransparent
	if st.Scrolled {
		style = headerOpaque
	}

	return Header(
		ID("site-header"),
		Class(headerBase+" "+style),
		Data("scrolled", strconv.FormatBool(st.Scrolled)),
		g.If(st.Interactive(), g.Group{
			hx.Post("/ui/scroll"),
			hx.Trigger("scroll from:window delay:16ms"),
			hx.Vals("js:{offset: window.scrollY}"),
			hx.Swap("outerHTML"),
		}),
		Div(
			Class("max-w-7xl mx-auto px-4 flex justify-between items-center"),
			Div(
				Class("font-bold text-xl tracking-tighter"),
				g.Text(page.Brand),
				Span(Class("text-neonYellow"), g.Text(page.BrandMark)),
			),
			CTA(page.HeaderCTA, VariantSecondary, "text-xs md:text-sm px-4 py-2"),
		),
	)
}

package components

import (
	"fmt"

	"github.com/flashcode/flashweb/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Variant selects the look of a call-to-action link.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantOutline
)

const buttonBase = "inline-flex items-center justify-center font-bold uppercase tracking-wide transition-all duration-300 transform hover:-translate-y-1 active:translate-y-0 rounded-lg shadow-lg"

func (v Variant) classes() string {
	switch v {
	case VariantSecondary:
		return "bg-neonGreen text-black hover:bg-[#00CC33] shadow-neonGreen/20"
	case VariantOutline:
		return "border-2 border-neonYellow text-neonYellow hover:bg-neonYellow hover:text-black"
	default:
		return "bg-neonYellow text-black hover:bg-[#E6C200] shadow-neonYellow/20"
	}
}

// CTA renders a link styled as a button.
func CTA(link content.Link, variant Variant, class string, children ...g.Node) g.Node {
	if len(children) == 0 {
		children = []g.Node{g.Text(link.Label)}
	}
	return A(
		Href(link.Href),
		Class(buttonBase+" "+variant.classes()+" "+class),
		g.Group(children),
	)
}

// IconSpan renders a lucide icon resolved client side by iconify.
func IconSpan(icon content.Icon, class string) g.Node {
	return Span(
		Class("iconify "+class),
		Data("icon", "lucide:"+string(icon)),
		Aria("hidden", "true"),
	)
}

func section(id, class string, children ...g.Node) g.Node {
	return Section(
		g.If(id != "", ID(id)),
		Class("py-16 md:py-24 px-4 sm:px-6 lg:px-8 max-w-7xl mx-auto "+class),
		g.Group(children),
	)
}

// RevealLatch is the fragment swapped in when a reveal block intersects.
func RevealLatch(visible bool) g.Node {
	return Span(
		Class("reveal-latch"),
		g.If(visible, Data("visible", "true")),
	)
}

// Reveal wraps children in a block that fades in once. While hidden on an
// interactive page the wrapper reports its first intersection to the view.
// The transition delay is the one the view's revealer was created with.
func Reveal(st State, id string, children ...g.Node) g.Node {
	visible := st.visible(id)
	return Div(
		Class("reveal"),
		Data("reveal", id),
		g.Attr("style", fmt.Sprintf("--reveal-delay: %dms", st.Delays[id].Milliseconds())),
		g.If(!visible, g.Group{
			hx.Post("/ui/reveal/" + id),
			hx.Trigger("intersect once"),
			hx.Target("find .reveal-latch"),
			hx.Swap("outerHTML"),
		}),
		RevealLatch(visible),
		g.Group(children),
	)
}

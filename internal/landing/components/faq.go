package components

import (
	"fmt"
	"strconv"

	"github.com/flashcode/flashweb/internal/content"
	"github.com/flashcode/flashweb/internal/effects"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// FAQListID is the swap target of accordion toggles.
const FAQListID = "faq-list"

// FAQSection renders the FAQ heading and list.
func FAQSection(faq content.FAQSection, st State) g.Node {
	return section("faq", "",
		H2(Class("text-3xl font-bold text-center mb-12"), g.Text(faq.Title)),
		FAQList(faq.Entries, st),
	)
}

// FAQList renders the accordion. Interactive pages get server-driven buttons
// with every answer region in place, closed ones inert and collapsed to zero
// height; everything else uses native exclusive details elements.
func FAQList(entries []content.FaqEntry, st State) g.Node {
	items := make([]g.Node, 0, len(entries))
	for i, e := range entries {
		if st.Interactive() {
			items = append(items, faqItem(i, e, st.FAQ))
		} else {
			items = append(items, faqDetails(i, e, st.FAQ))
		}
	}
	return Div(ID(FAQListID), Class("max-w-3xl mx-auto"), g.Group(items))
}

func faqItem(i int, e content.FaqEntry, state effects.AccordionState) g.Node {
	open := state.IsOpen(i)
	questionID := fmt.Sprintf("faq-q-%d", i)
	answerID := fmt.Sprintf("faq-a-%d", i)

	chevron := IconSpan(content.IconChevronDown, "text-gray-500")
	if open {
		chevron = IconSpan(content.IconChevronUp, "text-neonYellow")
	}

	return Div(
		Class("faq-item border-b border-gray-800"),
		Data("index", strconv.Itoa(i)),
		Button(
			Type("button"),
			ID(questionID),
			Class("w-full py-5 text-left flex items-center justify-between focus:outline-none"),
			Aria("expanded", strconv.FormatBool(open)),
			Aria("controls", answerID),
			hx.Post(fmt.Sprintf("/ui/faq/%d/toggle", i)),
			hx.Target("#"+FAQListID),
			hx.Swap("outerHTML"),
			Span(Class("text-lg font-medium text-gray-200"), g.Text(e.Question)),
			chevron,
		),
		Div(
			ID(answerID),
			Class(answerClass(open)),
			Role("region"),
			Aria("labelledby", questionID),
			g.If(!open, g.Group{Aria("hidden", "true"), g.Attr("inert")}),
			Div(
				Class("faq-answer-inner"),
				P(Class("text-gray-400 leading-relaxed pb-5"), g.Text(e.Answer)),
			),
		),
	)
}

// answerClass keeps the region's id stable across swaps, so htmx settles the
// class change and the height transition runs in both directions.
func answerClass(open bool) string {
	if open {
		return "faq-answer faq-answer-open"
	}
	return "faq-answer"
}

func faqDetails(i int, e content.FaqEntry, state effects.AccordionState) g.Node {
	return Details(
		Name("faq"),
		Class("faq-item border-b border-gray-800"),
		Data("index", strconv.Itoa(i)),
		g.If(state.IsOpen(i), g.Attr("open")),
		Summary(
			Class("w-full py-5 flex items-center justify-between cursor-pointer"),
			Span(Class("text-lg font-medium text-gray-200"), g.Text(e.Question)),
			IconSpan(content.IconChevronDown, "faq-chevron text-gray-500"),
		),
		P(Class("text-gray-400 leading-relaxed pb-5"), g.Text(e.Answer)),
	)
}

package components

import (
	"github.com/flashcode/flashweb/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HeroSection renders the pitch, the video placeholder and the main CTA.
func HeroSection(hero content.Hero, st State) g.Node {
	return Div(
		Class("relative pt-32 pb-20 md:pt-40 md:pb-32 overflow-hidden"),
		Div(Class("absolute top-0 left-1/2 -translate-x-1/2 w-[1000px] h-[500px] bg-neonYellow/10 rounded-full blur-[120px] pointer-events-none opacity-20")),
		section("", "text-center relative z-10",
			Reveal(st, RevealHero,
				Span(
					Class("inline-block py-1 px-3 rounded-full bg-gray-800 border border-gray-700 text-xs font-semibold text-neonYellow mb-6 tracking-wide"),
					g.Text(hero.Badge),
				),
				H1(
					Class("text-4xl md:text-6xl lg:text-7xl font-black text-white leading-tight mb-6"),
					g.Text(hero.Headline), Br(),
					Span(
						Class("text-transparent bg-clip-text bg-gradient-to-r from-gray-100 to-gray-500 line-through decoration-neonYellow decoration-4"),
						g.Text(hero.StruckLine),
					),
				),
				H2(
					Class("text-lg md:text-2xl text-gray-300 max-w-4xl mx-auto mb-8 leading-relaxed font-light"),
					g.Text(hero.SubPrefix),
					Strong(Class("text-neonGreen"), g.Text(hero.SubSpeed)),
					g.Text(hero.SubMiddle),
					Strong(Class("text-white"), g.Text(hero.SubRange)),
					g.Text(hero.SubSuffix),
				),
				P(Class("text-sm md:text-base text-gray-500 max-w-2xl mx-auto mb-10"), g.Text(hero.Lead)),
				videoPlaceholder(hero),
				Div(
					Class("flex flex-col items-center gap-3"),
					CTA(hero.CTA, VariantPrimary, "px-8 py-5 text-lg md:text-xl w-full md:w-auto"),
					Span(
						Class("text-xs text-gray-500 flex items-center gap-1"),
						IconSpan(content.IconLock, "w-3 h-3"),
						g.Text(hero.CTANote),
					),
				),
			),
		),
	)
}

func videoPlaceholder(hero content.Hero) g.Node {
	return Div(
		Class("relative w-full max-w-4xl mx-auto aspect-video bg-cardBg rounded-2xl border border-gray-800 shadow-2xl flex items-center justify-center group cursor-pointer overflow-hidden mb-12"),
		Div(Class("absolute inset-0 bg-gradient-to-tr from-black via-transparent to-transparent opacity-60")),
		Div(
			Class("w-20 h-20 bg-neonYellow rounded-full flex items-center justify-center group-hover:scale-110 transition-transform z-10 relative"),
			IconSpan(content.IconPlay, "w-8 h-8 text-black ml-1"),
		),
		P(Class("absolute bottom-6 left-6 text-sm font-medium text-gray-300 z-10"), g.Text(hero.VideoCaption)),
		Div(
			Class("absolute inset-0 opacity-30 bg-cover bg-center mix-blend-overlay"),
			g.Attr("style", "background-image: url('"+hero.VideoPoster+"')"),
		),
	)
}

// ComparisonSection contrasts the old and new way side by side.
func ComparisonSection(c content.ComparisonSection, st State) g.Node {
	claims := func(items []string, icon content.Icon, iconClass, itemClass string) g.Node {
		return Ul(
			Class("space-y-6 mt-4"),
			g.Map(items, func(item string) g.Node {
				return Li(
					Class("flex items-start gap-4 "+itemClass),
					IconSpan(icon, "w-6 h-6 shrink-0 "+iconClass),
					Span(g.Text(item)),
				)
			}),
		)
	}

	return Div(
		Class("bg-black/40 border-y border-gray-900"),
		section("comparacao", "",
			Reveal(st, RevealComparison,
				H2(Class("text-3xl md:text-4xl font-bold text-center mb-16"), g.Text(c.Title)),
				Div(
					Class("grid md:grid-cols-2 gap-8 md:gap-12"),
					Div(
						Class("bg-red-950/10 border border-red-900/30 rounded-2xl p-8 relative"),
						Data("way", "old"),
						Div(Class("absolute -top-4 left-8 bg-red-600 text-white px-4 py-1 text-sm font-bold rounded-full"), g.Text(c.OldLabel)),
						claims(c.Comparison.OldWay, content.IconXCircle, "text-red-500", "text-gray-400"),
					),
					Div(
						Class("bg-green-950/10 border border-neonGreen/30 rounded-2xl p-8 relative"),
						Data("way", "new"),
						Div(Class("absolute -top-4 left-8 bg-neonGreen text-black px-4 py-1 text-sm font-bold rounded-full"), g.Text(c.NewLabel)),
						claims(c.Comparison.NewWay, content.IconCheckCircle, "text-neonGreen", "text-gray-100 font-medium"),
					),
				),
			),
		),
	)
}

// ModulesSection renders the curriculum cards, staggered on reveal.
func ModulesSection(m content.ModulesSection, st State) g.Node {
	cards := make([]g.Node, 0, len(m.Entries))
	for _, entry := range m.Entries {
		cards = append(cards, Reveal(st, ModuleRevealID(entry),
			Article(
				Class("module-card bg-cardBg p-8 rounded-2xl border border-gray-800 hover:border-neonYellow/50 transition-colors h-full flex flex-col group"),
				Div(
					Class("w-12 h-12 bg-gray-800 rounded-lg flex items-center justify-center mb-6 group-hover:bg-neonYellow transition-colors"),
					IconSpan(entry.Icon, "w-6 h-6 text-gray-200 group-hover:text-black transition-colors"),
				),
				H3(Class("text-xl font-bold text-white mb-3"), g.Text(entry.Title)),
				P(Class("text-gray-400 leading-relaxed text-sm"), g.Text(entry.Description)),
			),
		))
	}

	return section("modulos", "",
		Div(
			Class("text-center mb-16"),
			H2(Class("text-3xl md:text-5xl font-bold mb-4"), g.Text(m.Title)),
			P(Class("text-gray-400"), g.Text(m.Subtitle)),
		),
		Div(
			Class("grid md:grid-cols-3 gap-8"),
			g.Group(cards),
		),
	)
}

// InstructorSection renders the instructor bio.
func InstructorSection(in content.Instructor) g.Node {
	return Div(
		Class("bg-gradient-to-b from-cardBg to-darkBg py-20 border-y border-gray-800"),
		section("instrutor", "",
			Div(
				Class("flex flex-col md:flex-row items-center gap-12 max-w-5xl mx-auto"),
				Div(
					Class("w-48 h-48 md:w-64 md:h-64 shrink-0 relative"),
					Div(Class("absolute inset-0 bg-neonYellow rounded-full blur-2xl opacity-20")),
					Img(
						Src(in.PhotoURL),
						Alt(in.PhotoAlt),
						g.Attr("loading", "lazy"),
						Class("w-full h-full object-cover rounded-full border-4 border-gray-800 relative z-10 grayscale hover:grayscale-0 transition-all duration-500"),
					),
				),
				Div(
					Class("text-center md:text-left"),
					H3(Class("text-2xl font-bold text-white mb-2"), g.Text(in.Name)),
					P(Class("text-neonGreen font-medium mb-6"), g.Text(in.Role)),
					P(Class("text-gray-400 leading-relaxed mb-6"), g.Text(`"`+in.Quote+`"`)),
				),
			),
		),
	)
}

// PricingSection renders both plans under the pricing anchor.
func PricingSection(p content.PricingSection, st State) g.Node {
	cards := make([]g.Node, 0, len(p.Plans))
	for _, plan := range p.Plans {
		cards = append(cards, Reveal(st, PlanRevealID(plan), planCard(plan)))
	}

	return section(p.Anchor, "scroll-mt-24",
		Div(
			Class("text-center mb-16"),
			H2(Class("text-3xl md:text-5xl font-bold mb-4"), g.Text(p.Title)),
			P(Class("text-gray-400"), g.Text(p.Subtitle)),
		),
		Div(
			Class("grid lg:grid-cols-2 gap-8 max-w-4xl mx-auto items-center"),
			g.Group(cards),
		),
		Div(
			Class("text-center mt-12"),
			P(
				Class("text-sm text-gray-500 flex justify-center items-center gap-2"),
				IconSpan(content.IconLock, "w-4 h-4"),
				g.Text(p.Guarantee),
			),
		),
	)
}

func planCard(plan content.Plan) g.Node {
	if plan.Highlight {
		return Div(
			Class("plan-card bg-gray-900 border-2 border-neonGreen rounded-2xl p-8 relative transform md:scale-105 z-10"),
			Data("plan", plan.ID),
			Div(Class("absolute top-0 left-1/2 -translate-x-1/2 -translate-y-1/2 bg-neonGreen text-black px-4 py-1 text-sm font-extrabold rounded-full tracking-wider shadow-lg"), g.Text(plan.Badge)),
			Div(
				Class("flex justify-between items-start mb-4"),
				Div(
					H3(Class("text-2xl font-bold text-white"), g.Text(plan.Name)),
					Div(Class("flex items-baseline gap-1 mt-1"), Span(Class("text-sm text-gray-500 line-through"), g.Text(plan.OldPrice))),
				),
				Div(
					Class("text-right"),
					Div(Class("text-4xl font-black text-neonGreen"), g.Text(plan.Price)),
					Div(Class("text-sm text-gray-400"), g.Text(plan.PriceNote)),
				),
			),
			Div(Class("border-t border-gray-800 my-6")),
			Ul(
				Class("space-y-4 mb-8"),
				g.Map(plan.Features, func(f string) g.Node {
					return Li(Class("flex items-center gap-3 text-sm text-gray-200 font-medium"), IconSpan(content.IconCheck, "w-4 h-4 text-neonGreen"), g.Text(f))
				}),
				g.Map(plan.Extras, func(e content.PlanExtra) g.Node {
					return Li(Class("plan-extra flex items-center gap-3 text-sm text-white font-bold bg-white/5 p-2 rounded"), IconSpan(e.Icon, "w-4 h-4 text-neonGreen"), g.Text(e.Label))
				}),
			),
			CTA(plan.CTA, VariantSecondary, "w-full py-4 text-lg animate-pulse-slow"),
			g.If(plan.Footnote != "", P(Class("text-center text-xs text-gray-500 mt-3"), g.Text(plan.Footnote))),
		)
	}

	return Div(
		Class("plan-card bg-cardBg border border-gray-800 rounded-2xl p-8 relative hover:border-gray-600 transition-all"),
		Data("plan", plan.ID),
		Div(Class("inline-block px-3 py-1 bg-gray-800 text-gray-300 text-xs font-bold rounded mb-4"), g.Text(plan.Badge)),
		H3(Class("text-2xl font-bold text-white mb-2"), g.Text(plan.Name)),
		Div(Class("flex items-baseline gap-1 mb-1"), Span(Class("text-sm text-gray-500 line-through"), g.Text(plan.OldPrice))),
		Div(
			Class("flex items-baseline gap-1 mb-6"),
			Span(Class("text-4xl font-black text-white"), g.Text(plan.Price)),
			Span(Class("text-sm text-gray-400"), g.Text(plan.PriceNote)),
		),
		Ul(
			Class("space-y-4 mb-8"),
			g.Map(plan.Features, func(f string) g.Node {
				return Li(Class("flex items-center gap-3 text-sm text-gray-300"), IconSpan(content.IconCheck, "w-4 h-4 text-neonYellow"), g.Text(f))
			}),
		),
		CTA(plan.CTA, VariantPrimary, "w-full py-4"),
		g.If(plan.Footnote != "", P(Class("text-center text-xs text-gray-500 mt-3"), g.Text(plan.Footnote))),
	)
}

// BonusesSection lists the premium bonuses, numbered from their position.
func BonusesSection(b content.BonusesSection) g.Node {
	cards := make([]g.Node, 0, len(b.Entries))
	for idx, bonus := range b.Entries {
		iconClass := "text-orange-500"
		if idx == len(b.Entries)-1 {
			iconClass = "text-white"
		}
		cards = append(cards, Div(
			Class("bonus-card bg-cardBg border border-gray-800 p-8 rounded-2xl hover:border-gray-700 transition-all group relative overflow-hidden"),
			Div(
				Class("flex justify-between items-start mb-6 relative z-10"),
				Div(Class("w-12 h-12 rounded-lg flex items-center justify-center"), IconSpan(bonus.Icon, "text-4xl "+iconClass)),
				Div(
					Class("text-right"),
					Div(Class("text-xs text-gray-500 line-through font-medium"), g.Text(bonus.OldPrice)),
					Div(Class("text-neonGreen font-bold text-sm uppercase"), g.Text(b.FreeLabel)),
				),
			),
			H4(Class("font-bold text-neonGreen text-lg mb-3 relative z-10"), g.Text(content.BonusLabel(idx)+": "+bonus.Title)),
			P(Class("text-gray-400 text-sm leading-relaxed relative z-10"), g.Text(bonus.Description)),
		))
	}

	return Div(
		ID("bonus"),
		Class("bg-black border-y border-gray-900 py-20"),
		Div(
			Class("max-w-6xl mx-auto px-4"),
			Div(
				Class("text-center mb-12"),
				H2(
					Class("text-3xl md:text-4xl font-bold text-white mb-2"),
					g.Text(b.Title),
					Span(Class("text-neonGreen"), g.Text(b.Highlight)),
				),
				P(
					Class("text-gray-400 text-sm uppercase tracking-widest"),
					g.Text(b.TotalLabel),
					Span(Class("text-neonGreen font-bold"), g.Text(b.TotalValue)),
				),
			),
			Div(Class("grid md:grid-cols-2 gap-6"), g.Group(cards)),
		),
	)
}

// FinalCTASection renders the closing pitch.
func FinalCTASection(f content.FinalCTA) g.Node {
	variants := []Variant{VariantOutline, VariantSecondary}
	links := make([]g.Node, 0, len(f.Links))
	for i, l := range f.Links {
		v := VariantSecondary
		if i < len(variants) {
			v = variants[i]
		}
		links = append(links, CTA(l, v, "w-full md:w-auto px-8 py-4"))
	}

	return Div(
		Class("bg-gradient-to-br from-gray-900 to-black border-t border-gray-800 py-20"),
		section("", "text-center",
			H2(
				Class("text-3xl md:text-5xl font-bold text-white mb-6"),
				g.Text(f.Title), Br(),
				Span(Class("text-neonYellow"), g.Text(f.Highlight)),
			),
			P(Class("text-gray-400 mb-10 max-w-2xl mx-auto"), g.Text(f.Text)),
			Div(Class("flex flex-col md:flex-row justify-center items-center gap-4"), g.Group(links)),
		),
	)
}

// SiteFooter renders the footer.
func SiteFooter(f content.Footer) g.Node {
	return Footer(
		Class("bg-black py-8 border-t border-gray-900 text-center text-gray-600 text-sm"),
		P(g.Text(f.Copyright)),
		Div(
			Class("flex justify-center gap-4 mt-4"),
			g.Map(f.Links, func(l content.Link) g.Node {
				return A(Href(l.Href), Class("hover:text-gray-400"), g.Text(l.Label))
			}),
		),
	)
}

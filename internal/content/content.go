// Package content holds the copy of the landing page. Every collection is
// created once and never mutated; accessors hand out copies in display order.
package content

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Icon is a lucide icon name.
type Icon string

const (
	IconZap         Icon = "zap"
	IconPalette     Icon = "palette"
	IconDollarSign  Icon = "dollar-sign"
	IconAward       Icon = "award"
	IconFileText    Icon = "file-text"
	IconUsers       Icon = "users"
	IconStar        Icon = "star"
	IconCheck       Icon = "check"
	IconCheckCircle Icon = "check-circle-2"
	IconXCircle     Icon = "x-circle"
	IconChevronDown Icon = "chevron-down"
	IconChevronUp   Icon = "chevron-up"
	IconLock        Icon = "lock"
	IconPlay        Icon = "play"
)

// ComparisonList contrasts the old way of building sites with the new one.
type ComparisonList struct {
	OldWay []string
	NewWay []string
}

// ModuleEntry is one curriculum module.
type ModuleEntry struct {
	ID          int
	Title       string
	Description string
	Icon        Icon
}

// BonusEntry is one bonus of the premium plan.
type BonusEntry struct {
	Title       string
	Description string
	OldPrice    string
	Icon        Icon
}

// FaqEntry is one question of the FAQ accordion.
type FaqEntry struct {
	Question string
	Answer   string
}

// Link is a call-to-action target.
type Link struct {
	Label string
	Href  string
}

// PlanExtra is a highlighted line of a plan, such as a bundled bonus.
type PlanExtra struct {
	Icon  Icon
	Label string
}

// Plan is a pricing tier.
type Plan struct {
	ID        string
	Badge     string
	Name      string
	OldPrice  string
	Price     string
	PriceNote string
	Features  []string
	Extras    []PlanExtra
	CTA       Link
	Highlight bool
	Footnote  string
}

// Hero is the top of the page.
type Hero struct {
	Badge        string
	Headline     string
	StruckLine   string
	SubPrefix    string
	SubSpeed     string
	SubMiddle    string
	SubRange     string
	SubSuffix    string
	Lead         string
	VideoCaption string
	VideoPoster  string
	CTA          Link
	CTANote      string
}

// Instructor is the instructor bio.
type Instructor struct {
	Name     string
	Role     string
	Quote    string
	PhotoURL string
	PhotoAlt string
}

// Section is a titled page section.
type Section struct {
	Title    string
	Subtitle string
}

// FinalCTA is the closing call to action.
type FinalCTA struct {
	Title     string
	Highlight string
	Text      string
	Links     []Link
}

// Footer is the page footer.
type Footer struct {
	Copyright string
	Links     []Link
}

// Page aggregates every piece of copy rendered on the landing page.
type Page struct {
	Brand      string
	BrandMark  string
	HeaderCTA  Link
	Hero       Hero
	Comparison ComparisonSection
	Modules    ModulesSection
	Instructor Instructor
	Pricing    PricingSection
	Bonuses    BonusesSection
	FAQ        FAQSection
	FinalCTA   FinalCTA
	Footer     Footer
}

// ComparisonSection wraps the comparison list with its labels.
type ComparisonSection struct {
	Title      string
	OldLabel   string
	NewLabel   string
	Comparison ComparisonList
}

// ModulesSection wraps the curriculum.
type ModulesSection struct {
	Section
	Entries []ModuleEntry
}

// PricingSection wraps the plans.
type PricingSection struct {
	Section
	Anchor    string
	Plans     []Plan
	Guarantee string
}

// BonusesSection wraps the bonus list.
type BonusesSection struct {
	Title      string
	Highlight  string
	TotalLabel string
	TotalValue string
	FreeLabel  string
	Entries    []BonusEntry
}

// FAQSection wraps the FAQ entries.
type FAQSection struct {
	Title   string
	Entries []FaqEntry
}

// BonusLabel numbers a bonus from its position: "BÔNUS 1" for idx 0.
func BonusLabel(idx int) string {
	// A Caser is stateful and cannot be shared between goroutines.
	upper := cases.Upper(language.BrazilianPortuguese)
	return fmt.Sprintf("%s %d", upper.String("bônus"), idx+1)
}

// Options override the configurable links of the page.
type Options struct {
	StandardCheckoutURL string
	PremiumCheckoutURL  string
}

// Option configures New.
type Option func(*Options)

// WithCheckoutURLs sets the checkout targets of both plans. Empty values keep "#".
func WithCheckoutURLs(standard, premium string) Option {
	return func(o *Options) {
		if standard != "" {
			o.StandardCheckoutURL = standard
		}
		if premium != "" {
			o.PremiumCheckoutURL = premium
		}
	}
}

// New builds a fresh copy of the page.
func New(opts ...Option) Page {
	o := Options{StandardCheckoutURL: "#", PremiumCheckoutURL: "#"}
	for _, opt := range opts {
		opt(&o)
	}
	return buildPage(o)
}

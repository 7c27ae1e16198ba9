package pages

import (
	"github.com/a-h/templ"

	"github.com/flashcode/flashweb/internal/content"
	"github.com/flashcode/flashweb/internal/landing/components"
	"github.com/flashcode/flashweb/internal/view"
	"github.com/flashcode/flashweb/web/src/templates/layouts"
)

// LandingTitle is the document title of the landing page.
const LandingTitle = "Crie Sites com I.A."

// Landing renders the full landing document for st.
func Landing(page content.Page, st components.State, assetBase string) templ.Component {
	body := view.AdaptGomponentToTempl(components.PageBody(page, st))

	return layouts.Base(layouts.Document{
		Title:       LandingTitle,
		Description: page.Hero.Lead,
		AssetBase:   assetBase,
		Interactive: st.Interactive(),
	}, body)
}

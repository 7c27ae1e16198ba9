package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	tailwindScript = "https://cdn.tailwindcss.com"
	iconifyScript  = "https://code.iconify.design/3/3.1.1/iconify.min.js"
	htmxScript     = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSScript   = "https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"

	tailwindConfig = `tailwind.config={theme:{extend:{colors:{darkBg:"#050505",cardBg:"#111111",neonYellow:"#FFD700",neonGreen:"#00FF41"},fontFamily:{sans:["Inter","sans-serif"]}}}}`

	// revealScript arms the hidden reveal state on the first htmx:load and
	// disarms it when a request fails.
	revealScript = `<script>(function(){var c=document.documentElement.classList;` +
		`document.addEventListener("htmx:load",function(){c.add("reveal-ready")},{once:true});` +
		`["htmx:responseError","htmx:sendError"].forEach(function(n){document.addEventListener(n,function(){c.remove("reveal-ready")})})})();</script>`
)

// Document describes the shell around a page body.
type Document struct {
	Title       string
	Description string
	Lang        string
	AssetBase   string
	// Interactive pages load htmx and its websocket extension.
	Interactive bool
}

// Base renders the HTML document around body.
func Base(doc Document, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := doc.Lang
		if lang == "" {
			lang = "pt-BR"
		}

		parts := []string{
			`<!doctype html><html lang="`, templ.EscapeString(lang), `"><head>`,
			`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, templ.EscapeString(CalculateTitle(doc.Title)), `</title>`,
		}
		if doc.Description != "" {
			parts = append(parts, `<meta name="description" content="`, templ.EscapeString(doc.Description), `">`)
		}
		parts = append(parts,
			`<script src="`, tailwindScript, `"></script>`,
			`<script>`, tailwindConfig, `</script>`,
			`<script src="`, iconifyScript, `" defer></script>`,
		)
		if doc.Interactive {
			parts = append(parts,
				`<script src="`, htmxScript, `" defer></script>`,
				`<script src="`, htmxWSScript, `" defer></script>`,
				revealScript,
			)
		}
		parts = append(parts,
			`<link rel="stylesheet" href="`, templ.EscapeString(AssetURL(doc.AssetBase, "/static/css/landing.css")), `">`,
			`</head><body class="bg-darkBg">`,
		)

		for _, p := range parts {
			if _, err := io.WriteString(w, p); err != nil {
				return err
			}
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

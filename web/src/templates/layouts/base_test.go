package layouts

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "FlashWeb", CalculateTitle(""))
	assert.Equal(t, "Preços - FlashWeb", CalculateTitle("Preços"))
}

func TestAssetURL(t *testing.T) {
	assert.Equal(t, "/static/css/landing.css", AssetURL("", "/static/css/landing.css"))
	assert.Equal(t, "https://cdn.example.com/static/css/landing.css", AssetURL("https://cdn.example.com/", "/static/css/landing.css"))
}

func TestBase(t *testing.T) {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="app"></div>`)
		return err
	})

	render := func(doc Document) string {
		var b strings.Builder
		require.NoError(t, Base(doc, body).Render(context.Background(), &b))
		return b.String()
	}

	html := render(Document{Title: "<Landing>", Interactive: true})
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, `lang="pt-BR"`)
	assert.Contains(t, html, "<title>&lt;Landing&gt; - FlashWeb</title>")
	assert.Contains(t, html, htmxScript)
	assert.Contains(t, html, htmxWSScript)
	assert.Contains(t, html, `c.add("reveal-ready")`, "reveal state is armed by htmx")
	assert.Contains(t, html, `htmx:responseError`, "failed requests disarm the reveal state")
	assert.Contains(t, html, `<body class="bg-darkBg"><div id="app"></div></body></html>`)

	static := render(Document{AssetBase: "https://cdn.example.com"})
	assert.NotContains(t, static, htmxScript)
	assert.NotContains(t, static, "reveal-ready", "static pages never hide content")
	assert.Contains(t, static, `href="https://cdn.example.com/static/css/landing.css"`)
}

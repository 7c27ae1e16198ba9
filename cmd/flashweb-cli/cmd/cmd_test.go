package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "FlashWeb CLI v"+version+"\n", out)
}

func TestTopicsList(t *testing.T) {
	out, err := run(t, "topics", "list", "--format", "table", "--module", "", "--scope", "")
	require.NoError(t, err)
	assert.Contains(t, out, "landing.glitch.changed")
	assert.Contains(t, out, "ws.html.direct")

	out, err = run(t, "topics", "list", "--format", "json", "--module", "landing", "--scope", "")
	require.NoError(t, err)
	var got struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Count)

	out, err = run(t, "topics", "list", "--format", "table", "--module", "checkout", "--scope", "")
	require.NoError(t, err)
	assert.Contains(t, out, "No topics found matching: module 'checkout'")

	_, err = run(t, "topics", "list", "--format", "table", "--module", "", "--scope", "global")
	assert.Error(t, err)
}

func TestTopicsGetAndValidate(t *testing.T) {
	out, err := run(t, "topics", "get", "ws.html.direct", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Module:      (framework)")

	_, err = run(t, "topics", "get", "landing.missing", "--format", "table")
	assert.Error(t, err)

	out, err = run(t, "topics", "validate", "landing.glitch.changed")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	out, err = run(t, "topics", "validate", "Invalid.Topic")
	assert.Error(t, err)
	assert.Contains(t, out, "Topic name validation failed")
}

func TestContent(t *testing.T) {
	out, err := run(t, "content", "--section", "modules", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "O Segredo do Lovable")
	assert.Contains(t, out, "A Máquina de Vendas")

	out, err = run(t, "content", "--section", "bonuses", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "BÔNUS 4")

	out, err = run(t, "content", "--section", "faq", "--format", "json")
	require.NoError(t, err)
	var faqs []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &faqs))
	assert.Len(t, faqs, 6)

	_, err = run(t, "content", "--section", "testimonials", "--format", "table")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	mem := afero.NewMemMapFs()
	prev := exportFs
	exportFs = mem
	t.Cleanup(func() { exportFs = prev })
	t.Setenv("CHECKOUT_PREMIUM_URL", "https://pay.example.com/premium")

	out, err := run(t, "export", "--out", "site", "--asset-base", "")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote site/index.html")

	html, err := afero.ReadFile(mem, filepath.Join("site", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "https://pay.example.com/premium")

	exists, err := afero.Exists(mem, filepath.Join("site", "static", "css", "landing.css"))
	require.NoError(t, err)
	assert.True(t, exists)
}

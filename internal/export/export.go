// Package export writes the landing page as a static site: one HTML document
// without view wiring plus the embedded stylesheets.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/flashcode/flashweb/internal/content"
	"github.com/flashcode/flashweb/internal/landing/components"
	"github.com/flashcode/flashweb/internal/rendering"
	"github.com/flashcode/flashweb/internal/storage"
	"github.com/flashcode/flashweb/web"
	"github.com/flashcode/flashweb/web/src/templates/pages"
)

// IndexFile is the name of the exported document.
const IndexFile = "index.html"

// Exporter renders the static site into a storage.Store.
type Exporter struct {
	store     storage.Store
	assets    fs.FS
	renderer  rendering.Renderer
	assetBase string
	logger    *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithAssetBase prefixes asset URLs, e.g. a CDN origin.
func WithAssetBase(base string) Option {
	return func(e *Exporter) { e.assetBase = base }
}

// WithAssets replaces the embedded static assets.
func WithAssets(assets fs.FS) Option {
	return func(e *Exporter) { e.assets = assets }
}

// New creates an exporter writing to store.
func New(store storage.Store, opts ...Option) *Exporter {
	e := &Exporter{
		store:    store,
		assets:   web.FS,
		renderer: rendering.NewUniversalRenderer(),
		logger:   slog.Default().With("service", "export"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result lists the files written by Export, relative to the output directory.
type Result struct {
	Files []string
}

// Export writes index.html and the static assets under dir.
func (e *Exporter) Export(ctx context.Context, page content.Page, dir string) (Result, error) {
	var res Result

	html, err := e.renderer.RenderComponent(ctx, pages.Landing(page, components.StaticState(), e.assetBase))
	if err != nil {
		return res, fmt.Errorf("render landing page: %w", err)
	}
	if _, err := e.store.Save(ctx, path.Join(dir, IndexFile), bytes.NewReader(html)); err != nil {
		return res, fmt.Errorf("write %s: %w", IndexFile, err)
	}
	res.Files = append(res.Files, IndexFile)

	err = fs.WalkDir(e.assets, "static", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(e.assets, p)
		if err != nil {
			return err
		}
		if _, err := e.store.Save(ctx, path.Join(dir, p), bytes.NewReader(data)); err != nil {
			return err
		}
		res.Files = append(res.Files, p)
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("copy static assets: %w", err)
	}

	e.logger.Info("Exported static site", "dir", dir, "files", len(res.Files))
	return res, nil
}

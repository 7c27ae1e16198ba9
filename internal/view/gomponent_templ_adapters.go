// Package view holds the glue between the request, the session and the two
// component libraries used by the pages.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter lets a gomponents.Node be rendered as a templ.Component,
// so section nodes can be placed inside the templ document layout.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component. gomponents has no context, so ctx is only
// checked for cancellation before writing.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.Node.Render(w)
}

// AdaptGomponentToTempl wraps node as a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

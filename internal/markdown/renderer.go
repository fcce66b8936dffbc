// Package markdown renders Markdown source to HTML with goldmark.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Options holds the renderer settings.
type Options struct {
	// Linkify turns bare URLs into hyperlinks.
	Linkify bool
}

// Renderer converts Markdown to HTML. It reuses one output buffer between
// calls and is not safe for concurrent use.
type Renderer struct {
	md  goldmark.Markdown
	buf bytes.Buffer
}

// New creates a Renderer configured with opts.
func New(opts Options) *Renderer {
	var exts []goldmark.Extender
	if opts.Linkify {
		exts = append(exts, extension.Linkify)
	}
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(exts...)),
	}
}

// Render converts source to HTML. Empty source renders to the empty string.
func (r *Renderer) Render(source string) (string, error) {
	r.buf.Reset()
	if err := r.md.Convert([]byte(source), &r.buf); err != nil {
		return "", err
	}
	return r.buf.String(), nil
}

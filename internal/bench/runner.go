// Package bench times repeated renders of a single in-memory document.
package bench

import (
	"fmt"
	"io"
	"os"
	"time"
)

const (
	DefaultIterations = 1000
	DefaultLabel      = "goldmark"
)

// Renderer converts Markdown source into HTML.
type Renderer interface {
	Render(source string) (string, error)
}

// RenderFunc adapts a plain function to Renderer.
type RenderFunc func(source string) (string, error)

func (f RenderFunc) Render(source string) (string, error) { return f(source) }

// Document is the text under test. It is read once and never mutated.
type Document struct {
	Path string
	Text string
}

// LoadDocument reads the whole file at path.
func LoadDocument(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &FileAccessError{Path: path, Err: err}
	}
	return Document{Path: path, Text: string(b)}, nil
}

// Result describes one completed run.
type Result struct {
	Label      string
	Iterations int
	Elapsed    time.Duration
	First      string
}

// Millis returns the elapsed time in fractional milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

type Option func(*Runner)

// WithIterations overrides the number of renders per run.
func WithIterations(n int) Option {
	return func(r *Runner) { r.iterations = n }
}

// WithLabel overrides the label printed on the timing line.
func WithLabel(label string) Option {
	return func(r *Runner) { r.label = label }
}

// Runner renders a document a fixed number of times in sequence and reports
// how long the loop took.
type Runner struct {
	renderer   Renderer
	out        io.Writer
	iterations int
	label      string
}

func New(renderer Renderer, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		renderer:   renderer,
		out:        out,
		iterations: DefaultIterations,
		label:      DefaultLabel,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile loads the document at path and runs it. Nothing is written to the
// output when the file cannot be read.
func (r *Runner) RunFile(path string) (Result, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return Result{}, err
	}
	return r.Run(doc)
}

// Run renders doc the configured number of times. The first render result is
// written to the output, followed after the loop by a "<label>: <ms>ms" line.
// A render failure stops the run before the timing line is written.
func (r *Runner) Run(doc Document) (Result, error) {
	res := Result{Label: r.label, Iterations: r.iterations}

	start := time.Now()
	for i := range r.iterations {
		out, err := r.renderer.Render(doc.Text)
		if err != nil {
			return Result{}, &RenderError{Iteration: i, Err: err}
		}
		if i == 0 {
			res.First = out
			if _, err := fmt.Fprintln(r.out, out); err != nil {
				return Result{}, fmt.Errorf("write first result: %w", err)
			}
		}
	}
	res.Elapsed = time.Since(start)

	if _, err := fmt.Fprintf(r.out, "%s: %.3fms\n", res.Label, res.Millis()); err != nil {
		return Result{}, fmt.Errorf("write timing: %w", err)
	}
	return res, nil
}

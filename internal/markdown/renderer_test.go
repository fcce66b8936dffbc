package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "Heading with link",
			opts:     Options{Linkify: true},
			input:    "# Hello [World](http://example.com)",
			contains: []string{"<h1>", "Hello", `<a href="http://example.com">World</a>`, "</h1>"},
		},
		{
			name:     "Bare URL linkified",
			opts:     Options{Linkify: true},
			input:    "Visit https://example.com today",
			contains: []string{`<a href="https://example.com">https://example.com</a>`},
		},
		{
			name:     "Bare URL left alone without linkify",
			opts:     Options{},
			input:    "Visit https://example.com today",
			contains: []string{"<p>Visit https://example.com today</p>"},
			excludes: []string{"<a "},
		},
		{
			name:     "Emphasis",
			opts:     Options{Linkify: true},
			input:    "some *em* and **strong** text",
			contains: []string{"<em>em</em>", "<strong>strong</strong>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New(tt.opts).Render(tt.input)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	out, err := New(Options{Linkify: true}).Render("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderReusesBufferSafely(t *testing.T) {
	r := New(Options{Linkify: true})

	first, err := r.Render("# One")
	require.NoError(t, err)
	second, err := r.Render("# Two")
	require.NoError(t, err)

	assert.Equal(t, "<h1>One</h1>\n", first)
	assert.Equal(t, "<h1>Two</h1>\n", second)
}

func TestRenderDeterministic(t *testing.T) {
	src := strings.Repeat("- item with https://example.com/path\n", 20)

	a, err := New(Options{Linkify: true}).Render(src)
	require.NoError(t, err)
	b, err := New(Options{Linkify: true}).Render(src)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

var renderSink string

func BenchmarkRender(b *testing.B) {
	src := strings.Repeat("# Title\n\nSome *text* with a link https://example.com and `code`.\n\n", 50)
	r := New(Options{Linkify: true})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := r.Render(src)
		if err != nil {
			b.Fatal(err)
		}
		renderSink = out
	}
}

package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options controls how article bodies are rendered.
type Options struct {
	// HardWraps renders single newlines as <br>.
	HardWraps bool
	// AllowHTML passes raw HTML in the source through to the output. Admin
	// authors are trusted; public submissions never reach this renderer.
	AllowHTML bool
	// Extensions names the goldmark extensions to enable. Unknown names are
	// ignored. Defaults to GFM when empty.
	Extensions []string
}

// Renderer converts news article Markdown into HTML using the goldmark
// engine. The renderer is stateless; one instance serves every request
// without locking.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer builds a renderer from the supplied options.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{engine: newEngine(opts)}
}

// Render converts one Markdown document into HTML.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

func newEngine(opts Options) goldmark.Markdown {
	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	var rendererOptions []renderer.Option
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.AllowHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	names := opts.Extensions
	if len(names) == 0 {
		names = []string{"gfm"}
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if exts := collectExtensions(names); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	seen := make(map[string]struct{}, len(names))
	var exts []goldmark.Extender
	for _, name := range names {
		ext, ok := extensionRegistry[name]
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		exts = append(exts, ext)
	}
	return exts
}

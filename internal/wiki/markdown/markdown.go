// Package markdown renders wiki Markdown to HTML with syntax
// highlighting for fenced code blocks.
package markdown

import (
	"bytes"
	stdhtml "html"
	"html/template"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// highlightStyle is the chroma style for code blocks.
const highlightStyle = "monokai"

// rendererInstance is initialized once and reused. The configuration
// never changes and goldmark.Markdown is safe to share; per-call state
// lives in the reader and writer.
var (
	rendererInstance goldmark.Markdown
	rendererOnce     sync.Once
)

func getRenderer() goldmark.Markdown {
	rendererOnce.Do(func() {
		rendererInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.DefinitionList,
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				renderer.WithNodeRenderers(
					util.Prioritized(&codeBlockRenderer{}, 100),
				),
			),
		)
	})
	return rendererInstance
}

// Render converts Markdown to sanitizable HTML. Raw HTML in the source
// is escaped by goldmark's default safe mode.
func Render(content string) (template.HTML, error) {
	var buffer bytes.Buffer
	if err := getRenderer().Convert([]byte(content), &buffer); err != nil {
		return "", err
	}
	return template.HTML(buffer.String()), nil
}

// codeBlockRenderer replaces goldmark's fenced code block output with
// chroma-highlighted HTML. Blocks without a recognized language fall
// back to an escaped <pre>.
type codeBlockRenderer struct{}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(
	w util.BufWriter, source []byte, node ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	block := node.(*ast.FencedCodeBlock)
	language := string(block.Language(source))

	var code strings.Builder
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		code.Write(segment.Value(source))
	}

	if language != "" {
		if err := quick.Highlight(w, code.String(), language, "html", highlightStyle); err == nil {
			return ast.WalkSkipChildren, nil
		}
	}

	if _, err := w.WriteString("<pre><code>" + stdhtml.EscapeString(code.String()) + "</code></pre>\n"); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}

// internal/markdown/goldmark.go
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// GoldmarkEngine renders with goldmark (GFM and footnotes) for sites that
// want CommonMark behaviour instead of the builtin renderer. Raw HTML is
// kept, matching the builtin passthrough.
type GoldmarkEngine struct {
	md goldmark.Markdown
}

func NewGoldmarkEngine() *GoldmarkEngine {
	return &GoldmarkEngine{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithASTTransformers(
					util.Prioritized(mdLinkTransformer{}, 100),
				),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

func (e *GoldmarkEngine) Name() string { return EngineGoldmark }

func (e *GoldmarkEngine) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown with goldmark: %w", err)
	}
	return buf.String(), nil
}

// mdLinkTransformer points relative links at sibling articles (`other.md`)
// to their rendered pages. Every article is written to its own
// `<slug>/index.html`, so the sibling lives at `../other/`.
type mdLinkTransformer struct{}

func (mdLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		if dest, ok := siblingArticle(string(link.Destination)); ok {
			link.Destination = []byte(dest)
		}
		return ast.WalkContinue, nil
	})
}

func siblingArticle(dest string) (string, bool) {
	if strings.Contains(dest, "://") || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "#") {
		return "", false
	}
	path, fragment, _ := strings.Cut(dest, "#")
	name, ok := strings.CutSuffix(path, ".md")
	if !ok || name == "" {
		return "", false
	}
	out := "../" + strings.TrimPrefix(name, "./") + "/"
	if fragment != "" {
		out += "#" + fragment
	}
	return out, true
}

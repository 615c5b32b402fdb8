package document

import (
	"folio/internal/frontmatter"
	"folio/internal/markdown"
)

// Document is a parsed markdown file: its front matter, the body that was
// rendered, the HTML and the estimated reading time in minutes.
type Document struct {
	Metadata    frontmatter.Metadata
	Body        string
	HTML        string
	ReadingTime int
}

// Parse extracts front matter from raw and renders the rest with the builtin
// renderer. It is a pure function and safe for concurrent use.
func Parse(raw string) Document {
	meta, body := frontmatter.Extract(raw)
	return Document{
		Metadata:    meta,
		Body:        body,
		HTML:        markdown.Render(body),
		ReadingTime: markdown.ReadingTime(body),
	}
}

// ParseWith is Parse with a caller-chosen engine. The reading time is always
// estimated from the markdown body.
func ParseWith(raw string, engine markdown.Engine) (Document, error) {
	meta, body := frontmatter.Extract(raw)
	return Assemble(meta, body, engine)
}

// Assemble renders an already extracted body. Callers that rewrite the body
// between extraction and rendering use it instead of ParseWith.
func Assemble(meta frontmatter.Metadata, body string, engine markdown.Engine) (Document, error) {
	if engine == nil {
		engine = markdown.Builtin{}
	}
	html, err := engine.Render(body)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Metadata:    meta,
		Body:        body,
		HTML:        html,
		ReadingTime: markdown.ReadingTime(body),
	}, nil
}

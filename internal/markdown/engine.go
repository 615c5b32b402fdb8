package markdown

import (
	"fmt"
	"strings"
)

// Engine turns a markdown body (front matter already removed) into HTML.
type Engine interface {
	Name() string
	Render(body string) (string, error)
}

const (
	EngineBuiltin  = "builtin"
	EngineGoldmark = "goldmark"
)

// Builtin is the line-oriented renderer implemented by Render.
type Builtin struct{}

func (Builtin) Name() string { return EngineBuiltin }

func (Builtin) Render(body string) (string, error) {
	return Render(body), nil
}

// NewEngine resolves an engine by name. An empty name selects the builtin
// renderer.
func NewEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineBuiltin:
		return Builtin{}, nil
	case EngineGoldmark:
		return NewGoldmarkEngine(), nil
	default:
		return nil, fmt.Errorf("unknown markdown renderer %q", name)
	}
}

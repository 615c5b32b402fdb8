package frontmatter

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// SerializeYAML renders m as a YAML block without delimiters. Keys are sorted
// at every level so output is stable. An empty map yields an empty slice.
func SerializeYAML(m Metadata) ([]byte, error) {
	if len(m) == 0 {
		return []byte{}, nil
	}

	node, err := mappingNode(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compose joins serialized metadata and body into a document that Extract
// reads back.
func Compose(m Metadata, body string) (string, error) {
	block, err := SerializeYAML(m)
	if err != nil {
		return "", fmt.Errorf("serialize front matter: %w", err)
	}
	return delimiter + "\n" + string(block) + delimiter + "\n" + body, nil
}

func mappingNode(m map[string]any) (*yaml.Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		val, err := valueNode(m[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, val)
	}
	return n, nil
}

func valueNode(v any) (*yaml.Node, error) {
	switch vv := v.(type) {
	case string:
		return scalarNode(vv), nil
	case []string:
		// Block items are read one per line, so commas inside an item
		// survive.
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range vv {
			seq.Content = append(seq.Content, scalarNode(item))
		}
		return seq, nil
	case Metadata:
		return mappingNode(vv)
	case map[string]any:
		return mappingNode(vv)
	default:
		return nil, fmt.Errorf("unsupported front matter value %T", v)
	}
}

// scalarNode encodes a string so that Extract, which strips one pair of outer
// quotes and never unescapes, reads the same string back. Values the encoder
// would write plain stay plain; the rest get a quote style that needs no
// escaping for their content.
func scalarNode(v string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	if !quotedByDefault(n) {
		return n
	}
	switch {
	case !strings.ContainsAny(v, `"\`) && printable(v):
		n.Style = yaml.DoubleQuotedStyle
	case !strings.Contains(v, "'"):
		n.Style = yaml.SingleQuotedStyle
	}
	return n
}

// quotedByDefault reports whether the encoder would quote n on its own, as it
// does for dates, numbers and strings with indicators such as ": ".
func quotedByDefault(n *yaml.Node) bool {
	out, err := yaml.Marshal(n)
	if err != nil || len(out) == 0 {
		return false
	}
	return out[0] == '\'' || out[0] == '"'
}

func printable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

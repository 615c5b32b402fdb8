// internal/frontmatter/frontmatter.go
package frontmatter

import (
	"regexp"
	"strings"
)

const (
	delimiter = "---"
	bom       = "\uFEFF"
)

var (
	doubleQuotedKey = regexp.MustCompile(`^"([^"]+)"\s*:\s*(.*)$`)
	singleQuotedKey = regexp.MustCompile(`^'([^']+)'\s*:\s*(.*)$`)
	plainKey        = regexp.MustCompile(`^([\w@.-]+)\s*:\s*(.*)$`)
	lineBreak       = regexp.MustCompile(`\r?\n`)
)

// scope is one open container on the indentation stack. Lists are written
// back through their parent mapping because appending may reallocate.
type scope struct {
	indent int
	m      Metadata
	parent Metadata
	key    string
}

func (s scope) isList() bool { return s.m == nil }

// Extract splits a leading `---` delimited metadata block from text and
// returns the parsed metadata together with the remaining body.
//
// Extract never fails. A document that does not open with a delimiter line,
// or whose block is never closed, comes back untouched as the body with
// empty metadata. Lines inside the block that are neither list items nor
// key/value pairs are skipped.
func Extract(text string) (Metadata, string) {
	normalized := strings.TrimPrefix(text, bom)
	if !strings.HasPrefix(normalized, delimiter) {
		return Metadata{}, text
	}

	lines := lineBreak.Split(normalized, -1)
	if strings.TrimSpace(lines[0]) != delimiter {
		return Metadata{}, text
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			closing = i
			break
		}
	}
	if closing < 0 {
		return Metadata{}, text
	}

	meta := parseBlock(lines[1:closing])
	return meta, strings.Join(lines[closing+1:], "\n")
}

func parseBlock(lines []string) Metadata {
	root := Metadata{}
	stack := []scope{{indent: -1, m: root}}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		indent := indentWidth(line)
		for len(stack) > 1 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		current := stack[len(stack)-1]

		if strings.HasPrefix(trimmed, "- ") {
			if !current.isList() {
				continue
			}
			items, _ := current.parent[current.key].([]string)
			current.parent[current.key] = append(items, stripQuotes(trimmed[2:]))
			continue
		}

		key, raw, ok := splitKeyValue(trimmed)
		if !ok || current.isList() {
			continue
		}

		switch {
		case raw == "":
			next, found := nextContentLine(lines, i+1)
			if found && indentWidth(next) > indent && strings.HasPrefix(strings.TrimSpace(next), "- ") {
				current.m[key] = []string{}
				stack = append(stack, scope{indent: indent, parent: current.m, key: key})
			} else {
				nested := Metadata{}
				current.m[key] = nested
				stack = append(stack, scope{indent: indent, m: nested})
			}
		case strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]"):
			current.m[key] = parseInlineList(raw)
		case (key == "tags" || key == "keywords") && strings.Contains(raw, ","):
			current.m[key] = splitList(raw)
		default:
			current.m[key] = stripQuotes(raw)
		}
	}

	return root
}

func splitKeyValue(line string) (key, raw string, ok bool) {
	for _, re := range []*regexp.Regexp{doubleQuotedKey, singleQuotedKey, plainKey} {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], strings.TrimSpace(m[2]), true
		}
	}
	return "", "", false
}

// nextContentLine returns the next non-blank line at or after start, stopping
// at a closing delimiter.
func nextContentLine(lines []string, start int) (string, bool) {
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == delimiter {
			return "", false
		}
		return line, true
	}
	return "", false
}

func parseInlineList(raw string) []string {
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return []string{}
	}
	return splitList(inner)
}

func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if v := stripQuotes(item); v != "" {
			items = append(items, v)
		}
	}
	return items
}

// stripQuotes trims value and removes one pair of matching outer quotes.
// Escape sequences are left alone.
func stripQuotes(value string) string {
	v := strings.TrimSpace(value)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

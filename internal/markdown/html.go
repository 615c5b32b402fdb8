package markdown

import (
	"regexp"
	"strings"
)

var openingTag = regexp.MustCompile(`^<([A-Za-z][A-Za-z0-9-]*)(?:[\s/>]|$)`)

// blockTags are the non-void elements whose open/close balance is tracked
// across lines.
var blockTags = map[string]bool{
	"a": true, "abbr": true, "address": true, "article": true, "aside": true,
	"audio": true, "b": true, "blockquote": true, "button": true, "canvas": true,
	"caption": true, "center": true, "code": true, "colgroup": true, "dd": true,
	"del": true, "details": true, "dialog": true, "div": true, "dl": true,
	"dt": true, "em": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "i": true,
	"iframe": true, "ins": true, "kbd": true, "label": true, "li": true,
	"main": true, "mark": true, "nav": true, "noscript": true, "object": true,
	"ol": true, "p": true, "picture": true, "pre": true, "q": true,
	"s": true, "samp": true, "script": true, "section": true, "select": true,
	"small": true, "span": true, "strong": true, "style": true, "sub": true,
	"summary": true, "sup": true, "svg": true, "table": true, "tbody": true,
	"td": true, "template": true, "textarea": true, "tfoot": true, "th": true,
	"thead": true, "tr": true, "u": true, "ul": true, "video": true,
}

var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawHTML passes the line at i through untouched. Recognized block elements
// that stay open keep the renderer in passthrough until their tag balances;
// a void element whose tag runs onto the next line takes that line too.
func (r *renderer) rawHTML(lines []string, i int) int {
	line := lines[i]
	r.emit(line)

	m := openingTag.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return i + 1
	}

	tag := strings.ToLower(m[1])
	switch {
	case voidTags[tag]:
		if !strings.Contains(line, ">") && i+1 < len(lines) {
			r.emit(lines[i+1])
			return i + 2
		}
	case blockTags[tag]:
		if depth := tagDepth(line, tag); depth > 0 {
			r.rawTag, r.rawDepth = tag, depth
		}
	}
	return i + 1
}

// tagDepth returns opening minus closing occurrences of tag in line.
// Self-closing forms do not count.
func tagDepth(line, tag string) int {
	s := strings.ToLower(line)
	depth := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '<' {
			continue
		}
		rest := s[i+1:]
		if strings.HasPrefix(rest, "/"+tag) && tagBoundary(rest[len(tag)+1:]) {
			depth--
			continue
		}
		if strings.HasPrefix(rest, tag) && tagBoundary(rest[len(tag):]) {
			if end := strings.IndexByte(rest, '>'); end > 0 && rest[end-1] == '/' {
				continue
			}
			depth++
		}
	}
	return depth
}

func tagBoundary(s string) bool {
	return s == "" || strings.IndexByte(" \t>/", s[0]) >= 0
}

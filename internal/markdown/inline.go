package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	codeSpan = regexp.MustCompile("`([^`]+)`")
	strong   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	emphasis = regexp.MustCompile(`\*([^*]+)\*`)
	link     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// placeholder brackets a code span index while emphasis and links run.
	placeholder = regexp.MustCompile("\uE000([0-9]+)\uE001")
	// placeholderRunes in the input are written as character references so
	// they never collide with a placeholder.
	placeholderRunes = strings.NewReplacer("\uE000", "&#xE000;", "\uE001", "&#xE001;")

	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
)

// EscapeHTML escapes the five HTML-significant characters.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// RenderInline escapes s and then applies, in order, code spans, bold,
// italic and links. Code span contents are set aside before the later
// passes so asterisks inside them stay literal, while a code span may still
// sit inside link text.
func RenderInline(s string) string {
	rendered := placeholderRunes.Replace(EscapeHTML(s))

	var spans []string
	rendered = codeSpan.ReplaceAllStringFunc(rendered, func(m string) string {
		spans = append(spans, m[1:len(m)-1])
		return "\uE000" + strconv.Itoa(len(spans)-1) + "\uE001"
	})

	rendered = strong.ReplaceAllString(rendered, "<strong>$1</strong>")
	rendered = emphasis.ReplaceAllString(rendered, "<em>$1</em>")
	rendered = link.ReplaceAllString(rendered, `<a href="$2">$1</a>`)

	if len(spans) == 0 {
		return rendered
	}
	return placeholder.ReplaceAllStringFunc(rendered, func(m string) string {
		idx, err := strconv.Atoi(placeholder.FindStringSubmatch(m)[1])
		if err != nil || idx >= len(spans) {
			return m
		}
		return "<code>" + spans[idx] + "</code>"
	})
}

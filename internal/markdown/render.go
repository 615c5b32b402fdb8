// internal/markdown/render.go
package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	lineBreak     = regexp.MustCompile(`\r?\n`)
	headingLine   = regexp.MustCompile(`^(#{1,4})\s+(.*)$`)
	quoteLine     = regexp.MustCompile(`^>\s?(.*)$`)
	orderedItem   = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	unorderedItem = regexp.MustCompile(`^[-*+]\s+(.*)$`)
	languageChars = regexp.MustCompile(`[^a-z0-9_-]+`)
)

const fence = "```"

type codeBlock struct {
	language string
	lines    []string
}

// renderer holds the block state for a single Render call.
type renderer struct {
	out       []string
	paragraph []string
	list      string // "ul", "ol" or "" when no list is open
	quote     bool
	code      *codeBlock
	rawTag    string
	rawDepth  int
}

// Render converts a markdown body into an HTML fragment. It never fails:
// anything it does not recognize ends up as paragraph text, and blocks still
// open at the end of input are closed.
func Render(body string) string {
	lines := lineBreak.Split(body, -1)
	r := &renderer{}
	for i := 0; i < len(lines); {
		i = r.step(lines, i)
	}
	r.finish()
	return strings.Join(r.out, "\n")
}

// step consumes the line at i, and any lines it claims with it, and returns
// the index of the next unconsumed line.
func (r *renderer) step(lines []string, i int) int {
	line := lines[i]
	trimmed := strings.TrimSpace(line)

	if r.code != nil {
		if strings.HasPrefix(trimmed, fence) {
			r.closeCode()
		} else {
			r.code.lines = append(r.code.lines, line)
		}
		return i + 1
	}

	if r.rawTag != "" {
		r.emit(line)
		r.rawDepth += tagDepth(line, r.rawTag)
		if r.rawDepth <= 0 {
			r.rawTag, r.rawDepth = "", 0
		}
		return i + 1
	}

	switch {
	case strings.HasPrefix(trimmed, fence):
		r.closeBlocks()
		r.code = &codeBlock{language: fenceLanguage(trimmed[len(fence):])}
		return i + 1

	case trimmed == "":
		r.closeBlocks()
		return i + 1

	case strings.HasPrefix(trimmed, "<"):
		r.closeBlocks()
		return r.rawHTML(lines, i)

	case strings.Contains(trimmed, "|") && i+1 < len(lines) && isSeparatorRow(lines[i+1]):
		r.closeBlocks()
		return r.table(lines, i)

	case trimmed == "---" || trimmed == "***":
		r.closeBlocks()
		r.emit("<hr />")
		return i + 1
	}

	if m := headingLine.FindStringSubmatch(trimmed); m != nil {
		r.closeBlocks()
		level := strconv.Itoa(len(m[1]))
		r.emit("<h" + level + ">" + RenderInline(m[2]) + "</h" + level + ">")
		return i + 1
	}

	if m := quoteLine.FindStringSubmatch(trimmed); m != nil {
		r.flushParagraph()
		r.closeList()
		if !r.quote {
			r.emit("<blockquote>")
			r.quote = true
		}
		r.emit("<p>" + RenderInline(m[1]) + "</p>")
		return i + 1
	}

	if m := orderedItem.FindStringSubmatch(trimmed); m != nil {
		r.listItem("ol", m[1])
		return i + 1
	}

	if m := unorderedItem.FindStringSubmatch(trimmed); m != nil {
		r.listItem("ul", m[1])
		return i + 1
	}

	r.closeList()
	r.closeQuote()
	r.paragraph = append(r.paragraph, trimmed)
	return i + 1
}

func (r *renderer) listItem(kind, text string) {
	r.flushParagraph()
	r.closeQuote()
	if r.list != kind {
		r.closeList()
		r.emit("<" + kind + ">")
		r.list = kind
	}
	r.emit("<li>" + RenderInline(text) + "</li>")
}

func (r *renderer) emit(s string) {
	r.out = append(r.out, s)
}

// closeBlocks ends every open block in precedence order: paragraph, list,
// blockquote.
func (r *renderer) closeBlocks() {
	r.flushParagraph()
	r.closeList()
	r.closeQuote()
}

func (r *renderer) flushParagraph() {
	if len(r.paragraph) == 0 {
		return
	}
	r.emit("<p>" + RenderInline(strings.Join(r.paragraph, " ")) + "</p>")
	r.paragraph = r.paragraph[:0]
}

func (r *renderer) closeList() {
	if r.list == "" {
		return
	}
	r.emit("</" + r.list + ">")
	r.list = ""
}

func (r *renderer) closeQuote() {
	if !r.quote {
		return
	}
	r.emit("</blockquote>")
	r.quote = false
}

func (r *renderer) closeCode() {
	open := "<pre><code>"
	if r.code.language != "" {
		open = `<pre><code class="language-` + r.code.language + `">`
	}
	r.emit(open + EscapeHTML(strings.Join(r.code.lines, "\n")) + "</code></pre>")
	r.code = nil
}

func (r *renderer) finish() {
	if r.code != nil {
		r.closeCode()
	}
	r.closeBlocks()
}

// fenceLanguage reduces the info string after an opening fence to a class
// safe token.
func fenceLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return languageChars.ReplaceAllString(strings.ToLower(fields[0]), "")
}

package markdown

import (
	"regexp"
	"strings"
)

var separatorCell = regexp.MustCompile(`^:?-+:?$`)

// isSeparatorRow reports whether line is a table delimiter row such as
// `|---|:-:|`. Every cell is dashes with optional colons, at least three
// characters wide.
func isSeparatorRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "|") {
		return false
	}
	cells := splitRow(trimmed)
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if len(cell) < 3 || !separatorCell.MatchString(cell) {
			return false
		}
	}
	return true
}

func splitRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	cells := strings.Split(trimmed, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

func alignment(cell string) string {
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":")
	switch {
	case left && right:
		return "center"
	case right:
		return "right"
	case left:
		return "left"
	}
	return ""
}

// table consumes the header at i, the separator row after it and every
// following non-blank line that contains a pipe.
func (r *renderer) table(lines []string, i int) int {
	header := splitRow(lines[i])
	separator := splitRow(lines[i+1])

	var rows [][]string
	next := i + 2
	for ; next < len(lines); next++ {
		trimmed := strings.TrimSpace(lines[next])
		if trimmed == "" || !strings.Contains(trimmed, "|") {
			break
		}
		rows = append(rows, splitRow(trimmed))
	}

	columns := max(len(header), len(separator))
	for _, row := range rows {
		columns = max(columns, len(row))
	}

	aligns := make([]string, columns)
	for c, cell := range separator {
		aligns[c] = alignment(cell)
	}

	var b strings.Builder
	b.WriteString("<table>\n<thead>\n")
	writeRow(&b, "th", header, aligns)
	b.WriteString("</thead>")
	if len(rows) > 0 {
		b.WriteString("\n<tbody>\n")
		for _, row := range rows {
			writeRow(&b, "td", row, aligns)
		}
		b.WriteString("</tbody>")
	}
	b.WriteString("\n</table>")
	r.emit(b.String())

	return next
}

func writeRow(b *strings.Builder, cellTag string, cells []string, aligns []string) {
	b.WriteString("<tr>")
	for c, align := range aligns {
		content := ""
		if c < len(cells) {
			content = RenderInline(cells[c])
		}
		b.WriteString("<" + cellTag)
		if align != "" {
			b.WriteString(` style="text-align:` + align + `;"`)
		}
		b.WriteString(">" + content + "</" + cellTag + ">")
	}
	b.WriteString("</tr>\n")
}

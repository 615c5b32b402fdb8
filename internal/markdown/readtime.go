package markdown

import (
	"math"
	"regexp"
	"strings"
)

// WordsPerMinute is the reading speed behind ReadingTime.
const WordsPerMinute = 200

var (
	fencedCode = regexp.MustCompile("(?s)```.*?```")
	inlineCode = regexp.MustCompile("`[^`]*`")
	markupRune = regexp.MustCompile(`[#>*_\-]`)
)

// ReadingTime estimates whole minutes to read body, never less than one.
// Code and link destinations are not counted.
func ReadingTime(body string) int {
	text := fencedCode.ReplaceAllString(body, " ")
	text = inlineCode.ReplaceAllString(text, " ")
	text = link.ReplaceAllString(text, "$1")
	text = markupRune.ReplaceAllString(text, " ")

	words := len(strings.Fields(text))
	return max(1, int(math.Round(float64(words)/WordsPerMinute)))
}

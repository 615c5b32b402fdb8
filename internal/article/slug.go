package article

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// NormalizeSlug folds s into a URL slug: accents are removed, every run of
// characters outside [A-Za-z0-9] becomes a single hyphen, and the result is
// lower-cased without leading or trailing hyphens.
func NormalizeSlug(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// transform chains carry state, so build one per call.
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}

	folded = nonAlnum.ReplaceAllString(folded, "-")
	return strings.ToLower(strings.Trim(folded, "-"))
}

// SlugFromPath derives a slug from a markdown file name, ignoring any
// directories in p.
func SlugFromPath(p string) string {
	base := path.Base(strings.ReplaceAll(p, `\`, "/"))
	return NormalizeSlug(strings.TrimSuffix(base, ".md"))
}

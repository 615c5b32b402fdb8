package article

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

const dateOnlyLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDate reads a publishedAt value. A bare YYYY-MM-DD is a calendar date
// at UTC midnight and reports dateOnly. Values without a zone are taken as
// UTC.
func ParseDate(s string) (t time.Time, dateOnly bool, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, true, true
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, false, true
		}
	}
	return time.Time{}, false, false
}

// dateValue is the sort key for a publishedAt value; unparseable dates sort
// as the epoch.
func dateValue(s string) int64 {
	t, _, ok := ParseDate(s)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

type dateLayouts struct {
	short string
	long  string
}

// layoutsByLanguage maps a locale's language to month/year and full date
// layouts. monday translates the month names.
var layoutsByLanguage = map[string]dateLayouts{
	"pt": {short: "Jan. de 2006", long: "2 de January de 2006"},
	"es": {short: "Jan. 2006", long: "2 de January de 2006"},
	"fr": {short: "Jan 2006", long: "2 January 2006"},
	"de": {short: "Jan. 2006", long: "2. January 2006"},
	"it": {short: "Jan 2006", long: "2 January 2006"},
	"en": {short: "Jan 2006", long: "January 2, 2006"},
}

func localeLayouts(locale string) (dateLayouts, monday.Locale) {
	tag := strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")
	lang, _, _ := strings.Cut(tag, "_")
	layouts, ok := layoutsByLanguage[strings.ToLower(lang)]
	if !ok {
		return layoutsByLanguage["en"], monday.LocaleEnUS
	}
	return layouts, monday.Locale(tag)
}

func formatDate(s, locale string, long bool) string {
	t, _, ok := ParseDate(s)
	if !ok {
		return ""
	}
	layouts, loc := localeLayouts(locale)
	layout := layouts.short
	if long {
		layout = layouts.long
	}
	return monday.Format(t.UTC(), layout, loc)
}

// FormatShortDate renders month and year, e.g. "jan. de 2024" for pt-BR.
// It returns "" when s is not a date.
func FormatShortDate(s, locale string) string {
	return formatDate(s, locale, false)
}

// FormatLongDate renders day, month and year, e.g. "15 de janeiro de 2024"
// for pt-BR. It returns "" when s is not a date.
func FormatLongDate(s, locale string) string {
	return formatDate(s, locale, true)
}

// Package format provides the display-formatting helpers of the rag-lite
// web UI: date presentation pinned to the UI's zh-CN locale convention,
// and HTML escaping for untrusted text.
package format

import (
	"time"

	"golang.org/x/text/language"
)

// Format selects a date presentation style.
type Format string

const (
	// Short renders a numeric date only (default). zh-CN: 2024/3/5.
	Short Format = "short"
	// Long renders the date with the full month form. zh-CN: 2024年3月5日.
	Long Format = "long"
	// DateTime renders date and time together. zh-CN: 2024/3/5 14:30:05.
	DateTime Format = "datetime"
)

// locale is the fixed presentation locale of the rag-lite UI. It is not
// configurable per call; all dates render with zh-CN conventions
// regardless of the host locale.
var locale = language.MustParse("zh-CN")

// invalidDate is returned for inputs that cannot be interpreted as a
// date; callers display it as-is instead of handling an error.
const invalidDate = "Invalid Date"

// dateLayouts maps a locale to its presentation layouts per Format.
var dateLayouts = map[language.Tag]map[Format]string{
	language.MustParse("zh-CN"): {
		Short:    "2006/1/2",
		Long:     "2006年1月2日",
		DateTime: "2006/1/2 15:04:05",
	},
}

// parseLayouts are the accepted input shapes for FormatDateString, in the
// order they are tried.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/1/2 15:04:05",
	"2006/1/2",
}

// FormatDate renders t in the UI's locale convention. An unknown Format
// (including the zero value) falls back to Short. The zero time renders as
// "Invalid Date" rather than a nonsense year-one date.
func FormatDate(t time.Time, f Format) string {
	if t.IsZero() {
		return invalidDate
	}

	layouts := dateLayouts[locale]
	layout, ok := layouts[f]
	if !ok {
		layout = layouts[Short]
	}

	return t.Format(layout)
}

// FormatDateString parses s against the accepted input layouts and renders
// it via FormatDate. Unparseable input yields "Invalid Date"; no error is
// returned.
func FormatDateString(s string, f Format) string {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FormatDate(t, f)
		}
	}

	return invalidDate
}

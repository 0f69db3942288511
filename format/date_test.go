package format

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 5, 14, 30, 5, 0, time.UTC)

	tests := []struct {
		name     string
		format   Format
		expected string
	}{
		{name: "short is numeric only", format: Short, expected: "2024/3/5"},
		{name: "long carries the full month form", format: Long, expected: "2024年3月5日"},
		{name: "datetime carries date and time", format: DateTime, expected: "2024/3/5 14:30:05"},
		{name: "zero value falls back to short", format: Format(""), expected: "2024/3/5"},
		{name: "unknown format falls back to short", format: Format("full"), expected: "2024/3/5"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, FormatDate(ts, tt.format), tt.expected)
		})
	}
}

func TestFormatDateZeroTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatDate(time.Time{}, Short), "Invalid Date")
}

func TestFormatDateString(t *testing.T) {
	t.Parallel()

	type input struct {
		value  string
		format Format
	}

	tests := []struct {
		name     string
		input    input
		expected string
	}{
		{
			name:     "rfc3339",
			input:    input{value: "2024-03-05T14:30:05Z", format: DateTime},
			expected: "2024/3/5 14:30:05",
		},
		{
			name:     "date and time without zone",
			input:    input{value: "2024-03-05 14:30:05", format: Long},
			expected: "2024年3月5日",
		},
		{
			name:     "date only",
			input:    input{value: "2024-03-05", format: Short},
			expected: "2024/3/5",
		},
		{
			name:     "slash-separated date",
			input:    input{value: "2024/3/5", format: Long},
			expected: "2024年3月5日",
		},
		{
			name:     "unparseable input",
			input:    input{value: "not a date", format: Short},
			expected: "Invalid Date",
		},
		{
			name:     "empty input",
			input:    input{value: "", format: Short},
			expected: "Invalid Date",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, FormatDateString(tt.input.value, tt.input.format), tt.expected)
		})
	}
}

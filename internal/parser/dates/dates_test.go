package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "present sentinel", input: "present", expected: "Present"},
		{name: "current sentinel", input: "Current", expected: "Present"},
		{name: "now sentinel", input: "NOW", expected: "Present"},
		{name: "till date sentinel", input: "till date", expected: "Present"},
		{name: "ongoing sentinel", input: "ongoing", expected: "Present"},
		{name: "sentinel with period", input: "Present.", expected: "Present"},
		{name: "year passthrough", input: "2020", expected: "2020"},
		{name: "month year slash", input: "01/2020", expected: "01/2020"},
		{name: "month name lowercase", input: "january 2020", expected: "January 2020"},
		{name: "month abbreviation", input: "jan 2020", expected: "Jan 2020"},
		{name: "month with period", input: "Sep. 2019", expected: "Sep 2019"},
		{name: "unknown trimmed as-is", input: "  Spring Semester ", expected: "Spring Semester"},
		{name: "empty", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestSplitRange(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedStart string
		expectedEnd   string
	}{
		{name: "hyphen range", input: "01/2020 - Present", expectedStart: "01/2020", expectedEnd: "Present"},
		{name: "year range", input: "2014 - 2018", expectedStart: "2014", expectedEnd: "2018"},
		{name: "en dash", input: "2019 – 2021", expectedStart: "2019", expectedEnd: "2021"},
		{name: "em dash no spaces", input: "2019—2021", expectedStart: "2019", expectedEnd: "2021"},
		{name: "to separator", input: "March 2018 to June 2020", expectedStart: "March 2018", expectedEnd: "June 2020"},
		{name: "lone sentinel is end only", input: "Present", expectedStart: "", expectedEnd: "Present"},
		{name: "single start token", input: "2020", expectedStart: "2020", expectedEnd: ""},
		{name: "empty", input: "", expectedStart: "", expectedEnd: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := SplitRange(tt.input)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel("present"))
	assert.True(t, IsSentinel("Till Date"))
	assert.False(t, IsSentinel("2020"))
	assert.False(t, IsSentinel("presently employed"))
}

func TestExtractTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "year range", input: "2014 - 2018", expected: []string{"2014", "2018"}},
		{name: "month year and sentinel", input: "Jan 2020 - present", expected: []string{"Jan 2020", "Present"}},
		{name: "tokens amid text", input: "Graduated 2018 with honors", expected: []string{"2018"}},
		{name: "no tokens", input: "Bachelor of Science", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractTokens(tt.input))
		})
	}
}

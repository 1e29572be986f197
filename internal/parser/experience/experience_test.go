package experience

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch-utils/pkg/models"
)

const sectionedResume = `Jane Doe
jane.doe@example.com

EXPERIENCE
ACME CORP
Senior Engineer
01/2020 - Present
• Built the billing pipeline
• Mentored two junior engineers

Globex Corporation, Springfield, IL
Lead Developer
2016 - 2019
• Shipped the reporting service

EDUCATION
State University, BS Computer Science
2014 - 2018
`

func TestParseSectionedResume(t *testing.T) {
	entries := Parse(sectionedResume)
	require.Len(t, entries, 2)

	// Reverse chronological: the 2020 entry first
	first := entries[0]
	assert.Equal(t, "ACME CORP", models.StrVal(first.CompanyName))
	assert.Equal(t, "Senior Engineer", models.StrVal(first.JobTitle))
	assert.Equal(t, "01/2020", models.StrVal(first.StartDate))
	assert.Equal(t, "Present", models.StrVal(first.EndDate))
	assert.Contains(t, first.ResponsibilitiesText, "Built the billing pipeline")
	assert.Contains(t, first.ResponsibilitiesText, "Mentored two junior engineers")
	assert.NotEmpty(t, first.ID)
	assert.NotNil(t, first.SkillsToolsUsed)

	second := entries[1]
	assert.Equal(t, "Globex Corporation", models.StrVal(second.CompanyName))
	assert.Equal(t, "Lead Developer", models.StrVal(second.JobTitle))
	assert.Equal(t, "2016", models.StrVal(second.StartDate))
	assert.Equal(t, "2019", models.StrVal(second.EndDate))
	assert.Equal(t, "Springfield", models.StrVal(second.Location.City))
	assert.Equal(t, "IL", models.StrVal(second.Location.State))
}

func TestParseFirstTitleWins(t *testing.T) {
	text := strings.Join([]string{
		"EXPERIENCE",
		"ACME CORP",
		"Senior Engineer",
		"Staff Engineer",
		"2018 - 2020",
	}, "\n")

	entries := Parse(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Engineer", models.StrVal(entries[0].JobTitle))
	// The second title line lands in the description
	assert.Contains(t, entries[0].ResponsibilitiesText, "Staff Engineer")
}

func TestParseFirstDateRangeWins(t *testing.T) {
	text := strings.Join([]string{
		"EXPERIENCE",
		"ACME CORP",
		"2018 - 2020",
		"2010 - 2012",
	}, "\n")

	entries := Parse(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "2018", models.StrVal(entries[0].StartDate))
	assert.Equal(t, "2020", models.StrVal(entries[0].EndDate))
}

func TestParseInlineFallback(t *testing.T) {
	text := strings.Join([]string{
		"Initech (2018 - 2020)",
		"• Maintained the TPS reporting stack",
		"",
		"Senior Developer at Hooli",
		"• Built internal tooling",
	}, "\n")

	entries := Parse(text)
	require.Len(t, entries, 2)

	assert.Equal(t, "Initech", models.StrVal(entries[0].CompanyName))
	assert.Equal(t, "2018", models.StrVal(entries[0].StartDate))
	assert.Equal(t, "2020", models.StrVal(entries[0].EndDate))
	assert.Contains(t, entries[0].ResponsibilitiesText, "TPS reporting stack")

	assert.Equal(t, "Hooli", models.StrVal(entries[1].CompanyName))
	assert.Equal(t, "Senior Developer", models.StrVal(entries[1].JobTitle))
	assert.Contains(t, entries[1].ResponsibilitiesText, "internal tooling")
}

func TestParseIsTotalForNonEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "prose without structure", text: "I have done many things over many years of gainful employment."},
		{name: "single word", text: "resume"},
		{name: "numbers only", text: "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Parse(tt.text)
			require.NotEmpty(t, entries)
			for _, entry := range entries {
				assert.NotEmpty(t, entry.ID)
				assert.NotNil(t, entry.SkillsToolsUsed)
			}
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	assert.Nil(t, Parse(""))
	assert.Nil(t, Parse("   \n  "))
}

func TestSortKeepsDocumentOrderWithoutDates(t *testing.T) {
	text := strings.Join([]string{
		"EXPERIENCE",
		"ACME CORP",
		"Senior Engineer",
		"ZENITH LABS",
		"Staff Engineer",
	}, "\n")

	entries := Parse(text)
	require.Len(t, entries, 2)
	assert.Equal(t, "ACME CORP", models.StrVal(entries[0].CompanyName))
	assert.Equal(t, "ZENITH LABS", models.StrVal(entries[1].CompanyName))
}

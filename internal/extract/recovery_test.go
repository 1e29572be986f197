package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch-utils/pkg/models"
)

const recoverySource = `Jane Doe
jane.doe@example.com | (555) 123-4567
EXPERIENCE
Acme Inc.
Senior Engineer
2020 - Present
`

func TestSalvageCarvesEmbeddedJSON(t *testing.T) {
	reply := "Sure, here is the extraction you asked for:\n" +
		`{"summary": "Engineer", "skills": ["Go"], "experiences": [{"company_name": "Acme Inc.", "job_title": "Senior Engineer"}], "education": []}` +
		"\nLet me know if you need anything else."

	result := Salvage(reply, recoverySource)
	require.NotNil(t, result.Resume)
	assert.Equal(t, WarningSalvagedJSON, result.Warning)

	require.Len(t, result.Resume.Experiences, 1)
	entry := result.Resume.Experiences[0]
	assert.Equal(t, "Acme Inc.", models.StrVal(entry.CompanyName))
	assert.NotEmpty(t, entry.ID)
	assert.NotNil(t, entry.SkillsToolsUsed)
	assert.Equal(t, []string{"Go"}, result.Resume.Skills)
}

func TestSalvageValidatesCarvedJSON(t *testing.T) {
	// The carved JSON still goes through hallucination validation
	reply := `{"experiences": [{"company_name": "Globex Dynamics"}], "education": []}`

	result := Salvage(reply, recoverySource)
	require.NotNil(t, result.Resume)
	assert.Empty(t, result.Resume.Experiences)
	assert.Equal(t, WarningSalvagedJSON, result.Warning)
}

func TestSalvageBuildsSkeletonFromSource(t *testing.T) {
	reply := "I am unable to process this resume."

	result := Salvage(reply, recoverySource)
	require.NotNil(t, result.Resume)
	assert.Equal(t, WarningSkeletonBuilt, result.Warning)

	assert.Equal(t, "jane.doe@example.com", models.StrVal(result.Resume.ContactDetails.Email))
	assert.Equal(t, "(555) 123-4567", models.StrVal(result.Resume.ContactDetails.Phone))

	require.NotEmpty(t, result.Resume.Experiences)
	assert.Contains(t, models.StrVal(result.Resume.Experiences[0].CompanyName), "Acme Inc")
	assert.NotNil(t, result.Resume.Skills)
	assert.NotNil(t, result.Resume.Education)
}

func TestSalvageMalformedBraces(t *testing.T) {
	// Braces present but the window is not decodable JSON
	reply := "the score is {not json at all"

	result := Salvage(reply, recoverySource)
	require.NotNil(t, result.Resume)
	assert.Equal(t, WarningSkeletonBuilt, result.Warning)
}

func TestSalvageNeverReturnsNil(t *testing.T) {
	result := Salvage("", "")
	require.NotNil(t, result)
	require.NotNil(t, result.Resume)
	assert.NotEmpty(t, result.Warning)
}

func TestSalvageSkeletonScansExperienceSectionOnly(t *testing.T) {
	source := `Jane Doe
SUMMARY
Partnered with Initech Inc on consulting engagements.
EXPERIENCE
Acme Inc.
Senior Engineer
2020 - Present
`

	result := Salvage("no structure here", source)
	require.Equal(t, WarningSkeletonBuilt, result.Warning)

	require.Len(t, result.Resume.Experiences, 1)
	assert.Contains(t, models.StrVal(result.Resume.Experiences[0].CompanyName), "Acme Inc")
}

func TestSalvageSkeletonScansWholeTextWithoutHeaders(t *testing.T) {
	source := "Jane spent five years at Hooli LLC building infrastructure."

	result := Salvage("no structure here", source)
	require.Equal(t, WarningSkeletonBuilt, result.Warning)

	require.Len(t, result.Resume.Experiences, 1)
	assert.Contains(t, models.StrVal(result.Resume.Experiences[0].CompanyName), "Hooli LLC")
}

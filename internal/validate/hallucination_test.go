package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch-utils/pkg/models"
)

const sourceText = `Jane Doe
EXPERIENCE
Acme Inc.
Senior Engineer
2020 - Present
EDUCATION
State University, BS Computer Science
`

func experienceEntry(company, title string) models.WorkExperienceEntry {
	return models.WorkExperienceEntry{
		ID:              "test",
		CompanyName:     models.StrPtr(company),
		JobTitle:        models.StrPtr(title),
		SkillsToolsUsed: []string{},
	}
}

func TestResumeDropsUnconfirmedCompany(t *testing.T) {
	parsed := &models.ParsedResume{
		Experiences: []models.WorkExperienceEntry{
			experienceEntry("Acme Inc.", "Senior Engineer"),
			experienceEntry("Globex Dynamics", "Senior Engineer"),
		},
	}

	validated, stats := Resume(parsed, sourceText)

	require.Len(t, validated.Experiences, 1)
	assert.Equal(t, "Acme Inc.", models.StrVal(validated.Experiences[0].CompanyName))
	assert.Equal(t, 1, stats.DroppedExperiences)
}

func TestResumeNullsUnconfirmedTitle(t *testing.T) {
	parsed := &models.ParsedResume{
		Experiences: []models.WorkExperienceEntry{
			experienceEntry("Acme Inc.", "Chief Visionary Officer"),
		},
	}

	validated, stats := Resume(parsed, sourceText)

	require.Len(t, validated.Experiences, 1)
	assert.Nil(t, validated.Experiences[0].JobTitle)
	assert.Equal(t, "Acme Inc.", models.StrVal(validated.Experiences[0].CompanyName))
	assert.Equal(t, 1, stats.ClearedTitles)
	assert.Equal(t, 0, stats.DroppedExperiences)
}

func TestResumeKeepsNilFieldEntries(t *testing.T) {
	parsed := &models.ParsedResume{
		Experiences: []models.WorkExperienceEntry{
			{ID: "test", SkillsToolsUsed: []string{}},
		},
	}

	validated, stats := Resume(parsed, sourceText)

	assert.Len(t, validated.Experiences, 1)
	assert.Zero(t, stats.DroppedExperiences)
}

func TestResumeMatchingIsCaseInsensitiveAndLiteral(t *testing.T) {
	source := "Worked at C++ Experts Ltd. on compiler tooling"
	parsed := &models.ParsedResume{
		Experiences: []models.WorkExperienceEntry{
			experienceEntry("c++ experts ltd.", ""),
		},
	}

	validated, _ := Resume(parsed, source)
	assert.Len(t, validated.Experiences, 1)
}

func TestResumeDropsUnconfirmedEducation(t *testing.T) {
	parsed := &models.ParsedResume{
		Education: []models.EducationEntry{
			{ID: "a", UniversityName: models.StrPtr("State University")},
			{ID: "b", UniversityName: models.StrPtr("Prestigious Academy")},
		},
	}

	validated, stats := Resume(parsed, sourceText)

	require.Len(t, validated.Education, 1)
	assert.Equal(t, "State University", models.StrVal(validated.Education[0].UniversityName))
	assert.Equal(t, 1, stats.DroppedEducation)
}

func TestResumeEducationSurvivesOnAnyNameField(t *testing.T) {
	parsed := &models.ParsedResume{
		Education: []models.EducationEntry{
			{
				ID:                        "a",
				UniversityName:            models.StrPtr("Invented University"),
				CourseOrCertificationName: models.StrPtr("BS Computer Science"),
			},
		},
	}

	validated, stats := Resume(parsed, sourceText)

	assert.Len(t, validated.Education, 1)
	assert.Zero(t, stats.DroppedEducation)
}

func TestExperiencePolicyTable(t *testing.T) {
	policy, ok := ExperiencePolicy("company_name")
	require.True(t, ok)
	assert.Equal(t, PolicyDropEntry, policy)

	policy, ok = ExperiencePolicy("job_title")
	require.True(t, ok)
	assert.Equal(t, PolicyNullField, policy)

	_, ok = ExperiencePolicy("start_date")
	assert.False(t, ok)
}

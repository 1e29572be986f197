package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completeResume = `Professional Summary
Engineer with ten years of experience.

SKILLS
Go, Kubernetes

PROJECTS
Billing pipeline rewrite

CERTIFICATIONS
AWS Certified Solutions Architect
`

func TestAnalyzeCompleteResume(t *testing.T) {
	missing := Analyze(completeResume, "We need a Go engineer")
	assert.Empty(t, missing)
}

func TestAnalyzeBareResume(t *testing.T) {
	resume := strings.Join([]string{
		"EXPERIENCE",
		"ACME CORP",
		"Senior Engineer",
	}, "\n")

	missing := Analyze(resume, "Looking for Kubernetes and Terraform expertise")
	require.Len(t, missing, 4)

	names := make([]string, 0, len(missing))
	for _, section := range missing {
		names = append(names, section.Name)
		assert.NotEmpty(t, section.ID)
		assert.NotEmpty(t, section.Recommendation)
	}
	assert.Equal(t, []string{"Professional Summary", "Skills", "Projects", "Certifications"}, names)
}

func TestAnalyzeSeedsSkillsExampleFromJobKeywords(t *testing.T) {
	resume := "EXPERIENCE\nACME CORP"
	missing := Analyze(resume, "Kubernetes and Terraform")

	var skillsExample string
	for _, section := range missing {
		if section.Name == "Skills" {
			skillsExample = section.Example
		}
	}
	require.NotEmpty(t, skillsExample)
	assert.Contains(t, skillsExample, "kubernetes")
	assert.Contains(t, skillsExample, "terraform")
}

func TestAnalyzeResultsCarryFreshIDs(t *testing.T) {
	resume := "EXPERIENCE\nACME CORP"
	first := Analyze(resume, "job text")
	second := Analyze(resume, "job text")
	require.NotEmpty(t, first)
	require.NotEmpty(t, second)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

// Package sections determines which expected resume sections are absent,
// given the resume text and the job description it is being weighed
// against.
package sections

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"resumatch-utils/internal/parser/textutil"
	"resumatch-utils/pkg/models"
)

// expected lists the sections a complete resume is checked for, in report
// order.
var expected = []struct {
	kind           string
	name           string
	recommendation string
}{
	{
		kind:           textutil.SectionSummary,
		name:           "Professional Summary",
		recommendation: "Add a 2-3 sentence summary at the top connecting your background to the role you are targeting.",
	},
	{
		kind:           textutil.SectionSkills,
		name:           "Skills",
		recommendation: "Add a dedicated skills section so screening software can pick up the technologies you work with.",
	},
	{
		kind:           textutil.SectionProjects,
		name:           "Projects",
		recommendation: "List 1-2 projects with concrete outcomes to back up the experience section.",
	},
	{
		kind:           textutil.SectionCertifications,
		name:           "Certifications",
		recommendation: "If you hold relevant certifications, list them with the issuing authority and date.",
	},
}

// maxExampleKeywords bounds how many job keywords are surfaced in the
// example text for a missing skills section.
const maxExampleKeywords = 6

// Analyze returns the expected sections missing from resumeText. The job
// text is used to make the recommendations concrete, e.g. seeding an
// example skills list from the job's own keywords. Results carry no
// identity beyond this call.
func Analyze(resumeText, jobText string) []models.MissingSection {
	present := presentSections(resumeText)

	var missing []models.MissingSection
	for _, section := range expected {
		if _, ok := present[section.kind]; ok {
			continue
		}
		missing = append(missing, models.MissingSection{
			ID:             uuid.New().String(),
			Name:           section.name,
			Recommendation: section.recommendation,
			Example:        exampleFor(section.kind, jobText),
		})
	}
	return missing
}

// presentSections scans the text for recognized section headers
func presentSections(text string) map[string]struct{} {
	present := make(map[string]struct{})
	for _, line := range textutil.Lines(text) {
		if kind, ok := textutil.SectionHeader(line); ok {
			present[kind] = struct{}{}
		}
	}
	return present
}

// exampleFor builds an example string for a missing section. The skills
// example is seeded from the job description's keyword set so the
// suggestion is grounded in the target role rather than invented.
func exampleFor(kind, jobText string) string {
	switch kind {
	case textutil.SectionSkills:
		keywords := topKeywords(jobText, maxExampleKeywords)
		if len(keywords) == 0 {
			return ""
		}
		return "Skills: " + strings.Join(keywords, ", ")
	case textutil.SectionSummary:
		return "Example: \"Backend engineer with 5 years of experience building payment systems...\""
	default:
		return ""
	}
}

func topKeywords(text string, limit int) []string {
	set := textutil.Keywords(text, 3)
	keywords := make([]string, 0, len(set))
	for keyword := range set {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

// Package validate cross-checks AI-extracted entities against literal
// presence in the source text. The generative model is untrusted for
// factual grounding: only text that demonstrably originates from the
// user's own document may populate fields representing employers, titles
// or institutions.
package validate

import (
	"regexp"
	"strings"

	"resumatch-utils/internal/logging"
	"resumatch-utils/pkg/models"
)

// Policy is what happens to a field whose value is not found in the
// source text.
type Policy int

const (
	// PolicyNullField clears the offending field and keeps the entry
	PolicyNullField Policy = iota
	// PolicyDropEntry discards the whole entry
	PolicyDropEntry
)

// experienceRule binds one work-experience field to its failure policy.
// The rules are applied in order; a dropped entry short-circuits the
// remaining fields.
type experienceRule struct {
	field  string
	policy Policy
	value  func(*models.WorkExperienceEntry) *string
	clear  func(*models.WorkExperienceEntry)
}

// experienceRules is the audit table for work-experience fields. The
// asymmetry is deliberate: a fabricated employer invalidates the whole
// entry, a fabricated title is a field-level correction.
var experienceRules = []experienceRule{
	{
		field:  "company_name",
		policy: PolicyDropEntry,
		value:  func(e *models.WorkExperienceEntry) *string { return e.CompanyName },
	},
	{
		field:  "job_title",
		policy: PolicyNullField,
		value:  func(e *models.WorkExperienceEntry) *string { return e.JobTitle },
		clear:  func(e *models.WorkExperienceEntry) { e.JobTitle = nil },
	},
}

// educationNameValues lists the fields of which at least one must be
// confirmed for an education entry to survive.
func educationNameValues(entry models.EducationEntry) []string {
	return []string{
		models.StrVal(entry.InstituteName),
		models.StrVal(entry.UniversityName),
		models.StrVal(entry.CourseOrCertificationName),
	}
}

// Stats summarizes what the validator rejected in one run. Rejections
// are a normal narrowing of untrusted data, logged for diagnosis but
// never surfaced as failures.
type Stats struct {
	DroppedExperiences int
	ClearedTitles      int
	DroppedEducation   int
}

// Resume filters an AI-parsed resume against the original source text,
// applying the per-field policy table. Entries whose fields are all nil
// cannot be validated and are kept as fallback-worthy. The input is
// modified in place and returned for convenience.
func Resume(parsed *models.ParsedResume, sourceText string) (*models.ParsedResume, Stats) {
	var stats Stats
	logger := logging.GetGlobalLogger()

	kept := parsed.Experiences[:0]
	for i := range parsed.Experiences {
		entry := parsed.Experiences[i]
		dropped := false
		for _, rule := range experienceRules {
			value := models.StrVal(rule.value(&entry))
			if value == "" || foundInSource(sourceText, value) {
				continue
			}
			switch rule.policy {
			case PolicyDropEntry:
				dropped = true
				stats.DroppedExperiences++
				logger.Debug("Dropping experience entry: field not found in source text", map[string]interface{}{
					"field": rule.field,
					"value": value,
				})
			case PolicyNullField:
				rule.clear(&entry)
				stats.ClearedTitles++
				logger.Debug("Clearing unconfirmed field", map[string]interface{}{
					"field": rule.field,
					"value": value,
				})
			}
			if dropped {
				break
			}
		}
		if !dropped {
			kept = append(kept, entry)
		}
	}
	parsed.Experiences = kept

	keptEdu := parsed.Education[:0]
	for _, entry := range parsed.Education {
		if educationConfirmed(entry, sourceText) {
			keptEdu = append(keptEdu, entry)
			continue
		}
		stats.DroppedEducation++
		logger.Debug("Dropping education entry: no name field found in source text", map[string]interface{}{
			"institute_name": models.StrVal(entry.InstituteName),
			"course_name":    models.StrVal(entry.CourseOrCertificationName),
		})
	}
	parsed.Education = keptEdu

	if stats.DroppedExperiences > 0 || stats.ClearedTitles > 0 || stats.DroppedEducation > 0 {
		logger.Info("Hallucination validation narrowed AI output", map[string]interface{}{
			"dropped_experiences": stats.DroppedExperiences,
			"cleared_titles":      stats.ClearedTitles,
			"dropped_education":   stats.DroppedEducation,
		})
	}

	return parsed, stats
}

// educationConfirmed reports whether at least one of the entry's name
// fields appears verbatim in the source text.
func educationConfirmed(entry models.EducationEntry, sourceText string) bool {
	for _, value := range educationNameValues(entry) {
		if value != "" && foundInSource(sourceText, value) {
			return true
		}
	}
	return false
}

// foundInSource reports whether needle appears in source as a literal,
// case-insensitive substring. Regex metacharacters in the needle are
// escaped so "C++ Corp." matches literally.
func foundInSource(source, needle string) bool {
	trimmed := strings.TrimSpace(needle)
	if trimmed == "" {
		return false
	}
	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(trimmed))
	if err != nil {
		return false
	}
	return pattern.MatchString(source)
}

// ExperiencePolicy exposes the policy for a work-experience field,
// keeping the business rule auditable from tests.
func ExperiencePolicy(field string) (Policy, bool) {
	for _, rule := range experienceRules {
		if rule.field == field {
			return rule.policy, true
		}
	}
	return 0, false
}

package models

import "strings"

// ContactDetails holds the contact information extracted from a resume.
// Every field is optional: a nil pointer means "not found in the text",
// never a placeholder value.
type ContactDetails struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	WhatsApp *string `json:"whatsapp,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// Location represents a place attached to an experience or education entry
type Location struct {
	Country *string `json:"country"`
	State   *string `json:"state"`
	City    *string `json:"city"`
}

// WorkExperienceEntry represents one employment record extracted from
// resume text. IDs are generated per parse run and are not stable across
// repeated parses of the same text.
type WorkExperienceEntry struct {
	ID                   string   `json:"id"`
	CompanyName          *string  `json:"company_name"`
	JobTitle             *string  `json:"job_title"`
	Location             Location `json:"location"`
	StartDate            *string  `json:"start_date"`
	EndDate              *string  `json:"end_date"`
	ResponsibilitiesText string   `json:"responsibilities_text"`
	SkillsToolsUsed      []string `json:"skills_tools_used"`
}

// EducationEntry represents one degree or certification record. The
// certificate fields are only populated when IsCertification is true.
type EducationEntry struct {
	ID                        string   `json:"id"`
	CourseOrCertificationName *string  `json:"course_or_certification_name"`
	InstituteName             *string  `json:"institute_name"`
	UniversityName            *string  `json:"university_name"`
	Location                  Location `json:"location"`
	StartDate                 *string  `json:"start_date"`
	EndDate                   *string  `json:"end_date"`
	IsCertification           bool     `json:"is_certification"`
	CertificateAuthority      *string  `json:"certificate_authority,omitempty"`
	CertificateNumber         *string  `json:"certificate_number,omitempty"`
	Validity                  *string  `json:"validity,omitempty"`
}

// ParsedResume is the aggregate result of one extraction run. Experiences
// are ordered reverse-chronologically when the dates allow ordering.
type ParsedResume struct {
	ContactDetails ContactDetails        `json:"contact_details"`
	Summary        string                `json:"summary"`
	Skills         []string              `json:"skills"`
	Experiences    []WorkExperienceEntry `json:"experiences"`
	Education      []EducationEntry      `json:"education"`
}

// MissingSection describes an expected resume section that was not found.
// It has no identity beyond a single analysis run.
type MissingSection struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Recommendation string `json:"recommendation"`
	Example        string `json:"example,omitempty"`
}

// DedupeSkills removes case-insensitive duplicates from a skill list,
// preserving order and the casing of the first occurrence.
func DedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

// StrPtr returns a pointer to s, or nil when s is empty. Parser code uses
// this so "not found" is always represented as nil rather than "".
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StrVal dereferences s, returning "" for nil
func StrVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

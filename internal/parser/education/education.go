// Package education implements the heuristic education parser, the
// simplified sibling of the experience state machine: short lines open
// entries, comma and hyphen layouts split institute from degree, and year
// lines fill in the date range.
package education

import (
	"strings"

	"github.com/google/uuid"

	"resumatch-utils/internal/parser/dates"
	"resumatch-utils/internal/parser/textutil"
	"resumatch-utils/pkg/models"
)

// maxEntryLineLength caps how long a line can be and still open an entry
const maxEntryLineLength = 80

var certificationMarkers = []string{"certif", "certificate", "license"}

// Parse extracts education and certification entries from raw resume
// text. Like the experience parser it never fails; malformed input yields
// zero entries.
func Parse(text string) []models.EducationEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := textutil.Lines(text)
	var entries []models.EducationEntry
	var open *models.EducationEntry
	inSection := false

	closeOpen := func() {
		if open != nil {
			entries = append(entries, *open)
			open = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		kind, isHeader := textutil.SectionHeader(line)
		if isHeader {
			switch kind {
			case textutil.SectionEducation, textutil.SectionCertifications:
				inSection = true
				continue
			case textutil.SectionExperience, textutil.SectionSkills, textutil.SectionProjects:
				if inSection {
					closeOpen()
					inSection = false
				}
				continue
			default:
				continue
			}
		}
		if !inSection {
			continue
		}

		if textutil.HasDatePattern(trimmed) && !opensEntry(trimmed) {
			// A date line belongs to the open entry
			if open != nil && open.StartDate == nil && open.EndDate == nil {
				fillDates(open, trimmed)
			}
			continue
		}

		if opensEntry(trimmed) {
			closeOpen()
			entry := newEntry(trimmed)
			if textutil.HasDatePattern(trimmed) {
				fillDates(&entry, trimmed)
			}
			open = &entry
			continue
		}

		// A short line with no date pattern becomes the field of study
		// when none is set yet
		if open != nil && open.CourseOrCertificationName == nil {
			open.CourseOrCertificationName = models.StrPtr(trimmed)
		}
	}
	closeOpen()
	return entries
}

// opensEntry reports whether a line starts a new education entry: short,
// not a bullet, not purely a date line.
func opensEntry(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxEntryLineLength || textutil.IsBullet(line) {
		return false
	}
	// A line that is nothing but date tokens fills dates instead
	withoutDates := trimmed
	for _, token := range dates.ExtractTokens(trimmed) {
		withoutDates = strings.ReplaceAll(withoutDates, token, "")
	}
	withoutDates = strings.Trim(withoutDates, " -–—toTO")
	return strings.TrimSpace(withoutDates) != ""
}

// newEntry builds an entry from its opening line. A comma splits as
// "Institute, Degree"; a hyphen splits as "Degree - Institute"; otherwise
// the whole line is the institute name.
func newEntry(line string) models.EducationEntry {
	entry := models.EducationEntry{
		ID: uuid.New().String(),
	}

	name := line
	if idx := strings.Index(line, ","); idx >= 0 {
		name = strings.TrimSpace(line[:idx])
		degree := strings.TrimSpace(line[idx+1:])
		entry.CourseOrCertificationName = models.StrPtr(degree)
	} else if idx := strings.Index(line, " - "); idx >= 0 {
		degree := strings.TrimSpace(line[:idx])
		name = strings.TrimSpace(line[idx+3:])
		entry.CourseOrCertificationName = models.StrPtr(degree)
	}

	setInstitution(&entry, name)
	entry.IsCertification = looksLikeCertification(line)
	return entry
}

// setInstitution routes the institution name into university_name or
// institute_name depending on what the name itself claims to be.
func setInstitution(entry *models.EducationEntry, name string) {
	if name == "" {
		return
	}
	lower := strings.ToLower(name)
	if strings.Contains(lower, "university") || strings.Contains(lower, "college") {
		entry.UniversityName = models.StrPtr(name)
		return
	}
	entry.InstituteName = models.StrPtr(name)
}

// fillDates parses the date tokens on a line into the entry: the first
// token is the start, the second the end, and a lone start defaults the
// end to "Present".
func fillDates(entry *models.EducationEntry, line string) {
	tokens := dates.ExtractTokens(line)
	switch {
	case len(tokens) >= 2:
		entry.StartDate = models.StrPtr(tokens[0])
		entry.EndDate = models.StrPtr(tokens[1])
	case len(tokens) == 1:
		if tokens[0] == dates.Present {
			entry.EndDate = models.StrPtr(dates.Present)
			return
		}
		entry.StartDate = models.StrPtr(tokens[0])
		entry.EndDate = models.StrPtr(dates.Present)
	}
}

func looksLikeCertification(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range certificationMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

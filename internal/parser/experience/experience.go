// Package experience implements the heuristic work-experience parser: a
// line-classification state machine that segments resume text into
// company/title/date/description entries without any model assistance.
package experience

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"resumatch-utils/internal/parser/dates"
	"resumatch-utils/internal/parser/textutil"
	"resumatch-utils/pkg/models"
)

// lineClass is the classification of one line inside an experience section
type lineClass int

const (
	classCompany lineClass = iota
	classTitle
	classDateRange
	classBullet
	classContinuation
)

// classifyLine applies the classification checks in fixed precedence
// order: company, title, date range, bullet, continuation. The first
// match wins; this single function is the authoritative tie-break for the
// overlapping heuristics.
func classifyLine(line string) lineClass {
	switch {
	case textutil.IsCompanyCandidate(line):
		return classCompany
	case textutil.IsTitleCandidate(line):
		return classTitle
	case textutil.HasDatePattern(line):
		return classDateRange
	case textutil.IsBullet(line):
		return classBullet
	default:
		return classContinuation
	}
}

var (
	inlineCompanyRangePattern = regexp.MustCompile(`^(.{2,60}?)\s*\(([^()]+[-–—][^()]+)\)\s*$`)
	inlineTitleAtPattern      = regexp.MustCompile(`^(.{2,60}?)\s+at\s+(.{2,60})$`)
	yearTokenPattern          = regexp.MustCompile(`(19|20)\d{2}`)
)

// Parse extracts an ordered list of work-experience entries from raw
// resume text. It never fails: malformed input yields zero or degenerate
// entries. For any non-empty text at least one entry is returned, falling
// back to a single empty template the caller can treat as a placeholder
// for manual entry.
func Parse(text string) []models.WorkExperienceEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	entries := parseSection(text)
	if len(entries) == 0 {
		entries = parseInline(text)
	}
	if len(entries) == 0 {
		entries = []models.WorkExperienceEntry{emptyTemplate()}
	}
	sortReverseChronological(entries)
	return entries
}

// parseSection runs the state machine over an explicit experience section
func parseSection(text string) []models.WorkExperienceEntry {
	lines := textutil.Lines(text)

	var entries []models.WorkExperienceEntry
	var open *models.WorkExperienceEntry
	var descriptionLines []string
	inSection := false

	closeOpen := func() {
		if open == nil {
			return
		}
		open.ResponsibilitiesText = strings.Join(descriptionLines, "\n")
		entries = append(entries, *open)
		open = nil
		descriptionLines = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		kind, isHeader := textutil.SectionHeader(line)
		if isHeader {
			if kind == textutil.SectionExperience {
				inSection = true
				continue
			}
			if inSection {
				// Another major section starts; the experience
				// section is over.
				break
			}
			continue
		}
		if !inSection {
			continue
		}

		switch classifyLine(line) {
		case classCompany:
			closeOpen()
			entry := newEntry()
			company := trimmed
			if city, state, ok := textutil.CityState(trimmed); ok {
				entry.Location.City = models.StrPtr(city)
				entry.Location.State = models.StrPtr(state)
				// Keep the name part when the line is "Company, City, ST"
				if idx := strings.Index(trimmed, city+","); idx > 0 {
					company = strings.TrimRight(strings.TrimSpace(trimmed[:idx]), ",")
				}
			}
			entry.CompanyName = models.StrPtr(company)
			open = &entry
		case classTitle:
			if open != nil && open.JobTitle == nil {
				// First title after the company wins
				open.JobTitle = models.StrPtr(trimmed)
			} else if open != nil {
				descriptionLines = append(descriptionLines, trimmed)
			}
		case classDateRange:
			if open != nil && open.StartDate == nil && open.EndDate == nil {
				start, end := dates.SplitRange(trimmed)
				open.StartDate = models.StrPtr(start)
				open.EndDate = models.StrPtr(end)
			} else if open != nil {
				descriptionLines = append(descriptionLines, trimmed)
			}
		case classBullet:
			if open != nil {
				descriptionLines = append(descriptionLines, trimmed)
			}
		case classContinuation:
			if open != nil {
				descriptionLines = append(descriptionLines, trimmed)
			}
		}
	}
	closeOpen()
	return entries
}

// parseInline is the secondary pass for text without an experience header:
// it scans every line for "Company (start-end)" and "Title at Company"
// patterns, harvesting descriptions from immediately following bullet
// lines only.
func parseInline(text string) []models.WorkExperienceEntry {
	lines := textutil.Lines(text)
	var entries []models.WorkExperienceEntry

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || textutil.IsBullet(line) {
			continue
		}

		var entry models.WorkExperienceEntry
		matched := false

		if m := inlineCompanyRangePattern.FindStringSubmatch(trimmed); m != nil && textutil.HasDatePattern(m[2]) {
			entry = newEntry()
			entry.CompanyName = models.StrPtr(strings.TrimSpace(m[1]))
			start, end := dates.SplitRange(m[2])
			entry.StartDate = models.StrPtr(start)
			entry.EndDate = models.StrPtr(end)
			matched = true
		} else if m := inlineTitleAtPattern.FindStringSubmatch(trimmed); m != nil && textutil.IsTitleCandidate(m[1]) {
			entry = newEntry()
			entry.JobTitle = models.StrPtr(strings.TrimSpace(m[1]))
			entry.CompanyName = models.StrPtr(strings.TrimSpace(m[2]))
			matched = true
		}
		if !matched {
			continue
		}

		var bullets []string
		for j := i + 1; j < len(lines); j++ {
			if !textutil.IsBullet(lines[j]) {
				break
			}
			bullets = append(bullets, strings.TrimSpace(lines[j]))
		}
		entry.ResponsibilitiesText = strings.Join(bullets, "\n")
		entries = append(entries, entry)
	}
	return entries
}

func newEntry() models.WorkExperienceEntry {
	return models.WorkExperienceEntry{
		ID:              uuid.New().String(),
		SkillsToolsUsed: []string{},
	}
}

func emptyTemplate() models.WorkExperienceEntry {
	return newEntry()
}

// sortReverseChronological orders entries newest-first by start year. The
// sort only applies when every entry carries an extractable start year;
// otherwise document order is kept.
func sortReverseChronological(entries []models.WorkExperienceEntry) {
	type dated struct {
		entry models.WorkExperienceEntry
		year  int
	}
	ordered := make([]dated, len(entries))
	for i, entry := range entries {
		year, ok := startYear(entry)
		if !ok {
			return
		}
		ordered[i] = dated{entry: entry, year: year}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].year > ordered[j].year
	})
	for i, d := range ordered {
		entries[i] = d.entry
	}
}

func startYear(entry models.WorkExperienceEntry) (int, bool) {
	start := models.StrVal(entry.StartDate)
	match := yearTokenPattern.FindString(start)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}

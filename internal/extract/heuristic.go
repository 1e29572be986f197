package extract

import (
	"context"
	"regexp"
	"strings"

	"resumatch-utils/internal/parser/education"
	"resumatch-utils/internal/parser/experience"
	"resumatch-utils/internal/parser/textutil"
	"resumatch-utils/pkg/models"
)

// HeuristicStrategy builds the structured resume directly from the text
// with the line-classifier parsers. It is total: any non-empty input
// yields a structurally valid result.
type HeuristicStrategy struct{}

// NewHeuristicStrategy creates the fallback extraction strategy
func NewHeuristicStrategy() *HeuristicStrategy {
	return &HeuristicStrategy{}
}

// Name identifies the strategy on response envelopes
func (s *HeuristicStrategy) Name() string {
	return StrategyHeuristic
}

// Available always holds: the heuristic path has no external dependency
func (s *HeuristicStrategy) Available() bool {
	return true
}

// Extract parses the text without model assistance
func (s *HeuristicStrategy) Extract(_ context.Context, resumeText string) (*Result, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyInput
	}

	parsed := &models.ParsedResume{
		ContactDetails: ExtractContact(resumeText),
		Summary:        extractSummary(resumeText),
		Skills:         ExtractSkills(resumeText),
		Experiences:    experience.Parse(resumeText),
		Education:      education.Parse(resumeText),
	}
	return &Result{Resume: parsed}, nil
}

var nameWordPattern = regexp.MustCompile(`^[A-Za-z'.\-]+$`)

// ExtractContact pulls contact details out of the text with direct
// regexes. Absent fields stay nil.
func ExtractContact(text string) models.ContactDetails {
	contact := models.ContactDetails{
		Email:    models.StrPtr(textutil.FindEmail(text)),
		Phone:    models.StrPtr(textutil.FindPhone(text)),
		LinkedIn: models.StrPtr(textutil.FindLinkedIn(text)),
		Website:  models.StrPtr(textutil.FindWebsite(text)),
	}
	contact.FullName = models.StrPtr(findName(text))
	return contact
}

// findName looks for a 2-4 word alphabetic line near the top of the
// document, skipping lines that carry contact tokens.
func findName(text string) string {
	for i, line := range textutil.Lines(text) {
		if i > 5 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Contains(trimmed, "@") || textutil.FindPhone(trimmed) != "" {
			continue
		}
		if _, isHeader := textutil.SectionHeader(trimmed); isHeader {
			continue
		}
		words := strings.Fields(trimmed)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		isName := true
		for _, word := range words {
			if len(word) < 2 || !nameWordPattern.MatchString(word) {
				isName = false
				break
			}
		}
		if isName {
			return trimmed
		}
	}
	return ""
}

// ExtractSkills harvests the skills section, splitting on the common
// delimiters and deduplicating case-insensitively with first-seen casing
// preserved.
func ExtractSkills(text string) []string {
	body := sectionBody(text, textutil.SectionSkills)
	if body == "" {
		return []string{}
	}

	for _, delimiter := range []string{",", ";", "|", "·"} {
		body = strings.ReplaceAll(body, delimiter, "\n")
	}

	var skills []string
	for _, line := range strings.Split(body, "\n") {
		skill := textutil.StripBullet(line)
		if skill == "" || len(skill) > 50 {
			continue
		}
		skills = append(skills, skill)
	}
	return models.DedupeSkills(skills)
}

// extractSummary returns the summary section content verbatim. The
// heuristic path never synthesizes a summary from facts that are not
// already present as text.
func extractSummary(text string) string {
	return sectionBody(text, textutil.SectionSummary)
}

// sectionBody returns the text between a section's header and the next
// recognized header.
func sectionBody(text, kind string) string {
	var body []string
	inSection := false
	for _, line := range textutil.Lines(text) {
		headerKind, isHeader := textutil.SectionHeader(line)
		if isHeader {
			if inSection {
				break
			}
			inSection = headerKind == kind
			continue
		}
		if inSection {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" {
				body = append(body, trimmed)
			}
		}
	}
	return strings.Join(body, "\n")
}

// Package textutil holds the line and token level primitives shared by the
// heuristic parsers: section header detection, line classification patterns,
// tokenization and stop-word filtering.
package textutil

import (
	"regexp"
	"strings"
)

// Section kinds recognised by the header vocabulary
const (
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionSummary        = "summary"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAwards         = "awards"
)

// maxHeaderLength caps how long a line can be and still count as a section
// header. Real headers are short; a long line containing "experience" is
// prose, not a header.
const maxHeaderLength = 30

// sectionVocabulary maps section kinds to their header synonyms. Matching
// is case-insensitive whole-line containment.
var sectionVocabulary = map[string][]string{
	SectionExperience: {
		"experience", "employment", "work history", "professional experience",
		"work experience", "employment history", "career history",
	},
	SectionEducation: {
		"education", "academic background", "academics", "qualifications",
	},
	SectionSkills: {
		"skills", "technical skills", "core competencies", "technologies",
		"expertise",
	},
	SectionSummary: {
		"summary", "profile", "objective", "about me", "professional summary",
		"career summary",
	},
	SectionProjects: {
		"projects", "personal projects", "portfolio",
	},
	SectionCertifications: {
		"certifications", "certificates", "licenses", "courses",
	},
	SectionAwards: {
		"awards", "honors", "achievements",
	},
}

var (
	uppercaseRunPattern = regexp.MustCompile(`[A-Z]{2,}`)
	companySuffixRe     = regexp.MustCompile(`(?i)\b[A-Z][\w&.\- ]*\s+(Inc\.?|LLC|Ltd\.?|Corporation|Company|Co\.)(\s|$|,)`)
	cityStatePattern    = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)*,\s*[A-Z]{2}\b`)
	bulletPattern       = regexp.MustCompile(`^\s*([•\-*‣◦]|\d{1,2}\.)\s+`)
	numberedLinePattern = regexp.MustCompile(`^\s*\d{1,2}\.\s`)

	yearPattern      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	monthYearPattern = regexp.MustCompile(`\b\d{1,2}/\d{4}\b`)
	monthNamePattern = regexp.MustCompile(`(?i)\b(jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|jun(e)?|jul(y)?|aug(ust)?|sep(t(ember)?)?|oct(ober)?|nov(ember)?|dec(ember)?)\.?\s+\d{4}\b`)
	presentPattern   = regexp.MustCompile(`(?i)\b(present|current|now|till date|ongoing)\b`)

	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w\-]+`)
	websitePattern  = regexp.MustCompile(`(?i)\bhttps?://[^\s]+`)

	tokenSplitPattern = regexp.MustCompile(`[^a-z0-9+#.]+`)
)

// titleKeywords are the seniority and role words that mark a line as a job
// title candidate when the line starts with one of them.
var titleKeywords = []string{
	"senior", "junior", "lead", "principal", "staff", "chief", "head",
	"manager", "engineer", "developer", "director", "analyst", "consultant",
	"architect", "designer", "specialist", "coordinator", "administrator",
	"officer", "intern", "associate", "vp", "vice president", "president",
	"scientist", "technician", "assistant", "supervisor", "full stack",
	"frontend", "backend", "software", "data", "product", "project",
}

// stopWords are dropped during keyword extraction
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"from": {}, "are": {}, "was": {}, "were": {}, "will": {}, "have": {},
	"has": {}, "had": {}, "you": {}, "your": {}, "our": {}, "their": {},
	"not": {}, "all": {}, "any": {}, "can": {}, "but": {}, "who": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "how": {}, "about": {},
	"into": {}, "over": {}, "under": {}, "more": {}, "than": {}, "other": {},
	"such": {}, "they": {}, "them": {}, "its": {}, "also": {}, "been": {},
	"being": {}, "would": {}, "should": {}, "could": {}, "must": {},
	"may": {}, "per": {}, "etc": {}, "including": {}, "using": {},
	"work": {}, "working": {}, "experience": {}, "years": {}, "year": {},
	"ability": {}, "strong": {}, "required": {}, "preferred": {},
	"responsibilities": {}, "requirements": {}, "role": {}, "team": {},
	"job": {}, "candidate": {}, "plus": {}, "well": {}, "good": {},
}

// Lines splits text into lines with trailing carriage returns removed.
// Leading/trailing whitespace per line is preserved for bullet detection.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}

// SectionHeader reports the section kind a line introduces, if any. A
// header must be short and match one of the vocabulary synonyms.
func SectionHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimSuffix(trimmed, ":")
	if trimmed == "" || len(trimmed) > maxHeaderLength || IsBullet(line) {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	for kind, synonyms := range sectionVocabulary {
		for _, synonym := range synonyms {
			if lower == synonym || strings.Contains(lower, synonym) {
				return kind, true
			}
		}
	}
	return "", false
}

// IsBullet reports whether a line starts with a bullet marker (•, -, *,
// or "<number>.")
func IsBullet(line string) bool {
	return bulletPattern.MatchString(line) || numberedLinePattern.MatchString(line)
}

// StripBullet removes a leading bullet marker from a line
func StripBullet(line string) string {
	return strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
}

// HasDatePattern reports whether a line contains a 4-digit year, an
// MM/YYYY token, a month-name + year token, or an ongoing sentinel.
func HasDatePattern(line string) bool {
	return yearPattern.MatchString(line) ||
		monthYearPattern.MatchString(line) ||
		monthNamePattern.MatchString(line) ||
		presentPattern.MatchString(line)
}

// HasPresentToken reports whether a line mentions an ongoing sentinel
// (present, current, now, ...)
func HasPresentToken(line string) bool {
	return presentPattern.MatchString(line)
}

// IsCompanyCandidate reports whether a line looks like a company name:
// short, not a bullet, and carrying either a run of consecutive uppercase
// letters, a legal company suffix, or a "City, ST" tail.
func IsCompanyCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= 60 || IsBullet(line) {
		return false
	}
	return uppercaseRunPattern.MatchString(trimmed) ||
		companySuffixRe.MatchString(trimmed) ||
		cityStatePattern.MatchString(trimmed)
}

// IsTitleCandidate reports whether a line starts with a seniority or role
// keyword, marking it as a likely job title.
func IsTitleCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || IsBullet(line) {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, keyword := range titleKeywords {
		if strings.HasPrefix(lower, keyword+" ") || lower == keyword {
			return true
		}
	}
	return false
}

// CityState extracts a trailing "City, ST" location from a line, returning
// city and state separately.
func CityState(line string) (city, state string, ok bool) {
	match := cityStatePattern.FindString(line)
	if match == "" {
		return "", "", false
	}
	parts := strings.SplitN(match, ",", 2)
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// FindEmail returns the first email address in text, or ""
func FindEmail(text string) string {
	return emailPattern.FindString(text)
}

// FindPhone returns the first phone-number-like token in text, or ""
func FindPhone(text string) string {
	return strings.TrimSpace(phonePattern.FindString(text))
}

// FindLinkedIn returns the first LinkedIn profile URL in text, or ""
func FindLinkedIn(text string) string {
	return linkedinPattern.FindString(text)
}

// FindWebsite returns the first non-LinkedIn URL in text, or ""
func FindWebsite(text string) string {
	for _, match := range websitePattern.FindAllString(text, -1) {
		if !strings.Contains(strings.ToLower(match), "linkedin.com") {
			return strings.TrimRight(match, ".,)")
		}
	}
	return ""
}

// CompanySuffixMatches returns every "Name Inc/LLC/Ltd/..." style pattern
// found in text, trimmed.
func CompanySuffixMatches(text string) []string {
	var names []string
	for _, match := range companySuffixRe.FindAllString(text, -1) {
		names = append(names, strings.TrimRight(strings.TrimSpace(match), ","))
	}
	return names
}

// Tokenize lowercases text and splits it into alphanumeric tokens.
// Characters common in technology names (+, #, .) survive so "c++" and
// "node.js" stay intact.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	raw := tokenSplitPattern.Split(lower, -1)
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		token = strings.Trim(token, ".")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Keywords extracts the deduplicated keyword set from text: tokenized,
// lowercased, with short tokens and stop words dropped.
func Keywords(text string, minLength int) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, token := range Tokenize(text) {
		if len(token) < minLength {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		keywords[token] = struct{}{}
	}
	return keywords
}

// IsStopWord reports whether a lowercase token is in the stop-word set
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

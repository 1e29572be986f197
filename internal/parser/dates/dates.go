// Package dates canonicalizes the heterogeneous date tokens found in
// resume text and splits date ranges into start and end halves.
package dates

import (
	"regexp"
	"strings"
)

// Present is the canonical sentinel for an ongoing role or program
const Present = "Present"

var (
	sentinelPattern  = regexp.MustCompile(`(?i)^(present|current|now|till date|to date|ongoing)\.?$`)
	yearOnlyPattern  = regexp.MustCompile(`^(19|20)\d{2}$`)
	monthYearPattern = regexp.MustCompile(`^\d{1,2}/\d{4}$`)
	monthNamePattern = regexp.MustCompile(`(?i)^(jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|jun(e)?|jul(y)?|aug(ust)?|sep(t(ember)?)?|oct(ober)?|nov(ember)?|dec(ember)?)\.?\s+(19|20)\d{2}$`)

	rangeSeparators = []string{" - ", " – ", " — ", "–", "—", " to ", " To ", " TO "}
)

// IsSentinel reports whether a token means "ongoing" (present, current,
// now, till date), case-insensitively.
func IsSentinel(token string) bool {
	return sentinelPattern.MatchString(strings.TrimSpace(token))
}

// Normalize canonicalizes a single date token. Sentinels become "Present",
// month names are title-cased, recognized numeric tokens pass through
// trimmed, and anything unrecognized is returned trimmed as-is so no
// information is invented or lost.
func Normalize(token string) string {
	trimmed := strings.Trim(strings.TrimSpace(token), ".,;")
	if trimmed == "" {
		return ""
	}
	if IsSentinel(trimmed) {
		return Present
	}
	if yearOnlyPattern.MatchString(trimmed) || monthYearPattern.MatchString(trimmed) {
		return trimmed
	}
	if monthNamePattern.MatchString(trimmed) {
		fields := strings.Fields(trimmed)
		month := strings.TrimSuffix(fields[0], ".")
		return titleCase(month) + " " + fields[len(fields)-1]
	}
	return trimmed
}

// SplitRange splits a date-range string on the first recognized separator
// (" - ", en/em dashes, or "to"). The first token is the start and the
// remainder the end, both normalized. When only one token exists, the end
// defaults to "Present" if the string mentions an ongoing sentinel.
func SplitRange(s string) (start, end string) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ""
	}
	for _, separator := range rangeSeparators {
		if idx := strings.Index(trimmed, separator); idx >= 0 {
			start = Normalize(trimmed[:idx])
			end = Normalize(trimmed[idx+len(separator):])
			return start, end
		}
	}
	// Single token: an ongoing sentinel alone means the end date
	if IsSentinel(trimmed) {
		return "", Present
	}
	start = Normalize(trimmed)
	if sentinelPattern.MatchString(trimmed) || strings.Contains(strings.ToLower(trimmed), "present") || strings.Contains(strings.ToLower(trimmed), "current") {
		end = Present
	}
	return start, end
}

// ExtractTokens pulls every recognizable date token out of a line, in
// order of appearance. Used by the education parser where dates share a
// line with other content.
var inlineTokenPattern = regexp.MustCompile(`(?i)\b(?:\d{1,2}/\d{4}|(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(?:19|20)\d{2}|(?:19|20)\d{2}|present|current|now|till date|ongoing)\b`)

func ExtractTokens(line string) []string {
	matches := inlineTokenPattern.FindAllString(line, -1)
	tokens := make([]string, 0, len(matches))
	for _, match := range matches {
		tokens = append(tokens, Normalize(match))
	}
	return tokens
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

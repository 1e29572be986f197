package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionHeader(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		expectedKind string
		expectedOK   bool
	}{
		{name: "plain experience", line: "EXPERIENCE", expectedKind: SectionExperience, expectedOK: true},
		{name: "work history", line: "Work History", expectedKind: SectionExperience, expectedOK: true},
		{name: "with colon", line: "Education:", expectedKind: SectionEducation, expectedOK: true},
		{name: "technical skills", line: "Technical Skills", expectedKind: SectionSkills, expectedOK: true},
		{name: "summary", line: "Professional Summary", expectedKind: SectionSummary, expectedOK: true},
		{name: "certifications", line: "CERTIFICATIONS", expectedKind: SectionCertifications, expectedOK: true},
		{name: "long prose is not a header", line: "My experience with distributed systems taught me a lot", expectedOK: false},
		{name: "bullet is not a header", line: "• experience with Go", expectedOK: false},
		{name: "empty", line: "", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := SectionHeader(tt.line)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedKind, kind)
			}
		})
	}
}

func TestIsCompanyCandidate(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{name: "all caps name", line: "ACME CORP", expected: true},
		{name: "legal suffix", line: "Initech Inc.", expected: true},
		{name: "city state tail", line: "Globex Corporation, Springfield, IL", expected: true},
		{name: "plain title", line: "Senior Engineer", expected: false},
		{name: "bullet", line: "• ACME CORP", expected: false},
		{name: "long prose", line: "I worked at a large multinational corporation for several years building software", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCompanyCandidate(tt.line))
		})
	}
}

func TestIsTitleCandidate(t *testing.T) {
	assert.True(t, IsTitleCandidate("Senior Engineer"))
	assert.True(t, IsTitleCandidate("Lead Data Scientist"))
	assert.True(t, IsTitleCandidate("software developer"))
	assert.False(t, IsTitleCandidate("ACME CORP"))
	assert.False(t, IsTitleCandidate("• Led a team of five"))
}

func TestCityState(t *testing.T) {
	city, state, ok := CityState("Globex Corporation, Springfield, IL")
	assert.True(t, ok)
	assert.Equal(t, "Springfield", city)
	assert.Equal(t, "IL", state)

	_, _, ok = CityState("No location here")
	assert.False(t, ok)
}

func TestContactFinders(t *testing.T) {
	text := "Jane Doe\njane.doe@example.com | (555) 123-4567\nlinkedin.com/in/janedoe\nhttps://janedoe.dev"

	assert.Equal(t, "jane.doe@example.com", FindEmail(text))
	assert.Equal(t, "(555) 123-4567", FindPhone(text))
	assert.Equal(t, "linkedin.com/in/janedoe", FindLinkedIn(text))
	assert.Equal(t, "https://janedoe.dev", FindWebsite(text))

	assert.Empty(t, FindEmail("no contact details"))
	assert.Empty(t, FindPhone("no contact details"))
}

func TestFindWebsiteSkipsLinkedIn(t *testing.T) {
	text := "https://www.linkedin.com/in/janedoe and https://janedoe.dev"
	assert.Equal(t, "https://janedoe.dev", FindWebsite(text))
}

func TestCompanySuffixMatches(t *testing.T) {
	text := "Worked at Acme Inc. and later at Initech LLC before consulting."
	matches := CompanySuffixMatches(text)
	assert.Len(t, matches, 2)
	assert.Contains(t, matches[0], "Acme Inc")
	assert.Contains(t, matches[1], "Initech LLC")
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Built C++ services and Node.js APIs, plus k8s!")
	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "node.js")
	assert.Contains(t, tokens, "k8s")
	assert.NotContains(t, tokens, "")
}

func TestKeywords(t *testing.T) {
	keywords := Keywords("We require strong experience with Kubernetes and the Go language", 3)

	assert.Contains(t, keywords, "kubernetes")
	// Stop words and short tokens are dropped
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "strong")
	assert.NotContains(t, keywords, "experience")
	assert.NotContains(t, keywords, "go")
}

func TestHasDatePattern(t *testing.T) {
	assert.True(t, HasDatePattern("01/2020 - Present"))
	assert.True(t, HasDatePattern("March 2019"))
	assert.True(t, HasDatePattern("2014"))
	assert.True(t, HasDatePattern("current role"))
	assert.False(t, HasDatePattern("Senior Engineer"))
}

func TestBullets(t *testing.T) {
	assert.True(t, IsBullet("• Built things"))
	assert.True(t, IsBullet("- Built things"))
	assert.True(t, IsBullet("1. Built things"))
	assert.False(t, IsBullet("Built things"))

	assert.Equal(t, "Built things", StripBullet("• Built things"))
	assert.Equal(t, "Built things", StripBullet("  - Built things"))
}

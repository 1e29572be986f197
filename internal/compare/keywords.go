package compare

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"resumatch-utils/internal/parser/sections"
	"resumatch-utils/internal/parser/textutil"
	"resumatch-utils/pkg/models"
)

// softSkillTerms classifies a keyword as a soft skill. Anything outside
// this set counts as a hard skill for reporting purposes.
var softSkillTerms = map[string]struct{}{
	"communication": {}, "leadership": {}, "teamwork": {}, "collaboration": {},
	"mentoring": {}, "mentorship": {}, "ownership": {}, "initiative": {},
	"adaptability": {}, "organized": {}, "organization": {}, "presentation": {},
	"negotiation": {}, "stakeholder": {}, "stakeholders": {}, "agile": {},
	"scrum": {}, "planning": {}, "prioritization": {}, "problem-solving": {},
	"analytical": {}, "creative": {}, "creativity": {}, "detail-oriented": {},
}

// fallbackSuggestions are the generic improvement suggestions the degraded
// path can offer without a model. Keyword-specific suggestions are
// prepended when unmatched terms exist.
var fallbackSuggestions = []string{
	"Quantify achievements with concrete numbers where possible.",
	"Mirror the job posting's terminology for technologies you already use.",
	"Lead each experience bullet with a strong action verb.",
}

// KeywordScorer is the deterministic comparison fallback. Same inputs
// always produce the same report; no call leaves the process.
type KeywordScorer struct {
	minKeywordLength int
	maxSuggestions   int
}

// NewKeywordScorer creates the fallback scorer. Zero values fall back to
// sensible bounds so the scorer is usable without configuration.
func NewKeywordScorer(minKeywordLength, maxSuggestions int) *KeywordScorer {
	if minKeywordLength <= 0 {
		minKeywordLength = 3
	}
	if maxSuggestions <= 0 {
		maxSuggestions = 5
	}
	return &KeywordScorer{
		minKeywordLength: minKeywordLength,
		maxSuggestions:   maxSuggestions,
	}
}

// Score computes keyword-overlap fit between the resume and the job
// description. The score is round(100 * |matched| / |job keywords|), and 0
// when the job text yields no keywords at all. The report always carries
// DegradedMode so callers can tell it apart from an AI analysis.
func (s *KeywordScorer) Score(req models.CompareRequest) *models.ComparisonReport {
	jobKeywords := textutil.Keywords(req.JobDescription, s.minKeywordLength)
	resumeKeywords := textutil.Keywords(req.ResumeText, s.minKeywordLength)

	matched := 0
	var hardSkills, softSkills []models.KeywordMatch
	for _, term := range sortedTerms(jobKeywords) {
		_, found := resumeKeywords[term]
		if found {
			matched++
		}
		match := models.KeywordMatch{Term: term, Matched: found}
		if _, soft := softSkillTerms[term]; soft {
			softSkills = append(softSkills, match)
		} else {
			hardSkills = append(hardSkills, match)
		}
	}

	score := 0
	if len(jobKeywords) > 0 {
		score = int(math.Round(100 * float64(matched) / float64(len(jobKeywords))))
	}

	report := &models.ComparisonReport{
		MatchScore:   models.ClampScore(score),
		HardSkills:   hardSkills,
		SoftSkills:   softSkills,
		ATSChecks:    s.atsChecks(req, matched, len(jobKeywords)),
		Suggestions:  s.suggestions(hardSkills),
		DegradedMode: true,
	}
	report.SectionAnalysis = sectionInsights(req.ResumeText, req.JobDescription)
	return report
}

// atsChecks runs the screening-software style checks the fallback can
// verify without a model: keyword coverage, contact details, section
// structure and document length.
func (s *KeywordScorer) atsChecks(req models.CompareRequest, matched, total int) []models.ATSCheck {
	checks := []models.ATSCheck{
		keywordCoverageCheck(matched, total),
		contactCheck(req.ResumeText),
		sectionStructureCheck(req.ResumeText),
		lengthCheck(req.ResumeText),
	}
	return checks
}

func keywordCoverageCheck(matched, total int) models.ATSCheck {
	check := models.ATSCheck{Name: "keyword_coverage"}
	switch {
	case total == 0:
		check.Status = models.CheckStatusWarning
		check.Message = "Job description yielded no keywords to check against."
	case matched*2 >= total:
		check.Status = models.CheckStatusPass
		check.Message = fmt.Sprintf("%d of %d job keywords found in the resume.", matched, total)
	default:
		check.Status = models.CheckStatusFail
		check.Message = fmt.Sprintf("Only %d of %d job keywords found in the resume.", matched, total)
	}
	return check
}

func contactCheck(resumeText string) models.ATSCheck {
	check := models.ATSCheck{Name: "contact_details"}
	hasEmail := textutil.FindEmail(resumeText) != ""
	hasPhone := textutil.FindPhone(resumeText) != ""
	switch {
	case hasEmail && hasPhone:
		check.Status = models.CheckStatusPass
		check.Message = "Email address and phone number are both present."
	case hasEmail || hasPhone:
		check.Status = models.CheckStatusWarning
		check.Message = "Only one of email address and phone number was found."
	default:
		check.Status = models.CheckStatusFail
		check.Message = "No email address or phone number was found."
	}
	return check
}

func sectionStructureCheck(resumeText string) models.ATSCheck {
	check := models.ATSCheck{Name: "section_structure"}
	found := map[string]struct{}{}
	for _, line := range textutil.Lines(resumeText) {
		if kind, ok := textutil.SectionHeader(line); ok {
			found[kind] = struct{}{}
		}
	}
	_, hasExperience := found[textutil.SectionExperience]
	_, hasEducation := found[textutil.SectionEducation]
	switch {
	case hasExperience && hasEducation:
		check.Status = models.CheckStatusPass
		check.Message = "Experience and education sections are clearly labeled."
	case hasExperience || hasEducation:
		check.Status = models.CheckStatusWarning
		check.Message = "Only one of the experience and education sections has a recognizable header."
	default:
		check.Status = models.CheckStatusFail
		check.Message = "No recognizable experience or education section headers were found."
	}
	return check
}

func lengthCheck(resumeText string) models.ATSCheck {
	check := models.ATSCheck{Name: "document_length"}
	words := len(strings.Fields(resumeText))
	switch {
	case words < 100:
		check.Status = models.CheckStatusWarning
		check.Message = fmt.Sprintf("Resume is very short (%d words); screening software may flag it as incomplete.", words)
	case words > 1200:
		check.Status = models.CheckStatusWarning
		check.Message = fmt.Sprintf("Resume is very long (%d words); consider trimming to the most relevant content.", words)
	default:
		check.Status = models.CheckStatusPass
		check.Message = fmt.Sprintf("Resume length (%d words) is within the typical range.", words)
	}
	return check
}

// suggestions builds the degraded-mode suggestion list: unmatched hard
// keywords first, then the generic entries, capped at maxSuggestions.
func (s *KeywordScorer) suggestions(hardSkills []models.KeywordMatch) []string {
	var unmatched []string
	for _, skill := range hardSkills {
		if !skill.Matched {
			unmatched = append(unmatched, skill.Term)
		}
	}

	var out []string
	if len(unmatched) > 0 {
		if len(unmatched) > 8 {
			unmatched = unmatched[:8]
		}
		out = append(out, "Consider addressing these job keywords if they apply to you: "+strings.Join(unmatched, ", ")+".")
	}
	out = append(out, fallbackSuggestions...)
	if len(out) > s.maxSuggestions {
		out = out[:s.maxSuggestions]
	}
	return out
}

// sectionInsights folds the missing-section analysis into the report's
// section commentary.
func sectionInsights(resumeText, jobText string) []models.SectionInsight {
	var insights []models.SectionInsight
	for _, missing := range sections.Analyze(resumeText, jobText) {
		insights = append(insights, models.SectionInsight{
			Section:    missing.Name,
			Status:     "missing",
			Commentary: missing.Recommendation,
		})
	}
	return insights
}

func sortedTerms(set map[string]struct{}) []string {
	terms := make([]string, 0, len(set))
	for term := range set {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

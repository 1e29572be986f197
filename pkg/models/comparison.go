package models

// ATS check statuses
const (
	CheckStatusPass    = "pass"
	CheckStatusWarning = "warning"
	CheckStatusFail    = "fail"
)

// Comparison perspectives
const (
	RoleJobSeeker = "job_seeker"
	RoleRecruiter = "recruiter"
)

// KeywordMatch reports whether a single job keyword was found in the resume
type KeywordMatch struct {
	Term    string `json:"term"`
	Matched bool   `json:"matched"`
}

// ATSCheck is one applicant-tracking-system style check result
type ATSCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // pass, warning or fail
	Message string `json:"message"`
}

// CriterionScore is one of the advanced analysis dimensions scored by the
// AI path (technical skills, soft skills, experience, ...)
type CriterionScore struct {
	Name       string `json:"name"`
	Score      int    `json:"score"` // 0-100
	Assessment string `json:"assessment"`
}

// SectionInsight is a per-section observation in the comparison report
type SectionInsight struct {
	Section    string `json:"section"`
	Status     string `json:"status"` // present, missing or weak
	Commentary string `json:"commentary"`
}

// ImprovementPotential estimates how far the match score could be raised
type ImprovementPotential struct {
	CurrentScore   int      `json:"current_score"`
	PotentialScore int      `json:"potential_score"`
	KeyActions     []string `json:"key_actions"`
}

// JobTitleAnalysis relates the candidate's most recent title to the target
type JobTitleAnalysis struct {
	TargetTitle string `json:"target_title"`
	Alignment   string `json:"alignment"` // strong, partial or weak
	Commentary  string `json:"commentary"`
}

// ComparisonReport is the full resume-vs-job analysis. The fallback path
// only fills the keyword lists, basic ATS checks and suggestions, and sets
// DegradedMode so callers can tell the two apart. MatchScore is always
// within [0, 100].
type ComparisonReport struct {
	MatchScore            int                   `json:"match_score"`
	HardSkills            []KeywordMatch        `json:"hard_skills"`
	SoftSkills            []KeywordMatch        `json:"soft_skills"`
	ATSChecks             []ATSCheck            `json:"ats_checks"`
	Suggestions           []string              `json:"suggestions"`
	DegradedMode          bool                  `json:"degraded_mode,omitempty"`
	AdvancedCriteria      []CriterionScore      `json:"advanced_criteria,omitempty"`
	PerformanceIndicators []string              `json:"performance_indicators,omitempty"`
	SectionAnalysis       []SectionInsight      `json:"section_analysis,omitempty"`
	ImprovementPotential  *ImprovementPotential `json:"improvement_potential,omitempty"`
	JobTitleAnalysis      *JobTitleAnalysis     `json:"job_title_analysis,omitempty"`
}

// ClampScore bounds a model-reported score into the valid [0, 100] range
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

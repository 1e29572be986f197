package extract

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"resumatch-utils/internal/logging"
	"resumatch-utils/internal/parser/textutil"
	"resumatch-utils/internal/validate"
	"resumatch-utils/pkg/models"
)

// Recovery warnings attached to salvaged results
const (
	WarningSalvagedJSON  = "model reply required recovery parsing; results may be incomplete"
	WarningSkeletonBuilt = "model reply was unusable; result built directly from the resume text"
)

// Salvage turns an unusable model reply into a structurally valid result.
// It first tries to carve a JSON object out of the reply; failing that it
// assembles a minimal skeleton from the original resume text. Salvage
// never fails: its result always carries a non-empty Warning.
func Salvage(rawReply, sourceText string) *Result {
	logger := logging.GetGlobalLogger()

	if parsed, ok := carveJSON(rawReply); ok {
		validated, _ := validate.Resume(parsed, sourceText)
		validated.Skills = models.DedupeSkills(validated.Skills)
		assignEntryIDs(validated)
		logger.Info("Recovery parser salvaged embedded JSON from model reply", map[string]interface{}{
			"experiences": len(validated.Experiences),
			"education":   len(validated.Education),
		})
		return &Result{Resume: validated, Warning: WarningSalvagedJSON}
	}

	logger.Warn("Recovery parser found no usable JSON, building skeleton from source text", nil)
	return &Result{Resume: skeletonFromSource(sourceText), Warning: WarningSkeletonBuilt}
}

// carveJSON extracts the widest {...} window from the reply and attempts
// to decode it. Model replies frequently wrap the payload in prose or
// markdown fences; the brace window sidesteps both.
func carveJSON(reply string) (*models.ParsedResume, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var parsed models.ParsedResume
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return nil, false
	}
	return &parsed, true
}

// skeletonFromSource builds the minimal resume the raw text supports:
// contact details from direct regexes and low-confidence company entries
// from corporate-suffix matches. Nothing is invented beyond what the text
// literally contains.
func skeletonFromSource(sourceText string) *models.ParsedResume {
	parsed := &models.ParsedResume{
		ContactDetails: ExtractContact(sourceText),
		Skills:         []string{},
		Experiences:    []models.WorkExperienceEntry{},
		Education:      []models.EducationEntry{},
	}

	// Company names are pulled from the experience section when the text
	// has one; only headerless text is scanned whole, so companies merely
	// mentioned in a summary paragraph are not promoted to entries.
	span := sectionBody(sourceText, textutil.SectionExperience)
	if strings.TrimSpace(span) == "" {
		span = sourceText
	}

	for _, company := range textutil.CompanySuffixMatches(span) {
		parsed.Experiences = append(parsed.Experiences, models.WorkExperienceEntry{
			ID:              uuid.New().String(),
			CompanyName:     models.StrPtr(company),
			SkillsToolsUsed: []string{},
		})
	}
	return parsed
}

// assignEntryIDs fills in entry IDs the decoded JSON did not carry
func assignEntryIDs(parsed *models.ParsedResume) {
	for i := range parsed.Experiences {
		if parsed.Experiences[i].ID == "" {
			parsed.Experiences[i].ID = uuid.New().String()
		}
		if parsed.Experiences[i].SkillsToolsUsed == nil {
			parsed.Experiences[i].SkillsToolsUsed = []string{}
		}
	}
	for i := range parsed.Education {
		if parsed.Education[i].ID == "" {
			parsed.Education[i].ID = uuid.New().String()
		}
	}
}

package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"resumatch-utils/internal/config"
	"resumatch-utils/internal/logging"
	"resumatch-utils/pkg/models"
)

// ClaudeProvider implements the LLM provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// ExtractResume asks Claude for a structured representation of the resume
// text and parses the JSON reply. The reply is raw model output; the
// hallucination validator decides what survives.
func (cp *ClaudeProvider) ExtractResume(ctx context.Context, resumeText string) (*models.ParsedResume, error) {
	startTime := time.Now()

	cp.logger.Info("Starting resume extraction with Claude", map[string]interface{}{
		"text_length": len(resumeText),
		"provider":    "claude",
	})

	content := cp.truncate(resumeText)
	responseText, err := cp.complete(ctx, cp.buildExtractionPrompt(content))
	if err != nil {
		return nil, err
	}

	var parsed models.ParsedResume
	if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
		return nil, &UnparsableReplyError{Raw: responseText, Err: err}
	}

	assignEntryIDs(&parsed)

	cp.logger.Info("Resume extraction completed", map[string]interface{}{
		"experiences":     len(parsed.Experiences),
		"education":       len(parsed.Education),
		"processing_time": time.Since(startTime),
		"provider":        "claude",
	})

	return &parsed, nil
}

// CompareResume asks Claude to score resume-vs-job fit across the nine
// analysis dimensions and parses the reply into a ComparisonReport.
func (cp *ClaudeProvider) CompareResume(ctx context.Context, req models.CompareRequest) (*models.ComparisonReport, error) {
	startTime := time.Now()

	cp.logger.Info("Starting resume comparison with Claude", map[string]interface{}{
		"resume_length": len(req.ResumeText),
		"job_length":    len(req.JobDescription),
		"role":          req.Role,
		"provider":      "claude",
	})

	responseText, err := cp.complete(ctx, cp.buildComparisonPrompt(req))
	if err != nil {
		return nil, err
	}

	var report models.ComparisonReport
	if err := json.Unmarshal([]byte(responseText), &report); err != nil {
		return nil, &UnparsableReplyError{Raw: responseText, Err: err}
	}

	report.MatchScore = models.ClampScore(report.MatchScore)

	cp.logger.Info("Resume comparison completed", map[string]interface{}{
		"match_score":     report.MatchScore,
		"processing_time": time.Since(startTime),
		"provider":        "claude",
	})

	return &report, nil
}

// complete sends a single prompt and returns the cleaned reply text
func (cp *ClaudeProvider) complete(ctx context.Context, prompt string) (string, error) {
	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	if len(response.Content) == 0 {
		return "", &UnparsableReplyError{Raw: "", Err: fmt.Errorf("empty response from Claude")}
	}

	var responseText string
	for _, block := range response.Content {
		textContent := block.AsText()
		responseText = textContent.Text
		break
	}

	responseText = stripMarkdownFences(responseText)
	if responseText == "" {
		return "", &UnparsableReplyError{Raw: "", Err: fmt.Errorf("no text content in Claude response")}
	}

	cp.logger.Debug("Claude response received", map[string]interface{}{
		"response_length": len(responseText),
	})

	return responseText, nil
}

// truncate bounds content length to fit token limits, roughly estimating
// 3 chars per token.
func (cp *ClaudeProvider) truncate(content string) string {
	maxContentLength := cp.config.LLM.MaxTokens * 3
	if len(content) > maxContentLength {
		cp.logger.Debug("Content truncated to fit token limits", map[string]interface{}{
			"original_length": len(content),
		})
		return content[:maxContentLength] + "..."
	}
	return content
}

// buildExtractionPrompt creates the constrained prompt for resume
// extraction. The schema mirrors models.ParsedResume; the instructions
// forbid invention and require null for anything absent from the text.
func (cp *ClaudeProvider) buildExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are a resume parser. Extract structured information from the resume text below and return it as a JSON object.

Return a valid JSON object with exactly these fields:

{
  "contact_details": {
    "full_name": "string or null",
    "email": "string or null",
    "phone": "string or null",
    "whatsapp": "string or null",
    "linkedin": "string or null",
    "website": "string or null"
  },
  "summary": "string - professional summary, empty string if none",
  "skills": ["array of skill strings"],
  "experiences": [
    {
      "company_name": "string or null",
      "job_title": "string or null",
      "location": {"country": "string or null", "state": "string or null", "city": "string or null"},
      "start_date": "string or null",
      "end_date": "string or null - use \"Present\" for ongoing roles",
      "responsibilities_text": "string - responsibilities as written, newline separated",
      "skills_tools_used": ["array of strings"]
    }
  ],
  "education": [
    {
      "course_or_certification_name": "string or null",
      "institute_name": "string or null",
      "university_name": "string or null",
      "location": {"country": "string or null", "state": "string or null", "city": "string or null"},
      "start_date": "string or null",
      "end_date": "string or null",
      "is_certification": boolean,
      "certificate_authority": "string or null",
      "certificate_number": "string or null",
      "validity": "string or null"
    }
  ]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. NEVER invent facts that are not stated in the resume text. Every company name, job title and institution MUST appear verbatim in the text
3. Use null for any field whose value is absent from the text - never guess or fill in placeholder values
4. Keep dates as they appear in the text; normalize ongoing roles to "Present"
5. The summary may only rephrase content that is present in the text
6. Certificate fields are only relevant when is_certification is true

RESUME TEXT:
%s`, resumeText)
}

// buildComparisonPrompt creates the prompt for resume-vs-job scoring.
// The role changes the framing paragraph; the response schema is fixed
// regardless of perspective.
func (cp *ClaudeProvider) buildComparisonPrompt(req models.CompareRequest) string {
	framing := "You are a career advisor helping a job seeker understand how well their resume matches a job posting. Frame suggestions as actions the candidate can take."
	if req.Role == models.RoleRecruiter {
		framing = "You are a technical recruiter screening a resume against a job posting. Frame suggestions as observations for the hiring team."
	}

	var target strings.Builder
	if req.JobTitle != "" {
		fmt.Fprintf(&target, "\nTarget job title: %s", req.JobTitle)
	}
	if req.CompanyName != "" {
		fmt.Fprintf(&target, "\nTarget company: %s", req.CompanyName)
	}

	return fmt.Sprintf(`%s

Analyze the resume against the job description across these nine dimensions: technical skills, soft skills, experience, education, responsibilities, KPIs, culture fit, career growth, industry knowledge.%s

Return ONLY a valid JSON object with exactly these fields:

{
  "match_score": integer 0-100,
  "hard_skills": [{"term": "string", "matched": boolean}],
  "soft_skills": [{"term": "string", "matched": boolean}],
  "ats_checks": [{"name": "string", "status": "pass|warning|fail", "message": "string"}],
  "suggestions": ["array of free-text suggestions"],
  "advanced_criteria": [{"name": "string", "score": integer 0-100, "assessment": "string"}],
  "performance_indicators": ["KPIs and measurable achievements found in the resume"],
  "section_analysis": [{"section": "string", "status": "present|missing|weak", "commentary": "string"}],
  "improvement_potential": {"current_score": integer, "potential_score": integer, "key_actions": ["string"]},
  "job_title_analysis": {"target_title": "string", "alignment": "strong|partial|weak", "commentary": "string"}
}

RULES:
1. Return ONLY the JSON object, no additional text
2. hard_skills and soft_skills list keywords taken from the JOB DESCRIPTION, with matched=true only when the resume demonstrates them
3. advanced_criteria must contain one entry per analysis dimension listed above
4. Keep messages concise and grounded in the provided texts

RESUME:
%s

JOB DESCRIPTION:
%s`, framing, target.String(), cp.truncate(req.ResumeText), cp.truncate(req.JobDescription))
}

// IsHealthy checks if the Claude provider is configured and reachable
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 16,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// Name returns the name of the LLM provider
func (cp *ClaudeProvider) Name() string {
	return "claude"
}

// stripMarkdownFences removes ```json ... ``` wrappers the model emits
// despite instructions not to.
func stripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	return text
}

// assignEntryIDs gives every extracted entry a fresh per-run ID; the
// model is never asked to produce identifiers.
func assignEntryIDs(parsed *models.ParsedResume) {
	for i := range parsed.Experiences {
		parsed.Experiences[i].ID = uuid.New().String()
	}
	for i := range parsed.Education {
		parsed.Education[i].ID = uuid.New().String()
	}
}

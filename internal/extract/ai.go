package extract

import (
	"context"
	"errors"

	"resumatch-utils/internal/llm"
	"resumatch-utils/internal/logging"
	"resumatch-utils/internal/validate"
	"resumatch-utils/pkg/models"
)

// AIStrategy delegates extraction to the generative model, then narrows
// the untrusted reply through the hallucination validator. An unparsable
// reply is salvaged by the recovery parser rather than failing the run;
// service-level errors propagate so the resolver can fall back.
type AIStrategy struct {
	client extractClient
	logger logging.Logger
}

// NewAIStrategy creates the AI-delegated extraction strategy
func NewAIStrategy(client extractClient) *AIStrategy {
	return &AIStrategy{
		client: client,
		logger: logging.GetGlobalLogger(),
	}
}

// Name identifies the strategy on response envelopes
func (s *AIStrategy) Name() string {
	return StrategyAI
}

// Available reports whether the model service is currently usable
func (s *AIStrategy) Available() bool {
	return s.client.IsHealthy()
}

// Extract runs the model, validates its output against the source text
// and returns the narrowed structure.
func (s *AIStrategy) Extract(ctx context.Context, resumeText string) (*Result, error) {
	parsed, err := s.client.ExtractResume(ctx, resumeText)
	if err != nil {
		var unparsable *llm.UnparsableReplyError
		if errors.As(err, &unparsable) {
			// The service answered but not with JSON; salvage what we can
			s.logger.Warn("Model reply was not valid JSON, invoking recovery parser", map[string]interface{}{
				"reply_length": len(unparsable.Raw),
			})
			return Salvage(unparsable.Raw, resumeText), nil
		}
		return nil, err
	}

	validated, stats := validate.Resume(parsed, resumeText)
	validated.Skills = models.DedupeSkills(validated.Skills)

	s.logger.Debug("AI extraction validated", map[string]interface{}{
		"experiences":         len(validated.Experiences),
		"education":           len(validated.Education),
		"dropped_experiences": stats.DroppedExperiences,
		"cleared_titles":      stats.ClearedTitles,
		"dropped_education":   stats.DroppedEducation,
	})

	return &Result{Resume: validated}, nil
}

// Package compare scores resume-vs-job fit. The AI path produces the
// full analysis; the deterministic keyword scorer takes over whenever the
// model service cannot, so a comparison request never fails for service
// reasons.
package compare

import (
	"context"

	"resumatch-utils/internal/logging"
	"resumatch-utils/pkg/models"
)

// Strategy names reported on the response envelope
const (
	StrategyAI       = "ai"
	StrategyFallback = "keyword_fallback"
)

// compareClient is the slice of the LLM manager the engine needs
type compareClient interface {
	CompareResume(ctx context.Context, req models.CompareRequest) (*models.ComparisonReport, error)
	IsHealthy() bool
}

// Engine runs a comparison through the AI path when available and falls
// back to the keyword scorer on any failure.
type Engine struct {
	client   compareClient
	fallback *KeywordScorer
	logger   logging.Logger
}

// NewEngine creates a comparison engine over the given LLM client. A nil
// client routes everything through the keyword scorer.
func NewEngine(client compareClient, minKeywordLength, maxSuggestions int) *Engine {
	return &Engine{
		client:   client,
		fallback: NewKeywordScorer(minKeywordLength, maxSuggestions),
		logger:   logging.GetGlobalLogger(),
	}
}

// Compare produces a comparison report together with the name of the
// strategy that produced it. It never returns a service error: the
// fallback scorer is total.
func (e *Engine) Compare(ctx context.Context, req models.CompareRequest) (*models.ComparisonReport, string) {
	if e.client != nil && e.client.IsHealthy() {
		report, err := e.client.CompareResume(ctx, req)
		if err == nil && report != nil {
			report.MatchScore = models.ClampScore(report.MatchScore)
			e.ensureSectionAnalysis(report, req)
			return report, StrategyAI
		}
		// Any AI-path failure, including an unparsable reply, degrades to
		// the deterministic scorer without retrying.
		if err != nil {
			e.logger.Warn("AI comparison failed, using keyword fallback", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return e.fallback.Score(req), StrategyFallback
}

// ensureSectionAnalysis fills in the section commentary when the model
// omitted it. The missing-section scan is deterministic, so it is safe to
// run on either path.
func (e *Engine) ensureSectionAnalysis(report *models.ComparisonReport, req models.CompareRequest) {
	if len(report.SectionAnalysis) == 0 {
		report.SectionAnalysis = sectionInsights(req.ResumeText, req.JobDescription)
	}
}

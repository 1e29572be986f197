// Package extract orchestrates the two resume extraction strategies: the
// AI-delegated path and the pure heuristic fallback. Both produce the
// same structure; the resolver picks the AI path when the model service
// is usable and drops to the heuristics on any service failure.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resumatch-utils/internal/logging"
	"resumatch-utils/pkg/models"
)

// Strategy names reported on the response envelope
const (
	StrategyAI        = "ai"
	StrategyHeuristic = "heuristic"
)

// ErrEmptyInput rejects empty resume text before any parsing begins
var ErrEmptyInput = errors.New("resume text is empty")

// Result is the outcome of one extraction run. Warning is non-empty when
// the recovery parser had to salvage the result.
type Result struct {
	Resume  *models.ParsedResume
	Warning string
}

// Strategy is one way of turning resume text into a ParsedResume.
// Available reports whether the strategy can currently run.
type Strategy interface {
	Name() string
	Available() bool
	Extract(ctx context.Context, resumeText string) (*Result, error)
}

// extractClient is the slice of the LLM manager the AI strategy needs
type extractClient interface {
	ExtractResume(ctx context.Context, resumeText string) (*models.ParsedResume, error)
	IsHealthy() bool
}

// Resolver runs an ordered list of strategies, taking the first that is
// available and succeeds. The heuristic strategy is always last, always
// available and total for non-empty input, so extraction as a whole only
// fails on empty text.
type Resolver struct {
	strategies []Strategy
	logger     logging.Logger
}

func newResolver(strategies ...Strategy) *Resolver {
	return &Resolver{
		strategies: strategies,
		logger:     logging.GetGlobalLogger(),
	}
}

// NewResolver creates a resolver over the given LLM client. A nil client
// disables the AI path entirely, leaving only the heuristics.
func NewResolver(client extractClient) *Resolver {
	if client == nil {
		return newResolver(NewHeuristicStrategy())
	}
	return newResolver(NewAIStrategy(client), NewHeuristicStrategy())
}

// Extract runs the strategies in order until one produces a result and
// returns it together with the name of the strategy that produced it.
func (r *Resolver) Extract(ctx context.Context, resumeText string) (*Result, string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, "", ErrEmptyInput
	}

	var lastErr error
	for _, strategy := range r.strategies {
		if !strategy.Available() {
			continue
		}
		result, err := strategy.Extract(ctx, resumeText)
		if err != nil {
			// A single failed call moves on to the next strategy; there
			// is no retry.
			lastErr = err
			r.logger.Warn("Extraction strategy failed, trying next", map[string]interface{}{
				"strategy": strategy.Name(),
				"error":    err.Error(),
			})
			continue
		}
		return result, strategy.Name(), nil
	}

	if lastErr != nil {
		return nil, "", fmt.Errorf("all extraction strategies failed: %w", lastErr)
	}
	return nil, "", errors.New("no extraction strategy available")
}

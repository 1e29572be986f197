package llm

import (
	"context"
	"errors"

	"resumatch-utils/internal/llm/providers"
	"resumatch-utils/pkg/models"
)

// Provider is the contract with the external generative-model service.
// The model itself is a black box: the interface only fixes the shape of
// the request and the reply.
type Provider interface {
	// ExtractResume asks the model for a structured representation of the
	// resume text. The result is unvalidated model output; callers must
	// run it through the hallucination validator before trusting it.
	ExtractResume(ctx context.Context, resumeText string) (*models.ParsedResume, error)

	// CompareResume asks the model to score resume-vs-job fit
	CompareResume(ctx context.Context, req models.CompareRequest) (*models.ComparisonReport, error)

	// IsHealthy checks if the provider is reachable and configured
	IsHealthy(ctx context.Context) error

	// Name returns the provider name
	Name() string
}

// Service-level failure modes. Each is distinct so callers can decide how
// to fall back; none of them is ever coerced into an empty result.
var (
	// ErrServiceUnavailable covers network errors and non-success
	// responses from the model service
	ErrServiceUnavailable = errors.New("llm service unavailable")

	// ErrRateLimited is returned when the local limiter or circuit
	// breaker rejects the call before it reaches the network
	ErrRateLimited = errors.New("llm request rejected by rate limiter")
)

// UnparsableReplyError reports a model reply that could not be parsed as
// JSON. Raw carries the reply text so the recovery parser can attempt a
// salvage. The concrete type lives in the providers package so providers
// can return it without importing this one.
type UnparsableReplyError = providers.UnparsableReplyError

package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch-utils/internal/llm"
	"resumatch-utils/pkg/models"
)

// fakeClient scripts the LLM manager's behavior for resolver tests
type fakeClient struct {
	healthy bool
	parsed  *models.ParsedResume
	err     error
	calls   int
}

func (f *fakeClient) ExtractResume(_ context.Context, _ string) (*models.ParsedResume, error) {
	f.calls++
	return f.parsed, f.err
}

func (f *fakeClient) IsHealthy() bool {
	return f.healthy
}

const resolverSource = `EXPERIENCE
Acme Inc.
Senior Engineer
2020 - Present
`

func TestResolverUsesAIWhenHealthy(t *testing.T) {
	client := &fakeClient{
		healthy: true,
		parsed: &models.ParsedResume{
			Experiences: []models.WorkExperienceEntry{{
				CompanyName:     models.StrPtr("Acme Inc."),
				SkillsToolsUsed: []string{},
			}},
		},
	}

	resolver := NewResolver(client)
	result, strategy, err := resolver.Extract(context.Background(), resolverSource)

	require.NoError(t, err)
	assert.Equal(t, StrategyAI, strategy)
	require.Len(t, result.Resume.Experiences, 1)
	assert.Equal(t, 1, client.calls)
}

func TestResolverFallsBackOnServiceError(t *testing.T) {
	client := &fakeClient{
		healthy: true,
		err:     llm.ErrServiceUnavailable,
	}

	resolver := NewResolver(client)
	result, strategy, err := resolver.Extract(context.Background(), resolverSource)

	require.NoError(t, err)
	assert.Equal(t, StrategyHeuristic, strategy)
	require.NotNil(t, result.Resume)
	// Exactly one AI attempt: no retries before falling back
	assert.Equal(t, 1, client.calls)
}

func TestResolverSkipsUnhealthyClient(t *testing.T) {
	client := &fakeClient{healthy: false}

	resolver := NewResolver(client)
	result, strategy, err := resolver.Extract(context.Background(), resolverSource)

	require.NoError(t, err)
	assert.Equal(t, StrategyHeuristic, strategy)
	require.NotNil(t, result.Resume)
	assert.Zero(t, client.calls)
}

func TestResolverWithoutClient(t *testing.T) {
	resolver := NewResolver(nil)
	result, strategy, err := resolver.Extract(context.Background(), resolverSource)

	require.NoError(t, err)
	assert.Equal(t, StrategyHeuristic, strategy)
	require.NotNil(t, result.Resume)
}

func TestResolverRejectsEmptyInput(t *testing.T) {
	resolver := NewResolver(nil)
	_, _, err := resolver.Extract(context.Background(), "  \n ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAIStrategySalvagesUnparsableReply(t *testing.T) {
	client := &fakeClient{
		healthy: true,
		err: &llm.UnparsableReplyError{
			Raw: `{"skills": ["Go"], "experiences": [{"company_name": "Acme Inc."}], "education": []}`,
			Err: errors.New("json: cannot unmarshal"),
		},
	}

	resolver := NewResolver(client)
	result, strategy, err := resolver.Extract(context.Background(), resolverSource)

	require.NoError(t, err)
	// The salvage happens inside the AI strategy, so the strategy name
	// stays "ai" with a warning attached.
	assert.Equal(t, StrategyAI, strategy)
	assert.NotEmpty(t, result.Warning)
	require.Len(t, result.Resume.Experiences, 1)
	assert.Equal(t, "Acme Inc.", models.StrVal(result.Resume.Experiences[0].CompanyName))
}

func TestAIStrategyValidatesAgainstSource(t *testing.T) {
	client := &fakeClient{
		healthy: true,
		parsed: &models.ParsedResume{
			Experiences: []models.WorkExperienceEntry{
				{CompanyName: models.StrPtr("Acme Inc."), SkillsToolsUsed: []string{}},
				{CompanyName: models.StrPtr("Globex Dynamics"), SkillsToolsUsed: []string{}},
			},
		},
	}

	resolver := NewResolver(client)
	result, strategy, err := resolver.Extract(context.Background(), resolverSource)

	require.NoError(t, err)
	assert.Equal(t, StrategyAI, strategy)
	require.Len(t, result.Resume.Experiences, 1)
	assert.Equal(t, "Acme Inc.", models.StrVal(result.Resume.Experiences[0].CompanyName))
}

// stubStrategy scripts an arbitrary Strategy implementation for resolver
// ordering tests
type stubStrategy struct {
	name      string
	available bool
	result    *Result
	err       error
	calls     int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Available() bool { return s.available }

func (s *stubStrategy) Extract(_ context.Context, _ string) (*Result, error) {
	s.calls++
	return s.result, s.err
}

func TestResolverTriesStrategiesInOrder(t *testing.T) {
	first := &stubStrategy{name: "first", available: true, err: errors.New("boom")}
	second := &stubStrategy{
		name:      "second",
		available: true,
		result:    &Result{Resume: &models.ParsedResume{}},
	}

	resolver := newResolver(first, second)
	result, name, err := resolver.Extract(context.Background(), "some resume text")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "second", name)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestResolverSkipsUnavailableStrategy(t *testing.T) {
	first := &stubStrategy{name: "first", available: false}
	second := &stubStrategy{
		name:      "second",
		available: true,
		result:    &Result{Resume: &models.ParsedResume{}},
	}

	resolver := newResolver(first, second)
	_, name, err := resolver.Extract(context.Background(), "some resume text")

	require.NoError(t, err)
	assert.Equal(t, "second", name)
	assert.Zero(t, first.calls)
}

func TestResolverErrorsWhenAllStrategiesFail(t *testing.T) {
	only := &stubStrategy{name: "only", available: true, err: errors.New("boom")}

	resolver := newResolver(only)
	_, _, err := resolver.Extract(context.Background(), "some resume text")

	require.Error(t, err)
	assert.Equal(t, 1, only.calls)
}

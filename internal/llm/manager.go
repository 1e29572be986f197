package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"resumatch-utils/internal/config"
	"resumatch-utils/internal/logging"
	"resumatch-utils/pkg/models"
)

// Manager manages the configured LLM provider and its lifecycle. Every
// call is guarded by the service limiter; a rejected or failed call is
// reported upward so the caller can fall back to the heuristic path.
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	limiter  *ServiceLimiter
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		limiter: NewServiceLimiter(cfg.LLM.RateLimit),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start creates the provider and probes its health. A failed probe does
// not abort startup: the service runs with the AI path disabled and the
// heuristic parsers carry all traffic.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}
	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed - heuristic fallback will handle all requests", map[string]interface{}{
			"provider": m.config.LLM.Provider,
			"error":    err.Error(),
		})
		m.healthy = false
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started", map[string]interface{}{
			"provider": m.provider.Name(),
		})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// ExtractResume delegates resume extraction to the provider. The call is
// bounded by the configured timeout; a timeout is indistinguishable from
// any other service failure for the caller.
func (m *Manager) ExtractResume(ctx context.Context, resumeText string) (*models.ParsedResume, error) {
	provider, err := m.acquire()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.LLM.Timeout)
	defer cancel()

	parsed, err := provider.ExtractResume(ctx, resumeText)
	m.record(err)
	return parsed, err
}

// CompareResume delegates resume-vs-job scoring to the provider
func (m *Manager) CompareResume(ctx context.Context, req models.CompareRequest) (*models.ComparisonReport, error) {
	provider, err := m.acquire()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.LLM.Timeout)
	defer cancel()

	report, err := provider.CompareResume(ctx, req)
	m.record(err)
	return report, err
}

// IsHealthy reports whether the manager holds a usable provider
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// ProviderName returns the name of the active provider
func (m *Manager) ProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.provider != nil {
		return m.provider.Name()
	}
	return "none"
}

// CheckHealth probes the provider and refreshes the cached health flag
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("%w: provider not started", ErrServiceUnavailable)
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = err == nil
	m.mu.Unlock()

	return err
}

// acquire returns the provider if the manager is healthy and the limiter
// admits the call.
func (m *Manager) acquire() (Provider, error) {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return nil, fmt.Errorf("%w: manager not started", ErrServiceUnavailable)
	}
	if !healthy {
		return nil, fmt.Errorf("%w: provider marked unhealthy", ErrServiceUnavailable)
	}
	if !m.limiter.Allow() {
		return nil, ErrRateLimited
	}
	return provider, nil
}

// record feeds the call outcome into the circuit breaker. An unparsable
// reply is a model-quality problem, not a service outage, so it does not
// count toward opening the circuit.
func (m *Manager) record(err error) {
	if err == nil {
		m.limiter.RecordSuccess()
		return
	}
	var unparsable *UnparsableReplyError
	if errors.As(err, &unparsable) {
		return
	}
	m.limiter.RecordFailure()
}

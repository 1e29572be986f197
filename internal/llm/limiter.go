package llm

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// CircuitState represents the state of the circuit breaker
type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

const (
	breakerMaxFailures  = 5
	breakerResetTimeout = 30 * time.Second
	limiterBurst        = 5
)

// ServiceLimiter guards calls to the upstream model service with a token
// bucket and a circuit breaker. An open circuit makes Allow fail fast so
// callers drop to the heuristic path without waiting on the network; there
// is no retry, fallback is the designed substitute.
type ServiceLimiter struct {
	limiter      *rate.Limiter
	maxFailures  int
	resetTimeout time.Duration
	failureCount int
	lastFailTime time.Time
	state        CircuitState
	mu           sync.Mutex
}

// NewServiceLimiter creates a limiter allowing requestsPerMinute calls
// with small bursts.
func NewServiceLimiter(requestsPerMinute int) *ServiceLimiter {
	rps := rate.Limit(float64(requestsPerMinute) / 60.0)
	return &ServiceLimiter{
		limiter:      rate.NewLimiter(rps, limiterBurst),
		maxFailures:  breakerMaxFailures,
		resetTimeout: breakerResetTimeout,
		state:        CircuitClosed,
	}
}

// Allow reports whether a call to the service may proceed
func (sl *ServiceLimiter) Allow() bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	switch sl.state {
	case CircuitOpen:
		if time.Since(sl.lastFailTime) > sl.resetTimeout {
			sl.state = CircuitHalfOpen
		} else {
			return false
		}
	case CircuitHalfOpen, CircuitClosed:
	}

	return sl.limiter.Allow()
}

// RecordSuccess closes a half-open circuit and clears the failure count
func (sl *ServiceLimiter) RecordSuccess() {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sl.failureCount = 0
	if sl.state == CircuitHalfOpen {
		sl.state = CircuitClosed
	}
}

// RecordFailure counts a failed call and opens the circuit once the
// threshold is reached.
func (sl *ServiceLimiter) RecordFailure() {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sl.failureCount++
	sl.lastFailTime = time.Now()
	if sl.state == CircuitHalfOpen || sl.failureCount >= sl.maxFailures {
		sl.state = CircuitOpen
	}
}

// State returns the current circuit state
func (sl *ServiceLimiter) State() CircuitState {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.state
}

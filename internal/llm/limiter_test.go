package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiterStartsClosed(t *testing.T) {
	limiter := NewServiceLimiter(60)
	assert.Equal(t, CircuitClosed, limiter.State())
	assert.True(t, limiter.Allow())
}

func TestLimiterOpensAfterMaxFailures(t *testing.T) {
	limiter := NewServiceLimiter(60)

	for i := 0; i < breakerMaxFailures-1; i++ {
		limiter.RecordFailure()
		assert.Equal(t, CircuitClosed, limiter.State())
	}

	limiter.RecordFailure()
	assert.Equal(t, CircuitOpen, limiter.State())
	// Open circuit fails fast
	assert.False(t, limiter.Allow())
}

func TestLimiterSuccessResetsFailureCount(t *testing.T) {
	limiter := NewServiceLimiter(60)

	for i := 0; i < breakerMaxFailures-1; i++ {
		limiter.RecordFailure()
	}
	limiter.RecordSuccess()

	// The count starts over; one more failure must not open the circuit
	limiter.RecordFailure()
	assert.Equal(t, CircuitClosed, limiter.State())
}

func TestLimiterHalfOpenRecovers(t *testing.T) {
	limiter := NewServiceLimiter(60)
	for i := 0; i < breakerMaxFailures; i++ {
		limiter.RecordFailure()
	}
	assert.Equal(t, CircuitOpen, limiter.State())

	// Simulate the reset window elapsing
	limiter.mu.Lock()
	limiter.lastFailTime = limiter.lastFailTime.Add(-2 * breakerResetTimeout)
	limiter.mu.Unlock()

	assert.True(t, limiter.Allow())
	assert.Equal(t, CircuitHalfOpen, limiter.State())

	limiter.RecordSuccess()
	assert.Equal(t, CircuitClosed, limiter.State())
}

func TestLimiterHalfOpenFailureReopens(t *testing.T) {
	limiter := NewServiceLimiter(60)
	for i := 0; i < breakerMaxFailures; i++ {
		limiter.RecordFailure()
	}

	limiter.mu.Lock()
	limiter.lastFailTime = limiter.lastFailTime.Add(-2 * breakerResetTimeout)
	limiter.mu.Unlock()

	assert.True(t, limiter.Allow())
	limiter.RecordFailure()
	assert.Equal(t, CircuitOpen, limiter.State())
	assert.False(t, limiter.Allow())
}

func TestLimiterTokenBucketExhausts(t *testing.T) {
	// 1 request/minute with a burst of 5: the sixth immediate call is denied
	limiter := NewServiceLimiter(1)

	allowed := 0
	for i := 0; i < 10; i++ {
		if limiter.Allow() {
			allowed++
		}
	}
	assert.Equal(t, limiterBurst, allowed)
}

package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	// Burst of 2 allows two immediate requests, the third is rejected.
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	// A different key has its own budget.
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(0, 0)

	for i := 0; i < 20; i++ {
		assert.True(t, rl.Allow("k"), "request %d within default burst", i)
	}
}

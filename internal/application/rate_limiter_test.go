package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow("sesion-1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := rl.Allow("sesion-1")
	assert.False(t, ok)
	assert.Error(t, err)

	// Otra sesión tiene su propia ventana.
	ok, err = rl.Allow("sesion-2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiterRemaining(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 2)

	assert.Equal(t, 2, rl.Remaining("sesion-1"))

	_, _ = rl.Allow("sesion-1")
	assert.Equal(t, 1, rl.Remaining("sesion-1"))

	_, _ = rl.Allow("sesion-1")
	_, _ = rl.Allow("sesion-1")
	assert.Equal(t, 0, rl.Remaining("sesion-1"))
}

func TestRateLimiterWindowExpires(t *testing.T) {
	rl := NewRateLimiter(20*time.Millisecond, 1)

	ok, _ := rl.Allow("sesion-1")
	require.True(t, ok)

	ok, _ = rl.Allow("sesion-1")
	require.False(t, ok)

	time.Sleep(30 * time.Millisecond)

	ok, _ = rl.Allow("sesion-1")
	assert.True(t, ok)
}

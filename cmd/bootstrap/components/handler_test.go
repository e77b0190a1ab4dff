//go:build unit

package components

import (
	"testing"

	"rentacar-api/internal/pkg/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestRateLimiterLifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	rl := NewRateLimiter(lc, config.RateLimitConfig{RequestsPerMinute: 60, Burst: 1, Enabled: true})
	require.NotNil(t, rl)

	lc.RequireStart()
	lc.RequireStop()

	// The shutdown hook already stopped the limiter.
	require.Panics(t, func() { rl.Stop() })
}

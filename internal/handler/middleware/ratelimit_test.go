//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rentacar-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func limiterRouter(rl *RateLimiter, userID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != nil {
		id := *userID
		r.Use(func(c *gin.Context) { c.Set(ctxUserIDKey, id) })
	}
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func limiterGet(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterKeying(t *testing.T) {
	cfg := config.RateLimitConfig{RequestsPerMinute: 60, Burst: 1, Enabled: true}

	t.Run("認証済みリクエストは利用者ごとに独立して制限される", func(t *testing.T) {
		rl := NewRateLimiter(cfg)
		defer rl.Stop()

		firstUser := uuid.New()
		firstRouter := limiterRouter(rl, &firstUser)
		require.Equal(t, http.StatusOK, limiterGet(firstRouter))
		require.Equal(t, http.StatusTooManyRequests, limiterGet(firstRouter))

		// 同じIPでも別の利用者ならバケットを共有しない
		secondUser := uuid.New()
		secondRouter := limiterRouter(rl, &secondUser)
		require.Equal(t, http.StatusOK, limiterGet(secondRouter))
	})

	t.Run("匿名リクエストはIP単位で制限される", func(t *testing.T) {
		rl := NewRateLimiter(cfg)
		defer rl.Stop()

		router := limiterRouter(rl, nil)
		require.Equal(t, http.StatusOK, limiterGet(router))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		require.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("無効化されている場合は制限しない", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 1, Enabled: false})
		defer rl.Stop()

		router := limiterRouter(rl, nil)
		for range 5 {
			require.Equal(t, http.StatusOK, limiterGet(router))
		}
	})
}

func TestRateLimiterStop(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 1, Enabled: true})
	rl.Stop()

	select {
	case <-rl.stopCh:
	default:
		t.Fatal("stop channel should be closed")
	}
}

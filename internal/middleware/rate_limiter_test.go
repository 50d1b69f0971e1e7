package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nojands/FinanzApp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Parallel()

	rl := middleware.NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatalf("first two requests should pass")
	}
	if rl.Allow("a") {
		t.Fatalf("third request inside the window should be rejected")
	}
	if !rl.Allow("b") {
		t.Fatalf("limits are tracked per key")
	}
}

func TestRateLimiterWindowExpires(t *testing.T) {
	t.Parallel()

	rl := middleware.NewRateLimiter(1, 50*time.Millisecond)
	defer rl.Stop()

	if !rl.Allow("a") {
		t.Fatalf("first request should pass")
	}
	if rl.Allow("a") {
		t.Fatalf("second request should be rejected")
	}

	time.Sleep(80 * time.Millisecond)

	if !rl.Allow("a") {
		t.Fatalf("request after the window should pass")
	}
}

func TestRateLimitByUser(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	rl := middleware.NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, c.GetHeader("X-User"))
		c.Next()
	})
	router.Use(middleware.RateLimitByUser(rl))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-User", user)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do("ana"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := do("ana"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if code := do("bia"); code != http.StatusOK {
		t.Fatalf("expected 200 for another user, got %d", code)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func rlRouter(rl *RateLimiter, pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	for _, m := range pre {
		r.Use(m)
	}
	r.Use(rl.Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	// Zero refill: exactly burst requests succeed.
	r := rlRouter(NewRateLimiter(0, 2, KeyByClientIP()))

	for i := 0; i < 2; i++ {
		if w := hit(r, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("request %d: code = %d", i, w.Code)
		}
	}
	w := hit(r, "10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("code = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Fatalf("Retry-After = %q", w.Header().Get("Retry-After"))
	}
	if !strings.Contains(w.Body.String(), "too_many_requests") {
		t.Fatalf("body: %s", w.Body.String())
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	r := rlRouter(NewRateLimiter(0, 1, KeyByClientIP()))

	if w := hit(r, "10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("first ip: %d", w.Code)
	}
	if w := hit(r, "10.0.0.1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("first ip second hit: %d", w.Code)
	}
	// A different client gets its own bucket.
	if w := hit(r, "10.0.0.2"); w.Code != http.StatusOK {
		t.Fatalf("second ip: %d", w.Code)
	}
}

func TestRateLimiter_CoercesBurst(t *testing.T) {
	r := rlRouter(NewRateLimiter(0, 0, KeyByClientIP()))
	if w := hit(r, "10.0.0.3"); w.Code != http.StatusOK {
		t.Fatalf("burst 0 must coerce to 1: %d", w.Code)
	}
	if w := hit(r, "10.0.0.3"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second hit: %d", w.Code)
	}
}

func TestRateLimiter_ReplayBypassesTokens(t *testing.T) {
	markBypass := func(c *gin.Context) {
		c.Set(ctxKeyRateBypass, true)
		c.Next()
	}
	r := rlRouter(NewRateLimiter(0, 1, KeyByClientIP()), markBypass)

	// Bypass flag set: every request passes regardless of tokens.
	for i := 0; i < 5; i++ {
		if w := hit(r, "10.0.0.4"); w.Code != http.StatusOK {
			t.Fatalf("bypassed request %d: code = %d", i, w.Code)
		}
	}
}

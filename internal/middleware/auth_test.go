package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nojands/FinanzApp/config"
	"github.com/Nojands/FinanzApp/internal/middleware"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/gin-gonic/gin"
)

func newJwt(t *testing.T, secret, issuer string) *middleware.JwtService {
	t.Helper()

	svc, err := middleware.NewJwtService(config.JWTConfig{Secret: secret, Issuer: issuer, Lifetime: time.Hour})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestNewJwtServiceRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := middleware.NewJwtService(config.JWTConfig{}); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newJwt(t, "segredo", "finanzapp")
	userID := pkg.GenerateULIDObject()

	token, err := svc.GenerateToken(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Fatalf("expected %s, got %s", userID, got)
	}
}

func TestParseTokenRejects(t *testing.T) {
	t.Parallel()

	issued, err := newJwt(t, "segredo", "finanzapp").GenerateToken(pkg.GenerateULIDObject())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		svc   *middleware.JwtService
		token string
	}{
		{"wrong secret", newJwt(t, "outro", "finanzapp"), issued},
		{"wrong issuer", newJwt(t, "segredo", "outro-app"), issued},
		{"garbage", newJwt(t, "segredo", "finanzapp"), "not.a.token"},
	}

	for _, tt := range tests {
		if _, err := tt.svc.ParseToken(tt.token); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	svc := newJwt(t, "segredo", "finanzapp")
	userID := pkg.GenerateULIDObject()
	token, err := svc.GenerateToken(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router := gin.New()
	router.Use(middleware.AuthMiddleware(svc))
	router.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.UserIDKey))
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"invalid token", "Bearer abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != tt.wantStatus {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.wantStatus, rec.Code)
		}
		if tt.wantStatus == http.StatusOK && rec.Body.String() != userID.String() {
			t.Fatalf("%s: expected user %s in context, got %q", tt.name, userID, rec.Body.String())
		}
	}
}

func TestCORSMiddleware(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CORSMiddleware("https://app.example.com, https://admin.example.com"))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example.com" {
		t.Fatalf("unexpected allowed origin %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unknown origin should not be allowed, got %q", got)
	}
}

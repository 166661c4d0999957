package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/dto"
)

type stubTokenService struct{}

func (stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	switch token {
	case "good":
		return &adapter.TokenClaims{Subject: "user-1", Email: "a@b.c", ExpiresAt: time.Now().Add(time.Hour)}, nil
	case "expired":
		return nil, domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "token has expired", domainerror.ErrExpiredToken)
	default:
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid token", domainerror.ErrInvalidToken)
	}
}

func newTestEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		subject, _ := GetSubjectFromContext(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})
	r.GET("/protected", handlers...)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	engine := newTestEngine(NewAuthMiddleware(stubTokenService{}).Authenticate())

	tests := []struct {
		name   string
		header string
		query  string
		status int
		code   domainerror.AuthErrorCode
	}{
		{name: "valid bearer token", header: "Bearer good", status: http.StatusOK},
		{name: "valid query token", query: "?access_token=good", status: http.StatusOK},
		{name: "missing header", status: http.StatusUnauthorized, code: domainerror.ErrCodeMissingToken},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized, code: domainerror.ErrCodeInvalidToken},
		{name: "empty bearer", header: "Bearer ", status: http.StatusUnauthorized, code: domainerror.ErrCodeMissingToken},
		{name: "invalid token", header: "Bearer nope", status: http.StatusUnauthorized, code: domainerror.ErrCodeInvalidToken},
		{name: "expired token", header: "Bearer expired", status: http.StatusUnauthorized, code: domainerror.ErrCodeExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
			if tt.status == http.StatusOK {
				var body map[string]string
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body["subject"] != "user-1" {
					t.Errorf("expected subject user-1, got %q", body["subject"])
				}
				return
			}
			if resp := decodeError(t, w); resp.Code != string(tt.code) {
				t.Errorf("expected code %s, got %s", tt.code, resp.Code)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	t.Run("blocks after the budget is spent", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute)
		engine := newTestEngine(limiter.Middleware())

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Fatalf("expected first two requests to pass, got %v", codes)
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Fatalf("expected 429 on third request, got %d", codes[2])
		}
	})

	t.Run("window reset allows again", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)
		current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return current }

		if !limiter.allow("k") {
			t.Fatal("first request should pass")
		}
		if limiter.allow("k") {
			t.Fatal("second request should be limited")
		}
		current = current.Add(2 * time.Minute)
		if !limiter.allow("k") {
			t.Fatal("request after the window should pass")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)
		if !limiter.allow("a") || !limiter.allow("b") {
			t.Fatal("different keys should have separate budgets")
		}
	})

	t.Run("disabled limiter passes everything", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)
		limiter.Disable()
		for i := 0; i < 5; i++ {
			if !limiter.allow("k") {
				t.Fatal("disabled limiter should allow")
			}
		}
	})

	t.Run("cleanup drops expired entries", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)
		current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return current }
		limiter.allow("k")

		current = current.Add(2 * time.Minute)
		limiter.Cleanup()
		if len(limiter.entries) != 0 {
			t.Errorf("expected entries to be cleared, got %d", len(limiter.entries))
		}
	})

	t.Run("defaults for non-positive config", func(t *testing.T) {
		limiter := NewRateLimiter(0, 0)
		if limiter.maxRequests != defaultMaxRequests || limiter.windowDuration != defaultWindowDuration {
			t.Errorf("unexpected defaults: %d %s", limiter.maxRequests, limiter.windowDuration)
		}
	})
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// stubTokenService accepts a single known access token.
type stubTokenService struct {
	validToken string
	userID     uuid.UUID
}

func (s *stubTokenService) GenerateTokenPair(context.Context, uuid.UUID, string) (*adapter.TokenPair, error) {
	return nil, nil
}

func (s *stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != s.validToken {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{
		UserID:    s.userID,
		Email:     "alice@example.com",
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

func (s *stubTokenService) Refresh(context.Context, string) (*adapter.TokenPair, error) {
	return nil, domainerror.ErrInvalidToken
}

func (s *stubTokenService) Revoke(context.Context, string) error {
	return nil
}

func newAuthenticatedRouter(t *testing.T, service adapter.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	authMiddleware := NewAuthMiddleware(service)
	router := gin.New()
	router.GET("/me", authMiddleware.Authenticate(), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID.String())
	})
	return router
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	userID := uuid.New()
	router := newAuthenticatedRouter(t, &stubTokenService{validToken: "good-token", userID: userID})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if recorder.Body.String() != userID.String() {
		t.Fatalf("body = %q, want user ID", recorder.Body.String())
	}
}

func TestAuthenticateRejections(t *testing.T) {
	router := newAuthenticatedRouter(t, &stubTokenService{validToken: "good-token", userID: uuid.New()})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"empty bearer token", "Bearer "},
		{"invalid token", "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(recorder, request)

			if recorder.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", recorder.Code)
			}
		})
	}
}

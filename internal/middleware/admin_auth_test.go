package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubValidator struct {
	valid map[string]bool
}

func (s *stubValidator) Validate(_ context.Context, token string) error {
	if s.valid[token] {
		return nil
	}
	return domain.ErrSessionNotFound
}

func setupAuthRouter(validator *stubValidator) http.Handler {
	r := ginext.New("test")
	guarded := r.Group("/", AdminAuth(validator))
	guarded.GET("/guarded", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	return r
}

func TestAdminAuth_ValidToken(t *testing.T) {
	r := setupAuthRouter(&stubValidator{valid: map[string]bool{"tok-1": true}})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuth_MissingToken(t *testing.T) {
	r := setupAuthRouter(&stubValidator{})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_InvalidToken(t *testing.T) {
	r := setupAuthRouter(&stubValidator{})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer stale")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

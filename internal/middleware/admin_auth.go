package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

type sessionValidator interface {
	Validate(ctx context.Context, token string) error
}

// AdminAuth guards back-office routes behind a live admin session
// token carried as a bearer credential.
func AdminAuth(sessions sessionValidator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing admin session token"},
			)
			return
		}

		if err := sessions.Validate(c.Request.Context(), token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "session not found or expired"},
			)
			return
		}

		c.Set("admin_token", token)

		c.Next()
	}
}

package middleware

import (
	"errors"
	"net/http"

	"swimapi/internal/handler/httperr"
	"swimapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the caller's opaque key. Its absence or mismatch is
// always 403, never 401.
const APIKeyHeader = "swimapi-api-key"

type AuthMiddleware struct {
	guard usecase.AuthGuard
}

func NewAuthMiddleware(guard usecase.AuthGuard) *AuthMiddleware {
	return &AuthMiddleware{guard: guard}
}

// Token returns the raw API key from the request header.
func Token(c *gin.Context) string {
	return c.GetHeader(APIKeyHeader)
}

// RequireAdmin resolves the key to a principal and demands the admin role
// before anything else in the handler chain runs; routes whose checks must
// happen in a different order resolve the guard themselves.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := m.guard.RequireAdmin(c.Request.Context(), Token(c)); err != nil {
			httperr.AbortWithError(c, http.StatusForbidden, err, ForbiddenMessage(err), nil)
			return
		}
		c.Next()
	}
}

// ForbiddenMessage maps the auth sentinel errors to their client-facing
// descriptions.
func ForbiddenMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrMissingAPIKey):
		return "Missing " + APIKeyHeader + " header."
	case errors.Is(err, usecase.ErrAdminRequired):
		return "Admin privileges required."
	default:
		return "Invalid API key."
	}
}

// Package middleware contains the API-specific echo middleware.
package middleware

import (
	"accounts/internal/delivery/api/response"
	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes that act on behalf of a caller.
type AuthMiddleware struct {
	tokens service.TokenAuthenticator
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireBearer rejects requests without a bearer token and stores the raw
// token for the handler. Verifying it is left to the usecase, which needs the
// resolved identity anyway.
func (m *AuthMiddleware) RequireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := m.tokens.ExtractToken(c.Request())
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header must carry a bearer token")
		}

		deliverycontext.SetBearerToken(c, token)

		return next(c)
	}
}

package middleware

import (
	"strings"

	"github.com/Hritik000/valentine-gifts-hub/config"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDKey is the echo.Context key carrying the authenticated user id.
const userIDKey = "userID"

// AuthMiddleware resolves the optional bearer identity on storefront
// requests. Checkout is open to guests, so a missing or invalid token never
// rejects the request; it just leaves the request anonymous. Ownership
// checks downstream only ever tighten access for authenticated users.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// ResolveIdentity validates the Authorization header when present and
// stores the user id on the context. Absence of a (valid) token is the
// guest flow, not an error.
func (m *AuthMiddleware) ResolveIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return next(c)
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return next(c)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return next(c)
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return next(c)
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return next(c)
		}

		c.Set(userIDKey, userID)

		return next(c)
	}
}

// UserID returns the authenticated user id from the context, or nil for
// guest requests.
func UserID(c echo.Context) *uuid.UUID {
	if id, ok := c.Get(userIDKey).(uuid.UUID); ok {
		return &id
	}

	return nil
}

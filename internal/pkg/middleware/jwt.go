package middleware

import (
	"fmt"
	"strings"

	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/kiranakart/auth-service/internal/pkg/jwt"
	"github.com/kiranakart/auth-service/internal/utils"
)

// JWTAuthMiddleware creates a middleware validating authority-issued
// session tokens
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			email, ok := (*claims)["email"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing email claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			c.Set("email", fmt.Sprintf("%v", email))
			c.Set("role", fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// RequireRole creates a middleware allowing only the given role. It must
// run after JWTAuthMiddleware.
func RequireRole(role models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Get("role") != string(role) {
				return utils.ForbiddenResponse(c, "")
			}
			return next(c)
		}
	}
}

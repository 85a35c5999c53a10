package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/domain/user"
	"loandesk-backend/pkg/token"
)

const principalKey = "principal"

// Principal is the authenticated identity handlers act on. The engine trusts
// it; credentials are not re-verified downstream.
type Principal struct {
	UserID string
	Name   string
	Email  string
	Role   user.Role
}

// Auth verifies the Bearer token and stashes the principal on the context.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required: no token provided"})
			}
			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid Authorization header"})
			}

			claims, err := token.Parse(secret, parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			role := user.Role(claims.Role)
			if !role.Valid() {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			SetPrincipal(c, Principal{
				UserID: claims.UserID,
				Name:   claims.Name,
				Email:  claims.Email,
				Role:   role,
			})
			return next(c)
		}
	}
}

// Roles rejects principals whose role is not in the allowed set. Must run
// after Auth.
func Roles(allowed ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			for _, r := range allowed {
				if p.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "you do not have permission to access this resource"})
		}
	}
}

// SetPrincipal binds a principal to the request context.
func SetPrincipal(c echo.Context, p Principal) { c.Set(principalKey, p) }

// PrincipalFrom extracts the authenticated principal set by Auth.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/serahterima/serahterima/internal/pkg/jwt"
	"github.com/serahterima/serahterima/internal/pkg/logger"
	"github.com/serahterima/serahterima/internal/pkg/models"
	"github.com/serahterima/serahterima/internal/utils"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextAccountID  = "account_id"
	ContextEmployeeID = "employee_id"
	ContextRole       = "role"
)

// Error codes surfaced by the authentication and authorization gates.
const (
	CodeAuthRequired = "AUTH_REQUIRED"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeAccessDenied = "ACCESS_DENIED"
)

func extractBearer(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Authenticate validates the bearer access token and attaches the decoded
// identity to the request context. Expired and malformed tokens get the
// same response; the difference is logged only.
func Authenticate(cfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := extractBearer(c)
			if !ok {
				return utils.ErrorCodeResponse(c, http.StatusUnauthorized, CodeAuthRequired, "Authentication required")
			}

			claims, err := jwtpkg.ValidateAccessToken(tokenString, cfg.AccessSecret)
			if err != nil {
				if errors.Is(err, jwtpkg.ErrTokenExpired) {
					logger.Debug("Rejected expired access token",
						logger.String("path", c.Path()))
				} else {
					logger.Debug("Rejected malformed access token",
						logger.String("path", c.Path()))
				}
				return utils.ErrorCodeResponse(c, http.StatusUnauthorized, CodeInvalidToken, "Invalid or expired token")
			}

			c.Set(ContextAccountID, claims.AccountID)
			c.Set(ContextEmployeeID, claims.EmployeeID)
			c.Set(ContextRole, models.Role(claims.Role))

			return next(c)
		}
	}
}

// RequireRole gates a route to the listed roles. It must run after
// Authenticate. Membership is exact set membership; no role implies
// another.
func RequireRole(allowed ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(models.Role)
			if !ok {
				return utils.ErrorCodeResponse(c, http.StatusUnauthorized, CodeAuthRequired, "Authentication required")
			}

			for _, a := range allowed {
				if role == a {
					return next(c)
				}
			}

			accountID, _ := c.Get(ContextAccountID).(uuid.UUID)
			logger.Warn("Access denied",
				logger.String("account_id", accountID.String()),
				logger.String("role", string(role)),
				logger.Any("required_roles", allowed),
				logger.String("path", c.Path()))

			return utils.ErrorCodeResponse(c, http.StatusForbidden, CodeAccessDenied, "Access denied")
		}
	}
}

// OptionalAuth attaches the decoded identity when a valid bearer token is
// present but never rejects the request.
func OptionalAuth(cfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := extractBearer(c)
			if !ok {
				return next(c)
			}

			claims, err := jwtpkg.ValidateAccessToken(tokenString, cfg.AccessSecret)
			if err != nil {
				return next(c)
			}

			c.Set(ContextAccountID, claims.AccountID)
			c.Set(ContextEmployeeID, claims.EmployeeID)
			c.Set(ContextRole, models.Role(claims.Role))

			return next(c)
		}
	}
}

// AccountIDFromContext returns the authenticated account id, if any.
func AccountIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextAccountID).(uuid.UUID)
	return id, ok
}

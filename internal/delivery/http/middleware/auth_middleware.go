// Package middleware contains the HTTP middleware chain: authentication,
// authorization guards and error translation.
package middleware

import (
	"net/http"
	"strings"

	"loomtrack/config"
	"loomtrack/internal/domain/entity"
	"loomtrack/internal/domain/repository"
	"loomtrack/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// userContextKey is where Authenticate stores the resolved user.
const userContextKey = "currentUser"

// AuthMiddleware provides middleware for session authentication and
// role/status authorization. The token proves identity only; role and
// account status are re-read from the user store on every request, so a
// role change or suspension takes effect on the next request rather than
// at token expiry.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, cfg: cfg}
}

// CurrentUser returns the user loaded by Authenticate, or nil when the
// route is not guarded.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(userContextKey).(*entity.User)
	return user
}

// Authenticate validates the session token from the cookie (or a Bearer
// header as a fallback for non-browser clients) and loads the fresh user
// record into the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing session token"})
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		user, err := m.userRepo.FindByEmail(c.Request().Context(), claims.Email)
		switch {
		case err == nil:
		case errors.Is(err, repository.ErrUserNotFound):
			// Token holders who never completed registration act as
			// unverified buyers.
			user = &entity.User{
				Email:  claims.Email,
				Role:   entity.RoleBuyer,
				Status: entity.AccountPending,
			}
		default:
			return errors.Wrap(err, "failed to load user during authentication")
		}

		c.Set(userContextKey, user)

		return next(c)
	}
}

// RequireRole checks the freshly loaded user against the allowed roles,
// case-insensitively. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	allowedRoles := entity.Roles(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: user information missing"})
			}

			if !allowedRoles.Contains(user.Role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: insufficient role"})
			}

			return next(c)
		}
	}
}

// RequireActiveAccount refuses suspended accounts. The response carries
// the stored suspension reason and admin feedback so the client can show
// them to the user.
func (m *AuthMiddleware) RequireActiveAccount(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: user information missing"})
		}

		if user.IsSuspended() {
			return c.JSON(http.StatusForbidden, map[string]string{
				"error":    "Your account is suspended",
				"reason":   user.SuspensionReason,
				"feedback": user.SuspensionNote,
			})
		}

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cfg.Auth.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}

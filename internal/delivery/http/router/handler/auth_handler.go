// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"loomtrack/config"
	"loomtrack/internal/delivery/http/response"
	"loomtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler issues and clears the session cookie.
type AuthHandler struct {
	uc     usecase.UserUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg, logger: logger}
}

// IssueToken mints a session token for the given email and sets it in an
// http-only cookie. The response carries the role re-read from the store,
// for client-side UI gating only.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var input *usecase.IssueSessionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A valid email is required")
	}

	output, err := h.uc.IssueSession(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, h.cfg.Auth.TokenDuration))

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"role":    output.Role,
	}, "Token issued")
}

// Logout clears the session cookie with an expired replacement.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -time.Hour))

	return response.Success(c, http.StatusOK, map[string]bool{"success": true}, "Logged out")
}

// sessionCookie builds the session cookie. The cross-site production
// client needs Secure + SameSite=None; local development uses Lax so the
// cookie works without TLS.
func (h *AuthHandler) sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	}

	if h.cfg.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}

	return cookie
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"loomtrack/config"
	"loomtrack/internal/domain/entity"
	"loomtrack/internal/domain/service"
	mockRepo "loomtrack/internal/mocks/repository"
	mockSvc "loomtrack/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	cfg := &config.Config{}
	cfg.Auth.CookieName = "token"

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userRepo, cfg),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

func runRequest(fx authMiddlewareFixtures, mw echo.MiddlewareFunc, decorate func(*http.Request)) (*httptest.ResponseRecorder, *entity.User) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.User
	handler := mw(func(c echo.Context) error {
		seen = CurrentUser(c)
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)

	return rec, seen
}

func TestAuthMiddleware_Authenticate_CookieToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{
		Email:  "buyer@example.com",
		Role:   entity.RoleBuyer,
		Status: entity.AccountVerified,
	}

	fx.tokenSvc.EXPECT().Verify("cookie-token").Return(&service.Claims{Email: user.Email}, nil)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)

	rec, seen := runRequest(fx, fx.middleware.Authenticate, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, user.Email, seen.Email)
}

func TestAuthMiddleware_Authenticate_BearerFallback(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{Email: "buyer@example.com", Role: entity.RoleBuyer}

	fx.tokenSvc.EXPECT().Verify("header-token").Return(&service.Claims{Email: user.Email}, nil)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)

	rec, seen := runRequest(fx, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer header-token")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, seen := runRequest(fx, fx.middleware.Authenticate, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuthMiddleware_Authenticate_BadToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().Verify("garbage").Return(nil, errors.New("invalid token"))

	rec, seen := runRequest(fx, fx.middleware.Authenticate, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuthMiddleware_RequireRole_FreshRoleWins(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(userContextKey, &entity.User{Email: "m@example.com", Role: entity.RoleManager})

	handler := fx.middleware.RequireRole(entity.RoleManager, entity.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_Mismatch(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(userContextKey, &entity.User{Email: "b@example.com", Role: entity.RoleBuyer})

	handler := fx.middleware.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireActiveAccount_Suspended(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(userContextKey, &entity.User{
		Email:            "m@example.com",
		Role:             entity.RoleManager,
		Status:           entity.AccountSuspended,
		SuspensionReason: "Policy violation",
		SuspensionNote:   "Contact support",
	})

	handler := fx.middleware.RequireActiveAccount(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Policy violation")
	assert.Contains(t, rec.Body.String(), "Contact support")
}

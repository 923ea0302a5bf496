package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loomtrack/internal/delivery/http/validator"
	"loomtrack/internal/domain/entity"
	mockUsecase "loomtrack/internal/mocks/usecase"
	"loomtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	handler *UserHandler
	uc      *mockUsecase.MockUserUsecase
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	uc := mockUsecase.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return userHandlerFixtures{
		handler: NewUserHandler(uc, logger),
		uc:      uc,
	}
}

// newModerationContext builds an echo context for the admin PATCH routes,
// which carry the target user id as a path parameter.
func newModerationContext(userID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPatch, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	return c, rec
}

func TestUserHandler_ChangeRole_Success(t *testing.T) {
	fx := createTestUserHandler(t)
	userID := uuid.New()
	updated := &entity.User{ID: userID, Email: "m@example.com", Role: entity.RoleManager}

	fx.uc.EXPECT().
		ChangeUserRole(mock.Anything, mock.MatchedBy(func(input *usecase.ChangeRoleInput) bool {
			return input.UserID == userID && input.Role == "manager"
		})).
		Return(updated, nil)

	c, rec := newModerationContext(userID, `{"role":"manager"}`)
	require.NoError(t, fx.handler.ChangeRole(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Role updated")
}

func TestUserHandler_ChangeRole_EmptyBody(t *testing.T) {
	fx := createTestUserHandler(t)

	c, rec := newModerationContext(uuid.New(), "")
	require.NoError(t, fx.handler.ChangeRole(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_ChangeRole_MissingRoleField(t *testing.T) {
	fx := createTestUserHandler(t)

	c, rec := newModerationContext(uuid.New(), `{}`)
	require.NoError(t, fx.handler.ChangeRole(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_ChangeRole_BadUserID(t *testing.T) {
	fx := createTestUserHandler(t)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"role":"manager"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fx.handler.ChangeRole(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_SetStatus_Success(t *testing.T) {
	fx := createTestUserHandler(t)
	userID := uuid.New()
	updated := &entity.User{ID: userID, Email: "b@example.com", Status: entity.AccountVerified}

	fx.uc.EXPECT().
		SetUserStatus(mock.Anything, mock.MatchedBy(func(input *usecase.SetStatusInput) bool {
			return input.UserID == userID && input.Status == "verified"
		})).
		Return(updated, nil)

	c, rec := newModerationContext(userID, `{"status":"verified"}`)
	require.NoError(t, fx.handler.SetStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status updated")
}

func TestUserHandler_SetStatus_EmptyBody(t *testing.T) {
	fx := createTestUserHandler(t)

	c, rec := newModerationContext(uuid.New(), "")
	require.NoError(t, fx.handler.SetStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"loomtrack/internal/domain/entity"
	domainerrors "loomtrack/internal/domain/errors"
	"loomtrack/internal/domain/repository"
	mockRepo "loomtrack/internal/mocks/repository"
	mockSvc "loomtrack/internal/mocks/service"
	"loomtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestUserService_RegisterUser_NewEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:       "new@example.com",
		DisplayName: "New User",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.AlreadyExists)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleBuyer, output.User.Role)
	assert.Equal(t, entity.AccountPending, output.User.Status)
}

func TestUserService_RegisterUser_ExistingEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:    uuid.New(),
		Email: "known@example.com",
		Role:  entity.RoleManager,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, existing.Email).
		Return(existing, nil)

	output, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Email:       existing.Email,
		DisplayName: "Known User",
	})

	require.NoError(t, err)
	assert.True(t, output.AlreadyExists)
	assert.Equal(t, entity.RoleManager, output.User.Role)
}

func TestUserService_IssueSession_KnownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{Email: "manager@example.com", Role: entity.RoleManager}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenService.EXPECT().Issue(user.Email).Return("signed-token", nil)

	output, err := fx.service.IssueSession(ctx, &usecase.IssueSessionInput{Email: user.Email})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, entity.RoleManager, output.Role)
}

func TestUserService_IssueSession_UnknownUserDefaultsToBuyer(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "first-login@example.com"

	fx.userRepo.EXPECT().FindByEmail(ctx, email).Return(nil, repository.ErrUserNotFound)
	fx.tokenService.EXPECT().Issue(email).Return("signed-token", nil)

	output, err := fx.service.IssueSession(ctx, &usecase.IssueSessionInput{Email: email})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, output.Role)
}

func TestUserService_GetRoleByEmail_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetRoleByEmail(ctx, "ghost@example.com")

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ChangeUserRole_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "buyer@example.com", Role: entity.RoleBuyer}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.ChangeUserRole(ctx, &usecase.ChangeRoleInput{
		UserID: user.ID,
		Role:   "manager",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, updated.Role)
}

func TestUserService_ChangeUserRole_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	updated, err := fx.service.ChangeUserRole(context.Background(), &usecase.ChangeRoleInput{
		UserID: uuid.New(),
		Role:   "superuser",
	})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SuspendUser_SetsReasonAndFeedback(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:     uuid.New(),
		Email:  "manager@example.com",
		Role:   entity.RoleManager,
		Status: entity.AccountVerified,
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	suspended, err := fx.service.SuspendUser(ctx, &usecase.SuspendUserInput{
		UserID:   user.ID,
		Reason:   "Policy violation",
		Feedback: "Repeated mislabeled listings",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.AccountSuspended, suspended.Status)
	assert.Equal(t, "Policy violation", suspended.SuspensionReason)
	assert.Equal(t, "Repeated mislabeled listings", suspended.SuspensionNote)
}

func TestUserService_SetUserStatus_LiftingSuspensionClearsReason(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:               uuid.New(),
		Email:            "manager@example.com",
		Status:           entity.AccountSuspended,
		SuspensionReason: "Policy violation",
		SuspensionNote:   "Resolved after appeal",
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.SetUserStatus(ctx, &usecase.SetStatusInput{
		UserID: user.ID,
		Status: "verified",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.AccountVerified, updated.Status)
	assert.Empty(t, updated.SuspensionReason)
	assert.Empty(t, updated.SuspensionNote)
}

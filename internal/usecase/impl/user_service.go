// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"loomtrack/internal/domain/entity"
	domainerrors "loomtrack/internal/domain/errors"
	"loomtrack/internal/domain/repository"
	"loomtrack/internal/domain/service"
	"loomtrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// RegisterUser creates the user when the email is new. Re-registering an
// existing email is not an error; clients call this on every login.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterUserOutput, error) {
	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return &usecase.RegisterUserOutput{User: existing, AlreadyExists: true}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up existing user")
	}

	newUser := &entity.User{
		Email:       input.Email,
		DisplayName: input.DisplayName,
		PhotoURL:    input.PhotoURL,
		Role:        entity.RoleBuyer,
		Status:      entity.AccountPending,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.logger.Info("User registered", slog.String("email", newUser.Email))

	return &usecase.RegisterUserOutput{User: newUser}, nil
}

// IssueSession mints a session token. The role is read from the store at
// issue time and returned for client-side UI gating only; authorization
// always re-resolves it per request.
func (srv *userService) IssueSession(ctx context.Context, input *usecase.IssueSessionInput) (*usecase.IssueSessionOutput, error) {
	role := entity.RoleBuyer
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		role = user.Role
	case errors.Is(err, repository.ErrUserNotFound):
		// First login can race registration; default to buyer.
	default:
		return nil, errors.Wrap(err, "failed to resolve role for session")
	}

	token, err := srv.tokenService.Issue(input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.IssueSessionOutput{Token: token, Role: role}, nil
}

// GetRoleByEmail returns the role and status stored for an email.
func (srv *userService) GetRoleByEmail(ctx context.Context, email string) (*usecase.RoleLookupOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to look up user role")
	}

	return &usecase.RoleLookupOutput{Role: user.Role, Status: user.Status}, nil
}

// ListUsers returns users for the admin dashboard.
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, repository.UserListFilter{
		Search: input.Search,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ChangeUserRole sets a user's role.
func (srv *userService) ChangeUserRole(ctx context.Context, input *usecase.ChangeRoleInput) (*entity.User, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + input.Role)
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for role change")
	}

	user.Role = role
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist role change")
	}

	srv.logger.Info("User role changed",
		slog.String("email", user.Email),
		slog.String("role", role.String()),
	)

	return user, nil
}

// SuspendUser suspends an account with reason and feedback. The account
// keeps authenticating but every guarded write is refused from the next
// request on.
func (srv *userService) SuspendUser(ctx context.Context, input *usecase.SuspendUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for suspension")
	}

	user.Status = entity.AccountSuspended
	user.SuspensionReason = input.Reason
	user.SuspensionNote = input.Feedback

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist suspension")
	}

	srv.logger.Warn("User suspended",
		slog.String("email", user.Email),
		slog.String("reason", input.Reason),
	)

	return user, nil
}

// SetUserStatus sets the account status. Leaving the suspended state
// clears the stored suspension reason and feedback.
func (srv *userService) SetUserStatus(ctx context.Context, input *usecase.SetStatusInput) (*entity.User, error) {
	status := entity.AccountStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status " + input.Status)
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for status change")
	}

	user.Status = status
	if status != entity.AccountSuspended {
		user.SuspensionReason = ""
		user.SuspensionNote = ""
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist status change")
	}

	srv.logger.Info("User status changed",
		slog.String("email", user.Email),
		slog.String("status", status.String()),
	)

	return user, nil
}

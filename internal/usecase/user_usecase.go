// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"loomtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
// Registration is idempotent on email.
type RegisterUserInput struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"required"`
	PhotoURL    string `json:"photoURL"`
}

// IssueSessionInput defines the data required to mint a session token.
type IssueSessionInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ListUsersInput narrows and pages the admin user listing.
type ListUsersInput struct {
	Search string
	Limit  int
	Offset int
}

// ChangeRoleInput defines an admin role change.
type ChangeRoleInput struct {
	UserID uuid.UUID
	Role   string `json:"role" validate:"required"`
}

// SuspendUserInput defines an admin suspension with reason and feedback
// shown to the suspended user.
type SuspendUserInput struct {
	UserID   uuid.UUID
	Reason   string `json:"reason" validate:"required"`
	Feedback string `json:"feedback"`
}

// SetStatusInput defines an admin account-status change (e.g. verify,
// or lift a suspension).
type SetStatusInput struct {
	UserID uuid.UUID
	Status string `json:"status" validate:"required"`
}

// --- Output DTOs ---

// RegisterUserOutput reports the stored user and whether the email was
// already registered.
type RegisterUserOutput struct {
	User          *entity.User
	AlreadyExists bool
}

// IssueSessionOutput carries the signed token and the role re-read from
// the store, which the client uses for UI gating only.
type IssueSessionOutput struct {
	Token string
	Role  entity.Role
}

// RoleLookupOutput carries the role and account status for a given email.
type RoleLookupOutput struct {
	Role   entity.Role
	Status entity.AccountStatus
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates the user when the email is new and otherwise
	// reports the existing account.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)

	// IssueSession mints a session token for the given email, resolving
	// the role from the store (buyer by default for unknown users).
	IssueSession(ctx context.Context, input *IssueSessionInput) (*IssueSessionOutput, error)

	// GetRoleByEmail returns the role and status stored for an email.
	GetRoleByEmail(ctx context.Context, email string) (*RoleLookupOutput, error)

	// ListUsers returns users for the admin dashboard.
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)

	// ChangeUserRole sets a user's role. Admin only (guarded at the route).
	ChangeUserRole(ctx context.Context, input *ChangeRoleInput) (*entity.User, error)

	// SuspendUser suspends an account with reason and feedback.
	SuspendUser(ctx context.Context, input *SuspendUserInput) (*entity.User, error)

	// SetUserStatus sets the account status; leaving the suspended state
	// clears the stored suspension reason and feedback.
	SetUserStatus(ctx context.Context, input *SetStatusInput) (*entity.User, error)
}

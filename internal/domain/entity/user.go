// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account on the platform. Email is the login
// identifier and the key other entities (products, orders) reference.
// Users are never deleted; moderation happens through AccountStatus.
type User struct {
	ID               uuid.UUID     // The unique identifier for the user.
	Email            string        // The user's email, unique across the system.
	DisplayName      string        // Name shown in the UI.
	PhotoURL         string        // Avatar URL supplied by the client at registration.
	Role             Role          // buyer, manager or admin. Defaults to buyer.
	Status           AccountStatus // pending, verified or suspended. Defaults to pending.
	SuspensionReason string        // Why an admin suspended the account. Empty unless suspended.
	SuspensionNote   string        // Feedback for the suspended user on how to get reinstated.
	CreatedAt        time.Time     // Timestamp of registration.
	UpdatedAt        time.Time     // Timestamp of the last modification.
}

// IsSuspended reports whether the account is blocked from write operations.
func (u *User) IsSuspended() bool {
	return u.Status == AccountSuspended
}

// CanManageProduct reports whether this user may mutate the given product.
// Admins may touch anything; managers only what they added themselves.
func (u *User) CanManageProduct(p *Product) bool {
	if u.Role.Matches(RoleAdmin) {
		return true
	}

	return u.Role.Matches(RoleManager) && p != nil && p.AddedBy == u.Email
}

// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleBuyer places orders against products.
	RoleBuyer Role = "buyer"
	// RoleManager owns and administers products and reviews orders against them.
	RoleManager Role = "manager"
	// RoleAdmin administers users and has full access to products and orders.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// Matches compares two roles case-insensitively. Stored roles come from
// several client revisions that disagreed on capitalization.
func (r Role) Matches(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// ParseRole normalizes a raw role string to a known Role.
// Unknown values map to RoleBuyer, the registration default.
func ParseRole(s string) Role {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return RoleBuyer
	}

	return role
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role, ignoring case.
func (rs Roles) Contains(role Role) bool {
	return slices.ContainsFunc(rs, role.Matches)
}

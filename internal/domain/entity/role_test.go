package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{raw: "buyer", want: RoleBuyer},
		{raw: "Manager", want: RoleManager},
		{raw: "ADMIN", want: RoleAdmin},
		{raw: "  admin  ", want: RoleAdmin},
		{raw: "supervisor", want: RoleBuyer},
		{raw: "", want: RoleBuyer},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.raw))
		})
	}
}

func TestRole_Matches(t *testing.T) {
	assert.True(t, RoleManager.Matches(Role("Manager")))
	assert.True(t, Role("ADMIN").Matches(RoleAdmin))
	assert.False(t, RoleBuyer.Matches(RoleManager))
}

func TestRoles_Contains(t *testing.T) {
	reviewers := Roles{RoleManager, RoleAdmin}

	assert.True(t, reviewers.Contains(RoleManager))
	assert.True(t, reviewers.Contains(Role("ADMIN")))
	assert.False(t, reviewers.Contains(RoleBuyer))
	assert.False(t, Roles{}.Contains(RoleAdmin))
}

func TestUser_CanManageProduct(t *testing.T) {
	product := &Product{AddedBy: "owner@example.com"}

	owner := &User{Email: "owner@example.com", Role: RoleManager}
	otherManager := &User{Email: "other@example.com", Role: RoleManager}
	admin := &User{Email: "admin@example.com", Role: RoleAdmin}
	buyer := &User{Email: "owner@example.com", Role: RoleBuyer}

	assert.True(t, owner.CanManageProduct(product))
	assert.False(t, otherManager.CanManageProduct(product))
	assert.True(t, admin.CanManageProduct(product))
	assert.False(t, buyer.CanManageProduct(product))
}

// Package model holds the GORM persistence models mirroring the database
// tables. Mapping to and from domain entities lives in the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	DisplayName      string    `gorm:"type:varchar(100)"`
	PhotoURL         string    `gorm:"type:text"`
	Role             string    `gorm:"type:varchar(20);not null;default:'buyer'"`
	Status           string    `gorm:"type:varchar(20);not null;default:'pending'"`
	SuspensionReason string    `gorm:"type:text"`
	SuspensionNote   string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

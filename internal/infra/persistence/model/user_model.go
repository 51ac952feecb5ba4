// Package model holds the GORM persistence models. They never leave the postgres package boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username       string    `gorm:"type:varchar(100);not null"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

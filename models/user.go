// Package models contains domain entities and business models for the agency back office
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status values shared by users and sales agents
const (
	StatusActive  = "Aktif"
	StatusPassive = "Pasif"
)

// User is a back-office operator account. Password hashes are hex-encoded
// SHA-256 digests, compared verbatim at login.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UUID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_users_uuid" json:"uuid"`
	Username     string    `gorm:"size:60;not null;uniqueIndex:idx_users_username" json:"username"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	PasswordHash string    `gorm:"size:64;not null" json:"-"` // Never serialize password hash
	Status       string    `gorm:"size:10;not null;default:'Aktif';index:idx_users_status" json:"status"`

	CreatedAt   time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
	LastLoginAt *time.Time `gorm:"index:idx_users_last_login_at" json:"last_login_at,omitempty"`

	// Relations
	Sessions  []UserSession `gorm:"foreignKey:UserID" json:"-"`
	AuditLogs []AuditLog    `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate ensures UUID is set
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == uuid.Nil {
		u.UUID = uuid.New()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// UserFilter represents filter criteria for user queries
type UserFilter struct {
	ID              *uint
	UUID            *uuid.UUID
	Username        *string
	Status          *string
	CreatedAfter    *time.Time
	CreatedBefore   *time.Time
	LastLoginAfter  *time.Time
	LastLoginBefore *time.Time
}

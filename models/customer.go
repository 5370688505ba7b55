// Package models contains domain entities and business models for the agency back office
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a policy holder. National IDs are 11-digit strings and unique
// in practice; policy entry resolves customers by national ID.
type Customer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UUID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_customers_uuid" json:"uuid"`
	FullName   string    `gorm:"size:255;not null;index:idx_customers_full_name" json:"full_name"`
	NationalID string    `gorm:"size:11;not null;uniqueIndex:idx_customers_national_id" json:"national_id"`
	Phone      *string   `gorm:"size:20" json:"phone,omitempty"`
	Email      *string   `gorm:"size:255" json:"email,omitempty"`
	Address    *string   `gorm:"size:255" json:"address,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_customers_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`

	// Relations
	Policies []Policy `gorm:"foreignKey:CustomerID" json:"policies,omitempty"`
}

// BeforeCreate ensures UUID is set
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}
	return nil
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerFilter represents filter criteria for customer queries
type CustomerFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	FullName      *string
	NationalID    *string
	Phone         *string
	Email         *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommissionRate maps a product type to its commission percent. Stored
// values are whole percents (15 means 15%); callers divide by 100.
type CommissionRate struct {
	ID   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`

	ProductType string  `gorm:"type:varchar(30);not null;uniqueIndex:uk_commission_rates_product_type" json:"product_type"`
	Percent     float64 `gorm:"type:decimal(5,2);not null" json:"percent"`

	Description string `gorm:"type:text" json:"description"`

	// Audit fields
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate ensures UUID is set
func (cr *CommissionRate) BeforeCreate(tx *gorm.DB) error {
	if cr.UUID == uuid.Nil {
		cr.UUID = uuid.New()
	}
	return nil
}

// Rate returns the fractional commission rate (percent / 100).
func (cr *CommissionRate) Rate() float64 {
	return cr.Percent / 100
}

// TableName specifies the table name for GORM
func (CommissionRate) TableName() string {
	return "commission_rates"
}

// CommissionRateFilter represents filter criteria for commission rate queries
type CommissionRateFilter struct {
	ID          *uint      `json:"id,omitempty"`
	UUID        *uuid.UUID `json:"uuid,omitempty"`
	ProductType *string    `json:"product_type,omitempty"`
	Percent     *float64   `json:"percent,omitempty"`
}

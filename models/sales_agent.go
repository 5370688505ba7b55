package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesAgent is an agency salesperson. Only agents with status "Aktif" are
// assignable to new policies.
type SalesAgent struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UUID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_sales_agents_uuid" json:"uuid"`
	FullName       string    `gorm:"size:255;not null;index:idx_sales_agents_full_name" json:"full_name"`
	Phone          *string   `gorm:"size:20" json:"phone,omitempty"`
	Email          *string   `gorm:"size:255" json:"email,omitempty"`
	CommissionRate *float64  `gorm:"type:decimal(5,4)" json:"commission_rate,omitempty"`
	Status         string    `gorm:"size:10;not null;default:'Aktif';index:idx_sales_agents_status" json:"status"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`

	// Relations
	Policies []Policy `gorm:"foreignKey:AgentID" json:"policies,omitempty"`
}

// BeforeCreate ensures UUID is set
func (a *SalesAgent) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == uuid.Nil {
		a.UUID = uuid.New()
	}
	return nil
}

func (SalesAgent) TableName() string {
	return "sales_agents"
}

func (a *SalesAgent) IsActive() bool {
	return a.Status == StatusActive
}

// SalesAgentFilter represents filter criteria for sales agent queries
type SalesAgentFilter struct {
	ID       *uint
	UUID     *uuid.UUID
	FullName *string
	Status   *string
	Email    *string
}

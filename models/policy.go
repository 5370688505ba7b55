package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment and renewal defaults
const (
	PaymentMethodCash = "Nakit"

	RenewalStatusInProgress = "Süreç devam ediyor"
)

// Known product types
const (
	ProductKasko     = "Kasko"
	ProductTrafik    = "Trafik"
	ProductKonut     = "Konut"
	ProductIsyeri    = "İşyeri"
	ProductSaglik    = "Sağlık"
	ProductHayat     = "Hayat"
	ProductDask      = "Dask"
	ProductSeyahat   = "Seyahat"
	ProductFerdiKaza = "Ferdi Kaza"
	ProductIMM       = "İMM"
	ProductNakliyat  = "Nakliyat"
	ProductDeprem    = "Deprem"
)

// Policy is an insurance contract sold through the agency. Commission is
// computed once at entry time and stored; it is never recomputed when the
// rate table changes.
type Policy struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UUID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_policies_uuid" json:"uuid"`
	CustomerID uint      `gorm:"not null;index:idx_policies_customer_id" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`

	// Optional selling agent, must be active at assignment time
	AgentID *uint       `gorm:"index:idx_policies_agent_id" json:"agent_id,omitempty"`
	Agent   *SalesAgent `gorm:"foreignKey:AgentID;references:ID" json:"agent,omitempty"`

	PolicyNumber string `gorm:"size:60;not null;index:idx_policies_policy_number" json:"policy_number"`
	ProductType  string `gorm:"size:30;not null;index:idx_policies_product_type" json:"product_type"`
	Company      string `gorm:"size:120;not null;index:idx_policies_company" json:"company"`

	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_policies_end_date" json:"end_date"`

	Premium    float64 `gorm:"type:decimal(14,2);not null;default:0" json:"premium"`
	Commission float64 `gorm:"type:decimal(14,2);not null;default:0" json:"commission"`

	PaymentMethod string     `gorm:"size:30;not null;default:'Nakit';index:idx_policies_payment_method" json:"payment_method"`
	AmountPaid    float64    `gorm:"type:decimal(14,2);not null;default:0" json:"amount_paid"`
	PaymentDate   *time.Time `gorm:"type:date" json:"payment_date,omitempty"`

	RenewalStatus  string  `gorm:"size:60;not null;default:'Süreç devam ediyor'" json:"renewal_status"`
	Description    *string `gorm:"type:text" json:"description,omitempty"`
	Plate          *string `gorm:"size:20" json:"plate,omitempty"`
	DocumentSerial *string `gorm:"size:30" json:"document_serial,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_policies_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

// BeforeCreate ensures UUID is set
func (p *Policy) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	return nil
}

func (Policy) TableName() string {
	return "policies"
}

// RemainingDebt is the uncollected part of the premium, clamped at zero so
// overpayments never show as negative debt.
func (p *Policy) RemainingDebt() float64 {
	debt := p.Premium - p.AmountPaid
	if debt < 0 {
		return 0
	}
	return debt
}

func (p *Policy) IsCash() bool {
	return p.PaymentMethod == PaymentMethodCash
}

// PolicyFilter represents filter criteria for policy queries
type PolicyFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	CustomerID    *uint
	AgentID       *uint
	PolicyNumber  *string
	ProductType   *string
	Company       *string
	PaymentMethod *string
	RenewalStatus *string
	EndDateAfter  *time.Time
	EndDateBefore *time.Time
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

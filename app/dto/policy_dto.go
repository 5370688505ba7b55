package dto

// CreatePolicyRequest represents the request payload for policy entry.
// Dates use the 2006-01-02 layout. The customer is looked up by national id
// and created on the fly when absent.
type CreatePolicyRequest struct {
	CustomerFullName   string   `json:"customer_full_name" validate:"required,min=2,max=255" example:"Ahmet Yılmaz"`
	CustomerNationalID string   `json:"customer_national_id" validate:"required,len=11,numeric" example:"12345678901"`
	CustomerPhone      *string  `json:"customer_phone,omitempty" validate:"omitempty,max=20"`
	PolicyNumber       string   `json:"policy_number" validate:"required,min=1,max=60" example:"POL-2024-0001"`
	ProductType        string   `json:"product_type" validate:"required,min=2,max=30" example:"Kasko"`
	Company            string   `json:"company" validate:"required,min=2,max=100" example:"Anadolu Sigorta"`
	StartDate          string   `json:"start_date" validate:"required,datetime=2006-01-02" example:"2024-01-15"`
	EndDate            *string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-01-15"`
	Premium            float64  `json:"premium" validate:"required,gt=0" example:"12500.50"`
	AgentID            *uint    `json:"agent_id,omitempty" example:"3"`
	PaymentMethod      *string  `json:"payment_method,omitempty" validate:"omitempty,max=30" example:"Nakit"`
	AmountPaid         *float64 `json:"amount_paid,omitempty" validate:"omitempty,gte=0" example:"5000"`
	PaymentDate        *string  `json:"payment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description        *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Plate              *string  `json:"plate,omitempty" validate:"omitempty,max=20" example:"34ABC123"`
	DocumentSerial     *string  `json:"document_serial,omitempty" validate:"omitempty,max=60"`
}

// PolicyDTO represents a policy in API responses
type PolicyDTO struct {
	ID             uint    `json:"id" example:"1"`
	UUID           string  `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	PolicyNumber   string  `json:"policy_number" example:"POL-2024-0001"`
	CustomerID     uint    `json:"customer_id" example:"1"`
	CustomerName   string  `json:"customer_name" example:"Ahmet Yılmaz"`
	AgentID        *uint   `json:"agent_id,omitempty" example:"3"`
	AgentName      *string `json:"agent_name,omitempty"`
	ProductType    string  `json:"product_type" example:"Kasko"`
	Company        string  `json:"company" example:"Anadolu Sigorta"`
	StartDate      string  `json:"start_date" example:"2024-01-15"`
	EndDate        string  `json:"end_date" example:"2025-01-15"`
	Premium        float64 `json:"premium" example:"12500.50"`
	Commission     float64 `json:"commission" example:"1875.08"`
	PaymentMethod  string  `json:"payment_method" example:"Nakit"`
	AmountPaid     float64 `json:"amount_paid" example:"5000"`
	PaymentDate    *string `json:"payment_date,omitempty"`
	RenewalStatus  string  `json:"renewal_status" example:"Süreç devam ediyor"`
	Description    *string `json:"description,omitempty"`
	Plate          *string `json:"plate,omitempty"`
	DocumentSerial *string `json:"document_serial,omitempty"`
	CreatedAt      string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// PolicyListResponse represents the policy listing payload
type PolicyListResponse struct {
	Policies []PolicyDTO `json:"policies"`
	Total    int64       `json:"total" example:"120"`
}

// CommissionQuoteResponse represents a commission preview for a premium and product type
type CommissionQuoteResponse struct {
	ProductType string  `json:"product_type" example:"Kasko"`
	Premium     float64 `json:"premium" example:"12500.50"`
	Rate        float64 `json:"rate" example:"0.15"`
	Commission  float64 `json:"commission" example:"1875.08"`
}

// CommissionRateDTO represents one row of the effective rate table
type CommissionRateDTO struct {
	ProductType string  `json:"product_type" example:"Kasko"`
	Rate        float64 `json:"rate" example:"0.15"`
}

// CommissionRateListResponse represents the rate table payload
type CommissionRateListResponse struct {
	Rates []CommissionRateDTO `json:"rates"`
}

package dto

// FinanceSummaryResponse represents collection totals over cash policies
type FinanceSummaryResponse struct {
	PolicyCount   int     `json:"policy_count" example:"37"`
	TotalPremium  float64 `json:"total_premium" example:"412000.75"`
	TotalPaid     float64 `json:"total_paid" example:"268000"`
	RemainingDebt float64 `json:"remaining_debt" example:"144000.75"`
}

// FinancePolicyDTO represents one cash policy with its outstanding balance
type FinancePolicyDTO struct {
	PolicyID      uint    `json:"policy_id" example:"1"`
	PolicyNumber  string  `json:"policy_number" example:"POL-2024-0001"`
	CustomerName  string  `json:"customer_name" example:"Ahmet Yılmaz"`
	ProductType   string  `json:"product_type" example:"Kasko"`
	Premium       float64 `json:"premium" example:"12500.50"`
	AmountPaid    float64 `json:"amount_paid" example:"5000"`
	RemainingDebt float64 `json:"remaining_debt" example:"7500.50"`
	PaymentDate   *string `json:"payment_date,omitempty"`
	CreatedAt     string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// FinancePolicyListResponse represents the cash policy listing payload
type FinancePolicyListResponse struct {
	Policies []FinancePolicyDTO     `json:"policies"`
	Summary  FinanceSummaryResponse `json:"summary"`
}

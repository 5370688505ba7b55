package dto

// RenewalItemDTO represents one policy inside the renewal window
type RenewalItemDTO struct {
	PolicyID      uint    `json:"policy_id" example:"1"`
	PolicyNumber  string  `json:"policy_number" example:"POL-2024-0001"`
	CustomerName  string  `json:"customer_name" example:"Ahmet Yılmaz"`
	ProductType   string  `json:"product_type" example:"Trafik"`
	Company       string  `json:"company" example:"Anadolu Sigorta"`
	EndDate       string  `json:"end_date" example:"2024-02-10"`
	Premium       float64 `json:"premium" example:"4200"`
	RenewalStatus string  `json:"renewal_status" example:"Süreç devam ediyor"`
	DaysRemaining int     `json:"days_remaining" example:"7"`
	Severity      string  `json:"severity" example:"due"`
}

// RenewalListResponse represents the renewal window payload
type RenewalListResponse struct {
	From          string           `json:"from" example:"2024-02-01"`
	To            string           `json:"to" example:"2024-02-24"`
	Items         []RenewalItemDTO `json:"items"`
	LapsedCount   int              `json:"lapsed_count" example:"2"`
	UpcomingCount int              `json:"upcoming_count" example:"9"`
	Total         int              `json:"total" example:"11"`
}

package dto

// AgentDTO represents a sales agent in API responses
type AgentDTO struct {
	ID             uint     `json:"id" example:"1"`
	UUID           string   `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	FullName       string   `json:"full_name" example:"Zeynep Kaya"`
	Phone          *string  `json:"phone,omitempty"`
	Email          *string  `json:"email,omitempty"`
	CommissionRate *float64 `json:"commission_rate,omitempty" example:"0.12"`
	Status         string   `json:"status" example:"Aktif"`
	CreatedAt      string   `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// AgentListResponse represents the agent listing payload
type AgentListResponse struct {
	Agents []AgentDTO `json:"agents"`
	Total  int64      `json:"total" example:"5"`
}

package dto

// DashboardSnapshotResponse represents the aggregate counters on the landing dashboard.
// Served from a periodically refreshed cache when available.
type DashboardSnapshotResponse struct {
	TotalPolicies int64   `json:"total_policies" example:"120"`
	ExpiringSoon  int64   `json:"expiring_soon" example:"8"`
	TotalPremium  float64 `json:"total_premium" example:"1412000.75"`
	RemainingDebt float64 `json:"remaining_debt" example:"144000.75"`
	GeneratedAt   string  `json:"generated_at" example:"2024-01-15T10:30:00Z"`
}

package dto

// ReportBucketDTO represents one aggregation bucket (per company or per product type)
type ReportBucketDTO struct {
	Name  string `json:"name" example:"Anadolu Sigorta"`
	Count int    `json:"count" example:"14"`
}

// ReportSummaryResponse represents portfolio-wide aggregates
type ReportSummaryResponse struct {
	TotalPolicies   int               `json:"total_policies" example:"120"`
	TotalPremium    float64           `json:"total_premium" example:"1412000.75"`
	TotalCommission float64           `json:"total_commission" example:"198000.20"`
	CustomerCount   int               `json:"customer_count" example:"93"`
	ByCompany       []ReportBucketDTO `json:"by_company"`
	ByProductType   []ReportBucketDTO `json:"by_product_type"`
}

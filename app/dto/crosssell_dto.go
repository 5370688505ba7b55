package dto

// CrossSellOpportunityDTO represents suggested complementary products for a customer
type CrossSellOpportunityDTO struct {
	CustomerID        uint     `json:"customer_id" example:"1"`
	CustomerName      string   `json:"customer_name" example:"Ahmet Yılmaz"`
	OwnedProducts     []string `json:"owned_products" example:"Kasko,Konut"`
	SuggestedProducts []string `json:"suggested_products" example:"Trafik,Ferdi Kaza,Dask,Deprem"`
}

// CrossSellListResponse represents the cross-sell listing payload
type CrossSellListResponse struct {
	Opportunities []CrossSellOpportunityDTO `json:"opportunities"`
	Total         int                       `json:"total" example:"17"`
}

package dto

// CreateCustomerRequest represents the request payload for registering a customer
type CreateCustomerRequest struct {
	FullName   string  `json:"full_name" validate:"required,min=2,max=255" example:"Ahmet Yılmaz"`
	NationalID string  `json:"national_id" validate:"required,len=11,numeric" example:"12345678901"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=20" example:"+905551234567"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=255" example:"ahmet@example.com"`
	Address    *string `json:"address,omitempty" validate:"omitempty,max=500"`
}

// CustomerDTO represents a customer in API responses
type CustomerDTO struct {
	ID         uint    `json:"id" example:"1"`
	UUID       string  `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	FullName   string  `json:"full_name" example:"Ahmet Yılmaz"`
	NationalID string  `json:"national_id" example:"12345678901"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"address,omitempty"`
	CreatedAt  string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// CustomerListResponse represents the customer listing payload
type CustomerListResponse struct {
	Customers []CustomerDTO `json:"customers"`
	Total     int64         `json:"total" example:"42"`
}

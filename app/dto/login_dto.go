// Package dto contains Data Transfer Objects for API request and response structures
package dto

import (
	"time"
)

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100" example:"budun"`
	Password string `json:"password" validate:"required,min=6,max=100" example:"SecurePass123!"`
}

// LoginResponse represents the successful login response
type LoginResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Login successful"`
	Data    struct {
		AccessToken string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
		TokenType   string    `json:"token_type" example:"Bearer"`
		ExpiresIn   int       `json:"expires_in" example:"86400"`
		User        UserInfo  `json:"user"`
		ExpiresAt   time.Time `json:"expires_at" example:"2024-01-15T16:30:00Z"`
	} `json:"data"`
}

// UserInfo represents user information returned in login response
type UserInfo struct {
	ID        uint   `json:"id" example:"1"`
	UUID      string `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Username  string `json:"username" example:"budun"`
	FullName  string `json:"full_name" example:"Budun Sigorta"`
	Status    string `json:"status" example:"Aktif"`
	CreatedAt string `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// LogoutResponse represents the response after a session is closed
type LogoutResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Logged out"`
}

// LoginErrorResponse represents error responses for login operations
type LoginErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Invalid username or password"`
	Error   struct {
		Code    string `json:"code" example:"INVALID_CREDENTIALS"`
		Details string `json:"details,omitempty" example:"The provided credentials are not valid"`
	} `json:"error"`
}

// Common error codes for login operations
const (
	ErrorInvalidCredentials = "INVALID_CREDENTIALS"
	ErrorSessionNotFound    = "SESSION_NOT_FOUND"
	ErrorSessionExpired     = "SESSION_EXPIRED"
)

func (dto *LoginResponse) SetUserInfo(userID uint, uuid, username, fullName, status string, createdAt time.Time) {
	dto.Data.User = UserInfo{
		ID:        userID,
		UUID:      uuid,
		Username:  username,
		FullName:  fullName,
		Status:    status,
		CreatedAt: createdAt.Format(time.RFC3339),
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/budun/backoffice/app/dto"
	businessflow "github.com/budun/backoffice/business_flow"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoginFlow returns a canned response without touching a database
type stubLoginFlow struct {
	response *dto.LoginResponse
	err      error
}

func (s *stubLoginFlow) Login(ctx context.Context, request *dto.LoginRequest, metadata *businessflow.ClientMetadata) (*dto.LoginResponse, error) {
	return s.response, s.err
}

func (s *stubLoginFlow) Logout(ctx context.Context, sessionToken string, metadata *businessflow.ClientMetadata) error {
	return s.err
}

func TestLoginResponseCarriesSessionExpiry(t *testing.T) {
	expiresAt := time.Now().UTC().Add(90 * time.Minute)
	flowResponse := &dto.LoginResponse{
		Success: true,
		Message: "Login successful",
	}
	flowResponse.Data.AccessToken = "session-token-123"
	flowResponse.Data.TokenType = "Bearer"
	flowResponse.Data.ExpiresIn = 5400
	flowResponse.Data.ExpiresAt = expiresAt
	flowResponse.SetUserInfo(1, "550e8400-e29b-41d4-a716-446655440000", "budun", "Budun Sigorta", "Aktif", time.Now().UTC())

	handler := NewAuthHandler(&stubLoginFlow{response: flowResponse})

	app := fiber.New()
	app.Post("/api/v1/auth/login", handler.Login)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"budun","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string  `json:"access_token"`
			TokenType   string  `json:"token_type"`
			ExpiresIn   float64 `json:"expires_in"`
			ExpiresAt   string  `json:"expires_at"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	assert.True(t, envelope.Success)
	assert.Equal(t, "session-token-123", envelope.Data.AccessToken)
	assert.Equal(t, "Bearer", envelope.Data.TokenType)

	// Expiry in the payload is the one the session was created with,
	// not a compile-time constant
	assert.Equal(t, float64(5400), envelope.Data.ExpiresIn)

	parsedExpiry, err := time.Parse(time.RFC3339, envelope.Data.ExpiresAt)
	require.NoError(t, err)
	assert.WithinDuration(t, expiresAt, parsedExpiry, time.Second)
}

func TestLoginRejectsInvalidBody(t *testing.T) {
	handler := NewAuthHandler(&stubLoginFlow{})

	app := fiber.New()
	app.Post("/api/v1/auth/login", handler.Login)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"bu","password":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

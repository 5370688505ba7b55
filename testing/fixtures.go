// Package testing provides test utilities and database setup for testing the back-office system
package testing

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/utils"
	"github.com/google/uuid"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestUser creates an active back-office user with the given credentials
func (tf *TestFixtures) CreateTestUser(username, password string) (*models.User, error) {
	user := &models.User{
		UUID:         uuid.New(),
		Username:     username,
		FullName:     "Test Operator",
		PasswordHash: utils.HashPassword(password),
		Status:       models.StatusActive,
		CreatedAt:    utils.UTCNow(),
		UpdatedAt:    utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create test user: %w", err)
	}

	return user, nil
}

// RandomNationalID returns a random 11-digit national id
func RandomNationalID() string {
	return fmt.Sprintf("%011d", mrand.Int63n(90000000000)+10000000000)
}

// CreateTestCustomer creates a test customer with a random national id
func (tf *TestFixtures) CreateTestCustomer(fullName string) (*models.Customer, error) {
	phone := "05321234567"

	customer := &models.Customer{
		UUID:       uuid.New(),
		FullName:   fullName,
		NationalID: RandomNationalID(),
		Phone:      &phone,
		CreatedAt:  utils.UTCNow(),
		UpdatedAt:  utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create test customer: %w", err)
	}

	return customer, nil
}

// CreateTestAgent creates a sales agent with the given status
func (tf *TestFixtures) CreateTestAgent(fullName, status string) (*models.SalesAgent, error) {
	agent := &models.SalesAgent{
		UUID:      uuid.New(),
		FullName:  fullName,
		Status:    status,
		CreatedAt: utils.UTCNow(),
		UpdatedAt: utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(agent).Error; err != nil {
		return nil, fmt.Errorf("failed to create test agent: %w", err)
	}

	return agent, nil
}

// CreateTestPolicy creates a one-year cash policy for the customer
func (tf *TestFixtures) CreateTestPolicy(customerID uint, policyNumber, productType string, premium float64, endDate time.Time) (*models.Policy, error) {
	policy := &models.Policy{
		UUID:          uuid.New(),
		CustomerID:    customerID,
		PolicyNumber:  policyNumber,
		ProductType:   productType,
		Company:       "Test Sigorta",
		StartDate:     endDate.AddDate(-1, 0, 0),
		EndDate:       endDate,
		Premium:       premium,
		Commission:    premium * 0.15,
		PaymentMethod: models.PaymentMethodCash,
		RenewalStatus: models.RenewalStatusInProgress,
		CreatedAt:     utils.UTCNow(),
		UpdatedAt:     utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(policy).Error; err != nil {
		return nil, fmt.Errorf("failed to create test policy: %w", err)
	}

	return policy, nil
}

// CreateTestCommissionRate inserts a rate override for a product type
func (tf *TestFixtures) CreateTestCommissionRate(productType string, percent float64) (*models.CommissionRate, error) {
	rate := &models.CommissionRate{
		UUID:        uuid.New(),
		ProductType: productType,
		Percent:     percent,
	}

	if err := tf.DB.DB.Create(rate).Error; err != nil {
		return nil, fmt.Errorf("failed to create test commission rate: %w", err)
	}

	return rate, nil
}

// GenerateSecureToken returns a URL-safe random token
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// CreateTestSession creates an active session for a user
func (tf *TestFixtures) CreateTestSession(userID uint) (*models.UserSession, error) {
	sessionToken, err := GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate secure session token: %w", err)
	}

	ipAddress := "127.0.0.1"
	userAgent := "Test User Agent"

	session := &models.UserSession{
		CorrelationID:  uuid.New(),
		UserID:         userID,
		SessionToken:   sessionToken,
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		IsActive:       utils.ToPtr(true),
		IPAddress:      &ipAddress,
		UserAgent:      &userAgent,
		CreatedAt:      utils.UTCNow(),
		LastAccessedAt: utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create test session: %w", err)
	}

	return session, nil
}

// CreateTestAuditLog creates a test audit log entry
func (tf *TestFixtures) CreateTestAuditLog(userID *uint, action string, success bool) (*models.AuditLog, error) {
	description := fmt.Sprintf("Test %s action", action)
	ipAddress := "127.0.0.1"
	userAgent := "Test User Agent"

	audit := &models.AuditLog{
		UserID:      userID,
		Action:      action,
		Description: &description,
		Success:     &success,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
	}

	if !success {
		errorMessage := "Test failed action"
		audit.ErrorMessage = &errorMessage
	}

	if err := tf.DB.DB.Create(audit).Error; err != nil {
		return nil, fmt.Errorf("failed to create test audit log: %w", err)
	}

	return audit, nil
}

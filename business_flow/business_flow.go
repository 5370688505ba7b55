// Package businessflow contains the business logic for the application.
package businessflow

import (
	"context"
	"time"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
	"github.com/budun/backoffice/utils"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds all client-related information for audit logging and session tracking
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	SessionID  string            `json:"session_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// SetSessionID sets the session ID
func (cm *ClientMetadata) SetSessionID(sessionID string) {
	cm.SessionID = sessionID
}

// logAuditEvent records a domain event with the client metadata and the request id from context
func logAuditEvent(ctx context.Context, auditRepo repository.AuditLogRepository, action, description string, success bool, metadata *ClientMetadata) error {
	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		Action:      action,
		Description: &description,
		Success:     utils.ToPtr(success),
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
	}

	requestID := ctx.Value(RequestIDKey)
	if requestID != nil {
		requestIDStr, ok := requestID.(string)
		if ok {
			audit.RequestID = &requestIDStr
		}
	}

	return auditRepo.Save(ctx, audit)
}

// ToUserInfo converts a user model to UserInfo for authentication responses
func ToUserInfo(user models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:        user.ID,
		UUID:      user.UUID.String(),
		Username:  user.Username,
		FullName:  user.FullName,
		Status:    user.Status,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// ToCustomerDTO converts a customer model to its API representation
func ToCustomerDTO(customer models.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:         customer.ID,
		UUID:       customer.UUID.String(),
		FullName:   customer.FullName,
		NationalID: customer.NationalID,
		Phone:      customer.Phone,
		Email:      customer.Email,
		Address:    customer.Address,
		CreatedAt:  customer.CreatedAt.Format(time.RFC3339),
	}
}

// ToAgentDTO converts a sales agent model to its API representation
func ToAgentDTO(agent models.SalesAgent) dto.AgentDTO {
	return dto.AgentDTO{
		ID:             agent.ID,
		UUID:           agent.UUID.String(),
		FullName:       agent.FullName,
		Phone:          agent.Phone,
		Email:          agent.Email,
		CommissionRate: agent.CommissionRate,
		Status:         agent.Status,
		CreatedAt:      agent.CreatedAt.Format(time.RFC3339),
	}
}

// ToPolicyDTO converts a policy model to its API representation.
// Customer and Agent are used when preloaded, the customer name falls back
// to "Bilinmiyor" when the association is missing.
func ToPolicyDTO(policy models.Policy) dto.PolicyDTO {
	customerName := "Bilinmiyor"
	if policy.Customer.ID != 0 {
		customerName = policy.Customer.FullName
	}

	var agentName *string
	if policy.Agent != nil {
		agentName = &policy.Agent.FullName
	}

	var paymentDate *string
	if policy.PaymentDate != nil {
		pd := policy.PaymentDate.Format("2006-01-02")
		paymentDate = &pd
	}

	return dto.PolicyDTO{
		ID:             policy.ID,
		UUID:           policy.UUID.String(),
		PolicyNumber:   policy.PolicyNumber,
		CustomerID:     policy.CustomerID,
		CustomerName:   customerName,
		AgentID:        policy.AgentID,
		AgentName:      agentName,
		ProductType:    policy.ProductType,
		Company:        policy.Company,
		StartDate:      policy.StartDate.Format("2006-01-02"),
		EndDate:        policy.EndDate.Format("2006-01-02"),
		Premium:        policy.Premium,
		Commission:     policy.Commission,
		PaymentMethod:  policy.PaymentMethod,
		AmountPaid:     policy.AmountPaid,
		PaymentDate:    paymentDate,
		RenewalStatus:  policy.RenewalStatus,
		Description:    policy.Description,
		Plate:          policy.Plate,
		DocumentSerial: policy.DocumentSerial,
		CreatedAt:      policy.CreatedAt.Format(time.RFC3339),
	}
}

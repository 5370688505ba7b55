// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/budun/backoffice/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// UserRepository defines operations for back-office users
type UserRepository interface {
	Repository[models.User, models.UserFilter]
	ByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error
}

// UserSessionRepository defines operations for user sessions
type UserSessionRepository interface {
	Repository[models.UserSession, models.UserSessionFilter]
	BySessionToken(ctx context.Context, token string) (*models.UserSession, error)
	Deactivate(ctx context.Context, token string) error
	DeactivateAllForUser(ctx context.Context, userID uint) error
}

// AuditLogRepository defines operations for audit log records
type AuditLogRepository interface {
	Repository[models.AuditLog, models.AuditLogFilter]
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.AuditLog, error)
}

// CustomerRepository defines operations for customers
type CustomerRepository interface {
	Repository[models.Customer, models.CustomerFilter]
	ByNationalID(ctx context.Context, nationalID string) (*models.Customer, error)
	ListOrderedByName(ctx context.Context, limit, offset int) ([]*models.Customer, error)
}

// SalesAgentRepository defines operations for sales agents
type SalesAgentRepository interface {
	Repository[models.SalesAgent, models.SalesAgentFilter]
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.SalesAgent, error)
}

// PolicyRepository defines operations for policies
type PolicyRepository interface {
	Repository[models.Policy, models.PolicyFilter]
	ListRecent(ctx context.Context, limit, offset int) ([]*models.Policy, error)
	ListByPaymentMethod(ctx context.Context, method string) ([]*models.Policy, error)
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.Policy, error)
	CountExpiringBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// CommissionRateRepository defines operations for the commission rate table
type CommissionRateRepository interface {
	Repository[models.CommissionRate, models.CommissionRateFilter]
	ListAll(ctx context.Context) ([]*models.CommissionRate, error)
	ByProductType(ctx context.Context, productType string) (*models.CommissionRate, error)
}

package businessflow

import (
	"context"
	"fmt"
	"regexp"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
	"gorm.io/gorm"
)

var nationalIDPattern = regexp.MustCompile(`^\d{11}$`)

// CustomerFlow handles customer registration and listing
type CustomerFlow interface {
	ListCustomers(ctx context.Context, limit, offset int) (*dto.CustomerListResponse, error)
	CreateCustomer(ctx context.Context, request *dto.CreateCustomerRequest, metadata *ClientMetadata) (*dto.CustomerDTO, error)
}

// CustomerFlowImpl implements the customer business flow
type CustomerFlowImpl struct {
	customerRepo repository.CustomerRepository
	auditRepo    repository.AuditLogRepository
	db           *gorm.DB
}

// NewCustomerFlow creates a new customer flow instance
func NewCustomerFlow(
	customerRepo repository.CustomerRepository,
	auditRepo repository.AuditLogRepository,
	db *gorm.DB,
) CustomerFlow {
	return &CustomerFlowImpl{
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
		db:           db,
	}
}

// ListCustomers returns customers ordered alphabetically by full name
func (cf *CustomerFlowImpl) ListCustomers(ctx context.Context, limit, offset int) (*dto.CustomerListResponse, error) {
	customers, err := cf.customerRepo.ListOrderedByName(ctx, limit, offset)
	if err != nil {
		return nil, NewBusinessError("CUSTOMER_LIST_FAILED", "Failed to list customers", err)
	}

	total, err := cf.customerRepo.Count(ctx, models.CustomerFilter{})
	if err != nil {
		return nil, NewBusinessError("CUSTOMER_LIST_FAILED", "Failed to count customers", err)
	}

	response := &dto.CustomerListResponse{
		Customers: make([]dto.CustomerDTO, 0, len(customers)),
		Total:     total,
	}
	for _, customer := range customers {
		response.Customers = append(response.Customers, ToCustomerDTO(*customer))
	}

	return response, nil
}

// CreateCustomer registers a new customer after validating the national id
func (cf *CustomerFlowImpl) CreateCustomer(ctx context.Context, request *dto.CreateCustomerRequest, metadata *ClientMetadata) (*dto.CustomerDTO, error) {
	if !nationalIDPattern.MatchString(request.NationalID) {
		return nil, NewBusinessError("CUSTOMER_VALIDATION_FAILED", "Customer validation failed", ErrNationalIDInvalid)
	}

	var created *models.Customer

	err := repository.WithTransaction(ctx, cf.db, func(ctx context.Context) error {
		existing, err := cf.customerRepo.ByNationalID(ctx, request.NationalID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrNationalIDAlreadyExists
		}

		created = &models.Customer{
			FullName:   request.FullName,
			NationalID: request.NationalID,
			Phone:      request.Phone,
			Email:      request.Email,
			Address:    request.Address,
		}
		return cf.customerRepo.Save(ctx, created)
	})
	if err != nil {
		return nil, NewBusinessError("CUSTOMER_CREATE_FAILED", "Failed to create customer", err)
	}

	description := fmt.Sprintf("Customer registered: %d", created.ID)
	_ = logAuditEvent(ctx, cf.auditRepo, models.AuditActionCustomerAdded, description, true, metadata)

	result := ToCustomerDTO(*created)
	return &result, nil
}

package businessflow

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/app/services"
	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
	"gorm.io/gorm"
)

// PolicyFlow handles policy entry, listing and commission preview
type PolicyFlow interface {
	CreatePolicy(ctx context.Context, request *dto.CreatePolicyRequest, metadata *ClientMetadata) (*dto.PolicyDTO, error)
	ListPolicies(ctx context.Context, limit, offset int) (*dto.PolicyListResponse, error)
	QuoteCommission(ctx context.Context, productType string, premium float64) (*dto.CommissionQuoteResponse, error)
	ListCommissionRates(ctx context.Context) (*dto.CommissionRateListResponse, error)
}

// PolicyFlowImpl implements the policy business flow
type PolicyFlowImpl struct {
	policyRepo    repository.PolicyRepository
	customerRepo  repository.CustomerRepository
	agentRepo     repository.SalesAgentRepository
	auditRepo     repository.AuditLogRepository
	commissionSvc services.CommissionService
	db            *gorm.DB
}

// NewPolicyFlow creates a new policy flow instance
func NewPolicyFlow(
	policyRepo repository.PolicyRepository,
	customerRepo repository.CustomerRepository,
	agentRepo repository.SalesAgentRepository,
	auditRepo repository.AuditLogRepository,
	commissionSvc services.CommissionService,
	db *gorm.DB,
) PolicyFlow {
	return &PolicyFlowImpl{
		policyRepo:    policyRepo,
		customerRepo:  customerRepo,
		agentRepo:     agentRepo,
		auditRepo:     auditRepo,
		commissionSvc: commissionSvc,
		db:            db,
	}
}

// CreatePolicy registers a policy. The customer is looked up by national id
// and created when absent. The commission is fixed at entry time and never
// recomputed retroactively.
func (pf *PolicyFlowImpl) CreatePolicy(ctx context.Context, request *dto.CreatePolicyRequest, metadata *ClientMetadata) (*dto.PolicyDTO, error) {
	if err := pf.validateCreatePolicyRequest(request); err != nil {
		return nil, NewBusinessError("POLICY_VALIDATION_FAILED", "Policy validation failed", err)
	}

	startDate, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		return nil, NewBusinessError("POLICY_VALIDATION_FAILED", "Policy validation failed", err)
	}

	endDate := startDate.AddDate(1, 0, 0)
	if request.EndDate != nil {
		endDate, err = time.Parse("2006-01-02", *request.EndDate)
		if err != nil {
			return nil, NewBusinessError("POLICY_VALIDATION_FAILED", "Policy validation failed", err)
		}
	}
	if endDate.Before(startDate) {
		return nil, NewBusinessError("POLICY_VALIDATION_FAILED", "Policy validation failed", ErrEndDateBeforeStartDate)
	}

	var paymentDate *time.Time
	if request.PaymentDate != nil {
		pd, err := time.Parse("2006-01-02", *request.PaymentDate)
		if err != nil {
			return nil, NewBusinessError("POLICY_VALIDATION_FAILED", "Policy validation failed", err)
		}
		paymentDate = &pd
	}

	commission, err := pf.commissionSvc.Calculate(ctx, request.ProductType, request.Premium)
	if err != nil {
		return nil, NewBusinessError("POLICY_CREATE_FAILED", "Failed to compute commission", err)
	}

	var created *models.Policy
	var customer *models.Customer

	err = repository.WithTransaction(ctx, pf.db, func(ctx context.Context) error {
		var err error
		customer, err = pf.lookupOrCreateCustomer(ctx, request)
		if err != nil {
			return err
		}

		if request.AgentID != nil {
			agent, err := pf.agentRepo.ByID(ctx, *request.AgentID)
			if err != nil {
				return err
			}
			if agent == nil {
				return ErrAgentNotFound
			}
			if !agent.IsActive() {
				return ErrAgentInactive
			}
		}

		exists, err := pf.policyRepo.Exists(ctx, models.PolicyFilter{PolicyNumber: &request.PolicyNumber})
		if err != nil {
			return err
		}
		if exists {
			return ErrPolicyNumberAlreadyExists
		}

		paymentMethod := models.PaymentMethodCash
		if request.PaymentMethod != nil && *request.PaymentMethod != "" {
			paymentMethod = *request.PaymentMethod
		}

		amountPaid := 0.0
		if request.AmountPaid != nil {
			amountPaid = *request.AmountPaid
		}

		created = &models.Policy{
			CustomerID:     customer.ID,
			AgentID:        request.AgentID,
			PolicyNumber:   request.PolicyNumber,
			ProductType:    request.ProductType,
			Company:        request.Company,
			StartDate:      startDate,
			EndDate:        endDate,
			Premium:        request.Premium,
			Commission:     commission,
			PaymentMethod:  paymentMethod,
			AmountPaid:     amountPaid,
			PaymentDate:    paymentDate,
			RenewalStatus:  models.RenewalStatusInProgress,
			Description:    request.Description,
			Plate:          request.Plate,
			DocumentSerial: request.DocumentSerial,
		}
		return pf.policyRepo.Save(ctx, created)
	})
	if err != nil {
		return nil, NewBusinessError("POLICY_CREATE_FAILED", "Failed to create policy", err)
	}

	description := fmt.Sprintf("Policy created: %s for customer %d", created.PolicyNumber, customer.ID)
	_ = logAuditEvent(ctx, pf.auditRepo, models.AuditActionPolicyCreated, description, true, metadata)

	created.Customer = *customer
	result := ToPolicyDTO(*created)
	return &result, nil
}

// ListPolicies returns policies ordered by registration date, newest first
func (pf *PolicyFlowImpl) ListPolicies(ctx context.Context, limit, offset int) (*dto.PolicyListResponse, error) {
	policies, err := pf.policyRepo.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, NewBusinessError("POLICY_LIST_FAILED", "Failed to list policies", err)
	}

	total, err := pf.policyRepo.Count(ctx, models.PolicyFilter{})
	if err != nil {
		return nil, NewBusinessError("POLICY_LIST_FAILED", "Failed to count policies", err)
	}

	response := &dto.PolicyListResponse{
		Policies: make([]dto.PolicyDTO, 0, len(policies)),
		Total:    total,
	}
	for _, policy := range policies {
		response.Policies = append(response.Policies, ToPolicyDTO(*policy))
	}

	return response, nil
}

// QuoteCommission previews the commission for a premium without persisting anything
func (pf *PolicyFlowImpl) QuoteCommission(ctx context.Context, productType string, premium float64) (*dto.CommissionQuoteResponse, error) {
	if premium <= 0 {
		return nil, NewBusinessError("QUOTE_VALIDATION_FAILED", "Quote validation failed", ErrPremiumInvalid)
	}

	rate, err := pf.commissionSvc.RateFor(ctx, productType)
	if err != nil {
		return nil, NewBusinessError("QUOTE_FAILED", "Failed to compute quote", err)
	}

	return &dto.CommissionQuoteResponse{
		ProductType: productType,
		Premium:     premium,
		Rate:        rate,
		Commission:  services.Round2(premium * rate),
	}, nil
}

// ListCommissionRates returns the effective rate table sorted by product type
func (pf *PolicyFlowImpl) ListCommissionRates(ctx context.Context) (*dto.CommissionRateListResponse, error) {
	rates, err := pf.commissionSvc.ListRates(ctx)
	if err != nil {
		return nil, NewBusinessError("RATE_LIST_FAILED", "Failed to list commission rates", err)
	}

	response := &dto.CommissionRateListResponse{
		Rates: make([]dto.CommissionRateDTO, 0, len(rates)),
	}
	for _, productType := range sortedKeys(rates) {
		response.Rates = append(response.Rates, dto.CommissionRateDTO{
			ProductType: productType,
			Rate:        rates[productType],
		})
	}

	return response, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// lookupOrCreateCustomer resolves the policy holder by national id, registering them on first contact
func (pf *PolicyFlowImpl) lookupOrCreateCustomer(ctx context.Context, request *dto.CreatePolicyRequest) (*models.Customer, error) {
	customer, err := pf.customerRepo.ByNationalID(ctx, request.CustomerNationalID)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}

	customer = &models.Customer{
		FullName:   request.CustomerFullName,
		NationalID: request.CustomerNationalID,
		Phone:      request.CustomerPhone,
	}
	if err := pf.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (pf *PolicyFlowImpl) validateCreatePolicyRequest(request *dto.CreatePolicyRequest) error {
	if !nationalIDPattern.MatchString(request.CustomerNationalID) {
		return ErrNationalIDInvalid
	}
	if request.Premium <= 0 {
		return ErrPremiumInvalid
	}
	return nil
}

package businessflow

import (
	"context"
	"time"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/app/services"
	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
)

// FinanceFlow handles cash collection tracking
type FinanceFlow interface {
	Summary(ctx context.Context) (*dto.FinanceSummaryResponse, error)
	ListCashPolicies(ctx context.Context) (*dto.FinancePolicyListResponse, error)
}

// FinanceFlowImpl implements the finance business flow
type FinanceFlowImpl struct {
	policyRepo repository.PolicyRepository
}

// NewFinanceFlow creates a new finance flow instance
func NewFinanceFlow(policyRepo repository.PolicyRepository) FinanceFlow {
	return &FinanceFlowImpl{
		policyRepo: policyRepo,
	}
}

// Summary returns collection totals over cash policies
func (ff *FinanceFlowImpl) Summary(ctx context.Context) (*dto.FinanceSummaryResponse, error) {
	policies, err := ff.policyRepo.ListByPaymentMethod(ctx, models.PaymentMethodCash)
	if err != nil {
		return nil, NewBusinessError("FINANCE_SUMMARY_FAILED", "Failed to compute finance summary", err)
	}

	summary := SummarizeCashPolicies(policies)
	return &summary, nil
}

// ListCashPolicies returns cash policies with per-row outstanding balances
func (ff *FinanceFlowImpl) ListCashPolicies(ctx context.Context) (*dto.FinancePolicyListResponse, error) {
	policies, err := ff.policyRepo.ListByPaymentMethod(ctx, models.PaymentMethodCash)
	if err != nil {
		return nil, NewBusinessError("FINANCE_LIST_FAILED", "Failed to list cash policies", err)
	}

	response := &dto.FinancePolicyListResponse{
		Policies: make([]dto.FinancePolicyDTO, 0, len(policies)),
		Summary:  SummarizeCashPolicies(policies),
	}

	for _, policy := range policies {
		customerName := "Bilinmiyor"
		if policy.Customer.ID != 0 {
			customerName = policy.Customer.FullName
		}

		var paymentDate *string
		if policy.PaymentDate != nil {
			pd := policy.PaymentDate.Format("2006-01-02")
			paymentDate = &pd
		}

		response.Policies = append(response.Policies, dto.FinancePolicyDTO{
			PolicyID:      policy.ID,
			PolicyNumber:  policy.PolicyNumber,
			CustomerName:  customerName,
			ProductType:   policy.ProductType,
			Premium:       policy.Premium,
			AmountPaid:    policy.AmountPaid,
			RemainingDebt: policy.RemainingDebt(),
			PaymentDate:   paymentDate,
			CreatedAt:     policy.CreatedAt.Format(time.RFC3339),
		})
	}

	return response, nil
}

// SummarizeCashPolicies computes premium, collected and outstanding totals.
// Overpaid policies never produce negative debt.
func SummarizeCashPolicies(policies []*models.Policy) dto.FinanceSummaryResponse {
	summary := dto.FinanceSummaryResponse{
		PolicyCount: len(policies),
	}
	for _, policy := range policies {
		summary.TotalPremium += policy.Premium
		summary.TotalPaid += policy.AmountPaid
		summary.RemainingDebt += policy.RemainingDebt()
	}
	summary.TotalPremium = services.Round2(summary.TotalPremium)
	summary.TotalPaid = services.Round2(summary.TotalPaid)
	summary.RemainingDebt = services.Round2(summary.RemainingDebt)
	return summary
}

package businessflow

import (
	"context"
	"sort"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
)

// complementaryProducts maps an owned product type to its suggested companions
var complementaryProducts = map[string][]string{
	models.ProductKasko:  {models.ProductTrafik, models.ProductFerdiKaza},
	models.ProductKonut:  {models.ProductDask, models.ProductDeprem},
	models.ProductSaglik: {models.ProductHayat, models.ProductFerdiKaza},
}

// CrossSellFlow surfaces complementary product suggestions per customer
type CrossSellFlow interface {
	ListOpportunities(ctx context.Context) (*dto.CrossSellListResponse, error)
}

// CrossSellFlowImpl implements the cross-sell business flow
type CrossSellFlowImpl struct {
	customerRepo repository.CustomerRepository
	policyRepo   repository.PolicyRepository
}

// NewCrossSellFlow creates a new cross-sell flow instance
func NewCrossSellFlow(customerRepo repository.CustomerRepository, policyRepo repository.PolicyRepository) CrossSellFlow {
	return &CrossSellFlowImpl{
		customerRepo: customerRepo,
		policyRepo:   policyRepo,
	}
}

// ListOpportunities computes suggestions from live portfolio data,
// omitting customers with nothing to suggest
func (cf *CrossSellFlowImpl) ListOpportunities(ctx context.Context) (*dto.CrossSellListResponse, error) {
	customers, err := cf.customerRepo.ListOrderedByName(ctx, 0, 0)
	if err != nil {
		return nil, NewBusinessError("CROSS_SELL_FAILED", "Failed to list cross-sell opportunities", err)
	}

	policies, err := cf.policyRepo.ByFilter(ctx, models.PolicyFilter{}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("CROSS_SELL_FAILED", "Failed to list cross-sell opportunities", err)
	}

	ownedByCustomer := make(map[uint]map[string]bool)
	for _, policy := range policies {
		if ownedByCustomer[policy.CustomerID] == nil {
			ownedByCustomer[policy.CustomerID] = make(map[string]bool)
		}
		ownedByCustomer[policy.CustomerID][policy.ProductType] = true
	}

	response := &dto.CrossSellListResponse{
		Opportunities: make([]dto.CrossSellOpportunityDTO, 0),
	}

	for _, customer := range customers {
		owned := ownedByCustomer[customer.ID]
		if len(owned) == 0 {
			continue
		}

		suggested := SuggestProducts(owned)
		if len(suggested) == 0 {
			continue
		}

		ownedList := make([]string, 0, len(owned))
		for productType := range owned {
			ownedList = append(ownedList, productType)
		}
		sort.Strings(ownedList)

		response.Opportunities = append(response.Opportunities, dto.CrossSellOpportunityDTO{
			CustomerID:        customer.ID,
			CustomerName:      customer.FullName,
			OwnedProducts:     ownedList,
			SuggestedProducts: suggested,
		})
	}
	response.Total = len(response.Opportunities)

	return response, nil
}

// SuggestProducts returns the complements of the owned set minus products already held
func SuggestProducts(owned map[string]bool) []string {
	seen := make(map[string]bool)
	suggested := make([]string, 0)

	for productType := range owned {
		for _, complement := range complementaryProducts[productType] {
			if owned[complement] || seen[complement] {
				continue
			}
			seen[complement] = true
			suggested = append(suggested, complement)
		}
	}
	sort.Strings(suggested)
	return suggested
}

package services

import (
	"context"
	"log"
	"math"
	"sync"

	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
	"github.com/budun/backoffice/utils"
)

// CommissionService resolves commission rates per product type and computes commissions
type CommissionService interface {
	RateFor(ctx context.Context, productType string) (float64, error)
	Calculate(ctx context.Context, productType string, premium float64) (float64, error)
	ListRates(ctx context.Context) (map[string]float64, error)
	ClearCache()
}

// defaultRates is the built-in rate table used when no database row overrides a product type
var defaultRates = map[string]float64{
	models.ProductKasko:     0.15,
	models.ProductTrafik:    0.10,
	models.ProductKonut:     0.15,
	models.ProductIsyeri:    0.15,
	models.ProductSaglik:    0.18,
	models.ProductHayat:     0.22,
	models.ProductDask:      0.10,
	models.ProductSeyahat:   0.17,
	models.ProductFerdiKaza: 0.16,
	models.ProductIMM:       0.15,
	models.ProductNakliyat:  0.15,
}

// CommissionServiceImpl implements CommissionService with a fetch-once rate cache
type CommissionServiceImpl struct {
	rateRepo repository.CommissionRateRepository
	mu       sync.RWMutex
	rates    map[string]float64
	loaded   bool
}

// NewCommissionService creates a new commission service
func NewCommissionService(rateRepo repository.CommissionRateRepository) CommissionService {
	return &CommissionServiceImpl{
		rateRepo: rateRepo,
	}
}

// RateFor returns the commission rate for a product type.
// Database rows take precedence over built-in defaults, unknown types fall back to the generic default.
func (s *CommissionServiceImpl) RateFor(ctx context.Context, productType string) (float64, error) {
	rates := s.loadRates(ctx)

	if rate, ok := rates[productType]; ok {
		return rate, nil
	}
	if rate, ok := defaultRates[productType]; ok {
		return rate, nil
	}
	return utils.DefaultCommissionRate, nil
}

// Calculate computes the commission for a premium, rounded to two decimals
func (s *CommissionServiceImpl) Calculate(ctx context.Context, productType string, premium float64) (float64, error) {
	rate, err := s.RateFor(ctx, productType)
	if err != nil {
		return 0, err
	}
	return Round2(premium * rate), nil
}

// ListRates returns the full effective rate table, defaults merged with database overrides
func (s *CommissionServiceImpl) ListRates(ctx context.Context) (map[string]float64, error) {
	overrides := s.loadRates(ctx)

	merged := make(map[string]float64, len(defaultRates)+len(overrides))
	for productType, rate := range defaultRates {
		merged[productType] = rate
	}
	for productType, rate := range overrides {
		merged[productType] = rate
	}
	return merged, nil
}

// ClearCache drops the cached rate table so the next call re-reads the database
func (s *CommissionServiceImpl) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates = nil
	s.loaded = false
}

// loadRates fetches all configured rates once and caches them.
// A failed fetch is logged and degrades to the built-in defaults; the cache
// stays unloaded so a later call retries the database.
func (s *CommissionServiceImpl) loadRates(ctx context.Context) map[string]float64 {
	s.mu.RLock()
	if s.loaded {
		rates := s.rates
		s.mu.RUnlock()
		return rates
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.rates
	}

	configured, err := s.rateRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Commission rate fetch failed, using default rates: %v", err)
		return nil
	}

	rates := make(map[string]float64, len(configured))
	for _, cr := range configured {
		rates[cr.ProductType] = cr.Rate()
	}

	s.rates = rates
	s.loaded = true
	return rates
}

// Round2 rounds a monetary amount to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

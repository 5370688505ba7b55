package services

import (
	"context"
	"errors"
	"testing"

	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
	"github.com/budun/backoffice/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRateRepo returns a fixed rate list without touching a database
type stubRateRepo struct {
	repository.CommissionRateRepository
	rates []*models.CommissionRate
	err   error
	calls int
}

func (s *stubRateRepo) ListAll(ctx context.Context) ([]*models.CommissionRate, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rates, nil
}

func TestRateForDefaults(t *testing.T) {
	svc := NewCommissionService(&stubRateRepo{})

	tests := []struct {
		productType string
		expected    float64
	}{
		{models.ProductKasko, 0.15},
		{models.ProductTrafik, 0.10},
		{models.ProductKonut, 0.15},
		{models.ProductIsyeri, 0.15},
		{models.ProductSaglik, 0.18},
		{models.ProductHayat, 0.22},
		{models.ProductDask, 0.10},
		{models.ProductSeyahat, 0.17},
		{models.ProductFerdiKaza, 0.16},
		{models.ProductIMM, 0.15},
		{models.ProductNakliyat, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.productType, func(t *testing.T) {
			rate, err := svc.RateFor(context.Background(), tt.productType)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rate)
		})
	}
}

func TestRateForUnknownProductFallsBack(t *testing.T) {
	svc := NewCommissionService(&stubRateRepo{})

	rate, err := svc.RateFor(context.Background(), "Uzay Sigortası")
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultCommissionRate, rate)
}

func TestRateForDatabaseOverride(t *testing.T) {
	repo := &stubRateRepo{
		rates: []*models.CommissionRate{
			{ProductType: models.ProductKasko, Percent: 20},
		},
	}
	svc := NewCommissionService(repo)

	rate, err := svc.RateFor(context.Background(), models.ProductKasko)
	require.NoError(t, err)
	assert.Equal(t, 0.20, rate)

	// Other products keep their defaults
	rate, err = svc.RateFor(context.Background(), models.ProductHayat)
	require.NoError(t, err)
	assert.Equal(t, 0.22, rate)
}

func TestRatesFetchedOnce(t *testing.T) {
	repo := &stubRateRepo{}
	svc := NewCommissionService(repo)

	for i := 0; i < 5; i++ {
		_, err := svc.RateFor(context.Background(), models.ProductKasko)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, repo.calls)

	svc.ClearCache()
	_, err := svc.RateFor(context.Background(), models.ProductKasko)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestRateFetchFailureFallsBackToDefaults(t *testing.T) {
	repo := &stubRateRepo{err: errors.New("connection refused")}
	svc := NewCommissionService(repo)

	rate, err := svc.RateFor(context.Background(), models.ProductKasko)
	require.NoError(t, err)
	assert.Equal(t, 0.15, rate)

	commission, err := svc.Calculate(context.Background(), models.ProductKasko, 10000)
	require.NoError(t, err)
	assert.InDelta(t, 1500.00, commission, 0.001)

	rates, err := svc.ListRates(context.Background())
	require.NoError(t, err)
	assert.Len(t, rates, 11)

	// Failures are not cached; once the database recovers the overrides apply
	repo.err = nil
	repo.rates = []*models.CommissionRate{
		{ProductType: models.ProductKasko, Percent: 20},
	}
	rate, err = svc.RateFor(context.Background(), models.ProductKasko)
	require.NoError(t, err)
	assert.Equal(t, 0.20, rate)
	assert.Equal(t, 4, repo.calls)
}

func TestCalculate(t *testing.T) {
	svc := NewCommissionService(&stubRateRepo{})

	tests := []struct {
		name        string
		productType string
		premium     float64
		expected    float64
	}{
		{"kasko", models.ProductKasko, 10000, 1500},
		{"trafik", models.ProductTrafik, 2500, 250},
		{"hayat rounded", models.ProductHayat, 333.33, 73.33},
		{"zero premium", models.ProductKasko, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commission, err := svc.Calculate(context.Background(), tt.productType, tt.premium)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, commission, 0.001)
		})
	}
}

func TestListRatesMergesOverrides(t *testing.T) {
	repo := &stubRateRepo{
		rates: []*models.CommissionRate{
			{ProductType: models.ProductDask, Percent: 12},
		},
	}
	svc := NewCommissionService(repo)

	rates, err := svc.ListRates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.12, rates[models.ProductDask])
	assert.Equal(t, 0.15, rates[models.ProductKasko])
	assert.Len(t, rates, 11)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.2351))
	assert.Equal(t, -1.23, Round2(-1.234))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(99.999))
}

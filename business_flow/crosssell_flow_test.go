package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/budun/backoffice/models"
)

func TestSuggestProducts(t *testing.T) {
	tests := []struct {
		name     string
		owned    []string
		expected []string
	}{
		{
			name:     "kasko owner",
			owned:    []string{models.ProductKasko},
			expected: []string{models.ProductFerdiKaza, models.ProductTrafik},
		},
		{
			name:     "kasko and trafik owner only missing ferdi kaza",
			owned:    []string{models.ProductKasko, models.ProductTrafik},
			expected: []string{models.ProductFerdiKaza},
		},
		{
			name:     "konut owner",
			owned:    []string{models.ProductKonut},
			expected: []string{models.ProductDask, models.ProductDeprem},
		},
		{
			name:     "overlapping complements deduplicated",
			owned:    []string{models.ProductKasko, models.ProductSaglik},
			expected: []string{models.ProductFerdiKaza, models.ProductHayat, models.ProductTrafik},
		},
		{
			name:     "fully covered customer",
			owned:    []string{models.ProductKasko, models.ProductTrafik, models.ProductFerdiKaza},
			expected: []string{},
		},
		{
			name:     "product without complements",
			owned:    []string{models.ProductSeyahat},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owned := make(map[string]bool, len(tt.owned))
			for _, productType := range tt.owned {
				owned[productType] = true
			}
			assert.Equal(t, tt.expected, SuggestProducts(owned))
		})
	}
}

func TestSuggestProductsSorted(t *testing.T) {
	owned := map[string]bool{
		models.ProductSaglik: true,
		models.ProductKonut:  true,
	}

	suggested := SuggestProducts(owned)

	assert.Equal(t, []string{models.ProductDask, models.ProductDeprem, models.ProductFerdiKaza, models.ProductHayat}, suggested)
}

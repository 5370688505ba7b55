package businessflow

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/models"
)

func reportTestPolicy(customerID uint, company, productType string, premium, commission float64) *models.Policy {
	return &models.Policy{
		CustomerID:   customerID,
		Customer:     models.Customer{ID: customerID, FullName: "Test Müşteri"},
		PolicyNumber: "POL-0001",
		ProductType:  productType,
		Company:      company,
		Premium:      premium,
		Commission:   commission,
		StartDate:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummarizePoliciesTotals(t *testing.T) {
	policies := []*models.Policy{
		reportTestPolicy(1, "Anadolu Sigorta", models.ProductKasko, 10000.50, 1500.075),
		reportTestPolicy(1, "Anadolu Sigorta", models.ProductTrafik, 2500.25, 250.025),
		reportTestPolicy(2, "Allianz", models.ProductKonut, 3000, 450),
	}

	summary := SummarizePolicies(policies)

	assert.Equal(t, 3, summary.TotalPolicies)
	assert.InDelta(t, 15500.75, summary.TotalPremium, 0.001)
	assert.InDelta(t, 2200.10, summary.TotalCommission, 0.001)
	assert.Equal(t, 2, summary.CustomerCount, "same customer should only count once")
}

func TestSummarizePoliciesBucketOrdering(t *testing.T) {
	policies := []*models.Policy{
		reportTestPolicy(1, "Allianz", models.ProductKasko, 100, 15),
		reportTestPolicy(2, "Allianz", models.ProductTrafik, 100, 10),
		reportTestPolicy(3, "Anadolu Sigorta", models.ProductTrafik, 100, 10),
		reportTestPolicy(4, "Axa", models.ProductKasko, 100, 15),
	}

	summary := SummarizePolicies(policies)

	require.Len(t, summary.ByCompany, 3)
	assert.Equal(t, dto.ReportBucketDTO{Name: "Allianz", Count: 2}, summary.ByCompany[0])
	// ties break alphabetically
	assert.Equal(t, dto.ReportBucketDTO{Name: "Anadolu Sigorta", Count: 1}, summary.ByCompany[1])
	assert.Equal(t, dto.ReportBucketDTO{Name: "Axa", Count: 1}, summary.ByCompany[2])

	require.Len(t, summary.ByProductType, 2)
	assert.Equal(t, dto.ReportBucketDTO{Name: "Kasko", Count: 2}, summary.ByProductType[0])
	assert.Equal(t, dto.ReportBucketDTO{Name: "Trafik", Count: 2}, summary.ByProductType[1])
}

func TestSummarizePoliciesEmpty(t *testing.T) {
	summary := SummarizePolicies(nil)

	assert.Equal(t, 0, summary.TotalPolicies)
	assert.Equal(t, 0.0, summary.TotalPremium)
	assert.Equal(t, 0, summary.CustomerCount)
	assert.Empty(t, summary.ByCompany)
	assert.Empty(t, summary.ByProductType)
}

func TestWriteCSVRow(t *testing.T) {
	var sb strings.Builder
	writeCSVRow(&sb, []string{"POL-1", "Ahmet Yılmaz", "1500.00"})

	assert.Equal(t, "\"POL-1\",\"Ahmet Yılmaz\",\"1500.00\"\n", sb.String())
}

func TestWriteCSVRowEscapesQuotes(t *testing.T) {
	var sb strings.Builder
	writeCSVRow(&sb, []string{`Müşteri "AŞ"`})

	assert.Equal(t, "\"Müşteri \"\"AŞ\"\"\"\n", sb.String())
}

func TestReportRow(t *testing.T) {
	policy := reportTestPolicy(7, "Anadolu Sigorta", models.ProductKasko, 12345.5, 1851.83)
	policy.Customer.FullName = "Ayşe Demir"

	row := reportRow(policy)

	require.Len(t, row, len(reportHeader))
	assert.Equal(t, "POL-0001", row[0])
	assert.Equal(t, "Ayşe Demir", row[1])
	assert.Equal(t, "Kasko", row[2])
	assert.Equal(t, "Anadolu Sigorta", row[3])
	assert.Equal(t, "12345.50", row[4])
	assert.Equal(t, "1851.83", row[5])
	assert.Equal(t, "15.01.2025", row[6])
	assert.Equal(t, "15.01.2026", row[7])
}

func TestReportRowUnknownCustomer(t *testing.T) {
	policy := reportTestPolicy(0, "Allianz", models.ProductTrafik, 100, 10)
	policy.Customer = models.Customer{}

	row := reportRow(policy)

	assert.Equal(t, "Bilinmiyor", row[1])
}

func TestSortedBuckets(t *testing.T) {
	buckets := sortedBuckets(map[string]int{
		"Seyahat": 1,
		"Kasko":   5,
		"Hayat":   5,
		"Trafik":  3,
	})

	expected := []dto.ReportBucketDTO{
		{Name: "Hayat", Count: 5},
		{Name: "Kasko", Count: 5},
		{Name: "Trafik", Count: 3},
		{Name: "Seyahat", Count: 1},
	}
	assert.Equal(t, expected, buckets)
}

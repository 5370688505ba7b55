package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/budun/backoffice/models"
)

func TestSummarizeCashPolicies(t *testing.T) {
	policies := []*models.Policy{
		{Premium: 1000, AmountPaid: 400},
		{Premium: 2500.50, AmountPaid: 2500.50},
		{Premium: 800, AmountPaid: 0},
	}

	summary := SummarizeCashPolicies(policies)

	assert.Equal(t, 3, summary.PolicyCount)
	assert.InDelta(t, 4300.50, summary.TotalPremium, 0.001)
	assert.InDelta(t, 2900.50, summary.TotalPaid, 0.001)
	assert.InDelta(t, 1400.00, summary.RemainingDebt, 0.001)
}

func TestSummarizeCashPoliciesOverpaymentClampedPerPolicy(t *testing.T) {
	// the overpaid policy must not offset the unpaid one
	policies := []*models.Policy{
		{Premium: 1000, AmountPaid: 1500},
		{Premium: 1000, AmountPaid: 0},
	}

	summary := SummarizeCashPolicies(policies)

	assert.InDelta(t, 2000, summary.TotalPremium, 0.001)
	assert.InDelta(t, 2500, summary.TotalPaid, 0.001)
	assert.InDelta(t, 1000, summary.RemainingDebt, 0.001)
}

func TestSummarizeCashPoliciesEmpty(t *testing.T) {
	summary := SummarizeCashPolicies(nil)

	assert.Equal(t, 0, summary.PolicyCount)
	assert.Equal(t, 0.0, summary.TotalPremium)
	assert.Equal(t, 0.0, summary.TotalPaid)
	assert.Equal(t, 0.0, summary.RemainingDebt)
}

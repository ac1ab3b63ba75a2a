package usecase

import (
	"context"
	"testing"

	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculate(t *testing.T, tier string, count int, customerTier string) domainBilling.Quote {
	t.Helper()
	quote, err := NewBillingService().Calculate(context.Background(), domainBilling.CalculateRequest{
		AnalysisType:  tier,
		DocumentCount: count,
		CustomerTier:  customerTier,
	})
	require.NoError(t, err)
	return quote
}

func TestBilling_TotalsAddUp(t *testing.T) {
	for _, tier := range domainBilling.TierNames() {
		for _, count := range []int{1, 3, 10, 11, 250} {
			for _, customer := range []string{"standard", "premium", "enterprise"} {
				q := calculate(t, tier, count, customer)
				price, _ := domainBilling.LookupTier(tier)
				assert.InDelta(t, price.Price*float64(count), q.Subtotal, 0.005, "%s x%d", tier, count)
				assert.InDelta(t, q.Subtotal-q.TotalDiscount, q.FinalTotal, 0.011, "%s x%d %s", tier, count, customer)
				assert.Equal(t, "USD", q.Currency)
			}
		}
	}
}

func TestBilling_BatchVolumeDiscountBoundary(t *testing.T) {
	ten := calculate(t, "batch", 10, "standard")
	assert.Equal(t, 0.0, ten.VolumeDiscount)
	assert.Equal(t, 0.5, ten.FinalTotal)

	eleven := calculate(t, "batch", 11, "standard")
	assert.Equal(t, 0.55, eleven.Subtotal)
	assert.Equal(t, 0.06, eleven.VolumeDiscount)
	assert.Equal(t, 0.5, eleven.FinalTotal)

	notBatch := calculate(t, "basic", 50, "standard")
	assert.Equal(t, 0.0, notBatch.VolumeDiscount)
}

func TestBilling_DiscountsAreAdditive(t *testing.T) {
	q := calculate(t, "batch", 100, "enterprise")
	assert.Equal(t, 5.0, q.Subtotal)
	assert.Equal(t, 0.5, q.VolumeDiscount)
	assert.Equal(t, 0.75, q.CustomerTierDiscount)
	assert.Equal(t, 1.25, q.TotalDiscount)
	assert.Equal(t, 3.75, q.FinalTotal)
}

func TestBilling_EnterpriseDiscount(t *testing.T) {
	for _, tier := range []string{"basic", "comprehensive", "complicated"} {
		q := calculate(t, tier, 20, "enterprise")
		assert.InDelta(t, q.Subtotal*0.15, q.CustomerTierDiscount, 0.005, tier)
	}
	q := calculate(t, "comprehensive", 4, "premium")
	assert.Equal(t, 0.1, q.CustomerTierDiscount)
}

func TestBilling_UnknownCustomerTierHasNoDiscount(t *testing.T) {
	q := calculate(t, "comprehensive", 2, "platinum")
	assert.Equal(t, 0.0, q.CustomerTierDiscount)
	assert.Equal(t, 1.0, q.FinalTotal)
	assert.Equal(t, "platinum", q.CustomerTier)
}

func TestBilling_DefaultCustomerTier(t *testing.T) {
	q := calculate(t, "basic", 5, "")
	assert.Equal(t, "standard", q.CustomerTier)
	assert.Equal(t, 0.5, q.FinalTotal)
}

func TestBilling_UnknownTier(t *testing.T) {
	quote, err := NewBillingService().Calculate(context.Background(), domainBilling.CalculateRequest{
		AnalysisType:  "premium",
		DocumentCount: 3,
	})
	require.Error(t, err)
	assert.Zero(t, quote.FinalTotal)

	var detailed pkgError.DetailedError
	require.ErrorAs(t, err, &detailed)
	assert.Equal(t, "VALIDATION_ERROR", detailed.ErrCode())
	assert.Equal(t, []string{"basic", "comprehensive", "batch", "complicated"}, detailed.Details()["valid_tiers"])
}

func TestBilling_RejectsNonPositiveCount(t *testing.T) {
	_, err := NewBillingService().Calculate(context.Background(), domainBilling.CalculateRequest{
		AnalysisType:  "basic",
		DocumentCount: 0,
	})
	assert.IsType(t, pkgError.ValidationError(""), err)
}

func TestBilling_BlankTierListsValidTiers(t *testing.T) {
	_, err := NewBillingService().Calculate(context.Background(), domainBilling.CalculateRequest{DocumentCount: 2})
	require.Error(t, err)

	var detailed pkgError.DetailedError
	require.ErrorAs(t, err, &detailed)
	assert.Equal(t, []string{"basic", "comprehensive", "batch", "complicated"}, detailed.Details()["valid_tiers"])
}

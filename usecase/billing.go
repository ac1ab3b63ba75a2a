package usecase

import (
	"context"
	"time"

	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	"github.com/AzielCF/az-medical-mcp/validations"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const batchVolumeThreshold = 10

var (
	batchVolumeRate = decimal.NewFromFloat(0.10)

	customerDiscounts = map[domainBilling.CustomerTier]decimal.Decimal{
		domainBilling.CustomerStandard:   decimal.Zero,
		domainBilling.CustomerPremium:    decimal.NewFromFloat(0.05),
		domainBilling.CustomerEnterprise: decimal.NewFromFloat(0.15),
	}
)

type billingService struct {
	now func() time.Time
}

func NewBillingService() domainBilling.IBillingUsecase {
	return &billingService{now: time.Now}
}

func (service *billingService) Calculate(ctx context.Context, request domainBilling.CalculateRequest) (domainBilling.Quote, error) {
	if request.CustomerTier == "" {
		request.CustomerTier = string(domainBilling.CustomerStandard)
	}
	if err := validations.ValidateCalculateBilling(ctx, request); err != nil {
		return domainBilling.Quote{}, err
	}

	tier, err := domainBilling.LookupTier(request.AnalysisType)
	if err != nil {
		return domainBilling.Quote{}, err
	}

	volumeRate := decimal.Zero
	if tier.Name == domainBilling.TierBatch && request.DocumentCount > batchVolumeThreshold {
		volumeRate = batchVolumeRate
	}

	customerRate, ok := customerDiscounts[domainBilling.CustomerTier(request.CustomerTier)]
	if !ok {
		logrus.WithField("customer_tier", request.CustomerTier).Debug("[BILLING] Unknown customer tier, no discount applied")
		customerRate = decimal.Zero
	}

	subtotal := decimal.NewFromFloat(tier.Price).Mul(decimal.NewFromInt(int64(request.DocumentCount)))
	totalDiscount := volumeRate.Add(customerRate).Mul(subtotal)

	return domainBilling.Quote{
		AnalysisType:         request.AnalysisType,
		DocumentCount:        request.DocumentCount,
		CustomerTier:         request.CustomerTier,
		BasePricePerDocument: tier.Price,
		Subtotal:             money(subtotal),
		VolumeDiscount:       money(volumeRate.Mul(subtotal)),
		CustomerTierDiscount: money(customerRate.Mul(subtotal)),
		TotalDiscount:        money(totalDiscount),
		FinalTotal:           money(subtotal.Sub(totalDiscount)),
		Currency:             domainBilling.Currency,
		BillingDate:          service.now(),
	}, nil
}

// money rounds to cents, half away from zero.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

package billing

import (
	"context"
	"time"
)

type CustomerTier string

const (
	CustomerStandard   CustomerTier = "standard"
	CustomerPremium    CustomerTier = "premium"
	CustomerEnterprise CustomerTier = "enterprise"
)

const Currency = "USD"

type CalculateRequest struct {
	AnalysisType  string `json:"analysis_type"`
	DocumentCount int    `json:"document_count"`
	CustomerTier  string `json:"customer_tier"`
}

// Quote is an itemized, auditable billing computation. Nothing here is stored.
type Quote struct {
	AnalysisType         string    `json:"analysis_type"`
	DocumentCount        int       `json:"document_count"`
	CustomerTier         string    `json:"customer_tier"`
	BasePricePerDocument float64   `json:"base_price_per_document"`
	Subtotal             float64   `json:"subtotal"`
	VolumeDiscount       float64   `json:"volume_discount"`
	CustomerTierDiscount float64   `json:"customer_tier_discount"`
	TotalDiscount        float64   `json:"total_discount"`
	FinalTotal           float64   `json:"final_total"`
	Currency             string    `json:"currency"`
	BillingDate          time.Time `json:"billing_date"`
}

type IBillingUsecase interface {
	Calculate(ctx context.Context, request CalculateRequest) (Quote, error)
}

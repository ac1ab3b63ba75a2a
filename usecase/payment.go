package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	domainPayment "github.com/AzielCF/az-medical-mcp/domains/payment"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	"github.com/AzielCF/az-medical-mcp/validations"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const errStripeNotConfigured = pkgError.ConfigurationError("Stripe not configured")

type paymentService struct {
	gateway domainPayment.Gateway
	now     func() time.Time
}

// NewPaymentService wraps gateway. A nil gateway means no Stripe key: every
// operation then fails with the same configuration error.
func NewPaymentService(gateway domainPayment.Gateway) domainPayment.IPaymentUsecase {
	return &paymentService{gateway: gateway, now: time.Now}
}

func (service *paymentService) Configured() bool {
	return service.gateway != nil
}

func (service *paymentService) CreateCustomer(ctx context.Context, request domainPayment.CreateCustomerRequest) (domainPayment.CreateCustomerResponse, error) {
	if !service.Configured() {
		return domainPayment.CreateCustomerResponse{}, errStripeNotConfigured
	}
	if err := validations.ValidateCreateCustomer(ctx, request); err != nil {
		return domainPayment.CreateCustomerResponse{}, err
	}

	description := request.Description
	if description == "" {
		description = "Medical Analysis Customer - " + request.Email
	}

	customer, err := service.gateway.CreateCustomer(ctx, domainPayment.CustomerParams{
		Email:       request.Email,
		Name:        request.Name,
		Description: description,
	})
	if err != nil {
		logrus.WithError(err).Error("[PAYMENT] Failed to create customer")
		return domainPayment.CreateCustomerResponse{}, err
	}

	logrus.WithField("customer_id", customer.ID).Info("[PAYMENT] Customer created")
	return domainPayment.CreateCustomerResponse{
		Success:    true,
		CustomerID: customer.ID,
		Email:      customer.Email,
		Created:    customer.Created,
	}, nil
}

func (service *paymentService) CreatePaymentIntent(ctx context.Context, request domainPayment.CreateIntentRequest) (domainPayment.CreateIntentResponse, error) {
	if !service.Configured() {
		return domainPayment.CreateIntentResponse{}, errStripeNotConfigured
	}
	if err := validations.ValidateCreatePaymentIntent(ctx, request); err != nil {
		return domainPayment.CreateIntentResponse{}, err
	}

	tier, err := domainBilling.LookupTier(request.AnalysisType)
	if err != nil {
		return domainPayment.CreateIntentResponse{}, err
	}

	amount := AmountInCents(tier.Price, request.DocumentCount)
	description := request.Description
	if description == "" {
		description = fmt.Sprintf("Medical Analysis - %s x%d", tier.Description, request.DocumentCount)
	}

	intent, err := service.gateway.CreateIntent(ctx, domainPayment.IntentParams{
		CustomerID:  request.CustomerID,
		Amount:      amount,
		Currency:    domainPayment.Currency,
		Description: description,
		Metadata: map[string]string{
			"analysis_type":  request.AnalysisType,
			"document_count": strconv.Itoa(request.DocumentCount),
			"service":        domainPayment.ServiceName,
		},
	})
	if err != nil {
		logrus.WithError(err).WithField("customer_id", request.CustomerID).Error("[PAYMENT] Failed to create payment intent")
		return domainPayment.CreateIntentResponse{}, err
	}

	logrus.WithFields(logrus.Fields{
		"payment_intent_id": intent.ID,
		"amount":            amount,
		"analysis_type":     request.AnalysisType,
	}).Info("[PAYMENT] Payment intent created")

	return domainPayment.CreateIntentResponse{
		Success:         true,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          amount,
		Currency:        intent.Currency,
		Status:          intent.Status,
		AnalysisType:    request.AnalysisType,
		DocumentCount:   request.DocumentCount,
	}, nil
}

func (service *paymentService) ConfirmPayment(ctx context.Context, paymentIntentID string) (domainPayment.ConfirmResponse, error) {
	if !service.Configured() {
		return domainPayment.ConfirmResponse{}, errStripeNotConfigured
	}
	if err := validations.ValidateID("payment_intent_id", paymentIntentID); err != nil {
		return domainPayment.ConfirmResponse{}, err
	}

	intent, err := service.gateway.GetIntent(ctx, paymentIntentID)
	if err != nil {
		return domainPayment.ConfirmResponse{}, err
	}

	return domainPayment.ConfirmResponse{
		Success:         true,
		PaymentIntentID: intent.ID,
		Status:          intent.Status,
		AmountReceived:  intent.AmountReceived,
		Currency:        intent.Currency,
		CustomerID:      intent.CustomerID,
		Metadata:        intent.Metadata,
		Paid:            intent.Status == domainPayment.StatusSucceeded,
		Created:         intent.Created,
	}, nil
}

func (service *paymentService) GetCustomerInfo(ctx context.Context, customerID string) (domainPayment.CustomerInfoResponse, error) {
	if !service.Configured() {
		return domainPayment.CustomerInfoResponse{}, errStripeNotConfigured
	}
	if err := validations.ValidateID("customer_id", customerID); err != nil {
		return domainPayment.CustomerInfoResponse{}, err
	}

	customer, err := service.gateway.GetCustomer(ctx, customerID)
	if err != nil {
		return domainPayment.CustomerInfoResponse{}, err
	}
	intents, err := service.gateway.ListIntents(ctx, customerID, domainPayment.RecentPayments)
	if err != nil {
		return domainPayment.CustomerInfoResponse{}, err
	}

	recent := make([]domainPayment.RecentPayment, 0, len(intents))
	for _, pi := range intents {
		if len(recent) == domainPayment.RecentPayments {
			break
		}
		recent = append(recent, domainPayment.RecentPayment{
			ID:       pi.ID,
			Amount:   pi.Amount,
			Currency: pi.Currency,
			Status:   pi.Status,
			Created:  pi.Created,
			Metadata: pi.Metadata,
		})
	}

	return domainPayment.CustomerInfoResponse{
		Success:        true,
		CustomerID:     customer.ID,
		Email:          customer.Email,
		Name:           customer.Name,
		Description:    customer.Description,
		Created:        customer.Created,
		RecentPayments: recent,
	}, nil
}

// SimulatePaymentSuccess is a test stub: it never contacts Stripe and always succeeds.
func (service *paymentService) SimulatePaymentSuccess(_ context.Context, paymentIntentID string) domainPayment.SimulationResponse {
	logrus.WithField("payment_intent_id", paymentIntentID).Warn("[PAYMENT] Simulated payment success")
	return domainPayment.SimulationResponse{
		Success:         true,
		PaymentIntentID: paymentIntentID,
		Status:          domainPayment.StatusSucceeded,
		AmountReceived:  "simulated",
		Simulation:      true,
		Message:         "Payment simulated as successful for testing purposes",
		Timestamp:       service.now(),
	}
}

// AmountInCents returns price*count in minor units, rounded down.
func AmountInCents(price float64, count int) int64 {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(count))).
		Mul(decimal.NewFromInt(100)).
		Floor().
		IntPart()
}

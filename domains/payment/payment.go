package payment

import (
	"context"
	"time"
)

const (
	// StatusSucceeded is the provider's terminal success status for a payment intent.
	StatusSucceeded = "succeeded"

	Currency       = "usd"
	ServiceName    = "medical_analysis"
	RecentPayments = 10
)

// Customer mirrors the provider-owned customer object.
type Customer struct {
	ID          string    `json:"customer_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Created     time.Time `json:"created"`
}

// Intent mirrors the provider-owned payment intent object.
type Intent struct {
	ID             string            `json:"payment_intent_id"`
	ClientSecret   string            `json:"client_secret,omitempty"`
	Amount         int64             `json:"amount"`
	AmountReceived int64             `json:"amount_received"`
	Currency       string            `json:"currency"`
	Status         string            `json:"status"`
	CustomerID     string            `json:"customer_id,omitempty"`
	Metadata       map[string]string `json:"metadata"`
	Created        time.Time         `json:"created"`
}

// Gateway is the billing provider seen by the adapter. Implementations
// translate provider failures into *pkgError.GatewayError.
type Gateway interface {
	CreateCustomer(ctx context.Context, params CustomerParams) (Customer, error)
	GetCustomer(ctx context.Context, customerID string) (Customer, error)
	CreateIntent(ctx context.Context, params IntentParams) (Intent, error)
	GetIntent(ctx context.Context, intentID string) (Intent, error)
	ListIntents(ctx context.Context, customerID string, limit int) ([]Intent, error)
}

type CustomerParams struct {
	Email       string
	Name        string
	Description string
}

type IntentParams struct {
	CustomerID  string
	Amount      int64
	Currency    string
	Description string
	Metadata    map[string]string
}

type CreateCustomerRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type CreateCustomerResponse struct {
	Success    bool      `json:"success"`
	CustomerID string    `json:"customer_id"`
	Email      string    `json:"email"`
	Created    time.Time `json:"created"`
}

type CreateIntentRequest struct {
	CustomerID    string `json:"customer_id"`
	AnalysisType  string `json:"analysis_type"`
	DocumentCount int    `json:"document_count"`
	Description   string `json:"description,omitempty"`
}

type CreateIntentResponse struct {
	Success         bool   `json:"success"`
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
	AnalysisType    string `json:"analysis_type"`
	DocumentCount   int    `json:"document_count"`
}

type ConfirmResponse struct {
	Success         bool              `json:"success"`
	PaymentIntentID string            `json:"payment_intent_id"`
	Status          string            `json:"status"`
	AmountReceived  int64             `json:"amount_received"`
	Currency        string            `json:"currency"`
	CustomerID      string            `json:"customer_id"`
	Metadata        map[string]string `json:"metadata"`
	Paid            bool              `json:"paid"`
	Created         time.Time         `json:"created"`
}

type RecentPayment struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Status   string            `json:"status"`
	Created  time.Time         `json:"created"`
	Metadata map[string]string `json:"metadata"`
}

type CustomerInfoResponse struct {
	Success        bool            `json:"success"`
	CustomerID     string          `json:"customer_id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Created        time.Time       `json:"created"`
	RecentPayments []RecentPayment `json:"recent_payments"`
}

// SimulationResponse is the fixed payload of the test-only payment simulator.
type SimulationResponse struct {
	Success         bool      `json:"success"`
	PaymentIntentID string    `json:"payment_intent_id"`
	Status          string    `json:"status"`
	AmountReceived  string    `json:"amount_received"`
	Simulation      bool      `json:"simulation"`
	Message         string    `json:"message"`
	Timestamp       time.Time `json:"timestamp"`
}

type IPaymentUsecase interface {
	Configured() bool
	CreateCustomer(ctx context.Context, request CreateCustomerRequest) (CreateCustomerResponse, error)
	CreatePaymentIntent(ctx context.Context, request CreateIntentRequest) (CreateIntentResponse, error)
	ConfirmPayment(ctx context.Context, paymentIntentID string) (ConfirmResponse, error)
	GetCustomerInfo(ctx context.Context, customerID string) (CustomerInfoResponse, error)
	SimulatePaymentSuccess(ctx context.Context, paymentIntentID string) SimulationResponse
}

package stripe

import (
	"context"
	"errors"
	"time"

	"github.com/AzielCF/az-medical-mcp/domains/payment"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	stripelib "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// Gateway implements payment.Gateway on top of a dedicated Stripe client.
// It never touches stripe-go's global key.
type Gateway struct {
	client *client.API
}

func NewGateway(apiKey string) *Gateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &Gateway{client: sc}
}

// NewGatewayWithBackend points the client at a custom API base URL (tests, mocks).
func NewGatewayWithBackend(apiKey, baseURL string) *Gateway {
	backend := stripelib.GetBackendWithConfig(stripelib.APIBackend, &stripelib.BackendConfig{
		URL:               stripelib.String(baseURL),
		MaxNetworkRetries: stripelib.Int64(0),
	})
	return &Gateway{client: client.New(apiKey, &stripelib.Backends{API: backend, Connect: backend, Uploads: backend})}
}

func (g *Gateway) CreateCustomer(ctx context.Context, params payment.CustomerParams) (payment.Customer, error) {
	p := &stripelib.CustomerParams{
		Email:       stripelib.String(params.Email),
		Description: stripelib.String(params.Description),
	}
	if params.Name != "" {
		p.Name = stripelib.String(params.Name)
	}
	p.Context = ctx

	c, err := g.client.Customers.New(p)
	if err != nil {
		return payment.Customer{}, mapStripeError(err)
	}
	return toCustomer(c), nil
}

func (g *Gateway) GetCustomer(ctx context.Context, customerID string) (payment.Customer, error) {
	p := &stripelib.CustomerParams{}
	p.Context = ctx

	c, err := g.client.Customers.Get(customerID, p)
	if err != nil {
		return payment.Customer{}, mapStripeError(err)
	}
	if c.Deleted {
		return payment.Customer{}, &pkgError.GatewayError{
			Message: "No such customer: " + customerID,
			Code:    string(stripelib.ErrorCodeResourceMissing),
		}
	}
	return toCustomer(c), nil
}

func (g *Gateway) CreateIntent(ctx context.Context, params payment.IntentParams) (payment.Intent, error) {
	p := &stripelib.PaymentIntentParams{
		Amount:      stripelib.Int64(params.Amount),
		Currency:    stripelib.String(params.Currency),
		Customer:    stripelib.String(params.CustomerID),
		Description: stripelib.String(params.Description),
		AutomaticPaymentMethods: &stripelib.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripelib.Bool(true),
		},
	}
	if len(params.Metadata) > 0 {
		p.Metadata = make(map[string]string, len(params.Metadata))
		for k, v := range params.Metadata {
			p.Metadata[k] = v
		}
	}
	p.Context = ctx

	pi, err := g.client.PaymentIntents.New(p)
	if err != nil {
		return payment.Intent{}, mapStripeError(err)
	}
	return toIntent(pi), nil
}

func (g *Gateway) GetIntent(ctx context.Context, intentID string) (payment.Intent, error) {
	p := &stripelib.PaymentIntentParams{}
	p.Context = ctx

	pi, err := g.client.PaymentIntents.Get(intentID, p)
	if err != nil {
		return payment.Intent{}, mapStripeError(err)
	}
	return toIntent(pi), nil
}

// ListIntents returns at most limit intents of the customer, newest first, in a single page.
func (g *Gateway) ListIntents(ctx context.Context, customerID string, limit int) ([]payment.Intent, error) {
	p := &stripelib.PaymentIntentListParams{Customer: stripelib.String(customerID)}
	p.Limit = stripelib.Int64(int64(limit))
	p.Single = true
	p.Context = ctx

	var out []payment.Intent
	iter := g.client.PaymentIntents.List(p)
	for iter.Next() && len(out) < limit {
		out = append(out, toIntent(iter.PaymentIntent()))
	}
	if err := iter.Err(); err != nil {
		return nil, mapStripeError(err)
	}
	return out, nil
}

// mapStripeError keeps stripe-go types out of the use case layer.
func mapStripeError(err error) error {
	var stripeErr *stripelib.Error
	if errors.As(err, &stripeErr) {
		msg := stripeErr.Msg
		if msg == "" {
			msg = string(stripeErr.Type)
		}
		return &pkgError.GatewayError{
			Message: msg,
			Code:    string(stripeErr.Code),
			Status:  stripeErr.HTTPStatusCode,
			Err:     err,
		}
	}
	return &pkgError.GatewayError{Message: err.Error(), Err: err}
}

func toCustomer(c *stripelib.Customer) payment.Customer {
	return payment.Customer{
		ID:          c.ID,
		Email:       c.Email,
		Name:        c.Name,
		Description: c.Description,
		Created:     unix(c.Created),
	}
}

func toIntent(pi *stripelib.PaymentIntent) payment.Intent {
	out := payment.Intent{
		ID:             pi.ID,
		ClientSecret:   pi.ClientSecret,
		Amount:         pi.Amount,
		AmountReceived: pi.AmountReceived,
		Currency:       string(pi.Currency),
		Status:         string(pi.Status),
		Metadata:       pi.Metadata,
		Created:        unix(pi.Created),
	}
	if pi.Customer != nil {
		out.CustomerID = pi.Customer.ID
	}
	if out.Metadata == nil {
		out.Metadata = map[string]string{}
	}
	return out
}

func unix(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

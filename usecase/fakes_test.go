package usecase

import (
	"context"
	"sync/atomic"

	domainAnalysis "github.com/AzielCF/az-medical-mcp/domains/analysis"
	domainPayment "github.com/AzielCF/az-medical-mcp/domains/payment"
)

type fakeProvider struct {
	name     string
	model    string
	response domainAnalysis.CompletionResponse
	err      error
	block    bool

	calls   atomic.Int32
	lastReq domainAnalysis.CompletionRequest
}

func (p *fakeProvider) Name() string  { return p.name }
func (p *fakeProvider) Model() string { return p.model }

func (p *fakeProvider) Complete(ctx context.Context, req domainAnalysis.CompletionRequest) (domainAnalysis.CompletionResponse, error) {
	p.calls.Add(1)
	p.lastReq = req
	if p.block {
		<-ctx.Done()
		return domainAnalysis.CompletionResponse{}, ctx.Err()
	}
	if p.err != nil {
		return domainAnalysis.CompletionResponse{}, p.err
	}
	return p.response, nil
}

type fakeGateway struct {
	customers map[string]domainPayment.Customer
	intents   map[string]domainPayment.Intent
	err       error

	createdCustomer domainPayment.CustomerParams
	createdIntent   domainPayment.IntentParams
	listLimit       int
}

func (g *fakeGateway) CreateCustomer(_ context.Context, params domainPayment.CustomerParams) (domainPayment.Customer, error) {
	g.createdCustomer = params
	if g.err != nil {
		return domainPayment.Customer{}, g.err
	}
	return domainPayment.Customer{ID: "cus_new", Email: params.Email, Name: params.Name, Description: params.Description}, nil
}

func (g *fakeGateway) GetCustomer(_ context.Context, customerID string) (domainPayment.Customer, error) {
	if g.err != nil {
		return domainPayment.Customer{}, g.err
	}
	return g.customers[customerID], nil
}

func (g *fakeGateway) CreateIntent(_ context.Context, params domainPayment.IntentParams) (domainPayment.Intent, error) {
	g.createdIntent = params
	if g.err != nil {
		return domainPayment.Intent{}, g.err
	}
	return domainPayment.Intent{
		ID:           "pi_new",
		ClientSecret: "pi_new_secret",
		Amount:       params.Amount,
		Currency:     params.Currency,
		Status:       "requires_payment_method",
		CustomerID:   params.CustomerID,
		Metadata:     params.Metadata,
	}, nil
}

func (g *fakeGateway) GetIntent(_ context.Context, intentID string) (domainPayment.Intent, error) {
	if g.err != nil {
		return domainPayment.Intent{}, g.err
	}
	return g.intents[intentID], nil
}

func (g *fakeGateway) ListIntents(_ context.Context, _ string, limit int) ([]domainPayment.Intent, error) {
	g.listLimit = limit
	if g.err != nil {
		return nil, g.err
	}
	var out []domainPayment.Intent
	for _, pi := range g.intents {
		out = append(out, pi)
	}
	return out, nil
}

type fakeAnalyzer struct {
	calls   int
	request domainAnalysis.AnalyzeRequest
	result  domainAnalysis.Result
	err     error
}

func (a *fakeAnalyzer) Analyze(_ context.Context, request domainAnalysis.AnalyzeRequest) (domainAnalysis.Result, error) {
	a.calls++
	a.request = request
	if a.err != nil {
		return domainAnalysis.Result{}, a.err
	}
	result := a.result
	result.AnalysisType = request.AnalysisType
	return result, nil
}

func (a *fakeAnalyzer) ProviderStatus() map[string]bool {
	return map[string]bool{"anthropic": true, "openai": false, "gemini": false}
}

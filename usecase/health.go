package usecase

import (
	"context"
	"fmt"
	"time"

	domainAnalysis "github.com/AzielCF/az-medical-mcp/domains/analysis"
	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	domainHealth "github.com/AzielCF/az-medical-mcp/domains/health"
	domainPayment "github.com/AzielCF/az-medical-mcp/domains/payment"
	"github.com/dustin/go-humanize"
)

// HealthOptions describes the running process.
type HealthOptions struct {
	Version      string
	Environment  string
	PatientStore string
	StartedAt    time.Time
}

type healthService struct {
	payments domainPayment.IPaymentUsecase
	analyzer domainAnalysis.IAnalysisUsecase
	options  HealthOptions
	now      func() time.Time
}

func NewHealthService(payments domainPayment.IPaymentUsecase, analyzer domainAnalysis.IAnalysisUsecase, options HealthOptions) domainHealth.IHealthUsecase {
	if options.StartedAt.IsZero() {
		options.StartedAt = time.Now()
	}
	return &healthService{payments: payments, analyzer: analyzer, options: options, now: time.Now}
}

func (s *healthService) Check(_ context.Context) domainHealth.Report {
	providers := s.analyzer.ProviderStatus()
	apiStatus := domainHealth.APIStatus{
		StripeConfigured:    s.payments.Configured(),
		AnthropicConfigured: providers["anthropic"],
		OpenAIConfigured:    providers["openai"],
		GeminiConfigured:    providers["gemini"],
	}

	status := domainHealth.StatusHealthy
	if !apiStatus.AnthropicConfigured && !apiStatus.OpenAIConfigured && !apiStatus.GeminiConfigured {
		status = domainHealth.StatusDegraded
	}

	return domainHealth.Report{
		Status:                status,
		Service:               domainHealth.ServiceName,
		Version:               s.options.Version,
		Timestamp:             s.now(),
		Environment:           s.options.Environment,
		APIStatus:             apiStatus,
		AvailableTools:        domainHealth.AvailableTools(),
		PaymentTools:          domainHealth.PaymentTools(),
		BillingTiersAvailable: domainBilling.TierNames(),
		PatientStore:          s.options.PatientStore,
		Uptime:                fmt.Sprintf("Service running normally (started %s)", humanize.RelTime(s.options.StartedAt, s.now(), "ago", "from now")),
	}
}

package health

import (
	"context"
	"time"
)

type Status string

const (
	StatusHealthy Status = "healthy"
	// StatusDegraded means no inference provider is configured, so analysis tools cannot run.
	StatusDegraded Status = "degraded"
)

const ServiceName = "Medical Agent MCP Server with Stripe Integration"

// Tool names exposed by the MCP surface.
const (
	ToolCreateCustomer         = "create_customer"
	ToolCreatePaymentIntent    = "create_payment_intent"
	ToolConfirmPayment         = "confirm_payment"
	ToolProcessPaidAnalysis    = "process_paid_analysis"
	ToolGetCustomerInfo        = "get_customer_info"
	ToolAnalyzeMedicalDocument = "analyze_medical_document"
	ToolGetPatientSummary      = "get_patient_summary"
	ToolCalculateBilling       = "calculate_billing"
	ToolGetAvailableServices   = "get_available_services"
	ToolSimulatePaymentSuccess = "simulate_payment_success"
	ToolHealthCheck            = "health_check"
)

// AvailableTools lists every tool in registration order.
func AvailableTools() []string {
	return []string{
		ToolAnalyzeMedicalDocument,
		ToolGetPatientSummary,
		ToolCalculateBilling,
		ToolGetAvailableServices,
		ToolHealthCheck,
		ToolCreateCustomer,
		ToolCreatePaymentIntent,
		ToolConfirmPayment,
		ToolProcessPaidAnalysis,
		ToolGetCustomerInfo,
		ToolSimulatePaymentSuccess,
	}
}

// PaymentTools lists the tools that need the billing provider.
func PaymentTools() []string {
	return []string{
		ToolCreateCustomer,
		ToolCreatePaymentIntent,
		ToolConfirmPayment,
		ToolProcessPaidAnalysis,
		ToolGetCustomerInfo,
	}
}

type APIStatus struct {
	StripeConfigured    bool `json:"stripe_configured"`
	AnthropicConfigured bool `json:"anthropic_configured"`
	OpenAIConfigured    bool `json:"openai_configured"`
	GeminiConfigured    bool `json:"gemini_configured"`
}

type Report struct {
	Status                Status    `json:"status"`
	Service               string    `json:"service"`
	Version               string    `json:"version"`
	Timestamp             time.Time `json:"timestamp"`
	Environment           string    `json:"environment"`
	APIStatus             APIStatus `json:"api_status"`
	AvailableTools        []string  `json:"available_tools"`
	PaymentTools          []string  `json:"payment_tools"`
	BillingTiersAvailable []string  `json:"billing_tiers_available"`
	PatientStore          string    `json:"patient_store"`
	Uptime                string    `json:"uptime"`
}

type IHealthUsecase interface {
	Check(ctx context.Context) Report
}

package analysis

import (
	"context"
	"time"

	"github.com/AzielCF/az-medical-mcp/domains/billing"
)

// CompletionRequest is the provider-neutral input of a single inference call.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// CompletionResponse is the provider-neutral output of a single inference call.
type CompletionResponse struct {
	Text  string
	Model string
	Usage TokenUsage
}

type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Provider is an external inference backend.
type Provider interface {
	Name() string
	Model() string
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}

type AnalyzeRequest struct {
	DocumentContent string `json:"document_content"`
	AnalysisType    string `json:"analysis_type"`
	PatientID       string `json:"patient_id,omitempty"`
}

type BatchInfo struct {
	DocumentsProcessed  int     `json:"documents_processed"`
	ProcessingCost      float64 `json:"processing_cost"`
	EfficiencyOptimized bool    `json:"efficiency_optimized"`
}

// PaymentInfo is attached to results produced by a paid analysis.
type PaymentInfo struct {
	PaymentConfirmed bool      `json:"payment_confirmed"`
	PaymentIntentID  string    `json:"payment_intent_id"`
	AmountPaid       float64   `json:"amount_paid"`
	Currency         string    `json:"currency"`
	ProcessedAt      time.Time `json:"processed_at"`
}

type Result struct {
	AnalysisID            string       `json:"analysis_id"`
	AnalysisType          string       `json:"analysis_type"`
	BillingInfo           billing.Tier `json:"billing_info"`
	Timestamp             time.Time    `json:"timestamp"`
	PatientID             *string      `json:"patient_id"`
	Provider              string       `json:"provider"`
	ModelUsed             string       `json:"model_used"`
	FallbackUsed          bool         `json:"fallback_used"`
	ProviderNotice        string       `json:"provider_notice,omitempty"`
	AIAnalysis            string       `json:"ai_analysis"`
	TokensUsed            TokenUsage   `json:"tokens_used"`
	ProcessingTimeSeconds float64      `json:"processing_time_seconds"`
	AnalysisFeatures      []string     `json:"analysis_features,omitempty"`
	BatchInfo             *BatchInfo   `json:"batch_info,omitempty"`

	*PaymentInfo
}

type IAnalysisUsecase interface {
	Analyze(ctx context.Context, request AnalyzeRequest) (Result, error)
	// ProviderStatus reports which inference providers are configured, by name.
	ProviderStatus() map[string]bool
}

// PaidAnalysisRequest runs an analysis gated on a confirmed payment intent.
// The tier comes from the intent metadata.
type PaidAnalysisRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
	DocumentContent string `json:"document_content"`
	PatientID       string `json:"patient_id,omitempty"`
}

type IPaidAnalysisUsecase interface {
	Process(ctx context.Context, request PaidAnalysisRequest) (Result, error)
}

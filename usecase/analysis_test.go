package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainAnalysis "github.com/AzielCF/az-medical-mcp/domains/analysis"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const soapNote = "S: chest pain. O: BP 150/95, HR 88. A: hypertension. P: continue lisinopril."

func okProvider(name string) *fakeProvider {
	return &fakeProvider{
		name:  name,
		model: name + "-model",
		response: domainAnalysis.CompletionResponse{
			Text:  `{"vital_signs": {"blood_pressure": "150/95"}}`,
			Usage: domainAnalysis.TokenUsage{InputTokens: 100, OutputTokens: 40},
		},
	}
}

func newAnalysis(slots ...domainAnalysis.ProviderSlot) domainAnalysis.IAnalysisUsecase {
	return NewAnalysisService(domainAnalysis.NewProviderChain(slots...), AnalysisOptions{Timeout: time.Second, Environment: "local"})
}

func TestAnalysis_PrimaryProvider(t *testing.T) {
	primary, secondary := okProvider("anthropic"), okProvider("openai")
	svc := newAnalysis(
		domainAnalysis.ProviderSlot{Name: "anthropic", Provider: primary},
		domainAnalysis.ProviderSlot{Name: "openai", Provider: secondary},
	)

	result, err := svc.Analyze(context.Background(), domainAnalysis.AnalyzeRequest{
		DocumentContent: soapNote,
		AnalysisType:    "comprehensive",
		PatientID:       "patient_001",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AnalysisID)
	assert.Equal(t, "anthropic", result.Provider)
	assert.Equal(t, "anthropic-model", result.ModelUsed)
	assert.False(t, result.FallbackUsed)
	assert.Empty(t, result.ProviderNotice)
	assert.Equal(t, 0.50, result.BillingInfo.Price)
	require.NotNil(t, result.PatientID)
	assert.Equal(t, "patient_001", *result.PatientID)
	assert.Equal(t, 140, result.TokensUsed.TotalTokens)
	assert.Len(t, result.AnalysisFeatures, 5)
	assert.Nil(t, result.BatchInfo)
	assert.Nil(t, result.PaymentInfo)

	assert.EqualValues(t, 1, primary.calls.Load())
	assert.EqualValues(t, 0, secondary.calls.Load())
	assert.Equal(t, 4096, primary.lastReq.MaxTokens)
	assert.Equal(t, 0.1, primary.lastReq.Temperature)
	assert.Contains(t, primary.lastReq.UserPrompt, soapNote)
}

func TestAnalysis_SecondaryWhenPrimaryUnavailable(t *testing.T) {
	secondary := okProvider("openai")
	svc := newAnalysis(
		domainAnalysis.ProviderSlot{Name: "anthropic"},
		domainAnalysis.ProviderSlot{Name: "openai", Provider: secondary},
	)

	result, err := svc.Analyze(context.Background(), domainAnalysis.AnalyzeRequest{DocumentContent: soapNote, AnalysisType: "batch"})
	require.NoError(t, err)

	assert.Equal(t, "openai", result.Provider)
	assert.True(t, result.FallbackUsed)
	assert.Equal(t, FallbackNotice, result.ProviderNotice)
	assert.Nil(t, result.PatientID)
	require.NotNil(t, result.BatchInfo)
	assert.Equal(t, domainAnalysis.BatchInfo{DocumentsProcessed: 1, ProcessingCost: 0.05, EfficiencyOptimized: true}, *result.BatchInfo)
	assert.Equal(t, 1000, secondary.lastReq.MaxTokens)
}

func TestAnalysis_NoProviders(t *testing.T) {
	svc := newAnalysis(domainAnalysis.ProviderSlot{Name: "anthropic"}, domainAnalysis.ProviderSlot{Name: "openai"})

	_, err := svc.Analyze(context.Background(), domainAnalysis.AnalyzeRequest{DocumentContent: soapNote, AnalysisType: "basic"})
	require.Error(t, err)

	var detailed pkgError.DetailedError
	require.ErrorAs(t, err, &detailed)
	assert.Equal(t, "CONFIGURATION_ERROR", detailed.ErrCode())
	assert.Equal(t, "No AI providers configured", detailed.Error())

	debug := detailed.Details()["debug_info"].(map[string]any)
	assert.Equal(t, "local", debug["environment"])
	assert.Equal(t, map[string]bool{"anthropic": false, "openai": false}, debug["providers_configured"])
}

func TestAnalysis_PrimaryFailureDoesNotCascade(t *testing.T) {
	primary := &fakeProvider{name: "anthropic", model: "m", err: errors.New(`POST "https://api.anthropic.com/v1/messages": 429 Too Many Requests`)}
	secondary := okProvider("openai")
	svc := newAnalysis(
		domainAnalysis.ProviderSlot{Name: "anthropic", Provider: primary},
		domainAnalysis.ProviderSlot{Name: "openai", Provider: secondary},
	)

	_, err := svc.Analyze(context.Background(), domainAnalysis.AnalyzeRequest{DocumentContent: soapNote, AnalysisType: "basic"})
	require.Error(t, err)
	assert.EqualValues(t, 1, primary.calls.Load())
	assert.EqualValues(t, 0, secondary.calls.Load())

	var inferenceErr *pkgError.InferenceError
	require.ErrorAs(t, err, &inferenceErr)
	assert.Equal(t, "anthropic", inferenceErr.Provider)
	assert.Equal(t, hintRateLimit, inferenceErr.FixSuggestion)

	var detailed pkgError.DetailedError
	require.ErrorAs(t, err, &detailed)
	assert.Equal(t, "INFERENCE_ERROR", detailed.ErrCode())
	assert.Equal(t, hintRateLimit, detailed.Details()["fix_suggestion"])
	assert.Equal(t, true, detailed.Details()["anthropic_available"])
	assert.Equal(t, true, detailed.Details()["openai_available"])
	assert.Equal(t, "basic", detailed.Details()["analysis_type"])
}

func TestAnalysis_TimeoutIsBounded(t *testing.T) {
	slow := &fakeProvider{name: "anthropic", model: "m", block: true}
	svc := NewAnalysisService(
		domainAnalysis.NewProviderChain(domainAnalysis.ProviderSlot{Name: "anthropic", Provider: slow}),
		AnalysisOptions{Timeout: 20 * time.Millisecond},
	)

	start := time.Now()
	_, err := svc.Analyze(context.Background(), domainAnalysis.AnalyzeRequest{DocumentContent: soapNote, AnalysisType: "complicated"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var inferenceErr *pkgError.InferenceError
	require.ErrorAs(t, err, &inferenceErr)
	assert.Equal(t, hintTimeout, inferenceErr.FixSuggestion)
}

func TestAnalysis_Validation(t *testing.T) {
	provider := okProvider("anthropic")
	svc := newAnalysis(domainAnalysis.ProviderSlot{Name: "anthropic", Provider: provider})

	_, err := svc.Analyze(context.Background(), domainAnalysis.AnalyzeRequest{DocumentContent: soapNote, AnalysisType: "premium"})
	var detailed pkgError.DetailedError
	require.ErrorAs(t, err, &detailed)
	assert.Equal(t, "VALIDATION_ERROR", detailed.ErrCode())

	_, err = svc.Analyze(context.Background(), domainAnalysis.AnalyzeRequest{AnalysisType: "basic"})
	assert.IsType(t, pkgError.ValidationError(""), err)

	assert.EqualValues(t, 0, provider.calls.Load())
}

func TestClassifyInferenceError(t *testing.T) {
	cases := []struct {
		err  error
		hint string
	}{
		{errors.New("request timed out"), hintTimeout},
		{errors.New("Timeout awaiting response headers"), hintTimeout},
		{context.DeadlineExceeded, hintTimeout},
		{errors.New("rate limit reached for gpt-4o"), hintRateLimit},
		{errors.New("status 429"), hintRateLimit},
		{errors.New("authentication_error: invalid x-api-key"), hintAuth},
		{errors.New("401 Unauthorized"), hintAuth},
		{errors.New("overloaded"), ""},
	}
	for _, tc := range cases {
		_, hint := classifyInferenceError(tc.err)
		assert.Equal(t, tc.hint, hint, tc.err.Error())
	}

	errorType, _ := classifyInferenceError(errors.New("boom"))
	assert.Equal(t, "errors.errorString", errorType)
}

func TestAnalysis_BlankTierListsValidTiers(t *testing.T) {
	provider := okProvider("anthropic")
	svc := newAnalysis(domainAnalysis.ProviderSlot{Name: "anthropic", Provider: provider})

	_, err := svc.Analyze(context.Background(), domainAnalysis.AnalyzeRequest{DocumentContent: soapNote, AnalysisType: ""})
	require.Error(t, err)

	var detailed pkgError.DetailedError
	require.ErrorAs(t, err, &detailed)
	assert.Equal(t, "VALIDATION_ERROR", detailed.ErrCode())
	assert.Equal(t, []string{"basic", "comprehensive", "batch", "complicated"}, detailed.Details()["valid_tiers"])
	assert.EqualValues(t, 0, provider.calls.Load())
}

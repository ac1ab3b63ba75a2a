package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/AzielCF/az-medical-mcp/core/config"
	domainAnalysis "github.com/AzielCF/az-medical-mcp/domains/analysis"
	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	"github.com/AzielCF/az-medical-mcp/validations"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	FallbackNotice = "primary provider unavailable, secondary used"

	hintTimeout   = "API timeout - consider using 'basic' or 'comprehensive' analysis for faster processing"
	hintRateLimit = "Rate limit exceeded - please try again in a few moments"
	hintAuth      = "API authentication failed - check environment variables"
)

// AnalysisOptions carries the process-wide settings of the dispatcher.
type AnalysisOptions struct {
	Timeout     time.Duration
	Environment string
}

type analysisService struct {
	chain   domainAnalysis.ProviderChain
	options AnalysisOptions
	now     func() time.Time
}

func NewAnalysisService(chain domainAnalysis.ProviderChain, options AnalysisOptions) domainAnalysis.IAnalysisUsecase {
	if options.Timeout <= 0 {
		options.Timeout = config.AnalysisTimeout
	}
	return &analysisService{chain: chain, options: options, now: time.Now}
}

func (service *analysisService) ProviderStatus() map[string]bool {
	return service.chain.Configured()
}

func (service *analysisService) Analyze(ctx context.Context, request domainAnalysis.AnalyzeRequest) (domainAnalysis.Result, error) {
	if err := validations.ValidateAnalyzeRequest(ctx, request); err != nil {
		return domainAnalysis.Result{}, err
	}

	tier, err := domainBilling.LookupTier(request.AnalysisType)
	if err != nil {
		return domainAnalysis.Result{}, err
	}

	selection, ok := service.chain.Select()
	if !ok {
		return domainAnalysis.Result{}, pkgError.WithDetails(
			pkgError.ConfigurationError("No AI providers configured"),
			map[string]any{
				"analysis_type": request.AnalysisType,
				"debug_info": map[string]any{
					"providers_configured": service.chain.Configured(),
					"environment":          service.options.Environment,
				},
			},
		)
	}

	systemPrompt, err := domainAnalysis.SystemPrompt(request.AnalysisType)
	if err != nil {
		return domainAnalysis.Result{}, err
	}

	provider := selection.Provider
	log := logrus.WithFields(logrus.Fields{
		"analysis_type": request.AnalysisType,
		"provider":      provider.Name(),
		"model":         provider.Model(),
	})
	if selection.FallbackUsed {
		log.Warnf("[ANALYSIS] %s is not configured, using %s", service.chain.Primary(), provider.Name())
	}

	callCtx, cancel := context.WithTimeout(ctx, service.options.Timeout)
	defer cancel()

	started := time.Now()
	response, err := provider.Complete(callCtx, domainAnalysis.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   domainAnalysis.UserPrompt(request.DocumentContent),
		MaxTokens:    domainAnalysis.MaxTokens(request.AnalysisType),
		Temperature:  domainAnalysis.Temperature,
	})
	elapsed := time.Since(started)
	if err != nil {
		log.WithError(err).Error("[ANALYSIS] Inference call failed")
		return domainAnalysis.Result{}, service.inferenceError(provider.Name(), request.AnalysisType, err)
	}

	result := domainAnalysis.Result{
		AnalysisID:            uuid.NewString(),
		AnalysisType:          request.AnalysisType,
		BillingInfo:           tier,
		Timestamp:             service.now(),
		Provider:              provider.Name(),
		ModelUsed:             provider.Model(),
		FallbackUsed:          selection.FallbackUsed,
		AIAnalysis:            response.Text,
		TokensUsed:            response.Usage,
		ProcessingTimeSeconds: math.Round(elapsed.Seconds()*100) / 100,
		AnalysisFeatures:      domainAnalysis.Features(request.AnalysisType),
	}
	if response.Model != "" {
		result.ModelUsed = response.Model
	}
	if result.TokensUsed.TotalTokens == 0 {
		result.TokensUsed.TotalTokens = result.TokensUsed.InputTokens + result.TokensUsed.OutputTokens
	}
	if request.PatientID != "" {
		patientID := request.PatientID
		result.PatientID = &patientID
	}
	if selection.FallbackUsed {
		result.ProviderNotice = FallbackNotice
	}
	if tier.Name == domainBilling.TierBatch {
		result.BatchInfo = &domainAnalysis.BatchInfo{
			DocumentsProcessed:  1,
			ProcessingCost:      tier.Price,
			EfficiencyOptimized: true,
		}
	}

	log.WithFields(logrus.Fields{
		"analysis_id":   result.AnalysisID,
		"total_tokens":  result.TokensUsed.TotalTokens,
		"elapsed_secs":  result.ProcessingTimeSeconds,
		"fallback_used": result.FallbackUsed,
	}).Info("[ANALYSIS] Document analyzed")

	return result, nil
}

func (service *analysisService) inferenceError(provider, analysisType string, err error) error {
	errorType, hint := classifyInferenceError(err)

	details := map[string]any{
		"provider":      provider,
		"error_type":    errorType,
		"analysis_type": analysisType,
		"timestamp":     service.now(),
		"environment":   service.options.Environment,
	}
	for name, configured := range service.chain.Configured() {
		details[name+"_available"] = configured
	}
	if hint != "" {
		details["fix_suggestion"] = hint
	}

	return pkgError.WithDetails(&pkgError.InferenceError{
		Provider:      provider,
		ErrorType:     errorType,
		Message:       err.Error(),
		FixSuggestion: hint,
		Err:           err,
	}, details)
}

// classifyInferenceError names the error type and picks a remediation hint by
// matching known substrings. Unmatched errors get no hint.
func classifyInferenceError(err error) (errorType, hint string) {
	errorType = strings.TrimPrefix(fmt.Sprintf("%T", err), "*")

	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "timed out"):
		hint = hintTimeout
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "429"):
		hint = hintRateLimit
	case strings.Contains(msg, "authentication"), strings.Contains(msg, "401"):
		hint = hintAuth
	}
	return errorType, hint
}

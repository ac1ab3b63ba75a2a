package usecase

import (
	"context"
	"time"

	domainAnalysis "github.com/AzielCF/az-medical-mcp/domains/analysis"
	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	domainPayment "github.com/AzielCF/az-medical-mcp/domains/payment"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	"github.com/AzielCF/az-medical-mcp/validations"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const errPaymentNotConfirmed = pkgError.PaymentRequiredError("Payment not confirmed or failed")

type paidAnalysisService struct {
	payments domainPayment.IPaymentUsecase
	analyzer domainAnalysis.IAnalysisUsecase
	now      func() time.Time
}

func NewPaidAnalysisService(payments domainPayment.IPaymentUsecase, analyzer domainAnalysis.IAnalysisUsecase) domainAnalysis.IPaidAnalysisUsecase {
	return &paidAnalysisService{payments: payments, analyzer: analyzer, now: time.Now}
}

// Process fails closed: unless the intent is confirmed and paid the analyzer is never called.
func (service *paidAnalysisService) Process(ctx context.Context, request domainAnalysis.PaidAnalysisRequest) (domainAnalysis.Result, error) {
	if err := validations.ValidateID("payment_intent_id", request.PaymentIntentID); err != nil {
		return domainAnalysis.Result{}, err
	}

	log := logrus.WithField("payment_intent_id", request.PaymentIntentID)

	confirmation, err := service.payments.ConfirmPayment(ctx, request.PaymentIntentID)
	if err != nil {
		log.WithError(err).Warn("[PAYMENT] Paid analysis rejected, confirmation failed")
		return domainAnalysis.Result{}, pkgError.WithDetails(errPaymentNotConfirmed, map[string]any{
			"payment_status": failureStatus(err),
		})
	}
	if !confirmation.Paid {
		log.WithField("status", confirmation.Status).Warn("[PAYMENT] Paid analysis rejected, intent not paid")
		return domainAnalysis.Result{}, pkgError.WithDetails(errPaymentNotConfirmed, map[string]any{
			"payment_status": confirmation,
		})
	}

	analysisType := confirmation.Metadata["analysis_type"]
	if analysisType == "" {
		analysisType = string(domainBilling.TierBasic)
	}

	result, err := service.analyzer.Analyze(ctx, domainAnalysis.AnalyzeRequest{
		DocumentContent: request.DocumentContent,
		AnalysisType:    analysisType,
		PatientID:       request.PatientID,
	})
	if err != nil {
		return domainAnalysis.Result{}, err
	}

	result.PaymentInfo = &domainAnalysis.PaymentInfo{
		PaymentConfirmed: true,
		PaymentIntentID:  request.PaymentIntentID,
		AmountPaid:       decimal.NewFromInt(confirmation.AmountReceived).Shift(-2).InexactFloat64(),
		Currency:         confirmation.Currency,
		ProcessedAt:      service.now(),
	}
	return result, nil
}

// failureStatus renders a confirmation error the way tools render failures.
func failureStatus(err error) map[string]any {
	status := map[string]any{"success": false, "error": err.Error()}
	if genericErr, ok := err.(pkgError.GenericError); ok {
		status["kind"] = genericErr.ErrCode()
	}
	return status
}

package usecase

import (
	"context"
	"testing"
	"time"

	domainAnalysis "github.com/AzielCF/az-medical-mcp/domains/analysis"
	domainPayment "github.com/AzielCF/az-medical-mcp/domains/payment"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_NotConfiguredIsUniform(t *testing.T) {
	svc := NewPaymentService(nil)
	ctx := context.Background()
	assert.False(t, svc.Configured())

	_, err := svc.CreateCustomer(ctx, domainPayment.CreateCustomerRequest{Email: "dr@clinic.test"})
	assert.Equal(t, errStripeNotConfigured, err)
	_, err = svc.CreatePaymentIntent(ctx, domainPayment.CreateIntentRequest{CustomerID: "cus_1", AnalysisType: "basic", DocumentCount: 1})
	assert.Equal(t, errStripeNotConfigured, err)
	_, err = svc.ConfirmPayment(ctx, "pi_1")
	assert.Equal(t, errStripeNotConfigured, err)
	_, err = svc.GetCustomerInfo(ctx, "cus_1")
	assert.Equal(t, errStripeNotConfigured, err)

	assert.Equal(t, "CONFIGURATION_ERROR", errStripeNotConfigured.ErrCode())
	assert.Equal(t, "Stripe not configured", errStripeNotConfigured.Error())
}

func TestPayment_CreateCustomerDefaultsDescription(t *testing.T) {
	gw := &fakeGateway{}
	resp, err := NewPaymentService(gw).CreateCustomer(context.Background(), domainPayment.CreateCustomerRequest{Email: "dr@clinic.test"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "cus_new", resp.CustomerID)
	assert.Equal(t, "Medical Analysis Customer - dr@clinic.test", gw.createdCustomer.Description)
}

func TestPayment_CreatePaymentIntent(t *testing.T) {
	gw := &fakeGateway{}
	resp, err := NewPaymentService(gw).CreatePaymentIntent(context.Background(), domainPayment.CreateIntentRequest{
		CustomerID:    "cus_1",
		AnalysisType:  "comprehensive",
		DocumentCount: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(150), resp.Amount)
	assert.Equal(t, "pi_new_secret", resp.ClientSecret)
	assert.Equal(t, "usd", gw.createdIntent.Currency)
	assert.Equal(t, map[string]string{
		"analysis_type":  "comprehensive",
		"document_count": "3",
		"service":        "medical_analysis",
	}, gw.createdIntent.Metadata)
	assert.Equal(t, "Medical Analysis - Full medical record analysis - detailed insights, recommendations x3", gw.createdIntent.Description)
}

func TestPayment_CreatePaymentIntentRejectsUnknownTier(t *testing.T) {
	gw := &fakeGateway{}
	_, err := NewPaymentService(gw).CreatePaymentIntent(context.Background(), domainPayment.CreateIntentRequest{
		CustomerID:    "cus_1",
		AnalysisType:  "deluxe",
		DocumentCount: 1,
	})
	var detailed pkgError.DetailedError
	require.ErrorAs(t, err, &detailed)
	assert.Equal(t, "VALIDATION_ERROR", detailed.ErrCode())
	assert.Empty(t, gw.createdIntent.CustomerID)
}

func TestAmountInCents(t *testing.T) {
	assert.Equal(t, int64(10), AmountInCents(0.10, 1))
	assert.Equal(t, int64(30), AmountInCents(0.10, 3))
	assert.Equal(t, int64(35), AmountInCents(0.05, 7))
	assert.Equal(t, int64(7500), AmountInCents(0.75, 100))
}

func TestPayment_ConfirmPayment(t *testing.T) {
	gw := &fakeGateway{intents: map[string]domainPayment.Intent{
		"pi_paid":    {ID: "pi_paid", Status: "succeeded", AmountReceived: 150, Currency: "usd", CustomerID: "cus_1"},
		"pi_pending": {ID: "pi_pending", Status: "requires_payment_method", Currency: "usd"},
	}}
	svc := NewPaymentService(gw)

	paid, err := svc.ConfirmPayment(context.Background(), "pi_paid")
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, int64(150), paid.AmountReceived)

	pending, err := svc.ConfirmPayment(context.Background(), "pi_pending")
	require.NoError(t, err)
	assert.False(t, pending.Paid)
}

func TestPayment_GatewayErrorPropagates(t *testing.T) {
	gw := &fakeGateway{err: &pkgError.GatewayError{Message: "No such payment_intent: 'pi_x'", Code: "resource_missing"}}
	_, err := NewPaymentService(gw).ConfirmPayment(context.Background(), "pi_x")

	var gwErr *pkgError.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "Stripe error: No such payment_intent: 'pi_x'", err.Error())
}

func TestPayment_GetCustomerInfo(t *testing.T) {
	gw := &fakeGateway{
		customers: map[string]domainPayment.Customer{"cus_1": {ID: "cus_1", Email: "dr@clinic.test", Name: "Dr. Who"}},
		intents:   map[string]domainPayment.Intent{"pi_1": {ID: "pi_1", Amount: 10, Status: "succeeded"}},
	}
	info, err := NewPaymentService(gw).GetCustomerInfo(context.Background(), "cus_1")
	require.NoError(t, err)

	assert.Equal(t, "Dr. Who", info.Name)
	require.Len(t, info.RecentPayments, 1)
	assert.Equal(t, "pi_1", info.RecentPayments[0].ID)
	assert.Equal(t, 10, gw.listLimit)
}

func TestPayment_SimulatePaymentSuccess(t *testing.T) {
	svc := NewPaymentService(nil)
	for _, id := range []string{"pi_123", "", "anything"} {
		sim := svc.SimulatePaymentSuccess(context.Background(), id)
		assert.True(t, sim.Success)
		assert.Equal(t, "succeeded", sim.Status)
		assert.Equal(t, "simulated", sim.AmountReceived)
		assert.True(t, sim.Simulation)
		assert.Equal(t, id, sim.PaymentIntentID)
	}
}

func TestPaidAnalysis_FailsClosedWhenUnpaid(t *testing.T) {
	gw := &fakeGateway{intents: map[string]domainPayment.Intent{
		"pi_pending": {ID: "pi_pending", Status: "requires_payment_method", Metadata: map[string]string{"analysis_type": "basic"}},
	}}
	analyzer := &fakeAnalyzer{}
	svc := NewPaidAnalysisService(NewPaymentService(gw), analyzer)

	_, err := svc.Process(context.Background(), domainAnalysis.PaidAnalysisRequest{PaymentIntentID: "pi_pending", DocumentContent: soapNote})
	require.Error(t, err)
	assert.Equal(t, 0, analyzer.calls)

	var detailed pkgError.DetailedError
	require.ErrorAs(t, err, &detailed)
	assert.Equal(t, "PAYMENT_REQUIRED", detailed.ErrCode())
	assert.Equal(t, "Payment not confirmed or failed", detailed.Error())
	status := detailed.Details()["payment_status"].(domainPayment.ConfirmResponse)
	assert.Equal(t, "requires_payment_method", status.Status)
}

func TestPaidAnalysis_FailsClosedOnConfirmationError(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	svc := NewPaidAnalysisService(NewPaymentService(nil), analyzer)

	_, err := svc.Process(context.Background(), domainAnalysis.PaidAnalysisRequest{PaymentIntentID: "pi_1", DocumentContent: soapNote})
	var detailed pkgError.DetailedError
	require.ErrorAs(t, err, &detailed)
	assert.Equal(t, "PAYMENT_REQUIRED", detailed.ErrCode())
	assert.Equal(t, map[string]any{"success": false, "error": "Stripe not configured", "kind": "CONFIGURATION_ERROR"}, detailed.Details()["payment_status"])
	assert.Equal(t, 0, analyzer.calls)
}

func TestPaidAnalysis_AttachesPaymentFields(t *testing.T) {
	gw := &fakeGateway{intents: map[string]domainPayment.Intent{
		"pi_paid": {ID: "pi_paid", Status: "succeeded", AmountReceived: 225, Currency: "usd", Metadata: map[string]string{"analysis_type": "complicated"}},
		"pi_bare": {ID: "pi_bare", Status: "succeeded", AmountReceived: 10, Currency: "usd", Metadata: map[string]string{}},
	}}
	analyzer := &fakeAnalyzer{result: domainAnalysis.Result{AnalysisID: "a-1"}}
	svc := NewPaidAnalysisService(NewPaymentService(gw), analyzer)

	result, err := svc.Process(context.Background(), domainAnalysis.PaidAnalysisRequest{PaymentIntentID: "pi_paid", DocumentContent: soapNote, PatientID: "patient_002"})
	require.NoError(t, err)

	assert.Equal(t, "complicated", analyzer.request.AnalysisType)
	assert.Equal(t, "patient_002", analyzer.request.PatientID)
	require.NotNil(t, result.PaymentInfo)
	assert.True(t, result.PaymentConfirmed)
	assert.Equal(t, "pi_paid", result.PaymentIntentID)
	assert.Equal(t, 2.25, result.AmountPaid)
	assert.Equal(t, "usd", result.PaymentInfo.Currency)
	assert.WithinDuration(t, time.Now(), result.ProcessedAt, time.Minute)

	_, err = svc.Process(context.Background(), domainAnalysis.PaidAnalysisRequest{PaymentIntentID: "pi_bare", DocumentContent: soapNote})
	require.NoError(t, err)
	assert.Equal(t, "basic", analyzer.request.AnalysisType)
}

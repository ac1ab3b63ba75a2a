package rest

import (
	"github.com/AzielCF/az-medical-mcp/domains/analysis"
	"github.com/AzielCF/az-medical-mcp/domains/billing"
	"github.com/AzielCF/az-medical-mcp/domains/patient"
	"github.com/gofiber/fiber/v2"
)

type Analysis struct {
	Service analysis.IAnalysisUsecase
	Billing billing.IBillingUsecase
	Patient patient.IPatientUsecase
}

func InitRestAnalysis(app fiber.Router, service analysis.IAnalysisUsecase, billingService billing.IBillingUsecase, patientService patient.IPatientUsecase) Analysis {
	handler := Analysis{Service: service, Billing: billingService, Patient: patientService}

	app.Post("/analyses", handler.Analyze)
	app.Post("/billing/calculate", handler.CalculateBilling)
	app.Get("/patients/:id/summary", handler.PatientSummary)

	return handler
}

func (h *Analysis) Analyze(c *fiber.Ctx) error {
	var request analysis.AnalyzeRequest
	if err := parseBody(c, &request); err != nil {
		return failure(c, err)
	}
	if request.AnalysisType == "" {
		request.AnalysisType = string(billing.TierBasic)
	}

	result, err := h.Service.Analyze(c.UserContext(), request)
	if err != nil {
		return failure(c, err)
	}
	return success(c, fiber.StatusOK, "Analysis completed", result)
}

func (h *Analysis) CalculateBilling(c *fiber.Ctx) error {
	var body struct {
		billing.CalculateRequest
		DocumentCount *int `json:"document_count"`
	}
	if err := parseBody(c, &body); err != nil {
		return failure(c, err)
	}
	request := body.CalculateRequest
	request.DocumentCount = documentCount(body.DocumentCount)

	quote, err := h.Billing.Calculate(c.UserContext(), request)
	if err != nil {
		return failure(c, err)
	}
	return success(c, fiber.StatusOK, "Billing calculated", quote)
}

func (h *Analysis) PatientSummary(c *fiber.Ctx) error {
	summary, err := h.Patient.Summary(c.UserContext(), c.Params("id"))
	if err != nil {
		return failure(c, err)
	}
	return success(c, fiber.StatusOK, "Patient summary generated", summary)
}

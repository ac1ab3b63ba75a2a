package rest

import (
	"github.com/AzielCF/az-medical-mcp/domains/analysis"
	"github.com/AzielCF/az-medical-mcp/domains/payment"
	"github.com/gofiber/fiber/v2"
)

type Payment struct {
	Service      payment.IPaymentUsecase
	PaidAnalysis analysis.IPaidAnalysisUsecase
}

func InitRestPayment(app fiber.Router, service payment.IPaymentUsecase, paidAnalysis analysis.IPaidAnalysisUsecase) Payment {
	handler := Payment{Service: service, PaidAnalysis: paidAnalysis}

	app.Post("/customers", handler.CreateCustomer)
	app.Get("/customers/:id", handler.GetCustomer)

	intents := app.Group("/payment-intents")
	intents.Post("/", handler.CreatePaymentIntent)
	intents.Get("/:id", handler.ConfirmPayment)
	intents.Post("/:id/analysis", handler.ProcessPaidAnalysis)
	intents.Post("/:id/simulate", handler.SimulatePayment)

	return handler
}

func (h *Payment) CreateCustomer(c *fiber.Ctx) error {
	var request payment.CreateCustomerRequest
	if err := parseBody(c, &request); err != nil {
		return failure(c, err)
	}

	response, err := h.Service.CreateCustomer(c.UserContext(), request)
	if err != nil {
		return failure(c, err)
	}
	return success(c, fiber.StatusCreated, "Customer created", response)
}

func (h *Payment) GetCustomer(c *fiber.Ctx) error {
	response, err := h.Service.GetCustomerInfo(c.UserContext(), c.Params("id"))
	if err != nil {
		return failure(c, err)
	}
	return success(c, fiber.StatusOK, "Customer retrieved", response)
}

func (h *Payment) CreatePaymentIntent(c *fiber.Ctx) error {
	var body struct {
		payment.CreateIntentRequest
		DocumentCount *int `json:"document_count"`
	}
	if err := parseBody(c, &body); err != nil {
		return failure(c, err)
	}
	request := body.CreateIntentRequest
	request.DocumentCount = documentCount(body.DocumentCount)

	response, err := h.Service.CreatePaymentIntent(c.UserContext(), request)
	if err != nil {
		return failure(c, err)
	}
	return success(c, fiber.StatusCreated, "Payment intent created", response)
}

func (h *Payment) ConfirmPayment(c *fiber.Ctx) error {
	response, err := h.Service.ConfirmPayment(c.UserContext(), c.Params("id"))
	if err != nil {
		return failure(c, err)
	}
	return success(c, fiber.StatusOK, "Payment status retrieved", response)
}

func (h *Payment) ProcessPaidAnalysis(c *fiber.Ctx) error {
	var request analysis.PaidAnalysisRequest
	if err := parseBody(c, &request); err != nil {
		return failure(c, err)
	}
	request.PaymentIntentID = c.Params("id")

	result, err := h.PaidAnalysis.Process(c.UserContext(), request)
	if err != nil {
		return failure(c, err)
	}
	return success(c, fiber.StatusOK, "Paid analysis completed", result)
}

func (h *Payment) SimulatePayment(c *fiber.Ctx) error {
	response := h.Service.SimulatePaymentSuccess(c.UserContext(), c.Params("id"))
	return success(c, fiber.StatusOK, "Payment simulated", response)
}

package mcp

import (
	"context"
	"fmt"

	domainHealth "github.com/AzielCF/az-medical-mcp/domains/health"
	domainPayment "github.com/AzielCF/az-medical-mcp/domains/payment"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type PaymentHandler struct {
	paymentService domainPayment.IPaymentUsecase
}

func InitMcpPayment(paymentService domainPayment.IPaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) AddPaymentTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(h.toolCreateCustomer(), h.handleCreateCustomer)
	mcpServer.AddTool(h.toolCreatePaymentIntent(), h.handleCreatePaymentIntent)
	mcpServer.AddTool(h.toolConfirmPayment(), h.handleConfirmPayment)
	mcpServer.AddTool(h.toolGetCustomerInfo(), h.handleGetCustomerInfo)
	mcpServer.AddTool(h.toolSimulatePaymentSuccess(), h.handleSimulatePaymentSuccess)
}

func (h *PaymentHandler) toolCreateCustomer() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolCreateCustomer,
		mcp.WithDescription("Create a new Stripe customer for billing."),
		mcp.WithTitleAnnotation("Create Customer"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("email",
			mcp.Description("Customer email address."),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Customer name."),
		),
		mcp.WithString("description",
			mcp.Description("Optional customer description."),
		),
	)
}

func (h *PaymentHandler) handleCreateCustomer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := request.RequireString("email")
	if err != nil {
		return argumentError(domainHealth.ToolCreateCustomer, err)
	}

	resp, err := h.paymentService.CreateCustomer(ctx, domainPayment.CreateCustomerRequest{
		Email:       email,
		Name:        request.GetString("name", ""),
		Description: request.GetString("description", ""),
	})
	if err != nil {
		return toolError(domainHealth.ToolCreateCustomer, err)
	}

	return mcp.NewToolResultStructured(resp, fmt.Sprintf("Customer %s created for %s", resp.CustomerID, resp.Email)), nil
}

func (h *PaymentHandler) toolCreatePaymentIntent() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolCreatePaymentIntent,
		mcp.WithDescription("Create a Stripe payment intent for medical analysis. The amount is the tier price times the document count."),
		mcp.WithTitleAnnotation("Create Payment Intent"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("customer_id",
			mcp.Description("Stripe customer ID."),
			mcp.Required(),
		),
		withAnalysisType(),
		withDocumentCount(),
		mcp.WithString("description",
			mcp.Description("Optional payment description."),
		),
	)
}

func (h *PaymentHandler) handleCreatePaymentIntent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customer_id")
	if err != nil {
		return argumentError(domainHealth.ToolCreatePaymentIntent, err)
	}

	resp, err := h.paymentService.CreatePaymentIntent(ctx, domainPayment.CreateIntentRequest{
		CustomerID:    customerID,
		AnalysisType:  request.GetString("analysis_type", defaultAnalysisType),
		DocumentCount: request.GetInt("document_count", 1),
		Description:   request.GetString("description", ""),
	})
	if err != nil {
		return toolError(domainHealth.ToolCreatePaymentIntent, err)
	}

	fallback := fmt.Sprintf("Payment intent %s created: %d %s (%s)", resp.PaymentIntentID, resp.Amount, resp.Currency, resp.Status)
	return mcp.NewToolResultStructured(resp, fallback), nil
}

func (h *PaymentHandler) toolConfirmPayment() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolConfirmPayment,
		mcp.WithDescription("Retrieve a payment intent and report whether it has been paid."),
		mcp.WithTitleAnnotation("Confirm Payment"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		withPaymentIntentID(),
	)
}

func (h *PaymentHandler) handleConfirmPayment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paymentIntentID, err := request.RequireString("payment_intent_id")
	if err != nil {
		return argumentError(domainHealth.ToolConfirmPayment, err)
	}

	resp, err := h.paymentService.ConfirmPayment(ctx, paymentIntentID)
	if err != nil {
		return toolError(domainHealth.ToolConfirmPayment, err)
	}

	return mcp.NewToolResultStructured(resp, fmt.Sprintf("Payment %s is %s (paid: %t)", resp.PaymentIntentID, resp.Status, resp.Paid)), nil
}

func (h *PaymentHandler) toolGetCustomerInfo() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolGetCustomerInfo,
		mcp.WithDescription("Retrieve Stripe customer information and the 10 most recent payments."),
		mcp.WithTitleAnnotation("Get Customer Info"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("customer_id",
			mcp.Description("Stripe customer ID."),
			mcp.Required(),
		),
	)
}

func (h *PaymentHandler) handleGetCustomerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customer_id")
	if err != nil {
		return argumentError(domainHealth.ToolGetCustomerInfo, err)
	}

	resp, err := h.paymentService.GetCustomerInfo(ctx, customerID)
	if err != nil {
		return toolError(domainHealth.ToolGetCustomerInfo, err)
	}

	return mcp.NewToolResultStructured(resp, fmt.Sprintf("Customer %s has %d recent payments", resp.CustomerID, len(resp.RecentPayments))), nil
}

func (h *PaymentHandler) toolSimulatePaymentSuccess() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolSimulatePaymentSuccess,
		mcp.WithDescription("Simulate a successful payment for testing purposes. Never contacts Stripe."),
		mcp.WithTitleAnnotation("Simulate Payment Success"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		withPaymentIntentID(),
	)
}

func (h *PaymentHandler) handleSimulatePaymentSuccess(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp := h.paymentService.SimulatePaymentSuccess(ctx, request.GetString("payment_intent_id", ""))
	return mcp.NewToolResultStructured(resp, resp.Message), nil
}

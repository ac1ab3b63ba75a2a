package mcp

import (
	"context"
	"fmt"

	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	domainCatalog "github.com/AzielCF/az-medical-mcp/domains/catalog"
	domainHealth "github.com/AzielCF/az-medical-mcp/domains/health"
	domainPatient "github.com/AzielCF/az-medical-mcp/domains/patient"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// QueryHandler serves the tools that never leave the process.
type QueryHandler struct {
	patientService domainPatient.IPatientUsecase
	billingService domainBilling.IBillingUsecase
	catalogService domainCatalog.ICatalogUsecase
	healthService  domainHealth.IHealthUsecase
}

func InitMcpQuery(
	patientService domainPatient.IPatientUsecase,
	billingService domainBilling.IBillingUsecase,
	catalogService domainCatalog.ICatalogUsecase,
	healthService domainHealth.IHealthUsecase,
) *QueryHandler {
	return &QueryHandler{
		patientService: patientService,
		billingService: billingService,
		catalogService: catalogService,
		healthService:  healthService,
	}
}

func (h *QueryHandler) AddQueryTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(h.toolPatientSummary(), h.handlePatientSummary)
	mcpServer.AddTool(h.toolCalculateBilling(), h.handleCalculateBilling)
	mcpServer.AddTool(h.toolAvailableServices(), h.handleAvailableServices)
	mcpServer.AddTool(h.toolHealthCheck(), h.handleHealthCheck)
}

func (h *QueryHandler) toolPatientSummary() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolGetPatientSummary,
		mcp.WithDescription("Retrieve patient summary information: demographics, conditions and recent vitals."),
		mcp.WithTitleAnnotation("Get Patient Summary"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		withPatientID(true),
	)
}

func (h *QueryHandler) handlePatientSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	patientID, err := request.RequireString("patient_id")
	if err != nil {
		return argumentError(domainHealth.ToolGetPatientSummary, err)
	}

	summary, err := h.patientService.Summary(ctx, patientID)
	if err != nil {
		return toolError(domainHealth.ToolGetPatientSummary, err)
	}

	fallback := fmt.Sprintf("Patient %s: %d conditions, %d active medications, last visit %s",
		summary.PatientID, len(summary.CurrentConditions), summary.ActiveMedications, summary.LastVisit)
	return mcp.NewToolResultStructured(summary, fallback), nil
}

func (h *QueryHandler) toolCalculateBilling() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolCalculateBilling,
		mcp.WithDescription("Calculate itemized billing for medical analysis services, including volume and customer tier discounts."),
		mcp.WithTitleAnnotation("Calculate Billing"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("analysis_type",
			mcp.Description("Analysis tier: basic, comprehensive, batch or complicated."),
			mcp.Required(),
		),
		withDocumentCount(),
		mcp.WithString("customer_tier",
			mcp.Description("Customer tier for discounts: standard, premium or enterprise."),
			mcp.DefaultString(string(domainBilling.CustomerStandard)),
		),
	)
}

func (h *QueryHandler) handleCalculateBilling(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analysisType, err := request.RequireString("analysis_type")
	if err != nil {
		return argumentError(domainHealth.ToolCalculateBilling, err)
	}

	quote, err := h.billingService.Calculate(ctx, domainBilling.CalculateRequest{
		AnalysisType:  analysisType,
		DocumentCount: request.GetInt("document_count", 1),
		CustomerTier:  request.GetString("customer_tier", string(domainBilling.CustomerStandard)),
	})
	if err != nil {
		return toolError(domainHealth.ToolCalculateBilling, err)
	}

	fallback := fmt.Sprintf("%d x %s: %.2f %s", quote.DocumentCount, quote.AnalysisType, quote.FinalTotal, quote.Currency)
	return mcp.NewToolResultStructured(quote, fallback), nil
}

func (h *QueryHandler) toolAvailableServices() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolGetAvailableServices,
		mcp.WithDescription("Get the service catalog with pricing, features per tier and sample usage."),
		mcp.WithTitleAnnotation("Available Services"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

func (h *QueryHandler) handleAvailableServices(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	services := h.catalogService.Services(ctx)
	return mcp.NewToolResultStructured(services, services.ServiceCatalog.Description), nil
}

func (h *QueryHandler) toolHealthCheck() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolHealthCheck,
		mcp.WithDescription("Service health status, configured external APIs and tool inventory."),
		mcp.WithTitleAnnotation("Health Check"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

func (h *QueryHandler) handleHealthCheck(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report := h.healthService.Check(ctx)
	return mcp.NewToolResultStructured(report, fmt.Sprintf("%s: %s", report.Service, report.Status)), nil
}

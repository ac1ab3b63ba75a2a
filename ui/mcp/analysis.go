package mcp

import (
	"context"
	"fmt"

	domainAnalysis "github.com/AzielCF/az-medical-mcp/domains/analysis"
	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	domainHealth "github.com/AzielCF/az-medical-mcp/domains/health"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const defaultAnalysisType = string(domainBilling.TierBasic)

type AnalysisHandler struct {
	analysisService     domainAnalysis.IAnalysisUsecase
	paidAnalysisService domainAnalysis.IPaidAnalysisUsecase
}

func InitMcpAnalysis(analysisService domainAnalysis.IAnalysisUsecase, paidAnalysisService domainAnalysis.IPaidAnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService:     analysisService,
		paidAnalysisService: paidAnalysisService,
	}
}

func (h *AnalysisHandler) AddAnalysisTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(h.toolAnalyzeDocument(), h.handleAnalyzeDocument)
	mcpServer.AddTool(h.toolProcessPaidAnalysis(), h.handleProcessPaidAnalysis)
}

func (h *AnalysisHandler) toolAnalyzeDocument() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolAnalyzeMedicalDocument,
		mcp.WithDescription("Analyze medical document text (SOAP notes, lab results, discharge summaries) with an AI model. The tier selects depth and price."),
		mcp.WithTitleAnnotation("Analyze Medical Document"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
		withDocumentContent(),
		withAnalysisType(),
		withPatientID(false),
	)
}

func (h *AnalysisHandler) handleAnalyzeDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document, err := request.RequireString("document_content")
	if err != nil {
		return argumentError(domainHealth.ToolAnalyzeMedicalDocument, err)
	}

	result, err := h.analysisService.Analyze(ctx, domainAnalysis.AnalyzeRequest{
		DocumentContent: document,
		AnalysisType:    request.GetString("analysis_type", defaultAnalysisType),
		PatientID:       request.GetString("patient_id", ""),
	})
	if err != nil {
		return toolError(domainHealth.ToolAnalyzeMedicalDocument, err)
	}

	return mcp.NewToolResultStructured(result, analysisSummary(result)), nil
}

func (h *AnalysisHandler) toolProcessPaidAnalysis() mcp.Tool {
	return mcp.NewTool(
		domainHealth.ToolProcessPaidAnalysis,
		mcp.WithDescription("Run a medical analysis after confirming its payment intent. The analysis tier is taken from the payment metadata."),
		mcp.WithTitleAnnotation("Process Paid Analysis"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
		withPaymentIntentID(),
		withDocumentContent(),
		withPatientID(false),
	)
}

func (h *AnalysisHandler) handleProcessPaidAnalysis(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paymentIntentID, err := request.RequireString("payment_intent_id")
	if err != nil {
		return argumentError(domainHealth.ToolProcessPaidAnalysis, err)
	}
	document, err := request.RequireString("document_content")
	if err != nil {
		return argumentError(domainHealth.ToolProcessPaidAnalysis, err)
	}

	result, err := h.paidAnalysisService.Process(ctx, domainAnalysis.PaidAnalysisRequest{
		PaymentIntentID: paymentIntentID,
		DocumentContent: document,
		PatientID:       request.GetString("patient_id", ""),
	})
	if err != nil {
		return toolError(domainHealth.ToolProcessPaidAnalysis, err)
	}

	return mcp.NewToolResultStructured(result, analysisSummary(result)), nil
}

func analysisSummary(result domainAnalysis.Result) string {
	summary := fmt.Sprintf("%s analysis %s by %s (%d tokens, %.2fs)",
		result.AnalysisType, result.AnalysisID, result.ModelUsed, result.TokensUsed.TotalTokens, result.ProcessingTimeSeconds)
	if result.ProviderNotice != "" {
		summary += "; " + result.ProviderNotice
	}
	return summary
}

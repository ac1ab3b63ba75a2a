package mcp

import (
	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	"github.com/mark3labs/mcp-go/mcp"
)

// Shared tool arguments.

func withAnalysisType() mcp.ToolOption {
	return mcp.WithString("analysis_type",
		mcp.Description("Analysis tier: basic, comprehensive, batch or complicated."),
		mcp.Enum(domainBilling.TierNames()...),
		mcp.DefaultString(defaultAnalysisType),
	)
}

func withDocumentCount() mcp.ToolOption {
	return mcp.WithNumber("document_count",
		mcp.Description("Number of documents to process."),
		mcp.Min(1),
		mcp.DefaultNumber(1),
	)
}

func withDocumentContent() mcp.ToolOption {
	return mcp.WithString("document_content",
		mcp.Description("Raw medical document text (SOAP notes, lab results, etc.)."),
		mcp.Required(),
	)
}

func withPaymentIntentID() mcp.ToolOption {
	return mcp.WithString("payment_intent_id",
		mcp.Description("Stripe payment intent ID."),
		mcp.Required(),
	)
}

func withPatientID(required bool) mcp.ToolOption {
	opts := []mcp.PropertyOption{mcp.Description("Patient identifier.")}
	if required {
		opts = append(opts, mcp.Required())
	}
	return mcp.WithString("patient_id", opts...)
}

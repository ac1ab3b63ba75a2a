package validations

import (
	"context"

	domainAnalysis "github.com/AzielCF/az-medical-mcp/domains/analysis"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateAnalyzeRequest checks the request shape. The tier is resolved
// against the catalog by the caller so the error can list valid tiers.
func ValidateAnalyzeRequest(ctx context.Context, request domainAnalysis.AnalyzeRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.DocumentContent, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

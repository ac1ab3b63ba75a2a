package validations

import (
	"context"

	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateCalculateBilling checks the request shape. The tier itself is
// resolved against the catalog by the caller so the error can list valid tiers.
func ValidateCalculateBilling(ctx context.Context, request domainBilling.CalculateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.DocumentCount, documentCountRules...),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

// Min skips zero values, so Required rejects an explicit 0.
var documentCountRules = []validation.Rule{
	validation.Required.Error("must be no less than 1"),
	validation.Min(1),
}

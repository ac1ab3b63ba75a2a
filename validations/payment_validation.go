package validations

import (
	"context"
	"strings"

	domainPayment "github.com/AzielCF/az-medical-mcp/domains/payment"
	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

func ValidateCreateCustomer(ctx context.Context, request domainPayment.CreateCustomerRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Email, validation.Required, is.EmailFormat),
		validation.Field(&request.Name, validation.Length(0, 256)),
		validation.Field(&request.Description, validation.Length(0, 350)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreatePaymentIntent(ctx context.Context, request domainPayment.CreateIntentRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.CustomerID, validation.Required),
		validation.Field(&request.DocumentCount, documentCountRules...),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

// ValidateID rejects a blank identifier, naming field in the message.
func ValidateID(field, value string) error {
	if err := validation.Validate(strings.TrimSpace(value), validation.Required); err != nil {
		return pkgError.ValidationError(field + ": " + err.Error() + ".")
	}
	return nil
}

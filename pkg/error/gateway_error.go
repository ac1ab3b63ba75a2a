package error

import (
	"fmt"
	"net/http"
)

// GatewayError wraps a rejection or transport failure from the billing provider.
type GatewayError struct {
	Message string
	Code    string
	Status  int
	Err     error
}

func (err *GatewayError) Error() string {
	return fmt.Sprintf("Stripe error: %s", err.Message)
}

func (err *GatewayError) ErrCode() string {
	return "GATEWAY_ERROR"
}

func (err *GatewayError) StatusCode() int {
	return http.StatusBadGateway
}

func (err *GatewayError) Unwrap() error {
	return err.Err
}

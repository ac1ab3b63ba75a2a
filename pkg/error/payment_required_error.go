package error

import "net/http"

type PaymentRequiredError string

func (err PaymentRequiredError) Error() string {
	return string(err)
}

func (err PaymentRequiredError) ErrCode() string {
	return "PAYMENT_REQUIRED"
}

func (err PaymentRequiredError) StatusCode() int {
	return http.StatusPaymentRequired
}

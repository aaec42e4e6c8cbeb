package models

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotFoundError reports an absent booking/payment/target, or an ownership
// mismatch deliberately reported as absence.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError reports an illegal state transition, an illegal deletion, a
// malformed or unsupported discriminator kind, or a duplicate unique key.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PaymentAPIError reports a non-success verification outcome from the payment
// gateway.
type PaymentAPIError struct {
	Message string
}

func (e *PaymentAPIError) Error() string { return e.Message }

// ErrorStatusCode maps a taxonomy error to its HTTP status. Unknown errors are
// internal server errors.
func ErrorStatusCode(err error) int {
	var notFound *NotFoundError
	var validation *ValidationError
	var paymentAPI *PaymentAPIError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &paymentAPI):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// IsDuplicateKey reports whether err is a unique-index violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

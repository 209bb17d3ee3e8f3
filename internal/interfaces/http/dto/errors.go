package dto

import (
	"net/http"

	"github.com/glassshop/backend/internal/domain/shared"
)

// HTTP-facing error codes not produced by the domain layer
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Business-rule rejections map to 422; conflicts with existing state to 409.
var errorCodeHTTPStatus = map[string]int{
	shared.CodeNotFound:             http.StatusNotFound,
	shared.CodeAlreadyExists:        http.StatusConflict,
	shared.CodeValidation:           http.StatusBadRequest,
	shared.CodeConcurrencyConflict:  http.StatusConflict,
	shared.CodeInvalidState:         http.StatusUnprocessableEntity,
	shared.CodeRateNotFound:         http.StatusUnprocessableEntity,
	shared.CodeRateOverlap:          http.StatusConflict,
	shared.CodeManualPriceRequired:  http.StatusUnprocessableEntity,
	shared.CodeUnrecognizedStyle:    http.StatusUnprocessableEntity,
	shared.CodeOverpayment:          http.StatusUnprocessableEntity,
	shared.CodeCashPaymentShortfall: http.StatusUnprocessableEntity,
	shared.CodeBalanceInconsistent:  http.StatusConflict,

	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes for business-rule violations. Handlers map these to HTTP
// statuses; everything except BALANCE_INCONSISTENT aborts the operation.
const (
	CodeNotFound             = "NOT_FOUND"
	CodeAlreadyExists        = "ALREADY_EXISTS"
	CodeValidation           = "VALIDATION_ERROR"
	CodeConcurrencyConflict  = "CONCURRENCY_CONFLICT"
	CodeInvalidState         = "INVALID_STATE"
	CodeRateNotFound         = "RATE_NOT_FOUND"
	CodeRateOverlap          = "RATE_OVERLAP"
	CodeManualPriceRequired  = "MANUAL_PRICE_REQUIRED"
	CodeUnrecognizedStyle    = "UNRECOGNIZED_STYLE"
	CodeOverpayment          = "OVERPAYMENT"
	CodeCashPaymentShortfall = "CASH_PAYMENT_SHORTFALL"
	CodeBalanceInconsistent  = "BALANCE_INCONSISTENT"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists       = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput        = NewDomainError(CodeValidation, "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError(CodeConcurrencyConflict, "Resource was modified by another process")
	ErrInvalidState        = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
)

// NewValidationError creates a DomainError carrying the VALIDATION_ERROR code
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

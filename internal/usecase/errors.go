package usecase

// Error codes for expected outcomes. Handlers translate these to HTTP
// statuses; messages are safe to show to the caller as-is.
const (
	CodeAuthRequired = "AUTH_REQUIRED"
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeDuplicate    = "DUPLICATE_LEAD"
	CodeInvalidCSV   = "INVALID_CSV"
	CodeHeader       = "HEADER_ERROR"
	CodeRowLimit     = "ROW_LIMIT_EXCEEDED"
	CodeStorage      = "STORAGE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError covers unexpected storage failures. The full cause is logged
// server-side; the message here is the generic, non-leaking one.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

package usecase

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
)

// DomainError is a business-rule failure a caller can act on. Anything
// that is not a DomainError is surfaced as a generic internal error.
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

func validationError(msg string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: msg}
}

func notFoundError(msg string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: msg}
}

func conflictError(msg string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: msg}
}

package usecase

// Error codes surfaced to callers.
const (
	CodeLeadOptOut   = "lead_opt_out"
	CodeLeadNotFound = "lead_not_found"
	CodeStorage      = "storage_error"
	CodeCompletion   = "completion_error"
)

// DomainError is a business-rule rejection. Handlers map it to a 4xx.
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

// TechnicalError is a collaborator failure (storage, text-completion).
// Handlers map it to a 500. Not retried, not recovered locally.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func storageError(err error) *TechnicalError {
	return &TechnicalError{Code: CodeStorage, Message: "storage failure: " + err.Error(), Err: err}
}

func completionError(err error) *TechnicalError {
	return &TechnicalError{Code: CodeCompletion, Message: "text-completion failure: " + err.Error(), Err: err}
}

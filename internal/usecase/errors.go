package usecase

// Códigos de erro de negócio expostos aos handlers.
const (
	CodeInvalidCPFFormat   = "INVALID_CPF_FORMAT"
	CodeLookupFailed       = "LOOKUP_FAILED"
	CodeMissingCredentials = "MISSING_CREDENTIALS"
	CodeMissingBaseURL     = "MISSING_BASE_URL"
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

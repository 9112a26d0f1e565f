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

// Is reports whether target is a DomainError with the same code, so that
// errors.Is matches sentinels regardless of message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Constraint codes carried by ConstraintError
const (
	CodeAlreadyExists       = "ALREADY_EXISTS"
	CodeForeignKeyViolation = "FOREIGN_KEY_VIOLATION"
	CodeConstraint          = "CONSTRAINT_VIOLATION"
)

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrHasReferences = NewDomainError("HAS_REFERENCES", "Resource is still referenced by other records")
)

// ConstraintError reports a uniqueness or referential constraint rejected by
// the storage engine. The message is the engine's own text.
type ConstraintError struct {
	Code string
	Err  error
}

// Error implements the error interface
func (e *ConstraintError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the storage error
func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// NewConstraintError wraps a storage error with its constraint code
func NewConstraintError(code string, err error) *ConstraintError {
	return &ConstraintError{Code: code, Err: err}
}

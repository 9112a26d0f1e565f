package invoker

import (
	"fmt"
	"strings"

	"github.com/pwms/backend/internal/domain/logistics"
)

// MissingFieldsError reports required parameters absent from the input
type MissingFieldsError struct {
	Operation string
	Fields    []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Operation, strings.Join(e.Fields, ", "))
}

// InvalidFieldTypeError reports a value that could not be coerced
type InvalidFieldTypeError struct {
	Field    string
	Expected ScalarType
	Value    string
	Err      error
}

func (e *InvalidFieldTypeError) Error() string {
	return fmt.Sprintf("invalid value for field %q: expected %s, got %q", e.Field, e.Expected, e.Value)
}

// Unwrap returns the conversion error
func (e *InvalidFieldTypeError) Unwrap() error {
	return e.Err
}

// UnsupportedOperationError reports a kind with no registered create operation
type UnsupportedOperationError struct {
	Kind string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("no create operation registered for %s", e.Kind)
}

func unsupported(kind logistics.Kind) *UnsupportedOperationError {
	return &UnsupportedOperationError{Kind: kind.String()}
}

// Package invoker turns free-text field input into typed operation calls.
package invoker

import (
	"context"
)

// Operation is a named callable with a declared parameter signature
type Operation[R any] struct {
	Name   string
	Params []Param
	Fn     func(ctx context.Context, args Args) (R, error)
}

// Invoke checks that every required parameter is present, coerces each
// supplied value to its declared type and calls the operation.
//
// All missing required names are reported together. Coercion stops at the
// first bad field in declaration order, before the operation runs. Empty
// strings for optional parameters become null. Undeclared fields are ignored.
func Invoke[R any](ctx context.Context, op Operation[R], fields map[string]string) (R, error) {
	var zero R

	var missing []string
	for _, p := range op.Params {
		if !p.Required {
			continue
		}
		if _, ok := fields[p.Name]; !ok {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return zero, &MissingFieldsError{Operation: op.Name, Fields: missing}
	}

	args := make(Args, len(op.Params))
	for _, p := range op.Params {
		raw, ok := fields[p.Name]
		if !ok {
			continue
		}
		v, err := p.coerce(raw)
		if err != nil {
			return zero, &InvalidFieldTypeError{Field: p.Name, Expected: p.Type, Value: raw, Err: err}
		}
		args[p.Name] = v
	}

	return op.Fn(ctx, args)
}

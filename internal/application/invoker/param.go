package invoker

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ScalarType is the declared type of an operation parameter
type ScalarType string

const (
	TypeInteger ScalarType = "integer"
	TypeFloat   ScalarType = "float"
	TypeString  ScalarType = "string"
	TypeBoolean ScalarType = "boolean"
)

// Param declares one named parameter of an operation
type Param struct {
	Name     string     `json:"name"`
	Type     ScalarType `json:"type"`
	Required bool       `json:"required"`
}

// Required declares a parameter with no default
func Required(name string, typ ScalarType) Param {
	return Param{Name: name, Type: typ, Required: true}
}

// Optional declares a nullable parameter
func Optional(name string, typ ScalarType) Param {
	return Param{Name: name, Type: typ}
}

// coerce converts raw to the declared type
func (p Param) coerce(raw string) (any, error) {
	if !p.Required && raw == "" {
		return nil, nil
	}
	switch p.Type {
	case TypeString:
		return raw, nil
	case TypeInteger:
		return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	case TypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%q is not a finite number", raw)
		}
		return f, nil
	case TypeBoolean:
		return parseBool(raw)
	default:
		return nil, fmt.Errorf("unsupported parameter type %q", p.Type)
	}
}

func parseBool(raw string) (bool, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(s)
}

// Args holds coerced arguments keyed by parameter name.
// A nil value is the null sentinel of an optional parameter.
type Args map[string]any

// Has reports whether the argument was supplied, null included
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// IsNull reports whether the argument is absent or null
func (a Args) IsNull(name string) bool {
	return a[name] == nil
}

// Int returns an integer argument, zero when absent or null
func (a Args) Int(name string) int64 {
	v, _ := a[name].(int64)
	return v
}

// Float returns a float argument, zero when absent or null
func (a Args) Float(name string) float64 {
	v, _ := a[name].(float64)
	return v
}

// String returns a string argument, empty when absent or null
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Bool returns a boolean argument, false when absent or null
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// OptInt returns an integer argument or nil when absent or null
func (a Args) OptInt(name string) *int64 {
	v, ok := a[name].(int64)
	if !ok {
		return nil
	}
	return &v
}

// OptString returns a string argument or nil when absent or null
func (a Args) OptString(name string) *string {
	v, ok := a[name].(string)
	if !ok {
		return nil
	}
	return &v
}

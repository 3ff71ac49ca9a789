package schema

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"station-generator/utils"
)

// Error is a validation failure with a stable machine-readable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func errf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// errorCode extracts the diagnostic code from a validator error.
func errorCode(err error) string {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Code
	}

	return "invalid_value"
}

// String accepts any string value.
func String() Validator {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errf("wrong_type", "expected a string, got %T", v)
		}

		return s, nil
	}
}

// NonEmptyString accepts any non-empty string value.
func NonEmptyString() Validator {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errf("wrong_type", "expected a string, got %T", v)
		}

		if s == "" {
			return nil, errf("invalid_value", "string must not be empty")
		}

		return s, nil
	}
}

// Boolean accepts a boolean value.
func Boolean() Validator {
	return func(v any) (any, error) {
		b, ok := v.(bool)
		if !ok {
			return nil, errf("wrong_type", "expected a boolean, got %T", v)
		}

		return b, nil
	}
}

// Int accepts an integer value. YAML decoding may produce int, int64 or
// uint64 depending on magnitude; all are normalized to int.
func Int() Validator {
	return func(v any) (any, error) {
		return toInt(v)
	}
}

// IntRange accepts an integer in the inclusive range [min, max].
func IntRange(min, max int) Validator {
	return func(v any) (any, error) {
		n, err := toInt(v)
		if err != nil {
			return nil, err
		}

		if !utils.IsInRange(min, n, max) {
			return nil, errf("out_of_range", "value must be between %d and %d, got %d", min, max, n)
		}

		return n, nil
	}
}

// PositiveInt accepts an integer greater than zero.
func PositiveInt() Validator {
	return func(v any) (any, error) {
		n, err := toInt(v)
		if err != nil {
			return nil, err
		}

		if n <= 0 {
			return nil, errf("out_of_range", "value must be positive, got %d", n)
		}

		return n, nil
	}
}

// Float accepts a floating-point value; integers are widened.
func Float() Validator {
	return func(v any) (any, error) {
		return toFloat(v)
	}
}

// FloatRange accepts a float in the inclusive range [min, max].
func FloatRange(min, max float64) Validator {
	return func(v any) (any, error) {
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}

		if !utils.IsInRange(min, f, max) {
			return nil, errf("out_of_range", "value must be between %v and %v, got %v", min, max, f)
		}

		return f, nil
	}
}

// Ident accepts a snake_case identifier: [a-z_][a-z0-9_]*.
func Ident() Validator {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errf("wrong_type", "expected an identifier, got %T", v)
		}

		if !isIdent(s) {
			return nil, errf("invalid_value", "%q is not a valid identifier (lowercase letters, digits and underscores)", s)
		}

		return s, nil
	}
}

// UseID accepts a reference to a previously declared identifier.
// Resolution against the object table happens during code generation.
func UseID() Validator {
	return Ident()
}

// Icon accepts an icon reference of the form "set:name", e.g. "mdi:weather-windy".
func Icon() Validator {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errf("wrong_type", "expected an icon string, got %T", v)
		}

		set, name, found := strings.Cut(s, ":")
		if !found || set == "" || name == "" {
			return nil, errf("invalid_value", "icon %q must be of the form \"set:name\"", s)
		}

		return s, nil
	}
}

// OneOf accepts one of a fixed set of string values.
func OneOf(values ...string) Validator {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errf("wrong_type", "expected a string, got %T", v)
		}

		for _, allowed := range values {
			if s == allowed {
				return s, nil
			}
		}

		return nil, errf("invalid_value", "%q is not one of %s", s, strings.Join(values, ", "))
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, errf("out_of_range", "integer %d overflows", n)
		}

		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, errf("out_of_range", "integer %d overflows", n)
		}

		return int(n), nil
	default:
		return 0, errf("wrong_type", "expected an integer, got %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, errf("wrong_type", "expected a number, got %T", v)
	}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

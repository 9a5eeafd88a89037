package errors

import "strings"

// Validation error types.
const (
	TypeMissing     = "missing"
	TypeStringType  = "string_type"
	TypeDictType    = "dict_type"
	TypeJSONInvalid = "json_invalid"
)

// FieldError describes one failing input location.
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// ValidationError reports request-shape failures. It is answered with 422.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError creates a ValidationError from the given details.
func NewValidationError(details ...FieldError) *ValidationError {
	return &ValidationError{Details: details}
}

// BodyField builds a FieldError located at body.<field>.
func BodyField(field, typ, msg string) FieldError {
	return FieldError{Loc: []any{"body", field}, Msg: msg, Type: typ}
}

// Body builds a FieldError located at the body itself.
func Body(typ, msg string) FieldError {
	return FieldError{Loc: []any{"body"}, Msg: msg, Type: typ}
}

func (f FieldError) String() string {
	locs := make([]string, 0, len(f.Loc))
	for _, l := range f.Loc {
		switch v := l.(type) {
		case string:
			locs = append(locs, v)
		default:
			locs = append(locs, "?")
		}
	}
	return strings.Join(locs, ".") + ": " + f.Msg
}

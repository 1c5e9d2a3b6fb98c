package service

import "errors"

// ErrNotFound is returned by every service when the identifier matches no
// row. The handler layer composes the kind-specific message.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected payload: a missing required field or a
// value outside its allowed set. Handlers map it to 400; nothing is written
// to the store before it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// stringField checks that an optional enum-valued field in a partial update
// is a string from the allowed set.
func stringField(fields map[string]any, key string, allowed ...string) bool {
	v, ok := fields[key]
	if !ok {
		return true
	}
	s, ok := v.(string)
	return ok && oneOf(s, allowed...)
}

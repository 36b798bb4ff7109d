package chat

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a value passed to an attach-style call that is
// neither the expected typed entity nor raw key-value data.
var ErrInvalidInput = errors.New("invalid input")

// stringValue reads a string under key from raw entity data.
func stringValue(data map[string]any, key string) (string, bool) {
	v, ok := data[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// boolValue reads a bool under key from raw entity data.
func boolValue(data map[string]any, key string) (bool, bool) {
	v, ok := data[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// stringList converts a raw value into a list of strings. JSON decoding
// yields []any, hand-built data tends to be []string; both are accepted.
func stringList(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: list element %T, want string", ErrInvalidInput, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T, want a list of strings", ErrInvalidInput, v)
	}
}

package room

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidRecord is wrapped by every ValidationError.
var ErrInvalidRecord = errors.New("invalid room record")

// ValidationError describes why a record was rejected. Either the field set is wrong
// (Missing/Unexpected) or a single field holds an unusable value (Field/Reason).
type ValidationError struct {
	Missing    []string `json:"missing,omitempty"`
	Unexpected []string `json:"unexpected,omitempty"`
	Field      string   `json:"field,omitempty"`
	Reason     string   `json:"reason,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s %s", ErrInvalidRecord, e.Field, e.Reason)
	}

	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected "+strings.Join(e.Unexpected, ", "))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRecord, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

// Validate checks that fields holds exactly the required field set. Names are
// case-sensitive and order does not matter.
func Validate(fields Fields) error {
	var missing, unexpected []string

	for _, name := range RequiredFields {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}

	required := make(map[string]struct{}, len(RequiredFields))
	for _, name := range RequiredFields {
		required[name] = struct{}{}
	}
	for name := range fields {
		if _, ok := required[name]; !ok {
			unexpected = append(unexpected, name)
		}
	}

	if len(missing) == 0 && len(unexpected) == 0 {
		return nil
	}

	sort.Strings(unexpected)
	return &ValidationError{Missing: missing, Unexpected: unexpected}
}

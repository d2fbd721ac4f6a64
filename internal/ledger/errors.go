package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("there is no expense with this id")
	ErrNotConfirmed      = errors.New("deleting an expense must be confirmed")
	ErrRemoteUnavailable = errors.New("this expense is stored remotely, but no remote store is configured")
)

// ValidationError maps form fields to the problem with their value.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}

	return "invalid expense: " + strings.Join(parts, ", ")
}

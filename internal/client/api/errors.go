package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnavailable means the server could not be reached at all
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers 401/403 responses: missing, invalid or
	// expired credentials, or insufficient role.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers 404 responses.
	ErrNotFound = errors.New("not found")
)

// Error is a structured non-2xx response. Detail carries the server's
// {"detail": ...} message when present. Fields carries DRF-style
// field-keyed validation messages ({"field": ["msg", ...]}) verbatim so
// callers can render them per field. At most one of the two is usually
// set; both may be empty for bodyless failures.
type Error struct {
	Status int
	Detail string
	Fields map[string][]string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Detail)
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
		}
		return fmt.Sprintf("api: %d: %s", e.Status, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// Is lets errors.Is match an *Error against the package sentinels by
// status class.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401 || e.Status == 403
	case ErrNotFound:
		return e.Status == 404
	}
	return false
}

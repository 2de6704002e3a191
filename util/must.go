package util

import "fmt"

// Must panics if err is non-nil. It is reserved for call sites where an
// error indicates a programming bug rather than a runtime condition.
func Must(err error) {
	if err != nil {
		panic(fmt.Errorf("unexpected error: %w", err))
	}
}

// Must2 is Must for single-value, error-returning calls.
func Must2[T any](v T, err error) T {
	Must(err)
	return v
}

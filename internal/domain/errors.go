package domain

import (
	"errors"
	"fmt"
)

// Library-level error kinds. The matcher loop inspects these with
// errors.Is/errors.As to decide a log level (debug/warn/error); none of
// them are ever swallowed silently.
var (
	ErrOutOfRange   = errors.New("out of range")
	ErrInvalidAsset = errors.New("invalid asset")
	ErrInvalidState = errors.New("invalid state")
	ErrNoMatch      = errors.New("no match")
	ErrNotFound     = errors.New("not found")
)

// MatchingError wraps a side-operation failure that occurred mid-match.
// try_match aborts the whole fill without partially applying it, and
// reports the failure wrapped so the matcher loop can unwrap down to
// ErrOutOfRange for logging.
type MatchingError struct {
	Inner error
}

func (e *MatchingError) Error() string {
	return fmt.Sprintf("matching error: %v", e.Inner)
}

func (e *MatchingError) Unwrap() error {
	return e.Inner
}

package lastfm

import (
	"fmt"
)

// Error represents a Last.fm API error.
//
// The Error type provides structured error information including
// the Last.fm error code and message. It implements error, and
// provides additional methods for classifying failures.
type Error struct {
	Code    int    // Last.fm error code
	Message string // Error message from Last.fm
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("lastfm: error %d: %s", e.Code, e.Message)
}

// Is checks if the target error is a Last.fm error.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Temporary returns true if the error reflects a transient service
// condition rather than a caller mistake.
//
// The following Last.fm error codes are considered temporary:
//   - 11: Service Offline - temporarily unavailable
//   - 16: Service Temporarily Unavailable
//
// The client does not retry; re-running the export is the recovery
// mechanism for temporary failures.
func (e *Error) Temporary() bool {
	switch e.Code {
	case 11: // Service Offline
		return true
	case 16: // Service Temporarily Unavailable
		return true
	default:
		return false
	}
}

// Common Last.fm error codes.
const (
	ErrCodeInvalidService      = 2
	ErrCodeInvalidMethod       = 3
	ErrCodeInvalidFormat       = 5
	ErrCodeInvalidParameters   = 6
	ErrCodeInvalidResourceSpec = 7
	ErrCodeOperationFailed     = 8
	ErrCodeInvalidAPIKey       = 10
	ErrCodeServiceOffline      = 11
	ErrCodeTempUnavailable     = 16
	ErrCodeRateLimitExceeded   = 29
)

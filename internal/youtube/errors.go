package youtube

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// APIError is a non-success response from the YouTube Data API. The upstream
// status code and message are carried through untouched so the UI can show
// them verbatim (quota exhaustion, invalid key, invalid region and so on).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("YouTube API error %d: %s", e.StatusCode, e.Message)
}

// NetworkError is a transport-level failure (DNS, TLS, timeout) before any
// API response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error reaching YouTube: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// wrapErr classifies a call failure into the APIError/NetworkError taxonomy.
func wrapErr(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &APIError{StatusCode: gerr.Code, Message: apiMessage(gerr)}
	}
	return &NetworkError{Err: err}
}

func apiMessage(gerr *googleapi.Error) string {
	msg := gerr.Message
	if msg == "" {
		msg = strings.TrimSpace(gerr.Body)
	}
	// Include the machine-readable reason when the human message omits it,
	// e.g. "quotaExceeded" alongside the quota prose.
	if len(gerr.Errors) > 0 {
		reason := gerr.Errors[0].Reason
		if reason != "" && !strings.Contains(msg, reason) {
			msg = fmt.Sprintf("%s (%s)", msg, reason)
		}
	}
	return msg
}

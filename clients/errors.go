package clients

import (
	"errors"
	"fmt"
)

// ErrRequestFailed is the single failure class of the shopcart client.
var ErrRequestFailed = errors.New("shopcart request failed")

// RequestFailedError is returned for a non-2xx status, a transport error
// or an undecodable success body. StatusCode is 0 when no response
// arrived.
type RequestFailedError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestFailedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *RequestFailedError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequestFailed}
	}
	return []error{ErrRequestFailed, e.Err}
}

// FailureMessage extracts the text to show for a failed request.
func FailureMessage(err error) string {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.Error()
	}
	return err.Error()
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.StatusCode
	}
	return 0
}

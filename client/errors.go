package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxRawErrorLen caps how much of a non-JSON error body is surfaced.
const maxRawErrorLen = 200

// NetworkError is a connection-level failure: the request never produced an
// HTTP response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("exam api unreachable: %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response. Message and Detail come from the JSON
// error body when the server sends one; otherwise Message holds the raw body
// truncated to 200 characters.
type HTTPError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("exam api error (%d): %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	if e.Message != "" {
		return fmt.Sprintf("exam api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("exam api error (%d)", e.StatusCode)
}

func newHTTPError(status int, body []byte) *HTTPError {
	var parsed struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && (parsed.Message != "" || parsed.Detail != "") {
		return &HTTPError{StatusCode: status, Message: parsed.Message, Detail: parsed.Detail}
	}
	raw := strings.TrimSpace(string(body))
	if len(raw) > maxRawErrorLen {
		raw = raw[:maxRawErrorLen]
	}
	return &HTTPError{StatusCode: status, Message: raw}
}

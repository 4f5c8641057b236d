package mws

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrThrottled is matched by errors.Is for any throttled response.
	ErrThrottled = errors.New("request throttled")
	// ErrNoMorePages is returned by Pager.Next once the last page was read.
	ErrNoMorePages        = errors.New("no more pages")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrResponseTooLarge   = errors.New("response body too large")
	// ErrMockExhausted is returned by a MockTransport with no entries.
	ErrMockExhausted = errors.New("no mock responses configured")
)

// APIError is a non-200 reply from the service.
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("MWS API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("MWS API error (status %d): %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is lets errors.Is(err, ErrThrottled) match throttled responses.
func (e *APIError) Is(target error) bool {
	return target == ErrThrottled && e.Throttled()
}

// Throttled reports whether the service rejected the call for quota reasons.
// A bare 503 without a parseable error code is treated as throttled too.
func (e *APIError) Throttled() bool {
	if e.Code != "" {
		return e.Code == "RequestThrottled"
	}
	return e.StatusCode == http.StatusServiceUnavailable
}

type errorResponse struct {
	XMLName xml.Name `xml:"ErrorResponse"`
	Error   struct {
		Type    string `xml:"Type"`
		Code    string `xml:"Code"`
		Message string `xml:"Message"`
	} `xml:"Error"`
	RequestID string `xml:"RequestId"`
}

func parseAPIError(status int, body []byte, requestID string) *APIError {
	apiErr := &APIError{StatusCode: status, RequestID: requestID}

	var er errorResponse
	if err := xml.Unmarshal(body, &er); err != nil {
		apiErr.Message = truncate(string(body), 512)
		return apiErr
	}

	apiErr.Type = er.Error.Type
	apiErr.Code = er.Error.Code
	apiErr.Message = er.Error.Message
	if er.RequestID != "" {
		apiErr.RequestID = er.RequestID
	}
	return apiErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

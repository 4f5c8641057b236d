package mws

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
)

var mockErrorCodes = map[int]string{
	http.StatusBadRequest:          "InvalidParameterValue",
	http.StatusUnauthorized:        "AccessDenied",
	http.StatusForbidden:           "InvalidAccessKeyId",
	http.StatusNotFound:            "InvalidRequest",
	http.StatusInternalServerError: "InternalError",
	http.StatusServiceUnavailable:  "RequestThrottled",
}

// RecordedRequest is a request intercepted by a MockTransport.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	// Params merges the query string and a form-encoded body.
	Params url.Values
	Body   []byte
}

// MockTransport replays fixture files from disk instead of calling the
// service. Each entry is either a file name inside dir, served as a 200
// response, or an HTTP status code, served as a synthesized ErrorResponse.
// Entries are used in order and wrap around after the last one.
type MockTransport struct {
	mu       sync.Mutex
	dir      string
	entries  []string
	index    int
	requests []RecordedRequest
}

// NewMockTransport creates a MockTransport reading fixtures from dir.
func NewMockTransport(dir string, entries ...string) *MockTransport {
	return &MockTransport{dir: dir, entries: entries}
}

// SetEntries replaces the response queue and rewinds it.
func (m *MockTransport) SetEntries(entries ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = entries
	m.index = 0
}

// Requests returns every request seen so far.
func (m *MockTransport) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.requests)
}

// LastRequest returns the most recent request, or false when there is none.
func (m *MockTransport) LastRequest() (RecordedRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return RecordedRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}

// RoundTrip implements http.RoundTripper.
func (m *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rec, err := recordRequest(req)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.requests = append(m.requests, rec)
	if len(m.entries) == 0 {
		m.mu.Unlock()
		return nil, ErrMockExhausted
	}
	entry := m.entries[m.index%len(m.entries)]
	m.index = (m.index + 1) % len(m.entries)
	n := len(m.requests)
	m.mu.Unlock()

	requestID := "mock-request-" + strconv.Itoa(n)

	if status, err := strconv.Atoi(entry); err == nil {
		return m.errorResponse(req, status, requestID), nil
	}

	path := filepath.Join(m.dir, entry)
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mock fixture %s: %w", path, err)
	}

	contentType := "application/octet-stream"
	if strings.EqualFold(filepath.Ext(entry), ".xml") {
		contentType = "text/xml"
	}

	return newMockResponse(req, http.StatusOK, contentType, requestID, body), nil
}

func (*MockTransport) errorResponse(
	req *http.Request,
	status int,
	requestID string,
) *http.Response {
	code, ok := mockErrorCodes[status]
	if !ok {
		code = "InternalError"
	}
	errType := "Sender"
	if status >= http.StatusInternalServerError {
		errType = "Receiver"
	}
	body := fmt.Sprintf(
		`<?xml version="1.0"?>`+
			`<ErrorResponse xmlns="https://mws.amazonservices.com/">`+
			`<Error><Type>%s</Type><Code>%s</Code><Message>Mock error response (%d)</Message></Error>`+
			`<RequestId>%s</RequestId></ErrorResponse>`,
		errType, code, status, requestID,
	)
	return newMockResponse(req, status, "text/xml", requestID, []byte(body))
}

func newMockResponse(
	req *http.Request,
	status int,
	contentType, requestID string,
	body []byte,
) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", contentType)
	header.Set("x-mws-request-id", requestID)
	return &http.Response{
		Status:        strconv.Itoa(status) + " " + http.StatusText(status),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}

func recordRequest(req *http.Request) (RecordedRequest, error) {
	rec := RecordedRequest{
		Method: req.Method,
		Path:   req.URL.Path,
		Header: req.Header.Clone(),
		Params: req.URL.Query(),
	}

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return rec, fmt.Errorf("reading mock request body: %w", err)
		}
		_ = req.Body.Close()
		rec.Body = body

		if strings.HasPrefix(req.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			form, err := url.ParseQuery(string(body))
			if err != nil {
				return rec, fmt.Errorf("parsing mock request form: %w", err)
			}
			for k, v := range form {
				rec.Params[k] = v
			}
		}
	}
	return rec, nil
}

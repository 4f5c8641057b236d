// Package mws is a client for the merchant web service API. Every operation
// builds a signed request, waits on its throttle group, sends it and parses
// the XML reply into typed records.
package mws

import (
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec // the service uses MD5 for content integrity
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultUserAgent          = "mws-toolkit/1.0 (Language=Go)"
	defaultMaxThrottleRetries = 5
	defaultHistorySize        = 10
	defaultMaxResponseBytes   = 50 << 20
	tracerName                = "github.com/donaldgifford/mws-toolkit/pkg/mws"
)

// Recorder receives call measurements. internal/metrics provides the
// Prometheus implementation.
type Recorder interface {
	ObserveCall(action, group string, status int, d time.Duration)
	ObserveThrottled(action, group string)
	ObserveQuota(group string, q QuotaState)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCall(string, string, int, time.Duration) {}
func (nopRecorder) ObserveThrottled(string, string)                {}
func (nopRecorder) ObserveQuota(string, QuotaState)                {}

// Client talks to the service on behalf of one seller account.
type Client struct {
	creds      Credentials
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	throttle   *Throttle
	recorder   Recorder
	tracer     trace.Tracer
	validate   *validator.Validate
	nowFunc    func() time.Time
	userAgent  string

	maxThrottleRetries int
	throttleStop       bool
	retryWait          time.Duration
	maxResponseBytes   int64

	mu          sync.Mutex
	history     []*RawResponse
	historySize int
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMock routes every request through m instead of the network.
func WithMock(m *MockTransport) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Transport: m}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithThrottle shares a Throttle between clients of the same seller.
func WithThrottle(t *Throttle) Option {
	return func(c *Client) {
		c.throttle = t
	}
}

// WithNowFunc overrides the clock used for request timestamps.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithMaxThrottleRetries sets how often a throttled call is retried.
func WithMaxThrottleRetries(n int) Option {
	return func(c *Client) {
		c.maxThrottleRetries = n
	}
}

// WithThrottleStop makes throttled calls fail immediately with ErrThrottled.
func WithThrottleStop(stop bool) Option {
	return func(c *Client) {
		c.throttleStop = stop
	}
}

// WithThrottleRetryWait replaces the group restore interval as the sleep
// between throttle retries.
func WithThrottleRetryWait(d time.Duration) Option {
	return func(c *Client) {
		c.retryWait = d
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// WithRecorder installs a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}

// WithMaxResponseBytes caps the size of a response body. Larger bodies fail
// with ErrResponseTooLarge.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) {
		c.maxResponseBytes = n
	}
}

// WithHistorySize sets how many raw responses the client keeps.
func WithHistorySize(n int) Option {
	return func(c *Client) {
		c.historySize = n
	}
}

// NewClient creates a Client for creds.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	c := &Client{
		creds:              creds,
		httpClient:         &http.Client{Timeout: 2 * time.Minute},
		logger:             slog.New(slog.DiscardHandler),
		recorder:           nopRecorder{},
		tracer:             otel.GetTracerProvider().Tracer(tracerName),
		validate:           validator.New(validator.WithRequiredStructEnabled()),
		nowFunc:            time.Now,
		userAgent:          defaultUserAgent,
		maxThrottleRetries: defaultMaxThrottleRetries,
		retryWait:          -1,
		historySize:        defaultHistorySize,
		maxResponseBytes:   defaultMaxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.validate.Struct(creds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	serviceURL := creds.ServiceURL
	if serviceURL == "" {
		serviceURL = EndpointFor(creds.MarketplaceID)
	}
	u, err := url.Parse(serviceURL)
	if err != nil {
		return nil, fmt.Errorf("parsing service URL: %w", err)
	}
	c.endpoint = u

	if c.throttle == nil {
		c.throttle = NewThrottle()
	}
	return c, nil
}

// Credentials returns the seller account the client signs for.
func (c *Client) Credentials() Credentials {
	return c.creds
}

// Throttle returns the client's throttle registry.
func (c *Client) Throttle() *Throttle {
	return c.throttle
}

// LastResponse returns the most recent raw response, or nil.
func (c *Client) LastResponse() *RawResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.history) == 0 {
		return nil
	}
	return c.history[len(c.history)-1]
}

// RawResponses returns the retained raw responses, oldest first.
func (c *Client) RawResponses() []*RawResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.history)
}

func (c *Client) remember(raw *RawResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.historySize <= 0 {
		return
	}
	c.history = append(c.history, raw)
	if over := len(c.history) - c.historySize; over > 0 {
		c.history = slices.Delete(c.history, 0, over)
	}
}

// Do sends req, retrying throttled replies, and decodes a 200 body into out
// when out is non-nil. A non-200 reply is returned as an *APIError together
// with the raw response.
func (c *Client) Do(ctx context.Context, req *Request, out any) (*RawResponse, error) {
	group := req.group()

	ctx, span := c.tracer.Start(ctx, "mws."+req.Action,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("mws.action", req.Action),
			attribute.String("mws.group", group),
			attribute.String("mws.section", req.Section.Name),
		),
	)
	defer span.End()

	raw, err := c.doWithRetry(ctx, req, group)
	if raw != nil {
		span.SetAttributes(attribute.Int("http.status_code", raw.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return raw, err
	}

	if out != nil {
		if err := xml.Unmarshal(raw.Body, out); err != nil {
			err = fmt.Errorf("parsing %s response: %w", req.Action, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return raw, err
		}
	}
	return raw, nil
}

func (c *Client) doWithRetry(
	ctx context.Context,
	req *Request,
	group string,
) (*RawResponse, error) {
	for attempt := 0; ; attempt++ {
		if err := c.throttle.Wait(ctx, group); err != nil {
			return nil, fmt.Errorf("throttle group %s: %w", group, err)
		}

		start := time.Now()
		raw, err := c.send(ctx, req)
		if err != nil {
			c.logger.Error("request failed", "action", req.Action, "err", err)
			return nil, err
		}
		c.recorder.ObserveCall(req.Action, group, raw.StatusCode, time.Since(start))
		c.remember(raw)

		if raw.Metadata.HasQuota() {
			q := QuotaState{
				Max:       raw.Metadata.QuotaMax,
				Remaining: raw.Metadata.QuotaRemaining,
				ResetsOn:  raw.Metadata.QuotaResetsOn,
			}
			c.throttle.Observe(group, q)
			c.recorder.ObserveQuota(group, q)
		}

		if raw.StatusCode == http.StatusOK {
			return raw, nil
		}

		apiErr := parseAPIError(raw.StatusCode, raw.Body, raw.Metadata.RequestID)
		if !apiErr.Throttled() {
			c.logger.Warn("request returned an error",
				"action", req.Action,
				"status", apiErr.StatusCode,
				"code", apiErr.Code,
				"request_id", apiErr.RequestID,
				"err", apiErr.Message,
			)
			return raw, apiErr
		}

		c.recorder.ObserveThrottled(req.Action, group)
		c.logger.Warn("request was throttled",
			"action", req.Action,
			"group", group,
			"attempt", attempt+1,
			"request_id", apiErr.RequestID,
		)
		if c.throttleStop || attempt >= c.maxThrottleRetries {
			return raw, apiErr
		}

		if err := sleep(ctx, c.retryDelay(group)); err != nil {
			return raw, fmt.Errorf("waiting to retry %s: %w", req.Action, err)
		}
	}
}

func (c *Client) retryDelay(group string) time.Duration {
	if c.retryWait >= 0 {
		return c.retryWait
	}
	return c.throttle.RestoreInterval(group)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) send(ctx context.Context, req *Request) (*RawResponse, error) {
	params := c.commonParams(req)
	path := req.Section.Path
	if path == "" {
		path = "/"
	}

	signature := Sign(http.MethodPost, c.endpoint.Host, path, params, c.creds.SecretKey)
	query := CanonicalQuery(params) + "&Signature=" + percentEncode(signature)

	target := *c.endpoint
	target.Path = path
	target.RawQuery = ""

	var (
		body        io.Reader
		contentType string
		contentMD5  string
	)
	if req.Body != nil {
		target.RawQuery = query
		body = bytes.NewReader(req.Body)
		contentType = req.ContentType
		if contentType == "" {
			contentType = "text/xml"
		}
		sum := md5.Sum(req.Body) //nolint:gosec // required by the service
		contentMD5 = base64.StdEncoding.EncodeToString(sum[:])
	} else {
		body = strings.NewReader(query)
		contentType = "application/x-www-form-urlencoded; charset=utf-8"
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("User-Agent", c.userAgent)
	if contentMD5 != "" {
		httpReq.Header.Set("Content-MD5", contentMD5)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing %s request: %w", req.Action, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(respBody)) > c.maxResponseBytes {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)",
			req.Action, ErrResponseTooLarge, c.maxResponseBytes)
	}

	return &RawResponse{
		Action:     req.Action,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Metadata:   metadataFromHeader(resp.StatusCode, resp.Header),
		ReceivedAt: c.nowFunc(),
	}, nil
}

func (c *Client) commonParams(req *Request) url.Values {
	params := make(url.Values, len(req.Params)+8)
	for k, v := range req.Params {
		params[k] = slices.Clone(v)
	}

	identity := req.Section.Identity
	if identity == "" {
		identity = identitySeller
	}

	params.Set("AWSAccessKeyId", c.creds.AccessKeyID)
	params.Set("Action", req.Action)
	params.Set(identity, c.creds.SellerID)
	setString(params, "MWSAuthToken", c.creds.AuthToken)
	params.Set("SignatureMethod", signatureMethod)
	params.Set("SignatureVersion", signatureVersion)
	params.Set("Timestamp", FormatTime(c.nowFunc()))
	params.Set("Version", req.Section.Version)
	return params
}

// call performs req and decodes a single-result envelope.
func call[T any](ctx context.Context, c *Client, req *Request) (*T, error) {
	var env envelope[T]
	raw, err := c.Do(ctx, req, &env)
	if err != nil {
		return nil, err
	}
	result := &env.Result
	if ms, ok := any(result).(metadataSetter); ok {
		ms.setMetadata(mergeMetadata(raw.Metadata, env.Metadata.RequestID))
	}
	return result, nil
}

// callMulti performs req and decodes one result element per requested ID.
func callMulti[T any](ctx context.Context, c *Client, req *Request) ([]T, ResponseMetadata, error) {
	var env multiEnvelope[T]
	raw, err := c.Do(ctx, req, &env)
	if err != nil {
		return nil, ResponseMetadata{}, err
	}
	return env.Results, mergeMetadata(raw.Metadata, env.Metadata.RequestID), nil
}

func mergeMetadata(md ResponseMetadata, requestID string) ResponseMetadata {
	if requestID != "" {
		md.RequestID = requestID
	}
	return md
}

// newRequest starts a request for action in section with an empty
// parameter set.
func newRequest(section Section, action, group string) *Request {
	return &Request{
		Action:        action,
		Section:       section,
		Params:        url.Values{},
		ThrottleGroup: group,
	}
}

func (c *Client) check(v any) error {
	if err := c.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

func (c *Client) marketplaceIDs(ids []string) []string {
	if len(ids) > 0 {
		return ids
	}
	if c.creds.MarketplaceID == "" {
		return nil
	}
	return []string{c.creds.MarketplaceID}
}

// verifyMD5 compares body against a base64 MD5 digest when one is given.
func verifyMD5(body []byte, want string) error {
	if want == "" {
		return nil
	}
	sum := md5.Sum(body) //nolint:gosec // required by the service
	got := base64.StdEncoding.EncodeToString(sum[:])
	if got != strings.TrimSpace(want) {
		return fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, got, want)
	}
	return nil
}

// callNextToken performs the ByNextToken follow-up of a list operation.
func callNextToken[T any](
	ctx context.Context,
	c *Client,
	section Section,
	action, group, token string,
) (*T, error) {
	if token == "" {
		return nil, invalidf("%s: next token is required", action)
	}
	r := newRequest(section, action, group)
	r.Params.Set("NextToken", token)
	return call[T](ctx, c, r)
}

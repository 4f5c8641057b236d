package mws

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// GroupLimit is the published quota of a throttle group: MaxQuota requests
// in a burst, with one request restored every RestoreEvery.
type GroupLimit struct {
	MaxQuota     int
	RestoreEvery time.Duration
}

// QuotaState is the server-reported quota taken from response headers.
type QuotaState struct {
	Max        float64
	Remaining  float64
	ResetsOn   time.Time
	ObservedAt time.Time
}

// GroupStatus is a point-in-time view of one throttle group.
type GroupStatus struct {
	Group        string
	MaxQuota     int
	RestoreEvery time.Duration
	Tokens       float64
	ServerQuota  *QuotaState
}

// DefaultGroupLimit applies to groups missing from the quota table.
var DefaultGroupLimit = GroupLimit{MaxQuota: 10, RestoreEvery: time.Second}

const (
	groupInbound   = "FulfillmentInboundShipment"
	groupInventory = "FulfillmentInventory"
	groupOutbound  = "FulfillmentOutboundShipment"
	groupFinances  = "Finances"
)

var defaultLimits = map[string]GroupLimit{
	"ListOrders":     {MaxQuota: 6, RestoreEvery: time.Minute},
	"GetOrder":       {MaxQuota: 6, RestoreEvery: time.Minute},
	"ListOrderItems": {MaxQuota: 30, RestoreEvery: 2 * time.Second},

	"RequestReport":                    {MaxQuota: 15, RestoreEvery: time.Minute},
	"GetReportRequestList":             {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"GetReportRequestListByNextToken":  {MaxQuota: 30, RestoreEvery: 2 * time.Second},
	"GetReportRequestCount":            {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"CancelReportRequests":             {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"GetReportList":                    {MaxQuota: 10, RestoreEvery: time.Minute},
	"GetReportListByNextToken":         {MaxQuota: 30, RestoreEvery: 2 * time.Second},
	"GetReportCount":                   {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"GetReport":                        {MaxQuota: 15, RestoreEvery: time.Minute},
	"ManageReportSchedule":             {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"GetReportScheduleList":            {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"GetReportScheduleListByNextToken": {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"GetReportScheduleCount":           {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"UpdateReportAcknowledgements":     {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"SubmitFeed":                       {MaxQuota: 15, RestoreEvery: 2 * time.Minute},
	"GetFeedSubmissionList":            {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"GetFeedSubmissionListByNextToken": {MaxQuota: 30, RestoreEvery: 2 * time.Second},
	"GetFeedSubmissionCount":           {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"CancelFeedSubmissions":            {MaxQuota: 10, RestoreEvery: 45 * time.Second},
	"GetFeedSubmissionResult":          {MaxQuota: 15, RestoreEvery: time.Minute},
	"GetMatchingProductForId":          {MaxQuota: 20, RestoreEvery: 200 * time.Millisecond},
	"ListMatchingProducts":             {MaxQuota: 20, RestoreEvery: 5 * time.Second},
	"GetCompetitivePricingForSKU":      {MaxQuota: 20, RestoreEvery: 100 * time.Millisecond},
	"GetLowestOfferListingsForSKU":     {MaxQuota: 20, RestoreEvery: 100 * time.Millisecond},
	"GetMyPriceForSKU":                 {MaxQuota: 20, RestoreEvery: 100 * time.Millisecond},
	"GetProductCategoriesForSKU":       {MaxQuota: 20, RestoreEvery: 5 * time.Second},
	groupInventory:                     {MaxQuota: 30, RestoreEvery: 500 * time.Millisecond},
	groupInbound:                       {MaxQuota: 30, RestoreEvery: 500 * time.Millisecond},
	groupOutbound:                      {MaxQuota: 30, RestoreEvery: 500 * time.Millisecond},
	groupFinances:                      {MaxQuota: 30, RestoreEvery: 2 * time.Second},
	"ListMarketplaceParticipations":    {MaxQuota: 15, RestoreEvery: time.Minute},
	"GetServiceStatus":                 {MaxQuota: 2, RestoreEvery: 5 * time.Minute},
}

// DefaultLimits returns a copy of the built-in quota table.
func DefaultLimits() map[string]GroupLimit {
	return maps.Clone(defaultLimits)
}

type bucket struct {
	limit   GroupLimit
	limiter *rate.Limiter
	server  *QuotaState
}

// Throttle tracks one token bucket per throttle group so calls are spaced
// out before the service has to reject them.
type Throttle struct {
	mu      sync.Mutex
	limits  map[string]GroupLimit
	buckets map[string]*bucket
	nowFunc func() time.Time
}

// ThrottleOption configures the Throttle.
type ThrottleOption func(*Throttle)

// WithGroupLimit overrides the quota of one group.
func WithGroupLimit(group string, limit GroupLimit) ThrottleOption {
	return func(t *Throttle) {
		t.limits[group] = limit
	}
}

// WithThrottleNowFunc overrides the time function for testing.
func WithThrottleNowFunc(f func() time.Time) ThrottleOption {
	return func(t *Throttle) {
		t.nowFunc = f
	}
}

// NewThrottle creates a Throttle seeded with the built-in quota table.
func NewThrottle(opts ...ThrottleOption) *Throttle {
	t := &Throttle{
		limits:  DefaultLimits(),
		buckets: make(map[string]*bucket),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Throttle) limitFor(group string) GroupLimit {
	if l, ok := t.limits[group]; ok {
		return l
	}
	// Per-section groups like "GetServiceStatus:Orders" share the base quota.
	if base, _, ok := strings.Cut(group, ":"); ok {
		if l, ok := t.limits[base]; ok {
			return l
		}
	}
	return DefaultGroupLimit
}

func (t *Throttle) bucket(group string) *bucket {
	t.mu.Lock()
	defer t.mu.Unlock()

	b, ok := t.buckets[group]
	if !ok {
		limit := t.limitFor(group)
		b = &bucket{
			limit:   limit,
			limiter: newLimiter(limit),
		}
		t.buckets[group] = b
	}
	return b
}

func newLimiter(l GroupLimit) *rate.Limiter {
	if l.RestoreEvery <= 0 {
		return rate.NewLimiter(rate.Inf, max(l.MaxQuota, 1))
	}
	return rate.NewLimiter(rate.Every(l.RestoreEvery), max(l.MaxQuota, 1))
}

// Wait blocks until group has budget for one request, or ctx is done. When
// the server last reported an empty quota, Wait first sleeps until its
// reset time.
func (t *Throttle) Wait(ctx context.Context, group string) error {
	b := t.bucket(group)

	if delay := t.serverDelay(b); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for quota reset: %w", ctx.Err())
		case <-timer.C:
		}
	}

	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

func (t *Throttle) serverDelay(b *bucket) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if b.server == nil || b.server.Remaining > 0 || b.server.ResetsOn.IsZero() {
		return 0
	}
	return b.server.ResetsOn.Sub(t.nowFunc())
}

// Observe records the quota the server reported for group.
func (t *Throttle) Observe(group string, q QuotaState) {
	b := t.bucket(group)

	t.mu.Lock()
	defer t.mu.Unlock()

	if q.ObservedAt.IsZero() {
		q.ObservedAt = t.nowFunc()
	}
	b.server = &q
}

// RestoreInterval is how long group takes to regain one request.
func (t *Throttle) RestoreInterval(group string) time.Duration {
	return t.bucket(group).limit.RestoreEvery
}

// Status lists every group used so far, sorted by name.
func (t *Throttle) Status() []GroupStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]GroupStatus, 0, len(t.buckets))
	for name, b := range t.buckets {
		gs := GroupStatus{
			Group:        name,
			MaxQuota:     b.limit.MaxQuota,
			RestoreEvery: b.limit.RestoreEvery,
			Tokens:       b.limiter.Tokens(),
		}
		if b.server != nil {
			q := *b.server
			gs.ServerQuota = &q
		}
		out = append(out, gs)
	}
	slices.SortFunc(out, func(a, b GroupStatus) int {
		return strings.Compare(a.Group, b.Group)
	})
	return out
}

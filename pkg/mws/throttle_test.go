package mws_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func TestThrottle_WaitConsumesBurst(t *testing.T) {
	t.Parallel()

	th := mws.NewThrottle(mws.WithGroupLimit("Test", mws.GroupLimit{MaxQuota: 2, RestoreEvery: time.Hour}))

	ctx := context.Background()
	require.NoError(t, th.Wait(ctx, "Test"))
	require.NoError(t, th.Wait(ctx, "Test"))

	ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := th.Wait(ctx, "Test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
}

func TestThrottle_RestoreInterval(t *testing.T) {
	t.Parallel()

	th := mws.NewThrottle()

	tests := []struct {
		group string
		want  time.Duration
	}{
		{group: "ListOrders", want: time.Minute},
		{group: "ListOrderItems", want: 2 * time.Second},
		{group: "SubmitFeed", want: 2 * time.Minute},
		{group: "GetMatchingProductForId", want: 200 * time.Millisecond},
		{group: "GetServiceStatus:Orders", want: 5 * time.Minute},
		{group: "SomethingNew", want: mws.DefaultGroupLimit.RestoreEvery},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, th.RestoreInterval(tt.group))
		})
	}
}

func TestThrottle_ServerQuotaDelaysWait(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	th := mws.NewThrottle(mws.WithThrottleNowFunc(func() time.Time { return now }))

	th.Observe("ListOrders", mws.QuotaState{
		Max:       6,
		Remaining: 0,
		ResetsOn:  now.Add(time.Hour),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := th.Wait(ctx, "ListOrders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "waiting for quota reset")
}

func TestThrottle_ServerQuotaInPastDoesNotDelay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	th := mws.NewThrottle(mws.WithThrottleNowFunc(func() time.Time { return now }))

	th.Observe("ListOrders", mws.QuotaState{Max: 6, Remaining: 0, ResetsOn: now.Add(-time.Minute)})
	require.NoError(t, th.Wait(context.Background(), "ListOrders"))

	th.Observe("ListOrders", mws.QuotaState{Max: 6, Remaining: 3, ResetsOn: now.Add(time.Hour)})
	require.NoError(t, th.Wait(context.Background(), "ListOrders"))
}

func TestThrottle_Status(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	th := mws.NewThrottle(mws.WithThrottleNowFunc(func() time.Time { return now }))

	require.NoError(t, th.Wait(context.Background(), "ListOrders"))
	require.NoError(t, th.Wait(context.Background(), "GetOrder"))
	th.Observe("ListOrders", mws.QuotaState{Max: 6, Remaining: 5})

	status := th.Status()
	require.Len(t, status, 2)

	assert.Equal(t, "GetOrder", status[0].Group)
	assert.Nil(t, status[0].ServerQuota)

	assert.Equal(t, "ListOrders", status[1].Group)
	assert.Equal(t, 6, status[1].MaxQuota)
	assert.Equal(t, time.Minute, status[1].RestoreEvery)
	assert.InDelta(t, 5, status[1].Tokens, 0.1)
	require.NotNil(t, status[1].ServerQuota)
	assert.InDelta(t, 5, status[1].ServerQuota.Remaining, 0)
	assert.Equal(t, now, status[1].ServerQuota.ObservedAt)
}

func TestDefaultLimits_IsCopy(t *testing.T) {
	t.Parallel()

	limits := mws.DefaultLimits()
	limits["ListOrders"] = mws.GroupLimit{MaxQuota: 1000}

	assert.Equal(t, 6, mws.DefaultLimits()["ListOrders"].MaxQuota)
}

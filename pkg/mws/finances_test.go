package mws_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func TestListFinancialEventGroups(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "financial_event_groups.xml")
	after := time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC)

	list, err := c.ListFinancialEventGroups(context.Background(), after, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, list.Groups, 1)

	group := list.Groups[0]
	assert.Equal(t, "Closed", group.ProcessingStatus)
	require.NotNil(t, group.OriginalTotal)
	assert.Equal(t, "19.00 USD", group.OriginalTotal.String())
	assert.Equal(t, "1212", group.AccountTail)

	params := lastParams(t, mock)
	assert.Equal(t, "2014-09-01T00:00:00Z", params["FinancialEventGroupStartedAfter"])
	assert.Equal(t, "10", params["MaxResultsPerPage"])
	assert.NotContains(t, params, "FinancialEventGroupStartedBefore")

	_, err = c.ListFinancialEventGroups(context.Background(), time.Time{}, time.Time{}, 0)
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
	_, err = c.ListFinancialEventGroups(context.Background(), after, time.Time{}, 101)
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "0 to 100 (0 for default)")
}

func TestListFinancialEventGroups_DefaultPageSize(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "financial_event_groups.xml")
	after := time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := c.ListFinancialEventGroups(context.Background(), after, time.Time{}, 0)
	require.NoError(t, err)
	assert.NotContains(t, lastParams(t, mock), "MaxResultsPerPage")
}

func TestListFinancialEvents(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "financial_events.xml")
	events, err := c.ListFinancialEvents(context.Background(), mws.ListFinancialEventsRequest{
		AmazonOrderID: "333-7777777-7777777",
	})
	require.NoError(t, err)

	assert.Equal(t, "FinancesToken-2", events.NextToken)
	require.Len(t, events.Shipments, 1)
	item := events.Shipments[0].Items[0]
	assert.Equal(t, 2, item.QuantityShipped)
	require.Len(t, item.Fees, 1)
	assert.Equal(t, "-2.41 USD", item.Fees[0].FeeAmount.String())

	require.Len(t, events.Refunds, 1)
	adj := events.Refunds[0].ItemAdjustments[0]
	assert.Equal(t, "-10.00 USD", adj.ChargeAdjustments[0].ChargeAmount.String())

	require.Len(t, events.ServiceFees, 1)
	assert.Equal(t, "-39.99 USD", events.ServiceFees[0].Fees[0].FeeAmount.String())

	assert.Equal(t, "333-7777777-7777777", lastParams(t, mock)["AmazonOrderId"])
}

func TestListFinancialEvents_Validation(t *testing.T) {
	t.Parallel()

	posted := time.Date(2013, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  mws.ListFinancialEventsRequest
	}{
		{name: "no selector", req: mws.ListFinancialEventsRequest{}},
		{
			name: "two selectors",
			req: mws.ListFinancialEventsRequest{
				AmazonOrderID:         "1",
				FinancialEventGroupID: "2",
			},
		},
		{
			name: "posted before alone",
			req: mws.ListFinancialEventsRequest{
				AmazonOrderID: "1",
				PostedBefore:  posted,
			},
		},
		{
			name: "page size",
			req: mws.ListFinancialEventsRequest{
				PostedAfter:       posted,
				MaxResultsPerPage: 500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, "financial_events.xml")
			_, err := c.ListFinancialEvents(context.Background(), tt.req)
			require.ErrorIs(t, err, mws.ErrInvalidRequest)
		})
	}
}

func TestFinancialEventsPager_Merge(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "financial_events.xml")
	pager := c.FinancialEventsPager(mws.ListFinancialEventsRequest{
		PostedAfter: time.Date(2013, 9, 1, 0, 0, 0, 0, time.UTC),
	}, mws.WithMaxPages(3))

	var all mws.FinancialEvents
	for page, err := range pager.Items(context.Background()) {
		require.NoError(t, err)
		all.Merge(page)
	}

	assert.Len(t, all.Shipments, 3)
	assert.Len(t, all.Refunds, 3)
	assert.Len(t, all.ServiceFees, 3)
	assert.Equal(t, 3, pager.PagesUsed())
	assert.Equal(t, "FinancesToken-2", lastParams(t, mock)["NextToken"])
}

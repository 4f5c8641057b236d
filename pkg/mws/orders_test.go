package mws_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func TestListOrders(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "list_orders.xml")
	after := time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC)

	list, err := c.ListOrders(context.Background(), mws.ListOrdersRequest{
		CreatedAfter:  after,
		OrderStatuses: []string{"Unshipped", "Shipped"},
	})
	require.NoError(t, err)

	require.Len(t, list.Orders, 2)
	assert.Equal(t, "2YgYW55IGNhcm5hbCBwbGVhc3VyZS4=", list.NextToken)
	assert.Equal(t, "88faca76-b600-46d2-b53c-0c8c4533e43a", list.Metadata.RequestID)

	first := list.Orders[0]
	assert.Equal(t, "902-3159896-1390916", first.AmazonOrderID)
	assert.True(t, first.IsPrime)
	require.NotNil(t, first.OrderTotal)
	assert.True(t, decimal.RequireFromString("25.00").Equal(first.OrderTotal.Amount))
	assert.Equal(t, "25.00 USD", first.OrderTotal.String())
	require.NotNil(t, first.ShippingAddress)
	assert.Equal(t, "Seattle", first.ShippingAddress.City)

	params := lastParams(t, mock)
	assert.Equal(t, "ListOrders", params["Action"])
	assert.Equal(t, "2017-02-01T00:00:00Z", params["CreatedAfter"])
	assert.Equal(t, "ATVPDKIKX0DER", params["MarketplaceId.Id.1"])
	assert.Equal(t, "Unshipped", params["OrderStatus.Status.1"])
	assert.Equal(t, "Shipped", params["OrderStatus.Status.2"])
	assert.NotContains(t, params, "LastUpdatedAfter")
}

func TestListOrders_Validation(t *testing.T) {
	t.Parallel()

	now := time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  mws.ListOrdersRequest
	}{
		{name: "no time window", req: mws.ListOrdersRequest{}},
		{
			name: "both windows",
			req:  mws.ListOrdersRequest{CreatedAfter: now, LastUpdatedAfter: now},
		},
		{
			name: "created with updated before",
			req:  mws.ListOrdersRequest{CreatedAfter: now, LastUpdatedBefore: now},
		},
		{
			name: "updated with created before",
			req:  mws.ListOrdersRequest{LastUpdatedAfter: now, CreatedBefore: now},
		},
		{
			name: "unknown status",
			req:  mws.ListOrdersRequest{CreatedAfter: now, OrderStatuses: []string{"Lost"}},
		},
		{
			name: "bad channel",
			req:  mws.ListOrdersRequest{CreatedAfter: now, FulfillmentChannels: []string{"XYZ"}},
		},
		{
			name: "page size",
			req:  mws.ListOrdersRequest{CreatedAfter: now, MaxResultsPerPage: 101},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, mock := newTestClient(t, "list_orders.xml")
			_, err := c.ListOrders(context.Background(), tt.req)
			require.ErrorIs(t, err, mws.ErrInvalidRequest)
			assert.Empty(t, mock.Requests(), "invalid requests must not be sent")
		})
	}
}

func TestOrderPager_FollowsTokens(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "list_orders.xml", "list_orders_next.xml")
	pager := c.OrderPager(mws.ListOrdersRequest{
		LastUpdatedAfter: time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	res, err := pager.All(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.Items, 3)
	assert.Equal(t, 2, res.PagesUsed)
	assert.Equal(t, mws.StoppedNoMoreResults, res.StoppedAt)
	assert.Equal(t, "058-1233752-8214740", res.Items[2].AmazonOrderID)

	params := lastParams(t, mock)
	assert.Equal(t, "ListOrdersByNextToken", params["Action"])
	assert.Equal(t, "2YgYW55IGNhcm5hbCBwbGVhc3VyZS4=", params["NextToken"])
}

func TestOrderPager_WithoutTokenFollowing(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "list_orders.xml", "list_orders_next.xml")
	pager := c.OrderPager(mws.ListOrdersRequest{
		CreatedAfter: time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC),
	}, mws.WithTokenFollowing(false))

	res, err := pager.All(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.Items, 2)
	assert.Equal(t, mws.StoppedTokenFollowingDisabled, res.StoppedAt)
	assert.Equal(t, "2YgYW55IGNhcm5hbCBwbGVhc3VyZS4=", res.NextToken)
	assert.Len(t, mock.Requests(), 1)
}

func TestGetOrder(t *testing.T) {
	t.Parallel()

	t.Run("fetches by id", func(t *testing.T) {
		t.Parallel()

		c, mock := newTestClient(t, "get_order.xml")
		list, err := c.GetOrder(context.Background(), "902-3159896-1390916", "483-3488972-0896720")
		require.NoError(t, err)
		require.Len(t, list.Orders, 1)

		params := lastParams(t, mock)
		assert.Equal(t, "902-3159896-1390916", params["AmazonOrderId.Id.1"])
		assert.Equal(t, "483-3488972-0896720", params["AmazonOrderId.Id.2"])
	})

	t.Run("id count is bounded", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, "get_order.xml")
		_, err := c.GetOrder(context.Background())
		require.ErrorIs(t, err, mws.ErrInvalidRequest)

		ids := make([]string, 51)
		for i := range ids {
			ids[i] = "id"
		}
		_, err = c.GetOrder(context.Background(), ids...)
		require.ErrorIs(t, err, mws.ErrInvalidRequest)
	})
}

func TestListOrderItems(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "list_order_items.xml")
	list, err := c.ListOrderItems(context.Background(), "902-3159896-1390916")
	require.NoError(t, err)

	require.Len(t, list.Items, 1)
	item := list.Items[0]
	assert.Equal(t, "68828574383266", item.OrderItemID)
	assert.Equal(t, 1, item.QuantityOrdered)
	require.NotNil(t, item.ItemPrice)
	assert.Equal(t, "20.00 USD", item.ItemPrice.String())
	assert.Equal(t, []string{"FREESHIP"}, item.PromotionIDs)
	assert.Empty(t, list.NextToken)

	assert.Equal(t, "902-3159896-1390916", lastParams(t, mock)["AmazonOrderId"])

	_, err = c.ListOrderItems(context.Background(), "")
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
}

func TestListOrdersByNextToken_RequiresToken(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, "list_orders_next.xml")
	_, err := c.ListOrdersByNextToken(context.Background(), "")
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
}

package mws_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func TestListInventorySupply(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "inventory_supply.xml")
	list, err := c.ListInventorySupply(context.Background(), mws.ListInventorySupplyRequest{
		SellerSKUs:    []string{"SampleSKU1", "SampleSKU2"},
		ResponseGroup: "Detailed",
	})
	require.NoError(t, err)

	assert.Equal(t, "ATVPDKIKX0DER", list.MarketplaceID)
	require.Len(t, list.Supplies, 1)
	supply := list.Supplies[0]
	assert.Equal(t, "SampleSKU1", supply.SellerSKU)
	assert.Equal(t, 20, supply.TotalSupplyQuantity)
	assert.Equal(t, 15, supply.InStockSupplyQuantity)
	assert.Equal(t, "Immediately", supply.EarliestAvailability)
	require.Len(t, supply.SupplyDetail, 2)
	assert.Equal(t, "Inbound", supply.SupplyDetail[1].SupplyType)
	assert.Equal(t, time.Date(2010, 11, 12, 8, 0, 0, 0, time.UTC), supply.SupplyDetail[1].EarliestPickDate)

	params := lastParams(t, mock)
	assert.Equal(t, "/FulfillmentInventory/2010-10-01", mustLastRequest(t, mock).Path)
	assert.Equal(t, "SampleSKU1", params["SellerSkus.member.1"])
	assert.Equal(t, "SampleSKU2", params["SellerSkus.member.2"])
	assert.Equal(t, "Detailed", params["ResponseGroup"])
}

func TestListInventorySupply_Validation(t *testing.T) {
	t.Parallel()

	start := time.Date(2010, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  mws.ListInventorySupplyRequest
	}{
		{name: "no selector", req: mws.ListInventorySupplyRequest{}},
		{
			name: "both selectors",
			req: mws.ListInventorySupplyRequest{
				SellerSKUs:         []string{"A"},
				QueryStartDateTime: start,
			},
		},
		{
			name: "bad response group",
			req: mws.ListInventorySupplyRequest{
				QueryStartDateTime: start,
				ResponseGroup:      "Full",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, "inventory_supply.xml")
			_, err := c.ListInventorySupply(context.Background(), tt.req)
			require.ErrorIs(t, err, mws.ErrInvalidRequest)
		})
	}
}

func TestInventoryPager_Items(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, "inventory_supply.xml")
	pager := c.InventoryPager(mws.ListInventorySupplyRequest{
		QueryStartDateTime: time.Date(2010, 10, 1, 0, 0, 0, 0, time.UTC),
	})

	var skus []string
	for supply, err := range pager.Items(context.Background()) {
		require.NoError(t, err)
		skus = append(skus, supply.SellerSKU)
	}
	assert.Equal(t, []string{"SampleSKU1"}, skus)
}

func mustLastRequest(t *testing.T, mock *mws.MockTransport) mws.RecordedRequest {
	t.Helper()

	rec, ok := mock.LastRequest()
	require.True(t, ok)
	return rec
}

package mws_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func TestListInboundShipments(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "inbound_shipments.xml")
	list, err := c.ListInboundShipments(context.Background(), mws.ListInboundShipmentsRequest{
		ShipmentStatuses: []string{"WORKING", "SHIPPED"},
	})
	require.NoError(t, err)

	require.Len(t, list.Shipments, 1)
	shipment := list.Shipments[0]
	assert.Equal(t, "FBA44JV8R", shipment.ShipmentID)
	assert.Equal(t, "PHX6", shipment.DestinationFulfillmentCenterID)
	assert.Equal(t, "WA", shipment.ShipFromAddress.StateOrRegion)
	assert.Equal(t, "123 Warehouse St", shipment.ShipFromAddress.AddressLine1)
	assert.Equal(t, "NextToken-Inbound-2", list.NextToken)

	params := lastParams(t, mock)
	assert.Equal(t, "WORKING", params["ShipmentStatusList.member.1"])
	assert.Equal(t, "SHIPPED", params["ShipmentStatusList.member.2"])
}

func TestListInboundShipments_Validation(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, "inbound_shipments.xml")

	_, err := c.ListInboundShipments(context.Background(), mws.ListInboundShipmentsRequest{})
	require.ErrorIs(t, err, mws.ErrInvalidRequest)

	_, err = c.ListInboundShipments(context.Background(), mws.ListInboundShipmentsRequest{
		ShipmentStatuses: []string{"LOST"},
	})
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
}

func TestInboundShipmentPager_MaxPages(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "inbound_shipments.xml")
	pager := c.InboundShipmentPager(mws.ListInboundShipmentsRequest{
		ShipmentIDs: []string{"FBA44JV8R"},
	}, mws.WithMaxPages(2))

	res, err := pager.All(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.PagesUsed)
	assert.Equal(t, mws.StoppedMaxPages, res.StoppedAt)
	assert.Equal(t, "NextToken-Inbound-2", res.NextToken)

	params := lastParams(t, mock)
	assert.Equal(t, "ListInboundShipmentsByNextToken", params["Action"])
	assert.Equal(t, "NextToken-Inbound-2", params["NextToken"])
}

func TestListInboundShipmentItems(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "inbound_shipment_items.xml")
	res, err := c.InboundShipmentItemPager("FBA44JV8R").All(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, "SampleSKU2", res.Items[1].SellerSKU)
	assert.Equal(t, 10, res.Items[1].QuantityShipped)
	assert.Equal(t, 5, res.Items[1].QuantityInCase)
	assert.Equal(t, "FBA44JV8R", lastParams(t, mock)["ShipmentId"])

	_, err = c.ListInboundShipmentItems(context.Background(), "")
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
}

package mws

import (
	"context"
	"time"
)

// InboundShipment is a shipment the seller sends into the fulfillment network.
type InboundShipment struct {
	ShipmentID                     string    `xml:"ShipmentId"`
	ShipmentName                   string    `xml:"ShipmentName"`
	ShipFromAddress                Address   `xml:"ShipFromAddress"`
	DestinationFulfillmentCenterID string    `xml:"DestinationFulfillmentCenterId"`
	LabelPrepType                  string    `xml:"LabelPrepType"`
	ShipmentStatus                 string    `xml:"ShipmentStatus"`
	AreCasesRequired               bool      `xml:"AreCasesRequired"`
	ConfirmedNeedByDate            time.Time `xml:"ConfirmedNeedByDate"`
	BoxContentsSource              string    `xml:"BoxContentsSource"`
}

// InboundShipmentList is a page of ListInboundShipments.
type InboundShipmentList struct {
	Response
	Shipments []InboundShipment `xml:"ShipmentData>member"`
	NextToken string            `xml:"NextToken"`
}

// Page adapts the list for a Pager.
func (l *InboundShipmentList) Page() *Page[InboundShipment] {
	return &Page[InboundShipment]{Items: l.Shipments, NextToken: l.NextToken}
}

// InboundShipmentItem is one SKU within an inbound shipment.
type InboundShipmentItem struct {
	ShipmentID            string `xml:"ShipmentId"`
	SellerSKU             string `xml:"SellerSKU"`
	FulfillmentNetworkSKU string `xml:"FulfillmentNetworkSKU"`
	QuantityShipped       int    `xml:"QuantityShipped"`
	QuantityReceived      int    `xml:"QuantityReceived"`
	QuantityInCase        int    `xml:"QuantityInCase"`
}

// InboundShipmentItemList is a page of ListInboundShipmentItems.
type InboundShipmentItemList struct {
	Response
	Items     []InboundShipmentItem `xml:"ItemData>member"`
	NextToken string                `xml:"NextToken"`
}

// Page adapts the list for a Pager.
func (l *InboundShipmentItemList) Page() *Page[InboundShipmentItem] {
	return &Page[InboundShipmentItem]{Items: l.Items, NextToken: l.NextToken}
}

// ListInboundShipmentsRequest needs ShipmentStatuses or ShipmentIDs.
type ListInboundShipmentsRequest struct {
	ShipmentStatuses  []string `validate:"dive,oneof=WORKING SHIPPED IN_TRANSIT DELIVERED CHECKED_IN RECEIVING CLOSED CANCELLED DELETED ERROR"`
	ShipmentIDs       []string
	LastUpdatedAfter  time.Time
	LastUpdatedBefore time.Time
}

// ListInboundShipments lists inbound shipments by status or ID.
func (c *Client) ListInboundShipments(
	ctx context.Context,
	req ListInboundShipmentsRequest,
) (*InboundShipmentList, error) {
	if err := c.check(req); err != nil {
		return nil, err
	}
	if len(req.ShipmentStatuses) == 0 && len(req.ShipmentIDs) == 0 {
		return nil, invalidf("ShipmentStatuses or ShipmentIDs is required")
	}
	if req.LastUpdatedAfter.IsZero() != req.LastUpdatedBefore.IsZero() {
		return nil, invalidf("LastUpdatedAfter and LastUpdatedBefore must be set together")
	}

	r := newRequest(SectionInbound, "ListInboundShipments", groupInbound)
	for i, s := range req.ShipmentStatuses {
		r.Params.Set(member("ShipmentStatusList", i+1, ""), s)
	}
	for i, id := range req.ShipmentIDs {
		r.Params.Set(member("ShipmentIdList", i+1, ""), id)
	}
	setTime(r.Params, "LastUpdatedAfter", req.LastUpdatedAfter)
	setTime(r.Params, "LastUpdatedBefore", req.LastUpdatedBefore)
	return call[InboundShipmentList](ctx, c, r)
}

// ListInboundShipmentsByNextToken continues ListInboundShipments.
func (c *Client) ListInboundShipmentsByNextToken(
	ctx context.Context,
	token string,
) (*InboundShipmentList, error) {
	return callNextToken[InboundShipmentList](
		ctx, c, SectionInbound, "ListInboundShipmentsByNextToken", groupInbound, token,
	)
}

// InboundShipmentPager walks every page of ListInboundShipments.
func (c *Client) InboundShipmentPager(
	req ListInboundShipmentsRequest,
	opts ...PagerOption,
) *Pager[InboundShipment] {
	return listPager[InboundShipment](
		func(ctx context.Context) (*InboundShipmentList, error) { return c.ListInboundShipments(ctx, req) },
		c.ListInboundShipmentsByNextToken,
		opts...,
	)
}

// ListInboundShipmentItems lists the items of one shipment.
func (c *Client) ListInboundShipmentItems(
	ctx context.Context,
	shipmentID string,
) (*InboundShipmentItemList, error) {
	if shipmentID == "" {
		return nil, invalidf("shipment ID is required")
	}
	r := newRequest(SectionInbound, "ListInboundShipmentItems", groupInbound)
	r.Params.Set("ShipmentId", shipmentID)
	return call[InboundShipmentItemList](ctx, c, r)
}

// ListInboundShipmentItemsByNextToken continues ListInboundShipmentItems.
func (c *Client) ListInboundShipmentItemsByNextToken(
	ctx context.Context,
	token string,
) (*InboundShipmentItemList, error) {
	return callNextToken[InboundShipmentItemList](
		ctx, c, SectionInbound, "ListInboundShipmentItemsByNextToken", groupInbound, token,
	)
}

// InboundShipmentItemPager walks every page of ListInboundShipmentItems.
func (c *Client) InboundShipmentItemPager(
	shipmentID string,
	opts ...PagerOption,
) *Pager[InboundShipmentItem] {
	return listPager[InboundShipmentItem](
		func(ctx context.Context) (*InboundShipmentItemList, error) {
			return c.ListInboundShipmentItems(ctx, shipmentID)
		},
		c.ListInboundShipmentItemsByNextToken,
		opts...,
	)
}

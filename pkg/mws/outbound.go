package mws

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FulfillmentOrder is a multi-channel fulfillment order header.
type FulfillmentOrder struct {
	SellerFulfillmentOrderID string    `xml:"SellerFulfillmentOrderId"`
	DisplayableOrderID       string    `xml:"DisplayableOrderId"`
	DisplayableOrderDateTime time.Time `xml:"DisplayableOrderDateTime"`
	DisplayableOrderComment  string    `xml:"DisplayableOrderComment"`
	ShippingSpeedCategory    string    `xml:"ShippingSpeedCategory"`
	DestinationAddress       Address   `xml:"DestinationAddress"`
	FulfillmentAction        string    `xml:"FulfillmentAction"`
	FulfillmentPolicy        string    `xml:"FulfillmentPolicy"`
	FulfillmentOrderStatus   string    `xml:"FulfillmentOrderStatus"`
	ReceivedDateTime         time.Time `xml:"ReceivedDateTime"`
	StatusUpdatedDateTime    time.Time `xml:"StatusUpdatedDateTime"`
	NotificationEmails       []string  `xml:"NotificationEmailList>member"`
}

// FulfillmentOrderList is a page of ListAllFulfillmentOrders.
type FulfillmentOrderList struct {
	Response
	Orders    []FulfillmentOrder `xml:"FulfillmentOrders>member"`
	NextToken string             `xml:"NextToken"`
}

// Page adapts the list for a Pager.
func (l *FulfillmentOrderList) Page() *Page[FulfillmentOrder] {
	return &Page[FulfillmentOrder]{Items: l.Orders, NextToken: l.NextToken}
}

// FulfillmentOrderItem is a line of a fulfillment order.
type FulfillmentOrderItem struct {
	SellerSKU                    string    `xml:"SellerSKU"`
	SellerFulfillmentOrderItemID string    `xml:"SellerFulfillmentOrderItemId"`
	Quantity                     int       `xml:"Quantity"`
	CancelledQuantity            int       `xml:"CancelledQuantity"`
	UnfulfillableQuantity        int       `xml:"UnfulfillableQuantity"`
	EstimatedShipDateTime        time.Time `xml:"EstimatedShipDateTime"`
	EstimatedArrivalDateTime     time.Time `xml:"EstimatedArrivalDateTime"`
}

// FulfillmentPackage is a tracked package of an outbound shipment.
type FulfillmentPackage struct {
	PackageNumber  int    `xml:"PackageNumber"`
	CarrierCode    string `xml:"CarrierCode"`
	TrackingNumber string `xml:"TrackingNumber"`
}

// FulfillmentShipment is a shipment created for a fulfillment order.
type FulfillmentShipment struct {
	AmazonShipmentID          string               `xml:"AmazonShipmentId"`
	FulfillmentCenterID       string               `xml:"FulfillmentCenterId"`
	FulfillmentShipmentStatus string               `xml:"FulfillmentShipmentStatus"`
	ShippingDateTime          time.Time            `xml:"ShippingDateTime"`
	EstimatedArrivalDateTime  time.Time            `xml:"EstimatedArrivalDateTime"`
	Packages                  []FulfillmentPackage `xml:"FulfillmentShipmentPackage>member"`
}

// FulfillmentOrderDetail is the result of GetFulfillmentOrder.
type FulfillmentOrderDetail struct {
	Response
	Order     FulfillmentOrder       `xml:"FulfillmentOrder"`
	Items     []FulfillmentOrderItem `xml:"FulfillmentOrderItem>member"`
	Shipments []FulfillmentShipment  `xml:"FulfillmentShipment>member"`
}

// FulfillmentItem is a line of a new fulfillment order or preview.
type FulfillmentItem struct {
	SellerSKU                    string `validate:"required"`
	SellerFulfillmentOrderItemID string `validate:"required"`
	Quantity                     int    `validate:"min=1"`
	PerUnitDeclaredValue         *Money
}

// CreateFulfillmentOrderRequest describes a new fulfillment order. A
// SellerFulfillmentOrderID is generated when empty, and DisplayableOrderID
// defaults to it.
type CreateFulfillmentOrderRequest struct {
	SellerFulfillmentOrderID string `validate:"omitempty,max=40"`
	DisplayableOrderID       string `validate:"omitempty,max=40"`
	DisplayableOrderDateTime time.Time
	DisplayableOrderComment  string            `validate:"required,max=1000"`
	ShippingSpeedCategory    string            `validate:"oneof=Standard Expedited Priority ScheduledDelivery"`
	DestinationAddress       Address           `validate:"required"`
	FulfillmentAction        string            `validate:"omitempty,oneof=Ship Hold"`
	FulfillmentPolicy        string            `validate:"omitempty,oneof=FillOrKill FillAll FillAllAvailable"`
	NotificationEmails       []string          `validate:"dive,email"`
	Items                    []FulfillmentItem `validate:"required,min=1,dive"`
}

func setOutboundAddress(params url.Values, prefix string, a Address) {
	params.Set(prefix+".Name", a.Name)
	params.Set(prefix+".Line1", a.AddressLine1)
	setString(params, prefix+".Line2", a.AddressLine2)
	setString(params, prefix+".Line3", a.AddressLine3)
	setString(params, prefix+".DistrictOrCounty", a.County)
	setString(params, prefix+".City", a.City)
	setString(params, prefix+".StateOrProvinceCode", a.StateOrRegion)
	params.Set(prefix+".CountryCode", a.CountryCode)
	setString(params, prefix+".PostalCode", a.PostalCode)
	setString(params, prefix+".PhoneNumber", a.Phone)
}

func setFulfillmentItems(params url.Values, prefix string, items []FulfillmentItem) {
	for i, it := range items {
		key := member(prefix, i+1, "")
		params.Set(key+".SellerSKU", it.SellerSKU)
		params.Set(key+".SellerFulfillmentOrderItemId", it.SellerFulfillmentOrderItemID)
		params.Set(key+".Quantity", strconv.Itoa(it.Quantity))
		if it.PerUnitDeclaredValue != nil {
			params.Set(key+".PerUnitDeclaredValue.Value", it.PerUnitDeclaredValue.Amount.StringFixed(2))
			params.Set(key+".PerUnitDeclaredValue.CurrencyCode", it.PerUnitDeclaredValue.CurrencyCode)
		}
	}
}

// CreateFulfillmentOrder submits a fulfillment order and returns its
// SellerFulfillmentOrderId.
func (c *Client) CreateFulfillmentOrder(
	ctx context.Context,
	req CreateFulfillmentOrderRequest,
) (string, error) {
	if err := c.check(req); err != nil {
		return "", err
	}
	if req.SellerFulfillmentOrderID == "" {
		req.SellerFulfillmentOrderID = uuid.NewString()
	}
	if req.DisplayableOrderID == "" {
		req.DisplayableOrderID = req.SellerFulfillmentOrderID
	}
	if req.DisplayableOrderDateTime.IsZero() {
		req.DisplayableOrderDateTime = c.nowFunc()
	}

	r := newRequest(SectionOutbound, "CreateFulfillmentOrder", groupOutbound)
	r.Params.Set("SellerFulfillmentOrderId", req.SellerFulfillmentOrderID)
	r.Params.Set("DisplayableOrderId", req.DisplayableOrderID)
	setTime(r.Params, "DisplayableOrderDateTime", req.DisplayableOrderDateTime)
	r.Params.Set("DisplayableOrderComment", req.DisplayableOrderComment)
	r.Params.Set("ShippingSpeedCategory", req.ShippingSpeedCategory)
	setOutboundAddress(r.Params, "DestinationAddress", req.DestinationAddress)
	setString(r.Params, "FulfillmentAction", req.FulfillmentAction)
	setString(r.Params, "FulfillmentPolicy", req.FulfillmentPolicy)
	for i, email := range req.NotificationEmails {
		r.Params.Set(member("NotificationEmailList", i+1, ""), email)
	}
	setFulfillmentItems(r.Params, "Items", req.Items)

	if _, err := call[Response](ctx, c, r); err != nil {
		return "", err
	}
	return req.SellerFulfillmentOrderID, nil
}

// GetFulfillmentOrder returns an order with its items and shipments.
func (c *Client) GetFulfillmentOrder(
	ctx context.Context,
	sellerFulfillmentOrderID string,
) (*FulfillmentOrderDetail, error) {
	if sellerFulfillmentOrderID == "" {
		return nil, invalidf("seller fulfillment order ID is required")
	}
	r := newRequest(SectionOutbound, "GetFulfillmentOrder", groupOutbound)
	r.Params.Set("SellerFulfillmentOrderId", sellerFulfillmentOrderID)
	return call[FulfillmentOrderDetail](ctx, c, r)
}

// CancelFulfillmentOrder cancels an order that has not shipped yet.
func (c *Client) CancelFulfillmentOrder(
	ctx context.Context,
	sellerFulfillmentOrderID string,
) error {
	if sellerFulfillmentOrderID == "" {
		return invalidf("seller fulfillment order ID is required")
	}
	r := newRequest(SectionOutbound, "CancelFulfillmentOrder", groupOutbound)
	r.Params.Set("SellerFulfillmentOrderId", sellerFulfillmentOrderID)
	_, err := call[Response](ctx, c, r)
	return err
}

// ListAllFulfillmentOrders lists orders changed since queryStartDate.
func (c *Client) ListAllFulfillmentOrders(
	ctx context.Context,
	queryStartDate time.Time,
) (*FulfillmentOrderList, error) {
	r := newRequest(SectionOutbound, "ListAllFulfillmentOrders", groupOutbound)
	setTime(r.Params, "QueryStartDateTime", queryStartDate)
	return call[FulfillmentOrderList](ctx, c, r)
}

// ListAllFulfillmentOrdersByNextToken continues ListAllFulfillmentOrders.
func (c *Client) ListAllFulfillmentOrdersByNextToken(
	ctx context.Context,
	token string,
) (*FulfillmentOrderList, error) {
	return callNextToken[FulfillmentOrderList](
		ctx, c, SectionOutbound, "ListAllFulfillmentOrdersByNextToken", groupOutbound, token,
	)
}

// FulfillmentOrderPager walks every page of ListAllFulfillmentOrders.
func (c *Client) FulfillmentOrderPager(
	queryStartDate time.Time,
	opts ...PagerOption,
) *Pager[FulfillmentOrder] {
	return listPager[FulfillmentOrder](
		func(ctx context.Context) (*FulfillmentOrderList, error) {
			return c.ListAllFulfillmentOrders(ctx, queryStartDate)
		},
		c.ListAllFulfillmentOrdersByNextToken,
		opts...,
	)
}

// PreviewFee is an estimated fulfillment fee.
type PreviewFee struct {
	Name   string `xml:"Name"`
	Amount Money  `xml:"Amount"`
}

// PreviewShipment is the estimated timing of one preview shipment.
type PreviewShipment struct {
	EarliestShipDate    time.Time `xml:"EarliestShipDate"`
	LatestShipDate      time.Time `xml:"LatestShipDate"`
	EarliestArrivalDate time.Time `xml:"EarliestArrivalDate"`
	LatestArrivalDate   time.Time `xml:"LatestArrivalDate"`
}

// UnfulfillableItem is an item a preview could not fulfill.
type UnfulfillableItem struct {
	SellerSKU                    string   `xml:"SellerSKU"`
	SellerFulfillmentOrderItemID string   `xml:"SellerFulfillmentOrderItemId"`
	Quantity                     int      `xml:"Quantity"`
	ReasonCodes                  []string `xml:"ItemUnfulfillableReasons>member"`
}

// FulfillmentPreview is the outcome for one shipping speed.
type FulfillmentPreview struct {
	ShippingSpeedCategory string              `xml:"ShippingSpeedCategory"`
	IsFulfillable         bool                `xml:"IsFulfillable"`
	IsCODCapable          bool                `xml:"IsCODCapable"`
	Fees                  []PreviewFee        `xml:"EstimatedFees>member"`
	Shipments             []PreviewShipment   `xml:"FulfillmentPreviewShipments>member"`
	UnfulfillableItems    []UnfulfillableItem `xml:"UnfulfillablePreviewItems>member"`
}

// FulfillmentPreviewResult is the result of GetFulfillmentPreview.
type FulfillmentPreviewResult struct {
	Response
	Previews []FulfillmentPreview `xml:"FulfillmentPreviews>member"`
}

// FulfillmentPreviewRequest asks how an order would be fulfilled.
type FulfillmentPreviewRequest struct {
	Address                 Address           `validate:"required"`
	Items                   []FulfillmentItem `validate:"required,min=1,dive"`
	ShippingSpeedCategories []string          `validate:"dive,oneof=Standard Expedited Priority ScheduledDelivery"`
}

// GetFulfillmentPreview estimates fees and dates for a hypothetical order.
func (c *Client) GetFulfillmentPreview(
	ctx context.Context,
	req FulfillmentPreviewRequest,
) (*FulfillmentPreviewResult, error) {
	if err := c.check(req); err != nil {
		return nil, err
	}
	r := newRequest(SectionOutbound, "GetFulfillmentPreview", groupOutbound)
	setOutboundAddress(r.Params, "Address", req.Address)
	setFulfillmentItems(r.Params, "Items", req.Items)
	for i, s := range req.ShippingSpeedCategories {
		r.Params.Set(member("ShippingSpeedCategories", i+1, ""), s)
	}
	return call[FulfillmentPreviewResult](ctx, c, r)
}

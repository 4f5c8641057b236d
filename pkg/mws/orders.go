package mws

import (
	"context"
	"time"
)

// Order is a customer order header.
type Order struct {
	AmazonOrderID                string    `xml:"AmazonOrderId"`
	SellerOrderID                string    `xml:"SellerOrderId"`
	PurchaseDate                 time.Time `xml:"PurchaseDate"`
	LastUpdateDate               time.Time `xml:"LastUpdateDate"`
	OrderStatus                  string    `xml:"OrderStatus"`
	FulfillmentChannel           string    `xml:"FulfillmentChannel"`
	SalesChannel                 string    `xml:"SalesChannel"`
	ShipServiceLevel             string    `xml:"ShipServiceLevel"`
	ShippingAddress              *Address  `xml:"ShippingAddress"`
	OrderTotal                   *Money    `xml:"OrderTotal"`
	NumberOfItemsShipped         int       `xml:"NumberOfItemsShipped"`
	NumberOfItemsUnshipped       int       `xml:"NumberOfItemsUnshipped"`
	PaymentMethod                string    `xml:"PaymentMethod"`
	MarketplaceID                string    `xml:"MarketplaceId"`
	BuyerEmail                   string    `xml:"BuyerEmail"`
	BuyerName                    string    `xml:"BuyerName"`
	ShipmentServiceLevelCategory string    `xml:"ShipmentServiceLevelCategory"`
	OrderType                    string    `xml:"OrderType"`
	EarliestShipDate             time.Time `xml:"EarliestShipDate"`
	LatestShipDate               time.Time `xml:"LatestShipDate"`
	IsBusinessOrder              bool      `xml:"IsBusinessOrder"`
	IsPrime                      bool      `xml:"IsPrime"`
	IsPremiumOrder               bool      `xml:"IsPremiumOrder"`
}

// OrderList is the result of ListOrders, ListOrdersByNextToken and GetOrder.
type OrderList struct {
	Response
	Orders            []Order   `xml:"Orders>Order"`
	NextToken         string    `xml:"NextToken"`
	CreatedBefore     time.Time `xml:"CreatedBefore"`
	LastUpdatedBefore time.Time `xml:"LastUpdatedBefore"`
}

// Page adapts the list for a Pager.
func (l *OrderList) Page() *Page[Order] {
	return &Page[Order]{Items: l.Orders, NextToken: l.NextToken}
}

// OrderItem is one line of an order.
type OrderItem struct {
	ASIN               string   `xml:"ASIN"`
	SellerSKU          string   `xml:"SellerSKU"`
	OrderItemID        string   `xml:"OrderItemId"`
	Title              string   `xml:"Title"`
	QuantityOrdered    int      `xml:"QuantityOrdered"`
	QuantityShipped    int      `xml:"QuantityShipped"`
	ItemPrice          *Money   `xml:"ItemPrice"`
	ShippingPrice      *Money   `xml:"ShippingPrice"`
	GiftWrapPrice      *Money   `xml:"GiftWrapPrice"`
	ItemTax            *Money   `xml:"ItemTax"`
	ShippingTax        *Money   `xml:"ShippingTax"`
	ShippingDiscount   *Money   `xml:"ShippingDiscount"`
	PromotionDiscount  *Money   `xml:"PromotionDiscount"`
	ConditionID        string   `xml:"ConditionId"`
	ConditionSubtypeID string   `xml:"ConditionSubtypeId"`
	ConditionNote      string   `xml:"ConditionNote"`
	PromotionIDs       []string `xml:"PromotionIds>PromotionId"`
}

// OrderItemList is the result of ListOrderItems and its ByNextToken form.
type OrderItemList struct {
	Response
	AmazonOrderID string      `xml:"AmazonOrderId"`
	Items         []OrderItem `xml:"OrderItems>OrderItem"`
	NextToken     string      `xml:"NextToken"`
}

// Page adapts the list for a Pager.
func (l *OrderItemList) Page() *Page[OrderItem] {
	return &Page[OrderItem]{Items: l.Items, NextToken: l.NextToken}
}

// ListOrdersRequest filters ListOrders. Exactly one of CreatedAfter and
// LastUpdatedAfter must be set.
type ListOrdersRequest struct {
	CreatedAfter        time.Time
	CreatedBefore       time.Time
	LastUpdatedAfter    time.Time
	LastUpdatedBefore   time.Time
	OrderStatuses       []string `validate:"dive,oneof=PendingAvailability Pending Unshipped PartiallyShipped Shipped InvoiceUnconfirmed Canceled Unfulfillable"`
	MarketplaceIDs      []string `validate:"max=50"`
	FulfillmentChannels []string `validate:"dive,oneof=AFN MFN"`
	PaymentMethods      []string `validate:"dive,oneof=COD CVS Other"`
	BuyerEmail          string   `validate:"omitempty,email"`
	SellerOrderID       string
	MaxResultsPerPage   int `validate:"omitempty,min=1,max=100"`
	TFMShipmentStatuses []string
}

// ListOrders returns orders created or updated in a time window.
func (c *Client) ListOrders(ctx context.Context, req ListOrdersRequest) (*OrderList, error) {
	if err := c.check(req); err != nil {
		return nil, err
	}
	if req.CreatedAfter.IsZero() == req.LastUpdatedAfter.IsZero() {
		return nil, invalidf("exactly one of CreatedAfter and LastUpdatedAfter is required")
	}
	if !req.CreatedAfter.IsZero() && !req.LastUpdatedBefore.IsZero() {
		return nil, invalidf("LastUpdatedBefore cannot be combined with CreatedAfter")
	}
	if !req.LastUpdatedAfter.IsZero() && !req.CreatedBefore.IsZero() {
		return nil, invalidf("CreatedBefore cannot be combined with LastUpdatedAfter")
	}

	r := newRequest(SectionOrders, "ListOrders", "ListOrders")
	setTime(r.Params, "CreatedAfter", req.CreatedAfter)
	setTime(r.Params, "CreatedBefore", req.CreatedBefore)
	setTime(r.Params, "LastUpdatedAfter", req.LastUpdatedAfter)
	setTime(r.Params, "LastUpdatedBefore", req.LastUpdatedBefore)
	setList(r.Params, "MarketplaceId.Id", c.marketplaceIDs(req.MarketplaceIDs))
	setList(r.Params, "OrderStatus.Status", req.OrderStatuses)
	setList(r.Params, "FulfillmentChannel.Channel", req.FulfillmentChannels)
	setList(r.Params, "PaymentMethod.Method", req.PaymentMethods)
	setList(r.Params, "TFMShipmentStatus.Status", req.TFMShipmentStatuses)
	setString(r.Params, "BuyerEmail", req.BuyerEmail)
	setString(r.Params, "SellerOrderId", req.SellerOrderID)
	setInt(r.Params, "MaxResultsPerPage", req.MaxResultsPerPage)

	return call[OrderList](ctx, c, r)
}

// ListOrdersByNextToken continues a ListOrders call.
func (c *Client) ListOrdersByNextToken(ctx context.Context, token string) (*OrderList, error) {
	return callNextToken[OrderList](ctx, c, SectionOrders, "ListOrdersByNextToken", "ListOrders", token)
}

// OrderPager walks every page of a ListOrders call.
func (c *Client) OrderPager(req ListOrdersRequest, opts ...PagerOption) *Pager[Order] {
	return listPager[Order](
		func(ctx context.Context) (*OrderList, error) { return c.ListOrders(ctx, req) },
		c.ListOrdersByNextToken,
		opts...,
	)
}

// GetOrder fetches up to 50 orders by ID.
func (c *Client) GetOrder(ctx context.Context, ids ...string) (*OrderList, error) {
	if len(ids) == 0 || len(ids) > 50 {
		return nil, invalidf("GetOrder takes 1 to 50 order IDs, got %d", len(ids))
	}
	r := newRequest(SectionOrders, "GetOrder", "GetOrder")
	setList(r.Params, "AmazonOrderId.Id", ids)
	return call[OrderList](ctx, c, r)
}

// ListOrderItems returns the items of one order.
func (c *Client) ListOrderItems(ctx context.Context, amazonOrderID string) (*OrderItemList, error) {
	if amazonOrderID == "" {
		return nil, invalidf("order ID is required")
	}
	r := newRequest(SectionOrders, "ListOrderItems", "ListOrderItems")
	r.Params.Set("AmazonOrderId", amazonOrderID)
	return call[OrderItemList](ctx, c, r)
}

// ListOrderItemsByNextToken continues a ListOrderItems call.
func (c *Client) ListOrderItemsByNextToken(
	ctx context.Context,
	token string,
) (*OrderItemList, error) {
	return callNextToken[OrderItemList](
		ctx, c, SectionOrders, "ListOrderItemsByNextToken", "ListOrderItems", token,
	)
}

// OrderItemPager walks every page of ListOrderItems for one order.
func (c *Client) OrderItemPager(amazonOrderID string, opts ...PagerOption) *Pager[OrderItem] {
	return listPager[OrderItem](
		func(ctx context.Context) (*OrderItemList, error) {
			return c.ListOrderItems(ctx, amazonOrderID)
		},
		c.ListOrderItemsByNextToken,
		opts...,
	)
}

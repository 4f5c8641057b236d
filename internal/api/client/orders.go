package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

// ListOrdersParams filters GET /api/v1/orders. Zero values are omitted.
type ListOrdersParams struct {
	Store              string
	Statuses           []string
	FulfillmentChannel string
	PurchasedAfter     time.Time
	PurchasedBefore    time.Time
	Limit              int
	Offset             int
	OrderBy            string
}

func (p *ListOrdersParams) encode() string {
	v := url.Values{}
	setIf(v, "store", p.Store)
	setIf(v, "status", strings.Join(p.Statuses, ","))
	setIf(v, "fulfillment_channel", p.FulfillmentChannel)
	if !p.PurchasedAfter.IsZero() {
		v.Set("purchased_after", p.PurchasedAfter.UTC().Format(time.RFC3339))
	}
	if !p.PurchasedBefore.IsZero() {
		v.Set("purchased_before", p.PurchasedBefore.UTC().Format(time.RFC3339))
	}
	setPositive(v, "limit", p.Limit)
	setPositive(v, "offset", p.Offset)
	setIf(v, "order_by", p.OrderBy)
	return v.Encode()
}

// OrdersResponse is one page of stored orders.
type OrdersResponse struct {
	Orders []domain.Order `json:"orders"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ListOrders returns stored orders matching p.
func (c *Client) ListOrders(ctx context.Context, p *ListOrdersParams) (*OrdersResponse, error) {
	path := "/api/v1/orders"
	if p != nil {
		if q := p.encode(); q != "" {
			path += "?" + q
		}
	}

	var resp OrdersResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrder returns one stored order.
func (c *Client) GetOrder(ctx context.Context, store, amazonOrderID string) (*domain.Order, error) {
	var o domain.Order
	if err := c.get(ctx, orderPath(store, amazonOrderID, ""), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrderItems returns the stored lines of one order.
func (c *Client) ListOrderItems(
	ctx context.Context,
	store, amazonOrderID string,
) ([]domain.OrderItem, error) {
	var resp struct {
		Items []domain.OrderItem `json:"items"`
	}
	if err := c.get(ctx, orderPath(store, amazonOrderID, "/items"), &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func orderPath(store, id, suffix string) string {
	return "/api/v1/orders/" + url.PathEscape(id) + suffix + "?store=" + url.QueryEscape(store)
}

func setIf(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setPositive(v url.Values, key string, n int) {
	if n > 0 {
		v.Set(key, strconv.Itoa(n))
	}
}

package mws

import (
	"context"
	"time"
)

// SupplyDetail is one slice of a SKU's supply by availability.
type SupplyDetail struct {
	Quantity                int       `xml:"Quantity"`
	SupplyType              string    `xml:"SupplyType"`
	EarliestAvailableToPick string    `xml:"EarliestAvailableToPick>TimepointType"`
	EarliestPickDate        time.Time `xml:"EarliestAvailableToPick>DateTime"`
	LatestAvailableToPick   string    `xml:"LatestAvailableToPick>TimepointType"`
}

// InventorySupply is the fulfillment network supply of one SKU.
type InventorySupply struct {
	SellerSKU             string         `xml:"SellerSKU"`
	FNSKU                 string         `xml:"FNSKU"`
	ASIN                  string         `xml:"ASIN"`
	Condition             string         `xml:"Condition"`
	TotalSupplyQuantity   int            `xml:"TotalSupplyQuantity"`
	InStockSupplyQuantity int            `xml:"InStockSupplyQuantity"`
	EarliestAvailability  string         `xml:"EarliestAvailability>TimepointType"`
	SupplyDetail          []SupplyDetail `xml:"SupplyDetail>member"`
}

// InventorySupplyList is a page of ListInventorySupply.
type InventorySupplyList struct {
	Response
	MarketplaceID string            `xml:"MarketplaceId"`
	Supplies      []InventorySupply `xml:"InventorySupplyList>member"`
	NextToken     string            `xml:"NextToken"`
}

// Page adapts the list for a Pager.
func (l *InventorySupplyList) Page() *Page[InventorySupply] {
	return &Page[InventorySupply]{Items: l.Supplies, NextToken: l.NextToken}
}

// ListInventorySupplyRequest selects SKUs either by name or by a
// last-changed time, not both.
type ListInventorySupplyRequest struct {
	SellerSKUs         []string `validate:"max=50"`
	QueryStartDateTime time.Time
	ResponseGroup      string `validate:"omitempty,oneof=Basic Detailed"`
	MarketplaceID      string
}

// ListInventorySupply returns supply levels for SKUs.
func (c *Client) ListInventorySupply(
	ctx context.Context,
	req ListInventorySupplyRequest,
) (*InventorySupplyList, error) {
	if err := c.check(req); err != nil {
		return nil, err
	}
	if (len(req.SellerSKUs) == 0) == req.QueryStartDateTime.IsZero() {
		return nil, invalidf("exactly one of SellerSKUs and QueryStartDateTime is required")
	}

	r := newRequest(SectionInventory, "ListInventorySupply", groupInventory)
	for i, sku := range req.SellerSKUs {
		r.Params.Set(member("SellerSkus", i+1, ""), sku)
	}
	setTime(r.Params, "QueryStartDateTime", req.QueryStartDateTime)
	setString(r.Params, "ResponseGroup", req.ResponseGroup)
	setString(r.Params, "MarketplaceId", req.MarketplaceID)
	return call[InventorySupplyList](ctx, c, r)
}

// ListInventorySupplyByNextToken continues ListInventorySupply.
func (c *Client) ListInventorySupplyByNextToken(
	ctx context.Context,
	token string,
) (*InventorySupplyList, error) {
	return callNextToken[InventorySupplyList](
		ctx, c, SectionInventory, "ListInventorySupplyByNextToken", groupInventory, token,
	)
}

// InventoryPager walks every page of ListInventorySupply.
func (c *Client) InventoryPager(
	req ListInventorySupplyRequest,
	opts ...PagerOption,
) *Pager[InventorySupply] {
	return listPager[InventorySupply](
		func(ctx context.Context) (*InventorySupplyList, error) { return c.ListInventorySupply(ctx, req) },
		c.ListInventorySupplyByNextToken,
		opts...,
	)
}

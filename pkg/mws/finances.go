package mws

import (
	"context"
	"time"
)

// FinancialEventGroup is a settlement period.
type FinancialEventGroup struct {
	FinancialEventGroupID    string    `xml:"FinancialEventGroupId"`
	ProcessingStatus         string    `xml:"ProcessingStatus"`
	FundTransferStatus       string    `xml:"FundTransferStatus"`
	OriginalTotal            *Money    `xml:"OriginalTotal"`
	ConvertedTotal           *Money    `xml:"ConvertedTotal"`
	FundTransferDate         time.Time `xml:"FundTransferDate"`
	TraceID                  string    `xml:"TraceId"`
	AccountTail              string    `xml:"AccountTail"`
	BeginningBalance         *Money    `xml:"BeginningBalance"`
	FinancialEventGroupStart time.Time `xml:"FinancialEventGroupStart"`
	FinancialEventGroupEnd   time.Time `xml:"FinancialEventGroupEnd"`
}

// FinancialEventGroupList is a page of ListFinancialEventGroups.
type FinancialEventGroupList struct {
	Response
	Groups    []FinancialEventGroup `xml:"FinancialEventGroupList>FinancialEventGroup"`
	NextToken string                `xml:"NextToken"`
}

// Page adapts the list for a Pager.
func (l *FinancialEventGroupList) Page() *Page[FinancialEventGroup] {
	return &Page[FinancialEventGroup]{Items: l.Groups, NextToken: l.NextToken}
}

// ChargeComponent is a charge to the buyer.
type ChargeComponent struct {
	ChargeType   string `xml:"ChargeType"`
	ChargeAmount Money  `xml:"ChargeAmount"`
}

// FeeComponent is a fee charged to the seller.
type FeeComponent struct {
	FeeType   string `xml:"FeeType"`
	FeeAmount Money  `xml:"FeeAmount"`
}

// ShipmentItem is an item of a shipment or refund event.
type ShipmentItem struct {
	SellerSKU             string            `xml:"SellerSKU"`
	OrderItemID           string            `xml:"OrderItemId"`
	OrderAdjustmentItemID string            `xml:"OrderAdjustmentItemId"`
	QuantityShipped       int               `xml:"QuantityShipped"`
	Charges               []ChargeComponent `xml:"ItemChargeList>ChargeComponent"`
	ChargeAdjustments     []ChargeComponent `xml:"ItemChargeAdjustmentList>ChargeComponent"`
	Fees                  []FeeComponent    `xml:"ItemFeeList>FeeComponent"`
	FeeAdjustments        []FeeComponent    `xml:"ItemFeeAdjustmentList>FeeComponent"`
}

// ShipmentEvent is a shipment or, in FinancialEvents.Refunds, a refund.
type ShipmentEvent struct {
	AmazonOrderID   string         `xml:"AmazonOrderId"`
	SellerOrderID   string         `xml:"SellerOrderId"`
	MarketplaceName string         `xml:"MarketplaceName"`
	PostedDate      time.Time      `xml:"PostedDate"`
	Items           []ShipmentItem `xml:"ShipmentItemList>ShipmentItem"`
	ItemAdjustments []ShipmentItem `xml:"ShipmentItemAdjustmentList>ShipmentItem"`
}

// ServiceFeeEvent is a fee not tied to a shipment.
type ServiceFeeEvent struct {
	AmazonOrderID  string         `xml:"AmazonOrderId"`
	FeeReason      string         `xml:"FeeReason"`
	SellerSKU      string         `xml:"SellerSKU"`
	FnSKU          string         `xml:"FnSKU"`
	FeeDescription string         `xml:"FeeDescription"`
	ASIN           string         `xml:"ASIN"`
	Fees           []FeeComponent `xml:"FeeList>FeeComponent"`
}

// FinancialEvents is a page of ListFinancialEvents. Only shipment, refund
// and service fee events are mapped.
type FinancialEvents struct {
	Response
	Shipments   []ShipmentEvent   `xml:"FinancialEvents>ShipmentEventList>ShipmentEvent"`
	Refunds     []ShipmentEvent   `xml:"FinancialEvents>RefundEventList>ShipmentEvent"`
	ServiceFees []ServiceFeeEvent `xml:"FinancialEvents>ServiceFeeEventList>ServiceFeeEvent"`
	NextToken   string            `xml:"NextToken"`
}

// Page adapts the events for a Pager; each page yields itself.
func (e *FinancialEvents) Page() *Page[FinancialEvents] {
	return &Page[FinancialEvents]{Items: []FinancialEvents{*e}, NextToken: e.NextToken}
}

// Merge appends the events of other.
func (e *FinancialEvents) Merge(other FinancialEvents) {
	e.Shipments = append(e.Shipments, other.Shipments...)
	e.Refunds = append(e.Refunds, other.Refunds...)
	e.ServiceFees = append(e.ServiceFees, other.ServiceFees...)
}

// ListFinancialEventGroups lists settlement periods opened in a window.
func (c *Client) ListFinancialEventGroups(
	ctx context.Context,
	startedAfter, startedBefore time.Time,
	maxResults int,
) (*FinancialEventGroupList, error) {
	if startedAfter.IsZero() {
		return nil, invalidf("FinancialEventGroupStartedAfter is required")
	}
	if maxResults < 0 || maxResults > 100 {
		return nil, invalidf(
			"MaxResultsPerPage must be 0 to 100 (0 for default), got %d", maxResults)
	}
	r := newRequest(SectionFinances, "ListFinancialEventGroups", groupFinances)
	setTime(r.Params, "FinancialEventGroupStartedAfter", startedAfter)
	setTime(r.Params, "FinancialEventGroupStartedBefore", startedBefore)
	setInt(r.Params, "MaxResultsPerPage", maxResults)
	return call[FinancialEventGroupList](ctx, c, r)
}

// ListFinancialEventGroupsByNextToken continues ListFinancialEventGroups.
func (c *Client) ListFinancialEventGroupsByNextToken(
	ctx context.Context,
	token string,
) (*FinancialEventGroupList, error) {
	return callNextToken[FinancialEventGroupList](
		ctx, c, SectionFinances, "ListFinancialEventGroupsByNextToken", groupFinances, token,
	)
}

// FinancialEventGroupPager walks every page of ListFinancialEventGroups.
func (c *Client) FinancialEventGroupPager(
	startedAfter, startedBefore time.Time,
	maxResults int,
	opts ...PagerOption,
) *Pager[FinancialEventGroup] {
	return listPager[FinancialEventGroup](
		func(ctx context.Context) (*FinancialEventGroupList, error) {
			return c.ListFinancialEventGroups(ctx, startedAfter, startedBefore, maxResults)
		},
		c.ListFinancialEventGroupsByNextToken,
		opts...,
	)
}

// ListFinancialEventsRequest selects events by order, by group or by
// posted date; exactly one selector is allowed.
type ListFinancialEventsRequest struct {
	AmazonOrderID         string
	FinancialEventGroupID string
	PostedAfter           time.Time
	PostedBefore          time.Time
	MaxResultsPerPage     int `validate:"omitempty,min=1,max=100"`
}

// ListFinancialEvents returns financial events for the selector in req.
func (c *Client) ListFinancialEvents(
	ctx context.Context,
	req ListFinancialEventsRequest,
) (*FinancialEvents, error) {
	if err := c.check(req); err != nil {
		return nil, err
	}
	selectors := 0
	for _, set := range []bool{req.AmazonOrderID != "", req.FinancialEventGroupID != "", !req.PostedAfter.IsZero()} {
		if set {
			selectors++
		}
	}
	if selectors != 1 {
		return nil, invalidf("exactly one of AmazonOrderID, FinancialEventGroupID and PostedAfter is required")
	}
	if !req.PostedBefore.IsZero() && req.PostedAfter.IsZero() {
		return nil, invalidf("PostedBefore requires PostedAfter")
	}

	r := newRequest(SectionFinances, "ListFinancialEvents", groupFinances)
	setString(r.Params, "AmazonOrderId", req.AmazonOrderID)
	setString(r.Params, "FinancialEventGroupId", req.FinancialEventGroupID)
	setTime(r.Params, "PostedAfter", req.PostedAfter)
	setTime(r.Params, "PostedBefore", req.PostedBefore)
	setInt(r.Params, "MaxResultsPerPage", req.MaxResultsPerPage)
	return call[FinancialEvents](ctx, c, r)
}

// ListFinancialEventsByNextToken continues ListFinancialEvents.
func (c *Client) ListFinancialEventsByNextToken(
	ctx context.Context,
	token string,
) (*FinancialEvents, error) {
	return callNextToken[FinancialEvents](
		ctx, c, SectionFinances, "ListFinancialEventsByNextToken", groupFinances, token,
	)
}

// FinancialEventsPager walks every page of ListFinancialEvents.
func (c *Client) FinancialEventsPager(
	req ListFinancialEventsRequest,
	opts ...PagerOption,
) *Pager[FinancialEvents] {
	return listPager[FinancialEvents](
		func(ctx context.Context) (*FinancialEvents, error) { return c.ListFinancialEvents(ctx, req) },
		c.ListFinancialEventsByNextToken,
		opts...,
	)
}

package mws

import "context"

// Participation says the seller can sell in a marketplace.
type Participation struct {
	MarketplaceID              string `xml:"MarketplaceId"`
	SellerID                   string `xml:"SellerId"`
	HasSellerSuspendedListings string `xml:"HasSellerSuspendedListings"`
}

// MarketplaceInfo describes a marketplace the seller participates in.
type MarketplaceInfo struct {
	MarketplaceID       string `xml:"MarketplaceId"`
	Name                string `xml:"Name"`
	DefaultCountryCode  string `xml:"DefaultCountryCode"`
	DefaultCurrencyCode string `xml:"DefaultCurrencyCode"`
	DefaultLanguageCode string `xml:"DefaultLanguageCode"`
	DomainName          string `xml:"DomainName"`
}

// ParticipationList is a page of ListMarketplaceParticipations.
type ParticipationList struct {
	Response
	Participations []Participation   `xml:"ListParticipations>Participation"`
	Marketplaces   []MarketplaceInfo `xml:"ListMarketplaces>Marketplace"`
	NextToken      string            `xml:"NextToken"`
}

// Page adapts the list for a Pager; each page yields itself.
func (l *ParticipationList) Page() *Page[ParticipationList] {
	return &Page[ParticipationList]{Items: []ParticipationList{*l}, NextToken: l.NextToken}
}

// ListMarketplaceParticipations lists the marketplaces the seller can use.
func (c *Client) ListMarketplaceParticipations(ctx context.Context) (*ParticipationList, error) {
	r := newRequest(SectionSellers, "ListMarketplaceParticipations", "ListMarketplaceParticipations")
	return call[ParticipationList](ctx, c, r)
}

// ListMarketplaceParticipationsByNextToken continues ListMarketplaceParticipations.
func (c *Client) ListMarketplaceParticipationsByNextToken(
	ctx context.Context,
	token string,
) (*ParticipationList, error) {
	return callNextToken[ParticipationList](
		ctx, c, SectionSellers,
		"ListMarketplaceParticipationsByNextToken", "ListMarketplaceParticipations", token,
	)
}

// ParticipationPager walks every page of ListMarketplaceParticipations.
func (c *Client) ParticipationPager(opts ...PagerOption) *Pager[ParticipationList] {
	return listPager[ParticipationList](
		c.ListMarketplaceParticipations,
		c.ListMarketplaceParticipationsByNextToken,
		opts...,
	)
}

package mws

import "slices"

const defaultEndpoint = "https://mws.amazonservices.com"

// Marketplace is a public storefront and the regional endpoint serving it.
type Marketplace struct {
	ID       string
	Country  string
	Endpoint string
}

var marketplaces = []Marketplace{
	{ID: "ATVPDKIKX0DER", Country: "US", Endpoint: "https://mws.amazonservices.com"},
	{ID: "A2EUQ1WTGCTBG2", Country: "CA", Endpoint: "https://mws.amazonservices.ca"},
	{ID: "A1AM78C64UM0Y8", Country: "MX", Endpoint: "https://mws.amazonservices.com.mx"},
	{ID: "A2Q3Y263D00KWC", Country: "BR", Endpoint: "https://mws.amazonservices.com"},
	{ID: "A1PA6795UKMFR9", Country: "DE", Endpoint: "https://mws-eu.amazonservices.com"},
	{ID: "A1RKKUPIHCS9HS", Country: "ES", Endpoint: "https://mws-eu.amazonservices.com"},
	{ID: "A13V1IB3VIYZZH", Country: "FR", Endpoint: "https://mws-eu.amazonservices.com"},
	{ID: "APJ6JRA9NG5V4", Country: "IT", Endpoint: "https://mws-eu.amazonservices.com"},
	{ID: "A1F83G8C2ARO7P", Country: "UK", Endpoint: "https://mws-eu.amazonservices.com"},
	{ID: "A21TJRUUN4KGV", Country: "IN", Endpoint: "https://mws.amazonservices.in"},
	{ID: "A1VC38T7YXB528", Country: "JP", Endpoint: "https://mws.amazonservices.jp"},
	{ID: "AAHKV2X7AFYLW", Country: "CN", Endpoint: "https://mws.amazonservices.com.cn"},
	{ID: "A39IBJ37TRP1C6", Country: "AU", Endpoint: "https://mws.amazonservices.com.au"},
}

// Marketplaces returns a copy of the known marketplace table.
func Marketplaces() []Marketplace {
	return slices.Clone(marketplaces)
}

// EndpointFor returns the service URL for a marketplace ID, falling back to
// the North American endpoint for unknown IDs.
func EndpointFor(marketplaceID string) string {
	for _, m := range marketplaces {
		if m.ID == marketplaceID {
			return m.Endpoint
		}
	}
	return defaultEndpoint
}

package mws

import (
	"context"
	"fmt"
)

// ItemAttributes is the subset of catalog attributes the client maps.
type ItemAttributes struct {
	Binding         string `xml:"Binding"`
	Brand           string `xml:"Brand"`
	Label           string `xml:"Label"`
	Manufacturer    string `xml:"Manufacturer"`
	ProductGroup    string `xml:"ProductGroup"`
	ProductTypeName string `xml:"ProductTypeName"`
	Publisher       string `xml:"Publisher"`
	Studio          string `xml:"Studio"`
	Title           string `xml:"Title"`
	ListPrice       *Money `xml:"ListPrice"`
	SmallImageURL   string `xml:"SmallImage>URL"`
}

// SalesRank is a product's rank within one category.
type SalesRank struct {
	ProductCategoryID string `xml:"ProductCategoryId"`
	Rank              int    `xml:"Rank"`
}

// CompetitivePrice is the buy-box price for a condition.
type CompetitivePrice struct {
	CompetitivePriceID string `xml:"CompetitivePriceId"`
	Condition          string `xml:"condition,attr"`
	Subcondition       string `xml:"subcondition,attr"`
	BelongsToRequester bool   `xml:"belongsToRequester,attr"`
	LandedPrice        *Money `xml:"Price>LandedPrice"`
	ListingPrice       *Money `xml:"Price>ListingPrice"`
	Shipping           *Money `xml:"Price>Shipping"`
}

// LowestOfferListing is the cheapest offer for a combination of qualifiers.
type LowestOfferListing struct {
	ItemCondition                   string `xml:"Qualifiers>ItemCondition"`
	ItemSubcondition                string `xml:"Qualifiers>ItemSubcondition"`
	FulfillmentChannel              string `xml:"Qualifiers>FulfillmentChannel"`
	NumberOfOfferListingsConsidered int    `xml:"NumberOfOfferListingsConsidered"`
	SellerFeedbackCount             int    `xml:"SellerFeedbackCount"`
	LandedPrice                     *Money `xml:"Price>LandedPrice"`
	ListingPrice                    *Money `xml:"Price>ListingPrice"`
	Shipping                        *Money `xml:"Price>Shipping"`
}

// Offer is one of the seller's own offers.
type Offer struct {
	LandedPrice        *Money `xml:"BuyingPrice>LandedPrice"`
	ListingPrice       *Money `xml:"BuyingPrice>ListingPrice"`
	Shipping           *Money `xml:"BuyingPrice>Shipping"`
	RegularPrice       *Money `xml:"RegularPrice"`
	FulfillmentChannel string `xml:"FulfillmentChannel"`
	ItemCondition      string `xml:"ItemCondition"`
	ItemSubCondition   string `xml:"ItemSubCondition"`
	SellerID           string `xml:"SellerId"`
	SellerSKU          string `xml:"SellerSKU"`
}

// Product is a catalog item with whatever pricing the operation returned.
type Product struct {
	MarketplaceID       string               `xml:"Identifiers>MarketplaceASIN>MarketplaceId"`
	ASIN                string               `xml:"Identifiers>MarketplaceASIN>ASIN"`
	SellerSKU           string               `xml:"Identifiers>SKUIdentifier>SellerSKU"`
	Attributes          []ItemAttributes     `xml:"AttributeSets>ItemAttributes"`
	SalesRankings       []SalesRank          `xml:"SalesRankings>SalesRank"`
	CompetitivePrices   []CompetitivePrice   `xml:"CompetitivePricing>CompetitivePrices>CompetitivePrice"`
	LowestOfferListings []LowestOfferListing `xml:"LowestOfferListings>LowestOfferListing"`
	Offers              []Offer              `xml:"Offers>Offer"`
}

// Title returns the first attribute set's title.
func (p Product) Title() string {
	if len(p.Attributes) == 0 {
		return ""
	}
	return p.Attributes[0].Title
}

// ProductError is a per-ID failure inside an otherwise successful reply.
type ProductError struct {
	Type    string `xml:"Type"`
	Code    string `xml:"Code"`
	Message string `xml:"Message"`
}

// ProductResult is the reply for one requested ID or SKU.
type ProductResult struct {
	ID        string        `xml:"Id,attr"`
	IDType    string        `xml:"IdType,attr"`
	SellerSKU string        `xml:"SellerSKU,attr"`
	Status    string        `xml:"status,attr"`
	Products  []Product     `xml:"Products>Product"`
	Product   *Product      `xml:"Product"`
	Error     *ProductError `xml:"Error"`
}

// OK reports whether the service resolved this ID.
func (r ProductResult) OK() bool {
	return r.Error == nil && (r.Status == "" || r.Status == "Success")
}

// All returns the matched products whichever element carried them.
func (r ProductResult) All() []Product {
	if r.Product != nil {
		return append([]Product{*r.Product}, r.Products...)
	}
	return r.Products
}

// ProductResults is the reply of the per-ID product operations.
type ProductResults struct {
	Response
	Results []ProductResult
}

// ProductList is the result of ListMatchingProducts.
type ProductList struct {
	Response
	Products []Product `xml:"Products>Product"`
}

// ProductCategory is a browse node and its ancestors.
type ProductCategory struct {
	ID     string           `xml:"ProductCategoryId"`
	Name   string           `xml:"ProductCategoryName"`
	Parent *ProductCategory `xml:"Parent"`
}

// ProductCategories is the result of GetProductCategoriesForSKU.
type ProductCategories struct {
	Response
	Categories []ProductCategory `xml:"Self"`
}

func (c *Client) productResults(ctx context.Context, r *Request) (*ProductResults, error) {
	results, md, err := callMulti[ProductResult](ctx, c, r)
	if err != nil {
		return nil, err
	}
	out := &ProductResults{Results: results}
	out.setMetadata(md)
	return out, nil
}

func (c *Client) productRequest(action string) (*Request, error) {
	if c.creds.MarketplaceID == "" {
		return nil, invalidf("%s requires a marketplace ID", action)
	}
	r := newRequest(SectionProducts, action, action)
	r.Params.Set("MarketplaceId", c.creds.MarketplaceID)
	return r, nil
}

// GetMatchingProductForID looks up to five products by identifier. idType
// is one of ASIN, GCID, SellerSKU, UPC, EAN, ISBN or JAN.
func (c *Client) GetMatchingProductForID(
	ctx context.Context,
	idType string,
	ids ...string,
) (*ProductResults, error) {
	switch idType {
	case "ASIN", "GCID", "SellerSKU", "UPC", "EAN", "ISBN", "JAN":
	default:
		return nil, invalidf("unknown ID type %q", idType)
	}
	if len(ids) == 0 || len(ids) > 5 {
		return nil, invalidf("GetMatchingProductForId takes 1 to 5 IDs, got %d", len(ids))
	}

	r, err := c.productRequest("GetMatchingProductForId")
	if err != nil {
		return nil, err
	}
	r.Params.Set("IdType", idType)
	setList(r.Params, "IdList.Id", ids)
	return c.productResults(ctx, r)
}

// ListMatchingProducts searches the catalog.
func (c *Client) ListMatchingProducts(
	ctx context.Context,
	query,
	queryContextID string,
) (*ProductList, error) {
	if query == "" {
		return nil, invalidf("query is required")
	}
	r, err := c.productRequest("ListMatchingProducts")
	if err != nil {
		return nil, err
	}
	r.Params.Set("Query", query)
	setString(r.Params, "QueryContextId", queryContextID)
	return call[ProductList](ctx, c, r)
}

func (c *Client) skuRequest(action string, skus []string) (*Request, error) {
	if len(skus) == 0 || len(skus) > 20 {
		return nil, invalidf("%s takes 1 to 20 SKUs, got %d", action, len(skus))
	}
	r, err := c.productRequest(action)
	if err != nil {
		return nil, err
	}
	setList(r.Params, "SellerSKUList.SellerSKU", skus)
	return r, nil
}

// GetCompetitivePricingForSKU returns buy-box pricing for up to 20 SKUs.
func (c *Client) GetCompetitivePricingForSKU(
	ctx context.Context,
	skus ...string,
) (*ProductResults, error) {
	r, err := c.skuRequest("GetCompetitivePricingForSKU", skus)
	if err != nil {
		return nil, err
	}
	return c.productResults(ctx, r)
}

func validCondition(condition string) error {
	switch condition {
	case "", "Any", "New", "Used", "Collectible", "Refurbished", "Club":
		return nil
	}
	return fmt.Errorf("%w: unknown item condition %q", ErrInvalidRequest, condition)
}

// GetLowestOfferListingsForSKU returns the lowest offers for up to 20 SKUs.
// An empty condition means any condition.
func (c *Client) GetLowestOfferListingsForSKU(
	ctx context.Context,
	condition string,
	skus ...string,
) (*ProductResults, error) {
	if err := validCondition(condition); err != nil {
		return nil, err
	}
	r, err := c.skuRequest("GetLowestOfferListingsForSKU", skus)
	if err != nil {
		return nil, err
	}
	setString(r.Params, "ItemCondition", condition)
	return c.productResults(ctx, r)
}

// GetMyPriceForSKU returns the seller's own offers for up to 20 SKUs.
func (c *Client) GetMyPriceForSKU(
	ctx context.Context,
	condition string,
	skus ...string,
) (*ProductResults, error) {
	if err := validCondition(condition); err != nil {
		return nil, err
	}
	r, err := c.skuRequest("GetMyPriceForSKU", skus)
	if err != nil {
		return nil, err
	}
	setString(r.Params, "ItemCondition", condition)
	return c.productResults(ctx, r)
}

// GetProductCategoriesForSKU returns the browse nodes of one SKU.
func (c *Client) GetProductCategoriesForSKU(
	ctx context.Context,
	sku string,
) (*ProductCategories, error) {
	if sku == "" {
		return nil, invalidf("SKU is required")
	}
	r, err := c.productRequest("GetProductCategoriesForSKU")
	if err != nil {
		return nil, err
	}
	r.Params.Set("SellerSKU", sku)
	return call[ProductCategories](ctx, c, r)
}

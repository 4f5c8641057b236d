package main

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Orders stop updating this long before "now", matching the service's
// LastUpdatedBefore lag.
const updateLag = 2 * time.Minute

var (
	orderStatuses = []string{"Pending", "Unshipped", "PartiallyShipped", "Shipped", "Canceled"}
	channels      = []string{"AFN", "MFN"}
)

type xmlMoney struct {
	CurrencyCode string `xml:"CurrencyCode"`
	Amount       string `xml:"Amount"`
}

type xmlAddress struct {
	Name          string `xml:"Name"`
	AddressLine1  string `xml:"AddressLine1"`
	City          string `xml:"City"`
	StateOrRegion string `xml:"StateOrRegion"`
	PostalCode    string `xml:"PostalCode"`
	CountryCode   string `xml:"CountryCode"`
}

type xmlOrder struct {
	AmazonOrderID          string     `xml:"AmazonOrderId"`
	PurchaseDate           time.Time  `xml:"PurchaseDate"`
	LastUpdateDate         time.Time  `xml:"LastUpdateDate"`
	OrderStatus            string     `xml:"OrderStatus"`
	FulfillmentChannel     string     `xml:"FulfillmentChannel"`
	SalesChannel           string     `xml:"SalesChannel"`
	ShippingAddress        xmlAddress `xml:"ShippingAddress"`
	OrderTotal             xmlMoney   `xml:"OrderTotal"`
	NumberOfItemsShipped   int        `xml:"NumberOfItemsShipped"`
	NumberOfItemsUnshipped int        `xml:"NumberOfItemsUnshipped"`
	PaymentMethod          string     `xml:"PaymentMethod"`
	MarketplaceID          string     `xml:"MarketplaceId"`
	BuyerEmail             string     `xml:"BuyerEmail"`
	BuyerName              string     `xml:"BuyerName"`
	IsPrime                bool       `xml:"IsPrime"`
	IsBusinessOrder        bool       `xml:"IsBusinessOrder"`
}

type xmlOrderItem struct {
	ASIN            string   `xml:"ASIN"`
	SellerSKU       string   `xml:"SellerSKU"`
	OrderItemID     string   `xml:"OrderItemId"`
	Title           string   `xml:"Title"`
	QuantityOrdered int      `xml:"QuantityOrdered"`
	QuantityShipped int      `xml:"QuantityShipped"`
	ItemPrice       xmlMoney `xml:"ItemPrice"`
	ItemTax         xmlMoney `xml:"ItemTax"`
}

type ordersResult struct {
	XMLName           xml.Name
	NextToken         string     `xml:"NextToken,omitempty"`
	LastUpdatedBefore *time.Time `xml:"LastUpdatedBefore,omitempty"`
	CreatedBefore     *time.Time `xml:"CreatedBefore,omitempty"`
	Orders            []xmlOrder `xml:"Orders>Order"`
}

type orderItemsResult struct {
	XMLName       xml.Name
	NextToken     string         `xml:"NextToken,omitempty"`
	AmazonOrderID string         `xml:"AmazonOrderId"`
	Items         []xmlOrderItem `xml:"OrderItems>OrderItem"`
}

type serviceStatusResult struct {
	XMLName   xml.Name
	Status    string    `xml:"Status"`
	Timestamp time.Time `xml:"Timestamp"`
}

// catalog is a fixed set of generated orders, sorted by LastUpdateDate.
type catalog struct {
	orders []xmlOrder
	items  map[string][]xmlOrderItem
	now    time.Time
}

func newCatalog(seed uint64, n int, now time.Time) *catalog {
	f := gofakeit.New(seed)
	c := &catalog{
		orders: make([]xmlOrder, 0, n),
		items:  make(map[string][]xmlOrderItem, n),
		now:    now.UTC().Truncate(time.Second),
	}

	start := c.now.Add(-30 * 24 * time.Hour)
	for range n {
		purchased := f.DateRange(start, c.now.Add(-updateLag)).UTC().Truncate(time.Second)
		updated := f.DateRange(purchased, c.now.Add(-updateLag)).UTC().Truncate(time.Second)
		id := f.Numerify("###-#######-#######")
		name := f.Name()
		addr := f.Address()

		var total float64
		lines := make([]xmlOrderItem, f.Number(1, 3))
		for i := range lines {
			qty := f.Number(1, 4)
			price := f.Price(5, 250)
			total += price * float64(qty)
			lines[i] = xmlOrderItem{
				ASIN:            "B0" + strings.ToUpper(f.LetterN(8)),
				SellerSKU:       "SKU-" + f.DigitN(6),
				OrderItemID:     f.DigitN(14),
				Title:           f.ProductName(),
				QuantityOrdered: qty,
				ItemPrice:       usd(price * float64(qty)),
				ItemTax:         usd(price * float64(qty) * 0.08),
			}
		}

		status := f.RandomString(orderStatuses)
		shipped, unshipped := 0, len(lines)
		if status == "Shipped" {
			shipped, unshipped = len(lines), 0
			for i := range lines {
				lines[i].QuantityShipped = lines[i].QuantityOrdered
			}
		}

		c.items[id] = lines
		c.orders = append(c.orders, xmlOrder{
			AmazonOrderID:      id,
			PurchaseDate:       purchased,
			LastUpdateDate:     updated,
			OrderStatus:        status,
			FulfillmentChannel: f.RandomString(channels),
			SalesChannel:       "Amazon.com",
			ShippingAddress: xmlAddress{
				Name:          name,
				AddressLine1:  addr.Street,
				City:          addr.City,
				StateOrRegion: addr.State,
				PostalCode:    addr.Zip,
				CountryCode:   "US",
			},
			OrderTotal:             usd(total),
			NumberOfItemsShipped:   shipped,
			NumberOfItemsUnshipped: unshipped,
			PaymentMethod:          "Other",
			MarketplaceID:          "ATVPDKIKX0DER",
			BuyerEmail:             f.Email(),
			BuyerName:              name,
			IsPrime:                f.Bool(),
			IsBusinessOrder:        f.Number(1, 10) == 1,
		})
	}

	slices.SortFunc(c.orders, func(a, b xmlOrder) int {
		return a.LastUpdateDate.Compare(b.LastUpdateDate)
	})
	return c
}

func usd(v float64) xmlMoney {
	return xmlMoney{CurrencyCode: "USD", Amount: strconv.FormatFloat(v, 'f', 2, 64)}
}

// orderQuery is the window of a ListOrders call, carried in the token.
type orderQuery struct {
	byCreated bool
	after     time.Time
	offset    int
}

func (q orderQuery) token() string {
	field := "updated"
	if q.byCreated {
		field = "created"
	}
	raw := fmt.Sprintf("%s|%s|%d", field, q.after.Format(time.RFC3339), q.offset)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func parseOrderToken(token string) (orderQuery, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return orderQuery{}, fmt.Errorf("decoding token: %w", err)
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 3 {
		return orderQuery{}, fmt.Errorf("malformed token %q", raw)
	}
	after, err := time.Parse(time.RFC3339, parts[1])
	if err != nil {
		return orderQuery{}, fmt.Errorf("token time: %w", err)
	}
	offset, err := strconv.Atoi(parts[2])
	if err != nil {
		return orderQuery{}, fmt.Errorf("token offset: %w", err)
	}
	return orderQuery{byCreated: parts[0] == "created", after: after, offset: offset}, nil
}

// page returns one page of orders for q and the token of the next page.
func (c *catalog) page(q orderQuery, size int) ([]xmlOrder, string) {
	var matched []xmlOrder
	for _, o := range c.orders {
		ts := o.LastUpdateDate
		if q.byCreated {
			ts = o.PurchaseDate
		}
		if ts.After(q.after) {
			matched = append(matched, o)
		}
	}

	if q.offset >= len(matched) {
		return []xmlOrder{}, ""
	}
	end := min(q.offset+size, len(matched))

	next := ""
	if end < len(matched) {
		next = orderQuery{byCreated: q.byCreated, after: q.after, offset: end}.token()
	}
	return matched[q.offset:end], next
}

func (c *catalog) ordersResult(action string, q orderQuery, size int) ordersResult {
	orders, next := c.page(q, size)
	res := ordersResult{
		XMLName:   xml.Name{Local: action + "Result"},
		NextToken: next,
		Orders:    orders,
	}
	before := c.now.Add(-updateLag)
	if q.byCreated {
		res.CreatedBefore = &before
	} else {
		res.LastUpdatedBefore = &before
	}
	return res
}

func (c *catalog) order(id string) (xmlOrder, bool) {
	idx := slices.IndexFunc(c.orders, func(o xmlOrder) bool { return o.AmazonOrderID == id })
	if idx < 0 {
		return xmlOrder{}, false
	}
	return c.orders[idx], true
}

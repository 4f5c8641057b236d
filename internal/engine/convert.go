package engine

import (
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

// ToOrder maps a vendor order header to the stored form.
func ToOrder(store string, o *mws.Order) domain.Order {
	order := domain.Order{
		Store:              store,
		AmazonOrderID:      o.AmazonOrderID,
		SellerOrderID:      o.SellerOrderID,
		MarketplaceID:      o.MarketplaceID,
		OrderStatus:        o.OrderStatus,
		FulfillmentChannel: o.FulfillmentChannel,
		SalesChannel:       o.SalesChannel,
		ShipServiceLevel:   o.ShipServiceLevel,
		ItemsShipped:       o.NumberOfItemsShipped,
		ItemsUnshipped:     o.NumberOfItemsUnshipped,
		PaymentMethod:      o.PaymentMethod,
		BuyerName:          o.BuyerName,
		BuyerEmail:         o.BuyerEmail,
		IsPrime:            o.IsPrime,
		IsBusinessOrder:    o.IsBusinessOrder,
		PurchaseDate:       o.PurchaseDate,
		LastUpdateDate:     o.LastUpdateDate,
	}

	order.OrderTotal, order.Currency = amount(o.OrderTotal)

	if a := o.ShippingAddress; a != nil {
		order.ShipCity = a.City
		order.ShipRegion = a.StateOrRegion
		order.ShipPostalCode = a.PostalCode
		order.ShipCountryCode = a.CountryCode
	}
	return order
}

// ToOrderItems maps the lines of one order.
func ToOrderItems(store, amazonOrderID string, items []mws.OrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for i := range items {
		it := &items[i]
		item := domain.OrderItem{
			Store:           store,
			AmazonOrderID:   amazonOrderID,
			OrderItemID:     it.OrderItemID,
			ASIN:            it.ASIN,
			SellerSKU:       it.SellerSKU,
			Title:           it.Title,
			QuantityOrdered: it.QuantityOrdered,
			QuantityShipped: it.QuantityShipped,
		}

		var currencies [4]string
		item.ItemPrice, currencies[0] = amount(it.ItemPrice)
		item.ItemTax, currencies[1] = amount(it.ItemTax)
		item.ShippingPrice, currencies[2] = amount(it.ShippingPrice)
		item.PromotionDiscount, currencies[3] = amount(it.PromotionDiscount)
		for _, c := range currencies {
			if c != "" {
				item.Currency = c
				break
			}
		}

		out = append(out, item)
	}
	return out
}

func amount(m *mws.Money) (decimal.Decimal, string) {
	if m == nil {
		return decimal.Zero, ""
	}
	return m.Amount, m.CurrencyCode
}

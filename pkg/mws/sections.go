package mws

import (
	"fmt"
	"slices"
	"strings"
)

const (
	identitySeller   = "SellerId"
	identityMerchant = "Merchant"
)

// Section is one versioned API area of the merchant web service.
type Section struct {
	Name     string
	Path     string
	Version  string
	Identity string
	// HasStatus reports whether the section answers GetServiceStatus.
	HasStatus bool
}

var (
	SectionOrders = Section{
		Name: "Orders", Path: "/Orders/2013-09-01", Version: "2013-09-01",
		Identity: identitySeller, HasStatus: true,
	}
	SectionReports = Section{
		Name: "Reports", Path: "/", Version: "2009-01-01",
		Identity: identityMerchant,
	}
	SectionFeeds = Section{
		Name: "Feeds", Path: "/", Version: "2009-01-01",
		Identity: identityMerchant,
	}
	SectionProducts = Section{
		Name: "Products", Path: "/Products/2011-10-01", Version: "2011-10-01",
		Identity: identitySeller, HasStatus: true,
	}
	SectionInventory = Section{
		Name: "FulfillmentInventory", Path: "/FulfillmentInventory/2010-10-01",
		Version: "2010-10-01", Identity: identitySeller, HasStatus: true,
	}
	SectionInbound = Section{
		Name: "FulfillmentInboundShipment", Path: "/FulfillmentInboundShipment/2010-10-01",
		Version: "2010-10-01", Identity: identitySeller, HasStatus: true,
	}
	SectionOutbound = Section{
		Name: "FulfillmentOutboundShipment", Path: "/FulfillmentOutboundShipment/2010-10-01",
		Version: "2010-10-01", Identity: identitySeller, HasStatus: true,
	}
	SectionFinances = Section{
		Name: "Finances", Path: "/Finances/2015-05-01", Version: "2015-05-01",
		Identity: identitySeller, HasStatus: true,
	}
	SectionSellers = Section{
		Name: "Sellers", Path: "/Sellers/2011-07-01", Version: "2011-07-01",
		Identity: identitySeller, HasStatus: true,
	}
)

// Sections lists every section the client knows about.
func Sections() []Section {
	return []Section{
		SectionOrders,
		SectionReports,
		SectionFeeds,
		SectionProducts,
		SectionInventory,
		SectionInbound,
		SectionOutbound,
		SectionFinances,
		SectionSellers,
	}
}

// SectionByName looks a section up by name, case-insensitively. The short
// aliases "inventory", "inbound" and "outbound" are accepted too.
func SectionByName(name string) (Section, error) {
	aliases := map[string]string{
		"inventory": SectionInventory.Name,
		"inbound":   SectionInbound.Name,
		"outbound":  SectionOutbound.Name,
	}
	if full, ok := aliases[strings.ToLower(name)]; ok {
		name = full
	}

	idx := slices.IndexFunc(Sections(), func(s Section) bool {
		return strings.EqualFold(s.Name, name)
	})
	if idx < 0 {
		return Section{}, fmt.Errorf("unknown section %q", name)
	}
	return Sections()[idx], nil
}

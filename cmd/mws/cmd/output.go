package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPageFooter tells the user when more results are waiting.
func printPageFooter[T any](w io.Writer, res *mws.PageResult[T]) {
	if res.NextToken == "" {
		return
	}
	fmt.Fprintf(w, "\n%d page(s) fetched, more results available (use --max-pages 0 for all)\n",
		res.PagesUsed)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timeLayout)
}

func formatMoney(m *mws.Money) string {
	if m == nil {
		return "-"
	}
	return m.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printOrdersTable(w io.Writer, orders []mws.Order) error {
	tw := newTabWriter(w)
	tw.writef("ORDER ID\tSTATUS\tCHANNEL\tPURCHASED\tUPDATED\tTOTAL\n")
	for i := range orders {
		o := &orders[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			o.AmazonOrderID,
			o.OrderStatus,
			o.FulfillmentChannel,
			formatTime(o.PurchaseDate),
			formatTime(o.LastUpdateDate),
			formatMoney(o.OrderTotal),
		)
	}
	return tw.finish()
}

func printOrderDetail(w io.Writer, o *mws.Order) error {
	tw := newTabWriter(w)
	tw.writef("Order ID:\t%s\n", o.AmazonOrderID)
	tw.writef("Seller Order ID:\t%s\n", orDash(o.SellerOrderID))
	tw.writef("Status:\t%s\n", o.OrderStatus)
	tw.writef("Channel:\t%s (%s)\n", o.FulfillmentChannel, o.SalesChannel)
	tw.writef("Marketplace:\t%s\n", o.MarketplaceID)
	tw.writef("Purchased:\t%s\n", formatTime(o.PurchaseDate))
	tw.writef("Updated:\t%s\n", formatTime(o.LastUpdateDate))
	tw.writef("Total:\t%s\n", formatMoney(o.OrderTotal))
	tw.writef("Items:\t%d shipped, %d unshipped\n", o.NumberOfItemsShipped, o.NumberOfItemsUnshipped)
	tw.writef("Buyer:\t%s\n", orDash(o.BuyerName))
	if a := o.ShippingAddress; a != nil {
		tw.writef("Ship To:\t%s, %s %s %s\n", a.City, a.StateOrRegion, a.PostalCode, a.CountryCode)
	}
	tw.writef("Prime:\t%v\n", o.IsPrime)
	return tw.finish()
}

func printOrderItemsTable(w io.Writer, items []mws.OrderItem) error {
	tw := newTabWriter(w)
	tw.writef("ITEM ID\tSKU\tASIN\tQTY\tSHIPPED\tPRICE\tTITLE\n")
	for i := range items {
		it := &items[i]
		tw.writef("%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			it.OrderItemID,
			it.SellerSKU,
			it.ASIN,
			it.QuantityOrdered,
			it.QuantityShipped,
			formatMoney(it.ItemPrice),
			truncate(it.Title, 40),
		)
	}
	return tw.finish()
}

func printReportsTable(w io.Writer, reports []mws.ReportInfo) error {
	tw := newTabWriter(w)
	tw.writef("REPORT ID\tTYPE\tREQUEST ID\tAVAILABLE\tACKED\n")
	for i := range reports {
		r := &reports[i]
		tw.writef("%s\t%s\t%s\t%s\t%v\n",
			r.ReportID,
			r.ReportType,
			r.ReportRequestID,
			formatTime(r.AvailableDate),
			r.Acknowledged,
		)
	}
	return tw.finish()
}

func printReportRequestsTable(w io.Writer, reqs []mws.ReportRequestInfo) error {
	tw := newTabWriter(w)
	tw.writef("REQUEST ID\tTYPE\tSTATUS\tSUBMITTED\tREPORT ID\n")
	for i := range reqs {
		r := &reqs[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.ReportRequestID,
			r.ReportType,
			r.ReportProcessingStatus,
			formatTime(r.SubmittedDate),
			orDash(r.GeneratedReportID),
		)
	}
	return tw.finish()
}

func printSchedulesTable(w io.Writer, schedules []mws.ReportSchedule) error {
	tw := newTabWriter(w)
	tw.writef("TYPE\tSCHEDULE\tNEXT RUN\n")
	for i := range schedules {
		s := &schedules[i]
		tw.writef("%s\t%s\t%s\n", s.ReportType, s.Schedule, formatTime(s.ScheduledDate))
	}
	return tw.finish()
}

func printFeedSubmissionsTable(w io.Writer, subs []mws.FeedSubmissionInfo) error {
	tw := newTabWriter(w)
	tw.writef("SUBMISSION ID\tTYPE\tSTATUS\tSUBMITTED\tCOMPLETED\n")
	for i := range subs {
		s := &subs[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			s.FeedSubmissionID,
			s.FeedType,
			s.FeedProcessingStatus,
			formatTime(s.SubmittedDate),
			formatTime(s.CompletedProcessingDate),
		)
	}
	return tw.finish()
}

func printProductResults(w io.Writer, results []mws.ProductResult) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSTATUS\tASIN\tTITLE\tPRICE\n")
	for i := range results {
		r := &results[i]
		id := r.ID
		if id == "" {
			id = r.SellerSKU
		}
		if !r.OK() {
			msg := r.Status
			if r.Error != nil {
				msg = r.Error.Code + ": " + r.Error.Message
			}
			tw.writef("%s\terror\t-\t%s\t-\n", id, truncate(msg, 50))
			continue
		}
		for _, p := range r.All() {
			tw.writef("%s\tok\t%s\t%s\t%s\n", id, p.ASIN, truncate(p.Title(), 40), productPrice(&p))
		}
	}
	return tw.finish()
}

// productPrice picks the most specific price the operation returned.
func productPrice(p *mws.Product) string {
	switch {
	case len(p.Offers) > 0:
		return formatMoney(p.Offers[0].LandedPrice)
	case len(p.CompetitivePrices) > 0:
		return formatMoney(p.CompetitivePrices[0].LandedPrice)
	case len(p.LowestOfferListings) > 0:
		return formatMoney(p.LowestOfferListings[0].LandedPrice)
	case len(p.Attributes) > 0:
		return formatMoney(p.Attributes[0].ListPrice)
	}
	return "-"
}

func printProductsTable(w io.Writer, products []mws.Product) error {
	tw := newTabWriter(w)
	tw.writef("ASIN\tGROUP\tTITLE\tLIST PRICE\n")
	for i := range products {
		p := &products[i]
		group := "-"
		if len(p.Attributes) > 0 {
			group = p.Attributes[0].ProductGroup
		}
		tw.writef("%s\t%s\t%s\t%s\n", p.ASIN, group, truncate(p.Title(), 50), productPrice(p))
	}
	return tw.finish()
}

func printCategories(w io.Writer, cats []mws.ProductCategory) error {
	for i := range cats {
		path := cats[i].Name
		for p := cats[i].Parent; p != nil; p = p.Parent {
			path = p.Name + " > " + path
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", cats[i].ID, path); err != nil {
			return err
		}
	}
	return nil
}

func printInventoryTable(w io.Writer, supplies []mws.InventorySupply) error {
	tw := newTabWriter(w)
	tw.writef("SKU\tFNSKU\tASIN\tCONDITION\tTOTAL\tIN STOCK\n")
	for i := range supplies {
		s := &supplies[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\t%d\n",
			s.SellerSKU,
			s.FNSKU,
			s.ASIN,
			s.Condition,
			s.TotalSupplyQuantity,
			s.InStockSupplyQuantity,
		)
	}
	return tw.finish()
}

func printInboundShipmentsTable(w io.Writer, shipments []mws.InboundShipment) error {
	tw := newTabWriter(w)
	tw.writef("SHIPMENT ID\tNAME\tSTATUS\tDESTINATION\tLABEL PREP\n")
	for i := range shipments {
		s := &shipments[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			s.ShipmentID,
			truncate(s.ShipmentName, 30),
			s.ShipmentStatus,
			s.DestinationFulfillmentCenterID,
			s.LabelPrepType,
		)
	}
	return tw.finish()
}

func printInboundItemsTable(w io.Writer, items []mws.InboundShipmentItem) error {
	tw := newTabWriter(w)
	tw.writef("SKU\tFNSKU\tSHIPPED\tRECEIVED\tIN CASE\n")
	for i := range items {
		it := &items[i]
		tw.writef("%s\t%s\t%d\t%d\t%d\n",
			it.SellerSKU,
			it.FulfillmentNetworkSKU,
			it.QuantityShipped,
			it.QuantityReceived,
			it.QuantityInCase,
		)
	}
	return tw.finish()
}

func printFulfillmentOrdersTable(w io.Writer, orders []mws.FulfillmentOrder) error {
	tw := newTabWriter(w)
	tw.writef("FULFILLMENT ORDER ID\tDISPLAY ID\tSTATUS\tSPEED\tRECEIVED\n")
	for i := range orders {
		o := &orders[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			o.SellerFulfillmentOrderID,
			o.DisplayableOrderID,
			o.FulfillmentOrderStatus,
			o.ShippingSpeedCategory,
			formatTime(o.ReceivedDateTime),
		)
	}
	return tw.finish()
}

func printFulfillmentOrderDetail(w io.Writer, d *mws.FulfillmentOrderDetail) error {
	tw := newTabWriter(w)
	tw.writef("Fulfillment Order ID:\t%s\n", d.Order.SellerFulfillmentOrderID)
	tw.writef("Display ID:\t%s\n", d.Order.DisplayableOrderID)
	tw.writef("Status:\t%s\n", d.Order.FulfillmentOrderStatus)
	tw.writef("Speed:\t%s\n", d.Order.ShippingSpeedCategory)
	tw.writef("Received:\t%s\n", formatTime(d.Order.ReceivedDateTime))
	for i := range d.Items {
		it := &d.Items[i]
		tw.writef("Item:\t%s x%d (cancelled %d)\n", it.SellerSKU, it.Quantity, it.CancelledQuantity)
	}
	for i := range d.Shipments {
		s := &d.Shipments[i]
		tw.writef("Shipment:\t%s %s\n", s.AmazonShipmentID, s.FulfillmentShipmentStatus)
		for _, p := range s.Packages {
			tw.writef("Package:\t%d %s %s\n", p.PackageNumber, p.CarrierCode, p.TrackingNumber)
		}
	}
	return tw.finish()
}

func printEventGroupsTable(w io.Writer, groups []mws.FinancialEventGroup) error {
	tw := newTabWriter(w)
	tw.writef("GROUP ID\tSTATUS\tTRANSFER\tSTART\tEND\tTOTAL\n")
	for i := range groups {
		g := &groups[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			g.FinancialEventGroupID,
			g.ProcessingStatus,
			orDash(g.FundTransferStatus),
			formatTime(g.FinancialEventGroupStart),
			formatTime(g.FinancialEventGroupEnd),
			formatMoney(g.OriginalTotal),
		)
	}
	return tw.finish()
}

func printFinancialEvents(w io.Writer, ev *mws.FinancialEvents) error {
	tw := newTabWriter(w)
	tw.writef("KIND\tORDER ID\tPOSTED\tITEMS\n")
	for i := range ev.Shipments {
		s := &ev.Shipments[i]
		tw.writef("shipment\t%s\t%s\t%d\n", s.AmazonOrderID, formatTime(s.PostedDate), len(s.Items))
	}
	for i := range ev.Refunds {
		s := &ev.Refunds[i]
		tw.writef("refund\t%s\t%s\t%d\n", s.AmazonOrderID, formatTime(s.PostedDate),
			len(s.ItemAdjustments))
	}
	for i := range ev.ServiceFees {
		f := &ev.ServiceFees[i]
		tw.writef("service_fee\t%s\t-\t%d\n", orDash(f.AmazonOrderID), len(f.Fees))
	}
	return tw.finish()
}

func printParticipations(w io.Writer, l *mws.ParticipationList) error {
	names := make(map[string]string, len(l.Marketplaces))
	for _, m := range l.Marketplaces {
		names[m.MarketplaceID] = m.Name
	}

	tw := newTabWriter(w)
	tw.writef("MARKETPLACE ID\tNAME\tSUSPENDED LISTINGS\n")
	for _, p := range l.Participations {
		tw.writef("%s\t%s\t%s\n", p.MarketplaceID, orDash(names[p.MarketplaceID]),
			p.HasSellerSuspendedListings)
	}
	return tw.finish()
}

func printStatusTable(w io.Writer, rows []statusRow) error {
	tw := newTabWriter(w)
	tw.writef("SECTION\tSTATUS\tTIMESTAMP\tMESSAGE\n")
	for _, r := range rows {
		tw.writef("%s\t%s\t%s\t%s\n", r.Section, r.Status, formatTime(r.Timestamp),
			truncate(orDash(r.Message), 60))
	}
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(timeLayout)
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printStoredOrdersTable(w io.Writer, orders []domain.Order) error {
	tw := newTabWriter(w)
	tw.writef("STORE\tORDER ID\tSTATUS\tCHANNEL\tPURCHASED\tTOTAL\n")
	for i := range orders {
		o := &orders[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s %s\n",
			o.Store,
			o.AmazonOrderID,
			o.OrderStatus,
			o.FulfillmentChannel,
			formatTime(o.PurchaseDate),
			o.OrderTotal.StringFixed(2),
			o.Currency,
		)
	}
	return tw.finish()
}

func printStoredOrderDetail(w io.Writer, o *domain.Order) error {
	tw := newTabWriter(w)
	tw.writef("Store:\t%s\n", o.Store)
	tw.writef("Order ID:\t%s\n", o.AmazonOrderID)
	tw.writef("Status:\t%s\n", o.OrderStatus)
	tw.writef("Channel:\t%s\n", o.FulfillmentChannel)
	tw.writef("Purchased:\t%s\n", formatTime(o.PurchaseDate))
	tw.writef("Updated:\t%s\n", formatTime(o.LastUpdateDate))
	tw.writef("Total:\t%s %s\n", o.OrderTotal.StringFixed(2), o.Currency)
	tw.writef("First Seen:\t%s\n", formatTime(o.FirstSeenAt))
	return tw.finish()
}

func printStoredItemsTable(w io.Writer, items []domain.OrderItem) error {
	tw := newTabWriter(w)
	tw.writef("ITEM ID\tSKU\tQTY\tPRICE\tTITLE\n")
	for i := range items {
		it := &items[i]
		tw.writef("%s\t%s\t%d\t%s %s\t%s\n",
			it.OrderItemID,
			it.SellerSKU,
			it.QuantityOrdered,
			it.ItemPrice.StringFixed(2),
			it.Currency,
			truncate(it.Title, 40),
		)
	}
	return tw.finish()
}

func printArchivedReportsTable(w io.Writer, reports []domain.ReportArchive) error {
	tw := newTabWriter(w)
	tw.writef("STORE\tREPORT ID\tTYPE\tSIZE\tOBJECT\tARCHIVED\n")
	for i := range reports {
		r := &reports[i]
		tw.writef("%s\t%s\t%s\t%d\ts3://%s/%s\t%s\n",
			r.Store,
			r.ReportID,
			r.ReportType,
			r.SizeBytes,
			r.Bucket,
			r.ObjectKey,
			formatTime(r.ArchivedAt),
		)
	}
	return tw.finish()
}

package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByPurchaseDate   = "purchase_date"
	orderByLastUpdateDate = "last_update_date"
	orderByOrderTotal     = "order_total"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByPurchaseDate:   "purchase_date DESC",
	orderByLastUpdateDate: "last_update_date DESC",
	orderByOrderTotal:     "order_total DESC",
}

const defaultOrderBy = "purchase_date DESC"

const baseOrdersSelect = `SELECT store, amazon_order_id, seller_order_id, marketplace_id,
	order_status, fulfillment_channel, sales_channel, ship_service_level,
	order_total, currency, items_shipped, items_unshipped, payment_method,
	buyer_name, buyer_email, ship_city, ship_region, ship_postal_code, ship_country_code,
	is_prime, is_business_order, purchase_date, last_update_date, first_seen_at, updated_at
FROM orders`

const countOrdersSelect = "SELECT COUNT(*) FROM orders"

const baseReportArchivesSelect = `SELECT id, store, report_id, report_type, report_request_id,
	available_date, bucket, object_key, size_bytes, content_md5, acknowledged, archived_at
FROM report_archives`

const countReportArchivesSelect = "SELECT COUNT(*) FROM report_archives"

// whereBuilder collects positional conditions.
type whereBuilder struct {
	conditions []string
	args       []any
}

func (w *whereBuilder) add(expr string, arg any) {
	w.args = append(w.args, arg)
	w.conditions = append(w.conditions, fmt.Sprintf(expr, len(w.args)))
}

func (w *whereBuilder) addIn(column string, values []string) {
	placeholders := make([]string, len(values))
	for i, v := range values {
		w.args = append(w.args, v)
		placeholders[i] = fmt.Sprintf("$%d", len(w.args))
	}
	w.conditions = append(w.conditions, fmt.Sprintf(
		"%s IN (%s)", column, strings.Join(placeholders, ", "),
	))
}

func (w *whereBuilder) clause() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conditions, " AND ")
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, max(offset, 0)
}

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an order query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *OrderQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	w := &whereBuilder{}

	if q.Store != "" {
		w.add("store = $%d", q.Store)
	}
	if len(q.Statuses) > 0 {
		w.addIn("order_status", q.Statuses)
	}
	if q.FulfillmentChannel != "" {
		w.add("fulfillment_channel = $%d", q.FulfillmentChannel)
	}
	if q.PurchasedAfter != nil {
		w.add("purchase_date >= $%d", *q.PurchasedAfter)
	}
	if q.PurchasedBefore != nil {
		w.add("purchase_date < $%d", *q.PurchasedBefore)
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit, offset := clampPage(q.Limit, q.Offset)
	where := w.clause()

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s, amazon_order_id LIMIT %d OFFSET %d",
		baseOrdersSelect, where, orderClause, limit, offset,
	)
	countSQL = countOrdersSelect + where

	return dataSQL, countSQL, w.args
}

// ToSQL builds the data and count queries for archived reports, newest first.
func (q *ReportArchiveQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	w := &whereBuilder{}

	if q.Store != "" {
		w.add("store = $%d", q.Store)
	}
	if q.ReportType != "" {
		w.add("report_type = $%d", q.ReportType)
	}

	limit, offset := clampPage(q.Limit, q.Offset)
	where := w.clause()

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY available_date DESC LIMIT %d OFFSET %d",
		baseReportArchivesSelect, where, limit, offset,
	)
	countSQL = countReportArchivesSelect + where

	return dataSQL, countSQL, w.args
}

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestOrderQuery_ToSQL(t *testing.T) {
	t.Parallel()

	after := time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         OrderQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: OrderQuery{},
			wantDataHas: []string{
				"FROM orders",
				"ORDER BY purchase_date DESC, amazon_order_id",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM orders",
		},
		{
			name:         "store filter",
			query:        OrderQuery{Store: "us"},
			wantDataHas:  []string{"WHERE store = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM orders WHERE store = $1",
			wantArgs:     []any{"us"},
		},
		{
			name:         "status filter",
			query:        OrderQuery{Statuses: []string{"Unshipped", "PartiallyShipped"}},
			wantDataHas:  []string{"WHERE order_status IN ($1, $2)"},
			wantCountSQL: "SELECT COUNT(*) FROM orders WHERE order_status IN ($1, $2)",
			wantArgs:     []any{"Unshipped", "PartiallyShipped"},
		},
		{
			name: "all filters with correct parameter numbering",
			query: OrderQuery{
				Store:              "uk",
				Statuses:           []string{"Shipped"},
				FulfillmentChannel: "AFN",
				PurchasedAfter:     ptr(after),
				PurchasedBefore:    ptr(before),
			},
			wantDataHas: []string{
				"store = $1",
				"order_status IN ($2)",
				"fulfillment_channel = $3",
				"purchase_date >= $4",
				"purchase_date < $5",
			},
			wantCountSQL: "SELECT COUNT(*) FROM orders WHERE store = $1 AND order_status IN ($2) " +
				"AND fulfillment_channel = $3 AND purchase_date >= $4 AND purchase_date < $5",
			wantArgs: []any{"uk", "Shipped", "AFN", after, before},
		},
		{
			name:        "order by total",
			query:       OrderQuery{OrderBy: "order_total"},
			wantDataHas: []string{"ORDER BY order_total DESC"},
		},
		{
			name:        "order by last update",
			query:       OrderQuery{OrderBy: "last_update_date"},
			wantDataHas: []string{"ORDER BY last_update_date DESC"},
		},
		{
			name:          "invalid order by falls back to default",
			query:         OrderQuery{OrderBy: "DROP TABLE orders; --"},
			wantDataHas:   []string{"ORDER BY purchase_date DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name:        "custom limit and offset",
			query:       OrderQuery{Limit: 25, Offset: 100},
			wantDataHas: []string{"LIMIT 25", "OFFSET 100"},
		},
		{
			name:        "negative limit defaults to 50",
			query:       OrderQuery{Limit: -10},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name:        "limit exceeding max is capped",
			query:       OrderQuery{Limit: 1000},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name:        "negative offset defaults to 0",
			query:       OrderQuery{Offset: -5},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}

func TestReportArchiveQuery_ToSQL(t *testing.T) {
	t.Parallel()

	q := ReportArchiveQuery{Store: "us", ReportType: "_GET_FLAT_FILE_ORDERS_DATA_", Limit: 10}
	dataSQL, countSQL, args := q.ToSQL()

	assert.Contains(t, dataSQL, "FROM report_archives WHERE store = $1 AND report_type = $2")
	assert.Contains(t, dataSQL, "ORDER BY available_date DESC LIMIT 10 OFFSET 0")
	assert.Equal(t,
		"SELECT COUNT(*) FROM report_archives WHERE store = $1 AND report_type = $2",
		countSQL,
	)
	assert.Equal(t, []any{"us", "_GET_FLAT_FILE_ORDERS_DATA_"}, args)
}

func TestMigrationFiles(t *testing.T) {
	t.Parallel()

	files, err := MigrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_initial_schema.sql", files[0])
	assert.IsIncreasing(t, files)
}

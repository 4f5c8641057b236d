package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/internal/api/handlers"
	"github.com/donaldgifford/mws-toolkit/internal/store"
	"github.com/donaldgifford/mws-toolkit/internal/store/mocks"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

func TestListArchivedReports(t *testing.T) {
	t.Parallel()

	archived := domain.ReportArchive{
		ID:            "8a6c6f8e-43f4-4d1e-9d1c-3c1c1b6d2d11",
		Store:         "us",
		ReportID:      "898899474",
		ReportType:    "_GET_FLAT_FILE_ORDERS_DATA_",
		AvailableDate: time.Date(2009, 2, 11, 3, 10, 0, 0, time.UTC),
		Bucket:        "mws-reports",
		ObjectKey:     "us/_get_flat_file_orders_data_/2009/02/11/898899474.txt",
		SizeBytes:     512,
		Acknowledged:  true,
	}

	tests := []struct {
		name       string
		path       string
		wantQuery  *store.ReportArchiveQuery
		reports    []domain.ReportArchive
		total      int
		err        error
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "defaults",
			path:       "/api/v1/reports/archived",
			wantQuery:  &store.ReportArchiveQuery{Limit: 50},
			reports:    []domain.ReportArchive{archived},
			total:      1,
			wantStatus: http.StatusOK,
			wantBody:   []string{"898899474", `"total":1`, `"acknowledged":true`},
		},
		{
			name: "filters",
			path: "/api/v1/reports/archived?store=us" +
				"&report_type=_GET_FLAT_FILE_ORDERS_DATA_&limit=5&offset=10",
			wantQuery: &store.ReportArchiveQuery{
				Store:      "us",
				ReportType: "_GET_FLAT_FILE_ORDERS_DATA_",
				Limit:      5,
				Offset:     10,
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"reports":[]`, `"limit":5`, `"offset":10`},
		},
		{
			name:       "store error",
			path:       "/api/v1/reports/archived",
			wantQuery:  &store.ReportArchiveQuery{Limit: 50},
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"listing archived reports failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			ms.EXPECT().
				ListReportArchives(mock.Anything, tt.wantQuery).
				Return(tt.reports, tt.total, tt.err).
				Once()

			_, api := humatest.New(t)
			handlers.RegisterReportRoutes(api, handlers.NewReportsHandler(ms))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

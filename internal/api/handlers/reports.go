package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mws-toolkit/internal/store"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

// ReportsHandler serves the report archive index.
type ReportsHandler struct {
	store store.Store
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(s store.Store) *ReportsHandler {
	return &ReportsHandler{store: s}
}

// ListArchivedReportsInput filters archived reports.
type ListArchivedReportsInput struct {
	Store      string `query:"store"       doc:"Filter by store name"`
	ReportType string `query:"report_type" doc:"Filter by report type"          example:"_GET_FLAT_FILE_ORDERS_DATA_"`
	Limit      int    `query:"limit"       doc:"Number of results (default 50)" minimum:"0"                           maximum:"500"`
	Offset     int    `query:"offset"      doc:"Pagination offset"              minimum:"0"`
}

// ListArchivedReportsOutput is the archive index page.
type ListArchivedReportsOutput struct {
	Body struct {
		Reports []domain.ReportArchive `json:"reports"`
		Total   int                    `json:"total"`
		Limit   int                    `json:"limit"`
		Offset  int                    `json:"offset"`
	}
}

// ListArchivedReports returns report bodies copied to object storage.
func (h *ReportsHandler) ListArchivedReports(
	ctx context.Context,
	input *ListArchivedReportsInput,
) (*ListArchivedReportsOutput, error) {
	q := &store.ReportArchiveQuery{
		Store:      input.Store,
		ReportType: input.ReportType,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}
	if q.Limit == 0 {
		q.Limit = defaultOrderLimit
	}

	reports, total, err := h.store.ListReportArchives(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing archived reports failed: " + err.Error())
	}
	if reports == nil {
		reports = []domain.ReportArchive{}
	}

	resp := &ListArchivedReportsOutput{}
	resp.Body.Reports = reports
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// RegisterReportRoutes registers the report archive endpoint with the Huma API.
func RegisterReportRoutes(api huma.API, h *ReportsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-archived-reports",
		Method:      http.MethodGet,
		Path:        "/api/v1/reports/archived",
		Summary:     "List archived reports",
		Description: "Returns reports whose bodies were copied to object storage.",
		Tags:        []string{"reports"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListArchivedReports)
}

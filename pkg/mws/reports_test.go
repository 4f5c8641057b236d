package mws_test

import (
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec // test fixture checksum
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func TestRequestReport(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "request_report.xml")
	res, err := c.RequestReport(context.Background(), mws.RequestReportRequest{
		ReportType: "_GET_MERCHANT_LISTINGS_DATA_",
		StartDate:  time.Date(2009, 1, 21, 2, 10, 39, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "2291326454", res.ReportRequestInfo.ReportRequestID)
	assert.Equal(t, "_SUBMITTED_", res.ReportRequestInfo.ReportProcessingStatus)

	params := lastParams(t, mock)
	assert.Equal(t, "RequestReport", params["Action"])
	assert.Equal(t, "A1EXAMPLE", params["Merchant"])
	assert.Equal(t, "2009-01-01", params["Version"])
	assert.Equal(t, "2009-01-21T02:10:39Z", params["StartDate"])
}

func TestRequestReport_Validation(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, "request_report.xml")

	_, err := c.RequestReport(context.Background(), mws.RequestReportRequest{})
	require.ErrorIs(t, err, mws.ErrInvalidRequest)

	_, err = c.RequestReport(context.Background(), mws.RequestReportRequest{
		ReportType: "_GET_ORDERS_DATA_",
		StartDate:  time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
}

func TestReportRequestPager_StopsWhenHasNextIsFalse(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "report_request_list.xml", "report_request_list_next.xml")
	res, err := c.ReportRequestPager(mws.ReportRequestFilter{}).All(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, "2291326454", res.Items[0].ReportRequestID)
	assert.Equal(t, "2291326455", res.Items[1].ReportRequestID)
	assert.Equal(t, mws.StoppedNoMoreResults, res.StoppedAt)
	assert.Len(t, mock.Requests(), 2)
	assert.Equal(t, "2ybWFudCBwbGVhc3VyZS4=", lastParams(t, mock)["NextToken"])
}

func TestGetReportList(t *testing.T) {
	t.Parallel()

	acked := false
	c, mock := newTestClient(t, "report_list.xml")
	list, err := c.GetReportList(context.Background(), mws.ReportFilter{
		ReportTypes:  []string{"_GET_MERCHANT_LISTINGS_DATA_", "_GET_FLAT_FILE_ORDERS_DATA_"},
		Acknowledged: &acked,
		MaxCount:     50,
	})
	require.NoError(t, err)
	require.Len(t, list.Reports, 2)
	assert.Equal(t, "898899473", list.Reports[0].ReportID)
	assert.False(t, list.HasNext)

	params := lastParams(t, mock)
	assert.Equal(t, "_GET_FLAT_FILE_ORDERS_DATA_", params["ReportTypeList.Type.2"])
	assert.Equal(t, "false", params["Acknowledged"])
	assert.Equal(t, "50", params["MaxCount"])
}

func TestGetReportCount(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "report_count.xml")
	n, err := c.GetReportCount(context.Background(), mws.ReportFilter{
		RequestIDs: []string{"1"},
		MaxCount:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, 166, n)

	params := lastParams(t, mock)
	assert.NotContains(t, params, "MaxCount")
	assert.NotContains(t, params, "ReportRequestIdList.Id.1")
}

func TestGetReport(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "report_body.txt")

	var buf bytes.Buffer
	n, err := c.SaveReport(context.Background(), "898899473", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Contains(t, buf.String(), "\t")
	assert.Equal(t, "898899473", lastParams(t, mock)["ReportId"])

	_, err = c.GetReport(context.Background(), "")
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
}

func TestGetReport_VerifiesChecksum(t *testing.T) {
	t.Parallel()

	body := []byte("item-name\tprice\nWidget\t9.99\n")
	sum := md5.Sum(body) //nolint:gosec // test fixture checksum
	good := base64.StdEncoding.EncodeToString(sum[:])

	tests := []struct {
		name    string
		md5     string
		wantErr error
	}{
		{name: "matching checksum", md5: good},
		{name: "no checksum", md5: ""},
		{name: "mismatch", md5: "AAAAAAAAAAAAAAAAAAAAAA==", wantErr: mws.ErrChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.md5 != "" {
					w.Header().Set("Content-MD5", tt.md5)
				}
				_, _ = w.Write(body)
			}))
			defer srv.Close()

			c := newServerClient(t, srv)
			got, err := c.GetReport(context.Background(), "1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, body, got)
		})
	}
}

func TestUpdateReportAcknowledgements(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "update_report_ack.xml")
	list, err := c.UpdateReportAcknowledgements(context.Background(), true, "898899473")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
	require.Len(t, list.Reports, 1)
	assert.True(t, list.Reports[0].Acknowledged)

	params := lastParams(t, mock)
	assert.Equal(t, "true", params["Acknowledged"])
	assert.Equal(t, "898899473", params["ReportIdList.Id.1"])

	_, err = c.UpdateReportAcknowledgements(context.Background(), true)
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
}

func TestManageReportSchedule(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "manage_report_schedule.xml")
	list, err := c.ManageReportSchedule(context.Background(),
		"_GET_ORDERS_DATA_", "_15_MINUTES_", time.Time{})
	require.NoError(t, err)
	require.Len(t, list.Schedules, 1)
	assert.Equal(t, "_15_MINUTES_", list.Schedules[0].Schedule)
	assert.NotContains(t, lastParams(t, mock), "ScheduleDate")

	_, err = c.ManageReportSchedule(context.Background(), "_GET_ORDERS_DATA_", "_3_HOURS_", time.Time{})
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
}

func TestReportSchedulePager(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "report_schedule_list.xml")
	res, err := c.ReportSchedulePager([]string{"_GET_ORDERS_DATA_"}).All(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, mws.StoppedNoMoreResults, res.StoppedAt)
	assert.Empty(t, res.NextToken, "a token without HasNext is ignored")
	assert.Len(t, mock.Requests(), 1)
}

func TestCancelReportRequests(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "report_request_list_next.xml")
	_, err := c.CancelReportRequests(context.Background(), mws.ReportRequestFilter{
		RequestIDs: []string{"2291326455"},
	})
	require.NoError(t, err)

	params := lastParams(t, mock)
	assert.Equal(t, "CancelReportRequests", params["Action"])
	assert.Equal(t, "2291326455", params["ReportRequestIdList.Id.1"])
}

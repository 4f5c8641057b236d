package mws

import (
	"context"
	"io"
	"time"
)

// ReportRequestInfo describes a requested report and its processing state.
type ReportRequestInfo struct {
	ReportRequestID        string    `xml:"ReportRequestId"`
	ReportType             string    `xml:"ReportType"`
	StartDate              time.Time `xml:"StartDate"`
	EndDate                time.Time `xml:"EndDate"`
	Scheduled              bool      `xml:"Scheduled"`
	SubmittedDate          time.Time `xml:"SubmittedDate"`
	ReportProcessingStatus string    `xml:"ReportProcessingStatus"`
	GeneratedReportID      string    `xml:"GeneratedReportId"`
	StartedProcessingDate  time.Time `xml:"StartedProcessingDate"`
	CompletedDate          time.Time `xml:"CompletedDate"`
}

// ReportInfo describes a generated report.
type ReportInfo struct {
	ReportID         string    `xml:"ReportId"`
	ReportType       string    `xml:"ReportType"`
	ReportRequestID  string    `xml:"ReportRequestId"`
	AvailableDate    time.Time `xml:"AvailableDate"`
	Acknowledged     bool      `xml:"Acknowledged"`
	AcknowledgedDate time.Time `xml:"AcknowledgedDate"`
}

// ReportSchedule is a recurring report request.
type ReportSchedule struct {
	ReportType    string    `xml:"ReportType"`
	Schedule      string    `xml:"Schedule"`
	ScheduledDate time.Time `xml:"ScheduledDate"`
}

// RequestReportResult is the result of RequestReport.
type RequestReportResult struct {
	Response
	ReportRequestInfo ReportRequestInfo `xml:"ReportRequestInfo"`
}

// ReportRequestList is a page of report requests. Count is only set by
// CancelReportRequests.
type ReportRequestList struct {
	Response
	Count     int                 `xml:"Count"`
	Requests  []ReportRequestInfo `xml:"ReportRequestInfo"`
	NextToken string              `xml:"NextToken"`
	HasNext   bool                `xml:"HasNext"`
}

// Page adapts the list for a Pager. The token only counts when HasNext is set.
func (l *ReportRequestList) Page() *Page[ReportRequestInfo] {
	return &Page[ReportRequestInfo]{Items: l.Requests, NextToken: pendingToken(l.NextToken, l.HasNext)}
}

// ReportList is a page of generated reports. Count is only set by
// UpdateReportAcknowledgements.
type ReportList struct {
	Response
	Count     int          `xml:"Count"`
	Reports   []ReportInfo `xml:"ReportInfo"`
	NextToken string       `xml:"NextToken"`
	HasNext   bool         `xml:"HasNext"`
}

// Page adapts the list for a Pager.
func (l *ReportList) Page() *Page[ReportInfo] {
	return &Page[ReportInfo]{Items: l.Reports, NextToken: pendingToken(l.NextToken, l.HasNext)}
}

// ReportScheduleList is a page of report schedules.
type ReportScheduleList struct {
	Response
	Count     int              `xml:"Count"`
	Schedules []ReportSchedule `xml:"ReportSchedule"`
	NextToken string           `xml:"NextToken"`
	HasNext   bool             `xml:"HasNext"`
}

// Page adapts the list for a Pager.
func (l *ReportScheduleList) Page() *Page[ReportSchedule] {
	return &Page[ReportSchedule]{Items: l.Schedules, NextToken: pendingToken(l.NextToken, l.HasNext)}
}

func pendingToken(token string, hasNext bool) string {
	if !hasNext {
		return ""
	}
	return token
}

// RequestReportRequest asks the service to generate a report.
type RequestReportRequest struct {
	ReportType     string `validate:"required"`
	StartDate      time.Time
	EndDate        time.Time
	ReportOptions  string
	MarketplaceIDs []string
}

// RequestReport queues a report for generation.
func (c *Client) RequestReport(
	ctx context.Context,
	req RequestReportRequest,
) (*RequestReportResult, error) {
	if err := c.check(req); err != nil {
		return nil, err
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		return nil, invalidf("EndDate is before StartDate")
	}

	r := newRequest(SectionReports, "RequestReport", "RequestReport")
	r.Params.Set("ReportType", req.ReportType)
	setTime(r.Params, "StartDate", req.StartDate)
	setTime(r.Params, "EndDate", req.EndDate)
	setString(r.Params, "ReportOptions", req.ReportOptions)
	setList(r.Params, "MarketplaceIdList.Id", req.MarketplaceIDs)
	return call[RequestReportResult](ctx, c, r)
}

// ReportRequestFilter narrows the report request operations.
type ReportRequestFilter struct {
	RequestIDs         []string
	ReportTypes        []string
	ProcessingStatuses []string `validate:"dive,oneof=_SUBMITTED_ _IN_PROGRESS_ _CANCELLED_ _DONE_ _DONE_NO_DATA_"`
	MaxCount           int      `validate:"omitempty,min=1,max=100"`
	RequestedFromDate  time.Time
	RequestedToDate    time.Time
}

func (f ReportRequestFilter) apply(r *Request, withMaxCount bool) {
	setList(r.Params, "ReportRequestIdList.Id", f.RequestIDs)
	setList(r.Params, "ReportTypeList.Type", f.ReportTypes)
	setList(r.Params, "ReportProcessingStatusList.Status", f.ProcessingStatuses)
	setTime(r.Params, "RequestedFromDate", f.RequestedFromDate)
	setTime(r.Params, "RequestedToDate", f.RequestedToDate)
	if withMaxCount {
		setInt(r.Params, "MaxCount", f.MaxCount)
	}
}

// GetReportRequestList lists report requests matching f.
func (c *Client) GetReportRequestList(
	ctx context.Context,
	f ReportRequestFilter,
) (*ReportRequestList, error) {
	if err := c.check(f); err != nil {
		return nil, err
	}
	r := newRequest(SectionReports, "GetReportRequestList", "GetReportRequestList")
	f.apply(r, true)
	return call[ReportRequestList](ctx, c, r)
}

// GetReportRequestListByNextToken continues GetReportRequestList.
func (c *Client) GetReportRequestListByNextToken(
	ctx context.Context,
	token string,
) (*ReportRequestList, error) {
	return callNextToken[ReportRequestList](
		ctx, c, SectionReports,
		"GetReportRequestListByNextToken", "GetReportRequestListByNextToken", token,
	)
}

// ReportRequestPager walks every page of GetReportRequestList.
func (c *Client) ReportRequestPager(
	f ReportRequestFilter,
	opts ...PagerOption,
) *Pager[ReportRequestInfo] {
	return listPager[ReportRequestInfo](
		func(ctx context.Context) (*ReportRequestList, error) { return c.GetReportRequestList(ctx, f) },
		c.GetReportRequestListByNextToken,
		opts...,
	)
}

// GetReportRequestCount counts report requests matching f. MaxCount is ignored.
func (c *Client) GetReportRequestCount(ctx context.Context, f ReportRequestFilter) (int, error) {
	if err := c.check(f); err != nil {
		return 0, err
	}
	r := newRequest(SectionReports, "GetReportRequestCount", "GetReportRequestCount")
	f.apply(r, false)
	res, err := call[countResult](ctx, c, r)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// CancelReportRequests cancels report requests matching f.
func (c *Client) CancelReportRequests(
	ctx context.Context,
	f ReportRequestFilter,
) (*ReportRequestList, error) {
	if err := c.check(f); err != nil {
		return nil, err
	}
	r := newRequest(SectionReports, "CancelReportRequests", "CancelReportRequests")
	f.apply(r, false)
	return call[ReportRequestList](ctx, c, r)
}

// ReportFilter narrows the report list operations.
type ReportFilter struct {
	RequestIDs        []string
	ReportTypes       []string
	Acknowledged      *bool
	MaxCount          int `validate:"omitempty,min=1,max=100"`
	AvailableFromDate time.Time
	AvailableToDate   time.Time
}

func (f ReportFilter) apply(r *Request, withMaxCount bool) {
	setList(r.Params, "ReportRequestIdList.Id", f.RequestIDs)
	setList(r.Params, "ReportTypeList.Type", f.ReportTypes)
	if f.Acknowledged != nil {
		setBool(r.Params, "Acknowledged", *f.Acknowledged)
	}
	setTime(r.Params, "AvailableFromDate", f.AvailableFromDate)
	setTime(r.Params, "AvailableToDate", f.AvailableToDate)
	if withMaxCount {
		setInt(r.Params, "MaxCount", f.MaxCount)
	}
}

// GetReportList lists generated reports matching f.
func (c *Client) GetReportList(ctx context.Context, f ReportFilter) (*ReportList, error) {
	if err := c.check(f); err != nil {
		return nil, err
	}
	r := newRequest(SectionReports, "GetReportList", "GetReportList")
	f.apply(r, true)
	return call[ReportList](ctx, c, r)
}

// GetReportListByNextToken continues GetReportList.
func (c *Client) GetReportListByNextToken(ctx context.Context, token string) (*ReportList, error) {
	return callNextToken[ReportList](
		ctx, c, SectionReports, "GetReportListByNextToken", "GetReportListByNextToken", token,
	)
}

// ReportPager walks every page of GetReportList.
func (c *Client) ReportPager(f ReportFilter, opts ...PagerOption) *Pager[ReportInfo] {
	return listPager[ReportInfo](
		func(ctx context.Context) (*ReportList, error) { return c.GetReportList(ctx, f) },
		c.GetReportListByNextToken,
		opts...,
	)
}

// GetReportCount counts generated reports matching f. RequestIDs and
// MaxCount are ignored.
func (c *Client) GetReportCount(ctx context.Context, f ReportFilter) (int, error) {
	if err := c.check(f); err != nil {
		return 0, err
	}
	f.RequestIDs = nil
	r := newRequest(SectionReports, "GetReportCount", "GetReportCount")
	f.apply(r, false)
	res, err := call[countResult](ctx, c, r)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// GetReport downloads a report body. The Content-MD5 header is verified
// when the service sends one.
func (c *Client) GetReport(ctx context.Context, reportID string) ([]byte, error) {
	if reportID == "" {
		return nil, invalidf("report ID is required")
	}
	r := newRequest(SectionReports, "GetReport", "GetReport")
	r.Params.Set("ReportId", reportID)

	raw, err := c.Do(ctx, r, nil)
	if err != nil {
		return nil, err
	}
	if err := verifyMD5(raw.Body, raw.Header.Get("Content-MD5")); err != nil {
		return nil, err
	}
	return raw.Body, nil
}

// SaveReport downloads a report into w.
func (c *Client) SaveReport(ctx context.Context, reportID string, w io.Writer) (int64, error) {
	body, err := c.GetReport(ctx, reportID)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(body)
	return int64(n), err
}

// UpdateReportAcknowledgements marks up to 100 reports as (un)acknowledged.
func (c *Client) UpdateReportAcknowledgements(
	ctx context.Context,
	acknowledged bool,
	reportIDs ...string,
) (*ReportList, error) {
	if len(reportIDs) == 0 || len(reportIDs) > 100 {
		return nil, invalidf("UpdateReportAcknowledgements takes 1 to 100 report IDs, got %d", len(reportIDs))
	}
	r := newRequest(SectionReports, "UpdateReportAcknowledgements", "UpdateReportAcknowledgements")
	setList(r.Params, "ReportIdList.Id", reportIDs)
	setBool(r.Params, "Acknowledged", acknowledged)
	return call[ReportList](ctx, c, r)
}

// Schedules accepted by ManageReportSchedule.
var reportSchedules = map[string]bool{
	"_15_MINUTES_": true, "_30_MINUTES_": true, "_1_HOUR_": true, "_2_HOURS_": true,
	"_4_HOURS_": true, "_8_HOURS_": true, "_12_HOURS_": true, "_1_DAY_": true,
	"_2_DAYS_": true, "_72_HOURS_": true, "_1_WEEK_": true, "_14_DAYS_": true,
	"_15_DAYS_": true, "_30_DAYS_": true, "_NEVER_": true,
}

// ManageReportSchedule creates, updates or (with "_NEVER_") deletes a
// report schedule.
func (c *Client) ManageReportSchedule(
	ctx context.Context,
	reportType, schedule string,
	scheduleDate time.Time,
) (*ReportScheduleList, error) {
	if reportType == "" {
		return nil, invalidf("report type is required")
	}
	if !reportSchedules[schedule] {
		return nil, invalidf("unknown schedule %q", schedule)
	}
	r := newRequest(SectionReports, "ManageReportSchedule", "ManageReportSchedule")
	r.Params.Set("ReportType", reportType)
	r.Params.Set("Schedule", schedule)
	setTime(r.Params, "ScheduleDate", scheduleDate)
	return call[ReportScheduleList](ctx, c, r)
}

// GetReportScheduleList lists schedules, optionally limited to reportTypes.
func (c *Client) GetReportScheduleList(
	ctx context.Context,
	reportTypes ...string,
) (*ReportScheduleList, error) {
	r := newRequest(SectionReports, "GetReportScheduleList", "GetReportScheduleList")
	setList(r.Params, "ReportTypeList.Type", reportTypes)
	return call[ReportScheduleList](ctx, c, r)
}

// GetReportScheduleListByNextToken continues GetReportScheduleList.
func (c *Client) GetReportScheduleListByNextToken(
	ctx context.Context,
	token string,
) (*ReportScheduleList, error) {
	return callNextToken[ReportScheduleList](
		ctx, c, SectionReports,
		"GetReportScheduleListByNextToken", "GetReportScheduleListByNextToken", token,
	)
}

// ReportSchedulePager walks every page of GetReportScheduleList.
func (c *Client) ReportSchedulePager(
	reportTypes []string,
	opts ...PagerOption,
) *Pager[ReportSchedule] {
	return listPager[ReportSchedule](
		func(ctx context.Context) (*ReportScheduleList, error) {
			return c.GetReportScheduleList(ctx, reportTypes...)
		},
		c.GetReportScheduleListByNextToken,
		opts...,
	)
}

// GetReportScheduleCount counts schedules, optionally limited to reportTypes.
func (c *Client) GetReportScheduleCount(ctx context.Context, reportTypes ...string) (int, error) {
	r := newRequest(SectionReports, "GetReportScheduleCount", "GetReportScheduleCount")
	setList(r.Params, "ReportTypeList.Type", reportTypes)
	res, err := call[countResult](ctx, c, r)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

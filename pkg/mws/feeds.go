package mws

import (
	"context"
	"time"
)

// FeedSubmissionInfo describes a submitted feed and its processing state.
type FeedSubmissionInfo struct {
	FeedSubmissionID        string    `xml:"FeedSubmissionId"`
	FeedType                string    `xml:"FeedType"`
	SubmittedDate           time.Time `xml:"SubmittedDate"`
	FeedProcessingStatus    string    `xml:"FeedProcessingStatus"`
	StartedProcessingDate   time.Time `xml:"StartedProcessingDate"`
	CompletedProcessingDate time.Time `xml:"CompletedProcessingDate"`
}

// SubmitFeedResult is the result of SubmitFeed.
type SubmitFeedResult struct {
	Response
	FeedSubmissionInfo FeedSubmissionInfo `xml:"FeedSubmissionInfo"`
}

// FeedSubmissionList is a page of feed submissions. Count is only set by
// CancelFeedSubmissions.
type FeedSubmissionList struct {
	Response
	Count       int                  `xml:"Count"`
	Submissions []FeedSubmissionInfo `xml:"FeedSubmissionInfo"`
	NextToken   string               `xml:"NextToken"`
	HasNext     bool                 `xml:"HasNext"`
}

// Page adapts the list for a Pager.
func (l *FeedSubmissionList) Page() *Page[FeedSubmissionInfo] {
	return &Page[FeedSubmissionInfo]{Items: l.Submissions, NextToken: pendingToken(l.NextToken, l.HasNext)}
}

// SubmitFeedRequest uploads a feed document.
type SubmitFeedRequest struct {
	FeedType        string `validate:"required"`
	Content         []byte `validate:"required"`
	MarketplaceIDs  []string
	PurgeAndReplace bool
	// ContentType defaults to text/xml.
	ContentType string
}

// SubmitFeed uploads a feed. Parameters travel in the query string and the
// feed itself is the request body.
func (c *Client) SubmitFeed(ctx context.Context, req SubmitFeedRequest) (*SubmitFeedResult, error) {
	if err := c.check(req); err != nil {
		return nil, err
	}
	r := newRequest(SectionFeeds, "SubmitFeed", "SubmitFeed")
	r.Params.Set("FeedType", req.FeedType)
	setList(r.Params, "MarketplaceIdList.Id", req.MarketplaceIDs)
	if req.PurgeAndReplace {
		setBool(r.Params, "PurgeAndReplace", true)
	}
	r.Body = req.Content
	r.ContentType = req.ContentType
	return call[SubmitFeedResult](ctx, c, r)
}

// FeedSubmissionFilter narrows the feed submission operations.
type FeedSubmissionFilter struct {
	SubmissionIDs      []string
	FeedTypes          []string
	ProcessingStatuses []string `validate:"dive,oneof=_AWAITING_ASYNCHRONOUS_REPLY_ _CANCELLED_ _DONE_ _IN_PROGRESS_ _IN_SAFETY_NET_ _SUBMITTED_ _UNCONFIRMED_"`
	MaxCount           int      `validate:"omitempty,min=1,max=100"`
	SubmittedFromDate  time.Time
	SubmittedToDate    time.Time
}

func (f FeedSubmissionFilter) apply(r *Request, withMaxCount bool) {
	setList(r.Params, "FeedSubmissionIdList.Id", f.SubmissionIDs)
	setList(r.Params, "FeedTypeList.Type", f.FeedTypes)
	setList(r.Params, "FeedProcessingStatusList.Status", f.ProcessingStatuses)
	setTime(r.Params, "SubmittedFromDate", f.SubmittedFromDate)
	setTime(r.Params, "SubmittedToDate", f.SubmittedToDate)
	if withMaxCount {
		setInt(r.Params, "MaxCount", f.MaxCount)
	}
}

// GetFeedSubmissionList lists feed submissions matching f.
func (c *Client) GetFeedSubmissionList(
	ctx context.Context,
	f FeedSubmissionFilter,
) (*FeedSubmissionList, error) {
	if err := c.check(f); err != nil {
		return nil, err
	}
	r := newRequest(SectionFeeds, "GetFeedSubmissionList", "GetFeedSubmissionList")
	f.apply(r, true)
	return call[FeedSubmissionList](ctx, c, r)
}

// GetFeedSubmissionListByNextToken continues GetFeedSubmissionList.
func (c *Client) GetFeedSubmissionListByNextToken(
	ctx context.Context,
	token string,
) (*FeedSubmissionList, error) {
	return callNextToken[FeedSubmissionList](
		ctx, c, SectionFeeds,
		"GetFeedSubmissionListByNextToken", "GetFeedSubmissionListByNextToken", token,
	)
}

// FeedSubmissionPager walks every page of GetFeedSubmissionList.
func (c *Client) FeedSubmissionPager(
	f FeedSubmissionFilter,
	opts ...PagerOption,
) *Pager[FeedSubmissionInfo] {
	return listPager[FeedSubmissionInfo](
		func(ctx context.Context) (*FeedSubmissionList, error) { return c.GetFeedSubmissionList(ctx, f) },
		c.GetFeedSubmissionListByNextToken,
		opts...,
	)
}

// GetFeedSubmissionCount counts feed submissions matching f.
func (c *Client) GetFeedSubmissionCount(ctx context.Context, f FeedSubmissionFilter) (int, error) {
	if err := c.check(f); err != nil {
		return 0, err
	}
	f.SubmissionIDs = nil
	r := newRequest(SectionFeeds, "GetFeedSubmissionCount", "GetFeedSubmissionCount")
	f.apply(r, false)
	res, err := call[countResult](ctx, c, r)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// CancelFeedSubmissions cancels feed submissions matching f.
func (c *Client) CancelFeedSubmissions(
	ctx context.Context,
	f FeedSubmissionFilter,
) (*FeedSubmissionList, error) {
	if err := c.check(f); err != nil {
		return nil, err
	}
	f.ProcessingStatuses = nil
	r := newRequest(SectionFeeds, "CancelFeedSubmissions", "CancelFeedSubmissions")
	f.apply(r, false)
	return call[FeedSubmissionList](ctx, c, r)
}

// GetFeedSubmissionResult downloads the processing report of a feed.
func (c *Client) GetFeedSubmissionResult(ctx context.Context, submissionID string) ([]byte, error) {
	if submissionID == "" {
		return nil, invalidf("feed submission ID is required")
	}
	r := newRequest(SectionFeeds, "GetFeedSubmissionResult", "GetFeedSubmissionResult")
	r.Params.Set("FeedSubmissionId", submissionID)

	raw, err := c.Do(ctx, r, nil)
	if err != nil {
		return nil, err
	}
	if err := verifyMD5(raw.Body, raw.Header.Get("Content-MD5")); err != nil {
		return nil, err
	}
	return raw.Body, nil
}

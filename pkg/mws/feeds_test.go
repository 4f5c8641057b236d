package mws_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func TestSubmitFeed(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "submit_feed.xml")
	content := []byte(`<?xml version="1.0"?><AmazonEnvelope/>`)

	res, err := c.SubmitFeed(context.Background(), mws.SubmitFeedRequest{
		FeedType:        "_POST_PRODUCT_DATA_",
		Content:         content,
		MarketplaceIDs:  []string{"ATVPDKIKX0DER"},
		PurgeAndReplace: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "2291326430", res.FeedSubmissionInfo.FeedSubmissionID)
	assert.Equal(t, "_SUBMITTED_", res.FeedSubmissionInfo.FeedProcessingStatus)

	rec, ok := mock.LastRequest()
	require.True(t, ok)
	assert.Equal(t, content, rec.Body)
	assert.Equal(t, "text/xml", rec.Header.Get("Content-Type"))
	assert.NotEmpty(t, rec.Header.Get("Content-MD5"))
	assert.Equal(t, "_POST_PRODUCT_DATA_", rec.Params.Get("FeedType"))
	assert.Equal(t, "true", rec.Params.Get("PurgeAndReplace"))
	assert.Equal(t, "ATVPDKIKX0DER", rec.Params.Get("MarketplaceIdList.Id.1"))
	assert.NotEmpty(t, rec.Params.Get("Signature"))
}

func TestSubmitFeed_RequiresContent(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "submit_feed.xml")
	_, err := c.SubmitFeed(context.Background(), mws.SubmitFeedRequest{FeedType: "_POST_PRODUCT_DATA_"})
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
	assert.Empty(t, mock.Requests())
}

func TestGetFeedSubmissionList(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "feed_submission_list.xml")
	list, err := c.GetFeedSubmissionList(context.Background(), mws.FeedSubmissionFilter{
		ProcessingStatuses: []string{"_DONE_"},
		SubmittedFromDate:  time.Date(2009, 2, 1, 0, 0, 0, 0, time.UTC),
		MaxCount:           10,
	})
	require.NoError(t, err)
	require.Len(t, list.Submissions, 1)
	assert.Equal(t, "_DONE_", list.Submissions[0].FeedProcessingStatus)

	params := lastParams(t, mock)
	assert.Equal(t, "_DONE_", params["FeedProcessingStatusList.Status.1"])
	assert.Equal(t, "2009-02-01T00:00:00Z", params["SubmittedFromDate"])
	assert.Equal(t, "10", params["MaxCount"])
}

func TestFeedSubmissionPager_IgnoresTokenWithoutHasNext(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "feed_submission_list.xml")
	res, err := c.FeedSubmissionPager(mws.FeedSubmissionFilter{}).All(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.PagesUsed)
	assert.Len(t, mock.Requests(), 1)
}

func TestGetFeedSubmissionList_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, "feed_submission_list.xml")
	_, err := c.GetFeedSubmissionList(context.Background(), mws.FeedSubmissionFilter{
		ProcessingStatuses: []string{"_LOST_"},
	})
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
}

func TestGetFeedSubmissionCount(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "report_count.xml")
	n, err := c.GetFeedSubmissionCount(context.Background(), mws.FeedSubmissionFilter{
		SubmissionIDs: []string{"1"},
		FeedTypes:     []string{"_POST_PRODUCT_DATA_"},
	})
	require.NoError(t, err)
	assert.Equal(t, 166, n)

	params := lastParams(t, mock)
	assert.Equal(t, "GetFeedSubmissionCount", params["Action"])
	assert.NotContains(t, params, "FeedSubmissionIdList.Id.1")
	assert.Equal(t, "_POST_PRODUCT_DATA_", params["FeedTypeList.Type.1"])
}

func TestCancelFeedSubmissions(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "feed_submission_list.xml")
	_, err := c.CancelFeedSubmissions(context.Background(), mws.FeedSubmissionFilter{
		SubmissionIDs:      []string{"2291326430"},
		ProcessingStatuses: []string{"_DONE_"},
	})
	require.NoError(t, err)

	params := lastParams(t, mock)
	assert.Equal(t, "2291326430", params["FeedSubmissionIdList.Id.1"])
	assert.NotContains(t, params, "FeedProcessingStatusList.Status.1")
}

func TestGetFeedSubmissionResult(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "feed_result.xml")
	body, err := c.GetFeedSubmissionResult(context.Background(), "2291326430")
	require.NoError(t, err)
	assert.Contains(t, string(body), "ProcessingReport")
	assert.Equal(t, "2291326430", lastParams(t, mock)["FeedSubmissionId"])

	_, err = c.GetFeedSubmissionResult(context.Background(), "")
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
}

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/internal/metrics"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

func testSummary(store string, fetched int) domain.SyncSummary {
	return domain.SyncSummary{
		Job:     domain.JobOrderSync,
		Store:   store,
		Fetched: fetched,
		Written: fetched,
		Pages:   2,
		Cursor:  time.Date(2017, 2, 25, 18, 10, 21, 0, time.UTC),
	}
}

func captureServer(t *testing.T, status int, received *discordWebhookPayload) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, http.MethodPost, r.Method)

		err := json.NewDecoder(r.Body).Decode(received)
		assert.NoError(t, err)

		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDiscordNotifier_SendJobResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		result     JobResult
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
	}{
		{
			name: "succeeded run is green",
			result: JobResult{
				RunID:  "run-1",
				Job:    domain.JobOrderSync,
				Status: domain.JobStatusSucceeded,
			},
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
		},
		{
			name: "failed run is red with error description",
			result: JobResult{
				RunID:  "run-2",
				Job:    domain.JobReportArchive,
				Status: domain.JobStatusFailed,
				Error:  "RequestThrottled: request is throttled",
			},
			statusCode: http.StatusNoContent,
			wantColor:  colorRed,
		},
		{
			name:       "unknown status is grey",
			result:     JobResult{Job: domain.JobOrderSync, Status: "skipped"},
			statusCode: http.StatusOK,
			wantColor:  colorGrey,
		},
		{
			name:       "discord returns 429 rate limited",
			result:     JobResult{Job: domain.JobOrderSync, Status: domain.JobStatusFailed},
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			result:     JobResult{Job: domain.JobOrderSync, Status: domain.JobStatusFailed},
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload
			srv := captureServer(t, tt.statusCode, &received)

			d := NewDiscordNotifier(srv.URL)
			err := d.SendJobResult(context.Background(), &tt.result)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Contains(t, embed.Title, tt.result.Job)
			assert.Contains(t, embed.Title, tt.result.Status)
			assert.Equal(t, tt.result.Error, embed.Description)

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				fieldMap[f.Name] = f.Value
			}
			assert.Equal(t, orDash(tt.result.RunID), fieldMap["Run"])
		})
	}
}

func TestDiscordNotifier_RateLimitedSentinel(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload
	srv := captureServer(t, http.StatusTooManyRequests, &received)

	d := NewDiscordNotifier(srv.URL)
	err := d.SendJobResult(context.Background(), &JobResult{Job: "x", Status: "failed"})
	assert.True(t, errors.Is(err, ErrRateLimited))
}

func TestDiscordNotifier_SendJobResult_TruncatesError(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload
	srv := captureServer(t, http.StatusNoContent, &received)

	d := NewDiscordNotifier(srv.URL)
	err := d.SendJobResult(context.Background(), &JobResult{
		Job:    domain.JobOrderSync,
		Status: domain.JobStatusFailed,
		Error:  strings.Repeat("x", 5000),
	})
	require.NoError(t, err)
	require.Len(t, received.Embeds, 1)
	assert.Len(t, received.Embeds[0].Description, 2000)
	assert.True(t, strings.HasSuffix(received.Embeds[0].Description, "..."))
}

func TestDiscordNotifier_SendSyncSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		count      int
		wantEmbeds int
	}{
		{name: "three stores", count: 3, wantEmbeds: 3},
		{name: "exactly ten stores", count: 10, wantEmbeds: 10},
		{name: "overflow adds a trailer embed", count: 14, wantEmbeds: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload
			srv := captureServer(t, http.StatusNoContent, &received)

			summaries := make([]domain.SyncSummary, tt.count)
			for i := range summaries {
				summaries[i] = testSummary("store-"+string(rune('a'+i)), 10+i)
			}

			d := NewDiscordNotifier(srv.URL)
			err := d.SendSyncSummary(context.Background(), summaries, domain.JobOrderSync)
			require.NoError(t, err)

			require.Len(t, received.Embeds, tt.wantEmbeds)
			assert.Equal(t, "order_sync: store-a", received.Embeds[0].Title)
			if tt.count > maxEmbeds {
				last := received.Embeds[len(received.Embeds)-1]
				assert.Contains(t, last.Title, "and 4 more stores")
				assert.Equal(t, colorGrey, last.Color)
			}
		})
	}
}

func TestDiscordNotifier_SendSyncSummary_Empty(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := NewDiscordNotifier(srv.URL)
	require.NoError(t, d.SendSyncSummary(context.Background(), nil, domain.JobOrderSync))
	assert.False(t, called)
}

func TestBuildSummaryEmbed(t *testing.T) {
	t.Parallel()

	s := testSummary("us", 7)
	s.StoppedAt = "max_pages"

	embed := buildSummaryEmbed(&s)
	fieldMap := make(map[string]string)
	for _, f := range embed.Fields {
		fieldMap[f.Name] = f.Value
	}
	assert.Equal(t, "7", fieldMap["Fetched"])
	assert.Equal(t, "7", fieldMap["Written"])
	assert.Equal(t, "2", fieldMap["Pages"])
	assert.Equal(t, "2017-02-25T18:10:21Z", fieldMap["Cursor"])
	assert.Equal(t, "max_pages", fieldMap["Stopped"])
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	err := d.SendJobResult(context.Background(), &JobResult{Job: "x", Status: "failed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	err := d.SendJobResult(context.Background(), &JobResult{Job: "x", Status: "failed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}

func notificationSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestSendJobResult_ObservesNotificationDuration(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	before := notificationSampleCount()

	d := NewDiscordNotifier(srv.URL)
	err := d.SendJobResult(context.Background(), &JobResult{Job: "x", Status: "succeeded"})
	require.NoError(t, err)

	assert.Greater(t, notificationSampleCount(), before)
}

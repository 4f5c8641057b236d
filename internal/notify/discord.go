package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/donaldgifford/mws-toolkit/internal/metrics"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

const (
	colorGreen = 0x2ECC71 // succeeded
	colorRed   = 0xE74C3C // failed
	colorGrey  = 0x95A5A6 // anything else

	maxEmbeds = 10
)

// ErrRateLimited is returned when Discord answers 429.
var ErrRateLimited = errors.New("discord rate limited (429)")

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendJobResult posts a job outcome as a single embed.
func (d *DiscordNotifier) SendJobResult(ctx context.Context, result *JobResult) error {
	embed := discordEmbed{
		Title: fmt.Sprintf("Job %s %s", result.Job, result.Status),
		Color: statusColor(result.Status),
		Fields: []discordEmbedField{
			{Name: "Run", Value: orDash(result.RunID), Inline: true},
			{Name: "Duration", Value: result.Duration.Round(time.Millisecond).String(), Inline: true},
			{Name: "Stores", Value: fmt.Sprintf("%d", len(result.Summaries)), Inline: true},
		},
	}
	if !result.StartedAt.IsZero() {
		embed.Timestamp = result.StartedAt.UTC().Format(time.RFC3339)
	}
	if result.Error != "" {
		embed.Description = truncate(result.Error, 2000)
	}
	return d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{embed}})
}

// SendSyncSummary posts one embed per store summary.
func (d *DiscordNotifier) SendSyncSummary(
	ctx context.Context,
	summaries []domain.SyncSummary,
	job string,
) error {
	if len(summaries) == 0 {
		return nil
	}

	embeds := make([]discordEmbed, 0, min(len(summaries), maxEmbeds)+1)

	// Discord allows max 10 embeds per message.
	for i := range min(len(summaries), maxEmbeds) {
		embeds = append(embeds, buildSummaryEmbed(&summaries[i]))
	}

	if len(summaries) > maxEmbeds {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more stores for %s", len(summaries)-maxEmbeds, job),
			Color:       colorGrey,
			Description: "Check /api/v1/jobs for the full list.",
		})
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func buildSummaryEmbed(s *domain.SyncSummary) discordEmbed {
	fields := []discordEmbedField{
		{Name: "Fetched", Value: fmt.Sprintf("%d", s.Fetched), Inline: true},
		{Name: "Written", Value: fmt.Sprintf("%d", s.Written), Inline: true},
		{Name: "Pages", Value: fmt.Sprintf("%d", s.Pages), Inline: true},
	}
	if !s.Cursor.IsZero() {
		fields = append(fields, discordEmbedField{
			Name: "Cursor", Value: s.Cursor.UTC().Format(time.RFC3339),
		})
	}
	if s.StoppedAt != "" {
		fields = append(fields, discordEmbedField{Name: "Stopped", Value: s.StoppedAt})
	}
	return discordEmbed{
		Title:  fmt.Sprintf("%s: %s", s.Job, s.Store),
		Color:  colorGreen,
		Fields: fields,
	}
}

func statusColor(status string) int {
	switch status {
	case domain.JobStatusSucceeded:
		return colorGreen
	case domain.JobStatusFailed, domain.JobStatusCrashed:
		return colorRed
	default:
		return colorGrey
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	if err := d.send(ctx, payload); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		return err
	}
	metrics.NotificationsSentTotal.Inc()
	return nil
}

func (d *DiscordNotifier) send(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

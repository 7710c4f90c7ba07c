package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/donaldgifford/sale-prospector/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // clean run
	colorYellow = 0xF1C40F // finished with lookup failures or quota hit
	colorRed    = 0xE74C3C // job error
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
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

// SendJobReport posts a report as a single Discord embed.
func (d *DiscordNotifier) SendJobReport(ctx context.Context, report *JobReport) error {
	start := time.Now()
	err := d.post(ctx, discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(report)},
	})
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.NotificationsFailedTotal.Inc()
		return err
	}
	metrics.NotificationsSentTotal.Inc()
	return nil
}

func buildEmbed(r *JobReport) discordEmbed {
	embed := discordEmbed{
		Title: fmt.Sprintf("Job %s: %s", r.JobName, reportStatus(r)),
		Color: reportColor(r),
		Fields: []discordEmbedField{
			{Name: "Sales", Value: fmt.Sprintf("%d", r.SalesGeocoded), Inline: true},
			{Name: "Contacts", Value: fmt.Sprintf("%d", r.ContactsGeocoded), Inline: true},
			{Name: "Failures", Value: fmt.Sprintf("%d", r.Failures), Inline: true},
			{Name: "Duration", Value: r.Duration.Round(time.Millisecond).String(), Inline: true},
		},
	}
	if !r.StartedAt.IsZero() {
		embed.Timestamp = r.StartedAt.UTC().Format(time.RFC3339)
	}

	switch {
	case r.Err != nil:
		embed.Description = r.Err.Error()
	case r.DailyLimitHit:
		embed.Description = "Daily geocoding quota reached; remaining rows are retried on the next run."
	}

	return embed
}

func reportStatus(r *JobReport) string {
	switch {
	case r.Err != nil:
		return "failed"
	case r.Failures > 0 || r.DailyLimitHit:
		return "partial"
	default:
		return "completed"
	}
}

func reportColor(r *JobReport) int {
	switch reportStatus(r) {
	case "failed":
		return colorRed
	case "partial":
		return colorYellow
	default:
		return colorGreen
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
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
		return fmt.Errorf("discord rate limited (429)")
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

// Package report implements the outbound report dispatch integrations.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fincontrol/backend/internal/application/adapter"
)

const defaultWebhookTimeout = 10 * time.Second

// WebhookClient implements adapter.ReportDispatcher by posting the report
// payload to the external automation webhook. Rendering and delivery of the
// report document happen on the webhook side.
type WebhookClient struct {
	url        string
	httpClient *http.Client
}

// NewWebhookClient creates a new webhook client instance.
func NewWebhookClient(url string, timeout time.Duration) *WebhookClient {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}
	return &WebhookClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Dispatch posts the report payload to the automation webhook.
func (c *WebhookClient) Dispatch(ctx context.Context, input adapter.DispatchReportInput) error {
	if c.url == "" {
		return fmt.Errorf("report webhook is not configured")
	}

	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal report payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call report webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("report webhook returned status %d", resp.StatusCode)
	}

	return nil
}

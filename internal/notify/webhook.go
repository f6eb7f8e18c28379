package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rileyhilliard/nodewatch/internal/alert"
)

// defaultHTTPTimeout bounds one delivery attempt end to end.
const defaultHTTPTimeout = 10 * time.Second

// Webhook POSTs the alert's own JSON to a configured URL.
type Webhook struct {
	url    string
	client *http.Client
}

// NewWebhook creates a webhook channel for the given URL.
func NewWebhook(url string) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Name implements alert.Notifier.
func (w *Webhook) Name() string { return "webhook" }

// Send implements alert.Notifier.
func (w *Webhook) Send(ctx context.Context, a alert.Alert) error {
	body, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}
	return post(ctx, w.client, w.url, body)
}

// post delivers a JSON body and treats anything outside 2xx as failure.
func post(ctx context.Context, client *http.Client, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return nil
}

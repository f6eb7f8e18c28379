package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rileyhilliard/nodewatch/internal/alert"
)

// Chat delivers alerts to a Slack-compatible incoming webhook as a
// color-coded attachment.
type Chat struct {
	url    string
	client *http.Client
}

// NewChat creates a chat channel for the given webhook URL.
func NewChat(url string) *Chat {
	return &Chat{
		url:    url,
		client: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Name implements alert.Notifier.
func (c *Chat) Name() string { return "chat" }

// chatPayload is the incoming-webhook message shape.
type chatPayload struct {
	Attachments []chatAttachment `json:"attachments"`
}

type chatAttachment struct {
	Color     string      `json:"color"`
	Title     string      `json:"title"`
	Text      string      `json:"text"`
	Fields    []chatField `json:"fields"`
	Footer    string      `json:"footer"`
	Timestamp int64       `json:"ts"`
}

type chatField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// Send implements alert.Notifier.
func (c *Chat) Send(ctx context.Context, a alert.Alert) error {
	payload := chatPayload{
		Attachments: []chatAttachment{{
			Color: attachmentColor(a.Severity),
			Title: "Node Alert: " + a.Message,
			Text:  fmt.Sprintf("Node %s reported %s", a.NodeID, a.Type),
			Fields: []chatField{
				{Title: "Severity", Value: string(a.Severity), Short: true},
				{Title: "Type", Value: string(a.Type), Short: true},
			},
			Footer:    "nodewatch",
			Timestamp: a.Timestamp.Unix(),
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal chat payload: %w", err)
	}
	return post(ctx, c.client, c.url, body)
}

// attachmentColor maps severity to the attachment sidebar color.
func attachmentColor(s alert.Severity) string {
	switch s {
	case alert.SeverityCritical:
		return "#ff0000"
	case alert.SeverityWarning:
		return "#ff9900"
	default:
		return "#36a64f"
	}
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/ziflex/lecho/v3"
)

// ProgressNotifier is the busy-indicator capability of the surrounding
// UI. It is passed in explicitly so saves can be exercised in tests
// without ambient global state. Start is called the instant a save is
// committed; Finish is guaranteed to follow on every path.
type ProgressNotifier interface {
	Start(ctx context.Context, label string)
	Finish(ctx context.Context)
}

type NoopNotifier struct{}

func (NoopNotifier) Start(ctx context.Context, label string) {}
func (NoopNotifier) Finish(ctx context.Context)              {}

// WebhookNotifier posts progress transitions to a configured URL, e.g. a
// push gateway feeding the client app's notification channel.
type WebhookNotifier struct {
	Url    string
	Logger *lecho.Logger
}

type progressEvent struct {
	Event string `json:"event"`
	Label string `json:"label,omitempty"`
}

func (n *WebhookNotifier) Start(ctx context.Context, label string) {
	n.post(ctx, progressEvent{Event: "saving_started", Label: label})
}

func (n *WebhookNotifier) Finish(ctx context.Context) {
	n.post(ctx, progressEvent{Event: "saving_finished"})
}

func (n *WebhookNotifier) post(ctx context.Context, event progressEvent) {
	payload := new(bytes.Buffer)
	if err := json.NewEncoder(payload).Encode(event); err != nil {
		n.Logger.Error(err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.Url, payload)
	if err != nil {
		n.Logger.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		n.Logger.Error(err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		n.Logger.Errorf("Progress webhook status code was %d", resp.StatusCode)
	}
}

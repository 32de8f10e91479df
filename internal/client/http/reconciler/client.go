package reconciler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/you-humble/field-service/internal/model"
)

const (
	authHeader = "X-Webhook-Token"

	// Enough of an error body to diagnose a rejection without buffering
	// arbitrarily large responses.
	maxErrorBody = 2048
)

type client struct {
	httpClient *http.Client
	url        string
	token      string
}

// NewClient builds a delivery client for the workflow-automation webhook.
// The timeout bounds the whole request; the client performs exactly one
// attempt per Deliver call and never retries on its own.
func NewClient(url, token string, timeout time.Duration) *client {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		token:      token,
	}
}

// Deliver posts the payload once. Any transport failure, timeout or non-2xx
// response collapses into model.ErrDeliveryFailed with a human-readable
// cause; the caller decides whether and when to retry.
func (c *client) Deliver(ctx context.Context, payload *model.ReconciliationPayload) error {
	payload.DeliveredAt = time.Now().UTC()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal reconciliation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build reconciliation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(authHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDeliveryFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: endpoint returned %d: %s",
			model.ErrDeliveryFailed, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

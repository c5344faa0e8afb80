// Package mailer delivers rendered newsletters through the Resend HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const resendBaseURL = "https://api.resend.com"

// defaultSender uses the Resend onboarding domain until a real one is verified.
const defaultSender = "SentimentAI Alerts <onboarding@resend.dev>"

type ResendClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	from    string
	tracer  trace.Tracer
}

func NewResendClient(apiKey, from string, tracer trace.Tracer) *ResendClient {
	if from == "" {
		from = defaultSender
	}
	return &ResendClient{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: resendBaseURL,
		apiKey:  apiKey,
		from:    from,
		tracer:  tracer,
	}
}

// SetHTTPClient swaps the transport, for tests.
func (c *ResendClient) SetHTTPClient(client *http.Client) { c.client = client }

// Send mails html to the recipient and returns the provider's message id.
func (c *ResendClient) Send(ctx context.Context, to, subject, html string) (string, error) {
	_, span := c.tracer.Start(ctx, "resend.send")
	defer span.End()

	body, err := json.Marshal(map[string]any{
		"from":    c.from,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	})
	if err != nil {
		return "", fmt.Errorf("encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send email to %s: %w", to, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read email response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("email provider returned %d: %s", resp.StatusCode, raw)
	}

	var payload struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("decode email response: %w", err)
	}
	return payload.ID, nil
}

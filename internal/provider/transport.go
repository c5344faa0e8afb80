package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultWrapperURL = "https://api.allorigins.win/get?url="

type TransportMode string

const (
	// ModeDirect hits provider endpoints directly.
	ModeDirect TransportMode = "direct"

	// ModeWrapped routes every call through a CORS-wrapper proxy that returns
	// the upstream body as a JSON string under "contents".
	ModeWrapped TransportMode = "wrapped"
)

// Fetcher is the process-wide JSON transport shared by all providers.
// The mode is resolved once at startup; providers see a uniform DoJSON.
type Fetcher struct {
	client     *http.Client
	mode       TransportMode
	wrapperURL string
}

func NewFetcher(mode TransportMode, timeout time.Duration) *Fetcher {
	if mode != ModeWrapped {
		mode = ModeDirect
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Fetcher{
		client:     &http.Client{Timeout: timeout},
		mode:       mode,
		wrapperURL: defaultWrapperURL,
	}
}

// DoJSON fetches targetURL and decodes the JSON body into out, unwrapping the
// proxy envelope first when running in wrapped mode.
func (f *Fetcher) DoJSON(ctx context.Context, targetURL string, out any) error {
	requestURL := targetURL
	if f.mode == ModeWrapped {
		requestURL = f.wrapperURL + url.QueryEscape(targetURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", targetURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch %s: status %d: %s", targetURL, resp.StatusCode, truncate(string(body), 200))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", targetURL, err)
	}

	if f.mode == ModeWrapped {
		var wrapper struct {
			Contents string `json:"contents"`
		}
		if err := json.Unmarshal(body, &wrapper); err != nil {
			return fmt.Errorf("decode proxy envelope for %s: %w", targetURL, err)
		}
		if strings.TrimSpace(wrapper.Contents) == "" {
			return fmt.Errorf("empty proxy envelope for %s", targetURL)
		}
		body = []byte(wrapper.Contents)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", targetURL, err)
	}
	return nil
}

// SetHTTPClient swaps the underlying client. Used by tests.
func (f *Fetcher) SetHTTPClient(client *http.Client) {
	if client != nil {
		f.client = client
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

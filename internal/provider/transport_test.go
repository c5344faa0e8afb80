package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(t *testing.T, status int, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal stub body: %v", err)
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     make(http.Header),
	}
}

func stubFetcher(t *testing.T, fn roundTripFunc) *Fetcher {
	t.Helper()
	f := NewFetcher(ModeDirect, time.Second)
	f.SetHTTPClient(&http.Client{Transport: fn})
	return f
}

func TestFetcherDirectDecodes(t *testing.T) {
	t.Parallel()

	f := stubFetcher(t, func(req *http.Request) (*http.Response, error) {
		if req.URL.Host != "example.test" {
			t.Fatalf("unexpected host: %s", req.URL.Host)
		}
		return jsonResponse(t, http.StatusOK, map[string]int{"value": 7}), nil
	})

	var out struct {
		Value int `json:"value"`
	}
	if err := f.DoJSON(context.Background(), "http://example.test/v1", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value != 7 {
		t.Fatalf("expected 7, got %d", out.Value)
	}
}

func TestFetcherWrappedUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	f := NewFetcher(ModeWrapped, time.Second)
	f.SetHTTPClient(&http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if !strings.Contains(req.URL.Host, "allorigins") {
			t.Fatalf("expected wrapper host, got %s", req.URL.Host)
		}
		if !strings.Contains(req.URL.RawQuery, "example.test") {
			t.Fatalf("expected target url in query, got %s", req.URL.RawQuery)
		}
		return jsonResponse(t, http.StatusOK, map[string]string{"contents": `{"value":9}`}), nil
	})})

	var out struct {
		Value int `json:"value"`
	}
	if err := f.DoJSON(context.Background(), "http://example.test/v1", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value != 9 {
		t.Fatalf("expected 9, got %d", out.Value)
	}
}

func TestFetcherWrappedEmptyEnvelope(t *testing.T) {
	t.Parallel()

	f := NewFetcher(ModeWrapped, time.Second)
	f.SetHTTPClient(&http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(t, http.StatusOK, map[string]string{"contents": ""}), nil
	})})

	var out map[string]any
	if err := f.DoJSON(context.Background(), "http://example.test/v1", &out); err == nil {
		t.Fatal("expected error for empty envelope")
	}
}

func TestFetcherNon200(t *testing.T) {
	t.Parallel()

	f := stubFetcher(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(t, http.StatusTooManyRequests, map[string]string{"error": "rate limited"}), nil
	})

	var out map[string]any
	err := f.DoJSON(context.Background(), "http://example.test/v1", &out)
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

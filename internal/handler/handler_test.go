package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"sentimentai/internal/domain"
	"sentimentai/internal/service"
)

type stubAnalysis struct {
	analysis *domain.Analysis
	err      error
	queries  []string
}

func (s *stubAnalysis) Analyze(ctx context.Context, query string) (*domain.Analysis, error) {
	s.queries = append(s.queries, query)
	return s.analysis, s.err
}

type stubSubs struct {
	id        int64
	err       error
	lastEmail string
	lastStock string
	lastHTML  string
}

func (s *stubSubs) Insert(ctx context.Context, email, stockName, htmlPayload string) (int64, error) {
	s.lastEmail, s.lastStock, s.lastHTML = email, stockName, htmlPayload
	return s.id, s.err
}

func sampleAnalysis() *domain.Analysis {
	return &domain.Analysis{
		Query:  "tcs",
		Symbol: "TCS.NS",
		Snapshot: &domain.PriceSnapshot{
			Name:     "Tata Consultancy Services",
			Price:    3521.55,
			Currency: "INR",
			History:  []float64{3400, 3521.55},
		},
		Summary: &domain.SentimentSummary{AvgScore: 0.02, Neutral: 1},
		Verdict: domain.VerdictResult{Verdict: domain.VerdictNeutral, VerdictClass: "verdict-neutral"},
	}
}

func setupRouter(analysis AnalysisRunner, subs SubscriptionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(trace.NewNoopTracerProvider().Tracer("test"), analysis, subs)
	h.RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	r := setupRouter(&stubAnalysis{}, &stubSubs{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestGetAnalysis(t *testing.T) {
	stub := &stubAnalysis{analysis: sampleAnalysis()}
	r := setupRouter(stub, &stubSubs{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/analysis?q=tcs", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		Analysis   domain.Analysis `json:"analysis"`
		Confidence float64         `json:"confidence"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Analysis.Symbol != "TCS.NS" {
		t.Fatalf("unexpected symbol: %s", payload.Analysis.Symbol)
	}
	if payload.Confidence != 60 {
		t.Fatalf("expected confidence 60, got %v", payload.Confidence)
	}
}

func TestGetAnalysisMissingQuery(t *testing.T) {
	stub := &stubAnalysis{err: service.ErrEmptyQuery}
	r := setupRouter(stub, &stubSubs{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/analysis", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestCreateSubscription(t *testing.T) {
	analysis := &stubAnalysis{analysis: sampleAnalysis()}
	subs := &stubSubs{id: 7}
	r := setupRouter(analysis, subs)

	body := `{"email":"reader@example.com","query":"tcs"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/subscriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if subs.lastEmail != "reader@example.com" || subs.lastStock != "Tata Consultancy Services" {
		t.Fatalf("unexpected insert: %s / %s", subs.lastEmail, subs.lastStock)
	}
	if !strings.Contains(subs.lastHTML, "Tata Consultancy Services") {
		t.Fatal("expected rendered newsletter payload")
	}
	if !strings.Contains(w.Body.String(), `"id":7`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCreateSubscriptionValidation(t *testing.T) {
	r := setupRouter(&stubAnalysis{analysis: sampleAnalysis()}, &stubSubs{})

	cases := []string{
		`{"query":"tcs"}`,
		`{"email":"reader@example.com"}`,
		`{"email":"not-an-email","query":"tcs"}`,
		`not json`,
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/subscriptions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected status 400, got %d", body, w.Code)
		}
	}
}

func TestCreateSubscriptionWithoutStore(t *testing.T) {
	analysis := &stubAnalysis{analysis: sampleAnalysis()}
	r := setupRouter(analysis, nil)

	body := `{"email":"reader@example.com","query":"tcs"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/subscriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "no database configured") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if len(analysis.queries) != 0 {
		t.Fatal("expected analysis pipeline to be skipped")
	}
}

func TestCreateSubscriptionAnalysisFailure(t *testing.T) {
	r := setupRouter(&stubAnalysis{err: errors.New("pipeline broken")}, &stubSubs{})

	body := `{"email":"reader@example.com","query":"tcs"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/subscriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}

package quote

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.opentelemetry.io/otel/trace"

	"sentimentai/internal/provider"
)

type stubCharts struct {
	series *provider.ChartSeries
	err    error
}

func (s *stubCharts) FetchDailySeries(ctx context.Context, symbol, rangeSpec, interval string) (*provider.ChartSeries, error) {
	return s.series, s.err
}

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

func TestSnapshotLiveSeries(t *testing.T) {
	t.Parallel()

	charts := &stubCharts{series: &provider.ChartSeries{
		Currency: "INR",
		LongName: "Tata Consultancy Services Limited",
		Closes:   []float64{100, 102, 101, 104},
	}}

	a := NewAcquirer(charts, testTracer())
	snap := a.Snapshot(context.Background(), "TCS.NS", "tcs")

	if snap.Price != 104 {
		t.Fatalf("expected price 104, got %v", snap.Price)
	}
	if snap.Change != 3 {
		t.Fatalf("expected change 3, got %v", snap.Change)
	}
	if math.Abs(snap.ChangePercent-3.0/101*100) > 1e-9 {
		t.Fatalf("unexpected change percent: %v", snap.ChangePercent)
	}
	if snap.Currency != "INR" || snap.Name != "Tata Consultancy Services Limited" {
		t.Fatalf("unexpected meta: %+v", snap)
	}
}

func TestSnapshotTrimsToThirtyDays(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 45)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	charts := &stubCharts{series: &provider.ChartSeries{Closes: closes}}

	a := NewAcquirer(charts, testTracer())
	snap := a.Snapshot(context.Background(), "LONG.NS", "")

	if len(snap.History) != 30 {
		t.Fatalf("expected 30 points, got %d", len(snap.History))
	}
	if snap.History[0] != 16 || snap.Price != 45 {
		t.Fatalf("expected trailing window, got first=%v last=%v", snap.History[0], snap.Price)
	}
	if snap.Currency != "USD" {
		t.Fatalf("expected USD default, got %s", snap.Currency)
	}
}

func TestSnapshotSyntheticFallback(t *testing.T) {
	t.Parallel()

	charts := &stubCharts{err: errors.New("rate limited")}
	a := NewAcquirer(charts, testTracer())

	snap := a.Snapshot(context.Background(), "RELIANCE.NS", "Reliance Industries")
	if snap == nil {
		t.Fatal("expected a snapshot even when the live source fails")
	}
	if len(snap.History) != 30 {
		t.Fatalf("expected 30 synthetic points, got %d", len(snap.History))
	}
	if snap.Currency != "INR" {
		t.Fatalf("expected INR for .NS symbol, got %s", snap.Currency)
	}
	if snap.Name != "Reliance Industries" {
		t.Fatalf("expected fallback name, got %s", snap.Name)
	}
}

func TestSyntheticSnapshotDeterministic(t *testing.T) {
	t.Parallel()

	first := syntheticSnapshot("TCS.NS", "")
	second := syntheticSnapshot("TCS.NS", "")
	for i := range first.History {
		if first.History[i] != second.History[i] {
			t.Fatalf("point %d differs: %v vs %v", i, first.History[i], second.History[i])
		}
	}
	if first.Price != second.Price || first.Change != second.Change {
		t.Fatalf("snapshots differ: %+v vs %+v", first, second)
	}

	other := syntheticSnapshot("INFY.NS", "")
	same := true
	for i := range first.History {
		if first.History[i] != other.History[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected distinct symbols to produce distinct series")
	}
}

func TestSyntheticCurrencyBySuffix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"TCS.NS":    "INR",
		"500325.BO": "INR",
		"AAPL":      "USD",
		"BARC.L":    "USD",
	}
	for symbol, want := range cases {
		snap := syntheticSnapshot(symbol, "")
		if snap.Currency != want {
			t.Fatalf("%s: expected %s, got %s", symbol, want, snap.Currency)
		}
	}
}

func TestSyntheticNameFallbackStripsExchangeSuffix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"RELIANCE.NS": "RELIANCE",
		"500325.BO":   "500325",
		"AAPL":        "AAPL",
	}
	for symbol, want := range cases {
		if got := syntheticSnapshot(symbol, "").Name; got != want {
			t.Fatalf("%s: expected name %q, got %q", symbol, want, got)
		}
	}

	if got := syntheticSnapshot("TCS.NS", "Tata Consultancy Services").Name; got != "Tata Consultancy Services" {
		t.Fatalf("expected explicit fallback name to win, got %q", got)
	}
}

package market_test

import (
	"math"
	"testing"
	"time"

	"cryptoview/internal/market"
)

func history(prices ...float64) market.ValueHistory {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	h := make(market.ValueHistory, 0, len(prices))
	for i, p := range prices {
		h = append(h, market.PricePoint{Price: p, Time: base.Add(time.Duration(i) * time.Minute)})
	}
	return h
}

func TestAbsoluteDelta(t *testing.T) {
	t.Parallel()

	d, ok := market.AbsoluteDelta(105, history(100, 110))
	if !ok {
		t.Fatal("expected ok")
	}
	if d != 5 {
		t.Fatalf("expected delta 5, got %v", d)
	}
}

func TestAbsoluteDelta_NoBaseline(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current float64
		hist    market.ValueHistory
	}{
		{"empty history", 100, nil},
		{"zero earliest price", 100, history(0, 50)},
		{"nan current", math.NaN(), history(100)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if d, ok := market.AbsoluteDelta(tc.current, tc.hist); ok || d != 0 {
				t.Fatalf("expected (0, false), got (%v, %v)", d, ok)
			}
		})
	}
}

func TestPercentDelta(t *testing.T) {
	t.Parallel()

	pct, ok := market.PercentDelta(110, history(100))
	if !ok {
		t.Fatal("expected ok")
	}
	if pct != 10 {
		t.Fatalf("expected 10%%, got %v", pct)
	}

	// negative baseline: percentage is relative to the magnitude
	pct, ok = market.PercentDelta(-50, history(-100))
	if !ok {
		t.Fatal("expected ok")
	}
	if pct != 50 {
		t.Fatalf("expected 50%%, got %v", pct)
	}
}

func TestPercentDelta_NeverNonFinite(t *testing.T) {
	t.Parallel()

	pct, ok := market.PercentDelta(math.Inf(1), history(100))
	if !ok {
		t.Fatal("expected ok")
	}
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		t.Fatalf("expected finite result, got %v", pct)
	}
}

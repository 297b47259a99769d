package chart_test

import (
	"testing"
	"time"

	"cryptoview/internal/chart"
)

func TestEaseOutCubic(t *testing.T) {
	t.Parallel()

	if got := chart.EaseOutCubic(0); got != 0 {
		t.Fatalf("EaseOutCubic(0) = %v, want 0", got)
	}
	if got := chart.EaseOutCubic(1); got != 1 {
		t.Fatalf("EaseOutCubic(1) = %v, want 1", got)
	}
	prev := 0.0
	for f := 0.1; f <= 1.0; f += 0.1 {
		e := chart.EaseOutCubic(f)
		if e <= prev {
			t.Fatalf("easing not increasing at %v: %v <= %v", f, e, prev)
		}
		prev = e
	}
	// ease-out: front-loaded progress
	if e := chart.EaseOutCubic(0.5); e <= 0.5 {
		t.Fatalf("ease-out should be ahead of linear at 0.5, got %v", e)
	}
}

func TestResample(t *testing.T) {
	t.Parallel()

	line := []chart.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}

	up := chart.Resample(line, 5)
	if len(up) != 5 {
		t.Fatalf("expected 5 points, got %d", len(up))
	}
	if up[0] != line[0] || up[4] != line[1] {
		t.Fatalf("resample must keep endpoints, got %+v .. %+v", up[0], up[4])
	}
	if up[2].X != 5 || up[2].Y != 5 {
		t.Fatalf("midpoint should interpolate to (5,5), got %+v", up[2])
	}

	down := chart.Resample(up, 2)
	if len(down) != 2 {
		t.Fatalf("expected 2 points, got %d", len(down))
	}
	if down[0] != line[0] || down[1] != line[1] {
		t.Fatalf("downsample must keep endpoints, got %+v", down)
	}
}

func TestTransition(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	from := []chart.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	to := []chart.Point{{X: 0, Y: 100}, {X: 10, Y: 100}}

	tr := chart.NewTransition(from, to, start, 100*time.Millisecond)

	if got := tr.At(start); got[0].Y != 0 {
		t.Fatalf("at start expected the old shape, got %+v", got[0])
	}
	mid := tr.At(start.Add(50 * time.Millisecond))
	if mid[0].Y <= 0 || mid[0].Y >= 100 {
		t.Fatalf("mid-transition y should be strictly between shapes, got %v", mid[0].Y)
	}
	if tr.Done(start.Add(50 * time.Millisecond)) {
		t.Fatal("transition should not be done halfway")
	}

	end := tr.At(start.Add(200 * time.Millisecond))
	if end[0].Y != 100 || end[1].Y != 100 {
		t.Fatalf("after the duration expected the new shape, got %+v", end)
	}
	if !tr.Done(start.Add(200 * time.Millisecond)) {
		t.Fatal("transition should be done after the duration")
	}
}

func TestTransition_MismatchedLengths(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	from := []chart.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}
	to := []chart.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}}

	tr := chart.NewTransition(from, to, start, 100*time.Millisecond)
	mid := tr.At(start.Add(50 * time.Millisecond))
	if len(mid) != 3 {
		t.Fatalf("expected series resampled to 3 points, got %d", len(mid))
	}
	if got := tr.Target(); len(got) != 3 {
		t.Fatalf("target should keep the new length, got %d", len(got))
	}
}

func TestTransition_EmptyFromSnaps(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	to := []chart.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	tr := chart.NewTransition(nil, to, start, 100*time.Millisecond)

	got := tr.At(start.Add(10 * time.Millisecond))
	for i := range got {
		if got[i] != to[i] {
			t.Fatalf("empty source must snap to target, got %+v", got)
		}
	}
}

package ui

import (
	"testing"
	"time"

	"cryptoview/internal/market"
)

type fakeControl struct {
	calls []market.Selection
}

func (f *fakeControl) Refresh(sel market.Selection) {
	f.calls = append(f.calls, sel)
}

func newTestGame(ctl Control) *Game {
	sel := market.Selection{CoinIndex: 0, Period: market.PeriodDay}
	return NewGame(DefaultTheme(), nil, 1, 20, sel, ctl)
}

func TestApplyUpdate_IgnoresStaleSelection(t *testing.T) {
	t.Parallel()

	g := newTestGame(&fakeControl{})
	stale := market.Selection{CoinIndex: 1, Period: market.PeriodDay}
	g.ApplyUpdate(stale, 100, market.ValueHistory{{Price: 90, Time: time.Now()}})

	if g.hasValue || g.history != nil {
		t.Fatal("update for a superseded selection must be dropped")
	}

	g.ApplyUpdate(g.sel, 100, market.ValueHistory{{Price: 90, Time: time.Now()}})
	if !g.hasValue || len(g.history) != 1 || !g.dataDirty {
		t.Fatalf("matching update must be applied, got hasValue=%v len=%d dirty=%v",
			g.hasValue, len(g.history), g.dataDirty)
	}
}

func TestChangeSelection_InvalidatesAndRefetches(t *testing.T) {
	t.Parallel()

	ctl := &fakeControl{}
	g := newTestGame(ctl)
	g.ApplyUpdate(g.sel, 100, market.ValueHistory{{Price: 90, Time: time.Now()}})

	next := g.sel.NextCoin()
	g.changeSelection(next)

	if len(ctl.calls) != 1 || ctl.calls[0] != next {
		t.Fatalf("expected exactly one refresh for %+v, got %+v", next, ctl.calls)
	}
	if g.hasValue || g.history != nil || g.scaled != nil || g.transition != nil {
		t.Fatal("selection change must invalidate loaded data")
	}
	if g.sel != next {
		t.Fatalf("selection not updated, got %+v", g.sel)
	}
}

func TestDeltaReadout(t *testing.T) {
	t.Parallel()

	g := newTestGame(&fakeControl{})
	if got, _ := g.deltaReadout(); got != "--" {
		t.Fatalf("expected placeholder before data, got %q", got)
	}

	g.ApplyUpdate(g.sel, 110, market.ValueHistory{{Price: 100, Time: time.Now()}})

	got, c := g.deltaReadout()
	if got != "+$10.00" {
		t.Fatalf("expected +$10.00, got %q", got)
	}
	if c != g.theme.Gain {
		t.Fatalf("positive delta should use the gain color")
	}

	g.showPercent = true
	if got, _ = g.deltaReadout(); got != "+10.00%" {
		t.Fatalf("expected +10.00%%, got %q", got)
	}
}

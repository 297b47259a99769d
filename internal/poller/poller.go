package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"cryptoview/internal/market"
)

// Source provides the two reads a fetch cycle needs.
type Source interface {
	CurrentValue(ctx context.Context, coin market.Coin) (float64, error)
	ValueHistory(ctx context.Context, coin market.Coin, period market.Period) (market.ValueHistory, error)
}

// Update carries the result of one settled fetch cycle.
type Update struct {
	Selection market.Selection
	Value     float64
	History   market.ValueHistory
}

// Poller re-runs the fetch cycle on a fixed delay, re-armed only after
// the previous cycle settles. Fetch failures are logged as warnings and
// do not disturb the schedule. Each cycle carries a monotonic sequence
// number; a cycle that settles after a newer one was issued is dropped
// instead of applied, so a stale response can never overwrite fresher
// state.
type Poller struct {
	src      Source
	interval time.Duration
	log      *logrus.Logger
	apply    func(Update)

	mu      sync.Mutex
	seq     uint64
	running bool

	ctx     context.Context
	cancel  context.CancelFunc
	refresh chan market.Selection
	stop    chan struct{}
	wg      sync.WaitGroup
}

func New(src Source, interval time.Duration, log *logrus.Logger, apply func(Update)) *Poller {
	return &Poller{
		src:      src,
		interval: interval,
		log:      log,
		apply:    apply,
		refresh:  make(chan market.Selection, 1),
		stop:     make(chan struct{}),
	}
}

// Start launches the loop with an immediate first cycle for the given
// selection.
func (p *Poller) Start(sel market.Selection) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return fmt.Errorf("poller already running")
	}
	p.running = true
	p.ctx, p.cancel = context.WithCancel(context.Background())

	p.wg.Add(1)
	go p.loop(sel)
	return nil
}

// Refresh switches the loop to a new selection and triggers an immediate
// cycle for it. Any cycle still in flight for the old selection is
// superseded and its result dropped.
func (p *Poller) Refresh(sel market.Selection) {
	p.bumpSeq()

	// keep only the latest pending selection
	select {
	case <-p.refresh:
	default:
	}
	select {
	case p.refresh <- sel:
	default:
	}
}

// Stop cancels the armed timer, aborts any in-flight request and waits
// for the loop to exit. No callback fires after Stop returns.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	p.cancel()
	close(p.stop)
	p.wg.Wait()
}

func (p *Poller) loop(sel market.Selection) {
	defer p.wg.Done()

	for {
		p.runCycle(sel)

		timer := time.NewTimer(p.interval)
		select {
		case <-timer.C:
			// a selection change that raced the timer wins
			select {
			case next := <-p.refresh:
				sel = next
			default:
			}
		case next := <-p.refresh:
			timer.Stop()
			sel = next
		case <-p.stop:
			timer.Stop()
			return
		}
	}
}

func (p *Poller) runCycle(sel market.Selection) {
	seq := p.bumpSeq()
	coin := sel.Coin()

	value, err := p.src.CurrentValue(p.ctx, coin)
	if err != nil {
		p.log.WithError(err).WithField("coin", coin.Symbol).Warn("spot fetch failed")
		return
	}

	history, err := p.src.ValueHistory(p.ctx, coin, sel.Period)
	if err != nil {
		p.log.WithError(err).WithField("coin", coin.Symbol).Warn("history fetch failed")
		return
	}

	if seq != p.latestSeq() {
		p.log.WithField("coin", coin.Symbol).Debug("dropping superseded fetch cycle")
		return
	}
	p.apply(Update{Selection: sel, Value: value, History: history})
}

func (p *Poller) bumpSeq() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	return p.seq
}

func (p *Poller) latestSeq() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq
}

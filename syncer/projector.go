// Package syncer projects the synchronization engine status, wallet history
// and balance into snapshots for the user interface.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/events"
)

var (
	ErrRunning    = errors.New("syncer: projector already active")
	ErrNotRunning = errors.New("syncer: projector not active")
)

// DrawerOverlay is the size of the history drawer.
type DrawerOverlay uint8

const (
	Partial DrawerOverlay = iota
	Full
)

func (d DrawerOverlay) String() string {
	if d == Full {
		return "full"
	}
	return "partial"
}

// Snapshot is the projected state. Events is replaced on every history
// refresh and never modified in place.
type Snapshot struct {
	Status     types.SyncStatusSnapshot
	Percentage float64
	Events     []types.WalletEvent
	Balance    types.WalletBalance
	Drawer     DrawerOverlay
	Scrollable bool
	// Refreshes counts settled refreshes. A refresh is settled once both the
	// history and the balance query returned.
	Refreshes uint64
}

func (s Snapshot) clone() Snapshot {
	s.Events = slices.Clone(s.Events)
	return s
}

type Opt func(*Projector)

func WithLogger(logger *zap.Logger) Opt {
	return func(p *Projector) {
		p.logger = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(p *Projector) {
		p.cfg = cfg
	}
}

// WithBirthday adds an import event at the given height to the history.
func WithBirthday(height types.Height) Opt {
	return func(p *Projector) {
		p.birthday = &height
	}
}

func WithEmitter(emitter *events.Emitter[Snapshot]) Opt {
	return func(p *Projector) {
		p.emitter = emitter
	}
}

type (
	historyLoaded struct {
		events []types.WalletEvent
		err    error
	}
	balanceLoaded struct {
		balance types.WalletBalance
		err     error
	}
	refreshSettled struct{}
	drawerSelected struct {
		showAll bool
	}
)

// Projector owns the projected snapshot. All mutations happen on a single
// goroutine that runs between Start and Stop.
type Projector struct {
	logger   *zap.Logger
	cfg      Config
	birthday *types.Height
	emitter  *events.Emitter[Snapshot]

	source statusSource
	ledger ledger

	lifecycle sync.Mutex
	cancel    context.CancelFunc
	eg        *errgroup.Group
	inbox     chan any
	done      <-chan struct{}

	// owned by the run goroutine
	state Snapshot

	snapshotMu sync.RWMutex
	snapshot   Snapshot
}

func NewProjector(source statusSource, ledger ledger, opts ...Opt) *Projector {
	p := &Projector{
		logger: zap.NewNop(),
		cfg:    DefaultConfig(),
		source: source,
		ledger: ledger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start subscribes to the status stream. The projector stays active until
// Stop or until ctx is cancelled.
func (p *Projector) Start(ctx context.Context) error {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	if p.cancel != nil {
		return ErrRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	stream, err := p.source.StatusStream(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribe to status stream: %w", err)
	}
	p.cancel = cancel
	p.inbox = make(chan any)
	p.done = ctx.Done()
	p.eg = &errgroup.Group{}
	// history and balance survive a restart, the first status after it is
	// a transition again
	p.state = p.Snapshot()
	p.state.Status = types.SyncStatusSnapshot{}
	p.eg.Go(func() error {
		p.run(ctx, stream, p.inbox)
		return nil
	})
	p.logger.Info("projector started")
	return nil
}

// Stop unsubscribes and waits for outstanding work. Results that arrive
// after Stop are dropped and the snapshot doesn't change anymore.
func (p *Projector) Stop() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.eg.Wait()
	p.cancel = nil
	p.inbox = nil
	p.done = nil
	p.logger.Info("projector stopped")
}

// Snapshot returns the last published snapshot.
func (p *Projector) Snapshot() Snapshot {
	p.snapshotMu.RLock()
	defer p.snapshotMu.RUnlock()
	return p.snapshot.clone()
}

// ShowAll expands the drawer to every event.
func (p *Projector) ShowAll(ctx context.Context) error {
	return p.deliver(ctx, drawerSelected{showAll: true})
}

// ShowLatest collapses the drawer to the latest events.
func (p *Projector) ShowLatest(ctx context.Context) error {
	return p.deliver(ctx, drawerSelected{showAll: false})
}

func (p *Projector) deliver(ctx context.Context, msg any) error {
	p.lifecycle.Lock()
	inbox, done := p.inbox, p.done
	p.lifecycle.Unlock()
	if inbox == nil {
		return ErrNotRunning
	}
	select {
	case inbox <- msg:
		return nil
	case <-done:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Projector) run(ctx context.Context, stream <-chan types.SyncStatusSnapshot, inbox chan any) {
	for {
		select {
		case <-ctx.Done():
			return
		case status, ok := <-stream:
			if !ok {
				p.logger.Info("status stream closed")
				stream = nil
				continue
			}
			p.onStatus(ctx, status, inbox)
		case msg := <-inbox:
			p.onMessage(msg)
		}
		if ctx.Err() != nil {
			// nothing is published after teardown
			return
		}
		p.publish()
	}
}

func (p *Projector) onStatus(ctx context.Context, status types.SyncStatusSnapshot, inbox chan any) {
	previous := p.state.Status.Status
	p.state.Status = status
	p.state.Percentage = status.Percentage()
	syncProgress.WithLabelValues(status.Status.String()).Set(p.state.Percentage)
	p.logger.Debug("sync status", zap.Inline(status), zap.Float64("percentage", p.state.Percentage))
	if status.Status == types.StatusSynced && previous != types.StatusSynced {
		p.refresh(ctx, inbox)
	}
}

// refresh queries history and balance concurrently. Each result is fed back
// into the run loop, followed by refreshSettled once both returned.
func (p *Projector) refresh(ctx context.Context, inbox chan any) {
	p.eg.Go(func() error {
		var eg errgroup.Group
		eg.Go(func() error {
			qctx, cancel := context.WithTimeout(ctx, p.cfg.RefreshTimeout)
			defer cancel()
			txs, err := p.ledger.Transactions(qctx)
			var evs []types.WalletEvent
			if err == nil {
				evs = p.project(txs)
			}
			send(ctx, inbox, historyLoaded{events: evs, err: err})
			return nil
		})
		eg.Go(func() error {
			qctx, cancel := context.WithTimeout(ctx, p.cfg.RefreshTimeout)
			defer cancel()
			balance, err := p.ledger.Balance(qctx)
			send(ctx, inbox, balanceLoaded{balance: balance, err: err})
			return nil
		})
		eg.Wait()
		send(ctx, inbox, refreshSettled{})
		return nil
	})
}

func send(ctx context.Context, inbox chan any, msg any) {
	select {
	case inbox <- msg:
	case <-ctx.Done():
	}
}

func (p *Projector) onMessage(msg any) {
	switch msg := msg.(type) {
	case historyLoaded:
		if msg.err != nil {
			historyFail.Inc()
			p.logger.Warn("failed to refresh history", zap.Error(msg.err))
			return
		}
		historyOk.Inc()
		p.state.Events = msg.events
		if len(msg.events) > p.cfg.VisibleRows {
			p.setDrawer(Full)
		}
	case balanceLoaded:
		if msg.err != nil {
			balanceFail.Inc()
			p.logger.Warn("failed to refresh balance", zap.Error(msg.err))
			return
		}
		balanceOk.Inc()
		if msg.balance.Verified > msg.balance.Total {
			clampedTotal.Inc()
			p.logger.Warn("verified balance above total", zap.Inline(msg.balance))
		}
		p.state.Balance = msg.balance.Clamped()
	case refreshSettled:
		p.state.Refreshes++
	case drawerSelected:
		if msg.showAll {
			p.setDrawer(Full)
		} else {
			p.setDrawer(Partial)
		}
	default:
		p.logger.Error("unexpected message", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

// setDrawer is the only place that changes the drawer and scrolling.
func (p *Projector) setDrawer(d DrawerOverlay) {
	p.state.Drawer = d
	p.state.Scrollable = d == Full
}

func (p *Projector) project(txs []types.Transaction) []types.WalletEvent {
	evs := make([]types.WalletEvent, 0, len(txs)+1)
	for _, tx := range txs {
		ev := Project(tx)
		eventsProjected.WithLabelValues(types.EventKind(ev.State)).Inc()
		evs = append(evs, ev)
	}
	if p.birthday != nil {
		evs = append(evs, types.WalletEvent{
			ID:    "import",
			State: types.WalletImportEvent{Height: *p.birthday},
		})
	}
	types.SortEvents(evs)
	return evs
}

// Project maps a transaction to a wallet event.
func Project(tx types.Transaction) types.WalletEvent {
	details := types.TransactionDetails{
		Amount:  tx.Amount,
		Fee:     tx.Fee,
		Address: tx.Address,
		Memo:    tx.Memo,
		Height:  tx.MinedHeight,
	}
	ev := types.WalletEvent{ID: string(tx.ID), Timestamp: tx.Timestamp}
	switch {
	case tx.Status == types.TxFailed:
		ev.State = types.FailedEvent{TransactionDetails: details}
	case tx.Direction == types.Shielding:
		ev.State = types.ShieldedEvent{Amount: tx.Amount}
	case tx.Status == types.TxUnconfirmed:
		ev.State = types.PendingEvent{TransactionDetails: details}
	case tx.Direction == types.Outgoing:
		ev.State = types.SentEvent{TransactionDetails: details}
	default:
		ev.State = types.ReceivedEvent{TransactionDetails: details}
	}
	return ev
}

func (p *Projector) publish() {
	snapshot := p.state.clone()
	p.snapshotMu.Lock()
	p.snapshot = snapshot
	p.snapshotMu.Unlock()
	p.emitter.Emit(snapshot.clone())
}

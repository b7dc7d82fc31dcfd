// Package engine implements a simulated synchronization engine.
//
// The engine follows a deterministic chain derived from the clock. Every step
// it downloads and then scans a batch of blocks, generating wallet
// transactions from the viewing key, and persists progress and history in the
// sqlite databases the bootstrap sequence resolved.
package engine

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/smwallet/bootstrap"
	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/hash"
	"github.com/spacemeshos/smwallet/sql"
	"github.com/spacemeshos/smwallet/sql/chain"
	"github.com/spacemeshos/smwallet/sql/transactions"
)

var (
	ErrNotPrepared = errors.New("engine: not prepared")
	ErrRunning     = errors.New("engine: already running")
	ErrNotRunning  = errors.New("engine: not running")
)

type Opt func(*Engine)

func WithLogger(logger *zap.Logger) Opt {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithClock(clock clockwork.Clock) Opt {
	return func(e *Engine) {
		e.clock = clock
	}
}

func WithConfig(cfg Config) Opt {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// Engine is a simulated synchronization engine.
type Engine struct {
	logger *zap.Logger
	clock  clockwork.Clock
	cfg    Config

	mu       sync.Mutex
	prepared *bootstrap.EngineConfig
	cancel   context.CancelFunc
	eg       *errgroup.Group
	cache    *sql.Database
	data     *sql.Database
	progress progress
	status   types.SyncStatusSnapshot
	subs     map[uint64]chan types.SyncStatusSnapshot
	nextSub  uint64
}

type progress struct {
	chain.Progress
	// start of the current download
	start types.Height
}

func New(opts ...Opt) *Engine {
	e := &Engine{
		logger: zap.NewNop(),
		clock:  clockwork.NewRealClock(),
		cfg:    DefaultConfig(),
		subs:   map[uint64]chan types.SyncStatusSnapshot{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LatestHeight returns the tip of the simulated chain. It is available
// whether the engine runs or not.
func (e *Engine) LatestHeight(context.Context) (types.Height, error) {
	return e.tip(), nil
}

func (e *Engine) tip() types.Height {
	elapsed := e.clock.Since(e.cfg.GenesisTime)
	if elapsed <= 0 || e.cfg.BlockTime <= 0 {
		return e.cfg.GenesisHeight
	}
	return e.cfg.GenesisHeight + types.Height(elapsed/e.cfg.BlockTime)
}

func (e *Engine) timestamp(height types.Height) time.Time {
	if height <= e.cfg.GenesisHeight {
		return e.cfg.GenesisTime
	}
	return e.cfg.GenesisTime.Add(time.Duration(height-e.cfg.GenesisHeight) * e.cfg.BlockTime)
}

// Prepare stores the configuration for the next Start.
func (e *Engine) Prepare(cfg *bootstrap.EngineConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		return ErrRunning
	}
	if len(cfg.ViewingKeys()) == 0 {
		return errors.New("engine: no viewing keys")
	}
	e.prepared = cfg
	e.logger.Info("engine prepared", zap.Object("config", cfg))
	return nil
}

// Start opens the databases and starts synchronizing.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.prepared == nil {
		return ErrNotPrepared
	}
	if e.cancel != nil {
		return ErrRunning
	}
	cache, err := sql.Open("file:"+e.prepared.CacheDBPath(),
		sql.WithLogger(e.logger),
		sql.WithSchema(sql.CacheSchema),
		sql.WithQueryMetering(e.cfg.MeterQueries),
	)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	data, err := sql.Open("file:"+e.prepared.DataDBPath(),
		sql.WithLogger(e.logger),
		sql.WithSchema(sql.DataSchema),
		sql.WithQueryMetering(e.cfg.MeterQueries),
	)
	if err != nil {
		return errors.Join(fmt.Errorf("open data: %w", err), cache.Close())
	}
	p, err := chain.Get(cache)
	switch {
	case errors.Is(err, sql.ErrNotFound):
		birthday := e.prepared.Birthday()
		p = chain.Progress{Height: birthday, Scanned: birthday}
	case err != nil:
		return errors.Join(err, cache.Close(), data.Close())
	}
	e.cache, e.data = cache, data
	e.progress = progress{Progress: p, start: p.Scanned}
	e.status = e.nextStatus(e.tip())

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.eg = &errgroup.Group{}
	e.eg.Go(func() error {
		return e.run(ctx)
	})
	e.logger.Info("engine started",
		zap.Uint64("height", p.Height.Uint64()),
		zap.Uint64("scanned", p.Scanned.Uint64()),
	)
	return nil
}

// Stop terminates synchronization, closes every status stream and the
// databases. It is a no-op if the engine doesn't run.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel, eg := e.cancel, e.eg
	e.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		e.logger.Warn("engine terminated with error", zap.Error(err))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for id, ch := range e.subs {
		close(ch)
		delete(e.subs, id)
	}
	if err := errors.Join(e.cache.Close(), e.data.Close()); err != nil {
		e.logger.Warn("failed to close databases", zap.Error(err))
	}
	e.cache, e.data = nil, nil
	e.cancel, e.eg = nil, nil
	e.status = types.SyncStatusSnapshot{}
	e.logger.Info("engine stopped")
}

// StatusStream subscribes to status updates. The current status is delivered
// first. The stream is closed when ctx is done or the engine stops.
func (e *Engine) StatusStream(ctx context.Context) (<-chan types.SyncStatusSnapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel == nil {
		return nil, ErrNotRunning
	}
	id := e.nextSub
	e.nextSub++
	ch := make(chan types.SyncStatusSnapshot, max(e.cfg.StreamBuffer, 1))
	ch <- e.status
	e.subs[id] = ch
	context.AfterFunc(ctx, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if ch, ok := e.subs[id]; ok {
			close(ch)
			delete(e.subs, id)
		}
	})
	return ch, nil
}

// Transactions returns the wallet history, newest first.
func (e *Engine) Transactions(ctx context.Context) ([]types.Transaction, error) {
	db, err := e.database(ctx)
	if err != nil {
		return nil, err
	}
	return transactions.All(db)
}

// Balance returns the wallet balance. Incoming funds are verified once they
// have the configured number of confirmations.
func (e *Engine) Balance(ctx context.Context) (types.WalletBalance, error) {
	db, err := e.database(ctx)
	if err != nil {
		return types.WalletBalance{}, err
	}
	return transactions.Balance(db, e.verifiedAt())
}

func (e *Engine) database(ctx context.Context) (*sql.Database, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.data == nil {
		return nil, ErrNotRunning
	}
	return e.data, nil
}

func (e *Engine) verifiedAt() types.Height {
	e.mu.Lock()
	scanned, confirmations := e.progress.Scanned, types.Height(e.prepared.Confirmations())
	e.mu.Unlock()
	if scanned < confirmations {
		return 0
	}
	return scanned - confirmations
}

func (e *Engine) run(ctx context.Context) error {
	ticker := e.clock.NewTicker(e.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			if err := e.step(ctx); err != nil {
				e.logger.Warn("synchronization step failed", zap.Error(err))
				e.broadcast(types.SyncStatusSnapshot{Status: types.StatusError, Err: err})
			}
		}
	}
}

// step advances either the download or the scan by one batch.
func (e *Engine) step(ctx context.Context) error {
	tip := e.tip()
	e.mu.Lock()
	p := e.progress
	cache, data, cfg := e.cache, e.data, e.prepared
	e.mu.Unlock()

	var generatedTxs []types.Transaction
	switch {
	case p.Height < tip:
		if p.Scanned == p.Height {
			p.start = p.Height
		}
		p.Height = min(p.Height+types.Height(e.cfg.BatchSize), tip)
	case p.Scanned < p.Height:
		from := p.Scanned
		p.Scanned = min(p.Scanned+types.Height(e.cfg.BatchSize), p.Height)
		generatedTxs = e.generate(cfg, from, p.Scanned, tip)
	}
	if err := cache.WithTx(ctx, func(tx *sql.Tx) error {
		return chain.Set(tx, p.Progress)
	}); err != nil {
		return err
	}
	if err := data.WithTx(ctx, func(tx *sql.Tx) error {
		for _, gtx := range generatedTxs {
			if err := transactions.Add(tx, gtx); err != nil {
				return err
			}
		}
		return e.confirm(tx, tip, types.Height(cfg.Confirmations()))
	}); err != nil {
		return err
	}

	tipHeight.Set(float64(tip))
	downloadedHeight.Set(float64(p.Height))
	scannedHeight.Set(float64(p.Scanned))

	e.mu.Lock()
	e.progress = p
	status := e.nextStatus(tip)
	e.mu.Unlock()
	e.broadcast(status)
	return nil
}

// nextStatus must be called with mu held.
func (e *Engine) nextStatus(tip types.Height) types.SyncStatusSnapshot {
	p := e.progress
	switch {
	case p.Height < tip:
		return types.Downloading(p.start, tip, p.Height)
	case p.Scanned < p.Height:
		return types.Scanning(p.start, p.Height, p.Scanned)
	default:
		return types.Synced()
	}
}

// confirm marks pending transactions with enough confirmations as confirmed.
func (e *Engine) confirm(db sql.Executor, tip, confirmations types.Height) error {
	pending, err := transactions.Pending(db)
	if err != nil {
		return err
	}
	for _, tx := range pending {
		if tx.MinedHeight+confirmations <= tip {
			if err := transactions.SetStatus(db, tx.ID, types.TxConfirmed, tx.MinedHeight); err != nil {
				return err
			}
		}
	}
	return nil
}

// generate returns the wallet transactions mined in (from, to].
func (e *Engine) generate(cfg *bootstrap.EngineConfig, from, to, tip types.Height) []types.Transaction {
	if e.cfg.TxEvery == 0 {
		return nil
	}
	every := types.Height(e.cfg.TxEvery)
	key := cfg.ViewingKeys()[0].Key
	var txs []types.Transaction
	for h := (from/every + 1) * every; h <= to; h += every {
		txs = append(txs, e.derive(key, h, tip, types.Height(cfg.Confirmations())))
	}
	return txs
}

func (e *Engine) derive(key []byte, height, tip, confirmations types.Height) types.Transaction {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], height.Uint64())
	digest := hash.Sum(key, buf[:])
	tx := types.Transaction{
		ID:          types.TransactionID(hex.EncodeToString(digest[:16])),
		Timestamp:   e.timestamp(height),
		Amount:      types.Amount(binary.BigEndian.Uint32(digest[16:20])%1_000_000 + 1),
		Fee:         1_000,
		Status:      types.TxConfirmed,
		MinedHeight: height,
		Address:     hex.EncodeToString(digest[20:]),
	}
	switch digest[0] % 8 {
	case 0, 1:
		tx.Direction = types.Outgoing
		tx.Amount /= 4
	case 2:
		tx.Direction = types.Shielding
		tx.Address = ""
	default:
		tx.Direction = types.Incoming
	}
	if height+confirmations > tip {
		tx.Status = types.TxUnconfirmed
	}
	generated.WithLabelValues(directionName(tx.Direction)).Inc()
	return tx
}

func directionName(d types.Direction) string {
	switch d {
	case types.Incoming:
		return "incoming"
	case types.Outgoing:
		return "outgoing"
	default:
		return "shielding"
	}
}

func (e *Engine) broadcast(status types.SyncStatusSnapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel == nil {
		return
	}
	e.status = status
	for _, ch := range e.subs {
		select {
		case ch <- status:
		default:
			droppedStatuses.Inc()
		}
	}
}

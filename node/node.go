// Package node wires the wallet components into a running application.
package node

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	walletapp "github.com/spacemeshos/smwallet/app"
	"github.com/spacemeshos/smwallet/backup"
	"github.com/spacemeshos/smwallet/bootstrap"
	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/config"
	"github.com/spacemeshos/smwallet/engine"
	"github.com/spacemeshos/smwallet/events"
	"github.com/spacemeshos/smwallet/filesystem"
	"github.com/spacemeshos/smwallet/log"
	"github.com/spacemeshos/smwallet/metrics"
	"github.com/spacemeshos/smwallet/mnemonic"
	"github.com/spacemeshos/smwallet/signing"
	"github.com/spacemeshos/smwallet/syncer"
	"github.com/spacemeshos/smwallet/walletstore"
)

// Logger names.
const (
	AppLogger       = "smwallet"
	MachineLogger   = "machine"
	ProjectorLogger = "projector"
	BootstrapLogger = "bootstrap"
	EngineLogger    = "engine"
	StoreLogger     = "store"
	FilesLogger     = "files"
	EventsLogger    = "events"
	MetricsLogger   = "metrics"
)

const storeLockFile = "wallet.lock"

// ErrNotStarted is returned by operations that need a launched App.
var ErrNotStarted = errors.New("node: app not started")

// Option to modify an App instance.
type Option func(app *App)

// WithLog replaces the root logger. Module loggers are derived from it and
// don't honour the per module levels.
func WithLog(logger *zap.Logger) Option {
	return func(app *App) {
		app.log = logger
		app.customLog = true
	}
}

// WithConfig overwrites default App config.
func WithConfig(conf *config.Config) Option {
	return func(app *App) {
		app.Config = conf
	}
}

// WithClock drives every delay and the simulated chain.
func WithClock(clock clockwork.Clock) Option {
	return func(app *App) {
		app.clock = clock
	}
}

// New creates an instance of the wallet app.
func New(opts ...Option) *App {
	defaultConfig := config.DefaultConfig()
	app := &App{
		Config: &defaultConfig,
		log:    zap.NewNop(),
		clock:  clockwork.NewRealClock(),
		eg:     &errgroup.Group{},
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// App is the wallet application.
type App struct {
	Config *config.Config

	log       *zap.Logger
	customLog bool
	levels    *log.Levels
	clock     clockwork.Clock
	fileLock  *flock.Flock

	network   types.Network
	bus       *events.Bus
	states    *events.Emitter[walletapp.State]
	snapshots *events.Emitter[syncer.Snapshot]
	store     *walletstore.Store
	files     *filesystem.DatabaseFiles
	engine    *engine.Engine
	sequencer *bootstrap.Sequencer
	machine   *walletapp.Machine
	metrics   *metrics.Server

	mu        sync.Mutex
	projector *syncer.Projector
	cancel    context.CancelFunc
	stopped   bool
	eg        *errgroup.Group
}

// Lock locks the app for exclusive use. It returns an error if the app is already locked.
func (app *App) Lock() error {
	lockDir := filepath.Dir(app.Config.FileLock)
	if _, err := os.Stat(lockDir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(lockDir, filesystem.OwnerReadWriteExec); err != nil {
			return fmt.Errorf("creating dir %s for lock %s: %w", lockDir, app.Config.FileLock, err)
		}
	}
	fl := flock.New(app.Config.FileLock)
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("flock %s: %w", app.Config.FileLock, err)
	}
	if !locked {
		return fmt.Errorf("only one wallet instance can run at a time, lock %s is held", app.Config.FileLock)
	}
	app.fileLock = fl
	return nil
}

// Unlock unlocks the app. It is safe to call Unlock multiple times.
func (app *App) Unlock() {
	if app.fileLock == nil {
		return
	}
	if err := app.fileLock.Unlock(); err != nil {
		app.log.Error("failed to unlock file", zap.String("path", app.fileLock.Path()), zap.Error(err))
	}
	app.fileLock = nil
}

// Initialize sets up logging and builds every component. Nothing runs yet.
func (app *App) Initialize() error {
	if err := app.setupLogging(); err != nil {
		return err
	}
	network, err := app.Config.Network()
	if err != nil {
		return err
	}
	app.network = network
	dataDir := app.Config.DataDir()
	if err := os.MkdirAll(dataDir, filesystem.OwnerReadWriteExec); err != nil {
		return fmt.Errorf("ensure data dir exists: %w", err)
	}
	lg := app.Config.LOGGING

	app.bus = events.NewBus(events.WithLogger(app.addLogger(EventsLogger, lg.EventsLoggerLevel)))
	if app.states, err = events.NewEmitter[walletapp.State](app.bus); err != nil {
		return err
	}
	if app.snapshots, err = events.NewEmitter[syncer.Snapshot](app.bus); err != nil {
		return err
	}

	app.store = walletstore.New(dataDir, app.Config.Keystore,
		walletstore.WithLogger(app.addLogger(StoreLogger, lg.StoreLoggerLevel)),
		walletstore.WithLockFile(filepath.Join(dataDir, storeLockFile)),
	)
	app.files = filesystem.NewDatabaseFiles(dataDir,
		filesystem.WithLogger(app.addLogger(FilesLogger, lg.FilesLoggerLevel)),
	)
	seeds := mnemonic.New()
	app.engine = engine.New(
		engine.WithLogger(app.addLogger(EngineLogger, lg.EngineLoggerLevel)),
		engine.WithClock(app.clock),
		engine.WithConfig(app.Config.Engine),
	)
	app.sequencer = bootstrap.NewSequencer(
		bootstrap.Environment{
			Seeds:   seeds,
			Keys:    signing.NewDeriver(network),
			Paths:   app.files,
			Network: network,
			Config:  app.Config.Sync.Config,
		},
		app.engine,
		bootstrap.WithLogger(app.addLogger(BootstrapLogger, lg.BootstrapLoggerLevel)),
	)
	machineLogger := app.addLogger(MachineLogger, lg.MachineLoggerLevel)
	gate := backup.New(seeds, app.store, backup.WithLogger(machineLogger.Named("backup")))
	app.machine = walletapp.New(network, app.store, app.files, seeds, app.sequencer, app.engine, gate,
		walletapp.WithLogger(machineLogger),
		walletapp.WithClock(app.clock),
		walletapp.WithConfig(app.Config.Timing),
		walletapp.WithEmitter(app.states),
	)
	app.log.Info("wallet initialized",
		zap.String("network", network.Name),
		zap.String("data_dir", dataDir),
	)
	return nil
}

func (app *App) setupLogging() error {
	if app.customLog {
		return nil
	}
	level, err := zapcore.ParseLevel(app.Config.LOGGING.AppLoggerLevel)
	if err != nil {
		return fmt.Errorf("parse app log level: %w", err)
	}
	levels, err := log.NewLevels(AppLogger, app.Config.LOGGING.Encoder, level)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	app.levels = levels
	app.log = levels.Root()
	return nil
}

func (app *App) addLogger(name, level string) *zap.Logger {
	if app.levels == nil {
		return app.log.Named(name)
	}
	return app.levels.Module(name, level)
}

// SetLogLevel changes the level of a module logger at runtime.
func (app *App) SetLogLevel(name, level string) error {
	if app.levels == nil {
		return errors.New("log levels are not managed by the app")
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse level %q: %w", level, err)
	}
	return app.levels.SetLevel(name, lvl)
}

// Launch starts the machine, the projector watcher and metrics. It returns
// immediately; Cleanup stops everything.
func (app *App) Launch(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	app.mu.Lock()
	app.cancel = cancel
	app.mu.Unlock()

	if app.Config.CollectMetrics {
		srv, err := metrics.StartMetricsServer(
			app.addLogger(MetricsLogger, app.Config.LOGGING.MetricsLoggerLevel),
			app.Config.MetricsPort,
		)
		if err != nil {
			return fmt.Errorf("start metrics server: %w", err)
		}
		app.metrics = srv
	}
	if app.Config.MetricsPush != "" {
		metrics.StartPushingMetrics(ctx,
			app.addLogger(MetricsLogger, app.Config.LOGGING.MetricsLoggerLevel),
			app.Config.MetricsPush, app.Config.MetricsPushPeriod, app.network.Name,
		)
	}

	sub, err := events.Subscribe[walletapp.State](app.bus)
	if err != nil {
		return err
	}
	app.eg.Go(func() error {
		app.watch(ctx, sub)
		return nil
	})
	if err := app.machine.Start(ctx); err != nil {
		return fmt.Errorf("start machine: %w", err)
	}
	return app.machine.Send(ctx, walletapp.DidFinishLaunching{})
}

// Start launches the app and blocks until ctx is done.
func (app *App) Start(ctx context.Context) error {
	if err := app.Launch(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

// watch runs the projector while the wallet is on the home route.
func (app *App) watch(ctx context.Context, sub *events.Subscription[walletapp.State]) {
	defer func() {
		if err := sub.Close(); err != nil {
			app.log.Warn("failed to close state subscription", zap.Error(err))
		}
		app.stopProjector()
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-sub.Out():
			if !ok {
				return
			}
			home := state.Route.Current() == types.RouteHome &&
				state.Initialization == types.Initialized &&
				state.Wallet != nil
			if home {
				app.startProjector(ctx, state.Wallet.Birthday)
			} else {
				app.stopProjector()
			}
		}
	}
}

func (app *App) startProjector(ctx context.Context, birthday types.Height) {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.projector != nil {
		return
	}
	projector := syncer.NewProjector(app.engine, app.engine,
		syncer.WithLogger(app.addLogger(ProjectorLogger, app.Config.LOGGING.ProjectorLoggerLevel)),
		syncer.WithConfig(app.Config.Projector),
		syncer.WithBirthday(birthday),
		syncer.WithEmitter(app.snapshots),
	)
	if err := projector.Start(ctx); err != nil {
		app.log.Warn("projector not started", zap.Error(err))
		return
	}
	app.projector = projector
}

func (app *App) stopProjector() {
	app.mu.Lock()
	projector := app.projector
	app.projector = nil
	app.mu.Unlock()
	if projector != nil {
		projector.Stop()
	}
}

// Send forwards an action to the machine.
func (app *App) Send(ctx context.Context, a walletapp.Action) error {
	if app.machine == nil {
		return ErrNotStarted
	}
	return app.machine.Send(ctx, a)
}

// State returns the current machine state.
func (app *App) State() walletapp.State {
	return app.machine.State()
}

// Projector returns the running projector or nil.
func (app *App) Projector() *syncer.Projector {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.projector
}

// WaitState blocks until the machine publishes a state matching cond.
func (app *App) WaitState(ctx context.Context, cond func(walletapp.State) bool) (walletapp.State, error) {
	return wait(ctx, app.bus, cond)
}

// WaitSnapshot blocks until the projector publishes a snapshot matching cond.
func (app *App) WaitSnapshot(ctx context.Context, cond func(syncer.Snapshot) bool) (syncer.Snapshot, error) {
	return wait(ctx, app.bus, cond)
}

func wait[T any](ctx context.Context, bus *events.Bus, cond func(T) bool) (T, error) {
	var empty T
	sub, err := events.Subscribe[T](bus)
	if err != nil {
		return empty, err
	}
	defer sub.Close()
	for {
		select {
		case <-ctx.Done():
			return empty, ctx.Err()
		case v, ok := <-sub.Out():
			if !ok {
				return empty, ErrNotStarted
			}
			if cond(v) {
				return v, nil
			}
		}
	}
}

// Cleanup stops every component. It waits at most until ctx is done for the
// metrics server. Calls after the first are no-ops.
func (app *App) Cleanup(ctx context.Context) {
	app.mu.Lock()
	if app.stopped {
		app.mu.Unlock()
		return
	}
	app.stopped = true
	cancel := app.cancel
	app.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if err := app.eg.Wait(); err != nil {
		app.log.Warn("background task failed", zap.Error(err))
	}
	if app.machine != nil {
		app.machine.Close()
	}
	if app.sequencer != nil {
		app.sequencer.Reset()
	}
	if app.metrics != nil {
		if err := app.metrics.Stop(ctx); err != nil {
			app.log.Warn("failed to stop metrics server", zap.Error(err))
		}
	}
	if err := errors.Join(app.states.Close(), app.snapshots.Close()); err != nil {
		app.log.Warn("failed to close emitters", zap.Error(err))
	}
	app.log.Info("wallet stopped")
}

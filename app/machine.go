// Package app implements the wallet application state machine.
//
// The machine is a single actor: actions are processed one at a time on one
// goroutine and every handler runs to completion before the next action is
// dequeued. Work that takes real time runs as a task and reports back with a
// completion action. Multi-step flows are expressed as sequences whose next
// step is enqueued only after the previous one settled.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/events"
	"github.com/spacemeshos/smwallet/log"
	"github.com/spacemeshos/smwallet/scheduler"
	"github.com/spacemeshos/smwallet/taskgroup"
)

var (
	ErrAlreadyStarted = errors.New("app: machine already started")
	ErrClosed         = errors.New("app: machine closed")
)

type Opt func(*Machine)

func WithLogger(logger *zap.Logger) Opt {
	return func(m *Machine) {
		m.logger = logger
	}
}

func WithClock(clock clockwork.Clock) Opt {
	return func(m *Machine) {
		m.clock = clock
	}
}

func WithConfig(cfg Config) Opt {
	return func(m *Machine) {
		m.cfg = cfg
	}
}

// WithEmitter publishes every new state on the bus.
func WithEmitter(emitter *events.Emitter[State]) Opt {
	return func(m *Machine) {
		m.emitter = emitter
	}
}

// Machine is the application state machine.
type Machine struct {
	logger  *zap.Logger
	clock   clockwork.Clock
	cfg     Config
	emitter *events.Emitter[State]

	network types.Network
	store   credentialStore
	files   databaseFiles
	seeds   seedService
	engine  engineStarter
	chain   chainHeight
	gate    backupGate

	mailbox *mailbox
	sched   *scheduler.Scheduler

	lifecycle sync.Mutex
	started   bool
	closed    bool
	cancel    context.CancelFunc
	tasks     *taskgroup.Group

	// owned by the machine goroutine
	queue    []envelope
	epoch    uint64
	launched bool
	state    State

	snapshotMu sync.RWMutex
	snapshot   State
}

func New(
	network types.Network,
	store credentialStore,
	files databaseFiles,
	seeds seedService,
	engine engineStarter,
	chain chainHeight,
	gate backupGate,
	opts ...Opt,
) *Machine {
	m := &Machine{
		logger:  zap.NewNop(),
		clock:   clockwork.NewRealClock(),
		cfg:     DefaultConfig(),
		network: network,
		store:   store,
		files:   files,
		seeds:   seeds,
		engine:  engine,
		chain:   chain,
		gate:    gate,
		mailbox: newMailbox(),
		epoch:   1,
		state:   initialState(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.snapshot = m.state.clone()
	m.sched = scheduler.New(
		func(f scheduler.Fired) { m.mailbox.push(envelope{action: delayed{fired: f}}) },
		scheduler.WithLogger(m.logger.Named("scheduler")),
		scheduler.WithClock(m.clock),
	)
	return m
}

// Start launches the machine goroutine. Actions sent before Start are kept
// and processed once the machine runs.
func (m *Machine) Start(ctx context.Context) error {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.started {
		return ErrAlreadyStarted
	}
	m.started = true
	ctx, m.cancel = context.WithCancel(ctx)
	m.tasks = taskgroup.New(taskgroup.WithContext(ctx))
	m.publish()
	if err := m.tasks.Go(m.run); err != nil {
		return fmt.Errorf("start machine: %w", err)
	}
	return nil
}

// Close stops the machine and waits for running tasks. Completions of tasks
// that finish after Close are discarded.
func (m *Machine) Close() {
	m.lifecycle.Lock()
	if m.closed {
		m.lifecycle.Unlock()
		return
	}
	m.closed = true
	started := m.started
	m.lifecycle.Unlock()

	m.sched.Close()
	if !started {
		return
	}
	m.cancel()
	if err := m.tasks.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		m.logger.Warn("machine terminated with error", zap.Error(err))
	}
}

// Send queues an action. It never blocks on the machine.
func (m *Machine) Send(ctx context.Context, a Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.lifecycle.Lock()
	closed := m.closed
	m.lifecycle.Unlock()
	if closed {
		return ErrClosed
	}
	m.mailbox.push(envelope{action: a})
	return nil
}

// State returns the last published snapshot.
func (m *Machine) State() State {
	m.snapshotMu.RLock()
	defer m.snapshotMu.RUnlock()
	return m.snapshot.clone()
}

func (m *Machine) run(ctx context.Context) error {
	for {
		for len(m.queue) > 0 {
			env := m.queue[0]
			m.queue[0] = envelope{}
			m.queue = m.queue[1:]
			m.dispatch(env)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.mailbox.ready():
			m.queue = append(m.queue, m.mailbox.drain()...)
		}
	}
}

func (m *Machine) dispatch(env envelope) {
	if env.epoch != 0 && env.epoch != m.epoch {
		m.logger.Debug("dropped stale action",
			zap.String("action", actionName(env.action)),
			zap.Uint64("epoch", env.epoch),
			zap.Uint64("current", m.epoch),
		)
		return
	}
	if d, ok := env.action.(delayed); ok {
		if !m.sched.Accept(d.fired) {
			return
		}
		a, ok := d.fired.Payload.(Action)
		if !ok {
			m.logger.Error("delayed payload is not an action", log.ZType("payload", d.fired.Payload))
			return
		}
		env.action = a
	}
	m.logger.Debug("handling action", zap.String("action", actionName(env.action)))
	for _, eff := range m.handle(env.action) {
		m.apply(eff, env.flow)
	}
	m.release(env.flow)
	m.publish()
}

func (m *Machine) apply(eff effect, f *flow) {
	switch eff := eff.(type) {
	case sendEffect:
		m.enqueue(eff.action, f)
	case taskEffect:
		m.spawn(eff, f)
	case sequenceEffect:
		child := &flow{id: uuid.NewString(), parent: f, steps: eff.steps, epoch: m.epoch}
		if f != nil {
			f.outstanding++
			child.id = f.id
		}
		m.advance(child)
	case scheduleEffect:
		m.sched.Schedule(eff.slot, eff.delay, eff.action)
	case cancelEffect:
		m.sched.Cancel(eff.slot)
	default:
		panic(fmt.Sprintf("unknown effect %T", eff))
	}
}

func (m *Machine) enqueue(a Action, f *flow) {
	if f != nil {
		f.outstanding++
	}
	m.queue = append(m.queue, envelope{action: a, flow: f, epoch: m.epoch})
}

func (m *Machine) spawn(eff taskEffect, f *flow) {
	id := uuid.NewString()
	if f != nil {
		f.outstanding++
		id = f.id
	}
	epoch := m.epoch
	err := m.tasks.Go(func(ctx context.Context) error {
		ctx = log.WithFlowID(ctx, id)
		logger := m.logger.With(zap.String("task", eff.name), log.ZContext(ctx))
		logger.Debug("task started")
		a := eff.run(ctx)
		logger.Debug("task finished", zap.String("completion", actionName(a)))
		m.mailbox.push(envelope{action: a, flow: f, epoch: epoch})
		return nil
	})
	if err != nil {
		m.logger.Warn("task not started", zap.String("task", eff.name), zap.Error(err))
		m.release(f)
	}
}

// release marks one unit of work of f as finished and moves the sequence on
// once nothing is outstanding.
func (m *Machine) release(f *flow) {
	if f == nil {
		return
	}
	f.outstanding--
	if f.outstanding == 0 {
		m.advance(f)
	}
}

func (m *Machine) advance(f *flow) {
	if f.epoch != m.epoch {
		return
	}
	if len(f.steps) == 0 {
		m.release(f.parent)
		return
	}
	next := f.steps[0]
	f.steps = f.steps[1:]
	m.enqueue(next, f)
}

func (m *Machine) publish() {
	snapshot := m.state.clone()
	m.snapshotMu.Lock()
	m.snapshot = snapshot
	m.snapshotMu.Unlock()
	reportInitialization(snapshot.Initialization)
	m.emitter.Emit(snapshot.clone())
}

// Package events publishes typed application events on an in-process bus.
package events

import (
	"fmt"

	"github.com/libp2p/go-libp2p/core/event"
	"github.com/libp2p/go-libp2p/p2p/host/eventbus"
	"go.uber.org/zap"
)

const subscriptionChanBufSize = 64

// Bus wraps a libp2p event bus.
type Bus struct {
	logger *zap.Logger
	bus    event.Bus
}

type Opt func(*Bus)

func WithLogger(logger *zap.Logger) Opt {
	return func(b *Bus) {
		b.logger = logger
	}
}

func NewBus(opts ...Opt) *Bus {
	b := &Bus{
		logger: zap.NewNop(),
		bus:    eventbus.NewBus(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Emitter publishes values of a single type. The last emitted value is
// replayed to new subscribers.
type Emitter[T any] struct {
	logger  *zap.Logger
	emitter event.Emitter
}

func NewEmitter[T any](b *Bus) (*Emitter[T], error) {
	em, err := b.bus.Emitter(new(T), eventbus.Stateful)
	if err != nil {
		return nil, fmt.Errorf("create emitter for %T: %w", *new(T), err)
	}
	return &Emitter[T]{logger: b.logger, emitter: em}, nil
}

// Emit publishes v. Failures are logged, publication never fails the caller.
func (e *Emitter[T]) Emit(v T) {
	if e == nil {
		return
	}
	if err := e.emitter.Emit(v); err != nil {
		e.logger.Error("failed to emit event", zap.String("type", fmt.Sprintf("%T", v)), zap.Error(err))
	}
}

func (e *Emitter[T]) Close() error {
	if e == nil {
		return nil
	}
	return e.emitter.Close()
}

// Subscription delivers values of a single type. A slow reader loses the
// oldest undelivered values rather than blocking the publisher.
type Subscription[T any] struct {
	sub  event.Subscription
	out  chan T
	done chan struct{}
}

func Subscribe[T any](b *Bus) (*Subscription[T], error) {
	sub, err := b.bus.Subscribe(new(T), eventbus.BufSize(subscriptionChanBufSize))
	if err != nil {
		return nil, fmt.Errorf("subscribe to %T: %w", *new(T), err)
	}
	s := &Subscription[T]{
		sub:  sub,
		out:  make(chan T, subscriptionChanBufSize),
		done: make(chan struct{}),
	}
	go s.forward()
	return s, nil
}

func (s *Subscription[T]) forward() {
	defer close(s.done)
	defer close(s.out)
	for evt := range s.sub.Out() {
		v, ok := evt.(T)
		if !ok {
			continue
		}
		select {
		case s.out <- v:
		default:
			select {
			case <-s.out:
			default:
			}
			s.out <- v
		}
	}
}

// Out is closed after Close.
func (s *Subscription[T]) Out() <-chan T {
	return s.out
}

func (s *Subscription[T]) Close() error {
	err := s.sub.Close()
	<-s.done
	return err
}

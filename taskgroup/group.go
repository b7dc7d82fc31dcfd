// Package taskgroup runs goroutines that share a lifetime.
//
// Unlike errgroup the group is long lived: goroutines can be added until the
// group terminates, which happens on the first error or when the parent
// context is cancelled.
package taskgroup

import (
	"context"
	"errors"
	"sync"
)

// ErrTerminated is returned by Go after the group has terminated.
var ErrTerminated = errors.New("taskgroup: terminated")

type Opt func(*Group)

// WithContext sets the parent context of the group.
func WithContext(ctx context.Context) Opt {
	return func(g *Group) {
		g.parent = ctx
	}
}

// Group tracks running goroutines and cancels them together.
type Group struct {
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	wg sync.WaitGroup

	mu         sync.Mutex
	terminated bool
	err        error
}

func New(opts ...Opt) *Group {
	g := &Group{parent: context.Background()}
	for _, opt := range opts {
		opt(g)
	}
	g.ctx, g.cancel = context.WithCancel(g.parent)
	return g
}

// Go starts f in a new goroutine. The context passed to f is cancelled when
// the group terminates.
func (g *Group) Go(f func(ctx context.Context) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.terminated || g.ctx.Err() != nil {
		return ErrTerminated
	}
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := f(g.ctx); err != nil {
			g.fail(err)
		}
	}()
	return nil
}

func (g *Group) fail(err error) {
	g.mu.Lock()
	if g.err == nil {
		g.err = err
	}
	g.mu.Unlock()
	g.cancel()
}

// Wait blocks until the group terminates and every goroutine exits.
// It returns the first error, or the context error if the parent was cancelled.
// Safe to call from multiple goroutines.
func (g *Group) Wait() error {
	<-g.ctx.Done()
	g.mu.Lock()
	g.terminated = true
	g.mu.Unlock()
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return g.err
	}
	return g.ctx.Err()
}

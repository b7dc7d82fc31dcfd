package app

import "sync"

// envelope is an action together with the bookkeeping needed to decide
// whether it is still relevant when it is dequeued.
type envelope struct {
	action Action
	flow   *flow
	// epoch is zero for actions sent from outside the machine. Internal
	// actions carry the epoch in which they were produced.
	epoch uint64
}

// mailbox is an unbounded queue written by many goroutines and read by the machine.
type mailbox struct {
	mu      sync.Mutex
	pending []envelope
	signal  chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{signal: make(chan struct{}, 1)}
}

func (m *mailbox) push(env envelope) {
	m.mu.Lock()
	m.pending = append(m.pending, env)
	m.mu.Unlock()
	select {
	case m.signal <- struct{}{}:
	default:
	}
}

func (m *mailbox) ready() <-chan struct{} {
	return m.signal
}

func (m *mailbox) drain() []envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	rst := m.pending
	m.pending = nil
	return rst
}

package scheduler

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/smwallet/log/logtest"
)

const route Slot = "route"

type harness struct {
	clock clockwork.FakeClock
	fired chan Fired
	s     *Scheduler
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		clock: clockwork.NewFakeClock(),
		fired: make(chan Fired, 16),
	}
	h.s = New(func(f Fired) { h.fired <- f },
		WithClock(h.clock),
		WithLogger(logtest.New(t)),
	)
	t.Cleanup(h.s.Close)
	return h
}

func (h *harness) advance(t *testing.T, d time.Duration) {
	t.Helper()
	h.clock.BlockUntil(1)
	h.clock.Advance(d)
}

func (h *harness) next(t *testing.T) Fired {
	t.Helper()
	select {
	case f := <-h.fired:
		return f
	case <-time.After(time.Second):
		require.FailNow(t, "no delivery")
	}
	return Fired{}
}

func TestScheduleDelivers(t *testing.T) {
	h := newHarness(t)
	gen := h.s.Schedule(route, 3*time.Second, "home")
	require.True(t, h.s.Pending(route))

	h.advance(t, 3*time.Second)
	f := h.next(t)
	require.Equal(t, Fired{Slot: route, Generation: gen, Payload: "home"}, f)
	require.True(t, h.s.Accept(f))
	require.False(t, h.s.Pending(route))
	require.False(t, h.s.Accept(f), "accepted twice")
}

func TestRescheduleReplacesPending(t *testing.T) {
	h := newHarness(t)
	h.s.Schedule(route, 3*time.Second, "onboarding")
	h.s.Schedule(route, 3*time.Second, "home")

	h.advance(t, 3*time.Second)
	f := h.next(t)
	require.Equal(t, "home", f.Payload)
	require.True(t, h.s.Accept(f))
	require.Empty(t, h.fired)
}

func TestCancelWinsOverFiredDelivery(t *testing.T) {
	h := newHarness(t)
	h.s.Schedule(route, time.Second, "home")
	h.advance(t, time.Second)
	f := h.next(t)

	// the timer already fired but the owner processes the cancel first
	h.s.Cancel(route)
	require.False(t, h.s.Accept(f))
}

func TestCancelBeforeDeadline(t *testing.T) {
	h := newHarness(t)
	h.s.Schedule(route, time.Second, "home")
	h.s.Cancel(route)
	require.False(t, h.s.Pending(route))
	h.clock.Advance(time.Second)
	select {
	case f := <-h.fired:
		require.False(t, h.s.Accept(f))
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStaleDeliveryAfterReschedule(t *testing.T) {
	h := newHarness(t)
	h.s.Schedule(route, time.Second, "onboarding")
	h.advance(t, time.Second)
	stale := h.next(t)

	h.s.Schedule(route, time.Second, "home")
	require.False(t, h.s.Accept(stale))
	h.advance(t, time.Second)
	require.True(t, h.s.Accept(h.next(t)))
}

func TestSlotsAreIndependent(t *testing.T) {
	h := newHarness(t)
	h.s.Schedule(route, time.Second, "home")
	h.s.Schedule("other", time.Second, "x")
	h.s.Cancel("other")
	require.True(t, h.s.Pending(route))
	require.False(t, h.s.Pending("other"))
}

func TestClose(t *testing.T) {
	h := newHarness(t)
	h.s.Schedule(route, time.Second, "home")
	h.s.Close()
	require.False(t, h.s.Pending(route))
	require.Zero(t, h.s.Schedule(route, time.Second, "home"))
	require.False(t, h.s.Accept(Fired{Slot: route, Generation: 1}))
}

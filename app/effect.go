package app

import (
	"context"
	"time"

	"github.com/spacemeshos/smwallet/scheduler"
)

const (
	// launchSlot holds the one-off readiness check after launch. It is never cancelled.
	launchSlot scheduler.Slot = "launch"
	// routeSlot holds the single pending delayed route transition.
	routeSlot scheduler.Slot = "route"
)

// effect describes work a handler wants done after it returns.
type effect interface {
	effect()
}

type (
	// sendEffect enqueues an action behind the ones already queued.
	sendEffect struct {
		action Action
	}
	// taskEffect runs outside the machine goroutine. The returned action is
	// fed back into the machine.
	taskEffect struct {
		name string
		run  func(ctx context.Context) Action
	}
	// sequenceEffect enqueues steps one by one. A step is enqueued only after
	// everything the previous step produced, async work included, was processed.
	sequenceEffect struct {
		steps []Action
	}
	scheduleEffect struct {
		slot   scheduler.Slot
		delay  time.Duration
		action Action
	}
	cancelEffect struct {
		slot scheduler.Slot
	}
)

func (sendEffect) effect()     {}
func (taskEffect) effect()     {}
func (sequenceEffect) effect() {}
func (scheduleEffect) effect() {}
func (cancelEffect) effect()   {}

func send(a Action) effect {
	return sendEffect{action: a}
}

func task(name string, run func(ctx context.Context) Action) effect {
	return taskEffect{name: name, run: run}
}

func sequence(steps ...Action) effect {
	return sequenceEffect{steps: steps}
}

func after(slot scheduler.Slot, delay time.Duration, a Action) effect {
	return scheduleEffect{slot: slot, delay: delay, action: a}
}

func cancel(slot scheduler.Slot) effect {
	return cancelEffect{slot: slot}
}

// flow tracks the progress of a sequence. It is only touched on the machine goroutine.
type flow struct {
	id     string
	parent *flow
	steps  []Action
	// outstanding counts queued actions and running tasks produced by the
	// current step, and unfinished child sequences.
	outstanding int
	epoch       uint64
}

package app

import (
	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/metrics"
)

const namespace = "app"

var (
	routeTransitions = metrics.NewCounter(
		"route_transitions",
		namespace,
		"number of route transitions by target route",
		[]string{"route"},
	)
	initializationState = metrics.NewGauge(
		"initialization_state",
		namespace,
		"1 for the current initialization state, 0 for the others",
		[]string{"state"},
	)
	handlerFailures = metrics.NewCounter(
		"handler_failures",
		namespace,
		"number of actions that ended in an error",
		[]string{"action"},
	)
	bootstrapDuration = metrics.NewHistogramWithBuckets(
		"bootstrap_duration_seconds",
		namespace,
		"duration of wallet export and engine start",
		[]string{"outcome"},
		[]float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	)
)

var allInitializationStates = []types.InitializationState{
	types.Uninitialized,
	types.KeysMissing,
	types.FilesMissing,
	types.Initialized,
	types.Failed,
}

func reportInitialization(current types.InitializationState) {
	for _, s := range allInitializationStates {
		v := 0.0
		if s == current {
			v = 1
		}
		initializationState.WithLabelValues(s.String()).Set(v)
	}
}

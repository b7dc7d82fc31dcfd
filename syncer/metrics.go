package syncer

import (
	"github.com/spacemeshos/smwallet/metrics"
)

const (
	namespace = "syncer"
)

var (
	syncProgress = metrics.NewGauge(
		"progress",
		namespace,
		"fraction of the current synchronization phase that is done",
		[]string{"phase"},
	)

	refreshes = metrics.NewCounter(
		"refreshes",
		namespace,
		"number of history and balance refreshes",
		[]string{"kind", "outcome"},
	)
	historyOk    = refreshes.WithLabelValues("history", "ok")
	historyFail  = refreshes.WithLabelValues("history", "not")
	balanceOk    = refreshes.WithLabelValues("balance", "ok")
	balanceFail  = refreshes.WithLabelValues("balance", "not")
	clampedTotal = metrics.NewCounter(
		"balance_clamped",
		namespace,
		"number of balances reported with verified above total",
		[]string{},
	).WithLabelValues()

	eventsProjected = metrics.NewCounter(
		"events_projected",
		namespace,
		"number of wallet events projected from transactions",
		[]string{"kind"},
	)
)

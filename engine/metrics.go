package engine

import "github.com/spacemeshos/smwallet/metrics"

const subsystem = "engine"

var (
	heights = metrics.NewGauge(
		"height",
		subsystem,
		"heights of the simulated chain",
		[]string{"kind"},
	)
	tipHeight        = heights.WithLabelValues("tip")
	downloadedHeight = heights.WithLabelValues("downloaded")
	scannedHeight    = heights.WithLabelValues("scanned")

	generated = metrics.NewCounter(
		"transactions_generated",
		subsystem,
		"number of generated wallet transactions",
		[]string{"direction"},
	)
	droppedStatuses = metrics.NewCounter(
		"statuses_dropped",
		subsystem,
		"statuses dropped for slow subscribers",
		[]string{},
	).WithLabelValues()
)

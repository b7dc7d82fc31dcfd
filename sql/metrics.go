package sql

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/smwallet/metrics"
)

const subsystem = "database"

var queryDuration = metrics.NewHistogramWithBuckets(
	"query_duration_seconds",
	subsystem,
	"Duration of queries by schema",
	[]string{"schema"},
	prometheus.ExponentialBuckets(0.0001, 2, 16),
)

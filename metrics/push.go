package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"
)

// StartPushingMetrics pushes the default registry to a pushgateway every period
// until ctx is cancelled.
func StartPushingMetrics(ctx context.Context, logger *zap.Logger, url string, period time.Duration, network string) {
	pusher := push.New(url, "smwallet").
		Gatherer(prometheus.DefaultGatherer).
		Grouping("network", network)
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := pusher.PushContext(ctx); err != nil {
					logger.Warn("failed to push metrics", zap.Error(err))
				}
			}
		}
	}()
}

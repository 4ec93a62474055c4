package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync",
		Name:      "runs_total",
		Help:      "Count of sync runs per mode.",
	}, []string{"coin", "network", "mode", "status"})

	syncRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync",
		Name:      "run_duration_seconds",
		Help:      "Duration of sync runs per mode.",
		Buckets:   []float64{.1, .5, 1, 5, 15, 30, 60, 300, 900, 3600},
	}, []string{"coin", "network", "mode", "status"})

	syncMempoolSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync",
		Name:      "mempool_transactions",
		Help:      "Transactions in the node mempool at the last follow iteration.",
	}, []string{"coin", "network"})
)

// Syncer tracks metrics for the sync driver.
type Syncer struct {
	coin    model.Coin
	network model.Network
}

// NewSyncer constructs a Syncer metrics collector.
func NewSyncer(coin model.Coin, network model.Network) *Syncer {
	coin, network = labels(coin, network)
	return &Syncer{coin: coin, network: network}
}

// ObserveRun records one sync run.
func (m Syncer) ObserveRun(mode string, err error, started time.Time) {
	status := statusOf(err)
	syncRunsTotal.WithLabelValues(string(m.coin), string(m.network), mode, status).Inc()
	syncRunDuration.WithLabelValues(string(m.coin), string(m.network), mode, status).
		Observe(time.Since(started).Seconds())
}

// SetMempoolSize exports the node mempool size.
func (m Syncer) SetMempoolSize(n int) {
	syncMempoolSize.WithLabelValues(string(m.coin), string(m.network)).Set(float64(n))
}

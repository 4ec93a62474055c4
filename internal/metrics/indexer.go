package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_indexer",
		Name:      "heights_total",
		Help:      "Count of heights ingested.",
	}, []string{"coin", "network", "status"})

	indexerHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_indexer",
		Name:      "height_duration_seconds",
		Help:      "Duration of ingesting one height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	indexerHeightTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_indexer",
		Name:      "height_transactions",
		Help:      "Number of transactions applied per height.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"coin", "network"})

	indexerRewindsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_indexer",
		Name:      "rewinds_total",
		Help:      "Count of rewinds after orphaned blocks.",
	}, []string{"coin", "network", "status"})

	indexerRewoundHeights = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_indexer",
		Name:      "rewound_heights_total",
		Help:      "Count of heights reversed by rewinds.",
	}, []string{"coin", "network"})

	indexerLastHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_indexer",
		Name:      "last_height",
		Help:      "Last fully indexed height.",
	}, []string{"coin", "network"})
)

// Indexer tracks metrics for the chain indexer.
type Indexer struct {
	coin    model.Coin
	network model.Network
}

// NewIndexer constructs an Indexer metrics collector.
func NewIndexer(coin model.Coin, network model.Network) *Indexer {
	coin, network = labels(coin, network)
	return &Indexer{coin: coin, network: network}
}

// ObserveHeight records the outcome of ingesting one height.
func (m Indexer) ObserveHeight(err error, txs int, started time.Time) {
	status := statusOf(err)
	indexerHeightsTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	indexerHeightDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		indexerHeightTransactions.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(txs))
	}
}

// ObserveRewind records a rewind over the given number of heights.
func (m Indexer) ObserveRewind(err error, heights int) {
	indexerRewindsTotal.WithLabelValues(string(m.coin), string(m.network), statusOf(err)).Inc()
	indexerRewoundHeights.WithLabelValues(string(m.coin), string(m.network)).Add(float64(heights))
}

// SetLastHeight exports the last fully indexed height.
func (m Indexer) SetLastHeight(height uint64) {
	indexerLastHeight.WithLabelValues(string(m.coin), string(m.network)).Set(float64(height))
}

package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "node",
		Name:      "calls_total",
		Help:      "Count of coin node RPC calls by method and outcome.",
	}, []string{"method", "coin", "network", "status"})
	nodeCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "node",
		Name:      "call_duration_seconds",
		Help:      "Duration of coin node RPC calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "coin", "network", "status"})
	nodeThrottleWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "node",
		Name:      "throttle_wait_seconds",
		Help:      "Time spent waiting on the request rate limit before a node call.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"coin", "network"})
)

// Node records coin node call outcomes and rate-limit waits.
type Node struct {
	coin    string
	network string
}

// NewNode constructs a collector for one coin/network pair.
func NewNode(coin model.Coin, network model.Network) *Node {
	coin, network = labels(coin, network)
	return &Node{coin: string(coin), network: string(network)}
}

// Observe records a single node call.
func (m *Node) Observe(method string, err error, started time.Time) {
	status := statusOf(err)
	nodeCallsTotal.WithLabelValues(method, m.coin, m.network, status).Inc()
	nodeCallDuration.WithLabelValues(method, m.coin, m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveThrottle records how long a call waited for the rate limiter.
func (m *Node) ObserveThrottle(waited time.Duration) {
	if waited < 0 {
		waited = 0
	}
	nodeThrottleWait.WithLabelValues(m.coin, m.network).Observe(waited.Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func labels(coin model.Coin, network model.Network) (model.Coin, model.Network) {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return coin, network
}

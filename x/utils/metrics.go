package utils

import (
	"strconv"
	"time"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a decorator that counts processed transactions and observes
// their processing time using prometheus collectors.
type Metrics struct {
	txs     *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

var _ weave.Decorator = (*Metrics)(nil)

// NewMetrics creates a Metrics decorator and registers its collectors with
// the given registerer. It panics if the collectors are already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		txs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tokenswap",
			Subsystem: "tx",
			Name:      "processed_total",
			Help:      "Total processed transactions segmented by phase, message path and result code.",
		}, []string{"phase", "path", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tokenswap",
			Subsystem: "tx",
			Name:      "duration_seconds",
			Help:      "Transaction processing latency segmented by phase and message path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase", "path"}),
	}
	reg.MustRegister(m.txs, m.latency)
	return m
}

// Check records the outcome of a check.
func (m *Metrics) Check(ctx weave.Context, store weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	m.observe("check", tx, start, err)
	return res, err
}

// Deliver records the outcome of a delivery.
func (m *Metrics) Deliver(ctx weave.Context, store weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	m.observe("deliver", tx, start, err)
	return res, err
}

func (m *Metrics) observe(phase string, tx weave.Tx, start time.Time, err error) {
	path := weave.GetPath(tx)
	code, _ := errors.ABCIInfo(err, false)
	m.txs.WithLabelValues(phase, path, strconv.FormatUint(uint64(code), 10)).Inc()
	m.latency.WithLabelValues(phase, path).Observe(time.Since(start).Seconds())
}

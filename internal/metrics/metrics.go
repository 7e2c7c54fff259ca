package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/BruksfildServices01/quickcut/internal/kv"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quickcut",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quickcut",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	StoreOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quickcut",
		Name:      "kv_operations_total",
		Help:      "Key/value store operations by kind and result.",
	}, []string{"op", "result"})

	StoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quickcut",
		Name:      "kv_operation_duration_seconds",
		Help:      "Key/value store latency.",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"op"})

	NotificationsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quickcut",
		Name:      "notification_events_dropped_total",
		Help:      "Events dropped because the dispatcher queue was full.",
	})
)

// InstrumentedStore records operation counts and latency around a kv.Store.
type InstrumentedStore struct {
	next kv.Store
}

var _ kv.Store = (*InstrumentedStore)(nil)

func Instrument(next kv.Store) *InstrumentedStore {
	return &InstrumentedStore{next: next}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	v, ok, err := s.next.Get(ctx, key)
	observe("get", start, err)
	return v, ok, err
}

func (s *InstrumentedStore) Put(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Put(ctx, key, value)
	observe("put", start, err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	observe("delete", start, err)
	return err
}

func (s *InstrumentedStore) Close() error {
	return kv.Close(s.next)
}

func observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	StoreOps.WithLabelValues(op, result).Inc()
	StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

package client

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apierrors "github.com/aebonlee/blog-test-2/client/internal/errors"
	"github.com/aebonlee/blog-test-2/client/internal/transport"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "postboard_client",
			Name:      "requests_total",
			Help:      "API calls by operation, method and outcome status.",
		},
		[]string{"op", "method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "postboard_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of API calls including retries.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	defaultMetrics = &metrics{requests: requestsTotal, duration: requestDuration}
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "postboard_client",
				Name:      "requests_total",
				Help:      "API calls by operation, method and outcome status.",
			},
			[]string{"op", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "postboard_client",
				Name:      "request_duration_seconds",
				Help:      "Wall time of API calls including retries.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) interceptor() transport.Interceptor {
	return func(next transport.Handler) transport.Handler {
		return func(ctx context.Context, call *transport.Call) (*transport.Result, error) {
			start := time.Now()
			res, err := next(ctx, call)
			m.duration.WithLabelValues(call.Op).Observe(time.Since(start).Seconds())
			m.requests.WithLabelValues(call.Op, call.Method, statusLabel(res, err)).Inc()
			return res, err
		}
	}
}

func statusLabel(res *transport.Result, err error) string {
	if err == nil {
		return strconv.Itoa(res.StatusCode)
	}
	if e, ok := apierrors.As(err); ok {
		if e.StatusCode > 0 {
			return strconv.Itoa(e.StatusCode)
		}
		return strings.ToLower(strings.TrimSuffix(e.Kind.String(), "Error"))
	}
	return "error"
}

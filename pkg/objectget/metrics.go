// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/driftfs/objectgw/pkg/debug"
)

// Metrics holds the prometheus collectors for the GetObject pipeline.
// Registered once at startup against the shared debug registry so they
// show up on the same /metrics endpoint as the rest of the process.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	BytesServed     prometheus.Counter
	RequestDuration prometheus.Histogram
	Outstanding     prometheus.GaugeFunc
}

// NewMetrics constructs and registers the GetObject metrics. bp may be nil,
// in which case the outstanding-bytes gauge always reports zero.
func NewMetrics(bp *Backpressure) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "objectgw",
			Subsystem: "get_object",
			Name:      "requests_total",
			Help:      "GetObject actions by terminal outcome code.",
		}, []string{"code"}),
		BytesServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "objectgw",
			Subsystem: "get_object",
			Name:      "bytes_served_total",
			Help:      "Total content bytes streamed to clients.",
		}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "objectgw",
			Subsystem: "get_object",
			Name:      "request_duration_seconds",
			Help:      "Wall-clock time from action start to last byte written.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.Outstanding = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "objectgw",
		Subsystem: "get_object",
		Name:      "outstanding_bytes",
		Help:      "Bytes reserved against the backpressure ceiling right now.",
	}, func() float64 {
		if bp == nil {
			return 0
		}
		return float64(bp.Outstanding())
	})

	reg := debug.Registry()
	reg.MustRegister(m.RequestsTotal, m.BytesServed, m.RequestDuration, m.Outstanding)
	return m
}

// Observe records the terminal outcome of one action.
func (m *Metrics) Observe(code ErrorCode, bytesServed int64, seconds float64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(errorCodeLabel(code)).Inc()
	m.BytesServed.Add(float64(bytesServed))
	m.RequestDuration.Observe(seconds)
}

func errorCodeLabel(code ErrorCode) string {
	switch code {
	case ErrCodeNone:
		return "ok"
	case ErrCodeNoSuchBucket:
		return "no_such_bucket"
	case ErrCodeNoSuchKey:
		return "no_such_key"
	case ErrCodeInvalidRange:
		return "invalid_range"
	case ErrCodeNotModified:
		return "not_modified"
	case ErrCodePreconditionFailed:
		return "precondition_failed"
	case ErrCodeServiceUnavailable:
		return "service_unavailable"
	case ErrCodeAccessDenied:
		return "access_denied"
	default:
		return "internal_error"
	}
}

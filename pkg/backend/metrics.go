package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/tagpack/tagpack/pkg/value"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	fallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tagpack_backend_fallbacks_total",
			Help: "Times the accelerated backend was unavailable and the reference codec was selected",
		},
	)

	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagpack_codec_operations_total",
			Help: "Total codec operations by backend, operation and status",
		},
		[]string{"backend", "operation", "status"},
	)
)

// Instrument wraps a backend so every operation is counted in the
// tagpack_codec_operations_total metric.
func Instrument(b Backend) Backend {
	return &instrumented{inner: b}
}

type instrumented struct {
	inner Backend
}

func (m *instrumented) Encode(v value.Value) ([]byte, error) {
	data, err := m.inner.Encode(v)
	operationsTotal.WithLabelValues(m.inner.Name(), "encode", status(err)).Inc()
	return data, err
}

func (m *instrumented) Decode(data []byte) (value.Value, error) {
	v, err := m.inner.Decode(data)
	operationsTotal.WithLabelValues(m.inner.Name(), "decode", status(err)).Inc()
	return v, err
}

func (m *instrumented) Name() string {
	return m.inner.Name()
}

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}

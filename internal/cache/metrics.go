package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelNamespace = "namespace"
	labelOp        = "op"
)

// Metrics counts cache outcomes per namespace. A nil *Metrics records nothing.
type Metrics struct {
	Hits      *prometheus.CounterVec
	Misses    *prometheus.CounterVec
	Errors    *prometheus.CounterVec
	Evictions *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Hits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_cache_hits_total",
				Help: "Cache lookups answered from the cache",
			},
			[]string{labelNamespace},
		),
		Misses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_cache_misses_total",
				Help: "Cache lookups that fell through to the store",
			},
			[]string{labelNamespace},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_cache_errors_total",
				Help: "Cache backend failures, all recovered locally",
			},
			[]string{labelNamespace, labelOp},
		),
		Evictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_cache_evictions_total",
				Help: "Namespace evictions",
			},
			[]string{labelNamespace},
		),
	}

	reg.MustRegister(m.Hits, m.Misses, m.Errors, m.Evictions)
	return m
}

func (m *Metrics) hit(ns Namespace) {
	if m != nil {
		m.Hits.WithLabelValues(string(ns)).Inc()
	}
}

func (m *Metrics) miss(ns Namespace) {
	if m != nil {
		m.Misses.WithLabelValues(string(ns)).Inc()
	}
}

func (m *Metrics) failed(ns Namespace, op string) {
	if m != nil {
		m.Errors.WithLabelValues(string(ns), op).Inc()
	}
}

func (m *Metrics) evicted(ns Namespace) {
	if m != nil {
		m.Evictions.WithLabelValues(string(ns)).Inc()
	}
}

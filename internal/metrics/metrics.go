// Package metrics exposes the engine's data-quality counters. Unresolvable
// tags and malformed records are dropped silently by design; these counters
// make upstream regressions in the content service observable.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every counter and gauge the catalog engine records.
type Metrics struct {
	TagsDropped    *prometheus.CounterVec
	RecordsDropped prometheus.Counter
	RecordsLoaded  prometheus.Counter
	CatalogSize    prometheus.Gauge
}

// NewMetrics creates a Metrics instance with all collectors unregistered.
func NewMetrics() *Metrics {
	return &Metrics{
		TagsDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pantry",
				Subsystem: "resolver",
				Name:      "tags_dropped_total",
				Help:      "Total number of raw tags dropped as unresolvable",
			},
			[]string{"kind"},
		),
		RecordsDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pantry",
				Subsystem: "catalog",
				Name:      "records_dropped_total",
				Help:      "Total number of raw records dropped during load",
			},
		),
		RecordsLoaded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pantry",
				Subsystem: "catalog",
				Name:      "records_loaded_total",
				Help:      "Total number of records normalized into the catalog",
			},
		),
		CatalogSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "pantry",
				Subsystem: "catalog",
				Name:      "size",
				Help:      "Current number of records in the catalog",
			},
		),
	}
}

// Register registers all collectors with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.TagsDropped, m.RecordsDropped, m.RecordsLoaded, m.CatalogSize,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Default is the shared instance used by the resolver and catalog packages.
// It is not registered anywhere until the caller does so.
var Default = NewMetrics()

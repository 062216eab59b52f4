package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	hp "github.com/hankgalt/binheap/pkg/heap"
)

const DEFAULT_NAMESPACE = "binheap"

const ERR_METRICS_REGISTER = "metrics: register heap collectors"

var ErrMetricsRegister = errors.New(ERR_METRICS_REGISTER)

// HeapMetrics holds the collectors shared by every observed heap. Heaps are
// told apart by the "heap" label.
type HeapMetrics struct {
	inserts  *prometheus.CounterVec
	extracts *prometheus.CounterVec
	empty    *prometheus.CounterVec
	size     *prometheus.GaugeVec
}

func NewHeapMetrics(namespace string) *HeapMetrics {
	if namespace == "" {
		namespace = DEFAULT_NAMESPACE
	}

	return &HeapMetrics{
		inserts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "heap_inserts_total",
				Help:      "Total number of elements inserted.",
			},
			[]string{"heap"},
		),
		extracts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "heap_extracts_total",
				Help:      "Total number of elements extracted.",
			},
			[]string{"heap"},
		),
		empty: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "heap_empty_errors_total",
				Help:      "Total number of extract or peek calls on an empty heap.",
			},
			[]string{"heap", "op"},
		),
		size: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "heap_size",
				Help:      "Number of elements currently held.",
			},
			[]string{"heap"},
		),
	}
}

// Register adds the collectors to reg, prometheus.DefaultRegisterer when nil.
func (m *HeapMetrics) Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{m.inserts, m.extracts, m.empty, m.size} {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("%w: %w", ErrMetricsRegister, err)
		}
	}
	return nil
}

// Observer returns a heap.Observer reporting under the given heap name.
func (m *HeapMetrics) Observer(name string) hp.Observer {
	return &heapObserver{
		name:     name,
		metrics:  m,
		inserts:  m.inserts.WithLabelValues(name),
		extracts: m.extracts.WithLabelValues(name),
		size:     m.size.WithLabelValues(name),
	}
}

type heapObserver struct {
	name     string
	metrics  *HeapMetrics
	inserts  prometheus.Counter
	extracts prometheus.Counter
	size     prometheus.Gauge
}

func (o *heapObserver) Inserted(count int) {
	o.inserts.Inc()
	o.size.Set(float64(count))
}

func (o *heapObserver) Extracted(count int) {
	o.extracts.Inc()
	o.size.Set(float64(count))
}

func (o *heapObserver) Empty(op string) {
	o.metrics.empty.WithLabelValues(o.name, op).Inc()
}

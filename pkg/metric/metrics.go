//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Metrics=Metrics"
package metric

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	Metrics interface {
		With(Labels) Metrics
		Increment(key string)
		Duration(key string, duration time.Duration)
	}

	Labels map[string]string
)

// Registry owns the prometheus collectors created on demand by Metrics.
// A metric name is bound to the label set it was first used with.
type Registry struct {
	namespace string
	impl      *prometheus.Registry

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

func NewRegistry(namespace string) *Registry {
	return &Registry{
		namespace:  strcase.ToSnake(namespace),
		impl:       prometheus.NewRegistry(),
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

func (r *Registry) Metrics() Metrics {
	return metrics{registry: r}
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.impl
}

func (r *Registry) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(r.impl, promhttp.HandlerOpts{})
}

func (r *Registry) counter(name string, labelNames []string) *prometheus.CounterVec {
	r.mu.Lock()
	defer r.mu.Unlock()

	if vec, ok := r.counters[name]; ok {
		return vec
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      strcase.ToSnake(name),
		Help:      name,
	}, labelNames)
	r.impl.MustRegister(vec)
	r.counters[name] = vec
	return vec
}

func (r *Registry) histogram(name string, labelNames []string) *prometheus.HistogramVec {
	r.mu.Lock()
	defer r.mu.Unlock()

	if vec, ok := r.histograms[name]; ok {
		return vec
	}

	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      strcase.ToSnake(name),
		Help:      name,
		Buckets:   prometheus.DefBuckets,
	}, labelNames)
	r.impl.MustRegister(vec)
	r.histograms[name] = vec
	return vec
}

type metrics struct {
	registry *Registry
	labels   Labels
}

func (m metrics) With(labels Labels) Metrics {
	merged := make(Labels, len(m.labels)+len(labels))
	for k, v := range m.labels {
		merged[k] = v
	}
	for k, v := range labels {
		merged[k] = v
	}

	return metrics{registry: m.registry, labels: merged}
}

func (m metrics) Increment(key string) {
	m.registry.counter(key, m.labelNames()).With(prometheus.Labels(m.labels)).Inc()
}

func (m metrics) Duration(key string, duration time.Duration) {
	m.registry.histogram(key, m.labelNames()).With(prometheus.Labels(m.labels)).Observe(duration.Seconds())
}

func (m metrics) labelNames() []string {
	names := make([]string, 0, len(m.labels))
	for name := range m.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

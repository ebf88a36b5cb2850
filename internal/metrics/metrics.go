package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Failure reasons for invoice creation.
const (
	ReasonValidation  = "validation"
	ReasonConflict    = "number_conflict"
	ReasonPersistence = "persistence"
	ReasonRender      = "render"
)

// Metrics is the set of counters the invoice lifecycle reports.
type Metrics struct {
	invoicesCreated prometheus.Counter
	createFailures  *prometheus.CounterVec
	sequenceRetries prometheus.Counter
	renders         *prometheus.CounterVec
	settingsSwaps   *prometheus.CounterVec
	createDuration  prometheus.Histogram
}

// New registers the collectors on reg. Passing nil uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		invoicesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "palmcafe",
			Name:      "invoices_created_total",
			Help:      "Invoices committed.",
		}),
		createFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "palmcafe",
			Name:      "invoice_create_failures_total",
			Help:      "Invoice creations that did not commit, by reason.",
		}, []string{"reason"}),
		sequenceRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "palmcafe",
			Name:      "invoice_number_conflicts_total",
			Help:      "Invoice number conflicts that triggered a reconcile and retry.",
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "palmcafe",
			Name:      "invoice_renders_total",
			Help:      "Invoice documents rendered, by header mark kind.",
		}, []string{"mark"}),
		settingsSwaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "palmcafe",
			Name:      "settings_swaps_total",
			Help:      "Active settings rows replaced, by kind.",
		}, []string{"kind"}),
		createDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "palmcafe",
			Name:      "invoice_create_duration_seconds",
			Help:      "Time spent pricing and storing an invoice.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		m.invoicesCreated,
		m.createFailures,
		m.sequenceRetries,
		m.renders,
		m.settingsSwaps,
		m.createDuration,
	)
	return m
}

// NewNop returns metrics registered on a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) InvoiceCreated(seconds float64) {
	m.invoicesCreated.Inc()
	m.createDuration.Observe(seconds)
}

func (m *Metrics) CreateFailed(reason string) {
	m.createFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) NumberConflict() {
	m.sequenceRetries.Inc()
}

func (m *Metrics) Rendered(mark string) {
	m.renders.WithLabelValues(mark).Inc()
}

func (m *Metrics) SettingsSwapped(kind string) {
	m.settingsSwaps.WithLabelValues(kind).Inc()
}

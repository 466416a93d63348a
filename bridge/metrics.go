package bridge

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/TremoloSecurity/directory-ldap-api/ldap"
	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

// Label constants for metrics.
const (
	LabelDomainKind = "domain_kind"
	LabelNamingKind = "naming_kind"
	LabelDirection  = "direction"
	LabelResult     = "result"
)

// Direction constants for name conversions.
const (
	DirectionToName = "to_name"
	DirectionToDn   = "to_dn"
)

// Result constants for name conversions.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Metrics provides Prometheus metrics for error translation.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	translationsTotal    *prometheus.CounterVec
	passthroughTotal     prometheus.Counter
	nameConversionsTotal *prometheus.CounterVec

	registered bool
}

// NewMetrics creates and registers translation metrics.
// If registry is nil, metrics are created but not registered.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		translationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dirbridge",
				Subsystem: "translator",
				Name:      "translations_total",
				Help:      "Total number of domain errors translated, by domain and naming kind",
			},
			[]string{LabelDomainKind, LabelNamingKind},
		),

		passthroughTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "dirbridge",
				Subsystem: "translator",
				Name:      "passthrough_total",
				Help:      "Total number of errors that already were naming errors",
			},
		),

		nameConversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dirbridge",
				Subsystem: "translator",
				Name:      "name_conversions_total",
				Help:      "Total number of deferred name conversions, by direction and result",
			},
			[]string{LabelDirection, LabelResult},
		),
	}

	if registry != nil {
		registry.MustRegister(
			m.translationsTotal,
			m.passthroughTotal,
			m.nameConversionsTotal,
		)
		m.registered = true
	}

	return m
}

// Registered reports whether the metrics were registered with a registry.
func (m *Metrics) Registered() bool {
	return m != nil && m.registered
}

// ObserveTranslation records one translation of a domain kind.
func (m *Metrics) ObserveTranslation(domainKind ldap.ErrorKind, kind naming.Kind) {
	if m == nil {
		return
	}
	m.translationsTotal.WithLabelValues(domainKind.String(), string(kind)).Inc()
}

// ObservePassthrough records an error returned without translation.
func (m *Metrics) ObservePassthrough() {
	if m == nil {
		return
	}
	m.passthroughTotal.Inc()
}

// ObserveNameConversion records the outcome of one name conversion.
func (m *Metrics) ObserveNameConversion(direction string, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultFailed
	}
	m.nameConversionsTotal.WithLabelValues(direction, result).Inc()
}

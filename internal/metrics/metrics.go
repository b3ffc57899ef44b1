// Package metrics counts kernel transitions and exports them in the
// Prometheus textfile format.
package metrics

import (
	"fmt"

	"or1on"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "or1on"

// Result label values.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// Recorder tracks kernel events. Its Observe method is a kernel observer.
type Recorder struct {
	verify    *prometheus.CounterVec
	activate  *prometheus.CounterVec
	audit     *prometheus.CounterVec
	epochs    prometheus.Counter
	resonance prometheus.Gauge
}

// NewRecorder registers the kernel metrics with reg. A nil reg means the
// default registerer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Recorder{
		verify: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kernel",
			Name:      "verify_total",
			Help:      "Integrity verification attempts by result",
		}, []string{"result"}),
		activate: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kernel",
			Name:      "activate_total",
			Help:      "Activation attempts by result",
		}, []string{"result"}),
		audit: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kernel",
			Name:      "audit_total",
			Help:      "Audit snapshots by status",
		}, []string{"status"}),
		epochs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kernel",
			Name:      "epoch_registered_total",
			Help:      "Local epochs registered",
		}),
		resonance: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "kernel",
			Name:      "resonance",
			Help:      "Resonance level reported by the most recent audit or detection",
		}),
	}
}

// Observe records a kernel event.
func (r *Recorder) Observe(ev or1on.Event) {
	switch ev.Kind {
	case or1on.EventVerified:
		r.verify.WithLabelValues(ResultOK).Inc()
	case or1on.EventVerifyFailed:
		r.verify.WithLabelValues(ResultRejected).Inc()
	case or1on.EventActivated:
		r.activate.WithLabelValues(ResultOK).Inc()
	case or1on.EventActivateRejected:
		r.activate.WithLabelValues(ResultRejected).Inc()
	case or1on.EventEpochRegistered:
		r.epochs.Inc()
	case or1on.EventAudited:
		r.audit.WithLabelValues(ev.AuditStatus).Inc()
		if ev.AuditStatus == or1on.AuditStatusResumed {
			r.resonance.Set(ev.Resonance)
		}
	}
}

// SetResonance records a resonance level read outside an audit.
func (r *Recorder) SetResonance(v float64) {
	r.resonance.Set(v)
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Workflow counts transition attempts by outcome. Registered once at boot on
// the registry owned by the composition root.
type Workflow struct {
	transitions *prometheus.CounterVec
	denials     *prometheus.CounterVec
}

func NewWorkflow(reg prometheus.Registerer) *Workflow {
	return &Workflow{
		transitions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "aidbridge",
				Subsystem: "workflow",
				Name:      "transitions_total",
				Help:      "Workflow transition attempts by action and outcome.",
			},
			[]string{"action", "outcome"},
		),
		denials: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "aidbridge",
				Subsystem: "workflow",
				Name:      "authorization_denials_total",
				Help:      "Denied workflow actions by actor role and current status.",
			},
			[]string{"role", "status"},
		),
	}
}

func (m *Workflow) Transition(action, outcome string) {
	m.transitions.WithLabelValues(action, outcome).Inc()
}

func (m *Workflow) Denial(role, status string) {
	m.denials.WithLabelValues(role, status).Inc()
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

// Rejection reasons reported by IncSelectionRejected.
const (
	RejectCapacity = "capacity"
	RejectNotFound = "not_found"
)

// HousingMetrics counts domain events of the shelter workflow.
type HousingMetrics struct {
	registered prometheus.Counter
	pairings   prometheus.Counter
	rejected   *prometheus.CounterVec
}

// NewHousingMetrics registers the housing counters on the provided registerer.
func NewHousingMetrics(reg prometheus.Registerer) *HousingMetrics {
	if reg == nil {
		return &HousingMetrics{}
	}
	registered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hhh_members_registered_total",
		Help: "Members registered together with their house.",
	})
	pairings := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hhh_pairings_created_total",
		Help: "Shelter pairings recorded by house selection.",
	})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hhh_house_selections_rejected_total",
		Help: "House selections rejected, by reason.",
	}, []string{"reason"})
	reg.MustRegister(registered, pairings, rejected)
	return &HousingMetrics{registered: registered, pairings: pairings, rejected: rejected}
}

// IncRegistered counts a committed registration.
func (m *HousingMetrics) IncRegistered() {
	if m == nil || m.registered == nil {
		return
	}
	m.registered.Inc()
}

// IncPairing counts a committed pairing.
func (m *HousingMetrics) IncPairing() {
	if m == nil || m.pairings == nil {
		return
	}
	m.pairings.Inc()
}

// IncSelectionRejected counts a selection that was rolled back.
func (m *HousingMetrics) IncSelectionRejected(reason string) {
	if m == nil || m.rejected == nil {
		return
	}
	m.rejected.WithLabelValues(normalizeLabel(reason)).Inc()
}

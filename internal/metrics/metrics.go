package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics счётчики генерации уроков
type Metrics struct {
	generations     *prometheus.CounterVec
	sessionsCreated prometheus.Counter
	shortfall       prometheus.Counter
}

// New регистрирует счётчики в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lesson_planner",
			Name:      "generations_total",
			Help:      "Generation calls by outcome (success or failure kind).",
		}, []string{"outcome"}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lesson_planner",
			Name:      "sessions_created_total",
			Help:      "Class sessions created by generation.",
		}),
		shortfall: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lesson_planner",
			Name:      "sessions_truncated_total",
			Help:      "Requested sessions dropped because of the unit end date.",
		}),
	}

	reg.MustRegister(m.generations, m.sessionsCreated, m.shortfall)
	return m
}

// ObserveSuccess учитывает успешную генерацию
func (m *Metrics) ObserveSuccess(created, shortfall int) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues("success").Inc()
	m.sessionsCreated.Add(float64(created))
	m.shortfall.Add(float64(shortfall))
}

// ObserveFailure учитывает отказ; outcome - вид отказа или "error"
func (m *Metrics) ObserveFailure(outcome string) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(outcome).Inc()
}

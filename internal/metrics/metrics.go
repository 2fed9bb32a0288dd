package metrics

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/tanod_dispatch/internal/models"
)

var (
	once sync.Once

	// PollCyclesTotal - число циклов синхронизации по результату (ok, stale)
	PollCyclesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tanod",
		Subsystem: "sync",
		Name:      "poll_cycles_total",
		Help:      "Total number of poll cycles, labeled by result.",
	}, []string{"result"})

	PollDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tanod",
		Subsystem: "sync",
		Name:      "poll_duration_seconds",
		Help:      "Time to read collaborators and recompute derived state in one poll cycle.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	// SnapshotStale равен 1, пока последний цикл неудачен и отдаётся предыдущий снимок
	SnapshotStale = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tanod",
		Subsystem: "sync",
		Name:      "snapshot_stale",
		Help:      "Whether the synchronizer is serving a stale snapshot.",
	})

	LastSuccessSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tanod",
		Subsystem: "sync",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix timestamp (seconds) of the last successful poll cycle.",
	})

	NewIncidentsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tanod",
		Subsystem: "sync",
		Name:      "new_incidents_total",
		Help:      "Total number of newly arrived incidents detected by polling.",
	})

	OnDutyCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tanod",
		Subsystem: "duty",
		Name:      "on_duty",
		Help:      "Number of persons on duty at the last successful poll cycle.",
	})

	// AssignmentsTotal - число вызовов AssignTanod по исходу
	AssignmentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tanod",
		Subsystem: "dispatch",
		Name:      "assignments_total",
		Help:      "Total number of assignment attempts, labeled by outcome.",
	}, []string{"outcome"})
)

// Register регистрирует метрики в реестре Prometheus по умолчанию; повторный вызов безопасен
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			PollCyclesTotal,
			PollDurationSeconds,
			SnapshotStale,
			LastSuccessSeconds,
			NewIncidentsTotal,
			OnDutyCount,
			AssignmentsTotal,
		)
	})
}

// OutcomeLabel переводит ошибку в значение метки с малой кардинальностью
func OutcomeLabel(err error) string {
	var (
		ve *models.ValidationError
		ae *models.AssignmentError
		ce *models.ConflictError
		ne *models.NotFoundError
		te *models.TransientIOError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &ae):
		return "assignment"
	case errors.As(err, &ce):
		return "conflict"
	case errors.As(err, &ne):
		return "not_found"
	case errors.As(err, &te):
		return "transient"
	}
	return "error"
}

func NowUnixSeconds() float64 {
	return float64(time.Now().Unix())
}

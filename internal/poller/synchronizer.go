// Package poller периодически перечитывает реестр инцидентов, журнал дежурств
// и реестр типов, пересчитывает производные данные и обнаруживает новые инциденты.
package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/tanod_dispatch/internal/config"
	"github.com/shenikar/tanod_dispatch/internal/metrics"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/shenikar/tanod_dispatch/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const defaultInterval = 15 * time.Second

// Snapshot - результат последнего удачного цикла. Только для чтения.
type Snapshot struct {
	FetchedAt  time.Time
	Incidents  []*models.Incident
	Roster     models.DutyRoster
	TypeCounts map[string]int
	Series     []models.MonthBucket
}

// Status - пассивный индикатор состояния синхронизации
type Status struct {
	Running       bool       `json:"running"`
	Stale         bool       `json:"stale"`
	LastError     string     `json:"last_error,omitempty"`
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	LastSuccessAt *time.Time `json:"last_success_at,omitempty"`
	Incidents     int        `json:"incidents"`
	OnDuty        int        `json:"on_duty"`
	NewIncidents  int        `json:"new_incidents"`
}

type Synchronizer struct {
	incidents  IncidentSource
	attendance AttendanceSource
	types      TypeSource
	notifier   Notifier
	logger     *logrus.Logger
	cfg        *config.Config

	// done закрывается, когда цикл опроса завершился и состояние сброшено
	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	done    chan struct{}

	// cycleMu сериализует циклы, stateMu защищает снимок и статус
	cycleMu  sync.Mutex
	stateMu  sync.RWMutex
	snapshot *Snapshot
	status   Status
	tracker  *ArrivalTracker
}

func NewSynchronizer(
	incidents IncidentSource,
	attendance AttendanceSource,
	types TypeSource,
	notifier Notifier,
	logger *logrus.Logger,
	cfg *config.Config,
) *Synchronizer {
	return &Synchronizer{
		incidents:  incidents,
		attendance: attendance,
		types:      types,
		notifier:   notifier,
		logger:     logger,
		cfg:        cfg,
		tracker:    NewArrivalTracker(),
	}
}

// StartWithContext запускает цикл опроса; первый цикл выполняется сразу и задаёт базу
func (s *Synchronizer) StartWithContext(ctx context.Context) {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.running = true
	s.done = done
	s.mu.Unlock()

	interval := s.cfg.PollInterval
	if interval <= 0 {
		interval = defaultInterval
	}
	s.logger.WithField("interval", interval.String()).Info("Starting incident synchronizer...")

	go func() {
		// Сброс выполняется при любом выходе из цикла, даже если Stop уже не дождался
		defer func() {
			cancel()
			s.reset()
			s.mu.Lock()
			s.running = false
			s.cancel = nil
			s.done = nil
			s.mu.Unlock()
			close(done)
			s.logger.Info("Incident synchronizer stopped.")
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		_ = s.RunOnce(runCtx, time.Now())
		for {
			select {
			case <-ticker.C:
				_ = s.RunOnce(runCtx, time.Now())
			case <-runCtx.Done():
				return
			}
		}
	}()
}

// StopWithContext останавливает опрос и ждёт сброса снимка и базы новых инцидентов.
// Если ctx истёк раньше, сброс всё равно произойдёт при выходе цикла.
func (s *Synchronizer) StopWithContext(ctx context.Context) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Synchronizer) reset() {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	s.snapshot = nil
	s.status = Status{}
	s.tracker.Reset()
	metrics.SnapshotStale.Set(0)
}

// RunOnce выполняет один цикл опроса. Ошибка чтения не портит предыдущий снимок.
func (s *Synchronizer) RunOnce(ctx context.Context, now time.Time) error {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	started := time.Now()
	defer func() { metrics.PollDurationSeconds.Observe(time.Since(started).Seconds()) }()

	loc := s.cfg.Location()
	now = now.In(loc)
	log := s.logger.WithFields(logrus.Fields{
		"service": "poller",
		"method":  "RunOnce",
	})

	cycleCtx := ctx
	if s.cfg.IOTimeout > 0 {
		var cancel context.CancelFunc
		cycleCtx, cancel = context.WithTimeout(ctx, s.cfg.IOTimeout)
		defer cancel()
	}

	var (
		incidents []*models.Incident
		entries   []*models.AttendanceLogEntry
		types     []*models.IncidentTypeConfig
	)
	g, gctx := errgroup.WithContext(cycleCtx)
	g.Go(func() error {
		var err error
		incidents, err = s.incidents.ListIncidents(gctx)
		return models.AsTransient("incidents.list", err)
	})
	g.Go(func() error {
		var err error
		entries, err = s.attendance.ListAttendance(gctx)
		return models.AsTransient("attendance.list", err)
	})
	g.Go(func() error {
		var err error
		types, err = s.types.ListTypes(gctx)
		return models.AsTransient("incident_types.list", err)
	})

	if err := g.Wait(); err != nil {
		s.markStale(now, err)
		log.WithError(err).Warn("Poll cycle failed, serving previous snapshot")
		return fmt.Errorf("poller: cycle failed: %w", err)
	}

	// Список дежурных пересчитывается каждый цикл и не переживает его
	roster, anomalies := service.ResolveDutyRoster(entries, now, loc)
	for _, a := range anomalies {
		log.WithFields(logrus.Fields{
			"person":       a.Person,
			"open_entries": a.Entries,
			"chosen_entry": a.Chosen,
		}).Warn("Multiple open attendance entries for one person")
	}

	snapshot := &Snapshot{
		FetchedAt:  now,
		Incidents:  incidents,
		Roster:     roster,
		TypeCounts: service.TypeCounts(incidents),
		Series:     service.MonthlySeries(incidents, types, now),
	}

	s.stateMu.Lock()
	baseline := !s.tracker.Primed()
	arrived := s.tracker.Observe(incidents)
	s.snapshot = snapshot
	at := now
	s.status.Stale = false
	s.status.LastError = ""
	s.status.LastAttemptAt = &at
	s.status.LastSuccessAt = &at
	s.status.Incidents = len(incidents)
	s.status.OnDuty = len(roster)
	s.status.NewIncidents = len(arrived)
	s.stateMu.Unlock()

	metrics.PollCyclesTotal.WithLabelValues("ok").Inc()
	metrics.SnapshotStale.Set(0)
	metrics.LastSuccessSeconds.Set(metrics.NowUnixSeconds())
	metrics.OnDutyCount.Set(float64(len(roster)))

	if baseline {
		log.WithField("incidents", len(incidents)).Info("Baseline of known incidents established")
	}

	if len(arrived) > 0 {
		metrics.NewIncidentsTotal.Add(float64(len(arrived)))
		log.WithField("new_incidents", len(arrived)).Info("New incidents detected")
		if s.notifier != nil {
			if err := s.notifier.NotifyNewIncidents(ctx, arrived); err != nil {
				log.WithError(err).Warn("Failed to notify about new incidents")
			}
		}
	}

	log.WithFields(logrus.Fields{
		"incidents": len(incidents),
		"on_duty":   len(roster),
	}).Debug("Poll cycle completed")
	return nil
}

func (s *Synchronizer) markStale(now time.Time, err error) {
	s.stateMu.Lock()
	at := now
	s.status.Stale = true
	s.status.LastError = err.Error()
	s.status.LastAttemptAt = &at
	s.status.NewIncidents = 0
	s.stateMu.Unlock()

	metrics.PollCyclesTotal.WithLabelValues("stale").Inc()
	metrics.SnapshotStale.Set(1)
}

// Snapshot возвращает последний удачный снимок или nil, если его ещё нет
func (s *Synchronizer) Snapshot() *Snapshot {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.snapshot
}

func (s *Synchronizer) Status() Status {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	st := s.status
	st.Running = running
	return st
}

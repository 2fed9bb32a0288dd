package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/tanod_dispatch/internal/config"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// AttendanceRepository - журнал отметок прихода/ухода, только чтение
type AttendanceRepository interface {
	ListAttendance(ctx context.Context) ([]*models.AttendanceLogEntry, error)
}

// DutyService определяет, кто сейчас на дежурстве. Нулевая дата означает "сегодня".
type DutyService interface {
	Roster(ctx context.Context, date time.Time) (models.DutyRoster, error)
	Lookup(ctx context.Context, person string, date time.Time) (*models.DutyRecord, error)
	IsOnDuty(ctx context.Context, person string, date time.Time) (bool, error)
}

type dutyService struct {
	repo   AttendanceRepository
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

func NewDutyService(repo AttendanceRepository, logger *logrus.Logger, cfg *config.Config) DutyService {
	return &dutyService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Roster вычисляет список дежурных на дату по текущему снимку журнала
func (s *dutyService) Roster(ctx context.Context, date time.Time) (models.DutyRoster, error) {
	if date.IsZero() {
		date = s.now()
	}
	loc := s.cfg.Location()
	log := s.logger.WithFields(logrus.Fields{
		"service": "duty",
		"method":  "Roster",
		"date":    date.In(loc).Format(time.DateOnly),
	})

	ctx, cancel := withIOTimeout(ctx, s.cfg)
	defer cancel()

	entries, err := s.repo.ListAttendance(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load attendance log")
		return nil, fmt.Errorf("service: could not load attendance log: %w", models.AsTransient("attendance.list", err))
	}

	roster, anomalies := ResolveDutyRoster(entries, date, loc)
	logDutyAnomalies(log, anomalies)

	log.WithField("on_duty", len(roster)).Debug("Duty roster resolved")
	return roster, nil
}

// Lookup возвращает запись дежурства человека или nil, если он не на дежурстве
func (s *dutyService) Lookup(ctx context.Context, person string, date time.Time) (*models.DutyRecord, error) {
	if person == "" {
		return nil, &models.ValidationError{Field: "person", Reason: "required"}
	}
	roster, err := s.Roster(ctx, date)
	if err != nil {
		return nil, err
	}
	rec, ok := roster.Find(person)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *dutyService) IsOnDuty(ctx context.Context, person string, date time.Time) (bool, error) {
	rec, err := s.Lookup(ctx, person, date)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

// ResolveDutyRoster - чистая функция: отбирает открытые отметки (time_out = nil),
// у которых time_in приходится на календарную дату date в часовом поясе loc.
// При нескольких открытых отметках одного человека берётся самая поздняя,
// а аномалия возвращается вызывающему. Результат отсортирован по человеку.
func ResolveDutyRoster(entries []*models.AttendanceLogEntry, date time.Time, loc *time.Location) (models.DutyRoster, []models.DutyAnomaly) {
	if loc == nil {
		loc = date.Location()
	}
	y, m, d := date.In(loc).Date()

	chosen := make(map[string]*models.AttendanceLogEntry)
	counts := make(map[string]int)
	for _, e := range entries {
		if e == nil || e.Person == "" || e.TimeOut != nil {
			continue
		}
		ey, em, ed := e.TimeIn.In(loc).Date()
		if ey != y || em != m || ed != d {
			continue
		}
		counts[e.Person]++
		cur, ok := chosen[e.Person]
		if !ok || e.TimeIn.After(cur.TimeIn) || (e.TimeIn.Equal(cur.TimeIn) && e.ID > cur.ID) {
			chosen[e.Person] = e
		}
	}

	persons := make([]string, 0, len(chosen))
	for p := range chosen {
		persons = append(persons, p)
	}
	sort.Strings(persons)

	roster := make(models.DutyRoster, 0, len(persons))
	var anomalies []models.DutyAnomaly
	for _, p := range persons {
		e := chosen[p]
		roster = append(roster, models.DutyRecord{Person: p, OnDutySince: e.TimeIn})
		if counts[p] > 1 {
			anomalies = append(anomalies, models.DutyAnomaly{Person: p, Entries: counts[p], Chosen: e.ID})
		}
	}
	return roster, anomalies
}

func logDutyAnomalies(log *logrus.Entry, anomalies []models.DutyAnomaly) {
	for _, a := range anomalies {
		log.WithFields(logrus.Fields{
			"person":         a.Person,
			"open_entries":   a.Entries,
			"chosen_entry":   a.Chosen,
			"anomaly_reason": "multiple_open_entries",
		}).Warn("Multiple open attendance entries for one person, using the latest time_in")
	}
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/tanod_dispatch/internal/config"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SeriesMonths - длина скользящего окна помесячной статистики
const SeriesMonths = 12

// MonthLabelLayout даёт подписи вида "Mar 24"
const MonthLabelLayout = "Jan 06"

// IncidentTypeRepository - реестр типов инцидентов
type IncidentTypeRepository interface {
	ListTypes(ctx context.Context) ([]*models.IncidentTypeConfig, error)
	AddType(ctx context.Context, cfg *models.IncidentTypeConfig) error
}

// AnalyticsService считает статистику для дашбордов
type AnalyticsService interface {
	TypeCounts(ctx context.Context) (map[string]int, error)
	MonthlySeries(ctx context.Context, asOf time.Time) ([]models.MonthBucket, error)
	ListIncidentTypes(ctx context.Context) ([]*models.IncidentTypeConfig, error)
	AddIncidentType(ctx context.Context, cfg *models.IncidentTypeConfig) error
}

type analyticsService struct {
	incidents IncidentRepository
	types     IncidentTypeRepository
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewAnalyticsService(incidents IncidentRepository, types IncidentTypeRepository, logger *logrus.Logger, cfg *config.Config) AnalyticsService {
	return &analyticsService{
		incidents: incidents,
		types:     types,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *analyticsService) TypeCounts(ctx context.Context) (map[string]int, error) {
	ctx, cancel := withIOTimeout(ctx, s.cfg)
	defer cancel()

	incidents, err := s.incidents.ListIncidents(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "analytics", "method": "TypeCounts"}).
			WithError(err).Error("Failed to list incidents")
		return nil, fmt.Errorf("service: could not count incident types: %w", models.AsTransient("incidents.list", err))
	}
	return TypeCounts(incidents), nil
}

// MonthlySeries строит 12 месячных корзин, заканчивающихся месяцем asOf
func (s *analyticsService) MonthlySeries(ctx context.Context, asOf time.Time) ([]models.MonthBucket, error) {
	if asOf.IsZero() {
		asOf = s.now().In(s.cfg.Location())
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "MonthlySeries",
		"as_of":   asOf.Format(time.DateOnly),
	})

	ctx, cancel := withIOTimeout(ctx, s.cfg)
	defer cancel()

	var (
		incidents []*models.Incident
		types     []*models.IncidentTypeConfig
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incidents, err = s.incidents.ListIncidents(gctx)
		return models.AsTransient("incidents.list", err)
	})
	g.Go(func() error {
		var err error
		types, err = s.types.ListTypes(gctx)
		return models.AsTransient("incident_types.list", err)
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to load analytics inputs")
		return nil, fmt.Errorf("service: could not build monthly series: %w", err)
	}

	return MonthlySeries(incidents, types, asOf), nil
}

func (s *analyticsService) ListIncidentTypes(ctx context.Context) ([]*models.IncidentTypeConfig, error) {
	ctx, cancel := withIOTimeout(ctx, s.cfg)
	defer cancel()

	types, err := s.types.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list incident types: %w", models.AsTransient("incident_types.list", err))
	}
	return types, nil
}

// AddIncidentType дополняет реестр типов; ключ Other зарезервирован
func (s *analyticsService) AddIncidentType(ctx context.Context, cfg *models.IncidentTypeConfig) error {
	cfg.Name = strings.TrimSpace(cfg.Name)
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "AddIncidentType",
		"name":    cfg.Name,
	})

	if cfg.Name == "" {
		return &models.ValidationError{Field: "name", Reason: "required"}
	}
	if strings.EqualFold(cfg.Name, models.OtherType) {
		return &models.ValidationError{Field: "name", Reason: models.OtherType + " is reserved"}
	}

	ctx, cancel := withIOTimeout(ctx, s.cfg)
	defer cancel()

	if err := s.types.AddType(ctx, cfg); err != nil {
		log.WithError(err).Warn("Failed to add incident type")
		return fmt.Errorf("service: could not add incident type: %w", models.AsTransient("incident_types.add", err))
	}
	log.Info("Incident type registered")
	return nil
}

// TypeCounts считает инциденты по буквальному значению типа, без замены на Other
func TypeCounts(incidents []*models.Incident) map[string]int {
	counts := make(map[string]int)
	for _, inc := range incidents {
		if inc == nil {
			continue
		}
		counts[inc.Type]++
	}
	return counts
}

// SeriesKeys возвращает ключи серии: зарегистрированные типы в порядке реестра и Other в конце
func SeriesKeys(types []*models.IncidentTypeConfig) []string {
	keys := make([]string, 0, len(types)+1)
	seen := make(map[string]struct{}, len(types)+1)
	for _, t := range types {
		if t == nil || t.Name == "" || t.Name == models.OtherType {
			continue
		}
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		keys = append(keys, t.Name)
	}
	return append(keys, models.OtherType)
}

// ChartKey - ключ для графиков: тип из реестра или Other
func ChartKey(incidentType string, registered map[string]struct{}) string {
	if _, ok := registered[incidentType]; ok {
		return incidentType
	}
	return models.OtherType
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlySeries - чистая функция. Корзины берутся в часовом поясе asOf,
// старые первыми; инциденты индексируются по месяцу один раз.
func MonthlySeries(incidents []*models.Incident, types []*models.IncidentTypeConfig, asOf time.Time) []models.MonthBucket {
	loc := asOf.Location()
	keys := SeriesKeys(types)
	registered := make(map[string]struct{}, len(keys))
	for _, k := range keys[:len(keys)-1] {
		registered[k] = struct{}{}
	}

	last := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, loc)
	first := last.AddDate(0, -(SeriesMonths - 1), 0)
	end := last.AddDate(0, 1, 0)

	index := make(map[monthKey]map[string]int, SeriesMonths)
	for _, inc := range incidents {
		if inc == nil {
			continue
		}
		created := inc.CreatedAt.In(loc)
		if created.Before(first) || !created.Before(end) {
			continue
		}
		mk := monthKey{year: created.Year(), month: created.Month()}
		if index[mk] == nil {
			index[mk] = make(map[string]int)
		}
		index[mk][ChartKey(inc.Type, registered)]++
	}

	buckets := make([]models.MonthBucket, SeriesMonths)
	for i := range buckets {
		start := first.AddDate(0, i, 0)
		perType := index[monthKey{year: start.Year(), month: start.Month()}]
		counts := make(map[string]int, len(keys))
		total := 0
		for _, k := range keys {
			counts[k] = perType[k]
			total += perType[k]
		}
		buckets[i] = models.MonthBucket{
			Start:  start,
			Label:  start.Format(MonthLabelLayout),
			Counts: counts,
			Total:  total,
		}
	}
	return buckets
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tanod_dispatch/internal/config"
	"github.com/shenikar/tanod_dispatch/internal/lifecycle"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/shenikar/tanod_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с реестром инцидентов
type IncidentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident, expectedVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт для чтения, закрытия и удаления инцидентов
type IncidentService interface {
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	ResolveIncident(ctx context.Context, id uuid.UUID, resolvedBy string) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id uuid.UUID) error
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	locks     *KeyedMutex
	now       func() time.Time
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher, locks *KeyedMutex) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		locks:     locks,
		now:       time.Now,
	}
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Debug("Fetching incident by ID")

	ctx, cancel := withIOTimeout(ctx, s.cfg)
	defer cancel()

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		// Кеш - только ускорение, при ошибке идём в БД
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		return cached, nil
	}

	// Чтение из БД и запись в кеш идут под блокировкой инцидента,
	// иначе параллельное изменение может быть перетёрто старой записью в кеше
	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Timed out waiting for incident lock")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	defer unlock()

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", models.AsTransient("incidents.get", err))
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// ListIncidents возвращает полную коллекцию инцидентов; фильтрация выполняется на стороне вызывающего
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	ctx, cancel := withIOTimeout(ctx, s.cfg)
	defer cancel()

	incidents, err := s.repo.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", models.AsTransient("incidents.list", err))
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// ResolveIncident переводит инцидент в статус resolved
func (s *incidentService) ResolveIncident(ctx context.Context, id uuid.UUID, resolvedBy string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ResolveIncident",
		"incident_id": id,
		"resolved_by": resolvedBy,
	})

	if id == uuid.Nil {
		return nil, &models.ValidationError{Field: "incident_id", Reason: "required"}
	}
	if resolvedBy == "" {
		return nil, &models.ValidationError{Field: "resolved_by", Reason: "required"}
	}

	ctx, cancel := withIOTimeout(ctx, s.cfg)
	defer cancel()

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Timed out waiting for incident lock")
		return nil, fmt.Errorf("service: could not resolve incident: %w", err)
	}
	defer unlock()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to resolve a non-existent incident")
		return nil, fmt.Errorf("service: incident %s not found for resolve: %w", id, models.AsTransient("incidents.get", err))
	}

	incident := current.Clone()
	expected := incident.Version
	if err := lifecycle.Resolve(incident, resolvedBy, s.now().UTC()); err != nil {
		log.WithError(err).Warn("Resolve rejected by lifecycle")
		return nil, fmt.Errorf("service: could not resolve incident: %w", err)
	}

	if err := s.repo.Update(ctx, incident, expected); err != nil {
		log.WithError(err).Error("Failed to persist resolved incident")
		return nil, fmt.Errorf("service: could not resolve incident: %w", models.AsTransient("incidents.update", err))
	}

	invalidateCache(ctx, s.repo, id, log)
	publishEvent(ctx, s.publisher, webhook.EventIncidentResolved, resolvedBy, incident, log)

	log.Info("Incident resolved successfully")
	return incident, nil
}

// DeleteIncident удаляет инцидент без проверок состояния
func (s *incidentService) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	ctx, cancel := withIOTimeout(ctx, s.cfg)
	defer cancel()

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Timed out waiting for incident lock")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}
	defer unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", models.AsTransient("incidents.delete", err))
	}

	invalidateCache(ctx, s.repo, id, log)
	log.Info("Incident deleted successfully")
	return nil
}

// withIOTimeout ограничивает обращения к коллабораторам таймаутом из конфигурации
func withIOTimeout(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	if cfg == nil || cfg.IOTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, cfg.IOTimeout)
}

func invalidateCache(ctx context.Context, repo IncidentRepository, id uuid.UUID, log *logrus.Entry) {
	if err := repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
}

// publishEvent отправляет уведомление; ошибка доставки не отменяет уже записанное изменение
func publishEvent(ctx context.Context, publisher webhook.WebhookPublisher, typ webhook.EventType, person string, incident *models.Incident, log *logrus.Entry) {
	if publisher == nil {
		return
	}
	event := webhook.WebhookEvent{
		Type:      typ,
		Timestamp: time.Now().UTC(),
		Person:    person,
		Incidents: []*models.Incident{incident},
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}
}

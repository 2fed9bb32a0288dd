package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tanod_dispatch/internal/config"
	"github.com/shenikar/tanod_dispatch/internal/lifecycle"
	"github.com/shenikar/tanod_dispatch/internal/metrics"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/shenikar/tanod_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AssignmentAuditRepository - журнал назначений, хранит предыдущего исполнителя
type AssignmentAuditRepository interface {
	AppendAssignment(ctx context.Context, audit *models.AssignmentAudit) error
}

// AssignmentService назначает дежурного патрульного на инцидент
type AssignmentService interface {
	AssignTanod(ctx context.Context, incidentID uuid.UUID, personID string) (*models.Incident, error)
}

type assignmentService struct {
	incidents IncidentRepository
	duty      DutyService
	audit     AssignmentAuditRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	locks     *KeyedMutex
	now       func() time.Time
}

func NewAssignmentService(
	incidents IncidentRepository,
	duty DutyService,
	audit AssignmentAuditRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
	locks *KeyedMutex,
) AssignmentService {
	return &assignmentService{
		incidents: incidents,
		duty:      duty,
		audit:     audit,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		locks:     locks,
		now:       time.Now,
	}
}

// AssignTanod загружает инцидент, сверяет человека с сегодняшним списком дежурных,
// применяет переход автомата и сохраняет результат с проверкой версии.
func (s *assignmentService) AssignTanod(ctx context.Context, incidentID uuid.UUID, personID string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "AssignTanod",
		"incident_id": incidentID,
		"person_id":   personID,
	})

	incident, err := s.assign(ctx, incidentID, personID, log)
	metrics.AssignmentsTotal.WithLabelValues(metrics.OutcomeLabel(err)).Inc()
	return incident, err
}

func (s *assignmentService) assign(ctx context.Context, incidentID uuid.UUID, personID string, log *logrus.Entry) (*models.Incident, error) {
	if incidentID == uuid.Nil {
		return nil, &models.ValidationError{Field: "incident_id", Reason: "required"}
	}
	if personID == "" {
		return nil, &models.ValidationError{Field: "person_id", Reason: "required"}
	}

	ctx, cancel := withIOTimeout(ctx, s.cfg)
	defer cancel()

	unlock, err := s.locks.Lock(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Timed out waiting for incident lock")
		return nil, fmt.Errorf("service: could not assign incident: %w", err)
	}
	defer unlock()

	current, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Attempted to assign a non-existent incident")
		return nil, fmt.Errorf("service: incident %s not found for assignment: %w", incidentID, models.AsTransient("incidents.get", err))
	}

	// Список дежурных живёт только в пределах одного вызова
	roster, err := s.duty.Roster(ctx, time.Time{})
	if err != nil {
		log.WithError(err).Error("Failed to resolve duty roster")
		return nil, fmt.Errorf("service: could not resolve duty roster: %w", err)
	}

	incident := current.Clone()
	expected := incident.Version
	previous, err := lifecycle.Assign(incident, personID, roster)
	if err != nil {
		log.WithError(err).WithField("on_duty", roster.Persons()).Warn("Assignment rejected")
		return nil, fmt.Errorf("service: could not assign incident: %w", err)
	}

	if err := s.incidents.Update(ctx, incident, expected); err != nil {
		log.WithError(err).Error("Failed to persist assignment")
		return nil, fmt.Errorf("service: could not assign incident: %w", models.AsTransient("incidents.update", err))
	}

	audit := &models.AssignmentAudit{
		IncidentID:       incident.ID,
		PreviousAssignee: previous,
		Assignee:         personID,
		AssignedAt:       s.now().UTC(),
	}
	if err := s.audit.AppendAssignment(ctx, audit); err != nil {
		log.WithError(err).Error("Failed to append assignment audit")
	}

	invalidateCache(ctx, s.incidents, incident.ID, log)
	publishEvent(ctx, s.publisher, webhook.EventIncidentAssigned, personID, incident, log)

	if previous != nil && *previous != personID {
		log = log.WithField("previous_assignee", *previous)
	}
	log.Info("Incident assigned successfully")
	return incident, nil
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tanod_dispatch/internal/config"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/shenikar/tanod_dispatch/internal/service/mocks"
	"github.com/shenikar/tanod_dispatch/internal/webhook"
	webhook_mocks "github.com/shenikar/tanod_dispatch/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type assignmentMocks struct {
	incidents *mocks.MockIncidentRepository
	duty      *mocks.MockDutyService
	audit     *mocks.MockAssignmentAuditRepository
	publisher *webhook_mocks.MockWebhookPublisher
}

func newTestAssignmentService(t *testing.T) (*assignmentService, assignmentMocks) {
	ctrl := gomock.NewController(t)
	m := assignmentMocks{
		incidents: mocks.NewMockIncidentRepository(ctrl),
		duty:      mocks.NewMockDutyService(ctrl),
		audit:     mocks.NewMockAssignmentAuditRepository(ctrl),
		publisher: webhook_mocks.NewMockWebhookPublisher(ctrl),
	}

	service := NewAssignmentService(m.incidents, m.duty, m.audit, newTestLogger(), &config.Config{IOTimeout: time.Second}, m.publisher, NewKeyedMutex())
	s := service.(*assignmentService)
	s.now = func() time.Time { return fixedNow }
	return s, m
}

func roster(persons ...string) models.DutyRoster {
	r := models.DutyRoster{}
	for _, p := range persons {
		r = append(r, models.DutyRecord{Person: p, OnDutySince: fixedNow.Add(-time.Hour)})
	}
	return r
}

func TestAssignTanod_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAssignmentService(t)
	incidentID := uuid.New()

	// Ожидания
	m.incidents.EXPECT().GetByID(gomock.Any(), incidentID).Return(underReviewIncident(incidentID), nil).Times(1)
	m.duty.EXPECT().Roster(gomock.Any(), time.Time{}).Return(roster("Alice"), nil).Times(1)
	m.incidents.EXPECT().
		Update(gomock.Any(), gomock.Any(), 3).
		DoAndReturn(func(_ context.Context, inc *models.Incident, _ int) error {
			assert.Equal(t, models.StatusInProgress, inc.Status)
			assert.Equal(t, "Alice", *inc.AssignedTo)
			return nil
		}).Times(1)
	m.audit.EXPECT().
		AppendAssignment(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, audit *models.AssignmentAudit) {
			assert.Equal(t, incidentID, audit.IncidentID)
			assert.Nil(t, audit.PreviousAssignee)
			assert.Equal(t, "Alice", audit.Assignee)
			assert.Equal(t, fixedNow, audit.AssignedAt)
		}).Return(nil).Times(1)
	m.incidents.EXPECT().InvalidateIncidentCache(gomock.Any(), incidentID).Return(nil).Times(1)
	m.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventIncidentAssigned, event.Type)
			assert.Equal(t, "Alice", event.Person)
		}).Return(nil).Times(1)

	// Действие
	incident, err := service.AssignTanod(context.Background(), incidentID, "Alice")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, incident.Status)
	assert.Equal(t, "Alice", *incident.AssignedTo)
}

func TestAssignTanod_NotOnDuty(t *testing.T) {
	service, m := newTestAssignmentService(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().GetByID(gomock.Any(), incidentID).Return(underReviewIncident(incidentID), nil).Times(1)
	m.duty.EXPECT().Roster(gomock.Any(), gomock.Any()).Return(roster("Alice"), nil).Times(1)
	m.incidents.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // без мутаций
	m.audit.EXPECT().AppendAssignment(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.AssignTanod(context.Background(), incidentID, "Bob")

	var assignErr *models.AssignmentError
	require.True(t, errors.As(err, &assignErr))
	assert.Equal(t, models.ReasonNotOnDuty, assignErr.Reason)
	assert.Equal(t, "Bob", assignErr.Person)
}

func TestAssignTanod_Reassignment_AuditsPreviousAssignee(t *testing.T) {
	service, m := newTestAssignmentService(t)
	incidentID := uuid.New()
	existing := underReviewIncident(incidentID)
	alice := "Alice"
	existing.Status = models.StatusInProgress
	existing.AssignedTo = &alice

	m.incidents.EXPECT().GetByID(gomock.Any(), incidentID).Return(existing, nil).Times(1)
	m.duty.EXPECT().Roster(gomock.Any(), gomock.Any()).Return(roster("Alice", "Bob"), nil).Times(1)
	m.incidents.EXPECT().Update(gomock.Any(), gomock.Any(), 3).Return(nil).Times(1)
	m.audit.EXPECT().
		AppendAssignment(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, audit *models.AssignmentAudit) {
			require.NotNil(t, audit.PreviousAssignee)
			assert.Equal(t, "Alice", *audit.PreviousAssignee)
			assert.Equal(t, "Bob", audit.Assignee)
		}).Return(nil).Times(1)
	m.incidents.EXPECT().InvalidateIncidentCache(gomock.Any(), incidentID).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	incident, err := service.AssignTanod(context.Background(), incidentID, "Bob")

	require.NoError(t, err)
	assert.Equal(t, "Bob", *incident.AssignedTo)
}

func TestAssignTanod_ResolvedIncident(t *testing.T) {
	service, m := newTestAssignmentService(t)
	incidentID := uuid.New()
	existing := underReviewIncident(incidentID)
	by := "Admin"
	at := fixedNow
	existing.Status = models.StatusResolved
	existing.ResolvedBy = &by
	existing.ResolvedAt = &at

	m.incidents.EXPECT().GetByID(gomock.Any(), incidentID).Return(existing, nil).Times(1)
	m.duty.EXPECT().Roster(gomock.Any(), gomock.Any()).Return(roster("Alice"), nil).Times(1)
	m.incidents.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.AssignTanod(context.Background(), incidentID, "Alice")

	var conflict *models.ConflictError
	require.True(t, errors.As(err, &conflict))
}

func TestAssignTanod_ValidationErrors(t *testing.T) {
	service, m := newTestAssignmentService(t)

	m.incidents.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.AssignTanod(context.Background(), uuid.Nil, "Alice")
	var validation *models.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "incident_id", validation.Field)

	_, err = service.AssignTanod(context.Background(), uuid.New(), "")
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "person_id", validation.Field)
}

func TestAssignTanod_IncidentNotFound(t *testing.T) {
	service, m := newTestAssignmentService(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().GetByID(gomock.Any(), incidentID).
		Return(nil, &models.NotFoundError{Entity: "incident", ID: incidentID.String()}).Times(1)
	m.duty.EXPECT().Roster(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.AssignTanod(context.Background(), incidentID, "Alice")

	var notFound *models.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestAssignTanod_RosterUnavailable(t *testing.T) {
	service, m := newTestAssignmentService(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().GetByID(gomock.Any(), incidentID).Return(underReviewIncident(incidentID), nil).Times(1)
	m.duty.EXPECT().Roster(gomock.Any(), gomock.Any()).
		Return(nil, &models.TransientIOError{Op: "attendance.list", Err: context.DeadlineExceeded}).Times(1)

	_, err := service.AssignTanod(context.Background(), incidentID, "Alice")

	var transient *models.TransientIOError
	require.True(t, errors.As(err, &transient))
}

func TestAssignTanod_AuditFailureIsNotFatal(t *testing.T) {
	service, m := newTestAssignmentService(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().GetByID(gomock.Any(), incidentID).Return(underReviewIncident(incidentID), nil).Times(1)
	m.duty.EXPECT().Roster(gomock.Any(), gomock.Any()).Return(roster("Alice"), nil).Times(1)
	m.incidents.EXPECT().Update(gomock.Any(), gomock.Any(), 3).Return(nil).Times(1)
	m.audit.EXPECT().AppendAssignment(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")).Times(1)
	m.incidents.EXPECT().InvalidateIncidentCache(gomock.Any(), incidentID).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	incident, err := service.AssignTanod(context.Background(), incidentID, "Alice")

	require.NoError(t, err)
	assert.Equal(t, "Alice", *incident.AssignedTo)
}

func TestAssignTanod_SerializesSameIncident(t *testing.T) {
	service, m := newTestAssignmentService(t)
	incidentID := uuid.New()
	version := 1

	// Хранилище в памяти: update проходит только при совпадении версии
	m.incidents.EXPECT().GetByID(gomock.Any(), incidentID).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.Incident, error) {
			inc := underReviewIncident(id)
			inc.Version = version
			return inc, nil
		}).Times(2)
	m.duty.EXPECT().Roster(gomock.Any(), gomock.Any()).Return(roster("Alice", "Bob"), nil).Times(2)
	m.incidents.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident, expected int) error {
			if expected != version {
				return &models.ConflictError{IncidentID: inc.ID, Reason: "stale version"}
			}
			version++
			inc.Version = version
			return nil
		}).Times(2)
	m.audit.EXPECT().AppendAssignment(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.incidents.EXPECT().InvalidateIncidentCache(gomock.Any(), incidentID).Return(nil).Times(2)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	errs := make(chan error, 2)
	for _, person := range []string{"Alice", "Bob"} {
		go func(p string) {
			_, err := service.AssignTanod(context.Background(), incidentID, p)
			errs <- err
		}(person)
	}

	// Блокировка по id исключает гонку: обе операции успешны, версия выросла дважды
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)
	assert.Equal(t, 3, version)
	assert.Equal(t, 0, service.locks.size())
}

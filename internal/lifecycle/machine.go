// Package lifecycle содержит конечный автомат статусов инцидента.
// Функции пакета не обращаются к хранилищам: они проверяют переход и
// мутируют переданный инцидент только при успехе.
package lifecycle

import (
	"time"

	"github.com/shenikar/tanod_dispatch/internal/models"
)

// transitions - исчерпывающая таблица допустимых переходов
var transitions = map[models.Status]map[models.Status]bool{
	models.StatusUnderReview: {
		models.StatusInProgress: true,
		models.StatusResolved:   true,
	},
	models.StatusInProgress: {
		models.StatusInProgress: true, // переназначение
		models.StatusResolved:   true,
	},
	models.StatusResolved: {},
}

// CanTransition сообщает, разрешён ли переход from -> to
func CanTransition(from, to models.Status) bool {
	return transitions[from][to]
}

// Roster - множество людей, которым можно назначить инцидент
type Roster interface {
	Contains(person string) bool
}

// Assign назначает дежурного на инцидент и возвращает предыдущего исполнителя.
func Assign(incident *models.Incident, person string, roster Roster) (*string, error) {
	if person == "" {
		return nil, &models.AssignmentError{IncidentID: incident.ID, Reason: models.ReasonMissingPerson}
	}
	if !CanTransition(incident.Status, models.StatusInProgress) {
		return nil, &models.ConflictError{
			IncidentID: incident.ID,
			Status:     incident.Status,
			Reason:     "cannot assign an incident in status " + string(incident.Status),
		}
	}
	if roster == nil || !roster.Contains(person) {
		return nil, &models.AssignmentError{IncidentID: incident.ID, Person: person, Reason: models.ReasonNotOnDuty}
	}

	previous := incident.AssignedTo
	assignee := person
	incident.Status = models.StatusInProgress
	incident.AssignedTo = &assignee
	return previous, nil
}

// Resolve закрывает инцидент. Повторное закрытие возвращает ConflictError
// и не перезаписывает resolved_at.
func Resolve(incident *models.Incident, resolvedBy string, now time.Time) error {
	if resolvedBy == "" {
		return &models.ValidationError{Field: "resolved_by", Reason: "required"}
	}
	if incident.Status == models.StatusResolved {
		return &models.ConflictError{IncidentID: incident.ID, Status: incident.Status, Reason: "already resolved"}
	}
	if !CanTransition(incident.Status, models.StatusResolved) {
		return &models.ConflictError{
			IncidentID: incident.ID,
			Status:     incident.Status,
			Reason:     "cannot resolve an incident in status " + string(incident.Status),
		}
	}

	// Часы сервера могут отставать от времени приёма
	if now.Before(incident.CreatedAt) {
		now = incident.CreatedAt
	}
	by := resolvedBy
	at := now
	incident.Status = models.StatusResolved
	incident.ResolvedBy = &by
	incident.ResolvedAt = &at
	return nil
}

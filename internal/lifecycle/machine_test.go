package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIncident() *models.Incident {
	return &models.Incident{
		ID:        uuid.New(),
		Type:      "Accident",
		Status:    models.StatusUnderReview,
		CreatedAt: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
	}
}

func rosterOf(persons ...string) models.DutyRoster {
	roster := models.DutyRoster{}
	for _, p := range persons {
		roster = append(roster, models.DutyRecord{Person: p})
	}
	return roster
}

func TestCanTransition_Table(t *testing.T) {
	cases := []struct {
		from, to models.Status
		allowed  bool
	}{
		{models.StatusUnderReview, models.StatusUnderReview, false},
		{models.StatusUnderReview, models.StatusInProgress, true},
		{models.StatusUnderReview, models.StatusResolved, true},
		{models.StatusInProgress, models.StatusUnderReview, false},
		{models.StatusInProgress, models.StatusInProgress, true},
		{models.StatusInProgress, models.StatusResolved, true},
		{models.StatusResolved, models.StatusUnderReview, false},
		{models.StatusResolved, models.StatusInProgress, false},
		{models.StatusResolved, models.StatusResolved, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransition_NeverRegresses(t *testing.T) {
	for _, from := range models.Statuses() {
		for _, to := range models.Statuses() {
			if CanTransition(from, to) {
				assert.GreaterOrEqual(t, to.Rank(), from.Rank())
			}
		}
	}
}

func TestAssign_Success(t *testing.T) {
	incident := newIncident()

	previous, err := Assign(incident, "Alice", rosterOf("Alice"))

	require.NoError(t, err)
	assert.Nil(t, previous)
	assert.Equal(t, models.StatusInProgress, incident.Status)
	require.NotNil(t, incident.AssignedTo)
	assert.Equal(t, "Alice", *incident.AssignedTo)
}

func TestAssign_NotOnDuty(t *testing.T) {
	incident := newIncident()

	_, err := Assign(incident, "Bob", rosterOf("Alice"))

	var assignErr *models.AssignmentError
	require.True(t, errors.As(err, &assignErr))
	assert.Equal(t, models.ReasonNotOnDuty, assignErr.Reason)
	assert.Equal(t, models.StatusUnderReview, incident.Status)
	assert.Nil(t, incident.AssignedTo)
}

func TestAssign_EmptyPerson(t *testing.T) {
	incident := newIncident()

	_, err := Assign(incident, "", rosterOf("Alice"))

	var assignErr *models.AssignmentError
	require.True(t, errors.As(err, &assignErr))
	assert.Equal(t, models.ReasonMissingPerson, assignErr.Reason)
	assert.Nil(t, incident.AssignedTo)
}

func TestAssign_Reassignment(t *testing.T) {
	incident := newIncident()
	_, err := Assign(incident, "Alice", rosterOf("Alice", "Bob"))
	require.NoError(t, err)

	previous, err := Assign(incident, "Bob", rosterOf("Alice", "Bob"))

	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, "Alice", *previous)
	assert.Equal(t, "Bob", *incident.AssignedTo)
	assert.Equal(t, models.StatusInProgress, incident.Status)
}

func TestAssign_ResolvedIsConflict(t *testing.T) {
	incident := newIncident()
	require.NoError(t, Resolve(incident, "Admin", incident.CreatedAt.Add(time.Hour)))

	_, err := Assign(incident, "Alice", rosterOf("Alice"))

	var conflict *models.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, models.StatusResolved, incident.Status)
	assert.Nil(t, incident.AssignedTo)
}

func TestResolve_SetsFields(t *testing.T) {
	incident := newIncident()
	now := incident.CreatedAt.Add(2 * time.Hour)

	err := Resolve(incident, "Admin", now)

	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, incident.Status)
	require.NotNil(t, incident.ResolvedBy)
	assert.Equal(t, "Admin", *incident.ResolvedBy)
	require.NotNil(t, incident.ResolvedAt)
	assert.False(t, incident.ResolvedAt.Before(incident.CreatedAt))
	assert.NoError(t, incident.Validate())
}

func TestResolve_Twice(t *testing.T) {
	incident := newIncident()
	first := incident.CreatedAt.Add(time.Hour)
	require.NoError(t, Resolve(incident, "Admin", first))

	err := Resolve(incident, "Admin", first.Add(time.Hour))

	var conflict *models.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, first, *incident.ResolvedAt)
}

func TestResolve_ClockBehindCreatedAt(t *testing.T) {
	incident := newIncident()

	err := Resolve(incident, "Admin", incident.CreatedAt.Add(-time.Minute))

	require.NoError(t, err)
	assert.Equal(t, incident.CreatedAt, *incident.ResolvedAt)
}

func TestResolve_EmptyResolver(t *testing.T) {
	incident := newIncident()

	err := Resolve(incident, "", time.Now())

	var validation *models.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, models.StatusUnderReview, incident.Status)
}

func TestOperationSequences_StatusNeverRegresses(t *testing.T) {
	roster := rosterOf("Alice", "Bob")
	ops := []func(*models.Incident){
		func(i *models.Incident) { _, _ = Assign(i, "Alice", roster) },
		func(i *models.Incident) { _, _ = Assign(i, "Bob", roster) },
		func(i *models.Incident) { _, _ = Assign(i, "Carol", roster) },
		func(i *models.Incident) { _ = Resolve(i, "Admin", i.CreatedAt.Add(time.Hour)) },
	}

	// Перебираем все последовательности длины 3
	for a := range ops {
		for b := range ops {
			for c := range ops {
				incident := newIncident()
				rank := incident.Status.Rank()
				for _, op := range []int{a, b, c} {
					ops[op](incident)
					require.GreaterOrEqual(t, incident.Status.Rank(), rank)
					rank = incident.Status.Rank()
					require.NoError(t, incident.Validate())
				}
			}
		}
	}
}

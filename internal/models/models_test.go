package models

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses() {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("closed")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)
}

func TestStatus_RankIsMonotonic(t *testing.T) {
	assert.Less(t, StatusUnderReview.Rank(), StatusInProgress.Rank())
	assert.Less(t, StatusInProgress.Rank(), StatusResolved.Rank())
	assert.Equal(t, -1, Status("bogus").Rank())
}

func TestIncident_Validate(t *testing.T) {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	resolvedAt := created.Add(time.Hour)
	before := created.Add(-time.Hour)

	tests := []struct {
		name      string
		incident  Incident
		wantField string
	}{
		{
			name:     "under review without assignee",
			incident: Incident{Status: StatusUnderReview, CreatedAt: created},
		},
		{
			name:     "in progress with assignee",
			incident: Incident{Status: StatusInProgress, AssignedTo: strPtr("A"), CreatedAt: created},
		},
		{
			name:     "resolved with both fields",
			incident: Incident{Status: StatusResolved, ResolvedBy: strPtr("A"), ResolvedAt: &resolvedAt, CreatedAt: created},
		},
		{
			name:      "unknown status",
			incident:  Incident{Status: "closed"},
			wantField: "status",
		},
		{
			name:      "assignee while under review",
			incident:  Incident{Status: StatusUnderReview, AssignedTo: strPtr("A")},
			wantField: "assigned_to",
		},
		{
			name:      "resolved without resolver",
			incident:  Incident{Status: StatusResolved, ResolvedAt: &resolvedAt, CreatedAt: created},
			wantField: "resolved_by",
		},
		{
			name:      "resolution fields on open incident",
			incident:  Incident{Status: StatusInProgress, ResolvedBy: strPtr("A"), ResolvedAt: &resolvedAt},
			wantField: "resolved_by",
		},
		{
			name:      "resolved before creation",
			incident:  Incident{Status: StatusResolved, ResolvedBy: strPtr("A"), ResolvedAt: &before, CreatedAt: created},
			wantField: "resolved_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.incident.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestIncident_CloneIsDeep(t *testing.T) {
	resolvedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	orig := &Incident{
		ID:         uuid.New(),
		Status:     StatusResolved,
		AssignedTo: strPtr("A"),
		ResolvedBy: strPtr("B"),
		ResolvedAt: &resolvedAt,
		Version:    4,
	}

	c := orig.Clone()
	require.Equal(t, orig, c)

	*c.AssignedTo = "X"
	*c.ResolvedBy = "Y"
	*c.ResolvedAt = resolvedAt.Add(time.Hour)
	c.Version = 5

	assert.Equal(t, "A", *orig.AssignedTo)
	assert.Equal(t, "B", *orig.ResolvedBy)
	assert.Equal(t, resolvedAt, *orig.ResolvedAt)
	assert.Equal(t, 4, orig.Version)

	var nilIncident *Incident
	assert.Nil(t, nilIncident.Clone())
}

func TestAsTransient(t *testing.T) {
	assert.NoError(t, AsTransient("op", nil))

	raw := errors.New("connection refused")
	err := AsTransient("incidents.list", raw)
	var te *TransientIOError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "incidents.list", te.Op)
	assert.ErrorIs(t, err, raw)

	// Типизированные ошибки не оборачиваются повторно
	nf := &NotFoundError{Entity: "incident", ID: "1"}
	assert.Same(t, nf, AsTransient("op", nf))

	wrapped := fmt.Errorf("repo: %w", &ConflictError{Reason: "stale"})
	assert.Equal(t, wrapped, AsTransient("op", wrapped))
}

func TestIsTyped(t *testing.T) {
	assert.True(t, IsTyped(&ValidationError{}))
	assert.True(t, IsTyped(&AssignmentError{}))
	assert.True(t, IsTyped(&ConflictError{}))
	assert.True(t, IsTyped(&NotFoundError{}))
	assert.True(t, IsTyped(&TransientIOError{}))
	assert.False(t, IsTyped(errors.New("plain")))
}

func TestDutyRoster_Lookup(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	roster := DutyRoster{{Person: "Alice", OnDutySince: t1}, {Person: "Bob", OnDutySince: t1}}

	assert.True(t, roster.Contains("Bob"))
	assert.False(t, roster.Contains("Carol"))

	rec, ok := roster.Find("Alice")
	require.True(t, ok)
	assert.Equal(t, t1, rec.OnDutySince)

	assert.Equal(t, []string{"Alice", "Bob"}, roster.Persons())
	assert.Empty(t, DutyRoster(nil).Persons())
}

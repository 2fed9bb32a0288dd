package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeLabel(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{&models.ValidationError{Field: "person_id"}, "validation"},
		{&models.AssignmentError{Reason: models.ReasonNotOnDuty}, "assignment"},
		{fmt.Errorf("service: %w", &models.ConflictError{Reason: "resolved"}), "conflict"},
		{&models.NotFoundError{Entity: "incident"}, "not_found"},
		{models.AsTransient("attendance.list", errors.New("timeout")), "transient"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutcomeLabel(tt.err))
	}
}

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})

	before := testutil.ToFloat64(AssignmentsTotal.WithLabelValues("conflict"))
	AssignmentsTotal.WithLabelValues(OutcomeLabel(&models.ConflictError{})).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(AssignmentsTotal.WithLabelValues("conflict")))
}

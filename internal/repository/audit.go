package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/shenikar/tanod_dispatch/internal/service"
)

type AssignmentAuditRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentAuditRepository(db *pgxpool.Pool) service.AssignmentAuditRepository {
	return &AssignmentAuditRepository{db: db}
}

// AppendAssignment добавляет запись в журнал назначений
func (r *AssignmentAuditRepository) AppendAssignment(ctx context.Context, audit *models.AssignmentAudit) error {
	query := `
		INSERT INTO assignment_audit (incident_id, previous_assignee, assignee, assigned_at)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		audit.IncidentID,
		audit.PreviousAssignee,
		audit.Assignee,
		audit.AssignedAt,
	).Scan(&audit.ID)
	if err != nil {
		return fmt.Errorf("failed to append assignment audit: %w", err)
	}
	return nil
}

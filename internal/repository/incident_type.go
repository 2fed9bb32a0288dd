package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/shenikar/tanod_dispatch/internal/service"
)

type IncidentTypeRepository struct {
	db *pgxpool.Pool
}

func NewIncidentTypeRepository(db *pgxpool.Pool) service.IncidentTypeRepository {
	return &IncidentTypeRepository{db: db}
}

// ListTypes возвращает реестр в порядке регистрации
func (r *IncidentTypeRepository) ListTypes(ctx context.Context) ([]*models.IncidentTypeConfig, error) {
	rows, err := r.db.Query(ctx, `SELECT name, icon, color FROM incident_types ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident types: %w", err)
	}
	defer rows.Close()

	types := make([]*models.IncidentTypeConfig, 0)
	for rows.Next() {
		t := &models.IncidentTypeConfig{}
		if err := rows.Scan(&t.Name, &t.Icon, &t.Color); err != nil {
			return nil, fmt.Errorf("failed to scan incident type row: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incident types iteration: %w", err)
	}
	return types, nil
}

func (r *IncidentTypeRepository) AddType(ctx context.Context, cfg *models.IncidentTypeConfig) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO incident_types (name, icon, color) VALUES ($1, $2, $3);`,
		cfg.Name, cfg.Icon, cfg.Color,
	)
	if err != nil {
		return mapTypeInsertError(cfg.Name, err)
	}
	return nil
}

func mapTypeInsertError(name string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return &models.ConflictError{Reason: fmt.Sprintf("incident type %q already exists", name)}
	}
	return fmt.Errorf("failed to add incident type: %w", err)
}

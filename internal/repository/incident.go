package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/shenikar/tanod_dispatch/internal/service"
)

const incidentColumns = `
	id,
	type,
	latitude,
	longitude,
	address,
	reporter,
	status,
	assigned_to,
	resolved_by,
	resolved_at,
	media_ref,
	created_at,
	updated_at,
	version`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var status string
	err := row.Scan(
		&incident.ID,
		&incident.Type,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Address,
		&incident.Reporter,
		&status,
		&incident.AssignedTo,
		&incident.ResolvedBy,
		&incident.ResolvedAt,
		&incident.MediaRef,
		&incident.CreatedAt,
		&incident.UpdatedAt,
		&incident.Version,
	)
	if err != nil {
		return nil, err
	}

	// Неизвестный статус в строке реестра - ошибка данных, а не новое состояние
	incident.Status, err = models.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("repository: incident %s: %w", incident.ID, err)
	}
	return incident, nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "incident", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// Update сохраняет изменяемые поля инцидента, если версия в БД совпадает с expectedVersion.
// При успехе incident получает новую версию и updated_at.
func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident, expectedVersion int) error {
	if err := incident.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE incidents SET
			status = $1,
			assigned_to = $2,
			resolved_by = $3,
			resolved_at = $4,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Status,
		incident.AssignedTo,
		incident.ResolvedBy,
		incident.ResolvedAt,
		incident.ID,
		expectedVersion,
	).Scan(&incident.Version, &incident.UpdatedAt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to update incident: %w", err)
	}

	// Ни одной строки: либо инцидента нет, либо версию уже сдвинул другой процесс
	var current models.Status
	err = r.db.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1;`, incident.ID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.NotFoundError{Entity: "incident", ID: incident.ID.String()}
		}
		return fmt.Errorf("failed to check incident after stale update: %w", err)
	}
	return &models.ConflictError{IncidentID: incident.ID, Status: current, Reason: "incident was modified concurrently"}
}

// Delete удаляет инцидент без проверки статуса; журнал назначений удаляется каскадно
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return &models.NotFoundError{Entity: "incident", ID: id.String()}
	}
	return nil
}

// ListIncidents возвращает все инциденты, новые первыми
func (r *IncidentRepository) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		ORDER BY created_at DESC, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncidentFromCache пытается получить инцидент из Redis; промах - (nil, nil)
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis на INCIDENT_CACHE_TTL
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

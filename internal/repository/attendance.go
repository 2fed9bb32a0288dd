package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/shenikar/tanod_dispatch/internal/service"
)

// AttendanceRepository читает журнал отметок; записи ведёт внешний процесс
type AttendanceRepository struct {
	db *pgxpool.Pool
}

func NewAttendanceRepository(db *pgxpool.Pool) service.AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) ListAttendance(ctx context.Context) ([]*models.AttendanceLogEntry, error) {
	query := `
		SELECT
			id,
			person,
			time_in,
			time_out,
			location,
			log_date
		FROM attendance_logs
		ORDER BY time_in, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance log: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.AttendanceLogEntry, 0)
	for rows.Next() {
		entry := &models.AttendanceLogEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.Person,
			&entry.TimeIn,
			&entry.TimeOut,
			&entry.Location,
			&entry.LogDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error attendance iteration: %w", err)
	}
	return entries, nil
}

package poller

import (
	"context"

	"github.com/shenikar/tanod_dispatch/internal/models"
)

// IncidentSource - чтение полного списка инцидентов из реестра
type IncidentSource interface {
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
}

// AttendanceSource - чтение журнала прихода/ухода
type AttendanceSource interface {
	ListAttendance(ctx context.Context) ([]*models.AttendanceLogEntry, error)
}

// TypeSource - чтение реестра типов инцидентов
type TypeSource interface {
	ListTypes(ctx context.Context) ([]*models.IncidentTypeConfig, error)
}

// Notifier получает инциденты, впервые увиденные при опросе
type Notifier interface {
	NotifyNewIncidents(ctx context.Context, incidents []*models.Incident) error
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Status - закрытый набор состояний жизненного цикла инцидента
type Status string

const (
	StatusUnderReview Status = "under_review"
	StatusInProgress  Status = "in_progress"
	StatusResolved    Status = "resolved"
)

// Statuses возвращает все известные статусы в порядке жизненного цикла
func Statuses() []Status {
	return []Status{StatusUnderReview, StatusInProgress, StatusResolved}
}

// ParseStatus разбирает строку статуса, отклоняя всё, что не входит в перечисление
func ParseStatus(raw string) (Status, error) {
	for _, s := range Statuses() {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", &ValidationError{Field: "status", Reason: "unknown status " + raw}
}

// Rank возвращает порядковый номер статуса; статус никогда не уменьшается
func (s Status) Rank() int {
	switch s {
	case StatusUnderReview:
		return 0
	case StatusInProgress:
		return 1
	case StatusResolved:
		return 2
	}
	return -1
}

func (s Status) String() string {
	return string(s)
}

// Incident - инцидент, зарегистрированный внешним процессом приёма
type Incident struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Address    string     `json:"address"`
	Reporter   string     `json:"reporter"`
	Status     Status     `json:"status"`
	AssignedTo *string    `json:"assigned_to,omitempty"`
	ResolvedBy *string    `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	MediaRef   string     `json:"media_ref,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Version    int        `json:"version"`
}

// Clone возвращает глубокую копию инцидента, чтобы мутации не задевали снапшоты и кеш
func (i *Incident) Clone() *Incident {
	if i == nil {
		return nil
	}
	c := *i
	if i.AssignedTo != nil {
		v := *i.AssignedTo
		c.AssignedTo = &v
	}
	if i.ResolvedBy != nil {
		v := *i.ResolvedBy
		c.ResolvedBy = &v
	}
	if i.ResolvedAt != nil {
		v := *i.ResolvedAt
		c.ResolvedAt = &v
	}
	return &c
}

// Validate проверяет инварианты записи инцидента
func (i *Incident) Validate() error {
	if i.Status.Rank() < 0 {
		return &ValidationError{Field: "status", Reason: "unknown status " + string(i.Status)}
	}
	if i.AssignedTo != nil && i.Status == StatusUnderReview {
		return &ValidationError{Field: "assigned_to", Reason: "set while incident is under review"}
	}
	resolved := i.Status == StatusResolved
	if (i.ResolvedBy != nil) != resolved || (i.ResolvedAt != nil) != resolved {
		return &ValidationError{Field: "resolved_by", Reason: "resolution fields must be set exactly when resolved"}
	}
	if i.ResolvedAt != nil && i.ResolvedAt.Before(i.CreatedAt) {
		return &ValidationError{Field: "resolved_at", Reason: "precedes created_at"}
	}
	return nil
}

// AssignmentAudit - запись журнала назначений; хранит предыдущего исполнителя
type AssignmentAudit struct {
	ID               int64     `json:"id"`
	IncidentID       uuid.UUID `json:"incident_id"`
	PreviousAssignee *string   `json:"previous_assignee,omitempty"`
	Assignee         string    `json:"assignee"`
	AssignedAt       time.Time `json:"assigned_at"`
}

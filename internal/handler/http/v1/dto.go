package v1

import (
	"time"

	"github.com/google/uuid"
)

// AssignRequest DTO для назначения патрульного на инцидент
// @Description DTO для назначения патрульного на инцидент
type AssignRequest struct {
	PersonID string `json:"person_id" validate:"required,max=128"`
}

// ResolveRequest DTO для закрытия инцидента
// @Description DTO для закрытия инцидента
type ResolveRequest struct {
	ResolvedBy string `json:"resolved_by" validate:"required,max=128"`
}

// IncidentTypeRequest DTO для регистрации типа инцидента
// @Description DTO для регистрации типа инцидента
type IncidentTypeRequest struct {
	Name  string `json:"name" validate:"required,max=64"`
	Icon  string `json:"icon,omitempty" validate:"omitempty,max=64"`
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor,len=7"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Address    string     `json:"address"`
	Reporter   string     `json:"reporter"`
	Status     string     `json:"status"`
	AssignedTo *string    `json:"assigned_to,omitempty"`
	ResolvedBy *string    `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	MediaRef   string     `json:"media_ref,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Version    int        `json:"version"`
}

// DutyRecordResponse - один дежурный
type DutyRecordResponse struct {
	Person      string    `json:"person"`
	OnDutySince time.Time `json:"on_duty_since"`
}

// DutyRosterResponse DTO со списком дежурных на дату
// @Description DTO со списком дежурных на дату
type DutyRosterResponse struct {
	Date   string                `json:"date"`
	OnDuty []*DutyRecordResponse `json:"on_duty"`
}

// DutyStatusResponse DTO со статусом дежурства одного человека
// @Description DTO со статусом дежурства одного человека
type DutyStatusResponse struct {
	Person string     `json:"person"`
	OnDuty bool       `json:"on_duty"`
	Badge  string     `json:"badge"`
	Since  *time.Time `json:"since,omitempty"`
}

// TypeCountsResponse DTO со счётчиками по типам
// @Description DTO со счётчиками по типам
type TypeCountsResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// MonthBucketResponse - одна корзина помесячного графика
type MonthBucketResponse struct {
	Month  string         `json:"month"`
	Label  string         `json:"label"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// MonthlySeriesResponse DTO с помесячной статистикой
// @Description DTO с помесячной статистикой за 12 месяцев
type MonthlySeriesResponse struct {
	AsOf   string                 `json:"as_of"`
	Months []*MonthBucketResponse `json:"months"`
}

// IncidentTypeResponse DTO записи реестра типов
// @Description DTO записи реестра типов
type IncidentTypeResponse struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

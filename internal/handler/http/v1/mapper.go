package v1

import (
	"time"

	"github.com/shenikar/tanod_dispatch/internal/models"
)

const (
	BadgeOnDuty  = "On Duty"
	BadgeOffDuty = "Off Duty"
)

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:         model.ID,
		Type:       model.Type,
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		Address:    model.Address,
		Reporter:   model.Reporter,
		Status:     model.Status.String(),
		AssignedTo: model.AssignedTo,
		ResolvedBy: model.ResolvedBy,
		ResolvedAt: model.ResolvedAt,
		MediaRef:   model.MediaRef,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
		Version:    model.Version,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func RosterToResponse(date time.Time, roster models.DutyRoster) *DutyRosterResponse {
	resp := &DutyRosterResponse{
		Date:   date.Format(time.DateOnly),
		OnDuty: make([]*DutyRecordResponse, len(roster)),
	}
	for i, rec := range roster {
		resp.OnDuty[i] = &DutyRecordResponse{Person: rec.Person, OnDutySince: rec.OnDutySince}
	}
	return resp
}

// DutyStatusToResponse строит бейдж "On Duty"/"Off Duty"; rec == nil означает "не на дежурстве"
func DutyStatusToResponse(person string, rec *models.DutyRecord) *DutyStatusResponse {
	if rec == nil {
		return &DutyStatusResponse{Person: person, Badge: BadgeOffDuty}
	}
	since := rec.OnDutySince
	return &DutyStatusResponse{Person: person, OnDuty: true, Badge: BadgeOnDuty, Since: &since}
}

func TypeCountsToResponse(counts map[string]int) *TypeCountsResponse {
	total := 0
	for _, n := range counts {
		total += n
	}
	return &TypeCountsResponse{Counts: counts, Total: total}
}

func SeriesToResponse(asOf time.Time, buckets []models.MonthBucket) *MonthlySeriesResponse {
	resp := &MonthlySeriesResponse{
		AsOf:   asOf.Format(time.DateOnly),
		Months: make([]*MonthBucketResponse, len(buckets)),
	}
	for i, b := range buckets {
		resp.Months[i] = &MonthBucketResponse{
			Month:  b.Start.Format("2006-01"),
			Label:  b.Label,
			Counts: b.Counts,
			Total:  b.Total,
		}
	}
	return resp
}

func IncidentTypesToResponse(types []*models.IncidentTypeConfig) []*IncidentTypeResponse {
	resp := make([]*IncidentTypeResponse, len(types))
	for i, t := range types {
		resp[i] = &IncidentTypeResponse{Name: t.Name, Icon: t.Icon, Color: t.Color}
	}
	return resp
}

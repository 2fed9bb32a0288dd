package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/tanod_dispatch/internal/config"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/shenikar/tanod_dispatch/internal/poller"
	"github.com/shenikar/tanod_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

// SyncStatusProvider отдаёт индикатор свежести данных фонового опроса
type SyncStatusProvider interface {
	Status() poller.Status
}

type Handler struct {
	incidentService   service.IncidentService
	assignmentService service.AssignmentService
	dutyService       service.DutyService
	analyticsService  service.AnalyticsService
	syncStatus        SyncStatusProvider
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
	now               func() time.Time
}

func NewHandler(
	incidentService service.IncidentService,
	assignmentService service.AssignmentService,
	dutyService service.DutyService,
	analyticsService service.AnalyticsService,
	syncStatus SyncStatusProvider,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:   incidentService,
		assignmentService: assignmentService,
		dutyService:       dutyService,
		analyticsService:  analyticsService,
		syncStatus:        syncStatus,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
		now:               time.Now,
	}
}

// parseDate разбирает YYYY-MM-DD в часовом поясе дежурств; пустое значение - сегодня
func (h *Handler) parseDate(raw string) (time.Time, error) {
	loc := h.cfg.Location()
	if raw == "" {
		return h.now().In(loc), nil
	}
	date, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return time.Time{}, &models.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	return date, nil
}

func (h *Handler) parseIncidentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return uuid.Nil, false
	}
	return id, true
}

// bindAndValidate читает JSON тела и проверяет теги validate
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Get a list of incidents
// @Description Get the full incident collection, newest first.
// @Tags Incidents
// @Produce json
// @Success 200 {array} IncidentResponse
// @Failure 503 {object} map[string]string "Incident registry unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := h.parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Assign an on-duty tanod to an incident
// @Description Assign a person who is currently on duty. Moves the incident to in_progress. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param assignment body AssignRequest true "Assignment request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already resolved or modified concurrently"
// @Failure 422 {object} map[string]string "Person is not on duty"
// @Failure 503 {object} map[string]string "Collaborator unavailable"
// @Router /incidents/{id}/assign [post]
func (h *Handler) assignIncident(c *gin.Context) {
	id, ok := h.parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "assignIncident").WithField("id", id)

	var input AssignRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	incident, err := h.assignmentService.AssignTanod(c.Request.Context(), id, input.PersonID)
	if err != nil {
		respondError(c, log.WithField("person_id", input.PersonID), err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Resolve an incident
// @Description Mark an incident as resolved. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param resolution body ResolveRequest true "Resolve request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Already resolved"
// @Failure 503 {object} map[string]string "Collaborator unavailable"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, ok := h.parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	var input ResolveRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	incident, err := h.incidentService.ResolveIncident(c.Request.Context(), id, input.ResolvedBy)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Delete an incident
// @Description Delete an incident by its ID regardless of status. Requires API key.
// @Tags Incidents
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := h.parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get duty roster
// @Description Persons with an open attendance entry on the given date.
// @Tags Duty
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} DutyRosterResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 503 {object} map[string]string "Attendance log unavailable"
// @Router /duty [get]
func (h *Handler) getRoster(c *gin.Context) {
	log := h.logger.WithField("method", "getRoster")

	date, err := h.parseDate(c.Query("date"))
	if err != nil {
		respondError(c, log, err)
		return
	}

	roster, err := h.dutyService.Roster(c.Request.Context(), date)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RosterToResponse(date, roster))
}

// @Summary Get duty status of a person
// @Description Returns the On Duty / Off Duty badge for a person.
// @Tags Duty
// @Produce json
// @Param person path string true "Person ID"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} DutyStatusResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 503 {object} map[string]string "Attendance log unavailable"
// @Router /duty/{person} [get]
func (h *Handler) getDutyStatus(c *gin.Context) {
	person := c.Param("person")
	log := h.logger.WithField("method", "getDutyStatus").WithField("person", person)

	date, err := h.parseDate(c.Query("date"))
	if err != nil {
		respondError(c, log, err)
		return
	}

	rec, err := h.dutyService.Lookup(c.Request.Context(), person, date)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DutyStatusToResponse(person, rec))
}

// @Summary Incident counts by type
// @Description Counts over the full collection keyed by the literal type string.
// @Tags Analytics
// @Produce json
// @Success 200 {object} TypeCountsResponse
// @Failure 503 {object} map[string]string "Incident registry unavailable"
// @Router /analytics/types [get]
func (h *Handler) getTypeCounts(c *gin.Context) {
	log := h.logger.WithField("method", "getTypeCounts")

	counts, err := h.analyticsService.TypeCounts(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, TypeCountsToResponse(counts))
}

// @Summary Monthly incident series
// @Description Twelve monthly buckets ending at the month of as_of, oldest first.
// @Tags Analytics
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} MonthlySeriesResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 503 {object} map[string]string "Collaborator unavailable"
// @Router /analytics/monthly [get]
func (h *Handler) getMonthlySeries(c *gin.Context) {
	log := h.logger.WithField("method", "getMonthlySeries")

	asOf, err := h.parseDate(c.Query("as_of"))
	if err != nil {
		respondError(c, log, err)
		return
	}

	buckets, err := h.analyticsService.MonthlySeries(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SeriesToResponse(asOf, buckets))
}

// @Summary List incident types
// @Description Registered incident types with icon and color.
// @Tags Incident Types
// @Produce json
// @Success 200 {array} IncidentTypeResponse
// @Failure 503 {object} map[string]string "Registry unavailable"
// @Router /incident-types [get]
func (h *Handler) listIncidentTypes(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidentTypes")

	types, err := h.analyticsService.ListIncidentTypes(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, IncidentTypesToResponse(types))
}

// @Summary Register an incident type
// @Description Add a type to the registry. The name Other is reserved. Requires API key.
// @Tags Incident Types
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param type body IncidentTypeRequest true "Incident type"
// @Success 201 {object} IncidentTypeResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Type already exists"
// @Router /incident-types [post]
func (h *Handler) createIncidentType(c *gin.Context) {
	log := h.logger.WithField("method", "createIncidentType")

	var input IncidentTypeRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	cfg := &models.IncidentTypeConfig{Name: input.Name, Icon: input.Icon, Color: input.Color}
	if err := h.analyticsService.AddIncidentType(c.Request.Context(), cfg); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, &IncidentTypeResponse{Name: cfg.Name, Icon: cfg.Icon, Color: cfg.Color})
}

// @Summary Synchronizer status
// @Description Staleness indicator of the background poller.
// @Tags System
// @Produce json
// @Success 200 {object} poller.Status
// @Router /sync/status [get]
func (h *Handler) getSyncStatus(c *gin.Context) {
	if h.syncStatus == nil {
		c.JSON(http.StatusOK, poller.Status{})
		return
	}
	c.JSON(http.StatusOK, h.syncStatus.Status())
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// MsgSelectOnDuty - подсказка для пользователя при отклонённом назначении
const MsgSelectOnDuty = "select a person currently on duty"

// respondError переводит типизированную ошибку сервиса в HTTP-ответ
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var (
		ve *models.ValidationError
		ae *models.AssignmentError
		ce *models.ConflictError
		ne *models.NotFoundError
		te *models.TransientIOError
	)
	switch {
	case errors.As(err, &ve):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.As(err, &ae):
		log.WithError(err).Warn("Assignment rejected")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": MsgSelectOnDuty, "reason": ae.Reason})
	case errors.As(err, &ce):
		log.WithError(err).Warn("Conflicting state change")
		body := gin.H{"error": ce.Reason}
		if ce.Status != "" {
			body["status"] = ce.Status
		}
		c.JSON(http.StatusConflict, body)
	case errors.As(err, &ne):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": ne.Entity + " not found"})
	case errors.As(err, &te):
		log.WithError(err).Error("Collaborator unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

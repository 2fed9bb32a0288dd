package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tanod_dispatch/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

// EventType - тип уведомления для слоя отображения
type EventType string

const (
	EventIncidentCreated  EventType = "incident.created"
	EventIncidentAssigned EventType = "incident.assigned"
	EventIncidentResolved EventType = "incident.resolved"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type      EventType          `json:"type"`
	Timestamp time.Time          `json:"timestamp"`
	Person    string             `json:"person,omitempty"` // исполнитель или тот, кто закрыл инцидент
	Incidents []*models.Incident `json:"incidents"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NotifyNewIncidents публикует событие о новых инцидентах, обнаруженных при опросе
func (p *RedisWebhookPublisher) NotifyNewIncidents(ctx context.Context, incidents []*models.Incident) error {
	return p.Publish(ctx, WebhookEvent{
		Type:      EventIncidentCreated,
		Timestamp: time.Now().UTC(),
		Incidents: incidents,
	})
}

package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const emergencyQueueKey = "emergency_events"

// Виды экстренных событий
const (
	EventKindCheckIn        = "check_in"
	EventKindIncidentReport = "incident_report"
)

// EmergencyEvent - структура данных экстренного события для вебхука
type EmergencyEvent struct {
	Kind        string    `json:"kind"`
	ReferenceID uuid.UUID `json:"referenceId"`
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Latitude    *string   `json:"latitude,omitempty"`
	Longitude   *string   `json:"longitude,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// EmergencyEventPublisher - интерфейс для публикации экстренных событий
type EmergencyEventPublisher interface {
	Publish(ctx context.Context, event EmergencyEvent) error
}

// RedisEventPublisher - реализация EmergencyEventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует экстренное событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event EmergencyEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, emergencyQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish emergency event to Redis: %w", err)
	}
	return nil
}

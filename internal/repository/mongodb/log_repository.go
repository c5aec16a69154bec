package mongodb

import (
	"context"
	"fmt"
	"time"

	entity "tradepost/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	CollectionStatus        = "status_history"
	CollectionNotifications = "notifications"
)

type LogRepository interface {
	SaveHistoryStatus(doc *entity.StatusHistory) error
	SaveNotification(doc *entity.Notification) error
}

type logRepository struct {
	history       *mongo.Collection
	notifications *mongo.Collection
}

func NewLogRepository(client *mongo.Client, database string) LogRepository {
	db := client.Database(database)
	return &logRepository{
		history:       db.Collection(CollectionStatus),
		notifications: db.Collection(CollectionNotifications),
	}
}

func (r *logRepository) SaveHistoryStatus(doc *entity.StatusHistory) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.history.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}
	return nil
}

func (r *logRepository) SaveNotification(doc *entity.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.notifications.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

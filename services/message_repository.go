package services

import (
    "context"
    "fmt"

    "wellness-coach-backend/models"

    "go.mongodb.org/mongo-driver/mongo"
)

// MessageRepository records the audit log of processed turns
type MessageRepository interface {
    Insert(ctx context.Context, msg *models.Message) error
}

type mongoMessageRepository struct {
    collection *mongo.Collection
}

func NewMongoMessageRepository(db *mongo.Database) MessageRepository {
    return &mongoMessageRepository{collection: db.Collection("messages")}
}

func (r *mongoMessageRepository) Insert(ctx context.Context, msg *models.Message) error {
    if _, err := r.collection.InsertOne(ctx, msg); err != nil {
        return fmt.Errorf("failed to store message: %w", err)
    }
    return nil
}

package services

import (
    "context"
    "fmt"

    "wellness-coach-backend/models"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsService summarizes stored contexts and messages for the admin
// dashboard
type AnalyticsService struct {
    contexts *mongo.Collection
    messages *mongo.Collection
}

func NewAnalyticsService(db *mongo.Database) *AnalyticsService {
    return &AnalyticsService{
        contexts: db.Collection("ai_user_contexts"),
        messages: db.Collection("messages"),
    }
}

// Snapshot aggregates mode and trend distributions across all user
// contexts plus overall volume counts.
func (s *AnalyticsService) Snapshot(ctx context.Context) (*models.EngineAnalytics, error) {
    totalUsers, err := s.contexts.CountDocuments(ctx, bson.M{})
    if err != nil {
        return nil, fmt.Errorf("failed to count contexts: %w", err)
    }

    totalMessages, err := s.messages.CountDocuments(ctx, bson.M{})
    if err != nil {
        return nil, fmt.Errorf("failed to count messages: %w", err)
    }

    modes, err := s.groupCount(ctx, "$current_mode")
    if err != nil {
        return nil, err
    }

    trends, err := s.groupCount(ctx, "$improvement_pattern.trend")
    if err != nil {
        return nil, err
    }

    return &models.EngineAnalytics{
        TotalUsers:        totalUsers,
        TotalMessages:     totalMessages,
        ModeDistribution:  modes,
        TrendDistribution: trends,
    }, nil
}

func (s *AnalyticsService) groupCount(ctx context.Context, field string) (map[string]int64, error) {
    pipeline := mongo.Pipeline{
        {{Key: "$group", Value: bson.D{
            {Key: "_id", Value: field},
            {Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
        }}},
    }

    cursor, err := s.contexts.Aggregate(ctx, pipeline)
    if err != nil {
        return nil, fmt.Errorf("failed to aggregate %s: %w", field, err)
    }
    defer cursor.Close(ctx)

    counts := make(map[string]int64)
    for cursor.Next(ctx) {
        var row struct {
            ID    string `bson:"_id"`
            Count int64  `bson:"count"`
        }
        if err := cursor.Decode(&row); err != nil {
            return nil, err
        }
        key := row.ID
        if key == "" {
            key = "unknown"
        }
        counts[key] = row.Count
    }
    return counts, cursor.Err()
}

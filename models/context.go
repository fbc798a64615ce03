package models

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// TrendClassification is the coarse improvement trend over recent exchanges
type TrendClassification string

const (
    TrendImproving TrendClassification = "improving"
    TrendStable    TrendClassification = "stable"
    TrendDeclining TrendClassification = "declining"
)

// ConversationExchange is one user/AI turn. Immutable once created.
type ConversationExchange struct {
    Timestamp       time.Time `bson:"timestamp" json:"timestamp"`
    UserMessage     string    `bson:"user_message" json:"user_message"`
    AIResponse      string    `bson:"ai_response" json:"ai_response"`
    DetectedEmotion string    `bson:"detected_emotion" json:"detected_emotion"`
}

// ImprovementPattern is the recomputed trend over the exchange window
type ImprovementPattern struct {
    Trend        TrendClassification `bson:"trend" json:"trend"`
    LastAnalyzed time.Time           `bson:"last_analyzed" json:"last_analyzed"`
}

// RecentExchangeLimit caps the rolling conversation window per user
const RecentExchangeLimit = 5

// UserContext is the per-user rolling conversational memory.
// RecentExchanges is newest first and never longer than RecentExchangeLimit.
type UserContext struct {
    ID                 primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
    UserID             string                 `bson:"user_id" json:"user_id"`
    UserName           string                 `bson:"user_name,omitempty" json:"user_name,omitempty"`
    DominantEmotion    string                 `bson:"dominant_emotion,omitempty" json:"dominant_emotion,omitempty"`
    RecentExchanges    []ConversationExchange `bson:"recent_exchanges" json:"recent_exchanges"`
    TriggerTopics      []string               `bson:"trigger_topics" json:"trigger_topics"`
    CurrentMode        Mode                   `bson:"current_mode" json:"current_mode"`
    ImprovementPattern *ImprovementPattern    `bson:"improvement_pattern,omitempty" json:"improvement_pattern,omitempty"`
    CreatedAt          time.Time              `bson:"created_at" json:"created_at"`
    UpdatedAt          time.Time              `bson:"updated_at" json:"updated_at"`
}

// NewUserContext creates a context with defaults for a first-time user
func NewUserContext(userID, userName string) *UserContext {
    now := time.Now()
    return &UserContext{
        UserID:          userID,
        UserName:        userName,
        RecentExchanges: []ConversationExchange{},
        TriggerTopics:   []string{},
        CurrentMode:     ModeCalm,
        CreatedAt:       now,
        UpdatedAt:       now,
    }
}

// HasTriggerTopic reports whether the topic is already recorded
func (uc *UserContext) HasTriggerTopic(topic string) bool {
    for _, t := range uc.TriggerTopics {
        if t == topic {
            return true
        }
    }
    return false
}

package models

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageChannel represents the communication channel
type MessageChannel string

const (
    ChannelWeb       MessageChannel = "web"
    ChannelWebSocket MessageChannel = "websocket"
)

// ChatRequest is a single incoming user message
type ChatRequest struct {
    Message  string         `json:"message" binding:"required"`
    UserID   string         `json:"user_id" binding:"required"`
    UserName string         `json:"user_name,omitempty"`
    Channel  MessageChannel `json:"channel,omitempty"`
}

// ChatResponse is the engine's reply for one turn
type ChatResponse struct {
    Reply           string   `json:"reply"`
    IsCrisis        bool     `json:"is_crisis"`
    DominantEmotion string   `json:"dominant_emotion,omitempty"`
    Confidence      float64  `json:"confidence"`
    Language        Language `json:"language"`
    Mode            Mode     `json:"mode,omitempty"`
}

// Message is the stored audit record of one non-crisis turn
type Message struct {
    ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    UserID          string             `bson:"user_id" json:"user_id"`
    UserMessage     string             `bson:"user_message" json:"user_message"`
    BotResponse     string             `bson:"bot_response" json:"bot_response"`
    DetectedEmotion string             `bson:"detected_emotion" json:"detected_emotion"`
    Confidence      float64            `bson:"confidence" json:"confidence"`
    Language        Language           `bson:"language" json:"language"`
    IsAIResponse    bool               `bson:"is_ai_response" json:"is_ai_response"`
    Channel         MessageChannel     `bson:"channel,omitempty" json:"channel,omitempty"`
    Timestamp       time.Time          `bson:"timestamp" json:"timestamp"`
}

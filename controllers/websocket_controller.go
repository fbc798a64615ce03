package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"wellness-coach-backend/models"
	"wellness-coach-backend/services"
)

var upgrader = websocket.Upgrader{
    CheckOrigin: func(r *http.Request) bool {
        return true // Configure properly for production
    },
}

type WebSocketController struct {
    coachService *services.CoachService
}

func NewWebSocketController(coachService *services.CoachService) *WebSocketController {
    return &WebSocketController{
        coachService: coachService,
    }
}

// HandleWebSocket runs a realtime chat session over one connection.
// Each inbound frame is a full turn through the coach pipeline.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
    conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
    if err != nil {
        log.Println("WebSocket upgrade error:", err)
        return
    }
    defer conn.Close()

    sessionID := c.Query("session_id")
    if sessionID == "" {
        sessionID = uuid.NewString()
    }

    if err := conn.WriteJSON(gin.H{"session_id": sessionID}); err != nil {
        log.Println("Write error:", err)
        return
    }

    for {
        var msg map[string]string
        if err := conn.ReadJSON(&msg); err != nil {
            log.Println("Read error:", err)
            break
        }

        req := models.ChatRequest{
            Message:  msg["message"],
            UserID:   msg["user_id"],
            UserName: msg["user_name"],
            Channel:  models.ChannelWebSocket,
        }
        if req.UserID == "" {
            req.UserID = sessionID
        }

        response, err := wc.coachService.ProcessMessage(c.Request.Context(), req)
        if err != nil {
            reason := "Failed to process message"
            if errors.Is(err, services.ErrEmptyMessage) {
                reason = "Message is required"
            }
            conn.WriteJSON(gin.H{"error": reason})
            continue
        }

        conn.WriteJSON(response)
    }
}

package controllers

import (
    "errors"
    "net/http"

    "github.com/gin-gonic/gin"

    "wellness-coach-backend/models"
    "wellness-coach-backend/services"
)

type CoachController struct {
    coachService *services.CoachService
}

func NewCoachController(coachService *services.CoachService) *CoachController {
    return &CoachController{
        coachService: coachService,
    }
}

// HandleChat processes one chat message through the coach pipeline
func (cc *CoachController) HandleChat(c *gin.Context) {
    var req models.ChatRequest

    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "error":   "Invalid request format",
            "details": err.Error(),
        })
        return
    }
    if req.Channel == "" {
        req.Channel = models.ChannelWeb
    }

    response, err := cc.coachService.ProcessMessage(c.Request.Context(), req)
    if err != nil {
        if errors.Is(err, services.ErrEmptyMessage) {
            c.JSON(http.StatusBadRequest, gin.H{
                "error": "Message is required",
            })
            return
        }
        c.JSON(http.StatusInternalServerError, gin.H{
            "error":   "Failed to process message",
            "details": err.Error(),
        })
        return
    }

    c.JSON(http.StatusOK, response)
}

// GetContext returns a user's stored conversational context for the
// dashboard. Missing users yield a null context, not a 404.
func (cc *CoachController) GetContext(c *gin.Context) {
    userID := c.Param("userId")

    userContext, err := cc.coachService.GetContext(c.Request.Context(), userID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "error": "Failed to fetch context",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "context": userContext,
    })
}

package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "wellness-coach-backend/models"
    "wellness-coach-backend/services"
)

type AdminController struct {
    configService    *services.ConfigService
    analyticsService *services.AnalyticsService
}

func NewAdminController(configService *services.ConfigService, analyticsService *services.AnalyticsService) *AdminController {
    return &AdminController{
        configService:    configService,
        analyticsService: analyticsService,
    }
}

// GetConfig returns the live engine configuration
func (ac *AdminController) GetConfig(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{
        "config": ac.configService.Current(),
    })
}

// ReplaceConfig persists and hot-swaps a new engine configuration.
// In-flight turns finish on the configuration they started with.
func (ac *AdminController) ReplaceConfig(c *gin.Context) {
    var cfg models.EngineConfig
    if err := c.ShouldBindJSON(&cfg); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "error":   "Invalid config format",
            "details": err.Error(),
        })
        return
    }

    if err := ac.configService.Replace(c.Request.Context(), &cfg); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "error": err.Error(),
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "message": "Engine configuration updated",
    })
}

// GetAnalytics returns mode/trend distributions for the dashboard
func (ac *AdminController) GetAnalytics(c *gin.Context) {
    if ac.analyticsService == nil {
        c.JSON(http.StatusServiceUnavailable, gin.H{
            "error": "Analytics not available",
        })
        return
    }

    analytics, err := ac.analyticsService.Snapshot(c.Request.Context())
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "error": "Failed to compute analytics",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "analytics": analytics,
    })
}

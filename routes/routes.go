package routes

import (
    "context"

    "github.com/gin-gonic/gin"

    "wellness-coach-backend/config"
    "wellness-coach-backend/controllers"
    "wellness-coach-backend/database"
    "wellness-coach-backend/middleware"
    "wellness-coach-backend/services"
    "wellness-coach-backend/utils"
)

func SetupRoutes(router *gin.Engine) error {
    cfg := config.Get()
    db := database.GetMongoDB()

    // Initialize services
    cipher := utils.NewFieldCipher(cfg.Security.EncryptionKey)
    configService := services.NewConfigService(services.NewMongoConfigRepository(db))
    if err := configService.Init(context.Background()); err != nil {
        return err
    }

    contextStore := services.NewMongoContextStore(db, cipher)
    gemini := services.NewGeminiService(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout)
    composer := services.NewResponseComposer(gemini)
    messages := services.NewMongoMessageRepository(db)
    coachService := services.NewCoachService(configService, contextStore, composer, messages)
    analyticsService := services.NewAnalyticsService(db)

    // Initialize controllers
    coachController := controllers.NewCoachController(coachService)
    wsController := controllers.NewWebSocketController(coachService)
    adminController := controllers.NewAdminController(configService, analyticsService)

    // Public routes (no authentication required)
    public := router.Group("/api/v1")
    {
        // Coach chat
        public.POST("/chat", coachController.HandleChat)

        // Dashboard context view
        public.GET("/context/:userId", coachController.GetContext)

        // WebSocket for real-time chat
        public.GET("/ws", wsController.HandleWebSocket)
    }

    // Admin routes
    admin := router.Group("/api/admin")
    admin.Use(middleware.RequireAdminKey())
    {
        admin.GET("/ai-config", adminController.GetConfig)
        admin.PUT("/ai-config", adminController.ReplaceConfig)
        admin.GET("/ai-analytics", adminController.GetAnalytics)
    }

    // 404 handler
    router.NoRoute(func(c *gin.Context) {
        c.JSON(404, gin.H{
            "error": "Route not found",
            "path":  c.Request.URL.Path,
        })
    })

    return nil
}

package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "strings"
    "syscall"
    "time"

    "github.com/gin-gonic/gin"

    "wellness-coach-backend/config"
    "wellness-coach-backend/database"
    "wellness-coach-backend/routes"
)

func main() {
    // Load configuration
    if err := config.Load(); err != nil {
        log.Fatalf("Failed to load configuration: %v", err)
    }

    cfg := config.Get()

    // Set Gin mode
    if cfg.Environment == "production" {
        gin.SetMode(gin.ReleaseMode)
    }

    // Connect to database
    if err := database.Connect(cfg); err != nil {
        log.Fatalf("Failed to connect to database: %v", err)
    }
    defer database.Disconnect()

    if cfg.AI.APIKey == "" {
        log.Println("WARNING: Generative augmentation disabled, replies are fully rule-based")
    } else {
        log.Printf("Generative augmentation enabled (model %s)", cfg.AI.Model)
    }

    // Create Gin router
    router := gin.New()

    // Add middleware
    router.Use(gin.Recovery())
    router.Use(gin.Logger())

    // CORS middleware
    allowedOrigin := "http://localhost:3000"
    if len(cfg.Security.AllowedOrigins) > 0 {
        allowedOrigin = cfg.Security.AllowedOrigins[0]
    }
    router.Use(func(c *gin.Context) {
        c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
        c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
        c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Admin-Key, accept, origin, Cache-Control, X-Requested-With")
        c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

        if c.Request.Method == "OPTIONS" {
            c.AbortWithStatus(204)
            return
        }

        c.Next()
    })

    if len(cfg.Security.TrustedProxies) > 0 {
        if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
            log.Fatalf("Invalid trusted proxies: %v", err)
        }
    }

    // Health check endpoint
    router.GET("/health", func(c *gin.Context) {
        dbStatus := "ok"
        if err := database.HealthCheck(); err != nil {
            dbStatus = "unavailable"
        }
        c.JSON(200, gin.H{
            "status":        "ok",
            "timestamp":     time.Now(),
            "database":      dbStatus,
            "ai_configured": os.Getenv("GEMINI_API_KEY") != "",
        })
    })

    // Setup all routes
    if err := routes.SetupRoutes(router); err != nil {
        log.Fatalf("Failed to set up routes: %v", err)
    }

    // Log available endpoints
    logAvailableEndpoints(router)

    // Create HTTP server
    srv := &http.Server{
        Addr:         ":" + cfg.Port,
        Handler:      router,
        ReadTimeout:  15 * time.Second,
        WriteTimeout: 15 * time.Second,
        IdleTimeout:  60 * time.Second,
    }

    // Start server in a goroutine
    go func() {
        log.Printf("Server starting on port %s", cfg.Port)
        log.Printf("Health check: http://localhost:%s/health", cfg.Port)
        log.Printf("Chat endpoint: http://localhost:%s/api/v1/chat", cfg.Port)

        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("Failed to start server: %v", err)
        }
    }()

    // Wait for interrupt signal to gracefully shutdown the server
    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit

    log.Println("Shutting down server...")

    // Graceful shutdown with timeout
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Server forced to shutdown: %v", err)
    }

    log.Println("Server exited")
}

// logAvailableEndpoints logs all registered routes
func logAvailableEndpoints(router *gin.Engine) {
    log.Println(strings.Repeat("-", 40))
    log.Println("Available endpoints:")
    for _, route := range router.Routes() {
        log.Printf("  %s %s", route.Method, route.Path)
    }
    log.Println(strings.Repeat("-", 40))
}

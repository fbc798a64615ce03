package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
    // Server
    Port        string
    Environment string

    // Database
    Database DatabaseConfig

    // AI Augmentation
    AI AIConfig

    // Security
    Security SecurityConfig
}

type DatabaseConfig struct {
    URI      string
    Name     string
    Host     string
    Port     string
    Username string
    Password string

    // Connection pool settings
    MaxConnections int
    MinConnections int
    MaxIdleTime    time.Duration
}

type AIConfig struct {
    Provider string // "gemini" is the only supported provider
    APIKey   string
    Model    string
    Timeout  time.Duration
}

type SecurityConfig struct {
    EncryptionKey  string
    AdminAPIKey    string
    AllowedOrigins []string
    TrustedProxies []string
}

var cfg *Config

// Load initializes the configuration
func Load() error {
    // Load .env file
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found, using environment variables")
    }

    cfg = &Config{
        Port:        getEnv("PORT", "8080"),
        Environment: getEnv("ENVIRONMENT", "development"),

        Database: DatabaseConfig{
            URI:      getEnv("DATABASE_URL", ""),
            Name:     getEnv("DB_NAME", "wellness_coach"),
            Host:     getEnv("DB_HOST", "localhost"),
            Port:     getEnv("DB_PORT", "27017"),
            Username: getEnv("DB_USERNAME", ""),
            Password: getEnv("DB_PASSWORD", ""),

            MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
            MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
            MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
        },

        AI: AIConfig{
            Provider: getEnv("AI_PROVIDER", "gemini"),
            APIKey:   getEnv("GEMINI_API_KEY", ""),
            Model:    getEnv("AI_MODEL", "gemini-1.5-flash"),
            Timeout:  getEnvAsDuration("AI_TIMEOUT", "10s"),
        },

        Security: SecurityConfig{
            EncryptionKey:  getEnv("ENCRYPTION_KEY", "very_secret_key_32_chars_long_!!"),
            AdminAPIKey:    getEnv("ADMIN_API_KEY", ""),
            AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
            TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES", []string{}),
        },
    }

    // Validate configuration
    if err := validate(); err != nil {
        return fmt.Errorf("configuration validation failed: %w", err)
    }

    return nil
}

// Get returns the loaded configuration
func Get() *Config {
    if cfg == nil {
        log.Fatal("Configuration not loaded. Call Load() first")
    }
    return cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    valueStr := getEnv(key, "")
    if value, err := strconv.Atoi(valueStr); err == nil {
        return value
    }
    return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
    valueStr := getEnv(key, defaultValue)
    if duration, err := time.ParseDuration(valueStr); err == nil {
        return duration
    }
    duration, _ := time.ParseDuration(defaultValue)
    return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
    value := getEnv(key, "")
    if value == "" {
        return defaultValue
    }
    // Simple comma-separated parsing
    return strings.Split(value, ",")
}

func validate() error {
    if cfg.Database.URI == "" {
        if cfg.Database.Host == "" || cfg.Database.Port == "" {
            return fmt.Errorf("database URI or host/port must be provided")
        }
    }

    // The generative augmentation is optional: a missing API key only
    // disables it, the rule-based engine carries every turn.
    if cfg.AI.APIKey == "" {
        log.Println("WARNING: GEMINI_API_KEY not set, responses will be fully rule-based")
    }

    if len(cfg.Security.EncryptionKey) < 16 {
        return fmt.Errorf("ENCRYPTION_KEY must be at least 16 characters")
    }

    return nil
}

// BuildDatabaseURI constructs the database URI if not provided
func (c *Config) BuildDatabaseURI() string {
    if c.Database.URI != "" {
        return c.Database.URI
    }

    if c.Database.Username != "" && c.Database.Password != "" {
        return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
            c.Database.Username,
            c.Database.Password,
            c.Database.Host,
            c.Database.Port,
            c.Database.Name,
        )
    }
    return fmt.Sprintf("mongodb://%s:%s/%s",
        c.Database.Host,
        c.Database.Port,
        c.Database.Name,
    )
}

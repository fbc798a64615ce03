package services

import (
    "context"
    "errors"
    "fmt"
    "log"
    "sync/atomic"
    "time"

    "wellness-coach-backend/models"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
)

// ConfigRepository persists the engine configuration document
type ConfigRepository interface {
    Load(ctx context.Context) (*models.EngineConfig, error)
    Save(ctx context.Context, cfg *models.EngineConfig) error
}

// ErrConfigNotFound is returned by Load when no config has been stored yet
var ErrConfigNotFound = errors.New("engine config not found")

// ConfigService owns the live engine configuration. Reads take an
// immutable snapshot; Replace persists the new document and swaps the
// snapshot atomically, so in-flight turns finish on the config they
// started with.
type ConfigService struct {
    repo    ConfigRepository
    current atomic.Pointer[models.EngineConfig]
}

func NewConfigService(repo ConfigRepository) *ConfigService {
    cs := &ConfigService{repo: repo}
    cs.current.Store(DefaultEngineConfig())
    return cs
}

// Init loads the stored configuration, seeding the built-in defaults on
// first boot.
func (cs *ConfigService) Init(ctx context.Context) error {
    cfg, err := cs.repo.Load(ctx)
    if errors.Is(err, ErrConfigNotFound) {
        seeded := DefaultEngineConfig()
        if err := cs.repo.Save(ctx, seeded); err != nil {
            return fmt.Errorf("failed to seed engine config: %w", err)
        }
        cs.current.Store(seeded)
        log.Println("Seeded default engine configuration")
        return nil
    }
    if err != nil {
        return fmt.Errorf("failed to load engine config: %w", err)
    }

    cs.warnOnGaps(cfg)
    cs.current.Store(cfg)
    return nil
}

// Current returns the live configuration snapshot. Callers must not
// mutate it.
func (cs *ConfigService) Current() *models.EngineConfig {
    return cs.current.Load()
}

// Replace validates, persists, and hot-swaps the configuration
func (cs *ConfigService) Replace(ctx context.Context, cfg *models.EngineConfig) error {
    if cfg == nil || len(cfg.Emotions) == 0 {
        return errors.New("engine config must define at least one emotion category")
    }
    for _, emotion := range cfg.Emotions {
        if emotion.Name == "" {
            return errors.New("emotion categories must be named")
        }
    }

    cs.warnOnGaps(cfg)

    cfg.UpdatedAt = time.Now()
    if err := cs.repo.Save(ctx, cfg); err != nil {
        return fmt.Errorf("failed to persist engine config: %w", err)
    }
    cs.current.Store(cfg)
    return nil
}

// warnOnGaps logs data-quality warnings for empty template pools. Gaps
// are recoverable at composition time through the language fallback
// chain, so they are never fatal.
func (cs *ConfigService) warnOnGaps(cfg *models.EngineConfig) {
    for _, emotion := range cfg.Emotions {
        pools := map[string]models.TemplatePool{
            "validation": emotion.Templates.Validation,
            "reflection": emotion.Templates.Reflection,
            "insight":    emotion.Templates.Insight,
            "action":     emotion.Templates.Action,
            "followUp":   emotion.Templates.FollowUp,
        }
        for slot, pool := range pools {
            if len(pool.En) == 0 && len(pool.Hi) == 0 {
                log.Printf("WARNING: emotion %q has no %s templates in any language", emotion.Name, slot)
            }
        }
    }
}

// mongoConfigRepository stores the config as a single document
type mongoConfigRepository struct {
    collection *mongo.Collection
}

func NewMongoConfigRepository(db *mongo.Database) ConfigRepository {
    return &mongoConfigRepository{collection: db.Collection("ai_engine_config")}
}

func (r *mongoConfigRepository) Load(ctx context.Context) (*models.EngineConfig, error) {
    var cfg models.EngineConfig
    err := r.collection.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})).Decode(&cfg)
    if errors.Is(err, mongo.ErrNoDocuments) {
        return nil, ErrConfigNotFound
    }
    if err != nil {
        return nil, err
    }
    return &cfg, nil
}

func (r *mongoConfigRepository) Save(ctx context.Context, cfg *models.EngineConfig) error {
    opts := options.Replace().SetUpsert(true)
    _, err := r.collection.ReplaceOne(ctx, bson.M{}, cfg, opts)
    return err
}

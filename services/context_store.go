package services

import (
    "context"
    "errors"
    "fmt"
    "sync"
    "time"

    "wellness-coach-backend/models"
    "wellness-coach-backend/utils"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
    "golang.org/x/sync/singleflight"
)

// ContextStore persists per-user conversational memory. Exactly one
// UserContext exists per user ID; FindOrCreate must behave atomically
// under concurrent first messages.
type ContextStore interface {
    // FindOrCreate returns the existing context or a fresh one with
    // defaults. The fresh context is persisted immediately.
    FindOrCreate(ctx context.Context, userID, userName string) (*models.UserContext, error)
    // Save writes the full context back
    Save(ctx context.Context, uc *models.UserContext) error
    // Get returns the context or nil when the user has none yet
    Get(ctx context.Context, userID string) (*models.UserContext, error)
}

// mongoContextStore stores contexts in the ai_user_contexts collection,
// encrypting message bodies and trigger topics at rest.
type mongoContextStore struct {
    collection *mongo.Collection
    cipher     *utils.FieldCipher
    creating   singleflight.Group
}

func NewMongoContextStore(db *mongo.Database, cipher *utils.FieldCipher) ContextStore {
    return &mongoContextStore{
        collection: db.Collection("ai_user_contexts"),
        cipher:     cipher,
    }
}

func (s *mongoContextStore) FindOrCreate(ctx context.Context, userID, userName string) (*models.UserContext, error) {
    existing, err := s.Get(ctx, userID)
    if err != nil {
        return nil, err
    }
    if existing != nil {
        return existing, nil
    }

    // Deduplicate concurrent first messages: only one insert per user ID
    // runs; the upsert absorbs a racing insert from another instance.
    _, err, _ = s.creating.Do(userID, func() (interface{}, error) {
        fresh := models.NewUserContext(userID, userName)
        stored, err := s.encryptContext(fresh)
        if err != nil {
            return nil, err
        }
        opts := options.Update().SetUpsert(true)
        _, err = s.collection.UpdateOne(ctx,
            bson.M{"user_id": userID},
            bson.M{"$setOnInsert": stored},
            opts,
        )
        if err != nil {
            return nil, fmt.Errorf("failed to create user context: %w", err)
        }
        return nil, nil
    })
    if err != nil {
        return nil, err
    }

    created, err := s.Get(ctx, userID)
    if err != nil {
        return nil, err
    }
    if created == nil {
        return nil, errors.New("user context missing after create")
    }
    return created, nil
}

func (s *mongoContextStore) Save(ctx context.Context, uc *models.UserContext) error {
    uc.UpdatedAt = time.Now()
    stored, err := s.encryptContext(uc)
    if err != nil {
        return err
    }

    opts := options.Replace().SetUpsert(true)
    if _, err := s.collection.ReplaceOne(ctx, bson.M{"user_id": uc.UserID}, stored, opts); err != nil {
        return fmt.Errorf("failed to save user context: %w", err)
    }
    return nil
}

func (s *mongoContextStore) Get(ctx context.Context, userID string) (*models.UserContext, error) {
    var stored models.UserContext
    err := s.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&stored)
    if errors.Is(err, mongo.ErrNoDocuments) {
        return nil, nil
    }
    if err != nil {
        return nil, fmt.Errorf("failed to load user context: %w", err)
    }
    return s.decryptContext(&stored)
}

// encryptContext returns a copy with message bodies and trigger topics
// encrypted. The original stays plaintext for the caller.
func (s *mongoContextStore) encryptContext(uc *models.UserContext) (*models.UserContext, error) {
    out := *uc
    out.RecentExchanges = make([]models.ConversationExchange, len(uc.RecentExchanges))
    for i, ex := range uc.RecentExchanges {
        msg, err := s.cipher.Encrypt(ex.UserMessage)
        if err != nil {
            return nil, err
        }
        resp, err := s.cipher.Encrypt(ex.AIResponse)
        if err != nil {
            return nil, err
        }
        out.RecentExchanges[i] = models.ConversationExchange{
            Timestamp:       ex.Timestamp,
            UserMessage:     msg,
            AIResponse:      resp,
            DetectedEmotion: ex.DetectedEmotion,
        }
    }

    out.TriggerTopics = make([]string, len(uc.TriggerTopics))
    for i, topic := range uc.TriggerTopics {
        enc, err := s.cipher.Encrypt(topic)
        if err != nil {
            return nil, err
        }
        out.TriggerTopics[i] = enc
    }

    return &out, nil
}

func (s *mongoContextStore) decryptContext(uc *models.UserContext) (*models.UserContext, error) {
    for i, ex := range uc.RecentExchanges {
        msg, err := s.cipher.Decrypt(ex.UserMessage)
        if err != nil {
            return nil, err
        }
        resp, err := s.cipher.Decrypt(ex.AIResponse)
        if err != nil {
            return nil, err
        }
        uc.RecentExchanges[i].UserMessage = msg
        uc.RecentExchanges[i].AIResponse = resp
    }

    for i, topic := range uc.TriggerTopics {
        dec, err := s.cipher.Decrypt(topic)
        if err != nil {
            return nil, err
        }
        uc.TriggerTopics[i] = dec
    }

    return uc, nil
}

// MemoryContextStore is an in-process ContextStore used in tests
type MemoryContextStore struct {
    mu       sync.Mutex
    contexts map[string]*models.UserContext

    // FailSaves makes Save return an error, simulating store outage
    FailSaves bool
}

func NewMemoryContextStore() *MemoryContextStore {
    return &MemoryContextStore{contexts: make(map[string]*models.UserContext)}
}

func (s *MemoryContextStore) FindOrCreate(ctx context.Context, userID, userName string) (*models.UserContext, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if uc, ok := s.contexts[userID]; ok {
        return cloneContext(uc), nil
    }
    fresh := models.NewUserContext(userID, userName)
    s.contexts[userID] = cloneContext(fresh)
    return fresh, nil
}

func (s *MemoryContextStore) Save(ctx context.Context, uc *models.UserContext) error {
    if s.FailSaves {
        return errors.New("context store unavailable")
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    uc.UpdatedAt = time.Now()
    s.contexts[uc.UserID] = cloneContext(uc)
    return nil
}

func (s *MemoryContextStore) Get(ctx context.Context, userID string) (*models.UserContext, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if uc, ok := s.contexts[userID]; ok {
        return cloneContext(uc), nil
    }
    return nil, nil
}

func cloneContext(uc *models.UserContext) *models.UserContext {
    out := *uc
    out.RecentExchanges = append([]models.ConversationExchange(nil), uc.RecentExchanges...)
    out.TriggerTopics = append([]string(nil), uc.TriggerTopics...)
    if uc.ImprovementPattern != nil {
        pattern := *uc.ImprovementPattern
        out.ImprovementPattern = &pattern
    }
    return &out
}

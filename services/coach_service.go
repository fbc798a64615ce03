package services

import (
    "context"
    "errors"
    "log"
    "strings"
    "sync"
    "time"

    "wellness-coach-backend/models"
)

// ErrEmptyMessage is returned when a turn arrives with no message text.
// Controllers surface it as a client validation failure.
var ErrEmptyMessage = errors.New("message is required")

// CoachService orchestrates one conversational turn: crisis check,
// emotion scoring, context load, response composition, context update,
// trend recomputation. Turns for the same user are serialized; turns for
// different users run in parallel.
type CoachService struct {
    crisisDetector *CrisisDetector
    emotionScorer  *EmotionScorer
    composer       *ResponseComposer
    contextStore   ContextStore
    configService  *ConfigService
    messages       MessageRepository

    mu        sync.Mutex
    userLocks map[string]*sync.Mutex
}

// NewCoachService wires the turn pipeline. messages may be nil when no
// audit log is wanted (tests, ephemeral deployments).
func NewCoachService(configService *ConfigService, contextStore ContextStore, composer *ResponseComposer, messages MessageRepository) *CoachService {
    return &CoachService{
        crisisDetector: NewCrisisDetector(),
        emotionScorer:  NewEmotionScorer(),
        composer:       composer,
        contextStore:   contextStore,
        configService:  configService,
        messages:       messages,
        userLocks:      make(map[string]*sync.Mutex),
    }
}

// ProcessMessage runs one full turn for an incoming message
func (s *CoachService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
    if strings.TrimSpace(req.Message) == "" {
        return nil, ErrEmptyMessage
    }

    // Abandon the turn cleanly if the caller already went away
    if err := ctx.Err(); err != nil {
        return nil, err
    }

    cfg := s.configService.Current()

    // Crisis turns bypass scoring, composition, and every context
    // mutation. They must succeed even when storage is down.
    if crisis := s.crisisDetector.Detect(req.Message, cfg.CrisisKeywords); crisis.IsCrisis {
        log.Printf("Crisis detected for user %s (trigger %q)", req.UserID, crisis.Trigger)
        return &models.ChatResponse{
            Reply:    crisis.Message,
            IsCrisis: true,
            Language: crisis.Language,
        }, nil
    }

    analysis := s.emotionScorer.Analyze(req.Message, cfg.Emotions)

    // Serialize the read-modify-write of this user's context
    userLock := s.lockFor(req.UserID)
    userLock.Lock()
    defer userLock.Unlock()

    userContext, err := s.contextStore.FindOrCreate(ctx, req.UserID, req.UserName)
    if err != nil {
        return nil, err
    }

    // Compose against the pre-turn window
    reply := s.composer.Generate(ctx, req.Message, analysis, displayName(req, userContext), userContext.RecentExchanges, cfg)

    detectedEmotion := "Unknown"
    if analysis.DominantEmotion != nil {
        detectedEmotion = analysis.DominantEmotion.Name
        userContext.DominantEmotion = analysis.DominantEmotion.Name
        userContext.CurrentMode = analysis.DominantEmotion.Mode
        for _, keyword := range analysis.DominantEmotion.MatchedKeywords {
            if !userContext.HasTriggerTopic(keyword) {
                userContext.TriggerTopics = append(userContext.TriggerTopics, keyword)
            }
        }
    }

    exchange := models.ConversationExchange{
        Timestamp:       time.Now(),
        UserMessage:     req.Message,
        AIResponse:      reply,
        DetectedEmotion: detectedEmotion,
    }
    userContext.RecentExchanges = append([]models.ConversationExchange{exchange}, userContext.RecentExchanges...)
    if len(userContext.RecentExchanges) > models.RecentExchangeLimit {
        userContext.RecentExchanges = userContext.RecentExchanges[:models.RecentExchangeLimit]
    }

    if pattern := ComputeTrend(userContext.RecentExchanges, cfg); pattern != nil {
        userContext.ImprovementPattern = pattern
    }

    // A lost context write would silently corrupt the rolling window and
    // the trend, so the failure surfaces to the caller.
    if err := s.contextStore.Save(ctx, userContext); err != nil {
        return nil, err
    }

    s.logMessage(ctx, req, reply, detectedEmotion, analysis)

    return &models.ChatResponse{
        Reply:           reply,
        IsCrisis:        false,
        DominantEmotion: userContext.DominantEmotion,
        Confidence:      analysis.Confidence,
        Language:        analysis.Language,
        Mode:            userContext.CurrentMode,
    }, nil
}

// GetContext exposes the stored context for the dashboard. Returns nil
// when the user has never chatted.
func (s *CoachService) GetContext(ctx context.Context, userID string) (*models.UserContext, error) {
    return s.contextStore.Get(ctx, userID)
}

// lockFor returns the serialization lock for a user. Locks are never
// evicted, so the map grows with the number of distinct users seen
// since startup; a mutex per user is small enough that eviction is
// not worth the bookkeeping at current scale.
func (s *CoachService) lockFor(userID string) *sync.Mutex {
    s.mu.Lock()
    defer s.mu.Unlock()
    lock, ok := s.userLocks[userID]
    if !ok {
        lock = &sync.Mutex{}
        s.userLocks[userID] = lock
    }
    return lock
}

// logMessage appends the turn to the audit log. Best effort: a failed
// audit write never fails a turn the user already got an answer for.
func (s *CoachService) logMessage(ctx context.Context, req models.ChatRequest, reply, detectedEmotion string, analysis models.AnalysisResult) {
    if s.messages == nil {
        return
    }
    msg := &models.Message{
        UserID:          req.UserID,
        UserMessage:     req.Message,
        BotResponse:     reply,
        DetectedEmotion: detectedEmotion,
        Confidence:      analysis.Confidence,
        Language:        analysis.Language,
        IsAIResponse:    true,
        Channel:         req.Channel,
        Timestamp:       time.Now(),
    }
    if err := s.messages.Insert(ctx, msg); err != nil {
        log.Printf("Failed to record message for user %s: %v", req.UserID, err)
    }
}

func displayName(req models.ChatRequest, uc *models.UserContext) string {
    if req.UserName != "" {
        return req.UserName
    }
    return uc.UserName
}

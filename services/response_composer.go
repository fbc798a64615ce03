package services

import (
    "context"
    "log"
    "math/rand"
    "strings"
    "sync"
    "time"

    "wellness-coach-backend/models"
)

// Augmenter is the optional generative collaborator. Returning an empty
// string or an error both mean "unavailable"; the composer then falls
// back to the rule-based reflection and insight templates.
type Augmenter interface {
    Augment(ctx context.Context, userMessage string, analysis models.AnalysisResult, exchanges []models.ConversationExchange) (string, error)
}

// NoopAugmenter is the null implementation used when no generative
// backend is configured.
type NoopAugmenter struct{}

func (NoopAugmenter) Augment(ctx context.Context, userMessage string, analysis models.AnalysisResult, exchanges []models.ConversationExchange) (string, error) {
    return "", nil
}

// emptyPoolPlaceholder is returned when every pool in the fallback chain
// is empty
const emptyPoolPlaceholder = "..."

// ResponseComposer assembles the multi-part empathetic reply:
// greeting, validation, reflection+insight (possibly augmented), action,
// follow-up. The random source is injected so tests can pin selection.
type ResponseComposer struct {
    augmenter Augmenter

    mu  sync.Mutex
    rng *rand.Rand
}

func NewResponseComposer(augmenter Augmenter) *ResponseComposer {
    if augmenter == nil {
        augmenter = NoopAugmenter{}
    }
    return &ResponseComposer{
        augmenter: augmenter,
        rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
    }
}

// SetRandSource replaces the random source. Tests use this with a fixed
// seed to make template picks deterministic.
func (rc *ResponseComposer) SetRandSource(src rand.Source) {
    rc.mu.Lock()
    rc.rng = rand.New(src)
    rc.mu.Unlock()
}

// Generate builds the reply for one turn. It never returns an empty
// string: with no dominant emotion it falls back to the global pool and
// finally to a fixed listening line.
func (rc *ResponseComposer) Generate(ctx context.Context, userMessage string, analysis models.AnalysisResult, userName string, exchanges []models.ConversationExchange, cfg *models.EngineConfig) string {
    lang := analysis.Language

    if analysis.DominantEmotion == nil {
        return rc.fallbackReply(lang, cfg)
    }

    emotion := cfg.FindEmotion(analysis.DominantEmotion.Name)
    if emotion == nil {
        // Config was swapped between scoring and composing
        return rc.fallbackReply(lang, cfg)
    }

    templates := emotion.Templates
    name := userName
    if name == "" {
        if lang == models.LanguageHindi {
            name = "दोस्त"
        } else {
            name = "friend"
        }
    }

    validation := rc.pickRandom(templates.Validation, lang)

    refAndIns := rc.reflectionAndInsight(ctx, userMessage, analysis, templates, exchanges)

    action := rc.pickRandom(templates.Action, lang)
    followUp := rc.pickRandom(templates.FollowUp, lang)

    parts := []string{greeting(name, lang), validation, refAndIns, action, followUp}
    return strings.Join(parts, " ")
}

// reflectionAndInsight tries the generative augmentation first and falls
// back to the template pair with {trigger} substituted.
func (rc *ResponseComposer) reflectionAndInsight(ctx context.Context, userMessage string, analysis models.AnalysisResult, templates models.TemplateSet, exchanges []models.ConversationExchange) string {
    if len(exchanges) > models.RecentExchangeLimit {
        exchanges = exchanges[:models.RecentExchangeLimit]
    }

    augmented, err := rc.augmenter.Augment(ctx, userMessage, analysis, exchanges)
    if err != nil {
        log.Printf("Augmentation unavailable, using rule-based reflection: %v", err)
    }
    if err == nil && strings.TrimSpace(augmented) != "" {
        return strings.TrimSpace(augmented)
    }

    trigger := "your feelings"
    if len(analysis.DominantEmotion.MatchedKeywords) > 0 {
        trigger = analysis.DominantEmotion.MatchedKeywords[0]
    }

    reflection := rc.pickRandom(templates.Reflection, analysis.Language)
    reflection = strings.ReplaceAll(reflection, "{trigger}", trigger)
    insight := rc.pickRandom(templates.Insight, analysis.Language)

    return reflection + " " + insight
}

func (rc *ResponseComposer) fallbackReply(lang models.Language, cfg *models.EngineConfig) string {
    reply := rc.pickRandom(cfg.GlobalTemplates.Fallback, lang)
    if reply == emptyPoolPlaceholder {
        if lang == models.LanguageHindi {
            return "मैं सुन रहा हूं।"
        }
        return "I'm listening."
    }
    return reply
}

// pickRandom draws uniformly from the pool for the requested language,
// falling back to English, then to the placeholder.
func (rc *ResponseComposer) pickRandom(pool models.TemplatePool, lang models.Language) string {
    items := pool.En
    if lang == models.LanguageHindi && len(pool.Hi) > 0 {
        items = pool.Hi
    }
    if len(items) == 0 {
        log.Printf("WARNING: empty template pool for language %s, using placeholder", lang)
        return emptyPoolPlaceholder
    }

    rc.mu.Lock()
    idx := rc.rng.Intn(len(items))
    rc.mu.Unlock()

    return items[idx]
}

func greeting(name string, lang models.Language) string {
    if lang == models.LanguageHindi {
        return "नमस्ते " + name + "! 👋"
    }
    return "Hey " + name + "! 👋"
}

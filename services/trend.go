package services

import (
    "time"

    "wellness-coach-backend/models"
)

// trendMinExchanges is the number of exchanges required before a trend
// is computed
const trendMinExchanges = 3

// exchangeScore maps one exchange's detected emotion label to a per-turn
// score. Labels are resolved through the configured categories: Power and
// Calm modes read as positive turns, Clarity as neutral. The literal
// labels Motivation, Neutral, and Clarity are scored even when no
// category by that name exists; anything unresolvable (including
// "Unknown") counts against the trend.
func exchangeScore(label string, cfg *models.EngineConfig) int {
    if emotion := cfg.FindEmotion(label); emotion != nil {
        switch emotion.Mode {
        case models.ModePower, models.ModeCalm:
            return 1
        case models.ModeClarity:
            return 0
        }
    }

    switch label {
    case "Motivation":
        return 1
    case "Neutral", "Clarity":
        return 0
    }
    return -1
}

// ComputeTrend reclassifies the improvement pattern from the full
// exchange window. It returns nil when the window is still too small.
// The computation is from scratch every turn, not a running average.
func ComputeTrend(exchanges []models.ConversationExchange, cfg *models.EngineConfig) *models.ImprovementPattern {
    if len(exchanges) < trendMinExchanges {
        return nil
    }

    sum := 0
    for _, ex := range exchanges {
        sum += exchangeScore(ex.DetectedEmotion, cfg)
    }

    trend := models.TrendStable
    if sum > 0 {
        trend = models.TrendImproving
    } else if sum < 0 {
        trend = models.TrendDeclining
    }

    return &models.ImprovementPattern{
        Trend:        trend,
        LastAnalyzed: time.Now(),
    }
}

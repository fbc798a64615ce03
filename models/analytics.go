package models

// EngineAnalytics is the admin dashboard summary of engine activity
type EngineAnalytics struct {
    TotalUsers        int64            `json:"total_users"`
    TotalMessages     int64            `json:"total_messages"`
    ModeDistribution  map[string]int64 `json:"mode_distribution"`
    TrendDistribution map[string]int64 `json:"trend_distribution"`
}

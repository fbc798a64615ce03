package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-coach-backend/models"
)

func exchangesWithEmotions(labels ...string) []models.ConversationExchange {
	out := make([]models.ConversationExchange, len(labels))
	for i, label := range labels {
		out[i] = models.ConversationExchange{
			Timestamp:       time.Now(),
			UserMessage:     "msg",
			AIResponse:      "reply",
			DetectedEmotion: label,
		}
	}
	return out
}

func TestComputeTrendRequiresThreeExchanges(t *testing.T) {
	cfg := DefaultEngineConfig()

	assert.Nil(t, ComputeTrend(exchangesWithEmotions(), cfg))
	assert.Nil(t, ComputeTrend(exchangesWithEmotions("Motivation"), cfg))
	assert.Nil(t, ComputeTrend(exchangesWithEmotions("Motivation", "Stress"), cfg))
}

func TestComputeTrendClassification(t *testing.T) {
	cfg := DefaultEngineConfig()

	tests := []struct {
		name   string
		labels []string
		want   models.TrendClassification
	}{
		{
			// 1 + 1 + 0 = 2
			name:   "motivation turns improve",
			labels: []string{"Motivation", "Motivation", "Neutral"},
			want:   models.TrendImproving,
		},
		{
			// Unknown scores -1 each
			name:   "unknown turns decline",
			labels: []string{"Unknown", "Unknown", "Unknown"},
			want:   models.TrendDeclining,
		},
		{
			// 1 - 1 + 0 = 0
			name:   "balanced turns are stable",
			labels: []string{"Motivation", "Unknown", "Neutral"},
			want:   models.TrendStable,
		},
		{
			// Stress and Sadness carry Calm mode: positive turns
			name:   "calm mode categories improve",
			labels: []string{"Stress", "Sadness", "Neutral"},
			want:   models.TrendImproving,
		},
		{
			// Anxiety carries Clarity mode: neutral turns
			name:   "clarity mode categories are neutral",
			labels: []string{"Anxiety", "Anxiety", "Unknown"},
			want:   models.TrendDeclining,
		},
		{
			name:   "full window of five",
			labels: []string{"Motivation", "Anger", "Motivation", "Unknown", "Unknown"},
			want:   models.TrendImproving,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := ComputeTrend(exchangesWithEmotions(tt.labels...), cfg)
			require.NotNil(t, pattern)
			assert.Equal(t, tt.want, pattern.Trend)
			assert.False(t, pattern.LastAnalyzed.IsZero())
		})
	}
}

func TestExchangeScoreLiteralLabels(t *testing.T) {
	cfg := DefaultEngineConfig()

	assert.Equal(t, 1, exchangeScore("Motivation", cfg))
	assert.Equal(t, 0, exchangeScore("Neutral", cfg))
	assert.Equal(t, 0, exchangeScore("Clarity", cfg))
	assert.Equal(t, -1, exchangeScore("Unknown", cfg))
	assert.Equal(t, -1, exchangeScore("SomethingElse", cfg))
	// Category labels resolve through their configured mode
	assert.Equal(t, 1, exchangeScore("Anger", cfg))  // Power
	assert.Equal(t, 1, exchangeScore("Stress", cfg)) // Calm
	assert.Equal(t, 0, exchangeScore("Career", cfg)) // Clarity
}

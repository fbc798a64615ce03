package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-coach-backend/models"
)

func TestEmotionScorerStressScenario(t *testing.T) {
	scorer := NewEmotionScorer()
	emotions := defaultEmotions()

	// stress(3) + overwhelmed(4) + too much(2) = 9
	result := scorer.Analyze("I have so much stress and feel overwhelmed with too much work", emotions)

	require.NotNil(t, result.DominantEmotion)
	assert.Equal(t, "Stress", result.DominantEmotion.Name)
	assert.GreaterOrEqual(t, result.DominantEmotion.Score, 9)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, models.LanguageEnglish, result.Language)
	assert.Equal(t, models.ModeCalm, result.DominantEmotion.Mode)
	assert.Contains(t, result.DominantEmotion.MatchedKeywords, "stress")
	assert.Contains(t, result.DominantEmotion.MatchedKeywords, "overwhelmed")
	assert.Contains(t, result.DominantEmotion.MatchedKeywords, "too much")
}

func TestEmotionScorerWholeWordBoundary(t *testing.T) {
	scorer := NewEmotionScorer()
	emotions := []models.EmotionCategory{
		{
			Name: "Sadness",
			Keywords: models.BilingualLexicon{
				En: []models.LexiconEntry{{Word: "sad", Weight: 3}},
			},
			Mode: models.ModeCalm,
		},
	}

	matched := scorer.Analyze("I feel sad today", emotions)
	require.Len(t, matched.DetectedEmotions, 1)
	assert.Equal(t, 3, matched.DetectedEmotions[0].Score)

	// "sadly" must not match the keyword "sad"
	unmatched := scorer.Analyze("sadly the weather turned", emotions)
	assert.Empty(t, unmatched.DetectedEmotions)
	assert.Nil(t, unmatched.DominantEmotion)
	assert.Equal(t, 0.0, unmatched.Confidence)
}

func TestEmotionScorerCountsEveryOccurrence(t *testing.T) {
	scorer := NewEmotionScorer()
	emotions := []models.EmotionCategory{
		{
			Name: "Anxiety",
			Keywords: models.BilingualLexicon{
				En: []models.LexiconEntry{{Word: "panic", Weight: 4}},
			},
			Mode: models.ModeClarity,
		},
	}

	result := scorer.Analyze("panic after panic after panic", emotions)
	require.NotNil(t, result.DominantEmotion)
	assert.Equal(t, 12, result.DominantEmotion.Score)
}

func TestEmotionScorerConfidenceBounds(t *testing.T) {
	scorer := NewEmotionScorer()
	emotions := defaultEmotions()

	tests := []struct {
		name string
		text string
	}{
		{name: "no emotional content", text: "the weather is fine"},
		{name: "weak single keyword", text: "I am busy"},
		{name: "strong multi keyword", text: "panic fear scared anxious worried nervous"},
		{name: "hindi keywords", text: "mujhe bahut tanaav aur dabav hai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Analyze(tt.text, emotions)
			assert.GreaterOrEqual(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 1.0)
			if len(result.DetectedEmotions) == 0 {
				assert.Equal(t, 0.0, result.Confidence)
				assert.Nil(t, result.DominantEmotion)
			} else {
				assert.Greater(t, result.Confidence, 0.0)
			}
		})
	}
}

func TestEmotionScorerIsPure(t *testing.T) {
	scorer := NewEmotionScorer()
	emotions := defaultEmotions()
	text := "I feel sad and lonely and my job is stressful"

	first := scorer.Analyze(text, emotions)
	second := scorer.Analyze(text, emotions)

	require.Equal(t, len(first.DetectedEmotions), len(second.DetectedEmotions))
	for i := range first.DetectedEmotions {
		assert.Equal(t, first.DetectedEmotions[i].Name, second.DetectedEmotions[i].Name)
		assert.Equal(t, first.DetectedEmotions[i].Score, second.DetectedEmotions[i].Score)
	}
	assert.Equal(t, first.Confidence, second.Confidence)
}

func TestEmotionScorerTieBreakKeepsConfiguredOrder(t *testing.T) {
	scorer := NewEmotionScorer()
	emotions := []models.EmotionCategory{
		{
			Name:     "First",
			Keywords: models.BilingualLexicon{En: []models.LexiconEntry{{Word: "blue", Weight: 2}}},
			Mode:     models.ModeCalm,
		},
		{
			Name:     "Second",
			Keywords: models.BilingualLexicon{En: []models.LexiconEntry{{Word: "gray", Weight: 2}}},
			Mode:     models.ModePower,
		},
	}

	result := scorer.Analyze("feeling blue and gray", emotions)
	require.Len(t, result.DetectedEmotions, 2)
	assert.Equal(t, "First", result.DetectedEmotions[0].Name)
	assert.Equal(t, "Second", result.DetectedEmotions[1].Name)
}

func TestEmotionScorerMixedFlag(t *testing.T) {
	scorer := NewEmotionScorer()
	emotions := []models.EmotionCategory{
		{
			Name:     "A",
			Keywords: models.BilingualLexicon{En: []models.LexiconEntry{{Word: "alpha", Weight: 3}}},
			Mode:     models.ModeCalm,
		},
		{
			Name:     "B",
			Keywords: models.BilingualLexicon{En: []models.LexiconEntry{{Word: "beta", Weight: 2}}},
			Mode:     models.ModeCalm,
		},
	}

	// Gap of 1 is mixed
	mixed := scorer.Analyze("alpha beta", emotions)
	assert.True(t, mixed.IsMixed)

	// Gap of 2 is not mixed
	separated := scorer.Analyze("alpha alpha beta beta", emotions)
	assert.False(t, separated.IsMixed)

	// A single scored category is never mixed
	single := scorer.Analyze("alpha", emotions)
	assert.False(t, single.IsMixed)
}

func TestEmotionScorerHindiLanguageDetection(t *testing.T) {
	scorer := NewEmotionScorer()
	result := scorer.Analyze("मुझे tanaav ho raha hai", defaultEmotions())

	assert.Equal(t, models.LanguageHindi, result.Language)
	require.NotNil(t, result.DominantEmotion)
	assert.Equal(t, "Stress", result.DominantEmotion.Name)
}

package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-coach-backend/models"
)

func newTestCoachService(store ContextStore, augmenter Augmenter) *CoachService {
	if augmenter == nil {
		augmenter = NoopAugmenter{}
	}
	configService := NewConfigService(nil) // runs on built-in defaults
	composer := NewResponseComposer(augmenter)
	return NewCoachService(configService, store, composer, nil)
}

func TestProcessMessageRejectsEmptyInput(t *testing.T) {
	store := NewMemoryContextStore()
	svc := newTestCoachService(store, nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.ProcessMessage(context.Background(), models.ChatRequest{Message: text, UserID: "u1"})
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}

	// No processing happened: no context was created
	uc, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, uc)
}

func TestProcessMessageCrisisShortCircuits(t *testing.T) {
	store := NewMemoryContextStore()
	svc := newTestCoachService(store, nil)

	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message: "I am sad and I want to kill myself",
		UserID:  "u1",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsCrisis)
	assert.Contains(t, resp.Reply, "9152987821")
	assert.Empty(t, resp.DominantEmotion)
	assert.Equal(t, 0.0, resp.Confidence)

	// Crisis turns never touch the context store
	uc, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, uc)
}

func TestProcessMessageCrisisWorksWhenStoreIsDown(t *testing.T) {
	store := NewMemoryContextStore()
	store.FailSaves = true
	svc := newTestCoachService(store, nil)

	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message: "no point living anymore",
		UserID:  "u1",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsCrisis)
}

func TestProcessMessageUpdatesContext(t *testing.T) {
	store := NewMemoryContextStore()
	svc := newTestCoachService(store, nil)

	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:  "I have so much stress and feel overwhelmed",
		UserID:   "u1",
		UserName: "Asha",
	})
	require.NoError(t, err)

	assert.False(t, resp.IsCrisis)
	assert.Equal(t, "Stress", resp.DominantEmotion)
	assert.Equal(t, models.ModeCalm, resp.Mode)
	assert.Equal(t, models.LanguageEnglish, resp.Language)
	assert.NotEmpty(t, resp.Reply)

	uc, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, uc)
	assert.Equal(t, "Stress", uc.DominantEmotion)
	assert.Equal(t, models.ModeCalm, uc.CurrentMode)
	require.Len(t, uc.RecentExchanges, 1)
	assert.Equal(t, "I have so much stress and feel overwhelmed", uc.RecentExchanges[0].UserMessage)
	assert.Equal(t, resp.Reply, uc.RecentExchanges[0].AIResponse)
	assert.Equal(t, "Stress", uc.RecentExchanges[0].DetectedEmotion)
	assert.Contains(t, uc.TriggerTopics, "stress")
	assert.Contains(t, uc.TriggerTopics, "overwhelmed")
}

func TestProcessMessageWindowInvariant(t *testing.T) {
	store := NewMemoryContextStore()
	svc := newTestCoachService(store, nil)

	for i := 1; i <= 7; i++ {
		_, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
			Message: fmt.Sprintf("message %d makes me sad", i),
			UserID:  "u1",
		})
		require.NoError(t, err)
	}

	uc, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, uc)

	// Exactly the 5 most recent, newest first
	require.Len(t, uc.RecentExchanges, models.RecentExchangeLimit)
	for i, want := range []int{7, 6, 5, 4, 3} {
		assert.Equal(t, fmt.Sprintf("message %d makes me sad", want), uc.RecentExchanges[i].UserMessage)
	}
}

func TestProcessMessageTriggerTopicsDeduplicate(t *testing.T) {
	store := NewMemoryContextStore()
	svc := newTestCoachService(store, nil)

	for i := 0; i < 3; i++ {
		_, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
			Message: "I feel sad",
			UserID:  "u1",
		})
		require.NoError(t, err)
	}

	uc, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, uc)
	assert.Equal(t, []string{"sad"}, uc.TriggerTopics)
}

func TestProcessMessageComputesTrend(t *testing.T) {
	store := NewMemoryContextStore()
	svc := newTestCoachService(store, nil)

	// No trend with fewer than three exchanges
	for i := 0; i < 2; i++ {
		_, err := svc.ProcessMessage(context.Background(), models.ChatRequest{Message: "I feel so unmotivated", UserID: "u1"})
		require.NoError(t, err)
	}
	uc, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, uc.ImprovementPattern)

	_, err = svc.ProcessMessage(context.Background(), models.ChatRequest{Message: "I feel so unmotivated", UserID: "u1"})
	require.NoError(t, err)

	uc, err = store.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, uc.ImprovementPattern)
	// Three Motivation turns sum to +3
	assert.Equal(t, models.TrendImproving, uc.ImprovementPattern.Trend)
}

func TestProcessMessageUnknownEmotionKeepsMode(t *testing.T) {
	store := NewMemoryContextStore()
	svc := newTestCoachService(store, nil)

	_, err := svc.ProcessMessage(context.Background(), models.ChatRequest{Message: "I am so angry and furious", UserID: "u1"})
	require.NoError(t, err)

	uc, _ := store.Get(context.Background(), "u1")
	assert.Equal(t, models.ModePower, uc.CurrentMode)
	assert.Equal(t, "Anger", uc.DominantEmotion)

	// A neutral message leaves emotion and mode unchanged and records
	// the exchange as Unknown
	_, err = svc.ProcessMessage(context.Background(), models.ChatRequest{Message: "the bus arrived on time", UserID: "u1"})
	require.NoError(t, err)

	uc, _ = store.Get(context.Background(), "u1")
	assert.Equal(t, models.ModePower, uc.CurrentMode)
	assert.Equal(t, "Anger", uc.DominantEmotion)
	require.Len(t, uc.RecentExchanges, 2)
	assert.Equal(t, "Unknown", uc.RecentExchanges[0].DetectedEmotion)
}

func TestProcessMessageSurfacesStoreFailure(t *testing.T) {
	store := NewMemoryContextStore()
	store.FailSaves = true
	svc := newTestCoachService(store, nil)

	_, err := svc.ProcessMessage(context.Background(), models.ChatRequest{Message: "I feel sad", UserID: "u1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestProcessMessageAbandonsCancelledTurn(t *testing.T) {
	store := NewMemoryContextStore()
	svc := newTestCoachService(store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ProcessMessage(ctx, models.ChatRequest{Message: "I feel sad", UserID: "u1"})
	require.Error(t, err)

	// No side effects for an abandoned turn
	uc, storeErr := store.Get(context.Background(), "u1")
	require.NoError(t, storeErr)
	assert.Nil(t, uc)
}

func TestProcessMessageParallelUsers(t *testing.T) {
	store := NewMemoryContextStore()
	svc := newTestCoachService(store, nil)

	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		userID := fmt.Sprintf("user-%d", i%4)
		go func() {
			_, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
				Message: "so much stress today",
				UserID:  userID,
			})
			done <- err
		}()
	}
	for i := 0; i < 20; i++ {
		require.NoError(t, <-done)
	}

	// Each of the four users saw five serialized turns
	for i := 0; i < 4; i++ {
		uc, err := store.Get(context.Background(), fmt.Sprintf("user-%d", i))
		require.NoError(t, err)
		require.NotNil(t, uc)
		assert.Len(t, uc.RecentExchanges, 5)
	}
}

func TestGetContextForUnknownUser(t *testing.T) {
	svc := newTestCoachService(NewMemoryContextStore(), nil)

	uc, err := svc.GetContext(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, uc)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizera/internal/cache"
	"quizera/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheQuizSessionStore_NilCache(t *testing.T) {
	store, err := NewCacheQuizSessionStore(nil, time.Hour)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestCacheQuizSessionStore_SaveQuiz(t *testing.T) {
	ctx := context.Background()
	key := cache.SessionQuizKey(testSessionID)
	payload := `{"questions":[{"question":"2+2?","options":["3","4"],"answer":"4","explanation":"Basic sum."}]}`
	quiz := &domain.QuizResult{Questions: []domain.Question{
		{Question: "2+2?", Options: []string{"3", "4"}, Answer: "4", Explanation: "Basic sum."},
	}}

	mockCache := new(MockCache)
	store, err := NewCacheQuizSessionStore(mockCache, 2*time.Hour)
	require.NoError(t, err)

	mockCache.On("Set", ctx, key, payload, 2*time.Hour).Return(nil).Once()
	assert.NoError(t, store.SaveQuiz(ctx, testSessionID, quiz))

	mockCache.On("Set", ctx, key, payload, 2*time.Hour).Return(errors.New("redis down")).Once()
	err = store.SaveQuiz(ctx, testSessionID, quiz)
	assert.True(t, domain.HasCode(err, domain.CodeInternal))

	err = store.SaveQuiz(ctx, testSessionID, nil)
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))
	mockCache.AssertExpectations(t)
}

func TestCacheQuizSessionStore_LastQuiz(t *testing.T) {
	ctx := context.Background()
	key := cache.SessionQuizKey(testSessionID)

	tests := []struct {
		name      string
		cached    string
		cacheErr  error
		wantLen   int
		wantErrIs error
		wantCode  domain.ErrorCode
	}{
		{name: "Hit", cached: `{"questions":[{"question":"q","answer":"a","explanation":""}]}`, wantLen: 1},
		{name: "NullQuestions", cached: `{"questions":null}`, wantLen: 0},
		{name: "Miss", cacheErr: domain.ErrCacheMiss, wantErrIs: domain.ErrNoActiveQuiz},
		{name: "Empty", cached: "", wantErrIs: domain.ErrNoActiveQuiz},
		{name: "CacheError", cacheErr: errors.New("redis down"), wantCode: domain.CodeInternal},
		{name: "Corrupt", cached: "{not json", wantCode: domain.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCache := new(MockCache)
			store, _ := NewCacheQuizSessionStore(mockCache, time.Hour)
			mockCache.On("Get", ctx, key).Return(tt.cached, tt.cacheErr).Once()

			quiz, err := store.LastQuiz(ctx, testSessionID)
			switch {
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, quiz)
			case tt.wantCode != "":
				assert.True(t, domain.HasCode(err, tt.wantCode))
				assert.Nil(t, quiz)
			default:
				require.NoError(t, err)
				assert.NotNil(t, quiz.Questions)
				assert.Len(t, quiz.Questions, tt.wantLen)
			}
			mockCache.AssertExpectations(t)
		})
	}
}

func TestCacheQuizSessionStore_ClearQuiz(t *testing.T) {
	ctx := context.Background()
	key := cache.SessionQuizKey(testSessionID)
	mockCache := new(MockCache)
	store, _ := NewCacheQuizSessionStore(mockCache, time.Hour)

	mockCache.On("Delete", ctx, key).Return(nil).Once()
	assert.NoError(t, store.ClearQuiz(ctx, testSessionID))

	mockCache.On("Delete", ctx, key).Return(errors.New("redis down")).Once()
	assert.True(t, domain.HasCode(store.ClearQuiz(ctx, testSessionID), domain.CodeInternal))
	mockCache.AssertExpectations(t)
}

func TestMemoryQuizSessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryQuizSessionStore(time.Hour).(*memoryQuizSessionStore)
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	_, err := store.LastQuiz(ctx, testSessionID)
	assert.ErrorIs(t, err, domain.ErrNoActiveQuiz)
	assert.True(t, domain.HasCode(store.SaveQuiz(ctx, testSessionID, nil), domain.CodeInvalidInput))

	require.NoError(t, store.SaveQuiz(ctx, testSessionID, twoQuestionQuiz()))
	quiz, err := store.LastQuiz(ctx, testSessionID)
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 2)

	require.NoError(t, store.ClearQuiz(ctx, testSessionID))
	_, err = store.LastQuiz(ctx, testSessionID)
	assert.ErrorIs(t, err, domain.ErrNoActiveQuiz)
	assert.NoError(t, store.ClearQuiz(ctx, testSessionID))
}

func TestMemoryQuizSessionStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryQuizSessionStore(time.Hour).(*memoryQuizSessionStore)
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	require.NoError(t, store.SaveQuiz(ctx, "old", twoQuestionQuiz()))
	clock = clock.Add(30 * time.Minute)
	_, err := store.LastQuiz(ctx, "old")
	assert.NoError(t, err)

	clock = clock.Add(30 * time.Minute)
	_, err = store.LastQuiz(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrNoActiveQuiz)

	require.NoError(t, store.SaveQuiz(ctx, "a", twoQuestionQuiz()))
	clock = clock.Add(2 * time.Hour)
	require.NoError(t, store.SaveQuiz(ctx, "b", twoQuestionQuiz()))
	store.mu.Lock()
	_, stale := store.quizzes["a"]
	store.mu.Unlock()
	assert.False(t, stale, "expired entries are swept on save")
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"quizera/internal/cache"
	"quizera/internal/domain"
	"quizera/internal/logger"

	"go.uber.org/zap"
)

// cacheQuizSessionStore keeps each session's last quiz as JSON in the shared cache.
type cacheQuizSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewCacheQuizSessionStore creates a QuizSessionStore over cache. Entries
// expire after ttl.
func NewCacheQuizSessionStore(cache domain.Cache, ttl time.Duration) (domain.QuizSessionStore, error) {
	if cache == nil {
		return nil, fmt.Errorf("cache instance cannot be nil for quiz session store")
	}
	return &cacheQuizSessionStore{cache: cache, ttl: ttl}, nil
}

func (s *cacheQuizSessionStore) SaveQuiz(ctx context.Context, sessionID string, quiz *domain.QuizResult) error {
	if quiz == nil {
		return domain.NewInvalidInputError("cannot keep a nil quiz in a session")
	}
	key := cache.SessionQuizKey(sessionID)
	data, err := json.Marshal(quiz)
	if err != nil {
		return domain.NewInternalError("failed to marshal quiz for session", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache session quiz", zap.String("key", key), zap.Error(err))
		return domain.NewInternalError(fmt.Sprintf("failed to set session quiz for key %s", key), err)
	}
	logger.Get().Debug("Cached session quiz", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *cacheQuizSessionStore) LastQuiz(ctx context.Context, sessionID string) (*domain.QuizResult, error) {
	key := cache.SessionQuizKey(sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.ErrNoActiveQuiz
		}
		logger.Get().Error("Failed to get session quiz", zap.String("key", key), zap.Error(err))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get session quiz for key %s", key), err)
	}
	if data == "" {
		return nil, domain.ErrNoActiveQuiz
	}

	var quiz domain.QuizResult
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		logger.Get().Error("Failed to unmarshal session quiz", zap.String("key", key), zap.Error(err))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal session quiz for key %s", key), err)
	}
	if quiz.Questions == nil {
		quiz.Questions = []domain.Question{}
	}
	return &quiz, nil
}

func (s *cacheQuizSessionStore) ClearQuiz(ctx context.Context, sessionID string) error {
	key := cache.SessionQuizKey(sessionID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to delete session quiz for key %s", key), err)
	}
	return nil
}

type sessionQuiz struct {
	quiz      *domain.QuizResult
	expiresAt time.Time
}

// memoryQuizSessionStore serves when no cache is configured. Expired entries
// are dropped when read and swept on every save.
type memoryQuizSessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	quizzes map[string]sessionQuiz
}

func NewMemoryQuizSessionStore(ttl time.Duration) domain.QuizSessionStore {
	return &memoryQuizSessionStore{
		ttl:     ttl,
		now:     time.Now,
		quizzes: make(map[string]sessionQuiz),
	}
}

func (s *memoryQuizSessionStore) SaveQuiz(_ context.Context, sessionID string, quiz *domain.QuizResult) error {
	if quiz == nil {
		return domain.NewInvalidInputError("cannot keep a nil quiz in a session")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if s.ttl > 0 {
		for id, entry := range s.quizzes {
			if !now.Before(entry.expiresAt) {
				delete(s.quizzes, id)
			}
		}
	}
	s.quizzes[sessionID] = sessionQuiz{quiz: quiz, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *memoryQuizSessionStore) LastQuiz(_ context.Context, sessionID string) (*domain.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.quizzes[sessionID]
	if !ok {
		return nil, domain.ErrNoActiveQuiz
	}
	if s.ttl > 0 && !s.now().Before(entry.expiresAt) {
		delete(s.quizzes, sessionID)
		return nil, domain.ErrNoActiveQuiz
	}
	return entry.quiz, nil
}

func (s *memoryQuizSessionStore) ClearQuiz(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quizzes, sessionID)
	return nil
}

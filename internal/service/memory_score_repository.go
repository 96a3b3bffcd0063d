package service

import (
	"context"
	"sort"
	"sync"

	"quizera/internal/domain"
)

// memoryScoreRepository keeps the leaderboard in process memory when no
// database is configured.
type memoryScoreRepository struct {
	mu      sync.RWMutex
	entries []domain.ScoreEntry
}

func NewMemoryScoreRepository() domain.ScoreRepository {
	return &memoryScoreRepository{}
}

func (r *memoryScoreRepository) SaveScore(_ context.Context, entry *domain.ScoreEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memoryScoreRepository) ListTopScores(_ context.Context, topic string, limit int) ([]*domain.ScoreEntry, error) {
	r.mu.RLock()
	matched := make([]*domain.ScoreEntry, 0, len(r.entries))
	for i := range r.entries {
		if topic == "" || r.entries[i].Topic == topic {
			e := r.entries[i]
			matched = append(matched, &e)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *memoryScoreRepository) ClearScores(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := int64(len(r.entries))
	r.entries = nil
	return removed, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"quizera/internal/domain"
	"quizera/internal/dto"
	"quizera/internal/logger"
	"quizera/internal/util"

	"go.uber.org/zap"
)

const (
	scoreSavedMessage       = "Score saved"
	leaderboardClearMessage = "Leaderboard cleared"
)

// SaveScoreInput is a validated leaderboard submission.
type SaveScoreInput struct {
	Username string
	Score    int
	Topic    string
}

// LeaderboardService records finished games and ranks them.
type LeaderboardService interface {
	SaveScore(ctx context.Context, input SaveScoreInput) (*dto.SaveScoreResponse, error)
	Leaderboard(ctx context.Context, topic string, limit int) (*dto.LeaderboardResponse, error)
	ClearLeaderboard(ctx context.Context) (*dto.ClearLeaderboardResponse, error)
}

type leaderboardService struct {
	repo  domain.ScoreRepository
	newID func() string
	now   func() time.Time
}

func NewLeaderboardService(repo domain.ScoreRepository) (LeaderboardService, error) {
	if repo == nil {
		return nil, fmt.Errorf("score repository cannot be nil for LeaderboardService")
	}
	return &leaderboardService{repo: repo, newID: util.NewULID, now: time.Now}, nil
}

// SaveScore stamps the entry with the server clock.
func (s *leaderboardService) SaveScore(ctx context.Context, input SaveScoreInput) (*dto.SaveScoreResponse, error) {
	entry := &domain.ScoreEntry{
		ID:        s.newID(),
		Username:  input.Username,
		Score:     input.Score,
		Topic:     input.Topic,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.SaveScore(ctx, entry); err != nil {
		return nil, domain.NewInternalError("Failed to save score", err)
	}
	logger.Get().Info("Score saved",
		zap.String("score_id", entry.ID),
		zap.String("username", entry.Username),
		zap.Int("score", entry.Score),
		zap.String("topic", entry.Topic),
	)
	return &dto.SaveScoreResponse{Message: scoreSavedMessage, ID: entry.ID}, nil
}

func (s *leaderboardService) Leaderboard(ctx context.Context, topic string, limit int) (*dto.LeaderboardResponse, error) {
	entries, err := s.repo.ListTopScores(ctx, topic, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load leaderboard", err)
	}
	resp := &dto.LeaderboardResponse{Leaderboard: make([]dto.ScoreResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Leaderboard = append(resp.Leaderboard, dto.ScoreResponse{
			ID:        e.ID,
			Username:  e.Username,
			Score:     e.Score,
			Topic:     e.Topic,
			Timestamp: e.CreatedAt,
		})
	}
	return resp, nil
}

func (s *leaderboardService) ClearLeaderboard(ctx context.Context) (*dto.ClearLeaderboardResponse, error) {
	removed, err := s.repo.ClearScores(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to clear leaderboard", err)
	}
	logger.Get().Warn("Leaderboard cleared", zap.Int64("removed", removed))
	return &dto.ClearLeaderboardResponse{Message: leaderboardClearMessage, Removed: removed}, nil
}

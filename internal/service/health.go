package service

import (
	"context"
	"time"

	"quizera/internal/dto"
	"quizera/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

// HealthCheck pings one backing service.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthService reports whether the configured backends answer.
type HealthService interface {
	Check(ctx context.Context) *dto.HealthResponse
}

type healthService struct {
	timeout time.Duration
	checks  []HealthCheck
}

// NewHealthService runs every check concurrently, each bounded by timeout.
// With no checks the service is always healthy.
func NewHealthService(timeout time.Duration, checks ...HealthCheck) HealthService {
	return &healthService{timeout: timeout, checks: checks}
}

func (s *healthService) Check(ctx context.Context) *dto.HealthResponse {
	results := make([]string, len(s.checks))
	g, gctx := errgroup.WithContext(ctx)
	for i, check := range s.checks {
		g.Go(func() error {
			pingCtx, cancel := withTimeout(gctx, s.timeout)
			defer cancel()
			if err := check.Ping(pingCtx); err != nil {
				logger.Get().Warn("Health check failed", zap.String("check", check.Name), zap.Error(err))
				results[i] = err.Error()
				return nil
			}
			results[i] = HealthStatusOK
			return nil
		})
	}
	_ = g.Wait()

	resp := &dto.HealthResponse{Status: HealthStatusOK, Checks: make(map[string]string, len(s.checks))}
	for i, check := range s.checks {
		resp.Checks[check.Name] = results[i]
		if results[i] != HealthStatusOK {
			resp.Status = HealthStatusDegraded
		}
	}
	return resp
}

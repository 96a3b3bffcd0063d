package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quizera/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const (
	thinkOpenTag  = "<think>"
	thinkCloseTag = "</think>"
)

// Invoker implements domain.ModelInvoker over a langchaingo model.
type Invoker struct {
	model       llms.Model
	temperature float64
	logger      *zap.Logger
}

// NewInvoker wraps model. A nil logger discards output.
func NewInvoker(model llms.Model, temperature float64, logger *zap.Logger) (*Invoker, error) {
	if model == nil {
		return nil, fmt.Errorf("llm model cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{
		model:       model,
		temperature: temperature,
		logger:      logger,
	}, nil
}

// Invoke sends prompt as a single human message and returns the response text
// with any reasoning blocks removed. Every failure is a provider error.
func (i *Invoker) Invoke(ctx context.Context, prompt string) (string, error) {
	response, err := llms.GenerateFromSinglePrompt(ctx, i.model, prompt, llms.WithTemperature(i.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			i.logger.Error("LLM request timed out", zap.Error(err))
			return "", domain.NewProviderError(fmt.Errorf("LLM request timed out: %w", err))
		}
		i.logger.Error("Failed to get response from LLM", zap.Error(err))
		return "", domain.NewProviderError(fmt.Errorf("LLM call failed: %w", err))
	}

	cleaned := StripThinking(response)
	if cleaned != response {
		i.logger.Debug("LLM response after stripping <think> tags", zap.String("cleaned_response", cleaned))
	}
	return cleaned, nil
}

// StripThinking removes every <think>...</think> block. An unterminated
// opening tag is left in place.
func StripThinking(s string) string {
	for {
		start := strings.Index(s, thinkOpenTag)
		if start == -1 {
			return s
		}
		end := strings.Index(s[start:], thinkCloseTag)
		if end == -1 {
			return s
		}
		s = strings.TrimSpace(s[:start] + s[start+end+len(thinkCloseTag):])
	}
}

var _ domain.ModelInvoker = (*Invoker)(nil)

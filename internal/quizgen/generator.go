package quizgen

import (
	"context"
	"fmt"

	"quizera/internal/domain"

	"go.uber.org/zap"
)

// Generator runs the quiz pipeline: build prompt, invoke the model, extract
// the JSON payload and normalize it for the requested question type.
type Generator struct {
	invoker domain.ModelInvoker
	opts    PromptOptions
	logger  *zap.Logger
}

// NewGenerator creates a Generator backed by invoker.
func NewGenerator(invoker domain.ModelInvoker, opts PromptOptions, logger *zap.Logger) (*Generator, error) {
	if invoker == nil {
		return nil, fmt.Errorf("model invoker cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		invoker: invoker,
		opts:    opts,
		logger:  logger,
	}, nil
}

// Generate produces a normalized quiz for req. Errors are provider errors from
// the model call or malformed response errors from extraction; nothing after
// extraction fails.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.QuizResult, error) {
	prompt := BuildPrompt(req, g.opts)
	g.logger.Info("Generating quiz",
		zap.String("quiz_type", req.QuestionType.Label()),
		zap.String("difficulty", req.Difficulty.Label()),
		zap.Int("num_questions", req.QuestionCount),
		zap.Int("source_chars", len([]rune(req.SourceText))),
		zap.String("topic", req.Topic),
	)

	raw, err := g.invoker.Invoke(ctx, prompt)
	if err != nil {
		g.logger.Error("Model invocation failed", zap.Error(err))
		if domain.IsProviderError(err) {
			return nil, err
		}
		return nil, domain.NewProviderError(err)
	}
	g.logger.Debug("Raw model response received", zap.String("raw_response", raw))

	parsed, err := ExtractJSON(raw)
	if err != nil {
		g.logger.Error("Failed to extract JSON from model response", zap.Error(err))
		return nil, err
	}

	result := Normalize(parsed, req.QuestionType)
	if len(result.Questions) != req.QuestionCount {
		g.logger.Warn("Model returned a different number of questions than requested",
			zap.Int("num_requested", req.QuestionCount),
			zap.Int("num_returned", len(result.Questions)),
		)
	}
	g.logger.Info("Quiz generated", zap.Int("num_questions", len(result.Questions)))
	return result, nil
}

var _ domain.QuizGenerator = (*Generator)(nil)

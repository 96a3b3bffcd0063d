package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"quizera/internal/domain"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

var errEmptyDocument = errors.New("document is empty")

// Extractor implements domain.TextExtractor for PDF documents.
type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// ExtractText returns the plain text of every page, each followed by a
// newline. Pages without content contribute only the newline.
func (e *Extractor) ExtractText(ctx context.Context, document []byte) (text string, err error) {
	if len(document) == 0 {
		return "", domain.NewExtractionError(errEmptyDocument)
	}

	// The parser panics on some truncated or corrupt inputs.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("PDF parser panicked", zap.Any("panic", r))
			text, err = "", domain.NewExtractionError(fmt.Errorf("corrupt pdf: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		e.logger.Error("Failed to open PDF", zap.Error(err))
		return "", domain.NewExtractionError(err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", domain.NewExtractionError(err)
		}
		page := reader.Page(i)
		if !page.V.IsNull() {
			pageText, err := page.GetPlainText(nil)
			if err != nil {
				e.logger.Error("Failed to read PDF page", zap.Int("page", i), zap.Error(err))
				return "", domain.NewExtractionError(fmt.Errorf("page %d: %w", i, err))
			}
			sb.WriteString(pageText)
		}
		sb.WriteString("\n")
	}

	e.logger.Debug("Extracted PDF text", zap.Int("pages", numPages), zap.Int("chars", sb.Len()))
	return sb.String(), nil
}

var _ domain.TextExtractor = (*Extractor)(nil)

package domain

import (
	"context"
	"strconv"
	"strings"
)

// QuestionType is the requested question format.
type QuestionType int

const (
	QuestionTypeMCQ QuestionType = iota + 1
	QuestionTypeFillBlank
	QuestionTypeTrueFalse
	QuestionTypeShortAnswer
	QuestionTypeLongAnswer
	QuestionTypeMixed
)

var questionTypeLabels = map[QuestionType]string{
	QuestionTypeMCQ:         "Multiple Choice Questions (MCQs)",
	QuestionTypeFillBlank:   "Fill in the blanks",
	QuestionTypeTrueFalse:   "True/False questions",
	QuestionTypeShortAnswer: "Short answer questions",
	QuestionTypeLongAnswer:  "Long answer questions",
	QuestionTypeMixed:       "Mix of all question types",
}

// Label returns the human-readable description used in prompts.
func (t QuestionType) Label() string {
	if label, ok := questionTypeLabels[t]; ok {
		return label
	}
	return questionTypeLabels[QuestionTypeMCQ]
}

func (t QuestionType) Valid() bool {
	_, ok := questionTypeLabels[t]
	return ok
}

// ParseQuestionType maps a wire value ("1".."6") to a QuestionType.
// Unknown values fall back to MCQ.
func ParseQuestionType(s string) QuestionType {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !QuestionType(n).Valid() {
		return QuestionTypeMCQ
	}
	return QuestionType(n)
}

// Difficulty is the requested difficulty level.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

var difficultyLabels = map[Difficulty]string{
	DifficultyEasy:   "Easy",
	DifficultyMedium: "Medium",
	DifficultyHard:   "Hard",
}

func (d Difficulty) Label() string {
	if label, ok := difficultyLabels[d]; ok {
		return label
	}
	return difficultyLabels[DifficultyMedium]
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyLabels[d]
	return ok
}

// ParseDifficulty maps a wire value ("1".."3") to a Difficulty.
// Unknown values fall back to Medium.
func ParseDifficulty(s string) Difficulty {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Difficulty(n).Valid() {
		return DifficultyMedium
	}
	return Difficulty(n)
}

// ParseDifficultyName accepts "easy", "medium" or "hard" in any case as well
// as the numeric wire values. Unknown values fall back to Medium.
func ParseDifficultyName(s string) Difficulty {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, label := range difficultyLabels {
		if strings.ToLower(label) == name {
			return d
		}
	}
	return ParseDifficulty(name)
}

// GenerationRequest describes one quiz to generate. The quiz is drawn from
// SourceText, or from general knowledge of Topic when SourceText is empty.
type GenerationRequest struct {
	SourceText    string
	Topic         string
	QuestionType  QuestionType
	Difficulty    Difficulty
	QuestionCount int
}

// Question is a normalized quiz question.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// QuizResult is the only artifact returned by quiz generation.
type QuizResult struct {
	Questions []Question `json:"questions"`
}

// TextExtractor turns document bytes into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, document []byte) (string, error)
}

// ModelInvoker sends one prompt to a generative model and returns its raw text.
type ModelInvoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// QuizGenerator runs the full generation pipeline for a request.
type QuizGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (*QuizResult, error)
}

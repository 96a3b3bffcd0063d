package dto

import "time"

// GenerationResponse is one entry in a document's quiz history.
type GenerationResponse struct {
	ID            string        `json:"id"`
	DocumentID    string        `json:"document_id,omitempty"`
	QuizType      int           `json:"quiz_type"`
	QuizTypeLabel string        `json:"quiz_type_label"`
	Difficulty    string        `json:"difficulty"`
	QuestionCount int           `json:"question_count"`
	Quiz          *QuizResponse `json:"quiz"`
	CreatedAt     time.Time     `json:"created_at"`
}

// QuestionResponse mirrors one generated question.
type QuestionResponse struct {
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// QuizResponse is the body returned by quiz generation.
// @Description Generated quiz
type QuizResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// StatusResponse answers the connectivity check.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

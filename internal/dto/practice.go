package dto

import "encoding/json"

// TopicQuizRequest asks for a quiz about a free-text topic.
// @Description Topic quiz request
type TopicQuizRequest struct {
	Topic        string `json:"topic" example:"Photosynthesis"`
	Difficulty   string `json:"difficulty" example:"medium"` // easy, medium, hard or 1..3
	QuizType     int    `json:"quiz_type,omitempty" example:"1"`
	NumQuestions int    `json:"num_questions,omitempty" example:"5"`
}

// ChatbotQuizResponse is returned by upload-and-quiz.
type ChatbotQuizResponse struct {
	Message string             `json:"message"`
	Quiz    []QuestionResponse `json:"quiz"`
}

// SubmitQuizRequest carries one answer per question: an option index, the
// answer text, or null for a skipped question.
type SubmitQuizRequest struct {
	Answers []json.RawMessage `json:"answers" swaggertype:"array,object"`
}

// MissedQuestionResponse shows the expected answer for a missed question.
type MissedQuestionResponse struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// QuizGradeResponse is the result of a quiz submission.
// @Description Submission result
type QuizGradeResponse struct {
	Score   int                      `json:"score"`
	Total   int                      `json:"total"`
	Percent int                      `json:"percent"`
	Wrong   []MissedQuestionResponse `json:"wrong"`
}

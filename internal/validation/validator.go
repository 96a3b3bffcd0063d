package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"quizera/internal/domain"
	"quizera/internal/dto"
	"quizera/internal/util"
)

const (
	minQuestionCount = 1

	maxTopicChars    = 200
	maxUsernameChars = 64

	defaultLeaderboardLimit = 50
	maxLeaderboardLimit     = 100
)

// Validator provides request validation functionality
type Validator struct {
	defaultQuestionCount int
	maxQuestionCount     int
}

// NewValidator creates a new validator instance
func NewValidator(defaultQuestionCount, maxQuestionCount int) *Validator {
	return &Validator{
		defaultQuestionCount: defaultQuestionCount,
		maxQuestionCount:     maxQuestionCount,
	}
}

// ValidateQuestionCount parses num_questions. A missing or non-integer value
// yields the default; an integer outside 1..max is rejected.
func (v *Validator) ValidateQuestionCount(raw string) (int, domain.ValidationErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return v.defaultQuestionCount, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return v.defaultQuestionCount, nil
	}
	if count < minQuestionCount || count > v.maxQuestionCount {
		return 0, domain.ValidationErrors{
			domain.NewOutOfRangeError("num_questions", count, minQuestionCount, v.maxQuestionCount),
		}
	}
	return count, nil
}

// ValidateDocumentID checks that id is a ULID.
func (v *Validator) ValidateDocumentID(id string) domain.ValidationErrors {
	if !util.IsValidULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
	}
	return nil
}

// ValidateQuestionCountValue checks a count decoded from JSON, where zero
// means the field was omitted.
func (v *Validator) ValidateQuestionCountValue(count int) (int, domain.ValidationErrors) {
	if count == 0 {
		return v.defaultQuestionCount, nil
	}
	if count < minQuestionCount || count > v.maxQuestionCount {
		return 0, domain.ValidationErrors{
			domain.NewOutOfRangeError("num_questions", count, minQuestionCount, v.maxQuestionCount),
		}
	}
	return count, nil
}

// ValidateTopicQuiz checks a topic quiz request and returns the trimmed
// topic and the question count to use.
func (v *Validator) ValidateTopicQuiz(req dto.TopicQuizRequest) (string, int, domain.ValidationErrors) {
	var errs domain.ValidationErrors

	topic := strings.TrimSpace(req.Topic)
	switch {
	case topic == "":
		errs = append(errs, domain.NewRequiredError("topic"))
	case utf8.RuneCountInString(topic) > maxTopicChars:
		errs = append(errs, domain.NewTooLongError("topic", nil, maxTopicChars))
	}

	count, countErrs := v.ValidateQuestionCountValue(req.NumQuestions)
	errs = append(errs, countErrs...)

	if len(errs) > 0 {
		return "", 0, errs
	}
	return topic, count, nil
}

// ValidateScore checks a leaderboard submission and returns the trimmed
// username and topic.
func (v *Validator) ValidateScore(req dto.SaveScoreRequest) (string, string, domain.ValidationErrors) {
	var errs domain.ValidationErrors

	username := strings.TrimSpace(req.Username)
	switch {
	case username == "":
		errs = append(errs, domain.NewRequiredError("username"))
	case utf8.RuneCountInString(username) > maxUsernameChars:
		errs = append(errs, domain.NewTooLongError("username", username, maxUsernameChars))
	}

	switch {
	case req.Score == nil:
		errs = append(errs, domain.NewRequiredError("score"))
	case *req.Score < 0:
		errs = append(errs, domain.ValidationError{Field: "score", Message: "must not be negative", Value: *req.Score})
	}

	topic := strings.TrimSpace(req.Topic)
	if utf8.RuneCountInString(topic) > maxTopicChars {
		errs = append(errs, domain.NewTooLongError("topic", nil, maxTopicChars))
	}

	if len(errs) > 0 {
		return "", "", errs
	}
	return username, topic, nil
}

// ValidateLeaderboardLimit parses the limit query parameter. A missing value
// yields the default.
func (v *Validator) ValidateLeaderboardLimit(raw string) (int, domain.ValidationErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLeaderboardLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("limit", raw)}
	}
	if limit < 1 || limit > maxLeaderboardLimit {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("limit", limit, 1, maxLeaderboardLimit)}
	}
	return limit, nil
}

// ValidateAnswers decodes submitted answers. A number is an option index,
// a string or boolean is answer text and null is a skipped question.
func (v *Validator) ValidateAnswers(raw []json.RawMessage) ([]domain.SubmittedAnswer, domain.ValidationErrors) {
	if raw == nil {
		return nil, domain.ValidationErrors{domain.NewRequiredError("answers")}
	}

	answers := make([]domain.SubmittedAnswer, len(raw))
	var errs domain.ValidationErrors
	for i, item := range raw {
		field := fmt.Sprintf("answers[%d]", i)
		item = bytes.TrimSpace(item)
		if len(item) == 0 || bytes.Equal(item, []byte("null")) {
			continue
		}

		var value interface{}
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()
		if err := dec.Decode(&value); err != nil {
			errs = append(errs, domain.NewInvalidFormatError(field, string(item)))
			continue
		}

		switch val := value.(type) {
		case json.Number:
			idx, err := strconv.Atoi(val.String())
			if err != nil {
				errs = append(errs, domain.NewInvalidFormatError(field, val.String()))
				continue
			}
			answers[i].OptionIndex = &idx
		case string:
			answers[i].Text = val
		case bool:
			answers[i].Text = strconv.FormatBool(val)
		default:
			errs = append(errs, domain.NewInvalidFormatError(field, string(item)))
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return answers, nil
}

package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"quizera/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateQuestionCount(t *testing.T) {
	v := NewValidator(5, 50)

	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "missing uses default", raw: "", want: 5},
		{name: "non-integer uses default", raw: "ten", want: 5},
		{name: "valid", raw: "12", want: 12},
		{name: "padded", raw: " 3 ", want: 3},
		{name: "lower bound", raw: "1", want: 1},
		{name: "upper bound", raw: "50", want: 50},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-4", wantErr: true},
		{name: "above max", raw: "51", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := v.ValidateQuestionCount(tt.raw)
			if tt.wantErr {
				assert.Len(t, errs, 1)
				assert.Equal(t, "num_questions", errs[0].Field)
				assert.Contains(t, errs.Error(), "between 1 and 50")
				return
			}
			assert.Empty(t, errs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator_ValidateDocumentID(t *testing.T) {
	v := NewValidator(5, 50)

	assert.Empty(t, v.ValidateDocumentID("01HGZ8VNRYXS8QKNJV5GRWPWDQ"))

	errs := v.ValidateDocumentID("../../etc/passwd")
	assert.Len(t, errs, 1)
	assert.Equal(t, "id", errs[0].Field)
	assert.Equal(t, "invalid format", errs[0].Message)
}

func TestValidator_ValidateTopicQuiz(t *testing.T) {
	v := NewValidator(5, 50)

	topic, count, errs := v.ValidateTopicQuiz(dto.TopicQuizRequest{Topic: "  Photosynthesis "})
	assert.Empty(t, errs)
	assert.Equal(t, "Photosynthesis", topic)
	assert.Equal(t, 5, count)

	_, count, errs = v.ValidateTopicQuiz(dto.TopicQuizRequest{Topic: "Cells", NumQuestions: 12})
	assert.Empty(t, errs)
	assert.Equal(t, 12, count)

	_, _, errs = v.ValidateTopicQuiz(dto.TopicQuizRequest{Topic: "   ", NumQuestions: 51})
	require.Len(t, errs, 2)
	assert.Equal(t, "topic", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
	assert.Equal(t, "num_questions", errs[1].Field)

	_, _, errs = v.ValidateTopicQuiz(dto.TopicQuizRequest{Topic: strings.Repeat("é", 201)})
	require.Len(t, errs, 1)
	assert.Equal(t, "must be at most 200 characters", errs[0].Message)
	assert.Nil(t, errs[0].Value)
}

func TestValidator_ValidateScore(t *testing.T) {
	v := NewValidator(5, 50)
	score := func(n int) *int { return &n }

	username, topic, errs := v.ValidateScore(dto.SaveScoreRequest{Username: " ada ", Score: score(0), Topic: " Cells "})
	assert.Empty(t, errs)
	assert.Equal(t, "ada", username)
	assert.Equal(t, "Cells", topic)

	_, _, errs = v.ValidateScore(dto.SaveScoreRequest{})
	require.Len(t, errs, 2)
	assert.Equal(t, "username", errs[0].Field)
	assert.Equal(t, "score", errs[1].Field)

	_, _, errs = v.ValidateScore(dto.SaveScoreRequest{Username: strings.Repeat("a", 65), Score: score(-1)})
	require.Len(t, errs, 2)
	assert.Equal(t, "must be at most 64 characters", errs[0].Message)
	assert.Equal(t, "must not be negative", errs[1].Message)
}

func TestValidator_ValidateLeaderboardLimit(t *testing.T) {
	v := NewValidator(5, 50)

	limit, errs := v.ValidateLeaderboardLimit("")
	assert.Empty(t, errs)
	assert.Equal(t, 50, limit)

	limit, errs = v.ValidateLeaderboardLimit("10")
	assert.Empty(t, errs)
	assert.Equal(t, 10, limit)

	for _, raw := range []string{"ten", "0", "101"} {
		_, errs = v.ValidateLeaderboardLimit(raw)
		require.Len(t, errs, 1, raw)
		assert.Equal(t, "limit", errs[0].Field)
	}
}

func TestValidator_ValidateAnswers(t *testing.T) {
	v := NewValidator(5, 50)

	var raw []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(`[1, "Paris", null, true, 0]`), &raw))

	answers, errs := v.ValidateAnswers(raw)
	require.Empty(t, errs)
	require.Len(t, answers, 5)
	require.NotNil(t, answers[0].OptionIndex)
	assert.Equal(t, 1, *answers[0].OptionIndex)
	assert.Equal(t, "Paris", answers[1].Text)
	assert.Nil(t, answers[2].OptionIndex)
	assert.Empty(t, answers[2].Text)
	assert.Equal(t, "true", answers[3].Text)
	require.NotNil(t, answers[4].OptionIndex)
	assert.Equal(t, 0, *answers[4].OptionIndex)

	require.NoError(t, json.Unmarshal([]byte(`[1.5, {"a":1}, [2]]`), &raw))
	_, errs = v.ValidateAnswers(raw)
	require.Len(t, errs, 3)
	assert.Equal(t, "answers[0]", errs[0].Field)
	assert.Equal(t, "answers[2]", errs[2].Field)

	_, errs = v.ValidateAnswers(nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "answers", errs[0].Field)
}

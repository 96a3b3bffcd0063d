package quizgen

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	"quizera/internal/domain"
)

// trueFalseOptions is the fixed option set for True/False questions.
var trueFalseOptions = []string{"True", "False"}

// questionRecord is a question as the model produced it, before any
// type rules are applied.
type questionRecord struct {
	Question    string
	Options     []string
	HasOptions  bool
	Answer      string
	Explanation string
}

// Normalize coerces a parsed model response into a QuizResult satisfying the
// structural rules of qt. It never fails: absent or mistyped fields become
// empty values and invalid answers are repaired in place.
func Normalize(parsed ParsedObject, qt domain.QuestionType) *domain.QuizResult {
	result := &domain.QuizResult{Questions: []domain.Question{}}

	rawQuestions, ok := parsed["questions"]
	if !ok {
		return result
	}
	var records []json.RawMessage
	if err := json.Unmarshal(rawQuestions, &records); err != nil {
		return result
	}

	for _, raw := range records {
		rec := decodeRecord(raw)
		result.Questions = append(result.Questions, normalizeRecord(rec, qt))
	}
	return result
}

func normalizeRecord(rec questionRecord, qt domain.QuestionType) domain.Question {
	q := domain.Question{
		Question:    rec.Question,
		Answer:      rec.Answer,
		Explanation: rec.Explanation,
	}
	if rec.HasOptions {
		q.Options = rec.Options
	}

	switch qt {
	case domain.QuestionTypeMCQ:
		if len(q.Options) > 0 && !slices.Contains(q.Options, q.Answer) {
			q.Answer = ReconcileAnswer(q.Answer, q.Options)
		}
	case domain.QuestionTypeTrueFalse:
		q.Options = append([]string(nil), trueFalseOptions...)
		if strings.EqualFold(q.Answer, "true") {
			q.Answer = "True"
		} else {
			q.Answer = "False"
		}
	case domain.QuestionTypeFillBlank:
		if !strings.Contains(q.Question, BlankMarker) {
			q.Question = strings.ReplaceAll(q.Question, "_", BlankMarker)
		}
	}
	return q
}

// decodeRecord reads the optional fields of one question. Anything that is not
// a JSON object yields an empty record.
func decodeRecord(raw json.RawMessage) questionRecord {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return questionRecord{}
	}

	rec := questionRecord{
		Question:    scalarText(fields["question"]),
		Answer:      scalarText(fields["answer"]),
		Explanation: scalarText(fields["explanation"]),
	}

	if rawOptions, ok := fields["options"]; ok {
		var items []json.RawMessage
		if err := json.Unmarshal(rawOptions, &items); err == nil && items != nil {
			rec.HasOptions = true
			rec.Options = make([]string, 0, len(items))
			for _, item := range items {
				rec.Options = append(rec.Options, scalarText(item))
			}
		}
	}
	return rec
}

// scalarText renders a JSON value as text: strings are unquoted, null and
// absent values are empty, and other values keep their JSON literal form.
func scalarText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

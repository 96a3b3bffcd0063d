package quizgen

import (
	"encoding/json"
	"strings"

	"quizera/internal/domain"
)

// ParsedObject is a JSON object recovered from a model response. Fields are
// resolved lazily by Normalize.
type ParsedObject map[string]json.RawMessage

// ExtractJSON recovers the JSON object embedded in raw model output.
//
// The span between the first '{' and the last '}' is tried first; if it is
// missing or does not parse, the whole text is parsed. When neither yields an
// object a malformed response error carrying raw and the parse failure is
// returned.
func ExtractJSON(raw string) (ParsedObject, error) {
	var parseErr error

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end != -1 && start < end {
		var obj ParsedObject
		if parseErr = json.Unmarshal([]byte(raw[start:end+1]), &obj); parseErr == nil {
			return obj, nil
		}
	}

	var obj ParsedObject
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, domain.NewMalformedResponseError(raw, err)
	}
	if obj == nil {
		// literal null
		if parseErr == nil {
			parseErr = errNotAnObject
		}
		return nil, domain.NewMalformedResponseError(raw, parseErr)
	}
	return obj, nil
}

type extractError string

func (e extractError) Error() string { return string(e) }

const errNotAnObject = extractError("response does not contain a JSON object")

package generation

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrUnparseable = errors.New("model response is not parseable as JSON")
	ErrNoQuestions = errors.New("model response contains no usable questions")
)

// Models occasionally wrap the payload in prose; the fallback grabs the first
// brace-delimited block, matching across newlines.
var embeddedObject = regexp.MustCompile(`(?s)\{.*\}`)

// stripFences removes a surrounding markdown code fence, with or without the
// json language tag.
func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}

// ParseQuestions recovers a question list from a raw model completion.
//
// Stage one is a strict parse of the whole completion. Stage two extracts the
// first embedded JSON object and parses that. A completion that survives
// neither stage fails with ErrUnparseable; there is no corrective follow-up
// prompt and no retry. A single object is tolerated and wrapped in a
// one-element slice.
//
// Parsed records are then repaired rather than forwarded blindly: records
// without question text are dropped, missing ids are assigned positionally,
// and a missing difficulty defaults to Medium.
func ParseQuestions(completion string) ([]Question, error) {
	clean := stripFences(completion)
	if clean == "" {
		return nil, ErrUnparseable
	}

	questions, err := decode(clean)
	if err != nil {
		match := embeddedObject.FindString(clean)
		if match == "" {
			return nil, ErrUnparseable
		}
		questions, err = decode(match)
		if err != nil {
			return nil, ErrUnparseable
		}
	}

	return repair(questions)
}

func decode(text string) ([]Question, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "[") {
		var questions []Question
		if err := json.Unmarshal([]byte(trimmed), &questions); err != nil {
			return nil, err
		}
		return questions, nil
	}

	var single Question
	if err := json.Unmarshal([]byte(trimmed), &single); err != nil {
		return nil, err
	}
	return []Question{single}, nil
}

func repair(questions []Question) ([]Question, error) {
	valid := make([]Question, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			continue
		}
		if q.ID == 0 {
			q.ID = len(valid) + 1
		}
		if q.Difficulty == "" {
			q.Difficulty = "Medium"
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		return nil, ErrNoQuestions
	}
	return valid, nil
}

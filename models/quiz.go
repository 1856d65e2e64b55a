package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type QuizKind string

const (
	QuizManual QuizKind = "manual"
	QuizAI     QuizKind = "ai"
)

// Question count limits per quiz kind.
const (
	MaxManualQuestions = 20
	MaxAIQuestions     = 10
)

// QuizRequest is the validated parameter set for one quiz. Only the fields of
// its Kind are meaningful.
type QuizRequest struct {
	Kind         QuizKind
	Level        string
	Topic        string
	NumQuestions int
	LevelContext string
}

type ManualQuizBody struct {
	Level        string `json:"level"`
	NumQuestions int    `json:"num_questions"`
}

type AIQuizBody struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
	LevelContext string `json:"level_context"`
}

// Body returns the JSON payload the generation endpoint of r.Kind expects.
func (r QuizRequest) Body() any {
	if r.Kind == QuizAI {
		return AIQuizBody{Topic: r.Topic, NumQuestions: r.NumQuestions, LevelContext: r.LevelContext}
	}
	return ManualQuizBody{Level: r.Level, NumQuestions: r.NumQuestions}
}

type QuizItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// SessionID is the opaque quiz_history_id issued by the quiz API. It accepts
// JSON strings and numbers and keeps the literal text. Falsy values (null,
// false, 0) mean the API issued no session.
type SessionID string

func (s *SessionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("false")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SessionID(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("quiz_history_id must be a string or number: %w", err)
	}
	if f, err := num.Float64(); err == nil && f == 0 {
		*s = ""
		return nil
	}
	*s = SessionID(num.String())
	return nil
}

func (s SessionID) String() string { return string(s) }

type GenerateQuizResponse struct {
	Quiz          []QuizItem `json:"quiz"`
	QuizHistoryID SessionID  `json:"quiz_history_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

package utils

import (
	"errors"

	"github.com/generatorku/quiz-web/models"
)

var ErrUnknownQuizKind = errors.New("unknown quiz type")

// ParseQuizKind maps the type parameter of a launch or quiz URL to a kind.
func ParseQuizKind(raw string) (models.QuizKind, error) {
	switch raw {
	case string(models.QuizManual):
		return models.QuizManual, nil
	case string(models.QuizAI):
		return models.QuizAI, nil
	default:
		return "", ErrUnknownQuizKind
	}
}

package services

import (
	"encoding/base64"
	"math/rand"
	"strconv"

	"github.com/generatorku/quiz-web/models"
	"github.com/generatorku/quiz-web/views"
)

const (
	QuizFormID       = "quizForm"
	SubmitAction     = "/submit_quiz"
	SubmitMethod     = "POST"
	SessionFieldName = "quiz_history_id"
	SubmitLabel      = "Selesai Kuis"

	// MinOptions is the option count below which placeholder options are used.
	MinOptions = 4
)

var fillerOptions = []string{"Pilihan B", "Pilihan C", "Pilihan D"}

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultShuffler uses the package level math/rand source, which is safe for
// concurrent requests.
func DefaultShuffler() Shuffler { return globalShuffler{} }

// ShuffleOptions returns the options of item in random order. Items with fewer
// than MinOptions options get the correct answer plus placeholder options.
func ShuffleOptions(item models.QuizItem, s Shuffler) []string {
	var opts []string
	if len(item.Options) >= MinOptions {
		opts = append([]string(nil), item.Options...)
	} else {
		opts = append([]string{item.CorrectAnswer}, fillerOptions...)
	}
	if s == nil {
		s = DefaultShuffler()
	}
	s.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}

// EncodeOptionID turns option text into a token safe for element ids.
func EncodeOptionID(option string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(option))
}

func DecodeOptionID(id string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// QuestionFieldName is the form field carrying the answer of question index.
func QuestionFieldName(index int) string {
	return "question_" + strconv.Itoa(index)
}

func optionElementID(index int, option string) string {
	return "q" + strconv.Itoa(index) + "_option_" + EncodeOptionID(option)
}

// BuildQuizForm builds the submission form for items. The session id is kept
// verbatim in a hidden field so the grader can match answers to the quiz.
func BuildQuizForm(items []models.QuizItem, sessionID models.SessionID, s Shuffler) views.QuizForm {
	form := views.QuizForm{
		ID:          QuizFormID,
		Action:      SubmitAction,
		Method:      SubmitMethod,
		Hidden:      []views.HiddenField{{Name: SessionFieldName, Value: sessionID.String()}},
		Questions:   make([]views.QuestionView, 0, len(items)),
		SubmitLabel: SubmitLabel,
	}

	for i, item := range items {
		name := QuestionFieldName(i)
		q := views.QuestionView{
			Index:  i,
			Number: i + 1,
			Text:   item.Question,
			Name:   name,
		}
		for _, opt := range ShuffleOptions(item, s) {
			q.Options = append(q.Options, views.OptionView{
				ID:       optionElementID(i, opt),
				Name:     name,
				Value:    opt,
				Label:    opt,
				Required: true,
			})
		}
		form.Questions = append(form.Questions, q)
	}
	return form
}

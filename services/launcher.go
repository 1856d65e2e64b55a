package services

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/generatorku/quiz-web/models"
	"github.com/generatorku/quiz-web/utils"
)

// User facing validation messages.
const (
	MsgManualCountInvalid = "Jumlah soal untuk kuis manual harus antara 1 dan 20."
	MsgAITopicEmpty       = "Topik untuk kuis AI tidak boleh kosong."
	MsgAICountInvalid     = "Jumlah soal untuk kuis AI harus antara 1 dan 10."
	MsgInvalidKind        = "Tipe kuis tidak valid."
)

const QuizPagePath = "/quiz"

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }


// LaunchForm carries the raw dashboard field values.
type LaunchForm struct {
	Level        string
	NumQuestions string
	Topic        string
	LevelContext string
}

// ValidateLaunch applies the dashboard rules for a quiz kind and returns the
// request the browser should be sent to.
func ValidateLaunch(kind string, form LaunchForm) (models.QuizRequest, error) {
	k, err := utils.ParseQuizKind(kind)
	if err != nil {
		return models.QuizRequest{}, &ValidationError{Message: MsgInvalidKind}
	}

	switch k {
	case models.QuizManual:
		n, ok := ParseIntLoose(form.NumQuestions)
		if !ok || n < 1 || n > models.MaxManualQuestions {
			return models.QuizRequest{}, &ValidationError{Message: MsgManualCountInvalid}
		}
		return models.QuizRequest{Kind: k, Level: form.Level, NumQuestions: n}, nil

	default:
		if strings.TrimSpace(form.Topic) == "" {
			return models.QuizRequest{}, &ValidationError{Message: MsgAITopicEmpty}
		}
		n, ok := ParseIntLoose(form.NumQuestions)
		if !ok || n < 1 || n > models.MaxAIQuestions {
			return models.QuizRequest{}, &ValidationError{Message: MsgAICountInvalid}
		}
		return models.QuizRequest{Kind: k, Topic: form.Topic, NumQuestions: n, LevelContext: form.LevelContext}, nil
	}
}

// QuizURL builds the quiz page URL for req, keeping the parameter order the
// dashboard has always used.
func QuizURL(req models.QuizRequest) string {
	var b strings.Builder
	b.WriteString(QuizPagePath)
	b.WriteString("?type=")
	b.WriteString(url.QueryEscape(string(req.Kind)))
	if req.Kind == models.QuizAI {
		b.WriteString("&topic=" + url.QueryEscape(req.Topic))
		b.WriteString("&num_questions=" + strconv.Itoa(req.NumQuestions))
		b.WriteString("&level_context=" + url.QueryEscape(req.LevelContext))
		return b.String()
	}
	b.WriteString("&level=" + url.QueryEscape(req.Level))
	b.WriteString("&num_questions=" + strconv.Itoa(req.NumQuestions))
	return b.String()
}

// ParseIntLoose reads an integer the way browsers parse form numbers: leading
// whitespace and sign are accepted, trailing garbage is ignored, "0x" switches
// to hex. ok is false when no digits are found.
func ParseIntLoose(raw string) (n int, ok bool) {
	s := strings.TrimLeftFunc(raw, func(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' })
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	const limit = 1 << 30
	digits := 0
	for _, r := range s {
		d := digitValue(r)
		if d < 0 || d >= base {
			break
		}
		digits++
		if n < limit {
			n = n*base + d
		}
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return -1
	}
}

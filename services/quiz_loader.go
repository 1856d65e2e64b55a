package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/generatorku/quiz-web/models"
	"github.com/generatorku/quiz-web/utils"
	"github.com/generatorku/quiz-web/views"
)

// Inline messages of the quiz page.
const (
	MsgManualParamsInvalid = "Parameter kuis manual tidak valid."
	MsgAIParamsInvalid     = "Parameter kuis AI tidak valid. Pastikan Topik, Jumlah Soal, dan Gaya Soal Mirip Dataset dipilih."
	MsgLoadFailed          = "Gagal memuat kuis."
	MsgNoQuestions         = "Tidak ada soal yang tersedia untuk kriteria ini atau ID riwayat kuis tidak ditemukan. Coba topik, level, atau jumlah soal lain."
)

const DashboardPath = "/dashboard"

var dashboardLink = &views.Link{Href: DashboardPath, Text: "Dashboard"}

// QuizQuery holds the raw quiz page parameters.
type QuizQuery struct {
	Type         string
	NumQuestions string
	Level        string
	Topic        string
	LevelContext string
}

func ParseQuizQuery(q url.Values) QuizQuery {
	return QuizQuery{
		Type:         q.Get("type"),
		NumQuestions: q.Get("num_questions"),
		Level:        q.Get("level"),
		Topic:        q.Get("topic"),
		LevelContext: q.Get("level_context"),
	}
}

// Validate re-applies the launch rules; the URL may have been edited by hand.
func (q QuizQuery) Validate() (models.QuizRequest, error) {
	kind, err := utils.ParseQuizKind(q.Type)
	if err != nil {
		return models.QuizRequest{}, &ValidationError{Message: MsgInvalidKind}
	}

	n, ok := ParseIntLoose(q.NumQuestions)
	switch kind {
	case models.QuizManual:
		if q.Level == "" || !ok || n < 1 || n > models.MaxManualQuestions {
			return models.QuizRequest{}, &ValidationError{Message: MsgManualParamsInvalid}
		}
		return models.QuizRequest{Kind: kind, Level: q.Level, NumQuestions: n}, nil
	default:
		if strings.TrimSpace(q.Topic) == "" || strings.TrimSpace(q.LevelContext) == "" || !ok || n < 1 || n > models.MaxAIQuestions {
			return models.QuizRequest{}, &ValidationError{Message: MsgAIParamsInvalid}
		}
		return models.QuizRequest{Kind: kind, Topic: q.Topic, NumQuestions: n, LevelContext: q.LevelContext}, nil
	}
}

type LoadState string

const (
	StateParse    LoadState = "parse"
	StateValidate LoadState = "validate"
	StateRequest  LoadState = "request"
	StateResponse LoadState = "response"
	StateRender   LoadState = "render"
	StateFailed   LoadState = "failed"
	StateEmpty    LoadState = "empty"
)

// StateFunc observes a state the load passes through, with the page as it
// stands at that point.
type StateFunc func(ctx context.Context, state LoadState, page views.QuizPage)

// QuizLoader runs one quiz page load: parse, validate, request, render.
type QuizLoader struct {
	API      QuizGenerator
	Shuffler Shuffler
	// OnState, when set, observes every state of every load.
	OnState StateFunc
}

func NewQuizLoader(api QuizGenerator) *QuizLoader {
	return &QuizLoader{API: api, Shuffler: DefaultShuffler()}
}

// Load never returns an error: every failure ends in an inline status.
func (l *QuizLoader) Load(ctx context.Context, query url.Values, cookie string) views.QuizPage {
	return l.LoadObserved(ctx, query, cookie, nil)
}

// LoadObserved is Load with an observer for this load only. It runs after
// OnState; the quiz page uses it to show the loading state before the request.
func (l *QuizLoader) LoadObserved(ctx context.Context, query url.Values, cookie string, observe StateFunc) views.QuizPage {
	var page views.QuizPage
	l.enter(ctx, observe, StateParse, page)
	q := ParseQuizQuery(query)

	l.enter(ctx, observe, StateValidate, page)
	req, err := q.Validate()
	if err != nil {
		page.Status = &views.StatusMessage{Kind: views.StatusError, Text: err.Error(), Link: dashboardLink}
		l.enter(ctx, observe, StateFailed, page)
		return page
	}

	page.Loading = loadingMessage(req)
	l.enter(ctx, observe, StateRequest, page)
	resp, err := l.API.GenerateQuiz(ctx, req, cookie)
	if err != nil {
		page.Status = &views.StatusMessage{Kind: views.StatusError, Text: MsgLoadFailed, Detail: failureDetail(err), Link: dashboardLink}
		l.enter(ctx, observe, StateFailed, page)
		return page
	}

	l.enter(ctx, observe, StateResponse, page)
	if len(resp.Quiz) == 0 || resp.QuizHistoryID == "" {
		page.Status = &views.StatusMessage{Kind: views.StatusInfo, Text: MsgNoQuestions, Link: dashboardLink}
		l.enter(ctx, observe, StateEmpty, page)
		return page
	}

	form := BuildQuizForm(resp.Quiz, resp.QuizHistoryID, l.Shuffler)
	page.Form = &form
	l.enter(ctx, observe, StateRender, page)
	return page
}

func (l *QuizLoader) enter(ctx context.Context, observe StateFunc, state LoadState, page views.QuizPage) {
	switch state {
	case StateFailed:
		log.Printf("[%s] quiz load failed: %s %s", utils.RequestID(ctx), page.Status.Text, page.Status.Detail)
	case StateEmpty:
		log.Printf("[%s] quiz load returned no questions or no quiz_history_id", utils.RequestID(ctx))
	case StateRequest:
		log.Printf("[%s] %s", utils.RequestID(ctx), page.Loading.Text)
	case StateRender:
		log.Printf("[%s] quiz form built with %d questions", utils.RequestID(ctx), len(page.Form.Questions))
	}
	if l.OnState != nil {
		l.OnState(ctx, state, page)
	}
	if observe != nil {
		observe(ctx, state, page)
	}
}

func loadingMessage(req models.QuizRequest) *views.StatusMessage {
	msg := &views.StatusMessage{Kind: views.StatusLoading}
	if req.Kind == models.QuizAI {
		msg.Text = fmt.Sprintf("Mempersiapkan kuis AI tentang \"%s\", dengan gaya %s...", req.Topic, req.LevelContext)
		msg.Detail = "Ini mungkin membutuhkan waktu beberapa detik."
		return msg
	}
	msg.Text = fmt.Sprintf("Mempersiapkan kuis manual untuk level %s...", req.Level)
	return msg
}

func failureDetail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

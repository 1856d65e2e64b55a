package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/generatorku/quiz-web/models"
	"github.com/generatorku/quiz-web/views"
)

type fakeGenerator struct {
	calls   int
	lastReq models.QuizRequest
	cookie  string
	resp    models.GenerateQuizResponse
	err     error
}

func (f *fakeGenerator) GenerateQuiz(_ context.Context, req models.QuizRequest, cookie string) (models.GenerateQuizResponse, error) {
	f.calls++
	f.lastReq = req
	f.cookie = cookie
	return f.resp, f.err
}

func newTestLoader(gen *fakeGenerator) *QuizLoader {
	l := NewQuizLoader(gen)
	l.Shuffler = noShuffle{}
	return l
}

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query %q: %v", raw, err)
	}
	return q
}

func sampleItems(n int) []models.QuizItem {
	items := make([]models.QuizItem, n)
	for i := range items {
		items[i] = models.QuizItem{
			Question:      "Soal",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
		}
	}
	return items
}

func TestLoadManualIssuesOneRequest(t *testing.T) {
	gen := &fakeGenerator{resp: models.GenerateQuizResponse{Quiz: sampleItems(2), QuizHistoryID: "99"}}
	page := newTestLoader(gen).Load(context.Background(), mustQuery(t, "type=manual&level=medium&num_questions=5"), "sid=1")

	if gen.calls != 1 {
		t.Fatalf("calls = %d, want 1", gen.calls)
	}
	want := models.QuizRequest{Kind: models.QuizManual, Level: "medium", NumQuestions: 5}
	if gen.lastReq != want {
		t.Fatalf("request = %+v, want %+v", gen.lastReq, want)
	}
	if gen.cookie != "sid=1" {
		t.Fatalf("cookie = %q", gen.cookie)
	}
	if page.Form == nil || page.Status != nil {
		t.Fatalf("expected form, got %+v", page)
	}
	if page.Loading == nil || !strings.Contains(page.Loading.Text, "medium") {
		t.Fatalf("loading message = %+v", page.Loading)
	}
}

func TestLoadRendersHiddenSessionAndGroups(t *testing.T) {
	gen := &fakeGenerator{resp: models.GenerateQuizResponse{Quiz: sampleItems(3), QuizHistoryID: "sess-7"}}
	page := newTestLoader(gen).Load(context.Background(), mustQuery(t, "type=ai&topic=Air&num_questions=3&level_context=SD"), "")

	if page.Form == nil {
		t.Fatalf("expected form, got status %+v", page.Status)
	}
	hidden := 0
	for _, h := range page.Form.Hidden {
		if h.Name == SessionFieldName {
			hidden++
			if h.Value != "sess-7" {
				t.Fatalf("session value = %q", h.Value)
			}
		}
	}
	if hidden != 1 {
		t.Fatalf("hidden session fields = %d, want 1", hidden)
	}
	if len(page.Form.Questions) != 3 {
		t.Fatalf("question groups = %d, want 3", len(page.Form.Questions))
	}
	for _, q := range page.Form.Questions {
		for _, opt := range q.Options {
			if !opt.Required || opt.Name != q.Name {
				t.Fatalf("option not part of a required group: %+v", opt)
			}
		}
	}
	if page.Loading == nil || page.Loading.Detail == "" {
		t.Fatalf("ai loading message should carry a detail: %+v", page.Loading)
	}
}

func TestLoadInvalidParamsSendsNoRequest(t *testing.T) {
	queries := []string{
		"type=manual&level=SD&num_questions=21",
		"type=manual&level=SD&num_questions=0",
		"type=manual&num_questions=5",
		"type=manual&level=SD&num_questions=abc",
		"type=ai&topic=&num_questions=3&level_context=SD",
		"type=ai&topic=%20%20&num_questions=3&level_context=SD",
		"type=ai&topic=Air&num_questions=11&level_context=SD",
		"type=ai&topic=Air&num_questions=3",
		"type=ai&topic=Air&num_questions=3&level_context=%20",
		"type=%20manual&level=SD&num_questions=5",
		"type=essay&num_questions=3",
		"",
	}
	for _, raw := range queries {
		gen := &fakeGenerator{}
		page := newTestLoader(gen).Load(context.Background(), mustQuery(t, raw), "")
		if gen.calls != 0 {
			t.Fatalf("%q: request sent for invalid params", raw)
		}
		if page.Status == nil || page.Status.Kind != views.StatusError || page.Form != nil {
			t.Fatalf("%q: expected inline error, got %+v", raw, page)
		}
		if page.Status.Link == nil || page.Status.Link.Href != DashboardPath {
			t.Fatalf("%q: error state must link to the dashboard", raw)
		}
	}
}

func TestLoadUnknownTypeMessage(t *testing.T) {
	page := newTestLoader(&fakeGenerator{}).Load(context.Background(), mustQuery(t, "type=quiz"), "")
	if page.Status == nil || page.Status.Text != MsgInvalidKind {
		t.Fatalf("status = %+v", page.Status)
	}
}

func TestLoadEmptyQuizShowsNoQuestions(t *testing.T) {
	cases := []models.GenerateQuizResponse{
		{Quiz: nil, QuizHistoryID: "1"},
		{Quiz: []models.QuizItem{}, QuizHistoryID: "1"},
		{Quiz: sampleItems(2), QuizHistoryID: ""},
	}
	for _, resp := range cases {
		page := newTestLoader(&fakeGenerator{resp: resp}).Load(context.Background(), mustQuery(t, "type=manual&level=SD&num_questions=2"), "")
		if page.Form != nil {
			t.Fatalf("form built for %+v", resp)
		}
		if page.Status == nil || page.Status.Kind != views.StatusInfo || page.Status.Text != MsgNoQuestions {
			t.Fatalf("status = %+v", page.Status)
		}
	}
}

func TestLoadAPIErrorSurfacesMessage(t *testing.T) {
	gen := &fakeGenerator{err: &APIError{StatusCode: 500, Message: "boom"}}
	page := newTestLoader(gen).Load(context.Background(), mustQuery(t, "type=manual&level=SD&num_questions=2"), "")
	if page.Status == nil || page.Status.Kind != views.StatusError {
		t.Fatalf("expected error status, got %+v", page)
	}
	if !strings.Contains(page.Status.Text+" "+page.Status.Detail, "boom") {
		t.Fatalf("status does not mention server error: %+v", page.Status)
	}
	if gen.calls != 1 {
		t.Fatalf("calls = %d, want 1 (no retry)", gen.calls)
	}
}

func TestLoadTransportErrorSurfacesUnderlyingText(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("dial tcp: connection refused")}
	page := newTestLoader(gen).Load(context.Background(), mustQuery(t, "type=manual&level=SD&num_questions=2"), "")
	if page.Status == nil || !strings.Contains(page.Status.Detail, "connection refused") {
		t.Fatalf("status = %+v", page.Status)
	}
	if page.Status.Text != MsgLoadFailed {
		t.Fatalf("text = %q, want %q", page.Status.Text, MsgLoadFailed)
	}
}

func TestLoadReportsStates(t *testing.T) {
	var states []LoadState
	l := newTestLoader(&fakeGenerator{resp: models.GenerateQuizResponse{Quiz: sampleItems(1), QuizHistoryID: "1"}})
	l.OnState = func(_ context.Context, s LoadState, _ views.QuizPage) { states = append(states, s) }

	l.Load(context.Background(), mustQuery(t, "type=manual&level=SD&num_questions=1"), "")

	want := []LoadState{StateParse, StateValidate, StateRequest, StateResponse, StateRender}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("states = %v, want %v", states, want)
		}
	}
}

package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/generatorku/quiz-web/utils"
	"github.com/generatorku/quiz-web/views"
)

type PageKind string

const (
	PageDashboard PageKind = "dashboard"
	PageQuiz      PageKind = "quiz"
	PageResults   PageKind = "results"
)

// PageContext describes the page being started. The kind is passed in by the
// caller instead of being derived from the request path.
type PageContext struct {
	Kind    PageKind
	Query   url.Values
	Cookie  string
	Flashes []FlashElement
	// OnLoadState observes the quiz load of this page.
	OnLoadState StateFunc
}

type PageState struct {
	Quiz        *views.QuizPage
	Export      *ExportTrigger
	FlashTimers []Timer
}

// App bundles the collaborators a page start needs.
type App struct {
	Loader    *QuizLoader
	Dismisser *FlashDismisser
	Export    *ExportTrigger
	API       *QuizAPIClient
}

// StartPage runs the once-per-page start routine: flash dismissal for every
// page, the quiz load on the quiz page, the export trigger on the results page.
func (a *App) StartPage(ctx context.Context, pc PageContext) PageState {
	var st PageState
	if len(pc.Flashes) > 0 && a.Dismisser != nil {
		st.FlashTimers = a.Dismisser.Schedule(pc.Flashes)
	}

	switch pc.Kind {
	case PageQuiz:
		page := a.Loader.LoadObserved(ctx, pc.Query, pc.Cookie, pc.OnLoadState)
		st.Quiz = &page
	case PageResults:
		st.Export = a.Export
	}
	return st
}

// FlashViews converts queued flash messages into rendered flash elements.
func (a *App) FlashViews(msgs []utils.FlashMessage) []views.FlashView {
	delay := DefaultFlashDismissAfter.Milliseconds()
	if a.Dismisser != nil {
		delay = a.Dismisser.DelayMS()
	}
	out := make([]views.FlashView, 0, len(msgs))
	for i, m := range msgs {
		category := m.Category
		if category == "" {
			category = "info"
		}
		out = append(out, views.FlashView{
			ID:             fmt.Sprintf("flash-%d", i),
			Category:       category,
			Text:           m.Text,
			DismissAfterMS: delay,
		})
	}
	return out
}

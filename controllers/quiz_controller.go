package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/generatorku/quiz-web/services"
	"github.com/generatorku/quiz-web/utils"
	"github.com/generatorku/quiz-web/views"
)

// ShowQuiz streams the quiz page. The head and the loading status are flushed
// before the quiz API is called; the form or an inline status follows once the
// load finishes.
func ShowQuiz(c *gin.Context) {
	app := c.MustGet("app").(*services.App)
	flashes := app.FlashViews(utils.ConsumeFlashes(c))

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	renderPart(c, "quiz_open", views.QuizPageData{Flashes: flashes})

	st := app.StartPage(c.Request.Context(), services.PageContext{
		Kind:   services.PageQuiz,
		Query:  c.Request.URL.Query(),
		Cookie: c.GetHeader("Cookie"),
		OnLoadState: func(_ context.Context, state services.LoadState, page views.QuizPage) {
			if state == services.StateRequest && page.Loading != nil {
				renderPart(c, "quiz_loading", page.Loading)
				c.Writer.Flush()
			}
		},
	})

	renderPart(c, "quiz_result", *st.Quiz)
	renderPart(c, "quiz_close", nil)
}

func renderPart(c *gin.Context, name string, data any) {
	if err := views.Render(c.Writer, name, data); err != nil {
		log.Printf("[%s] render %s failed: %v", utils.RequestID(c.Request.Context()), name, err)
	}
}

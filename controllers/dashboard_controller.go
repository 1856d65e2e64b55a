package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/generatorku/quiz-web/models"
	"github.com/generatorku/quiz-web/services"
	"github.com/generatorku/quiz-web/utils"
	"github.com/generatorku/quiz-web/views"
)

// Levels offered by the dashboard forms.
var quizLevels = []string{"SD", "SMP", "SMA"}

func ShowDashboard(c *gin.Context) {
	app := c.MustGet("app").(*services.App)
	flashes := app.FlashViews(utils.ConsumeFlashes(c))
	app.StartPage(c.Request.Context(), services.PageContext{Kind: services.PageDashboard})

	c.HTML(http.StatusOK, "dashboard.tmpl", views.DashboardPage{
		Flashes:          flashes,
		Levels:           quizLevels,
		LevelContexts:    quizLevels,
		MaxManual:        models.MaxManualQuestions,
		MaxAI:            models.MaxAIQuestions,
		ManualLaunchPath: "/quiz/launch/" + string(models.QuizManual),
		AILaunchPath:     "/quiz/launch/" + string(models.QuizAI),
	})
}

// LaunchQuiz validates a dashboard form and sends the browser to the quiz page.
// A rejected form goes back to the dashboard with the reason as a flash.
func LaunchQuiz(c *gin.Context) {
	form := services.LaunchForm{
		Level:        c.PostForm("level"),
		NumQuestions: c.PostForm("num_questions"),
		Topic:        c.PostForm("topic"),
		LevelContext: c.PostForm("level_context"),
	}

	req, err := services.ValidateLaunch(c.Param("type"), form)
	if err != nil {
		log.Printf("[%s] quiz launch rejected: %v", utils.RequestID(c.Request.Context()), err)
		utils.AddFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, services.DashboardPath)
		return
	}

	target := services.QuizURL(req)
	log.Printf("[%s] redirecting to quiz: %s", utils.RequestID(c.Request.Context()), target)
	c.Redirect(http.StatusSeeOther, target)
}

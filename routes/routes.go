package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/generatorku/quiz-web/controllers"
	"github.com/generatorku/quiz-web/middleware"
	"github.com/generatorku/quiz-web/services"
	"github.com/generatorku/quiz-web/views"
)

func SetupRouter(r *gin.Engine, app *services.App) *gin.Engine {
	r.Use(middleware.RequestID(), middleware.AppMiddleware(app))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)
	r.StaticFS("/static", views.Static())

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, services.DashboardPath)
	})
	r.GET(services.DashboardPath, controllers.ShowDashboard)

	quiz := r.Group(services.QuizPagePath)
	{
		quiz.GET("", controllers.ShowQuiz)
		quiz.POST("/launch/:type", controllers.LaunchQuiz)
	}

	r.POST("/quiz_results/pdf", controllers.ExportResultsPDF)

	return r
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/generatorku/quiz-web/config"
	"github.com/generatorku/quiz-web/routes"
	"github.com/generatorku/quiz-web/services"
	"github.com/generatorku/quiz-web/views"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := config.Load()

	api := services.NewQuizAPIClient(cfg.QuizAPIBaseURL, &http.Client{Timeout: cfg.QuizAPITimeout})

	var renderer services.PDFRenderer
	if cfg.PDFExportEnabled {
		renderer = services.FPDFRenderer{}
	}

	app := &services.App{
		Loader:    services.NewQuizLoader(api),
		Dismisser: services.NewFlashDismisser(cfg.FlashDismissAfter),
		Export:    services.NewExportTrigger(renderer),
		API:       api,
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-PDF-Pages", "X-Request-ID"},
		AllowCredentials: true,
	}))
	r.SetHTMLTemplate(views.Templates())

	r = routes.SetupRouter(r, app)

	log.Printf("quiz web running at port %s, quiz api %s", cfg.Port, api.BaseURL())
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped: ", err)
	}
}

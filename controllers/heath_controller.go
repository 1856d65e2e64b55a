package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/generatorku/quiz-web/services"
)

func HealthCheck(c *gin.Context) {
	app := c.MustGet("app").(*services.App)

	response := gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Unix(),
		"quiz_api":  "ok",
		"pdf":       app.Export.Available(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := app.API.Ping(ctx); err != nil {
		response["quiz_api"] = "error: " + err.Error()
		response["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

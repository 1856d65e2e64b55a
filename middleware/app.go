package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/generatorku/quiz-web/services"
)

// AppMiddleware makes the page services available to handlers as "app".
func AppMiddleware(app *services.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("app", app)
		c.Next()
	}
}

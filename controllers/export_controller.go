package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/generatorku/quiz-web/models"
	"github.com/generatorku/quiz-web/services"
	"github.com/generatorku/quiz-web/utils"
)

// ExportResultsPDF turns the posted results region into a PDF download.
func ExportResultsPDF(c *gin.Context) {
	app := c.MustGet("app").(*services.App)

	var region models.ResultsRegion
	if err := c.ShouldBindJSON(&region); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st := app.StartPage(c.Request.Context(), services.PageContext{Kind: services.PageResults})
	res, err := st.Export.Export(region)
	if err != nil {
		if errors.Is(err, services.ErrPDFUnavailable) {
			log.Printf("[%s] pdf export requested but no renderer is loaded", utils.RequestID(c.Request.Context()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": services.MsgPDFUnavailable})
			return
		}
		log.Printf("[%s] pdf export failed: %v", utils.RequestID(c.Request.Context()), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat PDF."})
		return
	}

	if res.Pages > 0 {
		c.Header("X-PDF-Pages", strconv.Itoa(res.Pages))
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	c.Data(http.StatusOK, "application/pdf", res.Data)
}

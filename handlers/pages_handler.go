package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evaluapp/services"
)

// PagesHandler serves the landing page and the health check.
type PagesHandler struct {
	reports *services.ReportService
}

func NewPagesHandler(reports *services.ReportService) *PagesHandler {
	return &PagesHandler{reports: reports}
}

func (h *PagesHandler) Home(c *gin.Context) {
	counts := h.reports.Counts()
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Counts": counts,
	})
}

func (h *PagesHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

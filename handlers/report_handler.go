package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evaluapp/services"
)

// ReportHandler serves the results analysis page.
type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Results(c *gin.Context) {
	summary, results, err := h.reports.Results()
	data := gin.H{"Summary": summary, "Results": results}
	if err != nil {
		// read path: degrade to an empty page with the message
		data["Error"] = err.Error()
	}
	c.HTML(http.StatusOK, "results.html", data)
}

package handlers

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/utils"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// WeekSummary returns the caller's aggregates and lock state for one week.
// @Summary Week summary
// @Tags reports
// @Produce json
// @Param weekStart query string true "Any date in the week (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Totals, overtime and lock state"
// @Failure 400 {object} map[string]interface{} "Bad date"
// @Router /reports/week-summary [get]
func (h *ReportHandler) WeekSummary(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	weekStart, err := utils.ParseDate(c.Query("weekStart"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	summary, err := h.Reports.WeekSummary(userID, weekStart)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": summary})
}

// ExportWeekCSV downloads the caller's week as CSV.
// @Summary Export week CSV
// @Tags reports
// @Produce text/csv
// @Param weekStart query string true "Any date in the week (YYYY-MM-DD)"
// @Success 200 {file} binary "CSV file"
// @Failure 400 {object} map[string]interface{} "Bad date"
// @Router /reports/week-export [get]
func (h *ReportHandler) ExportWeekCSV(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	weekStart, err := utils.ParseDate(c.Query("weekStart"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	csv, filename, err := h.Reports.ExportWeekCSV(userID, weekStart)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

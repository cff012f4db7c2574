package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/dto"
	"github.com/SscSPs/attendance_bot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles the admin side of the daily report workflow.
type reportHandler struct {
	reportService portssvc.ReportReviewSvc
}

func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportReviewSvc) {
	h := &reportHandler{reportService: reportService}

	reports := rg.Group("/reports")
	{
		reports.GET("/pending", h.listPending)
		reports.POST("/:reportID/approve", h.approve)
	}
}

// listPending godoc
// @Summary List pending reports
// @Tags reports
// @Produce json
// @Success 200 {array} dto.ReportResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/pending [get]
func (h *reportHandler) listPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reports, err := h.reportService.ListPendingReports(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list pending reports")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReportResponse(reports))
}

// approve godoc
// @Summary Approve a report
// @Tags reports
// @Param reportID path int true "Report ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{reportID}/approve [post]
func (h *reportHandler) approve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reportID, ok := parseIDParam(c, "reportID")
	if !ok {
		return
	}
	if err := h.reportService.ApproveReport(c.Request.Context(), reportID); err != nil {
		writeServiceError(c, logger, err, "Failed to approve report")
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/dto"
	"github.com/SscSPs/attendance_bot/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerWorkLogRoutes(rg *gin.RouterGroup, attendance portssvc.AttendanceReaderSvc) {
	rg.GET("/worklog", func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		var params dto.ListWorkLogParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date must be YYYY-MM-DD"})
			return
		}
		entries, err := attendance.ListDay(c.Request.Context(), params.Date)
		if err != nil {
			writeServiceError(c, logger, err, "Failed to list work log")
			return
		}
		c.JSON(http.StatusOK, dto.ToListWorkLogResponse(entries))
	})
}

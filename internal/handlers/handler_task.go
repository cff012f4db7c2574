package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/dto"
	"github.com/SscSPs/attendance_bot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taskHandler handles HTTP requests related to tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := &taskHandler{taskService: taskService}

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.PATCH("/:taskID/status", h.updateTaskStatus)
	}
}

// parseIDParam reads a positive int64 path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// listTasks godoc
// @Summary List tasks
// @Description Lists all tasks, or only those assigned to a user
// @Tags tasks
// @Produce json
// @Param assignedTo query string false "Filter by assignee user id"
// @Success 200 {array} dto.TaskResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTasksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), params.AssignedTo)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTaskResponse(tasks))
}

// createTask godoc
// @Summary Create a task
// @Description Creates a task in status in_progress
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, _ := middleware.GetUserIDFromContext(c)

	task, err := h.taskService.AddTask(c.Request.Context(), req, creatorUserID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create task")
		return
	}

	logger.Info("Task created via API", slog.Int64("task_id", task.TaskID))
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// updateTaskStatus godoc
// @Summary Update task status
// @Tags tasks
// @Accept json
// @Param taskID path int true "Task ID"
// @Param status body dto.UpdateTaskStatusRequest true "New status"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{taskID}/status [patch]
func (h *taskHandler) updateTaskStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	taskID, ok := parseIDParam(c, "taskID")
	if !ok {
		return
	}
	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := middleware.GetUserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.taskService.UpdateTaskStatus(c.Request.Context(), taskID, domain.TaskStatus(req.Status), *actor); err != nil {
		writeServiceError(c, logger, err, "Failed to update task status")
		return
	}
	c.Status(http.StatusNoContent)
}

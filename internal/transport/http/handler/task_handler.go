package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow-api/internal/pagination"
	"taskflow-api/internal/service"
	"taskflow-api/internal/transport/http/response"
)

type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type createTaskReq struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	Status          string     `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationMinutes *int       `json:"durationMinutes"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	t, err := h.tasks.Create(c.Request.Context(), ownerID(c), service.CreateTaskInput{
		Title:           req.Title,
		Description:     req.Description,
		Status:          req.Status,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Task created", "task": t})
}

func (h *TaskHandler) List(c *gin.Context) {
	opts := pagination.Paginate(c.Query("page"), pageSizeQuery(c))
	items, meta, err := h.tasks.List(c.Request.Context(), ownerID(c), opts, c.Query("sortBy"), c.Query("sortOrder"))
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Tasks fetched",
		"pagination": meta,
		"items":      items,
	})
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	t, err := h.tasks.GetByID(c.Request.Context(), c.Param("id"), ownerID(c))
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task fetched", "task": t})
}

type updateTaskReq struct {
	Title           *string    `json:"title" binding:"omitempty,min=1"`
	Description     *string    `json:"description" binding:"omitempty,min=1"`
	Status          *string    `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationMinutes *int       `json:"durationMinutes"`
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	t, err := h.tasks.Update(c.Request.Context(), c.Param("id"), ownerID(c), service.UpdateTaskInput{
		Title:           req.Title,
		Description:     req.Description,
		Status:          req.Status,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated", "task": t})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("id"), ownerID(c)); err != nil {
		response.MapError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Task deleted")
}

func (h *TaskHandler) TimeSpentReport(c *gin.Context) {
	startRaw, endRaw := c.Query("startDate"), c.Query("endDate")
	if startRaw == "" || endRaw == "" {
		response.Message(c, http.StatusBadRequest, "startDate and endDate are required")
		return
	}
	start, err := parseReportDate(startRaw, false)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid startDate")
		return
	}
	end, err := parseReportDate(endRaw, true)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid endDate")
		return
	}
	report, err := h.tasks.TimeSpentReport(c.Request.Context(), ownerID(c), start, end)
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Time spent on tasks fetched",
		"totalTimeSpent": report.TotalTimeSpent,
		"tasks":          report.Tasks,
	})
}

func (h *TaskHandler) CompletionReport(c *gin.Context) {
	report, err := h.tasks.CompletionReport(c.Request.Context(), ownerID(c))
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Task completion report fetched",
		"totalTasks":     report.TotalTasks,
		"completedTasks": report.CompletedTasks,
		"completionRate": report.CompletionRate,
	})
}

// parseReportDate accepts RFC3339 or plain dates; a plain end date is widened
// to the end of that day so the range stays inclusive.
func parseReportDate(s string, end bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if end {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/TukaHeba/Task-System/internal/adapter/http/dto"
	"github.com/TukaHeba/Task-System/internal/adapter/http/mapper"
	"github.com/TukaHeba/Task-System/internal/adapter/http/middleware"
	"github.com/TukaHeba/Task-System/internal/adapter/http/validation"
	"github.com/TukaHeba/Task-System/internal/core/domain"
	"github.com/TukaHeba/Task-System/internal/core/ports"
	"github.com/TukaHeba/Task-System/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal, ok := requirePrincipal(c, lang)
	if !ok {
		return
	}

	var query dto.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskFilter, lang),
		)
		return
	}

	page, err := h.taskService.ListTasks(c.Request.Context(), principal, validation.BuildTaskFilter(query))
	if err != nil {
		writeServiceError(c, lang, err, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskPage(page))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal, ok := requirePrincipal(c, lang)
	if !ok {
		return
	}
	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), principal, taskID)
	if err != nil {
		writeServiceError(c, lang, err, apierrors.MsgFailGetTask, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal, ok := requirePrincipal(c, lang)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	raw, ok := bindTaskPayload(c, lang, &req)
	if !ok {
		return
	}

	input, err := validation.BuildTaskInput(req, raw)
	if err != nil {
		invalidPayload(c, lang)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), principal, input)
	if err != nil {
		writeServiceError(c, lang, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal, ok := requirePrincipal(c, lang)
	if !ok {
		return
	}
	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, ok := bindTaskPayload(c, lang, &req)
	if !ok {
		return
	}

	changes, err := validation.BuildTaskChanges(req, raw)
	if err != nil {
		invalidPayload(c, lang)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), principal, taskID, changes)
	if err != nil {
		writeServiceError(c, lang, err, apierrors.MsgFailUpdateTask, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal, ok := requirePrincipal(c, lang)
	if !ok {
		return
	}
	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), principal, taskID); err != nil {
		writeServiceError(c, lang, err, apierrors.MsgFailDeleteTask, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskDeleted, lang),
	})
}

func (h *TaskHandler) AssignTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	principal, ok := requirePrincipal(c, lang)
	if !ok {
		return
	}
	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, lang)
		return
	}

	task, err := h.taskService.AssignTask(c.Request.Context(), principal, taskID, req.UserID)
	if err != nil {
		writeServiceError(c, lang, err, apierrors.MsgFailAssignTask,
			zap.Uint64("task_id", taskID), zap.Uint64("user_id", req.UserID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// writeServiceError maps the service error taxonomy to a response. Anything
// outside of it is logged and reported with failKey.
func writeServiceError(c *gin.Context, lang string, err error, failKey string, fields ...zap.Field) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		apiErr := apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidationFailed, lang)
		for _, violation := range verr.Violations {
			apiErr = apiErr.WithField(violation.Field, violation.Rule, lang)
		}
		c.JSON(http.StatusBadRequest, apiErr)
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, lang),
		)
	case errors.Is(err, domain.ErrInvalidAssignee):
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidAssignee, lang),
		)
	default:
		zap.L().Error(failKey, append(fields, zap.Error(err))...)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}

func requirePrincipal(c *gin.Context, lang string) (domain.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
	}
	return principal, ok
}

func parseTaskID(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}

// bindTaskPayload binds req and also returns the raw object so callers can
// tell an absent field from an explicit null.
func bindTaskPayload(c *gin.Context, lang string, req any) (map[string]json.RawMessage, bool) {
	body, err := c.GetRawData()
	if err != nil {
		invalidPayload(c, lang)
		return nil, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		invalidPayload(c, lang)
		return nil, false
	}

	if err := binding.JSON.BindBody(body, req); err != nil {
		invalidPayload(c, lang)
		return nil, false
	}
	return raw, true
}

func invalidPayload(c *gin.Context, lang string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
	)
}

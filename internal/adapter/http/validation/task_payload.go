package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/TukaHeba/Task-System/internal/adapter/http/dto"
	"github.com/TukaHeba/Task-System/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

var taskFields = []string{"title", "description", "priority", "due_date", "status", "assigned_to"}

func BuildTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.TaskInput, error) {
	// Only assigned_to may be null.
	for _, field := range []string{"title", "description", "priority", "due_date", "status"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.TaskInput{}, ErrInvalidTaskPayload
		}
	}

	var dueDate time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse(time.DateOnly, *req.DueDate)
		if err != nil {
			return domain.TaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = parsed
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	return domain.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     dueDate,
		Status:      status,
		AssignedTo:  req.AssignedTo,
	}, nil
}

// BuildTaskChanges keeps only the fields present in the payload. A null
// assigned_to unassigns the task.
func BuildTaskChanges(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskChanges, error) {
	if !hasTaskFields(raw) {
		return domain.TaskChanges{}, ErrInvalidTaskPayload
	}
	for _, field := range []string{"title", "description", "priority", "due_date", "status"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.TaskChanges{}, ErrInvalidTaskPayload
		}
	}

	changes := domain.TaskChanges{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		changes.Priority = &value
	}

	if req.DueDate != nil {
		parsed, err := time.Parse(time.DateOnly, *req.DueDate)
		if err != nil {
			return domain.TaskChanges{}, ErrInvalidTaskPayload
		}
		changes.DueDate = &parsed
	}

	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		changes.Status = &value
	}

	if hasJSONField(raw, "assigned_to") {
		if !isJSONNull(raw["assigned_to"]) && req.AssignedTo == nil {
			return domain.TaskChanges{}, ErrInvalidTaskPayload
		}
		changes.AssignedTo = req.AssignedTo
		changes.AssignedToSet = true
	}

	return changes, nil
}

func BuildTaskFilter(query dto.ListTasksQuery) domain.TaskFilter {
	filter := domain.TaskFilter{Page: 1}
	if query.Priority != nil && *query.Priority != "" {
		value := domain.TaskPriority(*query.Priority)
		filter.Priority = &value
	}
	if query.Status != nil && *query.Status != "" {
		value := domain.TaskStatus(*query.Status)
		filter.Status = &value
	}
	if query.Page != nil {
		filter.Page = *query.Page
	}
	return filter
}

func hasTaskFields(raw map[string]json.RawMessage) bool {
	for _, field := range taskFields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

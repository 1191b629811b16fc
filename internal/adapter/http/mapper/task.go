package mapper

import (
	"time"

	"github.com/TukaHeba/Task-System/internal/adapter/http/dto"
	"github.com/TukaHeba/Task-System/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate.Format(time.DateOnly),
		Status:      string(task.Status),
		CreatedBy:   task.CreatedBy,
		CreatedOn:   task.CreatedOn.Format(time.RFC3339),
	}

	if task.Assignee != nil {
		item.AssignedTo = &dto.AssigneeItem{
			ID:   task.Assignee.ID,
			Name: task.Assignee.Name,
			Role: string(task.Assignee.Role),
		}
	} else if task.AssignedTo != nil {
		item.AssignedTo = &dto.AssigneeItem{ID: *task.AssignedTo}
	}

	if task.UpdatedOn != nil {
		value := task.UpdatedOn.Format(time.RFC3339)
		item.UpdatedOn = &value
	}

	return item
}

func ToTaskPage(page domain.TaskPage) dto.TaskPageResponse {
	return dto.TaskPageResponse{
		Data: ToTaskItems(page.Tasks),
		Meta: dto.PageMeta{
			CurrentPage: page.Page,
			PerPage:     page.PerPage,
			Total:       page.Total,
			LastPage:    page.LastPage(),
		},
	}
}

package ports

import (
	"context"
	"time"

	"github.com/TukaHeba/Task-System/internal/core/domain"
)

// TaskRepository hides soft-deleted tasks from every method except
// FindTaskUnscoped.
type TaskRepository interface {
	ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, int, error)
	FindTaskByID(ctx context.Context, id uint64) (domain.Task, error)
	FindTaskUnscoped(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (uint64, error)
	UpdateTask(ctx context.Context, id uint64, changes domain.TaskChanges, updatedOn time.Time) error
	SoftDeleteTask(ctx context.Context, id uint64, deletedAt time.Time) error
}

type UserRepository interface {
	FindUserByID(ctx context.Context, id uint64) (domain.User, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, principal domain.Principal, filter domain.TaskFilter) (domain.TaskPage, error)
	GetTask(ctx context.Context, principal domain.Principal, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, principal domain.Principal, input domain.TaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, principal domain.Principal, id uint64, changes domain.TaskChanges) (domain.Task, error)
	DeleteTask(ctx context.Context, principal domain.Principal, id uint64) error
	AssignTask(ctx context.Context, principal domain.Principal, id uint64, userID uint64) (domain.Task, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/TukaHeba/Task-System/internal/core/domain"
	"github.com/TukaHeba/Task-System/internal/core/policy"
	"github.com/TukaHeba/Task-System/internal/core/ports"
)

const DefaultPageSize = 5

type TaskService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
	logger         *zap.Logger
	now            func() time.Time
	pageSize       int
}

type Option func(*TaskService)

func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *TaskService) {
		s.logger = logger
	}
}

// WithPageSize ignores non-positive sizes.
func WithPageSize(size int) Option {
	return func(s *TaskService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

func NewTaskService(taskRepository ports.TaskRepository, userRepository ports.UserRepository, opts ...Option) *TaskService {
	s := &TaskService{
		taskRepository: taskRepository,
		userRepository: userRepository,
		logger:         zap.NewNop(),
		now:            time.Now,
		pageSize:       DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListTasks(ctx context.Context, principal domain.Principal, filter domain.TaskFilter) (domain.TaskPage, error) {
	scope, decision := policy.ListScope(principal)
	if !decision.Allowed() {
		return domain.TaskPage{}, s.denied(principal, "list", 0, decision)
	}
	if err := filter.Validate(); err != nil {
		return domain.TaskPage{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	tasks, total, err := s.taskRepository.ListTasks(ctx, domain.TaskQuery{
		CreatedBy:  scope.CreatedBy,
		AssignedTo: scope.AssignedTo,
		Priority:   filter.Priority,
		Status:     filter.Status,
		Limit:      s.pageSize,
		Offset:     (page - 1) * s.pageSize,
	})
	if err != nil {
		return domain.TaskPage{}, fmt.Errorf("list tasks: %w", err)
	}

	return domain.TaskPage{
		Tasks:   tasks,
		Page:    page,
		PerPage: s.pageSize,
		Total:   total,
	}, nil
}

func (s *TaskService) GetTask(ctx context.Context, principal domain.Principal, id uint64) (domain.Task, error) {
	task, err := s.loadTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if decision := policy.Show(principal, task); !decision.Allowed() {
		return domain.Task{}, s.denied(principal, "show", id, decision)
	}

	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, principal domain.Principal, input domain.TaskInput) (domain.Task, error) {
	if decision := policy.Create(principal); !decision.Allowed() {
		return domain.Task{}, s.denied(principal, "create", 0, decision)
	}

	if err := input.Validate(s.now()); err != nil {
		return domain.Task{}, err
	}
	if input.AssignedTo != nil {
		if err := s.ensureAssignable(ctx, *input.AssignedTo); err != nil {
			return domain.Task{}, err
		}
	}

	status := domain.TaskStatusPending
	if input.Status != nil {
		status = *input.Status
	}

	id, err := s.taskRepository.CreateTask(ctx, domain.Task{
		Title:       domain.NormalizeTitle(input.Title),
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Status:      status,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   principal.ID,
		CreatedOn:   s.timestamp(),
		Lifecycle:   domain.ActiveLifecycle(),
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	return s.loadTask(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, principal domain.Principal, id uint64, changes domain.TaskChanges) (domain.Task, error) {
	task, err := s.loadTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	decision := policy.Update(principal, task, changes)
	switch decision.Outcome {
	case policy.Allow:
	case policy.Invalid:
		return domain.Task{}, &domain.ValidationError{Violations: decision.Violations}
	default:
		return domain.Task{}, s.denied(principal, "update", id, decision)
	}

	effective := decision.Changes
	if err := effective.Validate(s.now()); err != nil {
		return domain.Task{}, err
	}
	if effective.AssignedToSet && effective.AssignedTo != nil {
		if err := s.ensureAssignable(ctx, *effective.AssignedTo); err != nil {
			return domain.Task{}, err
		}
	}

	if err := s.taskRepository.UpdateTask(ctx, id, effective, s.timestamp()); err != nil {
		return domain.Task{}, fmt.Errorf("update task %d: %w", id, err)
	}

	return s.loadTask(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, principal domain.Principal, id uint64) error {
	task, err := s.loadTask(ctx, id)
	if err != nil {
		return err
	}

	if decision := policy.Delete(principal, task); !decision.Allowed() {
		return s.denied(principal, "delete", id, decision)
	}

	if err := s.taskRepository.SoftDeleteTask(ctx, id, s.timestamp()); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// AssignTask checks the task, then the assignee, then the role. Assigning
// the current assignee again writes nothing.
func (s *TaskService) AssignTask(ctx context.Context, principal domain.Principal, id uint64, userID uint64) (domain.Task, error) {
	task, err := s.loadTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Task{}, fmt.Errorf("%w: user %d does not exist", domain.ErrInvalidAssignee, userID)
		}
		return domain.Task{}, fmt.Errorf("find user %d: %w", userID, err)
	}

	if decision := policy.Assign(principal); !decision.Allowed() {
		return domain.Task{}, s.denied(principal, "assign", id, decision)
	}

	if task.IsAssignedTo(userID) {
		return task, nil
	}

	changes := domain.TaskChanges{AssignedTo: &userID, AssignedToSet: true}
	if err := s.taskRepository.UpdateTask(ctx, id, changes, s.timestamp()); err != nil {
		return domain.Task{}, fmt.Errorf("assign task %d: %w", id, err)
	}

	return s.loadTask(ctx, id)
}

func (s *TaskService) loadTask(ctx context.Context, id uint64) (domain.Task, error) {
	task, err := s.taskRepository.FindTaskByID(ctx, id)
	if err != nil {
		return domain.Task{}, fmt.Errorf("find task %d: %w", id, err)
	}
	return task, nil
}

// ensureAssignable reports a missing user as a validation failure on
// assigned_to, the way payload validation does.
func (s *TaskService) ensureAssignable(ctx context.Context, userID uint64) error {
	_, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.NewValidationError("assigned_to", domain.RuleExists)
	}
	if err != nil {
		return fmt.Errorf("find user %d: %w", userID, err)
	}
	return nil
}

func (s *TaskService) denied(principal domain.Principal, operation string, taskID uint64, decision policy.Decision) error {
	s.logger.Debug("task operation denied",
		zap.String("operation", operation),
		zap.Uint64("principal_id", principal.ID),
		zap.String("role", string(principal.Role)),
		zap.Uint64("task_id", taskID),
		zap.String("reason", decision.Reason),
	)
	return fmt.Errorf("%w: %s", domain.ErrForbidden, decision.Reason)
}

// Stored timestamps have second precision.
func (s *TaskService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

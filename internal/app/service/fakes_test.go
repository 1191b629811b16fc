package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/TukaHeba/Task-System/internal/core/domain"
	"github.com/TukaHeba/Task-System/internal/core/ports"
)

type memoryUsers struct {
	users map[uint64]domain.User
	err   error
}

func newMemoryUsers(users ...domain.User) *memoryUsers {
	m := &memoryUsers{users: make(map[uint64]domain.User, len(users))}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memoryUsers) FindUserByID(_ context.Context, id uint64) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

// memoryTasks mimics the MySQL repository: soft-deleted rows stay in the map
// and the assignee is resolved on read.
type memoryTasks struct {
	users  *memoryUsers
	rows   map[uint64]domain.Task
	nextID uint64
	writes int
	err    error
}

func newMemoryTasks(users *memoryUsers) *memoryTasks {
	return &memoryTasks{users: users, rows: map[uint64]domain.Task{}, nextID: 1}
}

var _ ports.TaskRepository = (*memoryTasks)(nil)

func (m *memoryTasks) seed(task domain.Task) domain.Task {
	task.ID = m.nextID
	m.nextID++
	m.rows[task.ID] = task
	return task
}

func (m *memoryTasks) ListTasks(_ context.Context, query domain.TaskQuery) ([]domain.Task, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}

	ids := make([]uint64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var matched []domain.Task
	for _, id := range ids {
		task := m.rows[id]
		switch {
		case task.Lifecycle.IsDeleted():
		case query.CreatedBy != nil && task.CreatedBy != *query.CreatedBy:
		case query.AssignedTo != nil && !task.IsAssignedTo(*query.AssignedTo):
		case query.Priority != nil && task.Priority != *query.Priority:
		case query.Status != nil && task.Status != *query.Status:
		default:
			matched = append(matched, m.withAssignee(task))
		}
	}

	total := len(matched)
	if query.Offset >= total {
		return []domain.Task{}, total, nil
	}
	end := query.Offset + query.Limit
	if query.Limit <= 0 || end > total {
		end = total
	}
	return matched[query.Offset:end], total, nil
}

func (m *memoryTasks) FindTaskByID(ctx context.Context, id uint64) (domain.Task, error) {
	task, err := m.FindTaskUnscoped(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if task.Lifecycle.IsDeleted() {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (m *memoryTasks) FindTaskUnscoped(_ context.Context, id uint64) (domain.Task, error) {
	if m.err != nil {
		return domain.Task{}, m.err
	}
	task, ok := m.rows[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return m.withAssignee(task), nil
}

func (m *memoryTasks) CreateTask(_ context.Context, task domain.Task) (uint64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.writes++
	return m.seed(task).ID, nil
}

func (m *memoryTasks) UpdateTask(_ context.Context, id uint64, changes domain.TaskChanges, updatedOn time.Time) error {
	if m.err != nil {
		return m.err
	}
	task, ok := m.rows[id]
	if !ok || task.Lifecycle.IsDeleted() {
		return domain.ErrTaskNotFound
	}
	m.writes++

	if changes.Title != nil {
		task.Title = *changes.Title
	}
	if changes.Description != nil {
		task.Description = *changes.Description
	}
	if changes.Priority != nil {
		task.Priority = *changes.Priority
	}
	if changes.DueDate != nil {
		task.DueDate = *changes.DueDate
	}
	if changes.Status != nil {
		task.Status = *changes.Status
	}
	if changes.AssignedToSet {
		task.AssignedTo = nil
		if changes.AssignedTo != nil {
			assignee := *changes.AssignedTo
			task.AssignedTo = &assignee
		}
	}
	task.UpdatedOn = &updatedOn
	m.rows[id] = task
	return nil
}

func (m *memoryTasks) SoftDeleteTask(_ context.Context, id uint64, deletedAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	task, ok := m.rows[id]
	if !ok || task.Lifecycle.IsDeleted() {
		return domain.ErrTaskNotFound
	}
	m.writes++
	task.Lifecycle = domain.DeletedLifecycle(deletedAt)
	m.rows[id] = task
	return nil
}

func (m *memoryTasks) withAssignee(task domain.Task) domain.Task {
	task.Assignee = nil
	if task.AssignedTo == nil {
		return task
	}
	if u, ok := m.users.users[*task.AssignedTo]; ok {
		task.Assignee = &domain.Assignee{ID: u.ID, Name: u.Name, Role: u.Role}
	}
	return task
}

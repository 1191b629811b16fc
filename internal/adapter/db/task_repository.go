package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/TukaHeba/Task-System/internal/core/domain"
	"github.com/TukaHeba/Task-System/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id,
  t.title,
  t.description,
  t.priority,
  t.due_date,
  t.status,
  t.assigned_to,
  t.created_by,
  t.created_on,
  t.updated_on,
  t.deleted_at,
  u.name AS assignee_name,
  u.role AS assignee_role
FROM tasks t
LEFT JOIN users u ON u.id = t.assigned_to
`

const insertTaskQuery = `
INSERT INTO tasks (title, description, priority, due_date, status, assigned_to, created_by, created_on, updated_on)
VALUES (:title, :description, :priority, :due_date, :status, :assigned_to, :created_by, :created_on, NULL)
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           uint64         `db:"id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	Priority     string         `db:"priority"`
	DueDate      time.Time      `db:"due_date"`
	Status       string         `db:"status"`
	AssignedTo   sql.NullInt64  `db:"assigned_to"`
	CreatedBy    uint64         `db:"created_by"`
	CreatedOn    time.Time      `db:"created_on"`
	UpdatedOn    sql.NullTime   `db:"updated_on"`
	DeletedAt    sql.NullTime   `db:"deleted_at"`
	AssigneeName sql.NullString `db:"assignee_name"`
	AssigneeRole sql.NullString `db:"assignee_role"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, int, error) {
	where, args := listConditions(query)

	var total int
	countQuery := "SELECT COUNT(*) FROM tasks t WHERE " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	listQuery := selectTasksQuery + "WHERE " + where + " ORDER BY t.id"
	if query.Limit > 0 {
		listQuery += " LIMIT ? OFFSET ?"
		args = append(args, query.Limit, query.Offset)
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, total, nil
}

func (r *TaskRepository) FindTaskByID(ctx context.Context, id uint64) (domain.Task, error) {
	return r.findTask(ctx, selectTasksQuery+"WHERE t.id = ? AND t.deleted_at IS NULL", id)
}

func (r *TaskRepository) FindTaskUnscoped(ctx context.Context, id uint64) (domain.Task, error) {
	return r.findTask(ctx, selectTasksQuery+"WHERE t.id = ?", id)
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) (uint64, error) {
	result, err := r.db.NamedExecContext(ctx, insertTaskQuery, map[string]any{
		"title":       task.Title,
		"description": task.Description,
		"priority":    string(task.Priority),
		"due_date":    task.DueDate.Format(time.DateOnly),
		"status":      string(task.Status),
		"assigned_to": nullableID(task.AssignedTo),
		"created_by":  task.CreatedBy,
		"created_on":  task.CreatedOn,
	})
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// UpdateTask runs a single UPDATE; concurrent writers race and the last one
// wins. The caller reloads the row to observe the result.
func (r *TaskRepository) UpdateTask(ctx context.Context, id uint64, changes domain.TaskChanges, updatedOn time.Time) error {
	sets := []string{"updated_on = ?"}
	args := []any{updatedOn}

	if changes.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *changes.Title)
	}
	if changes.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *changes.Description)
	}
	if changes.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*changes.Priority))
	}
	if changes.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, changes.DueDate.Format(time.DateOnly))
	}
	if changes.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*changes.Status))
	}
	if changes.AssignedToSet {
		sets = append(sets, "assigned_to = ?")
		args = append(args, nullableID(changes.AssignedTo))
	}

	args = append(args, id)
	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ? AND deleted_at IS NULL"
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *TaskRepository) SoftDeleteTask(ctx context.Context, id uint64, deletedAt time.Time) error {
	result, err := r.db.ExecContext(ctx, "UPDATE tasks SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL", deletedAt, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) findTask(ctx context.Context, query string, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func listConditions(query domain.TaskQuery) (string, []any) {
	conditions := []string{"t.deleted_at IS NULL"}
	var args []any

	if query.CreatedBy != nil {
		conditions = append(conditions, "t.created_by = ?")
		args = append(args, *query.CreatedBy)
	}
	if query.AssignedTo != nil {
		conditions = append(conditions, "t.assigned_to = ?")
		args = append(args, *query.AssignedTo)
	}
	if query.Priority != nil {
		conditions = append(conditions, "t.priority = ?")
		args = append(args, string(*query.Priority))
	}
	if query.Status != nil {
		conditions = append(conditions, "t.status = ?")
		args = append(args, string(*query.Status))
	}

	return strings.Join(conditions, " AND "), args
}

func nullableID(id *uint64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Priority:    domain.TaskPriority(row.Priority),
		DueDate:     row.DueDate,
		Status:      domain.TaskStatus(row.Status),
		CreatedBy:   row.CreatedBy,
		CreatedOn:   row.CreatedOn,
		Lifecycle:   domain.ActiveLifecycle(),
	}

	if row.AssignedTo.Valid {
		value := uint64(row.AssignedTo.Int64)
		task.AssignedTo = &value

		if row.AssigneeName.Valid {
			task.Assignee = &domain.Assignee{
				ID:   value,
				Name: row.AssigneeName.String,
				Role: domain.Role(row.AssigneeRole.String),
			}
		}
	}

	if row.UpdatedOn.Valid {
		value := row.UpdatedOn.Time
		task.UpdatedOn = &value
	}

	if row.DeletedAt.Valid {
		task.Lifecycle = domain.DeletedLifecycle(row.DeletedAt.Time)
	}

	return task
}

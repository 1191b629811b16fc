package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusFailed:
		return true
	default:
		return false
	}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

type LifecycleState uint8

const (
	LifecycleActive LifecycleState = iota
	LifecycleDeleted
)

// Lifecycle tracks soft deletion. DeletedAt is only meaningful when State
// is LifecycleDeleted.
type Lifecycle struct {
	State     LifecycleState
	DeletedAt time.Time
}

func ActiveLifecycle() Lifecycle {
	return Lifecycle{State: LifecycleActive}
}

func DeletedLifecycle(at time.Time) Lifecycle {
	return Lifecycle{State: LifecycleDeleted, DeletedAt: at}
}

func (l Lifecycle) IsDeleted() bool {
	return l.State == LifecycleDeleted
}

// Assignee is the user reference loaded alongside a task.
type Assignee struct {
	ID   uint64
	Name string
	Role Role
}

type Task struct {
	ID          uint64
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     time.Time
	Status      TaskStatus
	AssignedTo  *uint64
	Assignee    *Assignee
	CreatedBy   uint64
	CreatedOn   time.Time
	UpdatedOn   *time.Time
	Lifecycle   Lifecycle
}

func (t Task) IsAssignedTo(userID uint64) bool {
	return t.AssignedTo != nil && *t.AssignedTo == userID
}

func (t Task) IsCreatedBy(userID uint64) bool {
	return t.CreatedBy == userID
}

type TaskInput struct {
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     time.Time
	Status      *TaskStatus
	AssignedTo  *uint64
}

// TaskChanges is a partial update. A nil field is left untouched.
// AssignedToSet distinguishes "unassign" (set, nil) from "not provided".
type TaskChanges struct {
	Title         *string
	Description   *string
	Priority      *TaskPriority
	DueDate       *time.Time
	Status        *TaskStatus
	AssignedTo    *uint64
	AssignedToSet bool
}

func (c TaskChanges) IsEmpty() bool {
	return c.Title == nil &&
		c.Description == nil &&
		c.Priority == nil &&
		c.DueDate == nil &&
		c.Status == nil &&
		!c.AssignedToSet
}

type TaskFilter struct {
	Priority *TaskPriority
	Status   *TaskStatus
	Page     int
}

// TaskQuery is what the repository runs for a listing. Nil fields do not
// constrain the result. Soft-deleted tasks are never returned.
type TaskQuery struct {
	CreatedBy  *uint64
	AssignedTo *uint64
	Priority   *TaskPriority
	Status     *TaskStatus
	Limit      int
	Offset     int
}

type TaskPage struct {
	Tasks   []Task
	Page    int
	PerPage int
	Total   int
}

func (p TaskPage) LastPage() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

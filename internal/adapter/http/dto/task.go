package dto

type AssigneeItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type TaskItem struct {
	ID          uint64        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Priority    string        `json:"priority"`
	DueDate     string        `json:"due_date"`
	Status      string        `json:"status"`
	AssignedTo  *AssigneeItem `json:"assigned_to"`
	CreatedBy   uint64        `json:"created_by"`
	CreatedOn   string        `json:"created_on"`
	UpdatedOn   *string       `json:"updated_on"`
}

type PageMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

type TaskPageResponse struct {
	Data []TaskItem `json:"data"`
	Meta PageMeta   `json:"meta"`
}

// Field rules (length, enums, due date bound) are checked by the domain so
// the response can list every broken field. Binding only rejects values of
// the wrong shape.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status"`
	AssignedTo  *uint64 `json:"assigned_to" binding:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status"`
	AssignedTo  *uint64 `json:"assigned_to" binding:"omitempty,gt=0"`
}

type AssignTaskRequest struct {
	UserID uint64 `json:"user_id" binding:"required,gt=0"`
}

type ListTasksQuery struct {
	Priority *string `form:"priority"`
	Status   *string `form:"status"`
	Page     *int    `form:"page" binding:"omitempty,gte=1"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

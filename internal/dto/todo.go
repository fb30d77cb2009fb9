package dto

import "time"

// CreateTodoRequest is the JSON body for POST /todos.
// Completed defaults to false when omitted.
type CreateTodoRequest struct {
	Item      string `json:"item" binding:"required"`
	Completed *bool  `json:"completed"`
}

// UpdateTodoRequest is the JSON body for PUT /todos/:id.
// nil means "leave unchanged"; at least one field must be present.
type UpdateTodoRequest struct {
	Item      *string `json:"item"`
	Completed *bool   `json:"completed"`
}

// HasChanges reports whether the patch touches anything at all.
func (r UpdateTodoRequest) HasChanges() bool {
	return r.Item != nil || r.Completed != nil
}

type TodoResponse struct {
	ID        string    `json:"id"`
	Item      string    `json:"item"`
	Completed bool      `json:"completed"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TodoDataResponse wraps a single todo under "data".
type TodoDataResponse struct {
	Data TodoResponse `json:"data"`
}

// TodoListResponse wraps a todo list under "data".
type TodoListResponse struct {
	Data []TodoResponse `json:"data"`
}

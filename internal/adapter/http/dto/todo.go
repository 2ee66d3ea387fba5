package dto

// TodoItem mirrors the wire format of the todo API. Priority and Tags keep
// their historical capitalized casing.
type TodoItem struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	DueDate  string `json:"dueDate"`
	Priority string `json:"Priority"`
	Tags     string `json:"Tags"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type CreateTodoResponse struct {
	Message    string   `json:"message"`
	CreateTodo TodoItem `json:"createTodo"`
}

type UpdateTodoResponse struct {
	Message    string   `json:"message"`
	UpdateTodo TodoItem `json:"updateTodo"`
}

type UpdateStatusResponse struct {
	Message      string   `json:"message"`
	UpdateStatus TodoItem `json:"updateStatus"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

package mapper

import (
	"time"

	"github.com/adarshtmg2060/todo-app/internal/adapter/http/dto"
	"github.com/adarshtmg2060/todo-app/internal/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	return dto.TodoItem{
		ID:       todo.ID,
		Title:    todo.Title,
		Status:   string(todo.Status),
		DueDate:  todo.DueDate.UTC().Format(time.RFC3339),
		Priority: string(todo.Priority),
		Tags:     todo.Tags,
	}
}

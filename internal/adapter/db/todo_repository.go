package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/adarshtmg2060/todo-app/internal/core/domain"
	"github.com/adarshtmg2060/todo-app/internal/core/ports"
)

type TodoRepository struct {
	db *gorm.DB
}

type todoRow struct {
	ID       uint      `gorm:"primarykey"`
	Title    string    `gorm:"not null"`
	Status   string    `gorm:"not null;default:PENDING"`
	DueDate  time.Time `gorm:"not null"`
	Priority string    `gorm:"not null;default:LOW"`
	Tags     string    `gorm:"not null;default:''"`
}

func (todoRow) TableName() string {
	return "todos"
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	var rows []todoRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, mapRowToTodo(row))
	}

	return todos, nil
}

func (r *TodoRepository) Get(ctx context.Context, id uint) (domain.Todo, error) {
	var row todoRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Todo{}, domain.ErrTodoNotFound
		}
		return domain.Todo{}, err
	}

	return mapRowToTodo(row), nil
}

func (r *TodoRepository) Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error) {
	row := mapInputToRow(input)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Todo{}, err
	}

	return mapRowToTodo(row), nil
}

func (r *TodoRepository) Update(ctx context.Context, id uint, input domain.TodoInput) (domain.Todo, error) {
	updates := map[string]interface{}{
		"title":    input.Title,
		"status":   string(input.Status),
		"due_date": input.DueDate,
		"priority": string(input.Priority),
		"tags":     input.Tags,
	}

	result := r.db.WithContext(ctx).Model(&todoRow{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return domain.Todo{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}

	return r.Get(ctx, id)
}

func (r *TodoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&todoRow{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTodoNotFound
	}

	return nil
}

func (r *TodoRepository) UpdateStatus(ctx context.Context, id uint, status domain.Status) (domain.Todo, error) {
	result := r.db.WithContext(ctx).Model(&todoRow{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return domain.Todo{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}

	return r.Get(ctx, id)
}

func (r *TodoRepository) DeleteByStatus(ctx context.Context, status domain.Status) error {
	// Matching zero rows is fine: clearing an already-clear set succeeds.
	return r.db.WithContext(ctx).Where("status = ?", string(status)).Delete(&todoRow{}).Error
}

func mapRowToTodo(row todoRow) domain.Todo {
	return domain.Todo{
		ID:       row.ID,
		Title:    row.Title,
		Status:   domain.Status(row.Status),
		DueDate:  row.DueDate,
		Priority: domain.Priority(row.Priority),
		Tags:     row.Tags,
	}
}

func mapInputToRow(input domain.TodoInput) todoRow {
	return todoRow{
		Title:    input.Title,
		Status:   string(input.Status),
		DueDate:  input.DueDate,
		Priority: string(input.Priority),
		Tags:     input.Tags,
	}
}

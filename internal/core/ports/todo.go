package ports

import (
	"context"

	"github.com/adarshtmg2060/todo-app/internal/core/domain"
)

type TodoRepository interface {
	List(ctx context.Context) ([]domain.Todo, error)
	Get(ctx context.Context, id uint) (domain.Todo, error)
	Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error)
	Update(ctx context.Context, id uint, input domain.TodoInput) (domain.Todo, error)
	Delete(ctx context.Context, id uint) error
	UpdateStatus(ctx context.Context, id uint, status domain.Status) (domain.Todo, error)
	DeleteByStatus(ctx context.Context, status domain.Status) error
}

type TodoService interface {
	List(ctx context.Context) ([]domain.Todo, error)
	Get(ctx context.Context, id uint) (domain.Todo, error)
	Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error)
	Update(ctx context.Context, id uint, input domain.TodoInput) (domain.Todo, error)
	Delete(ctx context.Context, id uint) error
	SetStatus(ctx context.Context, id uint, status domain.Status) (domain.Todo, error)
	ClearCompleted(ctx context.Context) error
}

// ListingCache caches List results under a query-shape key. Implementations
// must treat a miss and an error identically from the caller's point of view:
// the service falls back to the repository either way.
type ListingCache interface {
	GetListing(ctx context.Context, key string) ([]domain.Todo, bool, error)
	SetListing(ctx context.Context, key string, todos []domain.Todo) error
	InvalidateListings(ctx context.Context) error
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/adarshtmg2060/todo-app/internal/core/domain"
	"github.com/adarshtmg2060/todo-app/internal/core/ports"
)

const listingKey = "all"

// TodoService is the only component that reads or writes the todo store.
// The cache is optional: nil means every read goes straight to the store,
// and a failing cache degrades to the same behavior.
type TodoService struct {
	todoRepository ports.TodoRepository
	listingCache   ports.ListingCache
}

var _ ports.TodoService = (*TodoService)(nil)

func NewTodoService(todoRepository ports.TodoRepository, listingCache ports.ListingCache) *TodoService {
	return &TodoService{
		todoRepository: todoRepository,
		listingCache:   listingCache,
	}
}

func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	if s.listingCache != nil {
		todos, hit, err := s.listingCache.GetListing(ctx, listingKey)
		if err != nil {
			zap.L().Warn("listing cache read failed", zap.Error(err))
		} else if hit {
			return todos, nil
		}
	}

	todos, err := s.todoRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.listingCache != nil {
		if err := s.listingCache.SetListing(ctx, listingKey, todos); err != nil {
			zap.L().Warn("listing cache write failed", zap.Error(err))
		}
	}

	return todos, nil
}

func (s *TodoService) Get(ctx context.Context, id uint) (domain.Todo, error) {
	return s.todoRepository.Get(ctx, id)
}

func (s *TodoService) Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error) {
	todo, err := s.todoRepository.Create(ctx, input)
	if err != nil {
		return domain.Todo{}, err
	}

	s.invalidateListings(ctx)
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, id uint, input domain.TodoInput) (domain.Todo, error) {
	todo, err := s.todoRepository.Update(ctx, id, input)
	if err != nil {
		return domain.Todo{}, err
	}

	s.invalidateListings(ctx)
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, id uint) error {
	if err := s.todoRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListings(ctx)
	return nil
}

func (s *TodoService) SetStatus(ctx context.Context, id uint, status domain.Status) (domain.Todo, error) {
	// Existence is checked before status validity: a missing todo wins over
	// a bad status value.
	if _, err := s.todoRepository.Get(ctx, id); err != nil {
		return domain.Todo{}, err
	}

	if _, ok := domain.ParseStatus(string(status)); !ok {
		return domain.Todo{}, domain.ErrInvalidStatus
	}

	todo, err := s.todoRepository.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Todo{}, err
	}

	s.invalidateListings(ctx)
	return todo, nil
}

func (s *TodoService) ClearCompleted(ctx context.Context) error {
	if err := s.todoRepository.DeleteByStatus(ctx, domain.StatusCompleted); err != nil {
		return err
	}

	s.invalidateListings(ctx)
	return nil
}

// invalidateListings runs before any write is acknowledged to the caller so
// a subsequent read by the same client cannot see a stale listing. A cache
// failure here is logged, not surfaced: the TTL bounds residual staleness.
func (s *TodoService) invalidateListings(ctx context.Context) {
	if s.listingCache == nil {
		return
	}
	if err := s.listingCache.InvalidateListings(ctx); err != nil {
		zap.L().Warn("listing cache invalidation failed", zap.Error(err))
	}
}

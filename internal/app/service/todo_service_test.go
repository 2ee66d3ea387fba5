package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appservice "github.com/adarshtmg2060/todo-app/internal/app/service"
	"github.com/adarshtmg2060/todo-app/internal/core/domain"
)

type todoRepositoryMock struct {
	mock.Mock
}

func (m *todoRepositoryMock) List(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoRepositoryMock) Get(ctx context.Context, id uint) (domain.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoRepositoryMock) Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoRepositoryMock) Update(ctx context.Context, id uint, input domain.TodoInput) (domain.Todo, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoRepositoryMock) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *todoRepositoryMock) UpdateStatus(ctx context.Context, id uint, status domain.Status) (domain.Todo, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoRepositoryMock) DeleteByStatus(ctx context.Context, status domain.Status) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

// fakeListingCache records interactions in memory.
type fakeListingCache struct {
	listings     map[string][]domain.Todo
	invalidated  int
	getErr       error
	setErr       error
	invalidedErr error
}

func newFakeListingCache() *fakeListingCache {
	return &fakeListingCache{listings: make(map[string][]domain.Todo)}
}

func (f *fakeListingCache) GetListing(ctx context.Context, key string) ([]domain.Todo, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	todos, ok := f.listings[key]
	return todos, ok, nil
}

func (f *fakeListingCache) SetListing(ctx context.Context, key string, todos []domain.Todo) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.listings[key] = todos
	return nil
}

func (f *fakeListingCache) InvalidateListings(ctx context.Context) error {
	if f.invalidedErr != nil {
		return f.invalidedErr
	}
	f.invalidated++
	f.listings = make(map[string][]domain.Todo)
	return nil
}

func sampleTodo(id uint) domain.Todo {
	return domain.Todo{
		ID:       id,
		Title:    "sample",
		Status:   domain.StatusPending,
		DueDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Priority: domain.PriorityLow,
	}
}

func sampleInput() domain.TodoInput {
	return domain.TodoInput{
		Title:    "sample",
		Status:   domain.StatusPending,
		DueDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Priority: domain.PriorityLow,
	}
}

func TestTodoService_List_PopulatesCacheOnMiss(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	cache := newFakeListingCache()
	repoMock.On("List", mock.Anything).Return([]domain.Todo{sampleTodo(1)}, nil).Once()

	svc := appservice.NewTodoService(repoMock, cache)

	todos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, todos, cache.listings["all"])
	repoMock.AssertExpectations(t)
}

func TestTodoService_List_ServesFromCacheOnHit(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	cache := newFakeListingCache()
	cache.listings["all"] = []domain.Todo{sampleTodo(7)}

	svc := appservice.NewTodoService(repoMock, cache)

	todos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint(7), todos[0].ID)
	// The repository is never touched on a hit.
	repoMock.AssertNotCalled(t, "List", mock.Anything)
}

func TestTodoService_List_DegradesWhenCacheFails(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	cache := newFakeListingCache()
	cache.getErr = errors.New("redis is down")
	cache.setErr = errors.New("redis is down")
	repoMock.On("List", mock.Anything).Return([]domain.Todo{sampleTodo(1)}, nil).Once()

	svc := appservice.NewTodoService(repoMock, cache)

	todos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	repoMock.AssertExpectations(t)
}

func TestTodoService_List_NilCache(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	repoMock.On("List", mock.Anything).Return([]domain.Todo{sampleTodo(1)}, nil).Once()

	svc := appservice.NewTodoService(repoMock, nil)

	todos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	repoMock.AssertExpectations(t)
}

func TestTodoService_Create_InvalidatesCache(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	cache := newFakeListingCache()
	cache.listings["all"] = []domain.Todo{sampleTodo(1)}
	repoMock.On("Create", mock.Anything, sampleInput()).Return(sampleTodo(2), nil).Once()

	svc := appservice.NewTodoService(repoMock, cache)

	created, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)
	require.Equal(t, uint(2), created.ID)
	require.Equal(t, 1, cache.invalidated)
	require.Empty(t, cache.listings)
	repoMock.AssertExpectations(t)
}

func TestTodoService_Create_NoInvalidationOnStoreFailure(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	cache := newFakeListingCache()
	repoMock.On("Create", mock.Anything, sampleInput()).Return(domain.Todo{}, errors.New("db is down")).Once()

	svc := appservice.NewTodoService(repoMock, cache)

	_, err := svc.Create(context.Background(), sampleInput())
	require.Error(t, err)
	require.Zero(t, cache.invalidated)
}

func TestTodoService_Update_InvalidatesCache(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	cache := newFakeListingCache()
	repoMock.On("Update", mock.Anything, uint(1), sampleInput()).Return(sampleTodo(1), nil).Once()

	svc := appservice.NewTodoService(repoMock, cache)

	_, err := svc.Update(context.Background(), 1, sampleInput())
	require.NoError(t, err)
	require.Equal(t, 1, cache.invalidated)
	repoMock.AssertExpectations(t)
}

func TestTodoService_Update_NotFound(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	repoMock.On("Update", mock.Anything, uint(42), sampleInput()).
		Return(domain.Todo{}, domain.ErrTodoNotFound).Once()

	svc := appservice.NewTodoService(repoMock, nil)

	_, err := svc.Update(context.Background(), 42, sampleInput())
	require.ErrorIs(t, err, domain.ErrTodoNotFound)
}

func TestTodoService_Delete_InvalidatesCache(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	cache := newFakeListingCache()
	repoMock.On("Delete", mock.Anything, uint(1)).Return(nil).Once()

	svc := appservice.NewTodoService(repoMock, cache)

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.Equal(t, 1, cache.invalidated)
	repoMock.AssertExpectations(t)
}

func TestTodoService_SetStatus_RejectsInvalidStatus(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	repoMock.On("Get", mock.Anything, uint(1)).Return(sampleTodo(1), nil).Once()

	svc := appservice.NewTodoService(repoMock, nil)

	_, err := svc.SetStatus(context.Background(), 1, domain.Status("INVALID_STATUS"))
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	repoMock.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTodoService_SetStatus_MissingTodoWinsOverBadStatus(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	repoMock.On("Get", mock.Anything, uint(42)).Return(domain.Todo{}, domain.ErrTodoNotFound).Once()

	svc := appservice.NewTodoService(repoMock, nil)

	_, err := svc.SetStatus(context.Background(), 42, domain.Status("INVALID_STATUS"))
	require.ErrorIs(t, err, domain.ErrTodoNotFound)
}

func TestTodoService_SetStatus_UpdatesAndInvalidates(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	cache := newFakeListingCache()
	completed := sampleTodo(1)
	completed.Status = domain.StatusCompleted
	repoMock.On("Get", mock.Anything, uint(1)).Return(sampleTodo(1), nil).Once()
	repoMock.On("UpdateStatus", mock.Anything, uint(1), domain.StatusCompleted).Return(completed, nil).Once()

	svc := appservice.NewTodoService(repoMock, cache)

	todo, err := svc.SetStatus(context.Background(), 1, domain.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, todo.Status)
	require.Equal(t, 1, cache.invalidated)
	repoMock.AssertExpectations(t)
}

func TestTodoService_ClearCompleted_InvalidatesCache(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	cache := newFakeListingCache()
	repoMock.On("DeleteByStatus", mock.Anything, domain.StatusCompleted).Return(nil).Once()

	svc := appservice.NewTodoService(repoMock, cache)

	require.NoError(t, svc.ClearCompleted(context.Background()))
	require.Equal(t, 1, cache.invalidated)
	repoMock.AssertExpectations(t)
}

func TestTodoService_ClearCompleted_SurfacesStoreFailure(t *testing.T) {
	repoMock := new(todoRepositoryMock)
	repoMock.On("DeleteByStatus", mock.Anything, domain.StatusCompleted).
		Return(errors.New("db is down")).Once()

	svc := appservice.NewTodoService(repoMock, nil)

	require.Error(t, svc.ClearCompleted(context.Background()))
}

// Package state holds the client-side copy of the todo list and derives the
// visible subset and remaining-task counter from it, so the UI never needs a
// server round-trip to re-filter.
package state

import (
	"time"

	"github.com/adarshtmg2060/todo-app/internal/core/domain"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterToday     Filter = "today"
	FilterUpcoming  Filter = "upcoming"
)

func ParseFilter(value string) (Filter, bool) {
	switch Filter(value) {
	case FilterAll, FilterActive, FilterCompleted, FilterToday, FilterUpcoming:
		return Filter(value), true
	}
	return "", false
}

// Apply selects the view subset for a filter. It is a pure function of the
// list, the filter and the current moment.
func Apply(todos []domain.Todo, filter Filter, now time.Time) []domain.Todo {
	if filter == FilterAll {
		return todos
	}

	visible := make([]domain.Todo, 0, len(todos))
	for _, todo := range todos {
		if matches(todo, filter, now) {
			visible = append(visible, todo)
		}
	}
	return visible
}

func matches(todo domain.Todo, filter Filter, now time.Time) bool {
	switch filter {
	case FilterActive:
		return todo.Status != domain.StatusCompleted
	case FilterCompleted:
		return todo.Status == domain.StatusCompleted
	case FilterToday:
		return sameDay(todo.DueDate, now)
	case FilterUpcoming:
		return todo.DueDate.After(now) && !sameDay(todo.DueDate, now)
	}
	return true
}

// ActiveCount is the number of todos with outstanding work.
func ActiveCount(todos []domain.Todo) int {
	count := 0
	for _, todo := range todos {
		if todo.Status != domain.StatusCompleted {
			count++
		}
	}
	return count
}

func sameDay(a, b time.Time) bool {
	aYear, aMonth, aDay := a.UTC().Date()
	bYear, bMonth, bDay := b.UTC().Date()
	return aYear == bYear && aMonth == bMonth && aDay == bDay
}

// Engine is the filter state machine: exactly one filter selected at a time,
// starting at "all". The remaining counter is only recomputed under the all
// and active filters and keeps its last value under the others, so it tracks
// outstanding work rather than the current view's size.
type Engine struct {
	todos     []domain.Todo
	filter    Filter
	remaining int
	now       func() time.Time
}

func NewEngine() *Engine {
	return &Engine{filter: FilterAll, now: time.Now}
}

// SetTodos replaces the client copy of the list, typically after a refetch
// that follows a successful mutation.
func (e *Engine) SetTodos(todos []domain.Todo) {
	e.todos = todos
	e.refresh()
}

// SetFilter selects a new filter; unknown names fall back to "all".
func (e *Engine) SetFilter(filter Filter) {
	if _, ok := ParseFilter(string(filter)); !ok {
		filter = FilterAll
	}
	e.filter = filter
	e.refresh()
}

func (e *Engine) Filter() Filter {
	return e.filter
}

func (e *Engine) Visible() []domain.Todo {
	return Apply(e.todos, e.filter, e.now())
}

func (e *Engine) Remaining() int {
	return e.remaining
}

func (e *Engine) refresh() {
	if e.filter == FilterAll || e.filter == FilterActive {
		e.remaining = ActiveCount(e.todos)
	}
}

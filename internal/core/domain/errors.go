package domain

import "errors"

var (
	ErrTodoNotFound  = errors.New("todo not found")
	ErrInvalidStatus = errors.New("invalid status")
)

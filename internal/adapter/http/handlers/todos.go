package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adarshtmg2060/todo-app/internal/adapter/http/dto"
	"github.com/adarshtmg2060/todo-app/internal/adapter/http/mapper"
	"github.com/adarshtmg2060/todo-app/internal/adapter/http/middleware"
	"github.com/adarshtmg2060/todo-app/internal/adapter/http/validation"
	"github.com/adarshtmg2060/todo-app/internal/core/domain"
	"github.com/adarshtmg2060/todo-app/internal/core/ports"
	"github.com/adarshtmg2060/todo-app/pkg/apierrors"
)

const (
	msgTodoCreated    = "Todo created successfully"
	msgTodoUpdated    = "Todo updated successfully"
	msgStatusUpdated  = "Todo status updated successfully"
	msgTodoDeleted    = "Todo deleted successfully"
	msgCompletedClear = "Completed todos cleared successfully"
)

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	lang := middleware.GetLang(c)

	todos, err := h.todoService.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list todos", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItems(todos))
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	todoID, ok := parseTodoID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidTodoID, lang),
		)
		return
	}

	todo, err := h.todoService.Get(c.Request.Context(), todoID)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgTodoNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get todo", zap.Uint("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	input, ok := h.bindTodoPayload(c, lang)
	if !ok {
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create todo", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTodoResponse{
		Message:    msgTodoCreated,
		CreateTodo: mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	// The update route only advertises 404 for bad ids; a non-integer id is
	// just an id nothing can match.
	todoID, idOK := parseTodoID(c.Param("id"))

	input, ok := h.bindTodoPayload(c, lang)
	if !ok {
		return
	}

	if !idOK {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(apierrors.MsgTodoNotFound, lang),
		)
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), todoID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgTodoNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update todo", zap.Uint("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateTodoResponse{
		Message:    msgTodoUpdated,
		UpdateTodo: mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) UpdateTodoStatus(c *gin.Context) {
	lang := middleware.GetLang(c)

	todoID, ok := parseTodoID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(apierrors.MsgTodoNotFound, lang),
		)
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidStatus, lang),
		)
		return
	}

	todo, err := h.todoService.SetStatus(c.Request.Context(), todoID, domain.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTodoNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgTodoNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(apierrors.MsgInvalidStatus, lang),
			)
		default:
			zap.L().Error("failed to update todo status", zap.Uint("todo_id", todoID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(apierrors.MsgInternalError, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.UpdateStatusResponse{
		Message:      msgStatusUpdated,
		UpdateStatus: mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	todoID, ok := parseTodoID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidTodoID, lang),
		)
		return
	}

	if err := h.todoService.Delete(c.Request.Context(), todoID); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.MsgTodoNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete todo", zap.Uint("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgTodoDeleted})
}

func (h *TodoHandler) ClearCompletedTodos(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.todoService.ClearCompleted(c.Request.Context()); err != nil {
		zap.L().Error("failed to clear completed todos", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgCompletedClear})
}

// bindTodoPayload decodes the body and runs it through the validation gate.
// On failure it writes the 400 response and returns ok=false.
func (h *TodoHandler) bindTodoPayload(c *gin.Context, lang string) (domain.TodoInput, bool) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.MsgInvalidPayload, lang),
		)
		return domain.TodoInput{}, false
	}

	input, fieldErrs := validation.BuildTodoInput(raw)
	if fieldErrs != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateFieldErrors(fieldErrs, lang),
		)
		return domain.TodoInput{}, false
	}

	return input, true
}

func parseTodoID(param string) (uint, bool) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adarshtmg2060/todo-app/internal/adapter/http/handlers"
	"github.com/adarshtmg2060/todo-app/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, todoHandler *handlers.TodoHandler) {
	api := r.Group("")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/todos", todoHandler.ListTodos)
		api.GET("/todos/:id", todoHandler.GetTodo)
		api.POST("/todos/create", todoHandler.CreateTodo)
		api.PUT("/todos/:id", todoHandler.UpdateTodo)
		api.PATCH("/todos/:id/status", todoHandler.UpdateTodoStatus)
		api.DELETE("/todos/:id", todoHandler.DeleteTodo)
		api.DELETE("/todos-clear-completed", todoHandler.ClearCompletedTodos)
	}

	// Catch-all stays plain text, unlike every other response.
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "404 Not Found")
	})
}

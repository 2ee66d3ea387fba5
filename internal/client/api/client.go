// Package api is the HTTP client the CLI talks to the todo server with.
// It never mutates local state optimistically: after a successful write the
// caller refetches the authoritative list.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/adarshtmg2060/todo-app/internal/core/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is any non-2xx response, carrying the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// TodoPayload is the create/update request body in wire casing.
type TodoPayload struct {
	Title    string `json:"title"`
	Status   string `json:"status,omitempty"`
	DueDate  string `json:"dueDate"`
	Priority string `json:"Priority,omitempty"`
	Tags     string `json:"Tags,omitempty"`
}

type todoItem struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	DueDate  string `json:"dueDate"`
	Priority string `json:"Priority"`
	Tags     string `json:"Tags"`
}

type createResponse struct {
	Message    string   `json:"message"`
	CreateTodo todoItem `json:"createTodo"`
}

type updateResponse struct {
	Message    string   `json:"message"`
	UpdateTodo todoItem `json:"updateTodo"`
}

type statusResponse struct {
	Message      string   `json:"message"`
	UpdateStatus todoItem `json:"updateStatus"`
}

func (c *Client) List(ctx context.Context) ([]domain.Todo, error) {
	var items []todoItem
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &items); err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(items))
	for _, item := range items {
		todo, err := item.toDomain()
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

func (c *Client) Get(ctx context.Context, id uint) (domain.Todo, error) {
	var item todoItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/todos/%d", id), nil, &item); err != nil {
		return domain.Todo{}, err
	}
	return item.toDomain()
}

func (c *Client) Create(ctx context.Context, payload TodoPayload) (domain.Todo, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/todos/create", payload, &resp); err != nil {
		return domain.Todo{}, err
	}
	return resp.CreateTodo.toDomain()
}

func (c *Client) Update(ctx context.Context, id uint, payload TodoPayload) (domain.Todo, error) {
	var resp updateResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/todos/%d", id), payload, &resp); err != nil {
		return domain.Todo{}, err
	}
	return resp.UpdateTodo.toDomain()
}

func (c *Client) SetStatus(ctx context.Context, id uint, status domain.Status) (domain.Todo, error) {
	body := map[string]string{"status": string(status)}
	var resp statusResponse
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/todos/%d/status", id), body, &resp); err != nil {
		return domain.Todo{}, err
	}
	return resp.UpdateStatus.toDomain()
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, nil)
}

func (c *Client) ClearCompleted(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/todos-clear-completed", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// errorMessage extracts the server's message from either error body shape,
// falling back to the raw body for the plain-text catch-all.
func errorMessage(data []byte) string {
	var single struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &single); err == nil && single.Error != "" {
		return single.Error
	}

	var fields struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(data, &fields); err == nil && len(fields.Errors) > 0 {
		for field, msg := range fields.Errors {
			return fmt.Sprintf("%s: %s", field, msg)
		}
	}

	return string(data)
}

func (i todoItem) toDomain() (domain.Todo, error) {
	dueDate, err := time.Parse(time.RFC3339, i.DueDate)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("parse dueDate %q: %w", i.DueDate, err)
	}

	return domain.Todo{
		ID:       i.ID,
		Title:    i.Title,
		Status:   domain.Status(i.Status),
		DueDate:  dueDate,
		Priority: domain.Priority(i.Priority),
		Tags:     i.Tags,
	}, nil
}

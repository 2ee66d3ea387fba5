package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adarshtmg2060/todo-app/internal/core/domain"
	"github.com/adarshtmg2060/todo-app/pkg/apierrors"
)

func rawPayload(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestBuildTodoInput_ValidPayloadWithDefaults(t *testing.T) {
	input, fieldErrs := BuildTodoInput(rawPayload(t, `{"title":"Test Todo","dueDate":"2023-12-31"}`))
	require.Nil(t, fieldErrs)
	require.Equal(t, "Test Todo", input.Title)
	require.Equal(t, domain.StatusPending, input.Status)
	require.Equal(t, domain.PriorityLow, input.Priority)
	require.Equal(t, "", input.Tags)
	require.True(t, input.DueDate.Equal(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestBuildTodoInput_ValidPayloadAllFields(t *testing.T) {
	input, fieldErrs := BuildTodoInput(rawPayload(t,
		`{"title":"Test Todo","status":"COMPLETED","dueDate":"2023-12-31","Priority":"HIGH","Tags":"test, todo"}`))
	require.Nil(t, fieldErrs)
	require.Equal(t, domain.StatusCompleted, input.Status)
	require.Equal(t, domain.PriorityHigh, input.Priority)
	require.Equal(t, "test, todo", input.Tags)
}

func TestBuildTodoInput_TitleRules(t *testing.T) {
	cases := map[string]string{
		"absent":       `{"dueDate":"2023-12-31"}`,
		"empty":        `{"title":"","dueDate":"2023-12-31"}`,
		"too short":    `{"title":"ab","dueDate":"2023-12-31"}`,
		"not a string": `{"title":42,"dueDate":"2023-12-31"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, fieldErrs := BuildTodoInput(rawPayload(t, body))
			require.Equal(t, apierrors.MsgTitleRequired, fieldErrs["title"])
		})
	}

	// Exactly 3 characters is accepted.
	_, fieldErrs := BuildTodoInput(rawPayload(t, `{"title":"abc","dueDate":"2023-12-31"}`))
	require.Nil(t, fieldErrs)
}

func TestBuildTodoInput_DueDateRules(t *testing.T) {
	for name, body := range map[string]string{
		"absent":       `{"title":"Test Todo"}`,
		"unparseable":  `{"title":"Test Todo","dueDate":"not-a-date"}`,
		"not a string": `{"title":"Test Todo","dueDate":20231231}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, fieldErrs := BuildTodoInput(rawPayload(t, body))
			require.Equal(t, apierrors.MsgInvalidDateFormat, fieldErrs["dueDate"])
		})
	}

	// RFC3339 timestamps are accepted and normalized to UTC.
	input, fieldErrs := BuildTodoInput(rawPayload(t, `{"title":"Test Todo","dueDate":"2023-12-31T10:00:00+02:00"}`))
	require.Nil(t, fieldErrs)
	require.True(t, input.DueDate.Equal(time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC)))
}

func TestBuildTodoInput_StatusAndPriorityEnums(t *testing.T) {
	_, fieldErrs := BuildTodoInput(rawPayload(t, `{"title":"Test Todo","dueDate":"2023-12-31","status":"INVALID_STATUS"}`))
	require.Equal(t, apierrors.MsgInvalidStatus, fieldErrs["status"])

	_, fieldErrs = BuildTodoInput(rawPayload(t, `{"title":"Test Todo","dueDate":"2023-12-31","Priority":"INVALID_PRIORITY"}`))
	require.Equal(t, apierrors.MsgInvalidPriority, fieldErrs["Priority"])
}

func TestBuildTodoInput_TagsMustBeString(t *testing.T) {
	_, fieldErrs := BuildTodoInput(rawPayload(t, `{"title":"Test Todo","dueDate":"2023-12-31","Tags":["a","b"]}`))
	require.Equal(t, apierrors.MsgInvalidTags, fieldErrs["Tags"])
}

func TestBuildTodoInput_CollectsAllFieldErrors(t *testing.T) {
	_, fieldErrs := BuildTodoInput(rawPayload(t,
		`{"title":"","status":"INVALID_STATUS","dueDate":"not-a-date","Priority":"INVALID_PRIORITY","Tags":""}`))
	require.Len(t, fieldErrs, 4)
	require.Contains(t, fieldErrs, "title")
	require.Contains(t, fieldErrs, "status")
	require.Contains(t, fieldErrs, "dueDate")
	require.Contains(t, fieldErrs, "Priority")
}

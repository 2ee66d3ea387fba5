// Package validation is the gate every create/update payload passes through
// before it can reach the service layer. It either produces a normalized,
// defaulted domain.TodoInput or a per-field error report; nothing partial is
// forwarded.
package validation

import (
	"encoding/json"
	"time"

	"github.com/adarshtmg2060/todo-app/internal/core/domain"
	"github.com/adarshtmg2060/todo-app/pkg/apierrors"
)

// dueDateLayouts are the accepted wire formats, normalized to UTC on parse.
var dueDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// BuildTodoInput validates a raw JSON object against the todo schema.
// The returned map is field name -> translation message key; it is non-nil
// only on failure.
func BuildTodoInput(raw map[string]json.RawMessage) (domain.TodoInput, map[string]string) {
	fieldErrs := make(map[string]string)

	title, ok := stringField(raw, "title")
	if !ok || len(title) < 3 {
		fieldErrs["title"] = apierrors.MsgTitleRequired
	}

	status := domain.StatusPending
	if _, present := raw["status"]; present {
		value, ok := stringField(raw, "status")
		if ok {
			status, ok = domain.ParseStatus(value)
		}
		if !ok {
			fieldErrs["status"] = apierrors.MsgInvalidStatus
		}
	}

	var dueDate time.Time
	if value, ok := stringField(raw, "dueDate"); ok {
		parsed, err := parseDueDate(value)
		if err != nil {
			fieldErrs["dueDate"] = apierrors.MsgInvalidDateFormat
		} else {
			dueDate = parsed
		}
	} else {
		fieldErrs["dueDate"] = apierrors.MsgInvalidDateFormat
	}

	priority := domain.PriorityLow
	if _, present := raw["Priority"]; present {
		value, ok := stringField(raw, "Priority")
		if ok {
			priority, ok = domain.ParsePriority(value)
		}
		if !ok {
			fieldErrs["Priority"] = apierrors.MsgInvalidPriority
		}
	}

	tags := ""
	if _, present := raw["Tags"]; present {
		value, ok := stringField(raw, "Tags")
		if !ok {
			fieldErrs["Tags"] = apierrors.MsgInvalidTags
		} else {
			tags = value
		}
	}

	if len(fieldErrs) > 0 {
		return domain.TodoInput{}, fieldErrs
	}

	return domain.TodoInput{
		Title:    title,
		Status:   status,
		DueDate:  dueDate,
		Priority: priority,
		Tags:     tags,
	}, nil
}

func parseDueDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func stringField(raw map[string]json.RawMessage, field string) (string, bool) {
	value, present := raw[field]
	if !present {
		return "", false
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	return s, true
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adarshtmg2060/todo-app/internal/core/domain"
)

var (
	idStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")).Strikethrough(true)
	dueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))
	tagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#bb9af7"))

	priorityStyles = map[domain.Priority]lipgloss.Style{
		domain.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
		domain.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")),
		domain.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")),
	}
)

func renderList(todos []domain.Todo) string {
	if len(todos) == 0 {
		return "no todos\n"
	}

	var b strings.Builder
	for _, todo := range todos {
		mark := "[ ]"
		title := todo.Title
		if todo.Status == domain.StatusCompleted {
			mark = "[x]"
			title = completedStyle.Render(title)
		}

		b.WriteString(fmt.Sprintf("%s %s %s %s %s",
			idStyle.Render(fmt.Sprintf("#%d", todo.ID)),
			mark,
			priorityStyles[todo.Priority].Render(string(todo.Priority)),
			title,
			dueStyle.Render("due "+todo.DueDate.UTC().Format("2006-01-02")),
		))
		if todo.Tags != "" {
			b.WriteString(" " + tagStyle.Render("["+todo.Tags+"]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

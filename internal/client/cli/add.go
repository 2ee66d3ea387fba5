package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adarshtmg2060/todo-app/internal/client/api"
)

var (
	addDueDate  string
	addPriority string
	addTags     string

	addCmd = &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new todo",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client := newAPIClient()

			created, err := client.Create(cmd.Context(), api.TodoPayload{
				Title:    strings.Join(args, " "),
				DueDate:  addDueDate,
				Priority: addPriority,
				Tags:     addTags,
			})
			if err != nil {
				fail(err)
			}

			fmt.Printf("created todo #%d\n", created.ID)
			refetchSummary(cmd)
		},
	}
)

func init() {
	addCmd.Flags().StringVarP(&addDueDate, "due", "d", "", "Due date, e.g. 2026-03-10 (required)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: LOW, MEDIUM or HIGH")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "Comma-separated tags")
	_ = addCmd.MarkFlagRequired("due")
	rootCmd.AddCommand(addCmd)
}

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/adarshtmg2060/todo-app/internal/client/api"
)

var (
	updateTitle    string
	updateStatus   string
	updateDueDate  string
	updatePriority string
	updateTags     string

	updateCmd = &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite a todo's fields",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				fail(fmt.Errorf("invalid id %q", args[0]))
			}

			client := newAPIClient()

			// The update endpoint overwrites every field, so start from the
			// current todo and apply only the provided flags.
			current, err := client.Get(cmd.Context(), uint(id))
			if err != nil {
				fail(err)
			}

			payload := api.TodoPayload{
				Title:    current.Title,
				Status:   string(current.Status),
				DueDate:  current.DueDate.UTC().Format(time.RFC3339),
				Priority: string(current.Priority),
				Tags:     current.Tags,
			}
			if cmd.Flags().Changed("title") {
				payload.Title = updateTitle
			}
			if cmd.Flags().Changed("status") {
				payload.Status = updateStatus
			}
			if cmd.Flags().Changed("due") {
				payload.DueDate = updateDueDate
			}
			if cmd.Flags().Changed("priority") {
				payload.Priority = updatePriority
			}
			if cmd.Flags().Changed("tags") {
				payload.Tags = updateTags
			}

			updated, err := client.Update(cmd.Context(), uint(id), payload)
			if err != nil {
				fail(err)
			}

			fmt.Printf("updated todo #%d\n", updated.ID)
			refetchSummary(cmd)
		},
	}
)

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "New status: PENDING or COMPLETED")
	updateCmd.Flags().StringVarP(&updateDueDate, "due", "d", "", "New due date")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "New priority")
	updateCmd.Flags().StringVarP(&updateTags, "tags", "t", "", "New tags")
	rootCmd.AddCommand(updateCmd)
}

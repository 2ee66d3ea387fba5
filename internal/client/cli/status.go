package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adarshtmg2060/todo-app/internal/core/domain"
)

var (
	doneCmd = &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo as completed",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setStatus(cmd, args[0], domain.StatusCompleted)
		},
	}

	undoneCmd = &cobra.Command{
		Use:   "undone <id>",
		Short: "Mark a todo as pending again",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setStatus(cmd, args[0], domain.StatusPending)
		},
	}
)

func setStatus(cmd *cobra.Command, rawID string, status domain.Status) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		fail(fmt.Errorf("invalid id %q", rawID))
	}

	todo, err := newAPIClient().SetStatus(cmd.Context(), uint(id), status)
	if err != nil {
		fail(err)
	}

	fmt.Printf("todo #%d is now %s\n", todo.ID, todo.Status)
	refetchSummary(cmd)
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	rmCmd = &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				fail(fmt.Errorf("invalid id %q", args[0]))
			}

			if err := newAPIClient().Delete(cmd.Context(), uint(id)); err != nil {
				fail(err)
			}

			fmt.Printf("deleted todo #%d\n", id)
			refetchSummary(cmd)
		},
	}

	clearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed todo",
		Run: func(cmd *cobra.Command, args []string) {
			if err := newAPIClient().ClearCompleted(cmd.Context()); err != nil {
				fail(err)
			}

			fmt.Println("completed todos cleared")
			refetchSummary(cmd)
		},
	}
)

func init() {
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(clearCmd)
}

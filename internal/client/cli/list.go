package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adarshtmg2060/todo-app/internal/client/state"
)

var (
	listFilter string

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List todos, optionally filtered",
		Run: func(cmd *cobra.Command, args []string) {
			filter, ok := state.ParseFilter(listFilter)
			if !ok {
				fail(fmt.Errorf("unknown filter %q (want all, active, completed, today or upcoming)", listFilter))
			}

			client := newAPIClient()
			todos, err := client.List(cmd.Context())
			if err != nil {
				fail(err)
			}

			engine := state.NewEngine()
			engine.SetTodos(todos)
			engine.SetFilter(filter)

			fmt.Print(renderList(engine.Visible()))
			fmt.Printf("%d tasks left\n", engine.Remaining())
		},
	}
)

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "Filter: all, active, completed, today, upcoming")
	rootCmd.AddCommand(listCmd)
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adarshtmg2060/todo-app/internal/client/api"
	"github.com/adarshtmg2060/todo-app/internal/client/state"
)

var (
	serverURL string

	rootCmd = &cobra.Command{
		Use:   "todo",
		Short: "A CLI client for the todo web application",
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultServer := os.Getenv("TODO_SERVER_URL")
	if defaultServer == "" {
		defaultServer = "http://localhost:3000"
	}
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", defaultServer, "Todo server address")
}

func newAPIClient() *api.Client {
	return api.NewClient(serverURL)
}

// fail prints a one-line error and exits, leaving whatever was already
// printed untouched.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
	os.Exit(1)
}

// refetchSummary pulls the authoritative list after a successful mutation and
// reports the outstanding-work counter from it.
func refetchSummary(cmd *cobra.Command) {
	todos, err := newAPIClient().List(cmd.Context())
	if err != nil {
		fail(err)
	}
	engine := state.NewEngine()
	engine.SetTodos(todos)
	fmt.Printf("%d tasks left\n", engine.Remaining())
}

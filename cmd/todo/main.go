package main

import "github.com/adarshtmg2060/todo-app/internal/client/cli"

func main() {
	cli.Execute()
}

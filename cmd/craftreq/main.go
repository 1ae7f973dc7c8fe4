package main

import "github.com/vsinha/craftreq/pkg/interfaces/cli/commands"

func main() {
	commands.Execute()
}

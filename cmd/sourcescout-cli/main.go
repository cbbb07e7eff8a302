package main

import "sourcescout/cmd/sourcescout-cli/cmd"

func main() {
	cmd.Execute()
}

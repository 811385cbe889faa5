package main

import "github.com/mohitmishra786/low-level-dev-skills/cmd"

func main() {
	cmd.Execute()
}

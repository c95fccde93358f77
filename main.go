package main

import "github.com/kernelops/taintinfo/commands"

func main() {
	commands.Execute()
}

package main

import "github.com/luckydata/govlens/cmd/govlens/commands"

func main() {
	commands.Execute()
}

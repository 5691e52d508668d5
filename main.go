package main

import "github.com/kozaktomas/journal-press/cmd"

func main() {
	cmd.Execute()
}

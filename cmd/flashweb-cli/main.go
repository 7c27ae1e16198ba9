package main

import "github.com/flashcode/flashweb/cmd/flashweb-cli/cmd"

func main() {
	cmd.Execute()
}

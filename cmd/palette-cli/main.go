package main

import "palette/cmd/palette-cli/cmd"

func main() {
	cmd.Execute()
}

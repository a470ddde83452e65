package main

import "ddsforge/cmd"

func main() {
	cmd.Execute()
}

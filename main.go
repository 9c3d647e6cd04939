package main

import "github.com/gamma-delta/center-brain-archive/cmd"

func main() {
	cmd.Execute()
}

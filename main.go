package main

import "github.com/papapumpkin/minkowski/cmd"

func main() {
	cmd.Execute()
}

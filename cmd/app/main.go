package main

import "github.com/tmeadon/nsgflows/pkg/cli"

func main() {
	cli.Run()
}

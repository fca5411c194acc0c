package main

import "trapmap/internal/cli"

func main() {
	cli.Execute()
}

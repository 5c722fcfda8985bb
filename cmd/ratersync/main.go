package main

import "ratersync/internal/cli"

func main() {
	cli.Execute()
}

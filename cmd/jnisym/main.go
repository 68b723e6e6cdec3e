package main

import "github.com/memoryindex/native/internal/cli"

func main() {
	cli.Execute()
}

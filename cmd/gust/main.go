package main

import (
	cmd "github.com/gustnet/gust/src/cmd/gust/command"
)

func main() {
	cmd.Execute()
}

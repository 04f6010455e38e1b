package main

import (
	"os"

	"github.com/rustyeddy/crossvote/cmd/crossvote/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

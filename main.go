package main

import (
	"os"

	"github.com/rishikadhanawade/pg-az900-quest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

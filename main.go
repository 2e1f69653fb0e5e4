package main

import (
	"os"

	"github.com/abelsk/learnpulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

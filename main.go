package main

import (
	"errors"
	"fmt"
	"os"

	"coronet_planner/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Field errors were already printed by the validate command
		if !errors.Is(err, cli.ErrInvalidMission) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

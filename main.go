package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/mattn/go-isatty"

	"moneytracker/internal/cli"
)

func main() {
	app := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

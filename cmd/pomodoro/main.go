package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"pomodoro/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Version: version,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	defer func() {
		_ = app.Close()
	}()
	return cli.NewRootCmd(app).Execute()
}

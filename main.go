package main

import (
	"context"
	"os"

	"github.com/eustache/eustache/cmd"
	"github.com/eustache/eustache/internal/cli"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

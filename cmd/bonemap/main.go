// Package main is the entry point for the bonemap CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"bonemap/cmd/bonemap/commands"
	"bonemap/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, logger.New()))
}

func run(args []string, stdout io.Writer, log *logger.Logger) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli := commands.New(stdout, log)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		log.Error(err)
		return 1
	}

	return 0
}

// Package main is the entry point for the tick CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create dependency injection container
	container, err := app.New(ctx, "")
	if err != nil {
		// Help and version work even when the store cannot be opened
		if canRunWithoutStore(os.Args[1:]) {
			return cli.NewRootCommand(nil, version).ExecuteContext(ctx)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() {
		if cerr := container.Close(); cerr != nil {
			fmt.Fprintln(os.Stderr, cerr)
		}
	}()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(ctx)
}

func canRunWithoutStore(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

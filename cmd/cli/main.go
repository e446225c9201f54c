package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cbreaklabs/cbreak/cmd/cli/command"
	"github.com/cbreaklabs/cbreak/pkg/cbreak"
	"github.com/cbreaklabs/cbreak/pkg/logs"
	"github.com/cbreaklabs/cbreak/pkg/term"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			// Put the terminal back before the panic output garbles it
			if cbreak.Restore() == nil {
				term.Debug("Restored terminal before panic")
			}
			panic(r)
		}
	}()

	// Handle Ctrl+C so we can exit gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	slog.SetDefault(logs.NewTermLogger(term.DefaultTerm))
	command.SetupCommands(version)
	err := command.Execute(ctx)
	stop()

	if err != nil {
		// If the error is a command.ExitCode, use its value as the exit code
		ec, ok := err.(command.ExitCode)
		if !ok {
			ec = 1 // should not happen since we always return ExitCode
		}
		os.Exit(int(ec))
	}
}

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbreaklabs/cbreak/pkg"
	"github.com/cbreaklabs/cbreak/pkg/term"
	"github.com/spf13/cobra"
)

const ttyNeeded = "tty-needed" // annotation to indicate that a command must control a terminal
var ttyNeededAnnotation = map[string]string{ttyNeeded: ""}

// GLOBALS
var (
	colorMode      = ColorAuto
	doDebug        = false
	hasTty         = term.IsTerminal() && !pkg.GetenvBool("CI")
	nonInteractive = !hasTty
)

func SetupCommands(version string) {
	RootCmd.Version = version
	RootCmd.PersistentFlags().Var(&colorMode, "color", fmt.Sprintf("colorize output; one of %v", allColorModes))
	RootCmd.PersistentFlags().BoolVar(&doDebug, "debug", pkg.GetenvBool("CBREAK_DEBUG"), "debug logging for troubleshooting the CLI")

	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(sizeCmd)
	RootCmd.AddCommand(keysCmd)
}

var RootCmd = &cobra.Command{
	SilenceUsage:  true,
	SilenceErrors: true,
	Use:           "cbreak",
	Args:          cobra.NoArgs,
	Short:         "Switch the terminal out of canonical (line-buffered) input mode around a command, and put it back afterwards.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		term.SetDebug(doDebug)

		// Do this first, since any errors will be printed to the console
		switch colorMode {
		case ColorNever:
			term.ForceColor(false)
		case ColorAlways:
			term.ForceColor(true)
		}

		if _, ok := cmd.Annotations[ttyNeeded]; ok && nonInteractive {
			return errors.New("no TTY detected; this command needs an interactive terminal")
		}
		return nil
	},
}

func Execute(ctx context.Context) error {
	if term.StdoutCanColor() {
		restore := term.EnableANSI()
		defer restore()
	}

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		if !(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			term.Error("Error:", err)
		}

		var ec ExitCode
		if errors.As(err, &ec) {
			return ec
		}
		return ExitCode(1)
	}
	return nil
}

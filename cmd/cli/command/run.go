package command

import (
	"errors"
	"os"
	"os/exec"

	"github.com/cbreaklabs/cbreak/pkg"
	"github.com/cbreaklabs/cbreak/pkg/cbreak"
	"github.com/cbreaklabs/cbreak/pkg/term"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:         "run -- COMMAND [ARG...]",
	Short:       "Run a command with the terminal in non-canonical mode",
	Args:        cobra.MinimumNArgs(1),
	Annotations: ttyNeededAnnotation,
	RunE: func(cmd *cobra.Command, args []string) error {
		term.Debug("Running:", pkg.ShellQuote(args...))
		return cbreak.Default.Do(func() error {
			child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
			child.Stdin = os.Stdin
			child.Stdout = os.Stdout
			child.Stderr = os.Stderr
			err := child.Run()
			var ee *exec.ExitError
			if errors.As(err, &ee) {
				return ExitCode(ee.ExitCode())
			}
			return err
		})
	},
}

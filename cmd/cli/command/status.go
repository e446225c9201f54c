package command

import (
	"github.com/cbreaklabs/cbreak/pkg/cbreak"
	"github.com/cbreaklabs/cbreak/pkg/term"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the controlling terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal() {
			term.Warn("Standard output is not a terminal")
		}

		canonical, err := cbreak.Default.Canonical()
		if err != nil {
			return err
		}
		mode := "non-canonical (character-at-a-time)"
		if canonical {
			mode = "canonical (line-buffered)"
		}
		term.Println("Input mode:   ", mode)

		ws, err := cbreak.Default.WindowSize()
		if err != nil {
			return err
		}
		term.Printf("Size:          %d columns, %d rows", ws.Cols, ws.Rows)
		term.Println("Color profile:", profileName(term.ColorProfile()))
		background := "light"
		if term.HasDarkBackground() {
			background = "dark"
		}
		term.Println("Background:   ", background)
		return nil
	},
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.Ascii:
		return "none"
	case termenv.ANSI:
		return "ansi (16 colors)"
	case termenv.ANSI256:
		return "ansi (256 colors)"
	case termenv.TrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

package command

import (
	"fmt"

	"github.com/cbreaklabs/cbreak/pkg/cbreak"
	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Print the terminal size as COLSxROWS",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cbreak.Default.WindowSize()
		if err != nil {
			return err
		}
		// plain output so it can be used in scripts
		fmt.Printf("%dx%d\n", ws.Cols, ws.Rows)
		return nil
	},
}

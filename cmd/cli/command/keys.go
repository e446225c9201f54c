package command

import (
	"github.com/cbreaklabs/cbreak/pkg/cbreak"
	"github.com/cbreaklabs/cbreak/pkg/term"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:         "keys",
	Short:       "Echo raw input bytes as they arrive; 'q' or Ctrl+C quits",
	Args:        cobra.NoArgs,
	Annotations: ttyNeededAnnotation,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cbreak.Default.Do(func() error {
			input := term.NewNonBlockingStdin()
			defer input.Close()
			go func() {
				<-cmd.Context().Done()
				input.Close() // interrupts the pending Read
			}()

			term.Info("Type keys to see their bytes; 'q' quits")
			buf := make([]byte, 64)
			for {
				n, err := input.Read(buf)
				if err != nil {
					return cmd.Context().Err() // nil on plain EOF
				}
				for _, b := range buf[:n] {
					term.Printf("%3d 0x%02x %q", b, b, b)
					if b == 'q' {
						return nil
					}
				}
			}
		})
	},
}

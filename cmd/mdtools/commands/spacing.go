package commands

import (
	"github.com/spf13/cobra"

	"github.com/seemantshankar/spherical/internal/normalize"
)

var fixSpacingCmd = &cobra.Command{
	Use:   "fix-spacing <input> [output]",
	Short: "Regularize header and blank-line spacing",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(args, "Fixed markdown spacing", func(content string) string {
			out, _ := normalize.FixSpacing(content)
			return out
		})
	},
}

func init() {
	rootCmd.AddCommand(fixSpacingCmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/seemantshankar/spherical/internal/normalize"
)

var cleanSectionsCmd = &cobra.Command{
	Use:   "clean-sections <input> [output]",
	Short: "Remove sections that carry no usable data",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(args, "Cleaned empty sections from markdown", func(content string) string {
			out, _ := normalize.CleanSections(content)
			return out
		})
	},
}

func init() {
	rootCmd.AddCommand(cleanSectionsCmd)
}

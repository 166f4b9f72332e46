package commands

import (
	"github.com/spf13/cobra"

	"github.com/seemantshankar/spherical/internal/normalize"
)

var fixTablesCmd = &cobra.Command{
	Use:   "fix-tables <input> [output]",
	Short: "Reconcile all tables to the 3-column schema",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(args, "Fixed markdown tables", func(content string) string {
			out, _ := normalize.FixTables(content)
			return out
		})
	},
}

func init() {
	rootCmd.AddCommand(fixTablesCmd)
}

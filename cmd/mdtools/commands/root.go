package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdtools",
	Short: "Repair markdown extracted from product brochures",
	Long: `mdtools normalizes the markdown produced by upstream PDF extraction:
it reconciles specification tables to the 3-column Category/Specification/Value
schema, prunes sections that carry no data, regularizes header spacing, and can
extract source documents (PDF, DOCX, HTML, CSV, text) into markdown first.`,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

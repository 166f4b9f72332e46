package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seemantshankar/spherical/internal/inspect"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Verify every table row against the 3-column schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		rep := inspect.Analyze(string(data))
		fmt.Printf("%s: %s\n", path, rep)

		if !rep.SchemaOK() {
			return fmt.Errorf("%d wide and %d short rows deviate from the 3-column schema",
				rep.WideRows, rep.ShortRows)
		}
		fmt.Println("✓ All tables conform to the 3-column schema")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

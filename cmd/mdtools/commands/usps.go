package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seemantshankar/spherical/internal/usps"
)

var enhanceUSPsCmd = &cobra.Command{
	Use:   "enhance-usps <file>",
	Short: "Rewrite the USP section with bullets derived from detected cues",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		content := string(data)
		bullets := usps.Build(content, usps.DefaultRules())

		out, ok := usps.Replace(content, bullets)
		if !ok {
			fmt.Println("No USP section found; skipped.")
			return nil
		}

		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		fmt.Printf("✓ Enhanced USPs in %s with %d premium bullets\n", path, len(bullets))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enhanceUSPsCmd)
}

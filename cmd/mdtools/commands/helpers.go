package commands

import (
	"fmt"
	"os"
)

// runStage reads the input file, applies transform and writes the result to
// the output path (the input path when none is given), printing the one-line
// confirmation the batch tools always printed.
func runStage(args []string, what string, transform func(string) string) error {
	input := args[0]
	output := input
	if len(args) > 1 {
		output = args[1]
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	fixed := transform(string(data))

	if err := os.WriteFile(output, []byte(fixed), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Printf("✓ %s\n", what)
	fmt.Printf("  Input:  %s\n", input)
	fmt.Printf("  Output: %s\n", output)
	return nil
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/seemantshankar/spherical/internal/config"
	"github.com/seemantshankar/spherical/internal/normalize"
)

var (
	runOutput  string
	runDir     string
	runWorkers int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run the full normalize pipeline (tables, sections, spacing)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if runDir != "" {
			return runBatch(runDir, batchWorkers(runWorkers))
		}
		if len(args) != 1 {
			return fmt.Errorf("either a file argument or --dir is required")
		}

		input := args[0]
		output := input
		if runOutput != "" {
			output = runOutput
		}

		sum, err := normalizeFile(input, output)
		if err != nil {
			return err
		}

		fmt.Println("✓ Normalized markdown")
		fmt.Printf("  Input:  %s\n", input)
		fmt.Printf("  Output: %s\n", output)
		fmt.Printf("  Rows merged: %d, separators reset: %d, sections pruned: %d, headers split: %d\n",
			sum.Tables.RowsMerged, sum.Tables.SeparatorsReset,
			sum.Sections.SectionsPruned, sum.Spacing.HeadersSplit)
		return nil
	},
}

// normalizeFile applies the full pipeline to one file, writing the result
// back in one read and one write.
func normalizeFile(input, output string) (normalize.Summary, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return normalize.Summary{}, fmt.Errorf("read %s: %w", input, err)
	}
	out, sum := normalize.Run(string(data))
	if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
		return normalize.Summary{}, fmt.Errorf("write %s: %w", output, err)
	}
	return sum, nil
}

// batchWorkers resolves the --dir pool size: the flag when set, otherwise the
// WORKER_COUNT environment default.
func batchWorkers(flag int) int {
	if flag > 0 {
		return flag
	}
	return config.Load().WorkerCount
}

// runBatch normalizes every markdown file under dir in place, using a bounded
// worker pool. Each file is still a single synchronous transform.
func runBatch(dir string, workers int) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no markdown files in %s", dir)
	}
	if workers <= 0 {
		workers = 4
	}
	if workers > len(matches) {
		workers = len(matches)
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed []string

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if _, err := normalizeFile(path, path); err != nil {
					mu.Lock()
					failed = append(failed, fmt.Sprintf("%s: %v", path, err))
					mu.Unlock()
				}
			}
		}()
	}

	for _, path := range matches {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	if len(failed) > 0 {
		for _, f := range failed {
			fmt.Fprintln(os.Stderr, f)
		}
		return fmt.Errorf("%d of %d files failed", len(failed), len(matches))
	}

	fmt.Printf("✓ Normalized %d markdown files in %s\n", len(matches), dir)
	return nil
}

func init() {
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output path (default: overwrite input)")
	runCmd.Flags().StringVar(&runDir, "dir", "", "normalize every *.md file in a directory")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "worker count for --dir mode (default: WORKER_COUNT env, then 4)")
	rootCmd.AddCommand(runCmd)
}

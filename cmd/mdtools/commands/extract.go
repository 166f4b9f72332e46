package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seemantshankar/spherical/internal/extract"
	"github.com/seemantshankar/spherical/internal/normalize"
)

var (
	extractOutput string
	extractRaw    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <input>",
	Short: "Extract a source document (PDF, DOCX, HTML, CSV, text) to markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output := extractOutput
		if output == "" {
			ext := filepath.Ext(input)
			output = strings.TrimSuffix(input, ext) + ".md"
		}

		ex, err := extract.ForFile(input)
		if err != nil {
			return err
		}
		if pdf, ok := ex.(*extract.PDFExtractor); ok {
			pdf.FallbackPdftotext = true
		}

		f, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("read %s: %w", input, err)
		}
		defer f.Close()

		tree, err := ex.Extract(f, filepath.Base(input))
		if err != nil {
			return fmt.Errorf("extract %s: %w", input, err)
		}

		md := tree.Markdown()
		if !extractRaw {
			md, _ = normalize.Run(md)
		}

		if err := os.WriteFile(output, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}

		fmt.Println("✓ Extracted document to markdown")
		fmt.Printf("  Input:  %s\n", input)
		fmt.Printf("  Output: %s\n", output)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output path (default: input with .md extension)")
	extractCmd.Flags().BoolVar(&extractRaw, "raw", false, "skip the normalize pipeline after extraction")
	rootCmd.AddCommand(extractCmd)
}

// Package extract converts source documents (PDF, DOCX, HTML, CSV, plain
// text) into the markdown the normalize stages consume.
package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/seemantshankar/spherical/internal/doctree"
)

// Extractor converts raw document bytes into a DocTree.
type Extractor interface {
	Extract(r io.Reader, filename string) (*doctree.DocTree, error)
}

// SupportedExtensions lists file extensions this package can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".csv":  true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextExtractor{}, nil
	case ".csv":
		return &CSVExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

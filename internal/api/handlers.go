package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/seemantshankar/spherical/internal/extract"
	"github.com/seemantshankar/spherical/internal/normalize"
	"github.com/seemantshankar/spherical/internal/usps"
)

// handleNormalize runs the normalize pipeline on the request body and returns
// the result as markdown. The optional "stages" query selects a subset of
// tables, sections, spacing, usps (default: tables,sections,spacing).
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.MaxUploadBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	if int64(len(body)) > s.cfg.MaxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "document too large")
		return
	}

	stages, err := parseStages(r.URL.Query().Get("stages"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	out := applyStages(string(body), stages)
	s.stats.Record(time.Since(start))

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(out))
}

// handleExtract accepts a multipart upload ("file" field), extracts it to
// markdown and runs the full normalize pipeline on the result.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "parse upload: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if !extract.IsSupportedExtension(header.Filename) {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported file type")
		return
	}

	ex, err := extract.ForFile(header.Filename)
	if err != nil {
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	if pdf, ok := ex.(*extract.PDFExtractor); ok {
		pdf.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	tree, err := ex.Extract(file, header.Filename)
	if err != nil {
		s.log.Error("extract failed", "filename", header.Filename, "error", err)
		writeError(w, http.StatusUnprocessableEntity, "extract: "+err.Error())
		return
	}

	start := time.Now()
	out, _ := normalize.Run(tree.Markdown())
	s.stats.Record(time.Since(start))

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(out))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.stats.Snapshot())
}

func parseStages(raw string) ([]string, error) {
	if raw == "" {
		return []string{"tables", "sections", "spacing"}, nil
	}
	stages := strings.Split(raw, ",")
	for _, st := range stages {
		switch st {
		case "tables", "sections", "spacing", "usps":
		default:
			return nil, fmt.Errorf("unknown stage: %s", st)
		}
	}
	return stages, nil
}

func applyStages(content string, stages []string) string {
	for _, st := range stages {
		switch st {
		case "tables":
			content, _ = normalize.FixTables(content)
		case "sections":
			content, _ = normalize.CleanSections(content)
		case "spacing":
			content, _ = normalize.FixSpacing(content)
		case "usps":
			bullets := usps.Build(content, usps.DefaultRules())
			if out, ok := usps.Replace(content, bullets); ok {
				content = out
			}
		}
	}
	return content
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

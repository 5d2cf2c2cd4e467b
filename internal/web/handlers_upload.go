package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/JonMunkholm/orderflow/internal/core"
	"github.com/JonMunkholm/orderflow/internal/csvio"
	"github.com/JonMunkholm/orderflow/internal/logging"
)

// handleImport decodes an uploaded order export and replaces the current
// batch. Decoding runs inside an import limiter slot. A file that cannot be
// decoded leaves an empty batch; a request rejected before decoding leaves
// the current batch alone.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	result, err := s.importUpload(w, r)
	s.metrics.ObserveImport(result.Imported, result.Discarded, time.Since(start), err)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.WithFields(r.Context(), "batch_id", result.BatchID).Info("orders imported",
		"file", result.FileName,
		"rows", result.TotalRows,
		"imported", result.Imported,
		"discarded", result.Discarded,
	)

	writeJSON(w, toImportResponse(result, time.Since(start)))
}

func (s *Server) importUpload(w http.ResponseWriter, r *http.Request) (core.ImportResult, error) {
	maxSize := s.cfg.Import.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return core.ImportResult{}, fmt.Errorf("%w: limit %d bytes", core.ErrFileTooLarge, tooLarge.Limit)
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return core.ImportResult{}, fmt.Errorf("%w: %v", core.ErrNoFile, err)
		}
		return core.ImportResult{}, fmt.Errorf("parse import form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return core.ImportResult{}, fmt.Errorf("%w: %v", core.ErrNoFile, err)
	}
	defer file.Close()

	var (
		records   []core.RawRecord
		decodeErr error
	)
	err = s.limiter.Do(r.Context(), func() error {
		s.trackInFlight(1)
		defer s.trackInFlight(-1)

		records, decodeErr = csvio.Decode(file)
		return decodeErr
	})
	if decodeErr != nil {
		s.workspace.Reset(header.Filename)
	}
	if err != nil {
		return core.ImportResult{}, fmt.Errorf("import %s: %w", header.Filename, err)
	}

	return s.workspace.Import(header.Filename, records), nil
}

func (s *Server) trackInFlight(delta float64) {
	if s.metrics == nil {
		return
	}
	s.metrics.ImportsInFlight.Add(delta)
}

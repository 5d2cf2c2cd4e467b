package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/orderflow/internal/csvio"
)

// exportRequest is the body of POST /api/export. The embedded query names
// the view whose selected orders are exported, in that view's order.
type exportRequest struct {
	Type         string `json:"type"`
	StartInvoice string `json:"startInvoice"`
	queryRequest
}

// decodeExportRequest accepts a JSON body or a submitted form.
func decodeExportRequest(r *http.Request, defaultSize int) (exportRequest, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req exportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return exportRequest{}, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return exportRequest{}, err
	}
	return exportRequest{
		Type:         r.Form.Get("type"),
		StartInvoice: r.Form.Get("startInvoice"),
		queryRequest: queryFromValues(r.Form, defaultSize),
	}, nil
}

// handleExport maps the selected orders with the requested courier format
// and returns the file as a CSV attachment. A successful export clears the
// selection.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	req, err := decodeExportRequest(r, s.cfg.Export.PageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid export request")
		return
	}

	result, err := s.workspace.Export(r.Context(), req.Type, req.StartInvoice, req.params(s.cfg.Export.PageSize))
	if err != nil {
		s.metrics.ObserveExport(strings.TrimSpace(req.Type), 0, 0, err)
		s.respondError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := csvio.WriteExport(&buf, result); err != nil {
		s.metrics.ObserveExport(result.Format.Key, 0, 0, err)
		s.respondError(w, r, fmt.Errorf("encode %s export: %w", result.Format.Key, err))
		return
	}
	s.metrics.ObserveExport(result.Format.Key, len(result.Records), len(result.Skipped), nil)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.FileName))
	w.Header().Set("X-Exported-Rows", strconv.Itoa(len(result.Records)))
	w.Header().Set("X-Skipped-Rows", strconv.Itoa(len(result.Skipped)))
	w.Write(buf.Bytes())
}

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JonMunkholm/orderflow/internal/core"
	"github.com/JonMunkholm/orderflow/internal/web/templates"
	"github.com/a-h/templ"
)

// handleDashboard renders the main page for the view in the URL.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := parseQuery(r.URL.Query(), s.cfg.Export.PageSize)

	data := templates.DashboardData{
		Query:       q,
		Formats:     core.Formats(),
		DefaultType: s.cfg.Export.DefaultType,
	}

	snap, err := s.workspace.Query(q)
	switch {
	case err == nil:
		data.HasBatch = true
		data.Snapshot = snap
		// Show the page actually served after clamping.
		data.Query.Page = snap.Result.Page
		data.Query.PageSize = snap.Result.PageSize
	case errors.Is(err, core.ErrNoBatch):
	default:
		s.respondError(w, r, err)
		return
	}

	templ.Handler(templates.Dashboard(data)).ServeHTTP(w, r)
}

// handleHealth reports liveness and import slot usage.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":  "ok",
		"formats": core.FormatCount(),
		"imports": s.limiter.Status(),
	})
}

// handleListFormats returns the registered export formats.
func (s *Server) handleListFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"formats":     core.Formats(),
		"defaultType": s.cfg.Export.DefaultType,
	})
}

// handleListOrders returns one page of the current batch.
func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	snap, err := s.workspace.Query(parseQuery(r.URL.Query(), s.cfg.Export.PageSize))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, toOrdersResponse(snap))
}

// selectionRequest is the body of POST /api/selection. The embedded query
// names the view that page and all act on.
type selectionRequest struct {
	Action  string `json:"action"`
	OrderID string `json:"orderId"`
	queryRequest
}

// handleSelection toggles one order or selects the page, all filtered
// orders, or nothing.
func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid selection request")
		return
	}
	if req.Action == core.ActionToggle && req.OrderID == "" {
		writeError(w, http.StatusBadRequest, "orderId is required to toggle")
		return
	}

	snap, err := s.workspace.Select(req.Action, req.OrderID, req.params(s.cfg.Export.PageSize))
	if errors.Is(err, core.ErrUnknownAction) {
		writeError(w, http.StatusBadRequest, "unknown selection action")
		return
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, toOrdersResponse(snap))
}

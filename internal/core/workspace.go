package core

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNoBatch is returned by Workspace operations before the first import.
var ErrNoBatch = errors.New("no orders imported")

// Workspace owns the current batch for a long-running process.
// All methods are safe for concurrent use.
type Workspace struct {
	mu    sync.Mutex
	batch *Batch
	now   func() time.Time
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{now: time.Now}
}

// Import replaces the current batch. The previous batch and its selection
// are discarded.
func (w *Workspace) Import(fileName string, records []RawRecord) ImportResult {
	b, result := NewBatch(fileName, records, w.now())

	w.mu.Lock()
	w.batch = b
	w.mu.Unlock()

	return result
}

// Reset replaces the current batch with an empty one named after fileName.
// It is used when a file could not be read, so nothing from an earlier
// import stays selectable.
func (w *Workspace) Reset(fileName string) {
	b, _ := NewBatch(fileName, nil, w.now())

	w.mu.Lock()
	w.batch = b
	w.mu.Unlock()
}

// Snapshot describes the batch for display.
type Snapshot struct {
	BatchID    string
	FileName   string
	ImportedAt time.Time
	Total      int
	Selected   int
	Mode       SelectionMode
	Result     QueryResult
	PageSel    map[string]bool // Selection state of each order on the page
}

// Query runs a query against the current batch.
func (w *Workspace) Query(p QueryParams) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.batch == nil {
		return Snapshot{}, ErrNoBatch
	}
	return w.snapshot(p), nil
}

func (w *Workspace) snapshot(p QueryParams) Snapshot {
	res := w.batch.Query(p)
	sel := make(map[string]bool, len(res.Orders))
	for _, o := range res.Orders {
		sel[o.OrderID] = w.batch.IsSelected(o.OrderID)
	}
	return Snapshot{
		BatchID:    w.batch.ID,
		FileName:   w.batch.FileName,
		ImportedAt: w.batch.ImportedAt,
		Total:      w.batch.Len(),
		Selected:   w.batch.SelectedCount(),
		Mode:       w.batch.Mode(),
		Result:     res,
		PageSel:    sel,
	}
}

// Selection actions accepted by Select.
const (
	ActionToggle = "toggle"
	ActionPage   = "page"
	ActionAll    = "all"
	ActionClear  = "clear"
)

// ErrUnknownAction is returned by Select for an unrecognized action.
var ErrUnknownAction = errors.New("unknown selection action")

// Select applies a selection action. Page and all act on the view that p
// describes, so the caller passes the same query the user is looking at.
func (w *Workspace) Select(action, orderID string, p QueryParams) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.batch == nil {
		return Snapshot{}, ErrNoBatch
	}

	switch action {
	case ActionToggle:
		w.batch.Toggle(orderID)
	case ActionPage:
		w.batch.SelectPage(w.batch.Query(p).Orders)
	case ActionAll:
		w.batch.SelectAll(w.batch.Query(p).Filtered)
	case ActionClear:
		w.batch.ClearSelection()
	default:
		return Snapshot{}, ErrUnknownAction
	}
	return w.snapshot(p), nil
}

// Export maps the selected orders of the view described by p. The selection
// is cleared only when the export succeeds.
func (w *Workspace) Export(ctx context.Context, exportType, startInvoice string, p QueryParams) (*ExportResult, error) {
	w.mu.Lock()
	batch := w.batch
	var orders []Order
	if batch != nil {
		orders = batch.Selected(batch.Query(p).Filtered)
	}
	w.mu.Unlock()

	result, err := Export(ctx, ExportRequest{
		Type:         exportType,
		StartInvoice: startInvoice,
		Orders:       orders,
		Now:          w.now(),
	})
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	if w.batch == batch {
		batch.ClearSelection()
	}
	w.mu.Unlock()

	return result, nil
}

package core

// batch.go holds the orders of one import and the user's selection over them.
//
// A Batch is created whole by NewBatch and its orders never change. Importing
// another file builds a new Batch; nothing is merged. Filtering, sorting and
// paging are pure reads. Only the selection set mutates, and callers sharing a
// Batch across goroutines must serialize access (see Workspace).

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Page sizes offered for browsing a batch.
var PageSizes = []int{10, 20, 30, 50, 100}

// DefaultPageSize is used when a query asks for an unsupported page size.
const DefaultPageSize = 20

// FilterDateLayout is the layout of QueryParams.StartDate and EndDate.
const FilterDateLayout = "2006-01-02"

// SelectionMode records how the current selection was made.
type SelectionMode string

const (
	SelectionManual SelectionMode = "manual"
	SelectionPage   SelectionMode = "page"
	SelectionAll    SelectionMode = "all"
)

// Sortable order fields.
const (
	SortSaleDate   = "saleDate"
	SortOrderID    = "orderId"
	SortFullName   = "fullName"
	SortNoOfItems  = "noOfItems"
	SortCity       = "city"
	SortState      = "state"
	SortCountry    = "country"
	SortOrderValue = "orderValue"
)

// Batch is the in-memory result of one import.
type Batch struct {
	ID         string
	FileName   string
	ImportedAt time.Time

	orders   []Order
	selected map[string]struct{}
	mode     SelectionMode
}

// NewBatch normalizes decoded records into a fresh batch with nothing selected.
func NewBatch(fileName string, records []RawRecord, now time.Time) (*Batch, ImportResult) {
	orders, discarded := Normalize(records)

	b := &Batch{
		ID:         uuid.New().String(),
		FileName:   fileName,
		ImportedAt: now,
		orders:     orders,
		selected:   make(map[string]struct{}),
		mode:       SelectionManual,
	}

	return b, ImportResult{
		BatchID:    b.ID,
		FileName:   fileName,
		TotalRows:  len(records),
		Imported:   len(orders),
		Discarded:  discarded,
		ImportedAt: now,
	}
}

// Len returns the number of orders in the batch.
func (b *Batch) Len() int {
	return len(b.orders)
}

// Orders returns a copy of every order in import order.
func (b *Batch) Orders() []Order {
	out := make([]Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// Query filters, sorts and pages the batch.
func (b *Batch) Query(p QueryParams) QueryResult {
	filtered := filterOrders(b.orders, p)
	sortOrders(filtered, p.Sort)

	size := p.PageSize
	if !validPageSize(size) {
		size = DefaultPageSize
	}

	total := len(filtered)
	pages := (total + size - 1) / size

	page := p.Page
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return QueryResult{
		Orders:     filtered[start:end],
		Filtered:   filtered,
		Page:       page,
		PageSize:   size,
		TotalRows:  total,
		TotalPages: pages,
	}
}

func validPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// filterOrders returns a new slice holding the orders that pass every
// active filter, in batch order.
func filterOrders(orders []Order, p QueryParams) []Order {
	search := strings.ToLower(strings.TrimSpace(p.Search))
	country := strings.ToLower(strings.TrimSpace(p.Country))
	start, hasStart := parseFilterDate(p.StartDate)
	end, hasEnd := parseFilterDate(p.EndDate)

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if search != "" &&
			!strings.Contains(strings.ToLower(o.OrderID), search) &&
			!strings.Contains(strings.ToLower(o.FullName), search) {
			continue
		}
		if country != "" && !strings.Contains(strings.ToLower(o.Country), country) {
			continue
		}
		if hasStart || hasEnd {
			sold, ok := ParseDisplayDate(o.SaleDate)
			if !ok {
				continue
			}
			if hasStart && sold.Before(start) {
				continue
			}
			if hasEnd && sold.After(end) {
				continue
			}
		}
		out = append(out, o)
	}
	return out
}

// parseFilterDate parses a yyyy-mm-dd filter bound. Blank or malformed
// bounds are treated as absent.
func parseFilterDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(FilterDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// sortOrders sorts in place. Equal keys keep their relative order.
func sortOrders(orders []Order, by SortSpec) {
	less := lessFunc(by.Column)
	if less == nil {
		return
	}
	desc := strings.EqualFold(by.Dir, "desc")

	sort.SliceStable(orders, func(i, j int) bool {
		if desc {
			return less(orders[j], orders[i])
		}
		return less(orders[i], orders[j])
	})
}

func lessFunc(column string) func(a, b Order) bool {
	switch column {
	case SortSaleDate:
		return func(a, b Order) bool {
			ta, okA := ParseDisplayDate(a.SaleDate)
			tb, okB := ParseDisplayDate(b.SaleDate)
			if okA && okB {
				return ta.Before(tb)
			}
			return a.SaleDate < b.SaleDate
		}
	case SortOrderID:
		return func(a, b Order) bool { return a.OrderID < b.OrderID }
	case SortFullName:
		return func(a, b Order) bool { return a.FullName < b.FullName }
	case SortNoOfItems:
		return func(a, b Order) bool {
			da, db := ToDecimal(a.NoOfItems), ToDecimal(b.NoOfItems)
			if da.Valid && db.Valid {
				return da.Decimal.LessThan(db.Decimal)
			}
			return a.NoOfItems < b.NoOfItems
		}
	case SortCity:
		return func(a, b Order) bool { return a.City < b.City }
	case SortState:
		return func(a, b Order) bool { return a.State < b.State }
	case SortCountry:
		return func(a, b Order) bool { return a.Country < b.Country }
	case SortOrderValue:
		return func(a, b Order) bool {
			if !a.OrderValue.Valid || !b.OrderValue.Valid {
				return !a.OrderValue.Valid && b.OrderValue.Valid
			}
			return a.OrderValue.Decimal.LessThan(b.OrderValue.Decimal)
		}
	default:
		return nil
	}
}

// Toggle flips the selection of one order ID and reports whether it is now
// selected. Every order sharing the ID is affected.
func (b *Batch) Toggle(orderID string) bool {
	b.mode = SelectionManual
	if _, ok := b.selected[orderID]; ok {
		delete(b.selected, orderID)
		return false
	}
	b.selected[orderID] = struct{}{}
	return true
}

// SelectPage replaces the selection with the orders on a page.
func (b *Batch) SelectPage(page []Order) {
	b.replaceSelection(page, SelectionPage)
}

// SelectAll replaces the selection with every filtered order.
func (b *Batch) SelectAll(filtered []Order) {
	b.replaceSelection(filtered, SelectionAll)
}

// ClearSelection deselects everything.
func (b *Batch) ClearSelection() {
	b.selected = make(map[string]struct{})
	b.mode = SelectionManual
}

func (b *Batch) replaceSelection(orders []Order, mode SelectionMode) {
	b.selected = make(map[string]struct{}, len(orders))
	for _, o := range orders {
		b.selected[o.OrderID] = struct{}{}
	}
	b.mode = mode
}

// IsSelected reports whether an order ID is selected.
func (b *Batch) IsSelected(orderID string) bool {
	_, ok := b.selected[orderID]
	return ok
}

// SelectedCount returns the number of selected order IDs.
func (b *Batch) SelectedCount() int {
	return len(b.selected)
}

// Mode returns how the current selection was made.
func (b *Batch) Mode() SelectionMode {
	return b.mode
}

// Selected returns the orders of view whose ID is selected, in view order.
// Selected IDs outside the view are not exported.
func (b *Batch) Selected(view []Order) []Order {
	out := make([]Order, 0, len(b.selected))
	for _, o := range view {
		if b.IsSelected(o.OrderID) {
			out = append(out, o)
		}
	}
	return out
}

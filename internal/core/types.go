package core

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Source column labels recognized in an order export file.
const (
	ColSaleDate    = "Sale Date"
	ColOrderID     = "Order ID"
	ColFirstName   = "First Name"
	ColLastName    = "Last Name"
	ColFullName    = "Full Name"
	ColNoOfItems   = "Number of Items"
	ColStreet1     = "Street 1"
	ColStreet2     = "Street 2"
	ColShipCity    = "Ship City"
	ColShipState   = "Ship State"
	ColShipZipcode = "Ship Zipcode"
	ColShipCountry = "Ship Country"
	ColOrderValue  = "Order Value"
	ColEmail       = "Email"
	ColMobile      = "Mobile"
)

// Cell is a single decoded value from the source file.
// Null is set when the source cell was empty.
type Cell struct {
	Text string
	Null bool
}

// TextCell wraps decoded text, marking empty text as null.
func TextCell(s string) Cell {
	return Cell{Text: s, Null: s == ""}
}

// RawRecord is one decoded row keyed by source column label.
// The column set is whatever the file header declared.
type RawRecord map[string]Cell

// ColumnKind selects how a source column is coerced during normalization.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindRaw
	KindZeroPadded
	KindInteger
	KindDecimal
	KindDate
)

// ColumnPolicy binds a source column to its coercion rule.
type ColumnPolicy struct {
	Column string
	Kind   ColumnKind
	Width  int // Minimum width for KindZeroPadded
}

// Order is the canonical, normalized form of one imported row.
// Orders are built once per import and never mutated afterwards.
type Order struct {
	ID           string
	SaleDate     string
	OrderID      string
	FirstName    string
	LastName     string
	FullName     string
	NoOfItems    string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Country      string
	OrderValue   decimal.NullDecimal
	Email        pgtype.Text // Valid=false when absent
	MobileNo     pgtype.Text // Valid=false when absent
}

// Field is one named value of an export row.
type Field struct {
	Name  string
	Value string
}

// ExportRecord is one destination-schema row. Fields are kept in the
// schema's column order.
type ExportRecord struct {
	Fields []Field
}

// Get returns the value stored under a column name.
func (r ExportRecord) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns the field values in column order.
func (r ExportRecord) Values() []string {
	out := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		out[i] = f.Value
	}
	return out
}

// Outcome is the result of mapping one Order: exactly one of Record or
// Skip is set.
type Outcome struct {
	Index   int // Position in the mapped sequence
	OrderID string
	Record  *ExportRecord
	Skip    *SkipReason
}

// Skipped reports whether the row was dropped by validation.
func (o Outcome) Skipped() bool {
	return o.Skip != nil
}

// MapFunc maps selected orders into outcomes for one destination schema.
// Invoice numbers are startInvoice plus the order's position in orders.
type MapFunc func(orders []Order, startInvoice int, now time.Time) []Outcome

// FormatInfo contains display information about an export format.
type FormatInfo struct {
	Key   string // Unique identifier: "shipRocket"
	Label string // Display name: "Ship Rocket"
}

// ExportFormat contains everything needed to produce one courier file.
type ExportFormat struct {
	Info FormatInfo

	// Columns lists the output header in its fixed order.
	Columns []string

	FileName func(now time.Time) string
	Map      MapFunc
}

// SortSpec represents a single sort column and direction.
type SortSpec struct {
	Column string // Order field key, e.g. "saleDate"
	Dir    string // "asc" or "desc"
}

// QueryParams narrows and orders the current batch for display and selection.
type QueryParams struct {
	Search    string // Substring of orderId or fullName
	Country   string // Substring of country
	StartDate string // yyyy-mm-dd, inclusive
	EndDate   string // yyyy-mm-dd, inclusive
	Sort      SortSpec
	Page      int // 1-based
	PageSize  int
}

// QueryResult is one page of the filtered, sorted batch.
type QueryResult struct {
	Orders     []Order // Current page
	Filtered   []Order // Every order matching the filters, in sort order
	Page       int
	PageSize   int
	TotalRows  int
	TotalPages int
}

// ImportResult summarizes a completed import.
type ImportResult struct {
	BatchID    string
	FileName   string
	TotalRows  int // Records delivered by the decoder
	Imported   int // Orders kept after blank-row removal
	Discarded  int
	ImportedAt time.Time
}

package core

// normalize.go turns decoded rows into canonical Orders.
//
// Every cell is coerced exactly once according to ColumnPolicies. Columns not
// listed there are plain text and keep the cell exactly as read. Rows whose cells are all blank are
// dropped before positions are assigned, so Order IDs stay dense.

import (
	"fmt"
	"strings"
)

// ZipCodeWidth is the minimum width of a normalized postal code.
const ZipCodeWidth = 5

// ColumnPolicies lists the source columns that are not kept verbatim.
var ColumnPolicies = []ColumnPolicy{
	{Column: ColSaleDate, Kind: KindDate},
	{Column: ColOrderID, Kind: KindRaw},
	{Column: ColShipZipcode, Kind: KindZeroPadded, Width: ZipCodeWidth},
	{Column: ColNoOfItems, Kind: KindInteger},
	{Column: ColOrderValue, Kind: KindDecimal},
}

var policyIndex = func() map[string]ColumnPolicy {
	idx := make(map[string]ColumnPolicy, len(ColumnPolicies))
	for _, p := range ColumnPolicies {
		idx[p.Column] = p
	}
	return idx
}()

// policyFor returns the coercion rule for a column, defaulting to text.
func policyFor(column string) ColumnPolicy {
	if p, ok := policyIndex[column]; ok {
		return p
	}
	return ColumnPolicy{Column: column, Kind: KindText}
}

// IsBlank reports whether every cell of the record is null or empty.
func IsBlank(rec RawRecord) bool {
	for _, c := range rec {
		if !c.Null && strings.TrimSpace(c.Text) != "" {
			return false
		}
	}
	return true
}

// coerce applies a column's policy to one cell. KindDecimal cells are
// returned cleaned; the caller parses them into a decimal.
func coerce(p ColumnPolicy, c Cell) string {
	var s string
	if !c.Null {
		s = c.Text
	}

	switch p.Kind {
	case KindRaw:
		return UnwrapExcelText(s)
	case KindZeroPadded:
		return PadLeft(CleanCell(s), p.Width)
	case KindInteger:
		return CoerceNumber(CleanCell(s))
	case KindDate:
		return FormatSaleDate(CleanCell(s))
	default:
		return s
	}
}

// field returns the coerced value of column in rec. Absent columns are
// coerced as null cells, so a zero-padded column still yields its padding.
func field(rec RawRecord, column string) string {
	return coerce(policyFor(column), rec[column])
}

// NormalizeRecord converts one raw record at position index into an Order.
// The result depends only on its arguments.
func NormalizeRecord(rec RawRecord, index int) Order {
	return Order{
		ID:           fmt.Sprintf("order_%d", index),
		SaleDate:     field(rec, ColSaleDate),
		OrderID:      field(rec, ColOrderID),
		FirstName:    field(rec, ColFirstName),
		LastName:     field(rec, ColLastName),
		FullName:     field(rec, ColFullName),
		NoOfItems:    field(rec, ColNoOfItems),
		AddressLine1: field(rec, ColStreet1),
		AddressLine2: field(rec, ColStreet2),
		City:         field(rec, ColShipCity),
		State:        field(rec, ColShipState),
		ZipCode:      field(rec, ColShipZipcode),
		Country:      field(rec, ColShipCountry),
		OrderValue:   ToDecimal(field(rec, ColOrderValue)),
		Email:        ToPgText(field(rec, ColEmail)),
		MobileNo:     ToPgText(field(rec, ColMobile)),
	}
}

// Normalize converts decoded records into Orders, discarding blank rows.
// It returns the orders and the number of records discarded.
func Normalize(records []RawRecord) ([]Order, int) {
	orders := make([]Order, 0, len(records))
	discarded := 0
	for _, rec := range records {
		if IsBlank(rec) {
			discarded++
			continue
		}
		orders = append(orders, NormalizeRecord(rec, len(orders)))
	}
	return orders, discarded
}

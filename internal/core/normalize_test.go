package core

import (
	"testing"
)

func raw(pairs ...string) RawRecord {
	rec := make(RawRecord, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		rec[pairs[i]] = TextCell(pairs[i+1])
	}
	return rec
}

func TestNormalize_DiscardsBlankRows(t *testing.T) {
	records := []RawRecord{
		raw(ColOrderID, "A-1", ColFullName, "Jane Doe"),
		raw(ColOrderID, "", ColFullName, "  "),
		{ColOrderID: Cell{Null: true}, ColEmail: Cell{Null: true}},
		raw(ColOrderID, "A-2"),
	}

	orders, discarded := Normalize(records)

	if len(orders) != 2 {
		t.Fatalf("len(orders) = %d, want 2", len(orders))
	}
	if discarded != 2 {
		t.Errorf("discarded = %d, want 2", discarded)
	}
	if orders[0].ID != "order_0" || orders[1].ID != "order_1" {
		t.Errorf("IDs = %q, %q, want order_0, order_1", orders[0].ID, orders[1].ID)
	}
	if orders[1].OrderID != "A-2" {
		t.Errorf("second OrderID = %q, want A-2", orders[1].OrderID)
	}
}

func TestNormalizeRecord_ZipCodePadding(t *testing.T) {
	tests := []struct {
		name string
		rec  RawRecord
		want string
	}{
		{"short zip", raw(ColShipZipcode, "501"), "00501"},
		{"leading zeros kept", raw(ColShipZipcode, "00501"), "00501"},
		{"zip plus four untouched", raw(ColShipZipcode, "12345-6789"), "12345-6789"},
		{"alphanumeric", raw(ColShipZipcode, "K1A"), "00K1A"},
		{"empty cell", raw(ColShipZipcode, ""), "00000"},
		{"missing column", raw(ColOrderID, "A-1"), "00000"},
		{"excel text prefix", raw(ColShipZipcode, `="0501"`), "00501"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NormalizeRecord(tt.rec, 0)
			if o.ZipCode != tt.want {
				t.Errorf("ZipCode = %q, want %q", o.ZipCode, tt.want)
			}
			if len(o.ZipCode) < ZipCodeWidth {
				t.Errorf("ZipCode %q shorter than %d", o.ZipCode, ZipCodeWidth)
			}
		})
	}
}

func TestNormalizeRecord_Fields(t *testing.T) {
	rec := raw(
		ColSaleDate, "2024-03-05",
		ColOrderID, "000123",
		ColFirstName, "Jane",
		ColLastName, "Doe",
		ColFullName, "Jane Doe",
		ColNoOfItems, "02",
		ColStreet1, "12 Main St",
		ColStreet2, "Apt 4",
		ColShipCity, "Austin",
		ColShipState, "TX",
		ColShipZipcode, "73301",
		ColShipCountry, "United States",
		ColOrderValue, "$1,034.50",
		ColEmail, "jane@example.com",
		ColMobile, "05551234",
	)

	o := NormalizeRecord(rec, 7)

	checks := []struct {
		field, got, want string
	}{
		{"ID", o.ID, "order_7"},
		{"SaleDate", o.SaleDate, "05/03/2024"},
		{"OrderID", o.OrderID, "000123"},
		{"FirstName", o.FirstName, "Jane"},
		{"LastName", o.LastName, "Doe"},
		{"FullName", o.FullName, "Jane Doe"},
		{"NoOfItems", o.NoOfItems, "2"},
		{"AddressLine1", o.AddressLine1, "12 Main St"},
		{"AddressLine2", o.AddressLine2, "Apt 4"},
		{"City", o.City, "Austin"},
		{"State", o.State, "TX"},
		{"ZipCode", o.ZipCode, "73301"},
		{"Country", o.Country, "United States"},
		{"Email", o.Email.String, "jane@example.com"},
		{"MobileNo", o.MobileNo.String, "05551234"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}

	if !o.OrderValue.Valid || o.OrderValue.Decimal.String() != "1034.5" {
		t.Errorf("OrderValue = %v, want 1034.5", o.OrderValue)
	}
}

func TestNormalizeRecord_AbsentContactsAreNull(t *testing.T) {
	o := NormalizeRecord(raw(ColOrderID, "A-1", ColEmail, ""), 0)

	if o.Email.Valid {
		t.Errorf("Email should be null, got %q", o.Email.String)
	}
	if o.MobileNo.Valid {
		t.Errorf("MobileNo should be null, got %q", o.MobileNo.String)
	}
}

func TestNormalizeRecord_UnparseableDatePassesThrough(t *testing.T) {
	o := NormalizeRecord(raw(ColSaleDate, "last Tuesday"), 0)
	if o.SaleDate != "last Tuesday" {
		t.Errorf("SaleDate = %q, want raw value", o.SaleDate)
	}
}

func TestNormalizeRecord_NonNumericQuantityKept(t *testing.T) {
	o := NormalizeRecord(raw(ColNoOfItems, "two"), 0)
	if o.NoOfItems != "two" {
		t.Errorf("NoOfItems = %q, want %q", o.NoOfItems, "two")
	}
}

func TestNormalizeRecord_IsPure(t *testing.T) {
	rec := raw(ColOrderID, "A-1", ColShipZipcode, "1")
	first := NormalizeRecord(rec, 3)

	rec[ColOrderID] = TextCell("changed")
	second := NormalizeRecord(raw(ColOrderID, "A-1", ColShipZipcode, "1"), 3)

	if first != second {
		t.Errorf("NormalizeRecord not deterministic: %+v vs %+v", first, second)
	}
	if first.OrderID != "A-1" {
		t.Errorf("order changed after source mutation: %q", first.OrderID)
	}
}

func TestNormalizeRecord_TextKeptVerbatim(t *testing.T) {
	rec := raw(
		ColOrderID, " 'A-001' ",
		ColFirstName, "Jones'",
		ColLastName, `"Smith"`,
		ColStreet1, " 12 Main St ",
		ColFullName, "   ",
	)

	o := NormalizeRecord(rec, 0)

	checks := []struct {
		field, got, want string
	}{
		{"OrderID", o.OrderID, " 'A-001' "},
		{"FirstName", o.FirstName, "Jones'"},
		{"LastName", o.LastName, `"Smith"`},
		{"AddressLine1", o.AddressLine1, " 12 Main St "},
		{"FullName", o.FullName, "   "},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
}

func TestNormalizeRecord_OrderIDExcelWrapper(t *testing.T) {
	o := NormalizeRecord(raw(ColOrderID, `="000123"`), 0)
	if o.OrderID != "000123" {
		t.Errorf("OrderID = %q, want %q", o.OrderID, "000123")
	}
}

package core

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportDay = time.Date(2024, time.March, 6, 15, 4, 5, 0, time.UTC)

func sampleOrder(orderID string) Order {
	return Order{
		ID:           "order_0",
		SaleDate:     "05/03/2024",
		OrderID:      orderID,
		FullName:     "Jane Doe",
		NoOfItems:    "1",
		AddressLine1: "12 Main St",
		City:         "Austin",
		State:        "TX",
		ZipCode:      "73301",
		Country:      "United States",
	}
}

func mappedRecords(t *testing.T, outcomes []Outcome) []ExportRecord {
	t.Helper()
	var out []ExportRecord
	for _, o := range outcomes {
		if o.Record != nil {
			out = append(out, *o.Record)
		}
	}
	return out
}

func col(t *testing.T, rec ExportRecord, name string) string {
	t.Helper()
	v, ok := rec.Get(name)
	require.True(t, ok, "missing column %s", name)
	return v
}

// ----------------------------------------------------------------------------
// ShipRocket
// ----------------------------------------------------------------------------

func TestMapShipRocket_ColumnsInOrder(t *testing.T) {
	out := MapShipRocket([]Order{sampleOrder("A-1")}, 1000, exportDay)
	require.Len(t, out, 1)

	names := make([]string, 0, len(out[0].Record.Fields))
	for _, f := range out[0].Record.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, ShipRocketColumns, names)
	assert.Len(t, ShipRocketColumns, 32)
}

func TestMapShipRocket_NeverDropsRows(t *testing.T) {
	orders := []Order{sampleOrder("A-1"), {OrderID: "blank"}, sampleOrder("A-3")}

	out := MapShipRocket(orders, 1000, exportDay)

	require.Len(t, out, len(orders))
	for _, o := range out {
		assert.False(t, o.Skipped())
	}
}

func TestMapShipRocket_InvoiceNumbers(t *testing.T) {
	orders := []Order{sampleOrder("A-1"), sampleOrder("A-2"), sampleOrder("A-3")}

	recs := mappedRecords(t, MapShipRocket(orders, 1000, exportDay))

	var got []string
	for _, r := range recs {
		got = append(got, col(t, r, SRColOrderID))
	}
	assert.Equal(t, []string{"1000", "1001", "1002"}, got)
}

func TestMapShipRocket_Postcode(t *testing.T) {
	tests := []struct {
		name    string
		country string
		zip     string
		want    string
	}{
		{"US zip plus four truncated", "United States", "123456789", "12345"},
		{"US hyphenated truncated", "United States", "12345-6789", "12345"},
		{"US five digits kept", "United States", "00501", "00501"},
		{"other country untouched", "Canada", "K1A0B1", "K1A0B1"},
		{"case sensitive country", "united states", "123456789", "123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := sampleOrder("A-1")
			o.Country = tt.country
			o.ZipCode = tt.zip

			rec := mappedRecords(t, MapShipRocket([]Order{o}, 1, exportDay))[0]
			assert.Equal(t, tt.want, col(t, rec, SRColPostcode))
		})
	}
}

func TestMapShipRocket_SellingPrice(t *testing.T) {
	for country, want := range map[string]string{
		"Canada":         "12",
		"United States":  "17",
		"United Kingdom": "17",
		"":               "17",
	} {
		o := sampleOrder("A-1")
		o.Country = country
		o.NoOfItems = "3"

		rec := mappedRecords(t, MapShipRocket([]Order{o}, 1, exportDay))[0]
		assert.Equal(t, want, col(t, rec, SRColSellingPrice), "country %q", country)
	}
}

func TestMapShipRocket_Defaults(t *testing.T) {
	o := sampleOrder("A-1")
	o.State = ""

	rec := mappedRecords(t, MapShipRocket([]Order{o}, 1, exportDay))[0]

	assert.Equal(t, "Custom", col(t, rec, SRColChannel))
	assert.Equal(t, "05/03/2024", col(t, rec, SRColOrderDate))
	assert.Equal(t, "Gift", col(t, rec, SRColPurpose))
	assert.Equal(t, "USD", col(t, rec, SRColCurrency))
	assert.Equal(t, "Jane", col(t, rec, SRColFirstName))
	assert.Equal(t, "Doe", col(t, rec, SRColLastName))
	assert.Equal(t, "", col(t, rec, SRColEmail))
	assert.Equal(t, "7405392592", col(t, rec, SRColMobile))
	assert.Equal(t, "NA", col(t, rec, SRColState))
	assert.Equal(t, "CAP", col(t, rec, SRColMasterSKU))
	assert.Equal(t, "Fabric Cotton Cap", col(t, rec, SRColProductName))
	assert.Equal(t, "65061090", col(t, rec, SRColHSN))
	assert.Equal(t, "1", col(t, rec, SRColQuantity))
	assert.Equal(t, "1", col(t, rec, SRColTax))
	assert.Equal(t, "06-03-2024", col(t, rec, SRColInvoiceDate))
	assert.Equal(t, "10", col(t, rec, SRColLength))
	assert.Equal(t, "8", col(t, rec, SRColBreadth))
	assert.Equal(t, "2", col(t, rec, SRColHeight))
	assert.Equal(t, "0.05", col(t, rec, SRColWeight))
}

func TestMapShipRocket_ContactsPassThrough(t *testing.T) {
	o := sampleOrder("A-1")
	o.Email = pgtype.Text{String: "jane@example.com", Valid: true}
	o.MobileNo = pgtype.Text{String: "5125550100", Valid: true}

	rec := mappedRecords(t, MapShipRocket([]Order{o}, 1, exportDay))[0]
	assert.Equal(t, "jane@example.com", col(t, rec, SRColEmail))
	assert.Equal(t, "5125550100", col(t, rec, SRColMobile))
}

func TestShipRocketFormat_FileName(t *testing.T) {
	assert.Equal(t, "shipRocket_06-03-2024.csv", ShipRocketFormat().FileName(exportDay))
}

// ----------------------------------------------------------------------------
// ShipGlobal
// ----------------------------------------------------------------------------

func TestMapShipGlobal_ColumnsInOrder(t *testing.T) {
	out := MapShipGlobal([]Order{sampleOrder("A-1")}, 1000, exportDay)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Record)

	names := make([]string, 0, len(out[0].Record.Fields))
	for _, f := range out[0].Record.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, ShipGlobalColumns, names)
}

func TestMapShipGlobal_UnitPrice(t *testing.T) {
	tests := []struct {
		quantity string
		want     string
	}{
		{"1", "11"},
		{"2", "5.5"},
		{"3", "3.6666666666666665"},
		{"4", "11"},
		{"5", "11"},
		{"0", "11"},
		{"2.5", "5.5"},
		{"many", "11"},
	}

	for _, tt := range tests {
		o := sampleOrder("A-1")
		o.NoOfItems = tt.quantity

		recs := mappedRecords(t, MapShipGlobal([]Order{o}, 1, exportDay))
		require.Len(t, recs, 1, "quantity %q", tt.quantity)
		assert.Equal(t, tt.want, col(t, recs[0], SGColItemUnitPrice), "quantity %q", tt.quantity)
	}
}

func TestMapShipGlobal_Service(t *testing.T) {
	us := sampleOrder("A-1")
	ca := sampleOrder("A-2")
	ca.Country = "Canada"
	unknown := sampleOrder("A-3")
	unknown.Country = "Atlantis"

	recs := mappedRecords(t, MapShipGlobal([]Order{us, ca, unknown}, 1, exportDay))
	require.Len(t, recs, 3)

	assert.Equal(t, "ShipGlobal First Class", col(t, recs[0], SGColService))
	assert.Equal(t, "US", col(t, recs[0], SGColCountryCode))
	assert.Equal(t, "ShipGlobal Direct", col(t, recs[1], SGColService))
	assert.Equal(t, "CA", col(t, recs[1], SGColCountryCode))
	assert.Equal(t, "ShipGlobal Direct", col(t, recs[2], SGColService))
	assert.Equal(t, "Atlantis", col(t, recs[2], SGColCountryCode))
}

func TestMapShipGlobal_DropKeepsInvoiceGap(t *testing.T) {
	missingCity := sampleOrder("A-2")
	missingCity.City = ""
	orders := []Order{sampleOrder("A-1"), missingCity, sampleOrder("A-3")}

	out := MapShipGlobal(orders, 1000, exportDay)
	require.Len(t, out, 3)

	require.True(t, out[1].Skipped())
	assert.Equal(t, "A-2", out[1].OrderID)
	assert.Equal(t, 1, out[1].Index)
	assert.Equal(t, []string{SGColCity}, out[1].Skip.Missing)

	recs := mappedRecords(t, out)
	require.Len(t, recs, 2)
	assert.Equal(t, "1000", col(t, recs[0], SGColInvoiceNo))
	assert.Equal(t, "1002", col(t, recs[1], SGColInvoiceNo))
}

func TestMapShipGlobal_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Order)
		missing []string
	}{
		{"no name at all", func(o *Order) { o.FullName = "" }, []string{SGColFirstName, SGColLastName}},
		{"no street", func(o *Order) { o.AddressLine1 = "" }, []string{SGColAddress}},
		{"no postcode", func(o *Order) { o.ZipCode = "" }, []string{SGColPostcode}},
		{"no country", func(o *Order) { o.Country = "" }, []string{SGColCountryCode}},
		{"no quantity", func(o *Order) { o.NoOfItems = "" }, []string{SGColItemQuantity}},
		{"several", func(o *Order) { o.City = ""; o.NoOfItems = "" }, []string{SGColCity, SGColItemQuantity}},
		{"zero quantity is present", func(o *Order) { o.NoOfItems = "0" }, nil},
		{"first name alone fills both", func(o *Order) { o.FullName = ""; o.FirstName = "Cher" }, nil},
		{"whitespace full name", func(o *Order) { o.FullName = "   "; o.FirstName = "Cher" }, []string{SGColFirstName, SGColLastName}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := sampleOrder("A-1")
			tt.mutate(&o)

			out := MapShipGlobal([]Order{o}, 1, exportDay)
			require.Len(t, out, 1)

			if tt.missing == nil {
				assert.False(t, out[0].Skipped())
				return
			}
			require.True(t, out[0].Skipped())
			assert.Equal(t, tt.missing, out[0].Skip.Missing)
		})
	}
}

func TestMapShipGlobal_DerivedFields(t *testing.T) {
	o := sampleOrder("A-1")
	o.AddressLine1 = "221B Baker Street"
	o.Country = "United Kingdom"
	o.ZipCode = "0NW16XE"
	o.State = ""

	recs := mappedRecords(t, MapShipGlobal([]Order{o}, 77, exportDay))
	require.Len(t, recs, 1)
	rec := recs[0]

	assert.Equal(t, "77", col(t, rec, SGColInvoiceNo))
	assert.Equal(t, "2024-03-06", col(t, rec, SGColInvoiceDate))
	assert.Equal(t, "221B", col(t, rec, SGColAddress))
	assert.Equal(t, "Baker Street", col(t, rec, SGColAddress2))
	assert.Equal(t, "GB", col(t, rec, SGColCountryCode))
	assert.Equal(t, "0NW16XE", col(t, rec, SGColPostcode))
	assert.Equal(t, "NA", col(t, rec, SGColState))
	assert.Equal(t, "Jane", col(t, rec, SGColFirstName))
	assert.Equal(t, "Doe", col(t, rec, SGColLastName))
	assert.Equal(t, "919537177677", col(t, rec, SGColMobile))
	assert.Equal(t, "babubhaimotisariya@gmail.com", col(t, rec, SGColEmail))
	assert.Equal(t, "USD", col(t, rec, SGColCurrencyCode))
	assert.Equal(t, "0", col(t, rec, SGColCSB5Status))
	assert.Equal(t, "0.05", col(t, rec, SGColPackageWeight))
	assert.Equal(t, "0", col(t, rec, SGColItemTaxRate))
	assert.Equal(t, "65061090", col(t, rec, SGColItemHSN))
	assert.Equal(t, "Fabric Cotton Cap", col(t, rec, SGColItemName))
}

func TestMapShipGlobal_AddressWithoutNumberDuplicates(t *testing.T) {
	o := sampleOrder("A-1")
	o.AddressLine1 = "Downtown Plaza"

	rec := mappedRecords(t, MapShipGlobal([]Order{o}, 1, exportDay))[0]
	assert.Equal(t, "Downtown Plaza", col(t, rec, SGColAddress))
	assert.Equal(t, "Downtown Plaza", col(t, rec, SGColAddress2))
}

func TestShipGlobalFormat_FileName(t *testing.T) {
	assert.Equal(t, "shipGlobal_2024-03-06.csv", ShipGlobalFormat().FileName(exportDay))
}

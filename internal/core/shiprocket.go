package core

import (
	"strconv"
	"time"
)

// ShipRocket output columns, in file order.
const (
	SRColOrderID      = "Order ID"
	SRColChannel      = "Channel"
	SRColOrderDate    = "Order Date"
	SRColPurpose      = "Purpose of Shipment(Gift/Sample)"
	SRColCurrency     = "Currency"
	SRColFirstName    = "Customer First Name"
	SRColLastName     = "Customer Last Name"
	SRColEmail        = "Email"
	SRColMobile       = "Customer Mobile"
	SRColAddress1     = "Shipping Address Line 1"
	SRColAddress2     = "Shipping Address Line 2"
	SRColCountry      = "Shipping Address Country"
	SRColPostcode     = "Shipping Address Postcode"
	SRColCity         = "Shipping Address City"
	SRColState        = "Shipping Address State"
	SRColMasterSKU    = "Master SKU"
	SRColProductName  = "Product Name"
	SRColHSN          = "HSN code"
	SRColQuantity     = "Product Quantity"
	SRColTax          = "Tax"
	SRColVATNumber    = "VAT Number"
	SRColSellingPrice = "Selling Price(Per Unit Item Inclusive of Tax)"
	SRColInvoiceDate  = "Invoice Date"
	SRColLength       = "Length (cm)"
	SRColBreadth      = "Breadth (cm)"
	SRColHeight       = "Height (cm)"
	SRColWeight       = "Weight Of Shipment(kg)"
	SRColIoss         = "Ioss"
	SRColEori         = "Eori"
	SRColTerms        = "Terms of Invoice"
	SRColFranchiseID  = "Franchise Seller ID"
	SRColCourierID    = "Courier ID"
)

// ShipRocketColumns is the fixed ShipRocket header.
var ShipRocketColumns = []string{
	SRColOrderID, SRColChannel, SRColOrderDate, SRColPurpose, SRColCurrency,
	SRColFirstName, SRColLastName, SRColEmail, SRColMobile,
	SRColAddress1, SRColAddress2, SRColCountry, SRColPostcode, SRColCity, SRColState,
	SRColMasterSKU, SRColProductName, SRColHSN, SRColQuantity, SRColTax, SRColVATNumber,
	SRColSellingPrice, SRColInvoiceDate, SRColLength, SRColBreadth, SRColHeight, SRColWeight,
	SRColIoss, SRColEori, SRColTerms, SRColFranchiseID, SRColCourierID,
}

// ShipRocket product and package defaults.
const (
	shipRocketDateLayout     = "02-01-2006"
	shipRocketChannel        = "Custom"
	shipRocketPurpose        = "Gift"
	shipRocketCurrency       = "USD"
	shipRocketSKU            = "CAP"
	shipRocketProductName    = "Fabric Cotton Cap"
	shipRocketHSN            = "65061090"
	shipRocketTax            = "1"
	shipRocketWeight         = "0.05"
	shipRocketMobileFallback = "7405392592"
	shipRocketStateFallback  = "NA"
	shipRocketPriceCanada    = "12"
	shipRocketPriceDefault   = "17"
)

// ShipRocketFormat describes the ShipRocket export.
func ShipRocketFormat() ExportFormat {
	return ExportFormat{
		Info:    FormatInfo{Key: "shipRocket", Label: "Ship Rocket"},
		Columns: ShipRocketColumns,
		FileName: func(now time.Time) string {
			return "shipRocket_" + now.Format(shipRocketDateLayout) + ".csv"
		},
		Map: MapShipRocket,
	}
}

// MapShipRocket maps every order to exactly one ShipRocket row.
// Invoice numbers run from startInvoice in input order.
func MapShipRocket(orders []Order, startInvoice int, now time.Time) []Outcome {
	invoiceDate := now.Format(shipRocketDateLayout)
	out := make([]Outcome, 0, len(orders))

	for i, o := range orders {
		first, last := SplitName(o.FirstName, o.LastName, o.FullName)

		rec := &ExportRecord{Fields: []Field{
			{SRColOrderID, strconv.Itoa(startInvoice + i)},
			{SRColChannel, shipRocketChannel},
			{SRColOrderDate, o.SaleDate},
			{SRColPurpose, shipRocketPurpose},
			{SRColCurrency, shipRocketCurrency},
			{SRColFirstName, first},
			{SRColLastName, last},
			{SRColEmail, textOr(o.Email.String, o.Email.Valid, "")},
			{SRColMobile, textOr(o.MobileNo.String, o.MobileNo.Valid, shipRocketMobileFallback)},
			{SRColAddress1, o.AddressLine1},
			{SRColAddress2, o.AddressLine2},
			{SRColCountry, o.Country},
			{SRColPostcode, shipRocketPostcode(o.Country, o.ZipCode)},
			{SRColCity, o.City},
			{SRColState, valueOr(o.State, shipRocketStateFallback)},
			{SRColMasterSKU, shipRocketSKU},
			{SRColProductName, shipRocketProductName},
			{SRColHSN, shipRocketHSN},
			{SRColQuantity, o.NoOfItems},
			{SRColTax, shipRocketTax},
			{SRColVATNumber, ""},
			{SRColSellingPrice, shipRocketPrice(o.Country)},
			{SRColInvoiceDate, invoiceDate},
			{SRColLength, packageLength},
			{SRColBreadth, packageBreadth},
			{SRColHeight, packageHeight},
			{SRColWeight, shipRocketWeight},
			{SRColIoss, ""},
			{SRColEori, ""},
			{SRColTerms, ""},
			{SRColFranchiseID, ""},
			{SRColCourierID, ""},
		}}

		out = append(out, Outcome{Index: i, OrderID: o.OrderID, Record: rec})
	}
	return out
}

// shipRocketPostcode trims US ZIP+4 codes down to the 5-digit ZIP.
func shipRocketPostcode(country, zip string) string {
	if country == "United States" && len(zip) > 5 {
		return zip[:5]
	}
	return zip
}

func shipRocketPrice(country string) string {
	if country == "Canada" {
		return shipRocketPriceCanada
	}
	return shipRocketPriceDefault
}

package core

import (
	"strconv"
	"time"
)

// ShipGlobal output columns, in file order.
const (
	SGColInvoiceNo         = "invoice_no"
	SGColInvoiceDate       = "invoice_date"
	SGColOrderReference    = "order_reference"
	SGColService           = "service"
	SGColPackageWeight     = "package_weight"
	SGColPackageLength     = "package_length"
	SGColPackageBreadth    = "package_breadth"
	SGColPackageHeight     = "package_height"
	SGColCurrencyCode      = "currency_code"
	SGColCSB5Status        = "csb5_status"
	SGColFirstName         = "customer_shipping_firstname"
	SGColLastName          = "customer_shipping_lastname"
	SGColMobile            = "customer_shipping_mobile"
	SGColEmail             = "customer_shipping_email"
	SGColCompany           = "customer_shipping_company"
	SGColAddress           = "customer_shipping_address"
	SGColAddress2          = "customer_shipping_address_2"
	SGColAddress3          = "customer_shipping_address_3"
	SGColCity              = "customer_shipping_city"
	SGColPostcode          = "customer_shipping_postcode"
	SGColCountryCode       = "customer_shipping_country_code"
	SGColState             = "customer_shipping_state"
	SGColItemName          = "vendor_order_item_name"
	SGColItemSKU           = "vendor_order_item_sku"
	SGColItemQuantity      = "vendor_order_item_quantity"
	SGColItemUnitPrice     = "vendor_order_item_unit_price"
	SGColItemHSN           = "vendor_order_item_hsn"
	SGColItemTaxRate       = "vendor_order_item_tax_rate"
	SGColIossNumber        = "ioss_number"
	SGColCSBv5LimitConfirm = "csbv5_limit_comfirmation"
)

// ShipGlobalColumns is the fixed ShipGlobal header.
var ShipGlobalColumns = []string{
	SGColInvoiceNo, SGColInvoiceDate, SGColOrderReference, SGColService,
	SGColPackageWeight, SGColPackageLength, SGColPackageBreadth, SGColPackageHeight,
	SGColCurrencyCode, SGColCSB5Status,
	SGColFirstName, SGColLastName, SGColMobile, SGColEmail, SGColCompany,
	SGColAddress, SGColAddress2, SGColAddress3,
	SGColCity, SGColPostcode, SGColCountryCode, SGColState,
	SGColItemName, SGColItemSKU, SGColItemQuantity, SGColItemUnitPrice,
	SGColItemHSN, SGColItemTaxRate, SGColIossNumber, SGColCSBv5LimitConfirm,
}

// ShipGlobal product and package defaults.
const (
	shipGlobalDateLayout     = "2006-01-02"
	shipGlobalCurrency       = "USD"
	shipGlobalWeight         = "0.05"
	shipGlobalCSB5Status     = "0"
	shipGlobalItemName       = "Fabric Cotton Cap"
	shipGlobalHSN            = "65061090"
	shipGlobalTaxRate        = "0"
	shipGlobalStateFallback  = "NA"
	shipGlobalMobileFallback = "919537177677"
	shipGlobalEmailFallback  = "babubhaimotisariya@gmail.com"
	shipGlobalServiceUS      = "ShipGlobal First Class"
	shipGlobalServiceDefault = "ShipGlobal Direct"
	shipGlobalBasePrice      = 11.0
)

// ShipGlobalFormat describes the ShipGlobal export.
func ShipGlobalFormat() ExportFormat {
	return ExportFormat{
		Info:    FormatInfo{Key: "shipGlobal", Label: "Ship Global"},
		Columns: ShipGlobalColumns,
		FileName: func(now time.Time) string {
			return "shipGlobal_" + now.Format(shipGlobalDateLayout) + ".csv"
		},
		Map: MapShipGlobal,
	}
}

// MapShipGlobal maps orders to ShipGlobal rows, skipping rows that lack a
// required field after derivation.
//
// Invoice numbers come from each order's position in orders, so a skipped
// row leaves a gap in the emitted sequence.
func MapShipGlobal(orders []Order, startInvoice int, now time.Time) []Outcome {
	invoiceDate := now.Format(shipGlobalDateLayout)
	out := make([]Outcome, 0, len(orders))

	for i, o := range orders {
		first, last := SplitName(o.FirstName, o.LastName, o.FullName)
		address1, address2 := SplitAddress(o.AddressLine1, o.AddressLine2)
		countryCode := ResolveCountryCode(o.Country)

		if skip := CheckRequired(
			RequiredField{SGColCurrencyCode, shipGlobalCurrency},
			RequiredField{SGColFirstName, first},
			RequiredField{SGColLastName, last},
			RequiredField{SGColAddress, o.AddressLine1},
			RequiredField{SGColCity, o.City},
			RequiredField{SGColPostcode, o.ZipCode},
			RequiredField{SGColCountryCode, countryCode},
			RequiredField{SGColItemQuantity, o.NoOfItems},
		); skip != nil {
			out = append(out, Outcome{Index: i, OrderID: o.OrderID, Skip: skip})
			continue
		}

		rec := &ExportRecord{Fields: []Field{
			{SGColInvoiceNo, strconv.Itoa(startInvoice + i)},
			{SGColInvoiceDate, invoiceDate},
			{SGColOrderReference, ""},
			{SGColService, shipGlobalService(countryCode)},
			{SGColPackageWeight, shipGlobalWeight},
			{SGColPackageLength, packageLength},
			{SGColPackageBreadth, packageBreadth},
			{SGColPackageHeight, packageHeight},
			{SGColCurrencyCode, shipGlobalCurrency},
			{SGColCSB5Status, shipGlobalCSB5Status},
			{SGColFirstName, first},
			{SGColLastName, last},
			{SGColMobile, textOr(o.MobileNo.String, o.MobileNo.Valid, shipGlobalMobileFallback)},
			{SGColEmail, textOr(o.Email.String, o.Email.Valid, shipGlobalEmailFallback)},
			{SGColCompany, ""},
			{SGColAddress, address1},
			{SGColAddress2, address2},
			{SGColAddress3, ""},
			{SGColCity, o.City},
			{SGColPostcode, o.ZipCode},
			{SGColCountryCode, countryCode},
			{SGColState, valueOr(o.State, shipGlobalStateFallback)},
			{SGColItemName, shipGlobalItemName},
			{SGColItemSKU, ""},
			{SGColItemQuantity, o.NoOfItems},
			{SGColItemUnitPrice, shipGlobalUnitPrice(o.NoOfItems)},
			{SGColItemHSN, shipGlobalHSN},
			{SGColItemTaxRate, shipGlobalTaxRate},
			{SGColIossNumber, ""},
			{SGColCSBv5LimitConfirm, ""},
		}}

		out = append(out, Outcome{Index: i, OrderID: o.OrderID, Record: rec})
	}
	return out
}

func shipGlobalService(countryCode string) string {
	if countryCode == "US" {
		return shipGlobalServiceUS
	}
	return shipGlobalServiceDefault
}

// shipGlobalUnitPrice splits the base price across up to three items.
// Any other quantity, including unparseable ones, pays the base price.
func shipGlobalUnitPrice(quantity string) string {
	n, _ := LeadingInt(quantity)
	switch n {
	case 2, 3:
		return formatAmount(shipGlobalBasePrice / float64(n))
	default:
		return formatAmount(shipGlobalBasePrice)
	}
}

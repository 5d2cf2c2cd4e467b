// Package templates renders the dashboard and its fragments as templ
// components. The *.templ files are the source; run `templ generate` after
// editing them.
package templates

import (
	"net/url"
	"strconv"

	"github.com/JonMunkholm/orderflow/internal/core"
)

// DashboardData is everything the dashboard page shows.
type DashboardData struct {
	HasBatch    bool
	Snapshot    core.Snapshot
	Query       core.QueryParams
	Formats     []core.FormatInfo
	DefaultType string
}

// sortColumn is a sortable table header.
type sortColumn struct {
	Key   string
	Label string
}

var orderColumns = []sortColumn{
	{core.SortSaleDate, "Sale Date"},
	{core.SortOrderID, "Order ID"},
	{core.SortFullName, "Name"},
	{core.SortNoOfItems, "Items"},
	{core.SortCity, "City"},
	{core.SortState, "State"},
	{core.SortCountry, "Country"},
	{core.SortOrderValue, "Order Value"},
}

// QueryValues encodes p the way the dashboard and the API read it back.
// Zero fields are omitted.
func QueryValues(p core.QueryParams) url.Values {
	v := url.Values{}
	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	set("q", p.Search)
	set("country", p.Country)
	set("start", p.StartDate)
	set("end", p.EndDate)
	set("sort", p.Sort.Column)
	set("dir", p.Sort.Dir)
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("size", strconv.Itoa(p.PageSize))
	}
	return v
}

func pageURL(p core.QueryParams) string {
	q := QueryValues(p).Encode()
	if q == "" {
		return "/"
	}
	return "/?" + q
}

// pageLink is the current view moved to page n.
func pageLink(p core.QueryParams, n int) string {
	p.Page = n
	return pageURL(p)
}

// sortURL links a column header back to page one sorted by key. Clicking
// the column that is already sorted ascending flips it to descending.
func sortURL(p core.QueryParams, key string) string {
	dir := "asc"
	if p.Sort.Column == key && p.Sort.Dir != "desc" {
		dir = "desc"
	}
	p.Page = 1
	p.Sort = core.SortSpec{Column: key, Dir: dir}
	return pageURL(p)
}

func sortMarker(s core.SortSpec, key string) string {
	switch {
	case s.Column != key:
		return ""
	case s.Dir == "desc":
		return "▼"
	default:
		return "▲"
	}
}

func orderValue(o core.Order) string {
	if !o.OrderValue.Valid {
		return ""
	}
	return o.OrderValue.Decimal.StringFixed(2)
}

package templates

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/JonMunkholm/orderflow/internal/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, d DashboardData) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Dashboard(d).Render(context.Background(), &buf))
	return buf.String()
}

func TestErrorAlertEscapes(t *testing.T) {
	var buf bytes.Buffer
	err := ErrorAlert("<b>bad</b>", "Try again", "EXP005").Render(context.Background(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "&lt;b&gt;bad&lt;/b&gt;")
	assert.Contains(t, out, "Try again")
	assert.Contains(t, out, "Code: EXP005")
	assert.NotContains(t, out, "<b>bad</b>")
}

func TestErrorAlertOmitsEmptyParts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ErrorAlert("Oops", "", "").Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), "<p>")
	assert.NotContains(t, buf.String(), "Code:")
}

func TestDashboardWithoutBatch(t *testing.T) {
	out := render(t, DashboardData{})

	assert.Contains(t, out, `id="import-form"`)
	assert.Contains(t, out, "Import an order export CSV")
	assert.NotContains(t, out, `id="export-form"`)
	assert.NotContains(t, out, "<table>")
}

func TestDashboardWithBatch(t *testing.T) {
	orders := []core.Order{
		{OrderID: "A-1", FullName: "Ann <Lee>", SaleDate: "06/03/2024", NoOfItems: "2", Country: "India",
			OrderValue: decimal.NewNullDecimal(decimal.RequireFromString("12.5"))},
		{OrderID: "A-2", FullName: "Bo Chen", Country: "Canada"},
	}
	d := DashboardData{
		HasBatch: true,
		Snapshot: core.Snapshot{
			FileName:   "orders.csv",
			ImportedAt: time.Date(2024, 3, 6, 9, 30, 0, 0, time.UTC),
			Total:      2,
			Selected:   1,
			Mode:       core.SelectionManual,
			Result: core.QueryResult{
				Orders: orders, Filtered: orders,
				Page: 1, PageSize: 20, TotalRows: 2, TotalPages: 1,
			},
			PageSel: map[string]bool{"A-1": true, "A-2": false},
		},
		Query: core.QueryParams{Search: "a", Sort: core.SortSpec{Column: core.SortCity, Dir: "asc"}},
		Formats: []core.FormatInfo{
			{Key: "shipGlobal", Label: "Ship Global"},
			{Key: "shipRocket", Label: "Ship Rocket"},
		},
		DefaultType: "shipGlobal",
	}

	out := render(t, d)

	assert.Contains(t, out, "orders.csv")
	assert.Contains(t, out, "Ann &lt;Lee&gt;")
	assert.Contains(t, out, `data-order-id="A-1" checked`)
	assert.Contains(t, out, `data-order-id="A-2">`)
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, `<option value="shipGlobal" selected>Ship Global</option>`)
	assert.Contains(t, out, "1 selected")
	assert.Contains(t, out, `value="a"`)
	// Active ascending sort links to descending.
	assert.Contains(t, out, "sort=city")
	assert.Contains(t, out, "dir=desc")
	assert.NotContains(t, out, `class="pager"`)
}

func TestDashboardPager(t *testing.T) {
	d := DashboardData{
		HasBatch: true,
		Snapshot: core.Snapshot{
			Result: core.QueryResult{Page: 2, PageSize: 10, TotalRows: 35, TotalPages: 4},
		},
		Query: core.QueryParams{Page: 2, PageSize: 10},
	}

	out := render(t, d)
	assert.Contains(t, out, "Page 2 of 4")
	assert.Contains(t, out, "page=1")
	assert.Contains(t, out, "page=3")
	assert.Contains(t, out, "No orders match")
}

func TestQueryValues(t *testing.T) {
	v := QueryValues(core.QueryParams{
		Search:    "ann",
		StartDate: "2024-01-01",
		Sort:      core.SortSpec{Column: core.SortOrderValue, Dir: "desc"},
		PageSize:  50,
	})

	assert.Equal(t, "ann", v.Get("q"))
	assert.Equal(t, "2024-01-01", v.Get("start"))
	assert.Equal(t, "orderValue", v.Get("sort"))
	assert.Equal(t, "desc", v.Get("dir"))
	assert.Equal(t, "50", v.Get("size"))
	assert.False(t, v.Has("page"))
	assert.False(t, v.Has("country"))

	assert.Equal(t, "/", pageURL(core.QueryParams{}))
}

func TestDashboardEscapesAttributes(t *testing.T) {
	orders := []core.Order{{OrderID: `A"1`, FullName: "Ann"}}
	d := DashboardData{
		HasBatch: true,
		Snapshot: core.Snapshot{
			Result: core.QueryResult{Orders: orders, Filtered: orders, Page: 1, PageSize: 20, TotalRows: 1, TotalPages: 1},
		},
		Query: core.QueryParams{Search: `"><script>x</script>`},
	}

	out := render(t, d)
	assert.NotContains(t, out, `"><script>x`)
	assert.Contains(t, out, `value="&#34;&gt;&lt;script&gt;x&lt;/script&gt;"`)
	assert.Contains(t, out, `data-order-id="A&#34;1"`)
}

func TestSortURL(t *testing.T) {
	q := core.QueryParams{Page: 3, Sort: core.SortSpec{Column: core.SortCity, Dir: "asc"}}

	assert.Equal(t, "/?dir=desc&page=1&sort=city", sortURL(q, core.SortCity))
	assert.Equal(t, "/?dir=asc&page=1&sort=country", sortURL(q, core.SortCountry))

	q.Sort.Dir = "desc"
	assert.Equal(t, "/?dir=asc&page=1&sort=city", sortURL(q, core.SortCity))

	assert.Equal(t, "▼", sortMarker(q.Sort, core.SortCity))
	assert.Equal(t, "", sortMarker(q.Sort, core.SortCountry))
}

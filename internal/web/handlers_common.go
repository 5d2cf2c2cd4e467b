package web

// handlers_common.go holds request parsing and response shapes shared by
// the handlers.

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/JonMunkholm/orderflow/internal/core"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// queryRequest carries the view a client is looking at. It is read from URL
// query parameters or embedded in JSON bodies under the same names.
type queryRequest struct {
	Search  string `json:"q"`
	Country string `json:"country"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Sort    string `json:"sort"`
	Dir     string `json:"dir"`
	Page    int    `json:"page"`
	Size    int    `json:"size"`
}

// params converts the request to core query parameters. A missing page
// size falls back to defaultSize.
func (q queryRequest) params(defaultSize int) core.QueryParams {
	size := q.Size
	if size <= 0 {
		size = defaultSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	return core.QueryParams{
		Search:    strings.TrimSpace(q.Search),
		Country:   strings.TrimSpace(q.Country),
		StartDate: strings.TrimSpace(q.Start),
		EndDate:   strings.TrimSpace(q.End),
		Sort:      parseSort(q.Sort, q.Dir),
		Page:      page,
		PageSize:  size,
	}
}

// parseQuery reads view parameters from URL values.
func parseQuery(v url.Values, defaultSize int) core.QueryParams {
	return queryFromValues(v, defaultSize).params(defaultSize)
}

func queryFromValues(v url.Values, defaultSize int) queryRequest {
	return queryRequest{
		Search:  v.Get("q"),
		Country: v.Get("country"),
		Start:   v.Get("start"),
		End:     v.Get("end"),
		Sort:    v.Get("sort"),
		Dir:     v.Get("dir"),
		Page:    parseIntParam(v, "page", 1),
		Size:    parseIntParam(v, "size", defaultSize),
	}
}

// parseIntParam parses a positive integer parameter with a default value.
func parseIntParam(v url.Values, name string, defaultVal int) int {
	val := v.Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// parseSort normalizes the direction; anything but "desc" sorts ascending.
func parseSort(column, dir string) core.SortSpec {
	column = strings.TrimSpace(column)
	if column == "" {
		return core.SortSpec{}
	}
	d := "asc"
	if strings.EqualFold(strings.TrimSpace(dir), "desc") {
		d = "desc"
	}
	return core.SortSpec{Column: column, Dir: d}
}

// OrderResponse is the JSON form of an order.
type OrderResponse struct {
	SaleDate     string              `json:"saleDate"`
	OrderID      string              `json:"orderId"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	FullName     string              `json:"fullName"`
	NoOfItems    string              `json:"noOfItems"`
	AddressLine1 string              `json:"addressLine1"`
	AddressLine2 string              `json:"addressLine2"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	ZipCode      string              `json:"zipCode"`
	Country      string              `json:"country"`
	OrderValue   decimal.NullDecimal `json:"orderValue"`
	Email        pgtype.Text         `json:"email"`
	MobileNo     pgtype.Text         `json:"mobileNo"`
	Selected     bool                `json:"selected"`
}

// OrdersResponse is one page of the current batch plus selection state.
type OrdersResponse struct {
	BatchID    string          `json:"batchId"`
	FileName   string          `json:"fileName"`
	ImportedAt time.Time       `json:"importedAt"`
	Total      int             `json:"total"`
	Selected   int             `json:"selected"`
	Mode       string          `json:"selectionMode"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalRows  int             `json:"totalRows"`
	TotalPages int             `json:"totalPages"`
	Orders     []OrderResponse `json:"orders"`
}

func toOrdersResponse(s core.Snapshot) OrdersResponse {
	orders := make([]OrderResponse, len(s.Result.Orders))
	for i, o := range s.Result.Orders {
		orders[i] = OrderResponse{
			SaleDate:     o.SaleDate,
			OrderID:      o.OrderID,
			FirstName:    o.FirstName,
			LastName:     o.LastName,
			FullName:     o.FullName,
			NoOfItems:    o.NoOfItems,
			AddressLine1: o.AddressLine1,
			AddressLine2: o.AddressLine2,
			City:         o.City,
			State:        o.State,
			ZipCode:      o.ZipCode,
			Country:      o.Country,
			OrderValue:   o.OrderValue,
			Email:        o.Email,
			MobileNo:     o.MobileNo,
			Selected:     s.PageSel[o.OrderID],
		}
	}
	return OrdersResponse{
		BatchID:    s.BatchID,
		FileName:   s.FileName,
		ImportedAt: s.ImportedAt,
		Total:      s.Total,
		Selected:   s.Selected,
		Mode:       string(s.Mode),
		Page:       s.Result.Page,
		PageSize:   s.Result.PageSize,
		TotalRows:  s.Result.TotalRows,
		TotalPages: s.Result.TotalPages,
		Orders:     orders,
	}
}

// ImportResultResponse wraps the import result for JSON encoding.
type ImportResultResponse struct {
	BatchID    string    `json:"batchId"`
	FileName   string    `json:"fileName"`
	TotalRows  int       `json:"totalRows"`
	Imported   int       `json:"imported"`
	Discarded  int       `json:"discarded"`
	ImportedAt time.Time `json:"importedAt"`
	Duration   string    `json:"duration"`
}

// toImportResponse converts an ImportResult to a JSON-friendly format.
func toImportResponse(result core.ImportResult, took time.Duration) ImportResultResponse {
	return ImportResultResponse{
		BatchID:    result.BatchID,
		FileName:   result.FileName,
		TotalRows:  result.TotalRows,
		Imported:   result.Imported,
		Discarded:  result.Discarded,
		ImportedAt: result.ImportedAt,
		Duration:   took.Round(time.Millisecond).String(),
	}
}

// handleImportStatus returns the current state of the import limiter.
// Used for monitoring and to check if the system can accept more imports.
func (s *Server) handleImportStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.limiter.Status())
}

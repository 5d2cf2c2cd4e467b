package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace() *Workspace {
	w := NewWorkspace()
	w.now = func() time.Time { return exportDay }
	return w
}

func workspaceRecords() []RawRecord {
	return []RawRecord{
		raw(ColOrderID, "A-1", ColFullName, "Jane Doe", ColStreet1, "1 Elm St", ColShipCity, "Austin", ColShipZipcode, "73301", ColShipCountry, "United States", ColNoOfItems, "1"),
		raw(ColOrderID, "A-2", ColFullName, "Ravi Kumar", ColStreet1, "2 Park Rd", ColShipCity, "", ColShipZipcode, "400001", ColShipCountry, "India", ColNoOfItems, "2"),
		raw(ColOrderID, "A-3", ColFullName, "Ann Lee", ColStreet1, "3 Bay St", ColShipCity, "Toronto", ColShipZipcode, "M5J", ColShipCountry, "Canada", ColNoOfItems, "3"),
	}
}

func TestWorkspace_NoBatch(t *testing.T) {
	w := newTestWorkspace()

	_, err := w.Query(QueryParams{})
	assert.ErrorIs(t, err, ErrNoBatch)

	_, err = w.Select(ActionAll, "", QueryParams{})
	assert.ErrorIs(t, err, ErrNoBatch)

	_, err = w.Export(context.Background(), "shipRocket", "1000", QueryParams{})
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestWorkspace_ImportReplaces(t *testing.T) {
	w := newTestWorkspace()

	first := w.Import("first.csv", workspaceRecords())
	_, err := w.Select(ActionAll, "", QueryParams{})
	require.NoError(t, err)

	second := w.Import("second.csv", workspaceRecords()[:1])
	assert.NotEqual(t, first.BatchID, second.BatchID)

	snap, err := w.Query(QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, "second.csv", snap.FileName)
	assert.Equal(t, 1, snap.Total)
	assert.Equal(t, 0, snap.Selected, "import clears the selection")
}

func TestWorkspace_ResetEmptiesBatch(t *testing.T) {
	w := newTestWorkspace()

	w.Import("orders.csv", workspaceRecords())
	_, err := w.Select(ActionAll, "", QueryParams{})
	require.NoError(t, err)

	w.Reset("broken.csv")

	snap, err := w.Query(QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, "broken.csv", snap.FileName)
	assert.Equal(t, 0, snap.Total)
	assert.Equal(t, 0, snap.Selected)
	assert.Empty(t, snap.Result.Orders)

	_, err = w.Export(context.Background(), "shipRocket", "1000", QueryParams{})
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestWorkspace_SelectActions(t *testing.T) {
	w := newTestWorkspace()
	w.Import("orders.csv", workspaceRecords())

	snap, err := w.Select(ActionToggle, "A-2", QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Selected)
	assert.True(t, snap.PageSel["A-2"])
	assert.False(t, snap.PageSel["A-1"])

	snap, err = w.Select(ActionPage, "", QueryParams{PageSize: 10, Country: "a"})
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Selected)
	assert.Equal(t, SelectionPage, snap.Mode)

	snap, err = w.Select(ActionClear, "", QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Selected)

	_, err = w.Select("invert", "", QueryParams{})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestWorkspace_ExportClearsSelectionOnSuccess(t *testing.T) {
	w := newTestWorkspace()
	w.Import("orders.csv", workspaceRecords())
	_, err := w.Select(ActionAll, "", QueryParams{})
	require.NoError(t, err)

	_, err = w.Export(context.Background(), "", "1000", QueryParams{})
	require.ErrorIs(t, err, ErrNoExportType)
	snap, _ := w.Query(QueryParams{})
	assert.Equal(t, 3, snap.Selected, "failed export keeps the selection")

	res, err := w.Export(context.Background(), "shipGlobal", "500", QueryParams{})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "A-2", res.Skipped[0].OrderID)
	assert.Equal(t, "shipGlobal_2024-03-06.csv", res.FileName)

	inv1, _ := res.Records[0].Get(SGColInvoiceNo)
	inv2, _ := res.Records[1].Get(SGColInvoiceNo)
	assert.Equal(t, []string{"500", "502"}, []string{inv1, inv2})

	snap, _ = w.Query(QueryParams{})
	assert.Equal(t, 0, snap.Selected)
}

func TestWorkspace_ExportUsesFilteredView(t *testing.T) {
	w := newTestWorkspace()
	w.Import("orders.csv", workspaceRecords())
	_, err := w.Select(ActionAll, "", QueryParams{})
	require.NoError(t, err)

	res, err := w.Export(context.Background(), "shipRocket", "1", QueryParams{
		Country: "canada",
	})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	first, _ := res.Records[0].Get(SRColFirstName)
	assert.Equal(t, "Ann", first)
}

func TestWorkspace_ConcurrentUse(t *testing.T) {
	w := newTestWorkspace()
	w.Import("orders.csv", workspaceRecords())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				w.Import("orders.csv", workspaceRecords())
			case 1:
				_, _ = w.Select(ActionToggle, "A-1", QueryParams{})
			default:
				_, _ = w.Query(QueryParams{Search: "a"})
			}
		}(i)
	}
	wg.Wait()

	snap, err := w.Query(QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Total)
}

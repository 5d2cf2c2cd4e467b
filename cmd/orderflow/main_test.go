package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/JonMunkholm/orderflow/internal/core"
	"github.com/JonMunkholm/orderflow/internal/csvio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersCSV = "Sale Date,Order ID,Full Name,Number of Items,Street 1,Ship City,Ship State,Ship Zipcode,Ship Country,Order Value\n" +
	"2024-03-06,A-1,Ann Lee,2,12 Main Street,Austin,TX,78701,United States,25.00\n" +
	"2024-03-07,A-2,Bo Chen,1,5 King St,Toronto,ON,M5V,Canada,10.00\n" +
	"2024-03-08,A-3,Cy Dee,3,MG Road,,MH,400001,India,8.50\n"

func writeOrders(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	require.NoError(t, os.WriteFile(path, []byte(ordersCSV), 0o644))
	return path
}

func TestRun_WritesFile(t *testing.T) {
	in := writeOrders(t)
	out := filepath.Join(t.TempDir(), "exports")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-in", in, "-type", "shipGlobal", "-invoice", "500", "-out", out}, &stdout, &stderr)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(out, "shipGlobal_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	f, err := os.Open(matches[0])
	require.NoError(t, err)
	defer f.Close()

	header, rows, err := csvio.DecodeRows(f)
	require.NoError(t, err)
	assert.Equal(t, core.ShipGlobalColumns, header)
	assert.Len(t, rows, 2)

	assert.Contains(t, stderr.String(), "wrote 2 rows to")
	assert.Contains(t, stderr.String(), "(1 skipped)")
	assert.Empty(t, stdout.String())
}

func TestRun_StdoutWithFilter(t *testing.T) {
	in := writeOrders(t)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-in", in, "-type", "shipRocket", "-invoice", "9", "-out", "-", "-country", "canada"}, &stdout, &stderr)
	require.NoError(t, err)

	header, rows, err := csvio.DecodeRows(&stdout)
	require.NoError(t, err)
	assert.Equal(t, core.ShipRocketColumns, header)
	require.Len(t, rows, 1)
	assert.Equal(t, "9", rows[0][0])
}

func TestRun_ListFormats(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-formats"}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "shipGlobal\tShip Global\n")
	assert.Contains(t, stdout.String(), "shipRocket\tShip Rocket\n")
}

func TestRun_Errors(t *testing.T) {
	in := writeOrders(t)
	dir := t.TempDir()
	headerOnly := filepath.Join(dir, "header.csv")
	require.NoError(t, os.WriteFile(headerOnly, []byte("Order ID,Full Name\n"), 0o644))
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no input", []string{"-type", "shipGlobal", "-invoice", "1"}, core.ErrNoFile},
		{"no type", []string{"-in", in, "-invoice", "1"}, core.ErrNoExportType},
		{"no invoice", []string{"-in", in, "-type", "shipGlobal"}, core.ErrNoStartInvoice},
		{"filter matches nothing", []string{"-in", in, "-type", "shipGlobal", "-invoice", "1", "-search", "zzz"}, core.ErrNoSelection},
		{"help", []string{"-h"}, flag.ErrHelp},
		{"header only", []string{"-in", headerOnly, "-type", "shipGlobal", "-invoice", "1"}, core.ErrNoSelection},
		{"empty file", []string{"-in", empty, "-type", "shipGlobal", "-invoice", "1"}, core.ErrEmptyFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, &stdout, &stderr)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-in", filepath.Join(t.TempDir(), "nope.csv"), "-type", "shipGlobal", "-invoice", "1"}, &stdout, &stderr)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t,
		"Please enter a Start Invoice number before exporting. (Code: EXP003). Enter the first invoice number to assign",
		describe(core.ErrNoStartInvoice))
	assert.Equal(t, "boom", describe(errors.New("boom")))
}

func TestRun_DotEnvOverridesEnvironment(t *testing.T) {
	in := writeOrders(t)

	// Setenv restores the previous values after the test, including keys
	// rewritten from the .env file.
	t.Setenv("EXPORT_DEFAULT_TYPE", "shipGlobal")
	t.Setenv("LOG_LEVEL", "info")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("EXPORT_DEFAULT_TYPE=shipRocket\nLOG_LEVEL=debug\n"), 0o644))
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-in", in, "-invoice", "1", "-out", "-"}, &stdout, &stderr))

	header, _, err := csvio.DecodeRows(&stdout)
	require.NoError(t, err)
	assert.Equal(t, core.ShipRocketColumns, header)
	assert.Contains(t, stderr.String(), "loaded .env file")
}

// Command orderflow converts an order export CSV into a courier upload file
// without starting the web server. Every order matching the filters is
// exported.
//
//	orderflow -in orders.csv -type shipGlobal -invoice 1000 [-out dir]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/JonMunkholm/orderflow/internal/config"
	"github.com/JonMunkholm/orderflow/internal/core"
	"github.com/JonMunkholm/orderflow/internal/csvio"
	"github.com/JonMunkholm/orderflow/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "orderflow:", describe(err))
		os.Exit(1)
	}
}

// describe prefers the user message for known errors.
func describe(err error) string {
	if core.IsUserFacing(err) {
		return core.FormatUserError(err)
	}
	return err.Error()
}

type options struct {
	in      string
	typ     string
	invoice string
	out     string
	search  string
	country string
	from    string
	to      string
	formats bool
}

func parseFlags(args []string, cfg *config.Config, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("orderflow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.in, "in", "", "order export CSV to read")
	fs.StringVar(&o.typ, "type", cfg.Export.DefaultType, "export type (see -formats)")
	fs.StringVar(&o.invoice, "invoice", "", "first invoice number")
	fs.StringVar(&o.out, "out", cfg.Export.OutputDir, `output directory, or "-" for stdout`)
	fs.StringVar(&o.search, "search", "", "only orders whose ID or name contains this")
	fs.StringVar(&o.country, "country", "", "only orders whose country contains this")
	fs.StringVar(&o.from, "from", "", "only orders sold on or after this date (yyyy-mm-dd)")
	fs.StringVar(&o.to, "to", "", "only orders sold on or before this date (yyyy-mm-dd)")
	fs.BoolVar(&o.formats, "formats", false, "list export types and exit")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Load .env file if it exists (Overload overwrites existing env vars)
	envErr := godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(logging.New(stderr, cfg.Logging.Level, cfg.Logging.Format))

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables", "error", envErr)
	} else {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}

	o, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return err
	}

	if o.formats {
		for _, f := range core.Formats() {
			fmt.Fprintf(stdout, "%s\t%s\n", f.Key, f.Label)
		}
		return nil
	}

	if o.in == "" {
		return core.ErrNoFile
	}

	batch, imported, err := importFile(o.in)
	if err != nil {
		return err
	}
	slog.Info("orders imported",
		"file", imported.FileName,
		"rows", imported.TotalRows,
		"imported", imported.Imported,
		"discarded", imported.Discarded,
	)

	view := batch.Query(core.QueryParams{
		Search:    o.search,
		Country:   o.country,
		StartDate: o.from,
		EndDate:   o.to,
	}).Filtered
	batch.SelectAll(view)

	result, err := core.Export(ctx, core.ExportRequest{
		Type:         o.typ,
		StartInvoice: o.invoice,
		Orders:       batch.Selected(view),
		Now:          time.Now(),
	})
	if err != nil {
		return err
	}

	if o.out == "-" {
		return csvio.WriteExport(stdout, result)
	}

	path := filepath.Join(o.out, result.FileName)
	if err := writeFile(path, result); err != nil {
		return err
	}

	fmt.Fprintf(stderr, "wrote %d rows to %s", len(result.Records), path)
	if n := len(result.Skipped); n > 0 {
		fmt.Fprintf(stderr, " (%d skipped)", n)
	}
	fmt.Fprintln(stderr)
	return nil
}

func importFile(path string) (*core.Batch, core.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.ImportResult{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csvio.Decode(f)
	if err != nil {
		return nil, core.ImportResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	batch, result := core.NewBatch(filepath.Base(path), records, time.Now())
	return batch, result, nil
}

func writeFile(path string, result *core.ExportResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := csvio.WriteExport(f, result); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Package csvio reads order export files into raw records and writes courier
// files from export records.
//
// Input is decoded as UTF-8 with any byte order mark removed; invalid byte
// sequences become U+FFFD instead of failing the import. Rows may be ragged:
// missing trailing cells decode as null, extra cells are ignored.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/orderflow/internal/core"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewReader wraps r so it yields UTF-8 text without a leading BOM.
// UTF-16 input marked with a BOM is transcoded.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// Decode reads a header row followed by data rows. Header labels are
// trimmed; a blank label is skipped. It fails with core.ErrEmptyFile when
// there is no header row and core.ErrInvalidCSV on malformed input.
func Decode(r io.Reader) ([]core.RawRecord, error) {
	cr := csv.NewReader(NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, core.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidCSV, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []core.RawRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrInvalidCSV, err)
		}

		rec := make(core.RawRecord, len(header))
		for i, label := range header {
			if label == "" {
				continue
			}
			if i < len(row) {
				rec[label] = core.TextCell(row[i])
			} else {
				rec[label] = core.Cell{Null: true}
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// Encode writes columns as the header row followed by one row per record.
// Record fields are written in record order; the caller keeps them aligned
// with columns.
func Encode(w io.Writer, columns []string, records []core.ExportRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range records {
		if len(rec.Fields) != len(columns) {
			return fmt.Errorf("record %d has %d fields, header has %d", i, len(rec.Fields), len(columns))
		}
		if err := cw.Write(rec.Values()); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteExport encodes a mapped export.
func WriteExport(w io.Writer, result *core.ExportResult) error {
	return Encode(w, result.Columns, result.Records)
}

// DecodeRows reads an encoded file back as header plus string rows.
// Used to inspect written exports.
func DecodeRows(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(NewReader(r))
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", core.ErrInvalidCSV, err)
	}
	if len(rows) == 0 {
		return nil, nil, core.ErrEmptyFile
	}
	return rows[0], rows[1:], nil
}

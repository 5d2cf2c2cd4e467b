// Package core provides the business logic for order import and courier export.
//
// This package contains all domain logic independent of any UI or transport
// layer. The web server, the command line tool and tests use it unchanged.
//
// # Pipeline
//
//  1. A decoder (see package csvio) yields one [RawRecord] per data row.
//  2. [Normalize] drops blank rows and turns the rest into [Order] values,
//     coercing each column by its [ColumnPolicy].
//  3. A [Batch] holds the orders of one import and lets callers filter,
//     sort, page and select them. [Workspace] wraps the current batch for
//     concurrent use.
//  4. [Export] checks the export preconditions, runs the selected format's
//     mapper and returns the rows to encode.
//
// # Export Formats
//
// Formats are registered at init time using [Register]. Each [ExportFormat]
// carries its fixed column order, its file name pattern and a [MapFunc]:
//
//	core.Register(core.ExportFormat{
//	    Info:     core.FormatInfo{Key: "shipRocket", Label: "Ship Rocket"},
//	    Columns:  core.ShipRocketColumns,
//	    FileName: func(now time.Time) string { ... },
//	    Map:      core.MapShipRocket,
//	})
//
// A mapper returns one [Outcome] per input order. ShipRocket never skips.
// ShipGlobal skips orders missing a required field and reports the missing
// field names in [SkipReason]; invoice numbers still follow input position,
// so skipped rows leave gaps.
//
// # Error Handling
//
// Precondition and file failures are sentinel errors such as
// [ErrNoSelection]. [MapError] turns them into user-facing messages with a
// support code:
//
//   - FILE001-FILE005: File errors (size, format, missing, empty)
//   - EXP001-EXP007: Export errors (type, invoice, selection, empty result)
//   - UPL002-UPL005: Import capacity, cancellation and timeouts
package core

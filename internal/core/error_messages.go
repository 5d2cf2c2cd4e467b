package core

// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. Users can quote the code shown next to a message so support
// staff can find the cause quickly.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: File exceeds maximum size limit
//	          Action: Split the file into smaller exports
//	FILE002 - Invalid CSV: File is not a valid CSV
//	          Action: Ensure file is comma-separated with a header row
//	FILE004 - No file: No file was selected
//	          Action: Please select an order export CSV
//	FILE005 - Empty file: The uploaded file has no orders
//	          Action: Please upload a CSV file with data rows
//
// # Export Errors (EXP001-EXP099)
//
//	EXP001 - No export type: Please select an export type.
//	EXP002 - Unknown export type: The export type is not supported
//	EXP003 - No invoice: Please enter a Start Invoice number before exporting.
//	EXP004 - Invalid invoice: The Start Invoice must begin with a number
//	EXP005 - No selection: Please select at least one order to export.
//	EXP006 - Nothing exported: No valid rows available for export!
//	EXP007 - No batch: No orders have been imported yet
//
// # Import Errors (UPL001-UPL099)
//
//	UPL002 - System busy: Too many imports in progress
//	UPL004 - Request cancelled
//	UPL005 - Request timeout
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//
// # Matching
//
// Known sentinel errors are matched with errors.Is first, so wrapped errors
// keep their code. Anything else falls back to case-insensitive substring
// patterns; the first matching pattern wins.

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Import errors.
var (
	ErrFileTooLarge = errors.New("file too large")
	ErrInvalidCSV   = errors.New("invalid csv")
	ErrNoFile       = errors.New("no file provided")
	ErrEmptyFile    = errors.New("empty file")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type sentinelMessage struct {
	err error
	msg UserMessage
}

// sentinelMessages maps the package's own errors to user messages.
var sentinelMessages = []sentinelMessage{
	{ErrFileTooLarge, UserMessage{"File exceeds maximum size limit", "Split the file into smaller exports", "FILE001"}},
	{ErrInvalidCSV, UserMessage{"File is not a valid CSV", "Ensure file is comma-separated with a header row", "FILE002"}},
	{ErrNoFile, UserMessage{"No file was selected", "Please select an order export CSV", "FILE004"}},
	{ErrEmptyFile, UserMessage{"The uploaded file has no orders", "Please upload a CSV file with data rows", "FILE005"}},

	{ErrNoExportType, UserMessage{"Please select an export type.", "Choose Ship Rocket or Ship Global", "EXP001"}},
	{ErrUnknownExportType, UserMessage{"The export type is not supported", "Choose one of the listed export types", "EXP002"}},
	{ErrNoStartInvoice, UserMessage{"Please enter a Start Invoice number before exporting.", "Enter the first invoice number to assign", "EXP003"}},
	{ErrInvalidStartInvoice, UserMessage{"The Start Invoice must begin with a number", "Enter a whole number such as 1000", "EXP004"}},
	{ErrNoSelection, UserMessage{"Please select at least one order to export.", "Tick the orders to include", "EXP005"}},
	{ErrNothingToExport, UserMessage{"No valid rows available for export!", "Check that selected orders have name, address, city, postcode, country and quantity", "EXP006"}},
	{ErrNoBatch, UserMessage{"No orders have been imported yet", "Import an order export CSV first", "EXP007"}},

	{ErrTooManyImports, UserMessage{"System is busy processing other imports", "Please wait a moment and try again", "UPL002"}},
	{context.Canceled, UserMessage{"Request was cancelled", "Please try again", "UPL004"}},
	{context.DeadlineExceeded, UserMessage{"Request timed out", "Try a smaller file or check your connection", "UPL005"}},
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns catches errors raised outside this package, such as
// multipart parsing failures. Matched with strings.Contains.
var errorPatterns = []errorPattern{
	{
		pattern: "request body too large",
		msg:     UserMessage{"File exceeds maximum size limit", "Split the file into smaller exports", "FILE001"},
	},
	{
		pattern: "parse error",
		msg:     UserMessage{"File is not a valid CSV", "Ensure file is comma-separated with a header row", "FILE002"},
	},
	{
		pattern: "no such file",
		msg:     UserMessage{"No file was selected", "Please select an order export CSV", "FILE004"},
	},
	{
		pattern: "rate limit",
		msg:     UserMessage{"Too many requests", "Please wait a moment before trying again", "RATE001"},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
// Support staff should check application logs for the original error.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
//
//	_, err := core.Export(ctx, req)
//	msg := core.MapError(err)
//	// msg.Code == "EXP005" when nothing was selected
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, sm := range sentinelMessages {
		if errors.Is(err, sm.err) {
			return sm.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError carries a technical error together with its user message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}

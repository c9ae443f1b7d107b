// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package cliio provides output helpers for CLI commands (table, CSV, JSON).
package cliio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// jsonIndent is the indentation used for JSON output.
const jsonIndent = "  "

// Format represents the output format for CLI commands.
type Format string

const (
	// FormatTable is the default table output format.
	FormatTable Format = "table"
	// FormatCSV is the CSV output format.
	FormatCSV Format = "csv"
	// FormatJSON is the JSON output format.
	FormatJSON Format = "json"
)

// ParseFormat parses a string into a Format, returning an error for unknown formats.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q, must be one of: table, csv, json", s)
	}
}

// WriteCSVRecords writes CSV records to the writer.
func WriteCSVRecords(writer io.Writer, records [][]string) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.WriteAll(records); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// MarshalIndentedJSON marshals the value as two-space indented JSON without a trailing newline.
func MarshalIndentedJSON(value any) (string, error) {
	data, err := json.MarshalIndent(value, "", jsonIndent)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText writes text followed by a newline.
func WriteText(writer io.Writer, text string) error {
	_, err := io.WriteString(writer, text+"\n")
	return err
}

// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wsctlformat renders account, activity, and position views as text.
//
// Three interchangeable formatters implement Formatter: aligned ASCII tables,
// two-space indented JSON, and CSV. Decimal values are rendered from their
// exact decimal representation, never through binary floating point.
package wsctlformat

import (
	"strings"

	"github.com/bufdev/wsctl/internal/pkg/cliio"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlview"
)

// Formatter renders views as text.
type Formatter interface {
	// FormatAccounts renders accounts.
	FormatAccounts(accountViews []wsctlview.AccountView) (string, error)
	// FormatActivities renders activities.
	FormatActivities(activityViews []wsctlview.ActivityView) (string, error)
	// FormatPositions renders positions.
	//
	// If showTotals is set, totals are appended. A non-empty groupLabel marks
	// the positions as a single account's group.
	FormatPositions(positionViews []wsctlview.PositionView, showTotals bool, groupLabel string) (string, error)
}

// NewFormatter returns the Formatter for the format name.
//
// Names are case-insensitive. Unknown names select the table formatter.
func NewFormatter(name string) Formatter {
	switch cliio.Format(strings.ToLower(name)) {
	case cliio.FormatJSON:
		return NewJSONFormatter()
	case cliio.FormatCSV:
		return NewCSVFormatter()
	default:
		return NewTableFormatter()
	}
}

// Copyright 2026 Peter Edge
//
// All rights reserved.

package wsctlformat

import (
	"strings"

	"github.com/bufdev/wsctl/internal/pkg/cliio"
	"github.com/bufdev/wsctl/internal/wsctl/wsctltotals"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlview"
)

// CSVFormatter renders views as CSV with a header row.
//
// Empty input renders as an empty string.
type CSVFormatter struct{}

// NewCSVFormatter returns a new CSVFormatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// FormatAccounts renders accounts as CSV.
func (*CSVFormatter) FormatAccounts(accountViews []wsctlview.AccountView) (string, error) {
	if len(accountViews) == 0 {
		return "", nil
	}
	records := [][]string{{"description", "number", "value", "currency"}}
	for _, accountView := range accountViews {
		records = append(records, []string{
			accountView.Description,
			accountView.Number,
			accountView.Value.String(),
			accountView.Currency,
		})
	}
	return csvString(records)
}

// FormatActivities renders activities as CSV.
func (*CSVFormatter) FormatActivities(activityViews []wsctlview.ActivityView) (string, error) {
	if len(activityViews) == 0 {
		return "", nil
	}
	records := [][]string{{"date", "activity_type", "description", "amount", "currency", "sign", "account_label"}}
	for _, activityView := range activityViews {
		records = append(records, []string{
			activityView.Date,
			activityView.ActivityType,
			activityView.Description,
			activityView.Amount.String(),
			activityView.Currency,
			activityView.Sign,
			activityView.AccountLabel,
		})
	}
	return csvString(records)
}

// FormatPositions renders positions as CSV.
//
// If showTotals is set, a TOTAL row is appended with the summed quantity, the
// totals, and groupLabel.
func (*CSVFormatter) FormatPositions(
	positionViews []wsctlview.PositionView,
	showTotals bool,
	groupLabel string,
) (string, error) {
	if len(positionViews) == 0 {
		return "", nil
	}
	records := [][]string{{"symbol", "name", "quantity", "market_value", "book_value", "currency", "pnl", "pnl_pct", "account_label"}}
	for _, positionView := range positionViews {
		records = append(records, []string{
			positionView.Symbol,
			positionView.Name,
			positionView.Quantity.String(),
			positionView.MarketValue.String(),
			positionView.BookValue.String(),
			positionView.Currency,
			positionView.PnL.String(),
			positionView.PnLPct.String(),
			positionView.AccountLabel,
		})
	}
	if showTotals {
		positionTotals := wsctltotals.ComputePositionTotals(positionViews)
		records = append(records, []string{
			"TOTAL",
			"",
			positionTotals.Quantity.String(),
			positionTotals.MarketValue.String(),
			positionTotals.BookValue.String(),
			positionTotals.Currency,
			positionTotals.PnL.String(),
			positionTotals.PnLPct.String(),
			groupLabel,
		})
	}
	return csvString(records)
}

// *** PRIVATE ***

func csvString(records [][]string) (string, error) {
	var builder strings.Builder
	if err := cliio.WriteCSVRecords(&builder, records); err != nil {
		return "", err
	}
	return builder.String(), nil
}

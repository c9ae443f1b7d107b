// Copyright 2026 Peter Edge
//
// All rights reserved.

package wsctlformat

import (
	"fmt"
	"strings"

	"github.com/bufdev/wsctl/internal/pkg/moneyfmt"
	"github.com/bufdev/wsctl/internal/wsctl/wsctltotals"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlview"
)

const (
	noAccountsMessage   = "No accounts found."
	noActivitiesMessage = "No activities found."
	noPositionsMessage  = "No positions found."
)

var (
	narrowRule     = strings.Repeat("=", 80)
	narrowDivider  = strings.Repeat("-", 80)
	wideRule       = strings.Repeat("=", 94)
	wideDivider    = strings.Repeat("-", 94)
	activityHeader = fmt.Sprintf("%-12s %-14s %-34s %18s", "Date", "Type", "Description", "Amount")
	positionHeader = fmt.Sprintf("%-10s %-30s %10s %16s %14s %8s", "Symbol", "Name", "Qty", "Market Value", "P&L", "P&L %")
)

// TableFormatter renders views as aligned ASCII tables.
type TableFormatter struct{}

// NewTableFormatter returns a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// FormatAccounts renders accounts with a total row.
//
// The total is in the currency of the first account.
func (*TableFormatter) FormatAccounts(accountViews []wsctlview.AccountView) (string, error) {
	if len(accountViews) == 0 {
		return noAccountsMessage, nil
	}
	lines := []string{
		"\n" + narrowRule,
		fmt.Sprintf("%-40s %-20s %18s", "Account", "Number", "Value"),
		narrowDivider,
	}
	for _, accountView := range accountViews {
		lines = append(lines, fmt.Sprintf(
			"%-40s %-20s %15s %s",
			accountView.Description,
			accountView.Number,
			moneyfmt.FormatAmount(accountView.Value),
			accountView.Currency,
		))
	}
	accountTotals := wsctltotals.ComputeAccountTotals(accountViews)
	lines = append(
		lines,
		narrowRule,
		fmt.Sprintf("%-61s %15s %s", "Total", moneyfmt.FormatAmount(accountTotals.Value), accountTotals.Currency),
		narrowRule,
	)
	return strings.Join(lines, "\n"), nil
}

// FormatActivities renders activities, with a banner each time the account label changes.
func (*TableFormatter) FormatActivities(activityViews []wsctlview.ActivityView) (string, error) {
	if len(activityViews) == 0 {
		return noActivitiesMessage, nil
	}
	var lines []string
	started := false
	currentLabel := ""
	for _, activityView := range activityViews {
		switch {
		case activityView.AccountLabel != "" && activityView.AccountLabel != currentLabel:
			if started {
				lines = append(lines, narrowRule)
			}
			lines = append(
				lines,
				"\n"+narrowRule,
				"Account: "+activityView.AccountLabel,
				narrowRule,
				activityHeader,
				narrowDivider,
			)
			currentLabel = activityView.AccountLabel
			started = true
		case !started:
			lines = append(
				lines,
				"\n"+narrowRule,
				activityHeader,
				narrowDivider,
			)
			started = true
		}
		lines = append(lines, fmt.Sprintf(
			"%-12s %-14s %-34s %s%14s %s",
			activityView.Date,
			activityView.ActivityType,
			activityView.Description,
			activityView.Sign,
			moneyfmt.FormatAmount(activityView.Amount),
			activityView.Currency,
		))
	}
	lines = append(lines, narrowRule)
	return strings.Join(lines, "\n"), nil
}

// FormatPositions renders positions with profit and loss.
//
// With a group label, the table opens with an account banner and the totals
// row is labelled "Account Total".
func (*TableFormatter) FormatPositions(
	positionViews []wsctlview.PositionView,
	showTotals bool,
	groupLabel string,
) (string, error) {
	if len(positionViews) == 0 {
		return noPositionsMessage, nil
	}
	lines := []string{"\n" + wideRule}
	if groupLabel != "" {
		lines = append(lines, "Account: "+groupLabel, wideRule)
	}
	lines = append(lines, positionHeader, wideDivider)
	for _, positionView := range positionViews {
		lines = append(lines, fmt.Sprintf(
			"%-10s %-30s %10s %12s %s %13s %8s",
			positionView.Symbol,
			positionView.Name,
			moneyfmt.FormatFixed(positionView.Quantity, 2),
			moneyfmt.FormatAmount(positionView.MarketValue),
			positionView.Currency,
			moneyfmt.FormatSignedAmount(positionView.PnL),
			moneyfmt.FormatSignedPercent(positionView.PnLPct),
		))
	}
	if showTotals {
		label := "Total"
		if groupLabel != "" {
			label = "Account Total"
		}
		lines = append(
			lines,
			wideRule,
			formatPositionTotalsRow(label, wsctltotals.ComputePositionTotals(positionViews)),
			wideRule,
		)
	}
	return strings.Join(lines, "\n"), nil
}

// FormatGrandTotal renders the grand total block printed after per-account position tables.
func (*TableFormatter) FormatGrandTotal(positionViews []wsctlview.PositionView) string {
	return strings.Join(
		[]string{
			"\n" + wideRule,
			formatPositionTotalsRow("Grand Total", wsctltotals.ComputePositionTotals(positionViews)),
			wideRule,
		},
		"\n",
	)
}

// *** PRIVATE ***

func formatPositionTotalsRow(label string, positionTotals wsctltotals.PositionTotals) string {
	return fmt.Sprintf(
		"%-51s %13s %s %13s %8s",
		label,
		moneyfmt.FormatAmount(positionTotals.MarketValue),
		positionTotals.Currency,
		moneyfmt.FormatSignedAmount(positionTotals.PnL),
		moneyfmt.FormatSignedPercent(positionTotals.PnLPct),
	)
}

// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wsctlreport runs reports end to end: fetch, transform, group, format, and print.
package wsctlreport

import (
	"context"
	"io"
	"log/slog"

	"github.com/bufdev/wsctl/internal/pkg/cliio"
	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlaccounts"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlactivities"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlassets"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlformat"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlsecurity"
	"github.com/bufdev/wsctl/internal/wsctl/wsctltotals"
)

const (
	noAccountsMessage   = "No accounts found."
	noActivitiesMessage = "No activities found."
	noPositionsMessage  = "No positions found."
)

// Reporter prints reports to a writer.
type Reporter struct {
	logger *slog.Logger
	client wealthsimple.Client
	writer io.Writer
}

// NewReporter returns a new Reporter.
func NewReporter(logger *slog.Logger, client wealthsimple.Client, writer io.Writer) *Reporter {
	return &Reporter{
		logger: logger,
		client: client,
		writer: writer,
	}
}

// PrintAccounts prints the accounts report in the named format.
func (r *Reporter) PrintAccounts(ctx context.Context, options wsctlaccounts.Options, format string) error {
	r.logger.Debug("fetching accounts")
	accountViews, err := wsctlaccounts.GetAccountsData(ctx, r.client, options)
	if err != nil {
		return err
	}
	if len(accountViews) == 0 {
		return cliio.WriteText(r.writer, noAccountsMessage)
	}
	if accountTotals := wsctltotals.ComputeAccountTotals(accountViews); accountTotals.MixedCurrency {
		r.logger.Warn("account total sums values in different currencies without conversion", "currency", accountTotals.Currency)
	}
	output, err := wsctlformat.NewFormatter(format).FormatAccounts(accountViews)
	if err != nil {
		return err
	}
	return cliio.WriteText(r.writer, output)
}

// PrintActivities prints the activities report in the named format.
//
// In table format, activities of all accounts are grouped by account.
func (r *Reporter) PrintActivities(ctx context.Context, options wsctlactivities.Options, format string) error {
	r.logger.Debug("fetching activities", "account_id", options.AccountID, "dividends_only", options.DividendsOnly, "limit", options.Limit)
	resolver := wsctlsecurity.NewResolver(r.logger, r.client)
	activityViews, err := wsctlactivities.GetActivitiesData(ctx, r.client, resolver, options)
	if err != nil {
		return err
	}
	if len(activityViews) == 0 {
		return cliio.WriteText(r.writer, noActivitiesMessage)
	}
	formatter := wsctlformat.NewFormatter(format)
	if _, ok := formatter.(*wsctlformat.TableFormatter); ok && options.AccountID == "" {
		activityViews = flattenGroups(wsctltotals.GroupByLabel(activityViews))
	}
	output, err := formatter.FormatActivities(activityViews)
	if err != nil {
		return err
	}
	return cliio.WriteText(r.writer, output)
}

// PrintAssets prints the assets report in the named format.
//
// In table format with ByAccount set, one table with account totals is
// printed per account, followed by the grand total over all positions.
func (r *Reporter) PrintAssets(ctx context.Context, options wsctlassets.Options, format string) error {
	r.logger.Debug("fetching positions", "account_id", options.AccountID, "by_account", options.ByAccount, "currency", options.Currency)
	resolver := wsctlsecurity.NewResolver(r.logger, r.client)
	positionViews, err := wsctlassets.GetAssetsData(ctx, r.client, resolver, options)
	if err != nil {
		return err
	}
	if len(positionViews) == 0 {
		return cliio.WriteText(r.writer, noPositionsMessage)
	}
	if positionTotals := wsctltotals.ComputePositionTotals(positionViews); positionTotals.MixedCurrency {
		r.logger.Warn("position totals sum values in different currencies without conversion", "currency", positionTotals.Currency)
	}
	formatter := wsctlformat.NewFormatter(format)
	if tableFormatter, ok := formatter.(*wsctlformat.TableFormatter); ok && options.ByAccount {
		for _, group := range wsctltotals.GroupByLabel(positionViews) {
			output, err := tableFormatter.FormatPositions(group.Items, true, group.Label)
			if err != nil {
				return err
			}
			if err := cliio.WriteText(r.writer, output); err != nil {
				return err
			}
		}
		return cliio.WriteText(r.writer, tableFormatter.FormatGrandTotal(positionViews))
	}
	output, err := formatter.FormatPositions(positionViews, true, "")
	if err != nil {
		return err
	}
	return cliio.WriteText(r.writer, output)
}

// *** PRIVATE ***

func flattenGroups[T wsctltotals.Labeled](groups []wsctltotals.Group[T]) []T {
	var items []T
	for _, group := range groups {
		items = append(items, group.Items...)
	}
	return items
}

// Copyright 2026 Peter Edge
//
// All rights reserved.

package wsctlreport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
	"github.com/bufdev/wsctl/internal/pkg/wealthsimple/wealthsimpletesting"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlaccounts"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlactivities"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlassets"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPrintNoData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for _, format := range []string{"table", "json", "csv"} {
		buffer := &bytes.Buffer{}
		reporter := NewReporter(slog.New(slog.DiscardHandler), &wealthsimpletesting.FakeClient{}, buffer)
		require.NoError(t, reporter.PrintAccounts(ctx, wsctlaccounts.Options{}, format))
		require.NoError(t, reporter.PrintActivities(ctx, wsctlactivities.Options{}, format))
		require.NoError(t, reporter.PrintAssets(ctx, wsctlassets.Options{}, format))
		require.Equal(t, "No accounts found.\nNo activities found.\nNo positions found.\n", buffer.String(), format)
	}
}

func TestPrintAccounts(t *testing.T) {
	t.Parallel()
	buffer := &bytes.Buffer{}
	reporter := NewReporter(slog.New(slog.DiscardHandler), newTestClient(), buffer)
	require.NoError(t, reporter.PrintAccounts(context.Background(), wsctlaccounts.Options{}, "table"))
	output := buffer.String()
	require.Contains(t, output, "TFSA                                     TFSA-001                    2,000.00 CAD")
	require.Contains(t, output, "Total                                                               43,000.00 CAD")
	require.True(t, strings.HasSuffix(output, "=\n"))

	buffer.Reset()
	require.NoError(t, reporter.PrintAccounts(context.Background(), wsctlaccounts.Options{NotLiquid: true}, "csv"))
	require.Equal(t, "description,number,value,currency\nRRSP,RRSP-001,41000,CAD\n\n", buffer.String())
}

func TestPrintAccountsMixedCurrencyWarning(t *testing.T) {
	t.Parallel()
	logBuffer := &bytes.Buffer{}
	client := &wealthsimpletesting.FakeClient{
		Accounts: []wealthsimple.Account{
			{ID: "a", Description: "Cash", Number: "C-1", NetLiquidationValue: wealthsimple.Money{Amount: decimal.NewFromInt(1), Currency: "CAD"}},
			{ID: "b", Description: "Cash USD", Number: "C-2", NetLiquidationValue: wealthsimple.Money{Amount: decimal.NewFromInt(1), Currency: "USD"}},
		},
	}
	reporter := NewReporter(slog.New(slog.NewTextHandler(logBuffer, nil)), client, &bytes.Buffer{})
	require.NoError(t, reporter.PrintAccounts(context.Background(), wsctlaccounts.Options{}, "table"))
	require.Contains(t, logBuffer.String(), "level=WARN")
	require.Contains(t, logBuffer.String(), "different currencies")
}

func TestPrintActivitiesTableGroupsByAccount(t *testing.T) {
	t.Parallel()
	buffer := &bytes.Buffer{}
	reporter := NewReporter(slog.New(slog.DiscardHandler), newTestClient(), buffer)
	require.NoError(t, reporter.PrintActivities(context.Background(), wsctlactivities.Options{Limit: 50}, "table"))
	output := buffer.String()
	tfsaIndex := strings.Index(output, "Account: TFSA (TFSA-001)")
	rrspIndex := strings.Index(output, "Account: RRSP (RRSP-001)")
	require.GreaterOrEqual(t, tfsaIndex, 0)
	require.Greater(t, rrspIndex, tfsaIndex)
	require.Contains(t, output, "Dividend from XEQT")
	require.Equal(t, 1, strings.Count(output, "Account: TFSA (TFSA-001)"))

	buffer.Reset()
	require.NoError(t, reporter.PrintActivities(context.Background(), wsctlactivities.Options{AccountID: "acc-tfsa"}, "table"))
	require.NotContains(t, buffer.String(), "Account:")
}

func TestPrintActivitiesJSON(t *testing.T) {
	t.Parallel()
	buffer := &bytes.Buffer{}
	reporter := NewReporter(slog.New(slog.DiscardHandler), newTestClient(), buffer)
	require.NoError(t, reporter.PrintActivities(context.Background(), wsctlactivities.Options{DividendsOnly: true}, "json"))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "DIY_DIVIDEND", decoded[0]["activity_type"])
	require.Equal(t, "TFSA (TFSA-001)", decoded[0]["account_label"])
}

func TestPrintAssetsByAccountTable(t *testing.T) {
	t.Parallel()
	buffer := &bytes.Buffer{}
	reporter := NewReporter(slog.New(slog.DiscardHandler), newTestClient(), buffer)
	require.NoError(t, reporter.PrintAssets(context.Background(), wsctlassets.Options{ByAccount: true}, "table"))
	output := buffer.String()
	require.Equal(t, 2, strings.Count(output, "Account Total"))
	require.Equal(t, 1, strings.Count(output, "Grand Total"))
	require.Less(t, strings.Index(output, "Account: TFSA (TFSA-001)"), strings.Index(output, "Account: RRSP (RRSP-001)"))
	require.Less(t, strings.Index(output, "Account: RRSP (RRSP-001)"), strings.Index(output, "Grand Total"))
	require.Contains(t, output, "Grand Total                                              8,825.00 CAD       +425.00    +5.1%")
}

func TestPrintAssetsAggregated(t *testing.T) {
	t.Parallel()
	buffer := &bytes.Buffer{}
	reporter := NewReporter(slog.New(slog.DiscardHandler), newTestClient(), buffer)
	require.NoError(t, reporter.PrintAssets(context.Background(), wsctlassets.Options{}, "table"))
	output := buffer.String()
	require.NotContains(t, output, "Account:")
	require.NotContains(t, output, "Grand Total")
	require.Contains(t, output, "Total                                                    5,675.00 CAD       +275.00    +5.1%")

	buffer.Reset()
	require.NoError(t, reporter.PrintAssets(context.Background(), wsctlassets.Options{ByAccount: true}, "json"))
	var decoded struct {
		Positions []map[string]any `json:"positions"`
		Totals    map[string]any   `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	require.Len(t, decoded.Positions, 3)
	require.Equal(t, 8825.0, decoded.Totals["market_value"])
}

func TestPrintAssetsUnknownFormatFallsBackToTable(t *testing.T) {
	t.Parallel()
	buffer := &bytes.Buffer{}
	reporter := NewReporter(slog.New(slog.DiscardHandler), newTestClient(), buffer)
	require.NoError(t, reporter.PrintAssets(context.Background(), wsctlassets.Options{PnLFilter: wsctlassets.PnLFilterProfit}, "xml"))
	require.Contains(t, buffer.String(), "Symbol     Name")
}

func TestPrintError(t *testing.T) {
	t.Parallel()
	upstreamErr := errors.New("token expired")
	buffer := &bytes.Buffer{}
	reporter := NewReporter(slog.New(slog.DiscardHandler), &wealthsimpletesting.FakeClient{Err: upstreamErr}, buffer)
	require.ErrorIs(t, reporter.PrintAccounts(context.Background(), wsctlaccounts.Options{}, "table"), upstreamErr)
	require.ErrorIs(t, reporter.PrintActivities(context.Background(), wsctlactivities.Options{}, "table"), upstreamErr)
	require.ErrorIs(t, reporter.PrintAssets(context.Background(), wsctlassets.Options{}, "table"), upstreamErr)
	require.Empty(t, buffer.String())
}

func newTestClient() *wealthsimpletesting.FakeClient {
	return &wealthsimpletesting.FakeClient{
		Accounts: []wealthsimple.Account{
			{
				ID:                  "acc-tfsa",
				Description:         "TFSA",
				Number:              "TFSA-001",
				NetLiquidationValue: wealthsimple.Money{Amount: decimal.NewFromInt(2000), Currency: "CAD"},
			},
			{
				ID:                  "acc-rrsp",
				Description:         "RRSP",
				Number:              "RRSP-001",
				NetLiquidationValue: wealthsimple.Money{Amount: decimal.NewFromInt(41000), Currency: "CAD"},
			},
		},
		Activities: map[string][]wealthsimple.Activity{
			"acc-tfsa": {
				{
					Type:        "DIY_DIVIDEND",
					Description: "Dividend from [sec-s-abc123]",
					OccurredAt:  "2024-01-15T10:30:00Z",
					Amount:      decimal.RequireFromString("12.34"),
					AmountSign:  "positive",
					Currency:    "CAD",
				},
				{
					Type:        "DEPOSIT",
					Description: "Deposit",
					OccurredAt:  "2024-01-01T10:30:00Z",
					Amount:      decimal.NewFromInt(1000),
					AmountSign:  "positive",
					Currency:    "CAD",
				},
			},
			"acc-rrsp": {
				{
					Type:        "DEPOSIT",
					Description: "Contribution",
					OccurredAt:  "2024-01-05T10:30:00Z",
					Amount:      decimal.NewFromInt(500),
					AmountSign:  "positive",
					Currency:    "CAD",
				},
			},
		},
		Positions: []wealthsimple.Position{
			newTestPosition("sec-s-abc123", "100.5", "2525", "2400", "acc-tfsa"),
			newTestPosition("sec-s-def456", "20", "3150", "3000", "acc-tfsa", "acc-rrsp"),
		},
		MarketData: map[string]*wealthsimple.SecurityMarketData{
			"sec-s-abc123": {Stock: &wealthsimple.Stock{Symbol: "XEQT", Name: "iShares Core Equity ETF"}},
			"sec-s-def456": {Stock: &wealthsimple.Stock{Symbol: "VFV", Name: "Vanguard S&P 500"}},
		},
	}
}

func newTestPosition(securityID string, quantity string, marketValue string, bookValue string, accountIDs ...string) wealthsimple.Position {
	return wealthsimple.Position{
		SecurityID: securityID,
		Quantity:   decimal.RequireFromString(quantity),
		TotalValue: wealthsimple.Money{Amount: decimal.RequireFromString(marketValue), Currency: "CAD"},
		BookValue:  wealthsimple.Money{Amount: decimal.RequireFromString(bookValue), Currency: "CAD"},
		AccountIDs: accountIDs,
	}
}

// Copyright 2026 Peter Edge
//
// All rights reserved.

package wsctlformat

import (
	"encoding/json"

	"github.com/bufdev/wsctl/internal/pkg/cliio"
	"github.com/bufdev/wsctl/internal/wsctl/wsctltotals"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlview"
	"github.com/shopspring/decimal"
)

// JSONFormatter renders views as two-space indented JSON.
//
// Decimal values are JSON numbers. Absent account labels are null.
type JSONFormatter struct{}

// NewJSONFormatter returns a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatAccounts renders accounts as a JSON array.
func (*JSONFormatter) FormatAccounts(accountViews []wsctlview.AccountView) (string, error) {
	jsonAccounts := make([]jsonAccount, 0, len(accountViews))
	for _, accountView := range accountViews {
		jsonAccounts = append(jsonAccounts, jsonAccount{
			Description: accountView.Description,
			Number:      accountView.Number,
			Value:       jsonNumber(accountView.Value),
			Currency:    accountView.Currency,
		})
	}
	return cliio.MarshalIndentedJSON(jsonAccounts)
}

// FormatActivities renders activities as a JSON array.
func (*JSONFormatter) FormatActivities(activityViews []wsctlview.ActivityView) (string, error) {
	jsonActivities := make([]jsonActivity, 0, len(activityViews))
	for _, activityView := range activityViews {
		jsonActivities = append(jsonActivities, jsonActivity{
			Date:         activityView.Date,
			ActivityType: activityView.ActivityType,
			Description:  activityView.Description,
			Amount:       jsonNumber(activityView.Amount),
			Currency:     activityView.Currency,
			Sign:         activityView.Sign,
			AccountLabel: jsonLabel(activityView.AccountLabel),
		})
	}
	return cliio.MarshalIndentedJSON(jsonActivities)
}

// FormatPositions renders positions as a JSON array.
//
// If showTotals is set and there are positions, the result is instead an
// object with "positions" and "totals" members, plus "group" if groupLabel is
// set.
func (*JSONFormatter) FormatPositions(
	positionViews []wsctlview.PositionView,
	showTotals bool,
	groupLabel string,
) (string, error) {
	jsonPositions := make([]jsonPosition, 0, len(positionViews))
	for _, positionView := range positionViews {
		jsonPositions = append(jsonPositions, jsonPosition{
			Symbol:       positionView.Symbol,
			Name:         positionView.Name,
			Quantity:     jsonNumber(positionView.Quantity),
			MarketValue:  jsonNumber(positionView.MarketValue),
			BookValue:    jsonNumber(positionView.BookValue),
			Currency:     positionView.Currency,
			PnL:          jsonNumber(positionView.PnL),
			PnLPct:       jsonNumber(positionView.PnLPct),
			AccountLabel: jsonLabel(positionView.AccountLabel),
		})
	}
	if !showTotals || len(positionViews) == 0 {
		return cliio.MarshalIndentedJSON(jsonPositions)
	}
	positionTotals := wsctltotals.ComputePositionTotals(positionViews)
	return cliio.MarshalIndentedJSON(jsonPositionReport{
		Positions: jsonPositions,
		Totals: jsonPositionTotals{
			MarketValue: jsonNumber(positionTotals.MarketValue),
			BookValue:   jsonNumber(positionTotals.BookValue),
			PnL:         jsonNumber(positionTotals.PnL),
			PnLPct:      jsonNumber(positionTotals.PnLPct),
			Currency:    positionTotals.Currency,
		},
		Group: groupLabel,
	})
}

// *** PRIVATE ***

type jsonAccount struct {
	Description string      `json:"description"`
	Number      string      `json:"number"`
	Value       json.Number `json:"value"`
	Currency    string      `json:"currency"`
}

type jsonActivity struct {
	Date         string      `json:"date"`
	ActivityType string      `json:"activity_type"`
	Description  string      `json:"description"`
	Amount       json.Number `json:"amount"`
	Currency     string      `json:"currency"`
	Sign         string      `json:"sign"`
	AccountLabel *string     `json:"account_label"`
}

type jsonPosition struct {
	Symbol       string      `json:"symbol"`
	Name         string      `json:"name"`
	Quantity     json.Number `json:"quantity"`
	MarketValue  json.Number `json:"market_value"`
	BookValue    json.Number `json:"book_value"`
	Currency     string      `json:"currency"`
	PnL          json.Number `json:"pnl"`
	PnLPct       json.Number `json:"pnl_pct"`
	AccountLabel *string     `json:"account_label"`
}

type jsonPositionTotals struct {
	MarketValue json.Number `json:"market_value"`
	BookValue   json.Number `json:"book_value"`
	PnL         json.Number `json:"pnl"`
	PnLPct      json.Number `json:"pnl_pct"`
	Currency    string      `json:"currency"`
}

type jsonPositionReport struct {
	Positions []jsonPosition     `json:"positions"`
	Totals    jsonPositionTotals `json:"totals"`
	Group     string             `json:"group,omitempty"`
}

func jsonNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func jsonLabel(accountLabel string) *string {
	if accountLabel == "" {
		return nil
	}
	return &accountLabel
}

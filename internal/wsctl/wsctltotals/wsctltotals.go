// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wsctltotals computes totals over views and groups views by account.
//
// Totals are raw arithmetic sums. Values in different currencies are added
// without conversion, and MixedCurrency is set so callers can warn about it.
package wsctltotals

import (
	"github.com/bufdev/wsctl/internal/pkg/moneyfmt"
	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlview"
	"github.com/shopspring/decimal"
)

// PositionTotals are the totals of a sequence of positions.
type PositionTotals struct {
	Quantity    decimal.Decimal
	MarketValue decimal.Decimal
	BookValue   decimal.Decimal
	// PnL is MarketValue - BookValue.
	PnL decimal.Decimal
	// PnLPct is PnL as a percentage of BookValue, or zero when BookValue is zero.
	PnLPct decimal.Decimal
	// Currency is the currency of the first position, or CAD if there are none.
	Currency string
	// MixedCurrency is true if the positions have more than one currency.
	MixedCurrency bool
}

// AccountTotals are the totals of a sequence of accounts.
type AccountTotals struct {
	Value decimal.Decimal
	// Currency is the currency of the first account, or CAD if there are none.
	Currency string
	// MixedCurrency is true if the accounts have more than one currency.
	MixedCurrency bool
}

// ComputePositionTotals returns the totals of the positions.
func ComputePositionTotals(positionViews []wsctlview.PositionView) PositionTotals {
	positionTotals := PositionTotals{
		Currency: wealthsimple.DefaultCurrency,
	}
	for i, positionView := range positionViews {
		if i == 0 {
			positionTotals.Currency = positionView.Currency
		} else if positionView.Currency != positionTotals.Currency {
			positionTotals.MixedCurrency = true
		}
		positionTotals.Quantity = positionTotals.Quantity.Add(positionView.Quantity)
		positionTotals.MarketValue = positionTotals.MarketValue.Add(positionView.MarketValue)
		positionTotals.BookValue = positionTotals.BookValue.Add(positionView.BookValue)
	}
	positionTotals.PnL = positionTotals.MarketValue.Sub(positionTotals.BookValue)
	positionTotals.PnLPct = moneyfmt.Percent(positionTotals.PnL, positionTotals.BookValue)
	return positionTotals
}

// ComputeAccountTotals returns the totals of the accounts.
func ComputeAccountTotals(accountViews []wsctlview.AccountView) AccountTotals {
	accountTotals := AccountTotals{
		Currency: wealthsimple.DefaultCurrency,
	}
	for i, accountView := range accountViews {
		if i == 0 {
			accountTotals.Currency = accountView.Currency
		} else if accountView.Currency != accountTotals.Currency {
			accountTotals.MixedCurrency = true
		}
		accountTotals.Value = accountTotals.Value.Add(accountView.Value)
	}
	return accountTotals
}

// Labeled is a view that may carry an account label.
type Labeled interface {
	GetAccountLabel() string
}

var (
	_ Labeled = wsctlview.ActivityView{}
	_ Labeled = wsctlview.PositionView{}
)

// Group is a run of views sharing an account label.
type Group[T Labeled] struct {
	// Label is the shared account label, empty for unlabelled views.
	Label string
	// Items are the views in input order.
	Items []T
}

// GroupByLabel partitions items by account label.
//
// Groups are ordered by the first appearance of their label, and items keep
// their input order within each group. Concatenating the groups' items yields
// a permutation of the input.
func GroupByLabel[T Labeled](items []T) []Group[T] {
	var groups []Group[T]
	labelToIndex := make(map[string]int)
	for _, item := range items {
		label := item.GetAccountLabel()
		index, ok := labelToIndex[label]
		if !ok {
			index = len(groups)
			labelToIndex[label] = index
			groups = append(groups, Group[T]{Label: label})
		}
		groups[index].Items = append(groups[index].Items, item)
	}
	return groups
}

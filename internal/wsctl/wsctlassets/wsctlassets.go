// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wsctlassets transforms positions into position views with profit and loss.
package wsctlassets

import (
	"context"
	"slices"

	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlview"
	"github.com/shopspring/decimal"
)

// PnLFilter selects positions by the sign of their profit and loss.
type PnLFilter string

const (
	// PnLFilterNone keeps every position.
	PnLFilterNone PnLFilter = ""
	// PnLFilterProfit keeps positions with a strictly positive P&L.
	PnLFilterProfit PnLFilter = "profit"
	// PnLFilterLoss keeps positions with a strictly negative P&L.
	PnLFilterLoss PnLFilter = "loss"
)

// Keep returns true if a position with the given P&L passes the filter.
//
// A P&L of exactly zero is neither a profit nor a loss.
func (f PnLFilter) Keep(pnl decimal.Decimal) bool {
	switch f {
	case PnLFilterProfit:
		return pnl.IsPositive()
	case PnLFilterLoss:
		return pnl.IsNegative()
	default:
		return true
	}
}

// SymbolNameResolver resolves a security identifier to its symbol and name.
//
// *wsctlsecurity.Resolver satisfies this interface.
type SymbolNameResolver interface {
	ResolveSymbolName(ctx context.Context, securityID string) (string, string)
}

// Options configures GetAssetsData.
type Options struct {
	// AccountID restricts the report to positions held in a single account.
	AccountID string
	// ByAccount labels positions by owning account, in account order.
	//
	// A position held in several accounts appears once under each of them.
	ByAccount bool
	// Currency is the currency positions are valued in. Defaults to CAD.
	Currency string
	// PnLFilter is applied after all other steps.
	PnLFilter PnLFilter
}

// PositionHasAccount returns true if the position is held in the account.
func PositionHasAccount(position wealthsimple.Position, accountID string) bool {
	return slices.Contains(position.AccountIDs, accountID)
}

// GetAssetsData fetches positions and returns their views.
func GetAssetsData(
	ctx context.Context,
	client wealthsimple.Client,
	resolver SymbolNameResolver,
	options Options,
) ([]wsctlview.PositionView, error) {
	currency := options.Currency
	if currency == "" {
		currency = wealthsimple.DefaultCurrency
	}
	positions, err := client.GetPositions(ctx, currency)
	if err != nil {
		return nil, err
	}
	if options.AccountID != "" {
		accountPositions := make([]wealthsimple.Position, 0, len(positions))
		for _, position := range positions {
			if PositionHasAccount(position, options.AccountID) {
				accountPositions = append(accountPositions, position)
			}
		}
		positions = accountPositions
	}
	if len(positions) == 0 {
		return nil, nil
	}
	var positionViews []wsctlview.PositionView
	if options.ByAccount {
		positionViews, err = getPositionViewsByAccount(ctx, client, resolver, positions, currency, options.AccountID)
		if err != nil {
			return nil, err
		}
	} else {
		positionViews = make([]wsctlview.PositionView, 0, len(positions))
		for _, position := range positions {
			positionViews = append(positionViews, NewPositionView(ctx, resolver, position, currency))
		}
	}
	if options.PnLFilter != PnLFilterNone {
		positionViews = slices.DeleteFunc(positionViews, func(positionView wsctlview.PositionView) bool {
			return !options.PnLFilter.Keep(positionView.PnL)
		})
	}
	return positionViews, nil
}

// NewPositionView returns the unlabelled view of a position.
//
// The currency of the market value is used, or defaultCurrency if it has none.
func NewPositionView(
	ctx context.Context,
	resolver SymbolNameResolver,
	position wealthsimple.Position,
	defaultCurrency string,
) wsctlview.PositionView {
	symbol, name := resolver.ResolveSymbolName(ctx, position.SecurityID)
	currency := position.TotalValue.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	return wsctlview.NewPositionView(
		symbol,
		name,
		position.Quantity,
		position.TotalValue.Amount,
		position.BookValue.Amount,
		currency,
	)
}

// *** PRIVATE ***

// getPositionViewsByAccount returns labelled views of positions for every
// account, or only the account with accountID if set.
func getPositionViewsByAccount(
	ctx context.Context,
	client wealthsimple.Client,
	resolver SymbolNameResolver,
	positions []wealthsimple.Position,
	currency string,
	accountID string,
) ([]wsctlview.PositionView, error) {
	accounts, err := client.GetAccounts(ctx)
	if err != nil {
		return nil, err
	}
	accountIDToPositions := make(map[string][]wealthsimple.Position)
	for _, position := range positions {
		for _, positionAccountID := range position.AccountIDs {
			accountIDToPositions[positionAccountID] = append(accountIDToPositions[positionAccountID], position)
		}
	}
	var positionViews []wsctlview.PositionView
	for _, account := range accounts {
		if accountID != "" && account.ID != accountID {
			continue
		}
		accountLabel := wsctlview.AccountLabel(account.Description, account.Number)
		for _, position := range accountIDToPositions[account.ID] {
			positionViews = append(
				positionViews,
				NewPositionView(ctx, resolver, position, currency).WithAccountLabel(accountLabel),
			)
		}
	}
	return positionViews, nil
}

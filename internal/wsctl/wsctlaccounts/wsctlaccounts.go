// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wsctlaccounts transforms brokerage accounts into account views.
package wsctlaccounts

import (
	"context"
	"strings"

	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlview"
)

// nonLiquidKeywords identify locked-in or illiquid accounts by description.
var nonLiquidKeywords = []string{
	"rrsp",
	"lira",
	"private equity",
	"private credit",
}

// Options configures GetAccountsData.
//
// LiquidOnly and NotLiquid are expected to be mutually exclusive. If both are
// set, every account is excluded.
type Options struct {
	// ShowZeroBalances includes accounts with a value of exactly zero.
	ShowZeroBalances bool
	// LiquidOnly excludes non-liquid accounts.
	LiquidOnly bool
	// NotLiquid excludes liquid accounts.
	NotLiquid bool
}

// IsNonLiquid returns true if the account description names a non-liquid
// account type (RRSP, LIRA, private equity, or private credit).
func IsNonLiquid(description string) bool {
	description = strings.ToLower(description)
	for _, keyword := range nonLiquidKeywords {
		if strings.Contains(description, keyword) {
			return true
		}
	}
	return false
}

// ShouldInclude returns true if an account passes the liquidity filters.
func ShouldInclude(nonLiquid bool, liquidOnly bool, notLiquid bool) bool {
	if liquidOnly && nonLiquid {
		return false
	}
	if notLiquid && !nonLiquid {
		return false
	}
	return true
}

// GetAccountsData fetches accounts and returns views for those passing the filters, in API order.
//
// The liquidity filters are applied first, then zero balances are dropped
// unless ShowZeroBalances is set.
func GetAccountsData(ctx context.Context, client wealthsimple.Client, options Options) ([]wsctlview.AccountView, error) {
	accounts, err := client.GetAccounts(ctx)
	if err != nil {
		return nil, err
	}
	var accountViews []wsctlview.AccountView
	for _, account := range accounts {
		if !ShouldInclude(IsNonLiquid(account.Description), options.LiquidOnly, options.NotLiquid) {
			continue
		}
		if account.NetLiquidationValue.Amount.IsZero() && !options.ShowZeroBalances {
			continue
		}
		accountViews = append(accountViews, wsctlview.AccountView{
			Description: account.Description,
			Number:      account.Number,
			Value:       account.NetLiquidationValue.Amount,
			Currency:    account.NetLiquidationValue.Currency,
		})
	}
	return accountViews, nil
}

// FindAccountIDByNumber returns the ID of the account with the given user-facing number.
//
// Returns false if no account has the number.
func FindAccountIDByNumber(ctx context.Context, client wealthsimple.Client, number string) (string, bool, error) {
	accounts, err := client.GetAccounts(ctx)
	if err != nil {
		return "", false, err
	}
	for _, account := range accounts {
		if account.Number == number {
			return account.ID, true, nil
		}
	}
	return "", false, nil
}

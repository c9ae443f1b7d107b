// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wsctlview provides the display-ready records produced by the
// accounts, activities, and assets transforms.
//
// Views are created fresh for every report, never mutated after construction,
// and consumed once by a formatter.
package wsctlview

import (
	"fmt"

	"github.com/bufdev/wsctl/internal/pkg/moneyfmt"
	"github.com/shopspring/decimal"
)

const (
	// MaxActivityTypeLength is the maximum number of characters kept from an activity type.
	MaxActivityTypeLength = 14
	// MaxActivityDescriptionLength is the maximum number of characters kept from an activity description.
	MaxActivityDescriptionLength = 34
	// MaxPositionNameLength is the maximum number of characters kept from a security name.
	MaxPositionNameLength = 30
	// SignPositive marks an activity that credited the account.
	SignPositive = "+"
	// SignNegative marks an activity that debited the account.
	SignNegative = "-"
)

// AccountView is a single account for display.
type AccountView struct {
	// Description is the account description (e.g., "My TFSA").
	Description string
	// Number is the user-facing account number.
	Number string
	// Value is the net liquidation value in Currency.
	Value decimal.Decimal
	// Currency is the currency of Value.
	Currency string
}

// ActivityView is a single account activity for display.
type ActivityView struct {
	// Date is the activity date as YYYY-MM-DD, or "N/A".
	Date string
	// ActivityType is the activity type, truncated to MaxActivityTypeLength.
	ActivityType string
	// Description is the enhanced description, truncated to MaxActivityDescriptionLength.
	Description string
	// Amount is the magnitude of the activity amount.
	Amount decimal.Decimal
	// Currency is the currency of Amount.
	Currency string
	// Sign is SignPositive or SignNegative, taken from the upstream sign indicator.
	Sign string
	// AccountLabel is set only in multi-account reports.
	AccountLabel string
}

// NewActivityView returns a new ActivityView.
//
// The type and description are truncated, and the amount is stored as a magnitude.
func NewActivityView(
	date string,
	activityType string,
	description string,
	amount decimal.Decimal,
	currency string,
	positive bool,
	accountLabel string,
) ActivityView {
	sign := SignNegative
	if positive {
		sign = SignPositive
	}
	return ActivityView{
		Date:         date,
		ActivityType: Truncate(activityType, MaxActivityTypeLength),
		Description:  Truncate(description, MaxActivityDescriptionLength),
		Amount:       amount.Abs(),
		Currency:     currency,
		Sign:         sign,
		AccountLabel: accountLabel,
	}
}

// GetAccountLabel returns the account label.
func (a ActivityView) GetAccountLabel() string {
	return a.AccountLabel
}

// PositionView is a single position for display, including profit and loss.
type PositionView struct {
	// Symbol is the ticker symbol.
	Symbol string
	// Name is the security name, truncated to MaxPositionNameLength.
	Name string
	// Quantity is the number of units held.
	Quantity decimal.Decimal
	// MarketValue is the current market value.
	MarketValue decimal.Decimal
	// BookValue is the cost basis.
	BookValue decimal.Decimal
	// Currency is the currency of MarketValue.
	Currency string
	// PnL is MarketValue - BookValue.
	PnL decimal.Decimal
	// PnLPct is PnL as a percentage of BookValue, or zero when BookValue is zero.
	PnLPct decimal.Decimal
	// AccountLabel is set only in by-account reports.
	AccountLabel string
}

// NewPositionView returns a new PositionView, computing profit and loss.
func NewPositionView(
	symbol string,
	name string,
	quantity decimal.Decimal,
	marketValue decimal.Decimal,
	bookValue decimal.Decimal,
	currency string,
) PositionView {
	pnl := marketValue.Sub(bookValue)
	return PositionView{
		Symbol:      symbol,
		Name:        Truncate(name, MaxPositionNameLength),
		Quantity:    quantity,
		MarketValue: marketValue,
		BookValue:   bookValue,
		Currency:    currency,
		PnL:         pnl,
		PnLPct:      moneyfmt.Percent(pnl, bookValue),
	}
}

// WithAccountLabel returns a copy of the position labelled with the account.
func (p PositionView) WithAccountLabel(accountLabel string) PositionView {
	p.AccountLabel = accountLabel
	return p
}

// GetAccountLabel returns the account label.
func (p PositionView) GetAccountLabel() string {
	return p.AccountLabel
}

// AccountLabel returns the label used to group records by account (e.g., "My TFSA (TFSA-001)").
func AccountLabel(description string, number string) string {
	return fmt.Sprintf("%s (%s)", description, number)
}

// Truncate returns the first maxLength characters of s.
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}

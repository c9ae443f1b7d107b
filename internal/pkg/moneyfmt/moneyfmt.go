// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package moneyfmt provides helper functions for parsing and displaying decimal amounts.
package moneyfmt

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amountFraction is the number of decimal places shown for amounts.
const amountFraction = 2

// amountFormatter renders minor units as "1,234.56" with no currency grapheme.
var amountFormatter = money.NewFormatter(amountFraction, ".", ",", "", "1")

// hundred is used for percentage computations.
var hundred = decimal.NewFromInt(100)

// ParseDecimal parses a decimal string (e.g., "2525.00").
//
// An empty string parses as zero.
func ParseDecimal(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal value %q: %w", value, err)
	}
	return d, nil
}

// Percent returns part/whole*100, or exactly zero when whole is zero.
func Percent(part decimal.Decimal, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole)
}

// FormatAmount formats d with thousands separators and two decimal places (e.g., "2,525.00").
func FormatAmount(d decimal.Decimal) string {
	return amountFormatter.Format(toMinorUnits(d))
}

// FormatSignedAmount is FormatAmount with a leading "+" for non-negative values
// and "-" for negative values, including those that round to zero.
func FormatSignedAmount(d decimal.Decimal) string {
	return sign(d) + FormatAmount(d.Abs())
}

// FormatFixed formats d with exactly places decimal places and no separators.
func FormatFixed(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}

// FormatSignedPercent formats a percentage with one decimal place and a
// leading sign (e.g., "+5.2%", "-0.0%").
func FormatSignedPercent(d decimal.Decimal) string {
	return sign(d) + d.Abs().StringFixed(1) + "%"
}

// *** PRIVATE ***

// sign returns "-" for negative values and "+" otherwise.
func sign(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}

// toMinorUnits rounds d to cents and returns the integer number of cents.
func toMinorUnits(d decimal.Decimal) int64 {
	return d.Round(amountFraction).Shift(amountFraction).IntPart()
}

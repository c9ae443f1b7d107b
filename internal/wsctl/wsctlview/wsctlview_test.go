// Copyright 2026 Peter Edge
//
// All rights reserved.

package wsctlview

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewPositionViewPnL(t *testing.T) {
	t.Parallel()
	position := NewPositionView(
		"XEQT",
		"iShares Core Equity ETF Portfolio Extra Long Name",
		decimal.RequireFromString("100.50"),
		decimal.RequireFromString("2525.00"),
		decimal.RequireFromString("2400.00"),
		"CAD",
	)
	require.True(t, position.PnL.Equal(decimal.RequireFromString("125.00")))
	require.InDelta(t, 5.2083, position.PnLPct.InexactFloat64(), 0.0001)
	require.Equal(t, "iShares Core Equity ETF Portfo", position.Name)
	require.Empty(t, position.AccountLabel)
}

func TestNewPositionViewZeroBookValue(t *testing.T) {
	t.Parallel()
	for _, marketValue := range []string{"0", "2525.00", "-10"} {
		position := NewPositionView("X", "X", decimal.Zero, decimal.RequireFromString(marketValue), decimal.Zero, "CAD")
		require.True(t, position.PnLPct.IsZero(), marketValue)
		require.True(t, position.PnL.Equal(decimal.RequireFromString(marketValue)), marketValue)
	}
}

func TestNewActivityView(t *testing.T) {
	t.Parallel()
	activity := NewActivityView(
		"2024-01-15",
		"VERY_LONG_ACTIVITY_TYPE",
		strings.Repeat("d", 50),
		decimal.RequireFromString("-255.00"),
		"CAD",
		true,
		"",
	)
	require.Equal(t, "VERY_LONG_ACTI", activity.ActivityType)
	require.Len(t, activity.Description, MaxActivityDescriptionLength)
	require.True(t, activity.Amount.Equal(decimal.NewFromInt(255)))
	require.Equal(t, SignPositive, activity.Sign)

	activity = NewActivityView("N/A", "DIY_BUY", "short", decimal.NewFromInt(5), "CAD", false, "My TFSA (TFSA-001)")
	require.Equal(t, "DIY_BUY", activity.ActivityType)
	require.Equal(t, SignNegative, activity.Sign)
	require.Equal(t, "My TFSA (TFSA-001)", activity.GetAccountLabel())
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	require.Equal(t, "abc", Truncate("abc", 3))
	require.Equal(t, "ab", Truncate("abc", 2))
	require.Equal(t, "", Truncate("", 2))
	require.Equal(t, "Épa", Truncate("Épargne", 3))
}

func TestAccountLabel(t *testing.T) {
	t.Parallel()
	require.Equal(t, "My TFSA (TFSA-001)", AccountLabel("My TFSA", "TFSA-001"))
	position := NewPositionView("X", "X", decimal.Zero, decimal.Zero, decimal.Zero, "CAD")
	require.Equal(t, "RRSP (R-1)", position.WithAccountLabel("RRSP (R-1)").GetAccountLabel())
	require.Empty(t, position.AccountLabel)
}

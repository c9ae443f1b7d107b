// Copyright 2026 Peter Edge
//
// All rights reserved.

package wealthsimple

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestParseAccounts(t *testing.T) {
	t.Parallel()
	nodes := newTestStructs(t,
		map[string]any{
			"id":          "acc-123",
			"number":      "TFSA-001",
			"description": "My TFSA",
			"financials": map[string]any{
				"currentCombined": map[string]any{
					"netLiquidationValue": map[string]any{"amount": "1500.25", "currency": "USD"},
				},
			},
		},
		// Everything optional is missing.
		map[string]any{"id": "acc-456", "financials": nil},
		// Numeric amount without a currency.
		map[string]any{
			"id":     "acc-789",
			"number": "RRSP-001",
			"financials": map[string]any{
				"currentCombined": map[string]any{
					"netLiquidationValue": map[string]any{"amount": 42.5},
				},
			},
		},
	)
	want := []Account{
		{
			ID:                  "acc-123",
			Description:         "My TFSA",
			Number:              "TFSA-001",
			NetLiquidationValue: Money{Amount: decimal.RequireFromString("1500.25"), Currency: "USD"},
		},
		{
			ID:                  "acc-456",
			Description:         "Unknown Account",
			Number:              "N/A",
			NetLiquidationValue: Money{Amount: decimal.Zero, Currency: "CAD"},
		},
		{
			ID:                  "acc-789",
			Description:         "Unknown Account",
			Number:              "RRSP-001",
			NetLiquidationValue: Money{Amount: decimal.RequireFromString("42.5"), Currency: "CAD"},
		},
	}
	if diff := cmp.Diff(want, ParseAccounts(nodes)); diff != "" {
		t.Errorf("ParseAccounts() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAccountsDescriptionFromType(t *testing.T) {
	t.Parallel()
	nodes := newTestStructs(t,
		map[string]any{"id": "a1", "number": "RRSP-1", "unifiedAccountType": "SELF_DIRECTED_RRSP"},
		map[string]any{"id": "a2", "number": "LIRA-1", "type": "ca_lira"},
		map[string]any{"id": "a3", "number": "PE-1", "unifiedAccountType": "MANAGED_PRIVATE_EQUITY"},
		map[string]any{"id": "a4", "number": "TFSA-1", "description": "Rainy day", "unifiedAccountType": "SELF_DIRECTED_TFSA"},
		map[string]any{"id": "a5", "number": "X-1", "unifiedAccountType": "SELF_DIRECTED_NEW_THING", "type": "ca_tfsa"},
	)
	var descriptions []string
	for _, account := range ParseAccounts(nodes) {
		descriptions = append(descriptions, account.Description)
	}
	require.Equal(
		t,
		[]string{
			"RRSP: self-directed",
			"Ca lira",
			"Private Equity",
			"Rainy day",
			"Self directed new thing",
		},
		descriptions,
	)
}

func TestParseActivities(t *testing.T) {
	t.Parallel()
	nodes := newTestStructs(t,
		map[string]any{
			"type":        "DIY_BUY",
			"subType":     "BUY",
			"description": "Dividend reinvestment: buy 0.0127 [sec-s-241667f5f203483ba",
			"occurredAt":  "2024-01-15T10:30:00Z",
			"amount":      "255.00",
			"amountSign":  "negative",
			"currency":    "CAD",
			"security":    map[string]any{"id": "sec-s-abc"},
		},
		map[string]any{"type": "DIVIDEND", "security": "sec-s-def", "amount": nil},
		map[string]any{"type": "DIVIDEND", "securityId": "sec-s-0ff", "amount": "bogus"},
	)
	activities := ParseActivities(nodes)
	require.Len(t, activities, 3)
	require.Equal(t, "DIY_BUY", activities[0].Type)
	require.Equal(t, "BUY", activities[0].SubType)
	require.Empty(t, activities[1].SubType)
	require.Equal(t, "sec-s-abc", activities[0].SecurityID)
	require.Equal(t, "negative", activities[0].AmountSign)
	require.True(t, activities[0].Amount.Equal(decimal.NewFromInt(255)))
	require.Equal(t, "sec-s-def", activities[1].SecurityID)
	require.Equal(t, "N/A", activities[1].Description)
	require.Equal(t, "CAD", activities[1].Currency)
	require.True(t, activities[1].Amount.IsZero())
	require.Equal(t, "sec-s-0ff", activities[2].SecurityID)
	require.True(t, activities[2].Amount.IsZero())
}

func TestParsePositions(t *testing.T) {
	t.Parallel()
	nodes := newTestStructs(t,
		map[string]any{
			"quantity": "100.50",
			"accounts": []any{
				map[string]any{"id": "acc-123"},
				map[string]any{"id": ""},
				map[string]any{"id": "acc-456"},
			},
			"security":   map[string]any{"id": "sec-s-xeqt"},
			"totalValue": map[string]any{"amount": "2525.00", "currency": "CAD"},
			"bookValue":  map[string]any{"amount": "2400.00"},
		},
		map[string]any{},
	)
	want := []Position{
		{
			Quantity:   decimal.RequireFromString("100.50"),
			AccountIDs: []string{"acc-123", "acc-456"},
			SecurityID: "sec-s-xeqt",
			TotalValue: Money{Amount: decimal.NewFromInt(2525), Currency: "CAD"},
			BookValue:  Money{Amount: decimal.NewFromInt(2400), Currency: "USD"},
		},
		{
			Quantity:   decimal.Zero,
			TotalValue: Money{Amount: decimal.Zero, Currency: "USD"},
			BookValue:  Money{Amount: decimal.Zero, Currency: "USD"},
		},
	}
	if diff := cmp.Diff(want, ParsePositions(nodes, "USD")); diff != "" {
		t.Errorf("ParsePositions() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSecurityMarketData(t *testing.T) {
	t.Parallel()
	data := newTestStructs(t, map[string]any{
		"security": map[string]any{
			"id":    "sec-s-xeqt",
			"stock": map[string]any{"symbol": "XEQT", "name": "iShares Core Equity ETF"},
		},
	})[0]
	marketData := ParseSecurityMarketData(data)
	require.NotNil(t, marketData)
	require.Equal(t, &Stock{Symbol: "XEQT", Name: "iShares Core Equity ETF"}, marketData.Stock)

	noStock := newTestStructs(t, map[string]any{"security": map[string]any{"id": "sec-s-1", "stock": nil}})[0]
	marketData = ParseSecurityMarketData(noStock)
	require.NotNil(t, marketData)
	require.Nil(t, marketData.Stock)

	noSecurity := newTestStructs(t, map[string]any{"security": nil})[0]
	require.Nil(t, ParseSecurityMarketData(noSecurity))
}

func TestParseGraphQLResponse(t *testing.T) {
	t.Parallel()
	data, err := parseGraphQLResponse([]byte(`{"data": {"security": null}}`))
	require.NoError(t, err)
	require.NotNil(t, data)
	_, err = parseGraphQLResponse([]byte(`{"data": null, "errors": [{"message": "Not authorized"}, {"message": "Try again"}]}`))
	require.EqualError(t, err, "graphql: Not authorized; Try again")
	_, err = parseGraphQLResponse([]byte(`{}`))
	require.Error(t, err)
	_, err = parseGraphQLResponse([]byte(`not json`))
	require.Error(t, err)
}

func newTestStructs(t *testing.T, values ...map[string]any) []*structpb.Struct {
	t.Helper()
	structs := make([]*structpb.Struct, 0, len(values))
	for _, value := range values {
		s, err := structpb.NewStruct(value)
		require.NoError(t, err)
		structs = append(structs, s)
	}
	return structs
}

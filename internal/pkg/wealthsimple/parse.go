// Copyright 2026 Peter Edge
//
// All rights reserved.

package wealthsimple

import (
	"strings"

	"github.com/bufdev/wsctl/internal/pkg/moneyfmt"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// defaultAccountDescription is substituted for accounts without a description.
	defaultAccountDescription = "Unknown Account"
	// defaultAccountNumber is substituted for accounts without a number.
	defaultAccountNumber = "N/A"
	// defaultActivityDescription is substituted for activities without a description.
	defaultActivityDescription = "N/A"
)

// accountTypeDescriptions are the descriptions of unified account types, used
// when an account has no nickname.
var accountTypeDescriptions = map[string]string{
	"CASH":                                "Cash",
	"CASH_USD":                            "Cash: USD",
	"SELF_DIRECTED_TFSA":                  "TFSA: self-directed",
	"MANAGED_TFSA":                        "TFSA: managed",
	"SELF_DIRECTED_RRSP":                  "RRSP: self-directed",
	"MANAGED_RRSP":                        "RRSP: managed",
	"SELF_DIRECTED_SPOUSAL_RRSP":          "Spousal RRSP: self-directed",
	"MANAGED_SPOUSAL_RRSP":                "Spousal RRSP: managed",
	"SELF_DIRECTED_LIRA":                  "LIRA: self-directed",
	"MANAGED_LIRA":                        "LIRA: managed",
	"SELF_DIRECTED_FHSA":                  "FHSA: self-directed",
	"MANAGED_FHSA":                        "FHSA: managed",
	"SELF_DIRECTED_RESP":                  "RESP: self-directed",
	"MANAGED_RESP":                        "RESP: managed",
	"SELF_DIRECTED_NON_REGISTERED":        "Non-registered: self-directed",
	"SELF_DIRECTED_NON_REGISTERED_MARGIN": "Non-registered: self-directed margin",
	"MANAGED_NON_REGISTERED":              "Non-registered: managed",
	"SELF_DIRECTED_CRYPTO":                "Crypto",
	"MANAGED_PRIVATE_EQUITY":              "Private Equity",
	"MANAGED_PRIVATE_CREDIT":              "Private Credit",
}

// ParseAccounts parses account nodes into Accounts.
//
// The description is the account nickname, falling back to a description of
// the account type, and then to "Unknown Account". Missing numbers become
// "N/A", a missing net liquidation amount zero, and a missing currency "CAD".
func ParseAccounts(nodes []*structpb.Struct) []Account {
	accounts := make([]Account, 0, len(nodes))
	for _, node := range nodes {
		accounts = append(accounts, Account{
			ID:                  stringAt(node, "", "id"),
			Description:         accountDescription(node),
			Number:              stringAt(node, defaultAccountNumber, "number"),
			NetLiquidationValue: moneyAt(node, DefaultCurrency, "financials", "currentCombined", "netLiquidationValue"),
		})
	}
	return accounts
}

// ParseActivities parses activity feed nodes into Activities.
//
// The security reference may be an object with an id, a bare identifier, or
// a separate securityId field.
func ParseActivities(nodes []*structpb.Struct) []Activity {
	activities := make([]Activity, 0, len(nodes))
	for _, node := range nodes {
		activities = append(activities, Activity{
			Type:        stringAt(node, "", "type"),
			SubType:     stringAt(node, "", "subType"),
			Description: stringAt(node, defaultActivityDescription, "description"),
			OccurredAt:  stringAt(node, "", "occurredAt"),
			Amount:      decimalAt(node, "amount"),
			AmountSign:  stringAt(node, "", "amountSign"),
			Currency:    stringAt(node, DefaultCurrency, "currency"),
			SecurityID:  activitySecurityID(node),
		})
	}
	return activities
}

// ParsePositions parses position nodes into Positions.
//
// Values without a currency are reported in defaultCurrency.
func ParsePositions(nodes []*structpb.Struct, defaultCurrency string) []Position {
	positions := make([]Position, 0, len(nodes))
	for _, node := range nodes {
		var accountIDs []string
		for _, accountValue := range listAt(node, "accounts") {
			if accountID := stringAt(accountValue.GetStructValue(), "", "id"); accountID != "" {
				accountIDs = append(accountIDs, accountID)
			}
		}
		positions = append(positions, Position{
			Quantity:   decimalAt(node, "quantity"),
			AccountIDs: accountIDs,
			SecurityID: stringAt(node, "", "security", "id"),
			TotalValue: moneyAt(node, defaultCurrency, "totalValue"),
			BookValue:  moneyAt(node, defaultCurrency, "bookValue"),
		})
	}
	return positions
}

// ParseSecurityMarketData parses the data object of a security market data query.
//
// Returns nil if the response has no security.
func ParseSecurityMarketData(data *structpb.Struct) *SecurityMarketData {
	security := structAt(data, "security")
	if security == nil {
		return nil
	}
	marketData := &SecurityMarketData{}
	if stock := structAt(security, "stock"); stock != nil {
		marketData.Stock = &Stock{
			Symbol: stringAt(stock, "", "symbol"),
			Name:   stringAt(stock, "", "name"),
		}
	}
	return marketData
}

// *** PRIVATE ***

// valueAt walks path through nested structs, returning nil if any element is missing or null.
func valueAt(s *structpb.Struct, path ...string) *structpb.Value {
	if s == nil || len(path) == 0 {
		return nil
	}
	value, ok := s.GetFields()[path[0]]
	if !ok || value == nil {
		return nil
	}
	if _, isNull := value.GetKind().(*structpb.Value_NullValue); isNull {
		return nil
	}
	if len(path) == 1 {
		return value
	}
	return valueAt(value.GetStructValue(), path[1:]...)
}

// structAt returns the struct at path, or nil.
func structAt(s *structpb.Struct, path ...string) *structpb.Struct {
	return valueAt(s, path...).GetStructValue()
}

// listAt returns the list elements at path, or nil.
func listAt(s *structpb.Struct, path ...string) []*structpb.Value {
	return valueAt(s, path...).GetListValue().GetValues()
}

// stringAt returns the non-empty string at path, or defaultValue.
func stringAt(s *structpb.Struct, defaultValue string, path ...string) string {
	if value := valueAt(s, path...).GetStringValue(); value != "" {
		return value
	}
	return defaultValue
}

// decimalAt returns the amount at path, which may be a JSON string or number.
//
// Missing and malformed amounts are zero.
func decimalAt(s *structpb.Struct, path ...string) decimal.Decimal {
	value := valueAt(s, path...)
	switch kind := value.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return decimal.NewFromFloat(kind.NumberValue)
	case *structpb.Value_StringValue:
		d, err := moneyfmt.ParseDecimal(kind.StringValue)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// moneyAt returns the {amount, currency} object at path.
func moneyAt(s *structpb.Struct, defaultCurrency string, path ...string) Money {
	moneyStruct := structAt(s, path...)
	return Money{
		Amount:   decimalAt(moneyStruct, "amount"),
		Currency: stringAt(moneyStruct, defaultCurrency, "currency"),
	}
}

// accountDescription returns the nickname of an account node, or a description
// derived from its unified account type or type.
func accountDescription(node *structpb.Struct) string {
	if nickname := stringAt(node, "", "description"); nickname != "" {
		return nickname
	}
	for _, field := range []string{"unifiedAccountType", "type"} {
		accountType := stringAt(node, "", field)
		if accountType == "" {
			continue
		}
		if description, ok := accountTypeDescriptions[accountType]; ok {
			return description
		}
		return describeAccountType(accountType)
	}
	return defaultAccountDescription
}

// describeAccountType turns an unknown type such as "SELF_DIRECTED_LIRA_USD"
// into "Self directed lira usd".
func describeAccountType(accountType string) string {
	description := strings.ToLower(strings.ReplaceAll(accountType, "_", " "))
	return strings.ToUpper(description[:1]) + description[1:]
}

// activitySecurityID returns the security directly referenced by an activity node.
func activitySecurityID(node *structpb.Struct) string {
	security := valueAt(node, "security")
	if securityStruct := security.GetStructValue(); securityStruct != nil {
		if securityID := stringAt(securityStruct, "", "id"); securityID != "" {
			return securityID
		}
	}
	if securityID := security.GetStringValue(); securityID != "" {
		return securityID
	}
	return stringAt(node, "", "securityId")
}

// edgeNodes returns the node of every edge of a connection.
func edgeNodes(connection *structpb.Struct) []*structpb.Struct {
	edges := listAt(connection, "edges")
	nodes := make([]*structpb.Struct, 0, len(edges))
	for _, edge := range edges {
		if node := structAt(edge.GetStructValue(), "node"); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// pageInfo returns whether a connection has a next page and its end cursor.
func pageInfo(connection *structpb.Struct) (bool, string) {
	return valueAt(connection, "pageInfo", "hasNextPage").GetBoolValue(),
		stringAt(connection, "", "pageInfo", "endCursor")
}

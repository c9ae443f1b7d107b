// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wealthsimpletesting provides an in-memory wealthsimple.Client for tests.
package wealthsimpletesting

import (
	"context"
	"errors"
	"fmt"

	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
)

// ErrSecurityNotFound is returned by GetSecurityMarketData for securities
// listed in FakeClient.FailingSecurityIDs.
var ErrSecurityNotFound = errors.New("security not found")

// FakeClient is an in-memory wealthsimple.Client.
//
// Every call is counted. Not safe for concurrent use.
type FakeClient struct {
	// Accounts is returned by GetAccounts.
	Accounts []wealthsimple.Account
	// Activities maps account IDs to the activities returned by GetActivities.
	Activities map[string][]wealthsimple.Activity
	// Positions is returned by GetPositions.
	Positions []wealthsimple.Position
	// MarketData maps security IDs to the market data returned by GetSecurityMarketData.
	MarketData map[string]*wealthsimple.SecurityMarketData
	// FailingSecurityIDs are security IDs for which GetSecurityMarketData fails.
	FailingSecurityIDs map[string]struct{}
	// Err, if set, is returned by every call.
	Err error

	// GetAccountsCalls is the number of GetAccounts calls.
	GetAccountsCalls int
	// GetActivitiesAccountIDs are the account IDs passed to GetActivities, in order.
	GetActivitiesAccountIDs []string
	// GetPositionsCurrencies are the currencies passed to GetPositions, in order.
	GetPositionsCurrencies []string
	// GetSecurityMarketDataCalls is the number of GetSecurityMarketData calls.
	GetSecurityMarketDataCalls int
}

// GetAccounts implements wealthsimple.Client.
func (c *FakeClient) GetAccounts(context.Context) ([]wealthsimple.Account, error) {
	c.GetAccountsCalls++
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Accounts, nil
}

// GetActivities implements wealthsimple.Client.
func (c *FakeClient) GetActivities(_ context.Context, accountID string) ([]wealthsimple.Activity, error) {
	c.GetActivitiesAccountIDs = append(c.GetActivitiesAccountIDs, accountID)
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Activities[accountID], nil
}

// GetPositions implements wealthsimple.Client.
func (c *FakeClient) GetPositions(_ context.Context, currency string) ([]wealthsimple.Position, error) {
	c.GetPositionsCurrencies = append(c.GetPositionsCurrencies, currency)
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Positions, nil
}

// GetSecurityMarketData implements wealthsimple.Client.
func (c *FakeClient) GetSecurityMarketData(_ context.Context, securityID string) (*wealthsimple.SecurityMarketData, error) {
	c.GetSecurityMarketDataCalls++
	if c.Err != nil {
		return nil, c.Err
	}
	if _, ok := c.FailingSecurityIDs[securityID]; ok {
		return nil, fmt.Errorf("%s: %w", securityID, ErrSecurityNotFound)
	}
	return c.MarketData[securityID], nil
}

// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wsctlsecurity resolves opaque security identifiers to display names.
//
// A Resolver is scoped to a single report invocation. It memoizes every
// resolution, including fallbacks after lookup failures, so each identifier is
// fetched at most once per cache.
package wsctlsecurity

import (
	"context"
	"log/slog"

	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
)

const (
	// defaultSymbol is used when a security has no symbol.
	defaultSymbol = "N/A"
	// defaultName is used when a security has neither a name nor a symbol.
	defaultName = "Unknown"
)

// MarketDataFetcher fetches market data for a security.
//
// wealthsimple.Client satisfies this interface.
type MarketDataFetcher interface {
	GetSecurityMarketData(ctx context.Context, securityID string) (*wealthsimple.SecurityMarketData, error)
}

// Resolver resolves security identifiers using a MarketDataFetcher.
//
// Not safe for concurrent use.
type Resolver struct {
	logger             *slog.Logger
	fetcher            MarketDataFetcher
	nameCache          map[string]string
	symbolAndNameCache map[string]symbolAndName
}

// NewResolver returns a new Resolver with empty caches.
func NewResolver(logger *slog.Logger, fetcher MarketDataFetcher) *Resolver {
	return &Resolver{
		logger:             logger,
		fetcher:            fetcher,
		nameCache:          make(map[string]string),
		symbolAndNameCache: make(map[string]symbolAndName),
	}
}

// ResolveName returns the best display name for a security.
//
// The symbol is preferred, then the name, then the identifier itself. Lookup
// failures are logged and resolve to the identifier. Never fails.
func (r *Resolver) ResolveName(ctx context.Context, securityID string) string {
	if name, ok := r.nameCache[securityID]; ok {
		return name
	}
	name := securityID
	if securityID != "" {
		marketData, err := r.fetcher.GetSecurityMarketData(ctx, securityID)
		switch {
		case err != nil:
			r.logger.Debug("security lookup failed, using identifier", "security_id", securityID, "error", err)
		case marketData != nil && marketData.Stock != nil:
			switch {
			case marketData.Stock.Symbol != "":
				name = marketData.Stock.Symbol
			case marketData.Stock.Name != "":
				name = marketData.Stock.Name
			}
		}
	}
	r.nameCache[securityID] = name
	return name
}

// ResolveSymbolName returns the symbol and name of a security.
//
// A missing symbol is "N/A" and a missing name falls back to the symbol. If
// the security is empty or has no listing information, the result is
// ("N/A", "Unknown").
// Lookup failures are logged and resolve to the identifier for both values.
// Never fails.
func (r *Resolver) ResolveSymbolName(ctx context.Context, securityID string) (string, string) {
	if cached, ok := r.symbolAndNameCache[securityID]; ok {
		return cached.symbol, cached.name
	}
	resolved := symbolAndName{
		symbol: defaultSymbol,
		name:   defaultName,
	}
	if securityID != "" {
		marketData, err := r.fetcher.GetSecurityMarketData(ctx, securityID)
		switch {
		case err != nil:
			r.logger.Debug("security lookup failed, using identifier", "security_id", securityID, "error", err)
			resolved = symbolAndName{
				symbol: securityID,
				name:   securityID,
			}
		case marketData != nil && marketData.Stock != nil:
			if marketData.Stock.Symbol != "" {
				resolved.symbol = marketData.Stock.Symbol
			}
			resolved.name = resolved.symbol
			if marketData.Stock.Name != "" {
				resolved.name = marketData.Stock.Name
			}
		}
	}
	r.symbolAndNameCache[securityID] = resolved
	return resolved.symbol, resolved.name
}

// *** PRIVATE ***

type symbolAndName struct {
	symbol string
	name   string
}

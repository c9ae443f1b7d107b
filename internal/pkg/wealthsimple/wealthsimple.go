// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wealthsimple provides an API client for the Wealthsimple GraphQL API.
//
// Every call is a GraphQL POST authenticated with a bearer token. Responses are
// decoded into loosely-typed structpb.Struct values and then parsed into the
// typed records of this package, substituting documented defaults for missing
// fields (see parse.go). Transient HTTP failures (429 and 5xx) are retried with
// exponential backoff. GraphQL errors are never retried.
package wealthsimple

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bufdev/wsctl/internal/pkg/backoff"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// DefaultURL is the Wealthsimple GraphQL endpoint.
	DefaultURL = "https://my.wealthsimple.com/graphql"
	// DefaultCurrency is substituted when a record carries no currency.
	DefaultCurrency = "CAD"
	// pageSize is the number of edges requested per page of a connection.
	pageSize = 100
	// maxPages bounds pagination of a single connection.
	maxPages = 50
)

// retryPolicy is the backoff policy for transient HTTP failures.
var retryPolicy = backoff.Policy{
	MaxAttempts:  4,
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     5 * time.Second,
}

// Client is the interface for fetching brokerage data.
type Client interface {
	// GetAccounts fetches all accounts of the authenticated identity.
	GetAccounts(ctx context.Context) ([]Account, error)
	// GetActivities fetches the activity feed of a single account, most recent first.
	GetActivities(ctx context.Context, accountID string) ([]Activity, error)
	// GetPositions fetches all positions of the identity with values in the given currency.
	//
	// Positions without a value currency are reported in the given currency.
	GetPositions(ctx context.Context, currency string) ([]Position, error)
	// GetSecurityMarketData fetches market data for a security.
	//
	// Returns nil if the security is unknown.
	GetSecurityMarketData(ctx context.Context, securityID string) (*SecurityMarketData, error)
}

// Money is an amount in a currency.
type Money struct {
	// Amount is the decimal amount, zero when absent upstream.
	Amount decimal.Decimal
	// Currency is the ISO currency code.
	Currency string
}

// Account is a brokerage account.
type Account struct {
	// ID is the opaque account identifier used by other API calls.
	ID string
	// Description is the display description (e.g., "TFSA").
	Description string
	// Number is the user-facing account number (e.g., "TFSA-001").
	Number string
	// NetLiquidationValue is the current combined net liquidation value.
	NetLiquidationValue Money
}

// Activity is a single entry of an account's activity feed.
type Activity struct {
	// Type is the activity type (e.g., "DIY_BUY", "DIVIDEND"). Empty when absent.
	Type string
	// SubType refines Type (e.g., "BUY", "DIVIDEND"). Empty when absent.
	SubType string
	// Description is the free-text description, which may embed security identifiers.
	Description string
	// OccurredAt is the ISO-8601 timestamp string as sent by the API.
	OccurredAt string
	// Amount is the unsigned amount.
	Amount decimal.Decimal
	// AmountSign is "positive" or "negative".
	AmountSign string
	// Currency is the ISO currency code.
	Currency string
	// SecurityID is the directly referenced security, if any.
	SecurityID string
}

// Position is a holding of a security across one or more accounts.
type Position struct {
	// Quantity is the number of units held.
	Quantity decimal.Decimal
	// AccountIDs are the accounts holding this position.
	AccountIDs []string
	// SecurityID is the held security.
	SecurityID string
	// TotalValue is the current market value.
	TotalValue Money
	// BookValue is the cost basis.
	BookValue Money
}

// SecurityMarketData is market data for a security.
type SecurityMarketData struct {
	// Stock holds the listing information, nil when the API has none.
	Stock *Stock
}

// Stock is the listing information of a security.
type Stock struct {
	// Symbol is the ticker symbol (e.g., "XEQT"), possibly empty.
	Symbol string
	// Name is the security name, possibly empty.
	Name string
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*client)

// ClientWithHTTPClient sets the HTTP client to use for requests.
func ClientWithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// ClientWithURL sets the GraphQL endpoint URL.
func ClientWithURL(url string) ClientOption {
	return func(c *client) {
		c.url = url
	}
}

// ClientWithRetryPolicy overrides the backoff policy for transient failures.
func ClientWithRetryPolicy(policy backoff.Policy) ClientOption {
	return func(c *client) {
		c.retryPolicy = policy
	}
}

// NewClient creates a new API client. The logger and token are required.
func NewClient(logger *slog.Logger, token string, options ...ClientOption) Client {
	c := &client{
		httpClient:  http.DefaultClient,
		logger:      logger,
		token:       token,
		url:         DefaultURL,
		retryPolicy: retryPolicy,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// *** PRIVATE ***

type client struct {
	httpClient  *http.Client
	logger      *slog.Logger
	token       string
	url         string
	retryPolicy backoff.Policy
}

// graphQLRequest is the JSON body of a GraphQL request.
type graphQLRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

func (c *client) GetAccounts(ctx context.Context) ([]Account, error) {
	nodes, err := c.queryConnection(ctx, "FetchAllAccounts", fetchAccountsQuery, nil, "identity", "accounts")
	if err != nil {
		return nil, fmt.Errorf("fetching accounts: %w", err)
	}
	return ParseAccounts(nodes), nil
}

func (c *client) GetActivities(ctx context.Context, accountID string) ([]Activity, error) {
	if accountID == "" {
		return nil, errors.New("account ID is required")
	}
	variables := map[string]any{
		"accountIds": []string{accountID},
	}
	nodes, err := c.queryConnection(ctx, "FetchActivityFeedItems", fetchActivitiesQuery, variables, "activityFeedItems")
	if err != nil {
		return nil, fmt.Errorf("fetching activities for account %s: %w", accountID, err)
	}
	return ParseActivities(nodes), nil
}

func (c *client) GetPositions(ctx context.Context, currency string) ([]Position, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	variables := map[string]any{
		"currency": currency,
	}
	nodes, err := c.queryConnection(ctx, "FetchIdentityPositions", fetchPositionsQuery, variables, "identity", "financials", "current", "positions")
	if err != nil {
		return nil, fmt.Errorf("fetching positions: %w", err)
	}
	return ParsePositions(nodes, currency), nil
}

func (c *client) GetSecurityMarketData(ctx context.Context, securityID string) (*SecurityMarketData, error) {
	if securityID == "" {
		return nil, errors.New("security ID is required")
	}
	data, err := c.query(ctx, "FetchSecurityMarketData", fetchSecurityMarketDataQuery, map[string]any{"id": securityID})
	if err != nil {
		return nil, fmt.Errorf("fetching market data for security %s: %w", securityID, err)
	}
	return ParseSecurityMarketData(data), nil
}

// queryConnection runs a paginated query and returns the nodes of the
// connection found at connectionPath within the response data.
//
// The query must accept $first and $cursor variables.
func (c *client) queryConnection(
	ctx context.Context,
	operationName string,
	query string,
	variables map[string]any,
	connectionPath ...string,
) ([]*structpb.Struct, error) {
	var nodes []*structpb.Struct
	cursor := ""
	for page := range maxPages {
		pageVariables := make(map[string]any, len(variables)+2)
		for key, value := range variables {
			pageVariables[key] = value
		}
		pageVariables["first"] = pageSize
		if cursor != "" {
			pageVariables["cursor"] = cursor
		}
		data, err := c.query(ctx, operationName, query, pageVariables)
		if err != nil {
			return nil, err
		}
		connection := structAt(data, connectionPath...)
		if connection == nil {
			return nil, fmt.Errorf("response has no %s", strings.Join(connectionPath, "."))
		}
		nodes = append(nodes, edgeNodes(connection)...)
		hasNextPage, endCursor := pageInfo(connection)
		if !hasNextPage || endCursor == "" {
			return nodes, nil
		}
		c.logger.Debug("fetching next page", "operation", operationName, "page", page+2)
		cursor = endCursor
	}
	c.logger.Warn("pagination limit reached, results are truncated", "operation", operationName, "pages", maxPages)
	return nodes, nil
}

// query runs a single GraphQL request and returns the data object.
func (c *client) query(ctx context.Context, operationName string, query string, variables map[string]any) (*structpb.Struct, error) {
	requestBody, err := json.Marshal(graphQLRequest{
		OperationName: operationName,
		Query:         query,
		Variables:     variables,
	})
	if err != nil {
		return nil, err
	}
	body, err := backoff.Retry(ctx, c.retryPolicy,
		func(ctx context.Context, attempt int) ([]byte, bool, error) {
			if attempt > 0 {
				c.logger.Info("retrying request", "operation", operationName, "attempt", attempt+1)
			}
			c.logger.Debug("graphql request", "operation", operationName)
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(requestBody))
			if err != nil {
				return nil, false, err
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+c.token)
			resp, err := c.httpClient.Do(req)
			if err != nil {
				return nil, false, err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, false, err
			}
			switch {
			case resp.StatusCode == http.StatusOK:
				return body, false, nil
			case resp.StatusCode == http.StatusUnauthorized:
				return nil, false, errors.New("token rejected (status 401), obtain a new Wealthsimple token")
			case isRetryableStatus(resp.StatusCode):
				c.logger.Warn("transient API error, will retry", "operation", operationName, "status", resp.StatusCode)
				return nil, true, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
			default:
				return nil, false, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
			}
		},
	)
	if err != nil {
		return nil, err
	}
	return parseGraphQLResponse(body)
}

// parseGraphQLResponse decodes a GraphQL response body and returns its data object.
func parseGraphQLResponse(body []byte) (*structpb.Struct, error) {
	var response structpb.Struct
	if err := protojson.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if errorValues := listAt(&response, "errors"); len(errorValues) > 0 {
		messages := make([]string, 0, len(errorValues))
		for _, errorValue := range errorValues {
			message := stringAt(errorValue.GetStructValue(), "", "message")
			if message == "" {
				message = "unknown error"
			}
			messages = append(messages, message)
		}
		return nil, fmt.Errorf("graphql: %s", strings.Join(messages, "; "))
	}
	data := structAt(&response, "data")
	if data == nil {
		return nil, errors.New("response has no data")
	}
	return data, nil
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}

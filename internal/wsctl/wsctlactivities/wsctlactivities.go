// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wsctlactivities transforms account activity feeds into activity views.
//
// Activity descriptions from the API embed opaque security identifiers such as
// "[sec-s-3f2a9c]". The enhancer replaces them with the resolved symbol or name
// so that descriptions are readable.
package wsctlactivities

import (
	"context"
	"regexp"
	"strings"

	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
	"github.com/bufdev/wsctl/internal/standard/xtime"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlview"
)

const (
	// DefaultLimit is the default maximum number of activities per account.
	DefaultLimit = 50
	// notAvailable is displayed for missing activity types and dates.
	notAvailable = "N/A"
	// amountSignPositive is the API sign indicator for credits.
	amountSignPositive = "positive"
	// buyActivityType marks purchases, including dividend reinvestments.
	buyActivityType = "DIY_BUY"
)

var (
	// securityIDRegexp matches the first embedded security identifier.
	securityIDRegexp = regexp.MustCompile(`\[?(sec-[a-z]-[a-f0-9]+)`)
	// bracketedSecurityIDRegexp matches every embedded security identifier, including a closing bracket.
	bracketedSecurityIDRegexp = regexp.MustCompile(`\[?(sec-[a-z]-[a-f0-9]+)\]?`)
	// buyQuantityRegexp matches the quantity of a buy.
	buyQuantityRegexp = regexp.MustCompile(`buy (\d+\.?\d*)`)
	// dividendTokens mark dividend activities by type or description.
	dividendTokens = []string{
		"DIY_DIVIDEND",
		"DIVIDEND",
		"DISTRIBUTION",
	}
)

// NameResolver resolves a security identifier to a display name.
//
// *wsctlsecurity.Resolver satisfies this interface.
type NameResolver interface {
	ResolveName(ctx context.Context, securityID string) string
}

// Options configures GetActivitiesData.
type Options struct {
	// AccountID restricts the report to a single account.
	//
	// If empty, activities of every account are returned, labelled by account.
	AccountID string
	// DividendsOnly keeps only dividend activities.
	DividendsOnly bool
	// Limit is the maximum number of activities per account, applied after
	// the dividend filter. Zero or negative means no limit.
	Limit int
}

// GetActivitiesData fetches activities and returns their views.
//
// In single-account mode the views carry no account label. Otherwise accounts
// are fetched and the activities of each account are returned in account
// order, labelled "<description> (<number>)".
func GetActivitiesData(
	ctx context.Context,
	client wealthsimple.Client,
	resolver NameResolver,
	options Options,
) ([]wsctlview.ActivityView, error) {
	if options.AccountID != "" {
		return getAccountActivitiesData(ctx, client, resolver, options, options.AccountID, "")
	}
	accounts, err := client.GetAccounts(ctx)
	if err != nil {
		return nil, err
	}
	var activityViews []wsctlview.ActivityView
	for _, account := range accounts {
		accountActivityViews, err := getAccountActivitiesData(
			ctx,
			client,
			resolver,
			options,
			account.ID,
			wsctlview.AccountLabel(account.Description, account.Number),
		)
		if err != nil {
			return nil, err
		}
		activityViews = append(activityViews, accountActivityViews...)
	}
	return activityViews, nil
}

// IsDividend returns true if the activity type or description names a dividend or distribution.
func IsDividend(activity wealthsimple.Activity) bool {
	activityType := strings.ToUpper(activity.Type)
	description := strings.ToUpper(activity.Description)
	for _, dividendToken := range dividendTokens {
		if strings.Contains(activityType, dividendToken) || strings.Contains(description, dividendToken) {
			return true
		}
	}
	return false
}

// ExtractSecurityID returns the first security identifier embedded in text.
func ExtractSecurityID(text string) (string, bool) {
	match := securityIDRegexp.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// EnhanceDescription returns the activity description with embedded security
// identifiers replaced by their resolved names.
//
// The directly referenced security takes precedence over one extracted from
// the description. Buys whose description does not mention the security are
// rewritten as "Dividend reinvestment: buy <quantity> <name>" when a quantity
// is present. Without a security the description is returned unchanged.
func EnhanceDescription(ctx context.Context, resolver NameResolver, activity wealthsimple.Activity) string {
	description := activity.Description
	if description == "" {
		description = notAvailable
	}
	securityID := activity.SecurityID
	if securityID == "" {
		extractedSecurityID, ok := ExtractSecurityID(description)
		if !ok {
			return description
		}
		securityID = extractedSecurityID
	}
	name := resolver.ResolveName(ctx, securityID)
	description = bracketedSecurityIDRegexp.ReplaceAllLiteralString(description, name)
	if strings.Contains(activity.Type, buyActivityType) && !strings.Contains(description, name) {
		if match := buyQuantityRegexp.FindStringSubmatch(description); match != nil {
			description = "Dividend reinvestment: buy " + match[1] + " " + name
		}
	}
	return description
}

// FormatDate returns the calendar date of an ISO-8601 timestamp as YYYY-MM-DD.
//
// The date is taken in the timestamp's own offset. If the timestamp cannot be
// parsed, its first 10 characters are returned, or "N/A" if it is shorter.
func FormatDate(timestamp string) string {
	if t, err := xtime.ParseTimestamp(timestamp); err == nil {
		return xtime.TimeToDate(t).String()
	}
	if len(timestamp) >= 10 {
		return timestamp[:10]
	}
	return notAvailable
}

// NewActivityView returns the view of an activity.
func NewActivityView(
	ctx context.Context,
	resolver NameResolver,
	activity wealthsimple.Activity,
	accountLabel string,
) wsctlview.ActivityView {
	activityType := activity.Type
	if activityType == "" {
		activityType = notAvailable
	}
	currency := activity.Currency
	if currency == "" {
		currency = wealthsimple.DefaultCurrency
	}
	return wsctlview.NewActivityView(
		FormatDate(activity.OccurredAt),
		activityType,
		EnhanceDescription(ctx, resolver, activity),
		activity.Amount,
		currency,
		activity.AmountSign == amountSignPositive,
		accountLabel,
	)
}

// *** PRIVATE ***

func getAccountActivitiesData(
	ctx context.Context,
	client wealthsimple.Client,
	resolver NameResolver,
	options Options,
	accountID string,
	accountLabel string,
) ([]wsctlview.ActivityView, error) {
	activities, err := client.GetActivities(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if options.DividendsOnly {
		dividends := make([]wealthsimple.Activity, 0, len(activities))
		for _, activity := range activities {
			if IsDividend(activity) {
				dividends = append(dividends, activity)
			}
		}
		activities = dividends
	}
	if options.Limit > 0 && len(activities) > options.Limit {
		activities = activities[:options.Limit]
	}
	activityViews := make([]wsctlview.ActivityView, 0, len(activities))
	for _, activity := range activities {
		activityViews = append(activityViews, NewActivityView(ctx, resolver, activity, accountLabel))
	}
	return activityViews, nil
}

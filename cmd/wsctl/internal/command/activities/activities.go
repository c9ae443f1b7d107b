// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package activities implements the "activities" command.
package activities

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/wsctl/cmd/wsctl/internal/wsctlcmd"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlactivities"
	"github.com/spf13/pflag"
)

const (
	dividendsFlagName = "dividends"
	limitFlagName     = "limit"
)

// NewCommand returns a new activities command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Display recent account activities",
		Long: `Display recent account activities, most recent first.

Without --account, activities of every account are shown, grouped by account.
Security identifiers in descriptions are replaced by their symbols.`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Account is the account number to show activities for.
	Account string
	// Dividends shows only dividend activities.
	Dividends bool
	// Limit is the maximum number of activities per account, -1 for the configured default.
	Limit int
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Account, wsctlcmd.AccountFlagName, "", "The account number to show activities for (e.g., TFSA-001)")
	flagSet.BoolVar(&f.Dividends, dividendsFlagName, false, "Show only dividend activities")
	flagSet.IntVar(&f.Limit, limitFlagName, -1, "The maximum number of activities per account, 0 for no limit (default from config, 50)")
	flagSet.StringVar(&f.Format, wsctlcmd.FormatFlagName, "table", "Output format (table, csv, json)")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := wsctlcmd.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	config, err := wsctlcmd.ReadConfig(container)
	if err != nil {
		return err
	}
	limit := config.ActivitiesLimit
	if flags.Limit >= 0 {
		limit = flags.Limit
	}
	client, err := wsctlcmd.NewClient(container, config)
	if err != nil {
		return err
	}
	accountID, err := wsctlcmd.GetAccountID(ctx, client, flags.Account)
	if err != nil {
		return err
	}
	return wsctlcmd.NewReporter(container, client).PrintActivities(
		ctx,
		wsctlactivities.Options{
			AccountID:     accountID,
			DividendsOnly: flags.Dividends,
			Limit:         limit,
		},
		string(format),
	)
}

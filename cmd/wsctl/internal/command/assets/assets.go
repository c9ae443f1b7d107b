// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package assets implements the "assets" command.
package assets

import (
	"context"
	"strings"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/wsctl/cmd/wsctl/internal/wsctlcmd"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlassets"
	"github.com/spf13/pflag"
)

const (
	byAccountFlagName = "by-account"
	profitsFlagName   = "profits"
	lossesFlagName    = "losses"
	currencyFlagName  = "currency"
)

// NewCommand returns a new assets command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Display positions with market values and profit and loss",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Account is the account number to show positions for.
	Account string
	// ByAccount groups positions by account.
	ByAccount bool
	// Profits shows only positions with a gain.
	Profits bool
	// Losses shows only positions with a loss.
	Losses bool
	// Currency overrides the configured valuation currency.
	Currency string
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Account, wsctlcmd.AccountFlagName, "", "The account number to show positions for (e.g., TFSA-001)")
	flagSet.BoolVar(&f.ByAccount, byAccountFlagName, false, "Group positions by account with per-account totals")
	flagSet.BoolVar(&f.Profits, profitsFlagName, false, "Show only positions with a gain")
	flagSet.BoolVar(&f.Losses, lossesFlagName, false, "Show only positions with a loss")
	flagSet.StringVar(&f.Currency, currencyFlagName, "", "The currency to value positions in (default from config, CAD)")
	flagSet.StringVar(&f.Format, wsctlcmd.FormatFlagName, "table", "Output format (table, csv, json)")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	pnlFilter, err := getPnLFilter(flags)
	if err != nil {
		return err
	}
	format, err := wsctlcmd.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	config, err := wsctlcmd.ReadConfig(container)
	if err != nil {
		return err
	}
	currency := config.Currency
	if flags.Currency != "" {
		currency = strings.ToUpper(flags.Currency)
	}
	client, err := wsctlcmd.NewClient(container, config)
	if err != nil {
		return err
	}
	accountID, err := wsctlcmd.GetAccountID(ctx, client, flags.Account)
	if err != nil {
		return err
	}
	return wsctlcmd.NewReporter(container, client).PrintAssets(
		ctx,
		wsctlassets.Options{
			AccountID: accountID,
			ByAccount: flags.ByAccount,
			Currency:  currency,
			PnLFilter: pnlFilter,
		},
		string(format),
	)
}

func getPnLFilter(flags *flags) (wsctlassets.PnLFilter, error) {
	switch {
	case flags.Profits && flags.Losses:
		return "", appcmd.NewInvalidArgumentErrorf("--%s and --%s are mutually exclusive", profitsFlagName, lossesFlagName)
	case flags.Profits:
		return wsctlassets.PnLFilterProfit, nil
	case flags.Losses:
		return wsctlassets.PnLFilterLoss, nil
	default:
		return wsctlassets.PnLFilterNone, nil
	}
}

// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package accounts implements the "accounts" command.
package accounts

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/wsctl/cmd/wsctl/internal/wsctlcmd"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlaccounts"
	"github.com/spf13/pflag"
)

const (
	showZeroFlagName   = "show-zero"
	liquidOnlyFlagName = "liquid-only"
	notLiquidFlagName  = "not-liquid"
)

// NewCommand returns a new accounts command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Display accounts with their net liquidation values",
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
	// ShowZero includes accounts with a zero balance.
	ShowZero bool
	// LiquidOnly excludes RRSP, LIRA, private equity, and private credit accounts.
	LiquidOnly bool
	// NotLiquid shows only RRSP, LIRA, private equity, and private credit accounts.
	NotLiquid bool
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.BoolVar(&f.ShowZero, showZeroFlagName, true, "Include accounts with a zero balance, --show-zero=false to hide them")
	flagSet.BoolVar(&f.LiquidOnly, liquidOnlyFlagName, false, "Exclude non-liquid accounts (RRSP, LIRA, private equity, private credit)")
	flagSet.BoolVar(&f.NotLiquid, notLiquidFlagName, false, "Show only non-liquid accounts (RRSP, LIRA, private equity, private credit)")
	flagSet.StringVar(&f.Format, wsctlcmd.FormatFlagName, "table", "Output format (table, csv, json)")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	if flags.LiquidOnly && flags.NotLiquid {
		return appcmd.NewInvalidArgumentErrorf("--%s and --%s are mutually exclusive", liquidOnlyFlagName, notLiquidFlagName)
	}
	format, err := wsctlcmd.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	config, err := wsctlcmd.ReadConfig(container)
	if err != nil {
		return err
	}
	client, err := wsctlcmd.NewClient(container, config)
	if err != nil {
		return err
	}
	return wsctlcmd.NewReporter(container, client).PrintAccounts(
		ctx,
		wsctlaccounts.Options{
			ShowZeroBalances: flags.ShowZero,
			LiquidOnly:       flags.LiquidOnly,
			NotLiquid:        flags.NotLiquid,
		},
		string(format),
	)
}

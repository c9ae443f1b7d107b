// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/wsctl/cmd/wsctl/internal/command/accounts"
	"github.com/bufdev/wsctl/cmd/wsctl/internal/command/activities"
	"github.com/bufdev/wsctl/cmd/wsctl/internal/command/assets"
	"github.com/bufdev/wsctl/cmd/wsctl/internal/command/config"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("wsctl"))
}

// newRootCommand creates the root wsctl command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Report Wealthsimple accounts, activities, and assets",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			accounts.NewCommand("accounts", builder),
			activities.NewCommand("activities", builder),
			assets.NewCommand("assets", builder),
			config.NewCommand("config", builder),
		},
	}
}

// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configvalidate implements the "config validate" command.
package configvalidate

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlconfig"
	"github.com/spf13/pflag"
)

// configDirFlagName is the flag name for the configuration directory.
const configDirFlagName = "config-dir"

// NewCommand returns a new config validate command that validates a configuration file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Validate the configuration file",
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
	// ConfigDir is the directory containing config.yaml.
	ConfigDir string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(
		&f.ConfigDir,
		configDirFlagName,
		"",
		"The directory containing config.yaml (default ~/.config/wsctl)",
	)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	configDirPath := flags.ConfigDir
	if configDirPath == "" {
		configDirPath = container.ConfigDirPath()
	}
	return wsctlconfig.ValidateConfig(configDirPath)
}

// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wsctlcmd provides shared wiring for wsctl report commands (reading
// config, getting the Wealthsimple token, constructing the client and reporter).
package wsctlcmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/wsctl/internal/pkg/cliio"
	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
	"github.com/bufdev/wsctl/internal/standard/xos"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlaccounts"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlconfig"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlreport"
)

const (
	// FormatFlagName is the flag name for the output format.
	FormatFlagName = "format"
	// AccountFlagName is the flag name for selecting an account by number.
	AccountFlagName = "account"
	// tokenEnvVar is the environment variable name for the Wealthsimple API token.
	tokenEnvVar = "WEALTHSIMPLE_TOKEN"
	// requestTimeout bounds a single API request, including reading the response.
	requestTimeout = 30 * time.Second
)

// Env is the environment lookup of an appext.Container.
type Env interface {
	Env(key string) string
}

// ParseFormat parses the --format flag value.
func ParseFormat(value string) (cliio.Format, error) {
	format, err := cliio.ParseFormat(value)
	if err != nil {
		return "", appcmd.NewInvalidArgumentErrorf("--%s: %v", FormatFlagName, err)
	}
	return format, nil
}

// ReadConfig reads the configuration file from the container's config
// directory, falling back to defaults if there is none.
func ReadConfig(container appext.Container) (*wsctlconfig.Config, error) {
	return wsctlconfig.ReadConfigOrDefault(container.ConfigDirPath())
}

// GetToken returns the API token from the environment, or from the configured token file.
func GetToken(env Env, config *wsctlconfig.Config) (string, error) {
	if token := env.Env(tokenEnvVar); token != "" {
		return token, nil
	}
	if config.TokenFilePath == "" {
		return "", fmt.Errorf("%s environment variable is required, set it to your Wealthsimple API token or set wealthsimple.token_file in the configuration file", tokenEnvVar)
	}
	token, err := xos.ReadSecretFile(config.TokenFilePath)
	if err != nil {
		return "", fmt.Errorf("reading token file: %w", err)
	}
	return token, nil
}

// NewClient constructs a Wealthsimple client from the appext container and config.
func NewClient(container appext.Container, config *wsctlconfig.Config) (wealthsimple.Client, error) {
	token, err := GetToken(container, config)
	if err != nil {
		return nil, err
	}
	return wealthsimple.NewClient(
		container.Logger(),
		token,
		wealthsimple.ClientWithURL(config.WealthsimpleURL),
		wealthsimple.ClientWithHTTPClient(&http.Client{Timeout: requestTimeout}),
	), nil
}

// NewReporter constructs a Reporter that prints to the container's stdout.
func NewReporter(container appext.Container, client wealthsimple.Client) *wsctlreport.Reporter {
	return wsctlreport.NewReporter(container.Logger(), client, container.Stdout())
}

// GetAccountID returns the ID of the account with the given number.
//
// Returns an empty ID if number is empty. An unknown number is an invalid argument.
func GetAccountID(ctx context.Context, client wealthsimple.Client, number string) (string, error) {
	if number == "" {
		return "", nil
	}
	accountID, ok, err := wsctlaccounts.FindAccountIDByNumber(ctx, client, number)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", appcmd.NewInvalidArgumentErrorf("--%s: no account with number %q", AccountFlagName, number)
	}
	if accountID == "" {
		return "", fmt.Errorf("account %q has no ID", number)
	}
	return accountID, nil
}

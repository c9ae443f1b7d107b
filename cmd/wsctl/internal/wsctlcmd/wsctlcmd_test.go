// Copyright 2026 Peter Edge
//
// All rights reserved.

package wsctlcmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bufdev/wsctl/internal/pkg/cliio"
	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
	"github.com/bufdev/wsctl/internal/pkg/wealthsimple/wealthsimpletesting"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlconfig"
	"github.com/stretchr/testify/require"
)

func TestGetToken(t *testing.T) {
	t.Parallel()
	tokenFilePath := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenFilePath, []byte("file-token\n"), 0o600))

	token, err := GetToken(testEnv{tokenEnvVar: "env-token"}, &wsctlconfig.Config{TokenFilePath: tokenFilePath})
	require.NoError(t, err)
	require.Equal(t, "env-token", token)

	token, err = GetToken(testEnv{}, &wsctlconfig.Config{TokenFilePath: tokenFilePath})
	require.NoError(t, err)
	require.Equal(t, "file-token", token)

	_, err = GetToken(testEnv{}, wsctlconfig.NewDefaultConfig())
	require.ErrorContains(t, err, tokenEnvVar)

	_, err = GetToken(testEnv{}, &wsctlconfig.Config{TokenFilePath: filepath.Join(t.TempDir(), "missing")})
	require.ErrorContains(t, err, "reading token file")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	format, err := ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, cliio.FormatJSON, format)
	_, err = ParseFormat("xml")
	require.ErrorContains(t, err, "--format")
}

func TestGetAccountID(t *testing.T) {
	t.Parallel()
	client := &wealthsimpletesting.FakeClient{
		Accounts: []wealthsimple.Account{
			{ID: "acc-tfsa", Description: "TFSA", Number: "TFSA-001"},
			{Description: "Closed", Number: "OLD-001"},
		},
	}
	ctx := context.Background()
	accountID, err := GetAccountID(ctx, client, "")
	require.NoError(t, err)
	require.Empty(t, accountID)
	require.Equal(t, 0, client.GetAccountsCalls)

	accountID, err = GetAccountID(ctx, client, "TFSA-001")
	require.NoError(t, err)
	require.Equal(t, "acc-tfsa", accountID)

	_, err = GetAccountID(ctx, client, "RRSP-001")
	require.ErrorContains(t, err, "RRSP-001")

	_, err = GetAccountID(ctx, client, "OLD-001")
	require.EqualError(t, err, `account "OLD-001" has no ID`)
}

type testEnv map[string]string

func (e testEnv) Env(key string) string {
	return e[key]
}

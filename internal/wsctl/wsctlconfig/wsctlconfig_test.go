// Copyright 2026 Peter Edge
//
// All rights reserved.

package wsctlconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitConfigTemplateIsValid(t *testing.T) {
	t.Parallel()
	configDirPath := filepath.Join(t.TempDir(), "wsctl")
	filePath, err := InitConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(configDirPath, ConfigFileName), filePath)
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, NewDefaultConfig(), config)
	require.NoError(t, ValidateConfig(configDirPath))

	_, err = InitConfig(configDirPath)
	require.ErrorContains(t, err, "already exists")
}

func TestReadConfig(t *testing.T) {
	t.Parallel()
	configDirPath := t.TempDir()
	writeTestConfig(t, configDirPath, `version: v1
wealthsimple:
  url: http://localhost:8080/graphql
  token_file: ~/.wstoken
currency: usd
activities:
  limit: 0
`)
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(
		t,
		&Config{
			WealthsimpleURL: "http://localhost:8080/graphql",
			TokenFilePath:   "~/.wstoken",
			Currency:        "USD",
			ActivitiesLimit: 0,
		},
		config,
	)
}

func TestReadConfigErrors(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		name          string
		data          string
		expectedError string
	}{
		{
			name:          "missing_version",
			data:          "currency: CAD\n",
			expectedError: "unsupported config version",
		},
		{
			name:          "unknown_field",
			data:          "version: v1\nibkr:\n  query_id: \"1\"\n",
			expectedError: "could not unmarshal as YAML",
		},
		{
			name:          "relative_url",
			data:          "version: v1\nwealthsimple:\n  url: /graphql\n",
			expectedError: "wealthsimple.url",
		},
		{
			name:          "bad_currency",
			data:          "version: v1\ncurrency: dollars\n",
			expectedError: "currency",
		},
		{
			name:          "negative_limit",
			data:          "version: v1\nactivities:\n  limit: -1\n",
			expectedError: "activities.limit",
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			configDirPath := t.TempDir()
			writeTestConfig(t, configDirPath, testCase.data)
			_, err := ReadConfig(configDirPath)
			require.ErrorContains(t, err, testCase.expectedError)
		})
	}
}

func TestReadConfigOrDefault(t *testing.T) {
	t.Parallel()
	configDirPath := t.TempDir()
	config, err := ReadConfigOrDefault(configDirPath)
	require.NoError(t, err)
	require.Equal(t, NewDefaultConfig(), config)
	_, err = ReadConfig(configDirPath)
	require.ErrorContains(t, err, "wsctl config init")
	require.Error(t, ValidateConfig(configDirPath))

	writeTestConfig(t, configDirPath, "version: v2\n")
	_, err = ReadConfigOrDefault(configDirPath)
	require.Error(t, err)
}

func writeTestConfig(t *testing.T, configDirPath string, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(ConfigFilePath(configDirPath), []byte(data), 0o600))
}

// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package wsctlconfig provides configuration parsing and validation for wsctl.
//
// Configuration is stored at ~/.config/wsctl/config.yaml (or $WSCTL_CONFIG_DIR/config.yaml).
// The configuration file is optional: without one, defaults are used.
package wsctlconfig

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bufdev/wsctl/internal/pkg/wealthsimple"
	"github.com/bufdev/wsctl/internal/wsctl/wsctlactivities"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the configuration file within the config directory.
const ConfigFileName = "config.yaml"

// currencyRegexp matches ISO 4217 currency codes.
var currencyRegexp = regexp.MustCompile(`^[A-Z]{3}$`)

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# Wealthsimple API configuration.
#
# The API token is read from the WEALTHSIMPLE_TOKEN environment variable.
# If it is not set, the token is read from token_file.
wealthsimple:
  # The GraphQL endpoint.
  #
  # Optional. Defaults to https://my.wealthsimple.com/graphql.
  # url: https://my.wealthsimple.com/graphql
  # A file containing the API token. A leading ~ is expanded.
  #
  # Optional.
  # token_file: ~/.config/wsctl/token
# The currency positions are valued in.
#
# Optional. Defaults to CAD.
currency: CAD
# Activities report configuration.
activities:
  # The maximum number of activities shown per account. 0 means no limit.
  #
  # Optional. Defaults to 50.
  limit: 50
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// Wealthsimple holds the API configuration.
	Wealthsimple ExternalWealthsimpleConfig `yaml:"wealthsimple"`
	// Currency is the currency positions are valued in.
	Currency string `yaml:"currency"`
	// Activities holds the activities report configuration.
	Activities ExternalActivitiesConfig `yaml:"activities"`
}

// ExternalWealthsimpleConfig holds Wealthsimple API configuration.
type ExternalWealthsimpleConfig struct {
	// URL is the GraphQL endpoint.
	URL string `yaml:"url"`
	// TokenFile is a file containing the API token.
	TokenFile string `yaml:"token_file"`
}

// ExternalActivitiesConfig holds activities report configuration.
type ExternalActivitiesConfig struct {
	// Limit is the maximum number of activities per account. Nil means the default.
	Limit *int `yaml:"limit"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// WealthsimpleURL is the GraphQL endpoint.
	WealthsimpleURL string
	// TokenFilePath is the file containing the API token, or empty.
	//
	// A leading ~ is not yet expanded.
	TokenFilePath string
	// Currency is the currency positions are valued in.
	Currency string
	// ActivitiesLimit is the maximum number of activities per account. Zero means no limit.
	ActivitiesLimit int
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	wealthsimpleURL := wealthsimple.DefaultURL
	if externalConfig.Wealthsimple.URL != "" {
		parsedURL, err := url.Parse(externalConfig.Wealthsimple.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid wealthsimple.url: %w", err)
		}
		if (parsedURL.Scheme != "https" && parsedURL.Scheme != "http") || parsedURL.Host == "" {
			return nil, fmt.Errorf("wealthsimple.url must be an absolute http or https URL, got %q", externalConfig.Wealthsimple.URL)
		}
		wealthsimpleURL = externalConfig.Wealthsimple.URL
	}
	currency := wealthsimple.DefaultCurrency
	if externalConfig.Currency != "" {
		currency = strings.ToUpper(externalConfig.Currency)
		if !currencyRegexp.MatchString(currency) {
			return nil, fmt.Errorf("currency must be a three-letter currency code, got %q", externalConfig.Currency)
		}
	}
	activitiesLimit := wsctlactivities.DefaultLimit
	if externalConfig.Activities.Limit != nil {
		activitiesLimit = *externalConfig.Activities.Limit
		if activitiesLimit < 0 {
			return nil, errors.New("activities.limit must not be negative")
		}
	}
	return &Config{
		WealthsimpleURL: wealthsimpleURL,
		TokenFilePath:   externalConfig.Wealthsimple.TokenFile,
		Currency:        currency,
		ActivitiesLimit: activitiesLimit,
	}, nil
}

// NewDefaultConfig returns the Config used when no configuration file exists.
func NewDefaultConfig() *Config {
	return &Config{
		WealthsimpleURL: wealthsimple.DefaultURL,
		Currency:        wealthsimple.DefaultCurrency,
		ActivitiesLimit: wsctlactivities.DefaultLimit,
	}
}

// ConfigFilePath returns the path to the configuration file within the given config directory.
func ConfigFilePath(configDirPath string) string {
	return filepath.Join(configDirPath, ConfigFileName)
}

// ReadConfig reads and validates the configuration file from the given config directory.
// Returns a clear error message directing users to run "wsctl config init" if the file is missing.
func ReadConfig(configDirPath string) (*Config, error) {
	filePath := ConfigFilePath(configDirPath)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found at %s, run \"wsctl config init\" to create one", filePath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	config, err := NewConfig(externalConfig)
	if err != nil {
		return nil, fmt.Errorf("validating config file %s: %w", filePath, err)
	}
	return config, nil
}

// ReadConfigOrDefault reads the configuration file from the given config
// directory, returning the default Config if the file does not exist.
func ReadConfigOrDefault(configDirPath string) (*Config, error) {
	if _, err := os.Stat(ConfigFilePath(configDirPath)); os.IsNotExist(err) {
		return NewDefaultConfig(), nil
	}
	return ReadConfig(configDirPath)
}

// InitConfig creates a new configuration file with a documented template.
// Creates the config directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(configDirPath string) (string, error) {
	filePath := ConfigFilePath(configDirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	if err := os.MkdirAll(configDirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfig reads and validates the configuration file from the given config directory.
func ValidateConfig(configDirPath string) error {
	_, err := ReadConfig(configDirPath)
	return err
}

// *** PRIVATE ***

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}

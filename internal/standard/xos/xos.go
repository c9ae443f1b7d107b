// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package xos provides extensions to the standard os package.
package xos

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading ~ in a path to the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[1:]), nil
}

// ReadSecretFile reads a single-value secret such as an API token from path.
//
// A leading ~ is expanded and surrounding whitespace is trimmed.
// An empty file is an error.
func ReadSecretFile(path string) (string, error) {
	expandedPath, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		return "", err
	}
	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", errors.New("file " + expandedPath + " is empty")
	}
	return secret, nil
}

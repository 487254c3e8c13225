// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is a single name/value pair of the configuration surface. Values are
// uninterpreted strings; an empty value is valid.
type Entry struct {
	Name  string
	Value string
}

// Export binds entries into the process environment so that later-initialized
// code (and child processes) observes them through standard environment
// lookup.
//
// Values are set verbatim, byte for byte. Entries are applied in order, so a
// duplicated name resolves to its last assignment. Variables not named in
// entries are left untouched. The operation is idempotent: re-running it
// yields the same environment state.
func Export(entries []Entry) error {
	for _, e := range entries {
		if err := os.Setenv(e.Name, e.Value); err != nil {
			return fmt.Errorf("error exporting %s: %w", e.Name, err)
		}
	}

	return nil
}

// LoadEnvFile parses a KEY=VALUE environment file into entries, preserving
// file order.
//
// The format matches what deployments historically sourced as a shell
// fragment: blank lines and lines starting with '#' are skipped, an optional
// leading "export " is stripped, and a value wrapped in matching single or
// double quotes loses the quotes. No other interpretation is applied; values
// keep their bytes exactly.
func LoadEnvFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening env file: %w", err)
	}
	defer file.Close()

	var entries []Entry

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		name, value, found := strings.Cut(line, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("malformed line %d in %s", lineNo, path)
		}

		entries = append(entries, Entry{
			Name:  strings.TrimSpace(name),
			Value: unquote(value),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading env file: %w", err)
	}

	return entries, nil
}

// EnvFileVar names an optional environment file to export at startup. It
// replaces sourcing the file as a shell fragment before launching a binary.
const EnvFileVar = "TESTGEN_ENV_FILE"

// Bootstrap exports the environment file named by TESTGEN_ENV_FILE, looked up
// through provider. When the variable is unset or blank there is nothing to
// do and Bootstrap returns nil. It runs before any configuration is parsed,
// so the exported values are visible to every later lookup.
func Bootstrap(provider Provider) error {
	path, ok := provider.Get(EnvFileVar)
	if !ok || strings.TrimSpace(path) == "" {
		return nil
	}

	return ExportFile(path)
}

// ExportFile loads an environment file and exports its entries.
func ExportFile(path string) error {
	entries, err := LoadEnvFile(path)
	if err != nil {
		return err
	}

	return Export(entries)
}

// unquote strips one pair of matching surrounding quotes, if present.
func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}

	return value
}

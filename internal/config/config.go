// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container of the
// launcher. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Project holds explicit overrides for the launch configuration of the
	// embedded runtime. Empty fields mean "derive the default".
	Project Project `envPrefix:"PROJECT_"`

	// Log controls the diagnostic logger.
	Log Log `envPrefix:"LOG_"`

	// Output controls how the resulting launch plan is reported.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Project holds overrides applied to a freshly created project.Project.
type Project struct {
	// AOTLibraryPath overrides the location of the AOT compiled library.
	// Env: PROJECT_AOT_LIBRARY_PATH
	AOTLibraryPath string `env:"AOT_LIBRARY_PATH"`

	// AssetsPath overrides the location of the bundled assets directory.
	// Env: PROJECT_ASSETS_PATH
	AssetsPath string `env:"ASSETS_PATH"`

	// ICUDataPath overrides the location of the ICU data table.
	// Env: PROJECT_ICU_DATA_PATH
	ICUDataPath string `env:"ICU_DATA_PATH"`

	// EnableMirrors turns on the deprecated dart:mirrors support.
	// Env: PROJECT_ENABLE_MIRRORS
	EnableMirrors bool `env:"ENABLE_MIRRORS"`

	// EntrypointArgs are forwarded to the Dart entrypoint. A nil slice
	// means no arguments were configured.
	// Env: PROJECT_ENTRYPOINT_ARGS (comma separated)
	EntrypointArgs []string `env:"ENTRYPOINT_ARGS"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File, when set, redirects log output to the given file.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Output formats accepted by [Output.Format].
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Output controls how the launch plan is printed.
type Output struct {
	// Format is either [OutputFormatText] or [OutputFormatJSON].
	// Env: OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// CheckArtifacts makes the launcher verify that every artifact exists.
	// Env: OUTPUT_CHECK_ARTIFACTS
	CheckArtifacts bool `env:"CHECK_ARTIFACTS"`
}

// GetStructuredConfig loads, merges, and validates the launcher
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Log: Log{
			Level: "info",
		},
		Output: Output{
			Format: OutputFormatText,
		},
	}
}

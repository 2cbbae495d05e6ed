// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains plain data types shared between the launcher
// packages and the command-line entry point.
package models

// LaunchPlan is the fully resolved description of a single runtime launch.
// It is what the embedding layer hands to the engine.
type LaunchPlan struct {
	// ID uniquely identifies the launch in logs.
	ID string `json:"id"`

	AOTLibraryPath string `json:"aot_library_path"`
	AssetsPath     string `json:"assets_path"`
	ICUDataPath    string `json:"icu_data_path"`

	// EnableMirrors mirrors the deprecated project flag.
	EnableMirrors bool `json:"enable_mirrors"`

	// EngineSwitches are the "--"-prefixed switches taken from the
	// environment, in index order.
	EngineSwitches []string `json:"engine_switches"`

	// CommandLine is the argv handed to the engine: a fixed program name
	// followed by EngineSwitches.
	CommandLine []string `json:"command_line"`

	// EntrypointArgs is nil when no arguments were configured and an empty
	// slice when they were configured as empty; JSON keeps the difference
	// as null versus [].
	EntrypointArgs []string `json:"entrypoint_args"`
}

// HasEntrypointArgs reports whether entrypoint arguments were configured.
func (p LaunchPlan) HasEntrypointArgs() bool {
	return p.EntrypointArgs != nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package project

import "strconv"

const (
	// SwitchCountVariable holds the number of indexed switch variables.
	SwitchCountVariable = "FLUTTER_ENGINE_SWITCHES"

	// SwitchVariablePrefix is followed by a 1-based index, e.g.
	// FLUTTER_ENGINE_SWITCH_1.
	SwitchVariablePrefix = "FLUTTER_ENGINE_SWITCH_"

	// MaxEngineSwitches caps the number of indices inspected for a single
	// call, whatever the count variable says.
	MaxEngineSwitches = 4096

	switchPrefix = "--"
)

// EngineSwitches returns the engine switches configured through env.
//
// The count is read from [SwitchCountVariable]; a missing or malformed
// count yields no switches. For every index from 1 to the count the value
// of SwitchVariablePrefix+index is turned into "--"+value without any
// escaping. Missing indices are skipped, so fewer switches than the count
// may be returned. Counts above [MaxEngineSwitches] are clamped to it, so at
// most that many indices are read. The result is never nil.
//
// Release builds (built with -tags release) always return an empty list
// and do not read env at all.
//
// Switches are not stored on the Project: every call reflects env as it
// is at that moment.
func (p *Project) EngineSwitches(env Environment) []string {
	if !engineSwitchesEnabled || env == nil {
		return []string{}
	}

	return engineSwitches(env)
}

func engineSwitches(env Environment) []string {
	raw, ok := env.LookupEnv(SwitchCountVariable)
	if !ok {
		return []string{}
	}

	count, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return []string{}
	}
	count = min(count, MaxEngineSwitches)

	switches := make([]string, 0, count)
	for i := uint64(1); i <= count; i++ {
		value, ok := env.LookupEnv(SwitchVariablePrefix + strconv.FormatUint(i, 10))
		if !ok {
			continue
		}
		switches = append(switches, switchPrefix+value)
	}

	return switches
}

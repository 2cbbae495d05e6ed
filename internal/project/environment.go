// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package project

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// OSEnvironment reads the environment of the current process.
type OSEnvironment struct{}

// LookupEnv implements [Environment] on top of os.LookupEnv.
func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment is an [Environment] backed by a map.
type MapEnvironment map[string]string

// NewMapEnvironment builds a MapEnvironment from KEY=VALUE pairs in the
// format returned by os.Environ.
func NewMapEnvironment(environ []string) MapEnvironment {
	return MapEnvironment(env.ToMap(environ))
}

// LookupEnv implements [Environment].
func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

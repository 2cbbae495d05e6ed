// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package project

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	libDir  = "lib"
	dataDir = "data"

	assetsDirName = "flutter_assets"
	icuDataName   = "icudtl.dat"
)

// executablePath returns the absolute path of the running binary with all
// symbolic links evaluated. Errors wrap [ErrPathResolution].
func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathResolution, err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("%w: evaluate symlinks of %q: %w", ErrPathResolution, exe, err)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: absolute path of %q: %w", ErrPathResolution, resolved, err)
	}

	return abs, nil
}

// derivedPath joins elem onto the directory that holds the executable.
// It reads but never modifies the project.
func (p *Project) derivedPath(elem ...string) (string, error) {
	if p.executableErr != nil {
		return "", p.executableErr
	}

	parts := make([]string, 0, len(elem)+1)
	parts = append(parts, filepath.Dir(p.executablePath))
	parts = append(parts, elem...)

	return filepath.Join(parts...), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package project

// Project is the launch configuration of an embedded Dart runtime.
//
// The zero value is not usable; construct it with [New].
type Project struct {
	aotLibraryPath *string
	assetsPath     *string
	icuDataPath    *string

	enableMirrors bool

	entrypointArgs    []string
	entrypointArgsSet bool

	// executablePath is resolved once in New and anchors all derived paths.
	executablePath string
	executableErr  error
}

// New returns a Project whose paths are derived from the location of the
// running executable. A failure to locate the executable is not reported
// here: it is returned by the accessors of paths that have no override.
func New() *Project {
	return newProject(executablePath)
}

func newProject(resolve func() (string, error)) *Project {
	exe, err := resolve()

	return &Project{
		executablePath: exe,
		executableErr:  err,
	}
}

// AOTLibraryPath returns the path of the AOT compiled application library.
func (p *Project) AOTLibraryPath() (string, error) {
	if p.aotLibraryPath != nil {
		return *p.aotLibraryPath, nil
	}

	return p.derivedPath(libDir, aotLibraryName)
}

// SetAOTLibraryPath overrides the AOT library location.
func (p *Project) SetAOTLibraryPath(path string) {
	p.aotLibraryPath = &path
}

// AssetsPath returns the path of the bundled assets directory.
func (p *Project) AssetsPath() (string, error) {
	if p.assetsPath != nil {
		return *p.assetsPath, nil
	}

	return p.derivedPath(dataDir, assetsDirName)
}

// SetAssetsPath overrides the assets directory location.
func (p *Project) SetAssetsPath(path string) {
	p.assetsPath = &path
}

// ICUDataPath returns the path of the ICU data table.
func (p *Project) ICUDataPath() (string, error) {
	if p.icuDataPath != nil {
		return *p.icuDataPath, nil
	}

	return p.derivedPath(dataDir, icuDataName)
}

// SetICUDataPath overrides the ICU data location.
func (p *Project) SetICUDataPath(path string) {
	p.icuDataPath = &path
}

// EnableMirrors reports whether the dart:mirrors library is enabled.
//
// Deprecated: mirrors are not supported by the AOT runtime and the flag has
// no effect on the other settings.
func (p *Project) EnableMirrors() bool {
	return p.enableMirrors
}

// SetEnableMirrors toggles dart:mirrors support.
//
// Deprecated: see [Project.EnableMirrors].
func (p *Project) SetEnableMirrors(enabled bool) {
	p.enableMirrors = enabled
}

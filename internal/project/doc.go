// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package project describes how an embedded Dart runtime is launched.
//
// A [Project] carries the locations of the three runtime artifacts (the AOT
// compiled library, the bundled assets directory and the ICU data table),
// the deprecated mirrors toggle, the arguments handed to the Dart
// entrypoint, and produces the list of low-level engine switches from the
// environment.
//
// Paths that are not set explicitly are derived from the directory of the
// running executable:
//
//	<exe dir>/lib/libapp.so          AOT library (platform specific name)
//	<exe dir>/data/flutter_assets    assets
//	<exe dir>/data/icudtl.dat        ICU data
//
// A Project is built once on the startup goroutine, optionally adjusted with
// setters and then only read. It performs no locking.
package project

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package launcher turns configuration into a resolved launch plan.
//
// It builds a project.Project from config overrides, resolves every
// artifact path, collects engine switches from the environment and, on
// request, verifies that the artifacts are present on disk.
package launcher

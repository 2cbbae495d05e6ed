// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders launch plans for humans.
package view

import (
	"strings"

	"github.com/MKhiriev/go-dart-project/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderPlan returns a boxed, multi-line summary of plan.
func RenderPlan(plan models.LaunchPlan) string {
	mirrors := "disabled"
	if plan.EnableMirrors {
		mirrors = "enabled (deprecated)"
	}

	rows := []string{
		titleStyle.Render("Launch " + plan.ID),
		"",
		row("AOT library", valueStyle.Render(plan.AOTLibraryPath)),
		row("Assets", valueStyle.Render(plan.AssetsPath)),
		row("ICU data", valueStyle.Render(plan.ICUDataPath)),
		row("Mirrors", valueStyle.Render(mirrors)),
		row("Engine argv", valueStyle.Render(strings.Join(plan.CommandLine, " "))),
		row("Entrypoint", entrypoint(plan)),
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func entrypoint(plan models.LaunchPlan) string {
	switch {
	case !plan.HasEntrypointArgs():
		return noteStyle.Render("not configured")
	case len(plan.EntrypointArgs) == 0:
		return noteStyle.Render("no arguments")
	default:
		return valueStyle.Render(strings.Join(plan.EntrypointArgs, " "))
	}
}

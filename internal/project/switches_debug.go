//go:build !release

package project

const engineSwitchesEnabled = true

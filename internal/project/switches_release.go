//go:build release

package project

// Release builds never expose environment driven engine switches.
const engineSwitchesEnabled = false

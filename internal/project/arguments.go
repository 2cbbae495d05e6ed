package project

import "slices"

// SetEntrypointArguments stores a copy of args as the arguments passed to
// the Dart entrypoint, replacing any previous value. The caller keeps
// ownership of args and may modify it afterwards.
//
// A nil or empty args is stored as "configured with no arguments", which
// [Project.EntrypointArguments] distinguishes from never configured.
func (p *Project) SetEntrypointArguments(args []string) {
	stored := make([]string, len(args))
	copy(stored, args)

	p.entrypointArgs = stored
	p.entrypointArgsSet = true
}

// EntrypointArguments returns a copy of the configured entrypoint
// arguments. The second result is false if they were never set.
func (p *Project) EntrypointArguments() ([]string, bool) {
	if !p.entrypointArgsSet {
		return nil, false
	}

	args := slices.Clone(p.entrypointArgs)
	if args == nil {
		args = []string{}
	}

	return args, true
}

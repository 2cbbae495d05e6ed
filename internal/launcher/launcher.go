// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package launcher

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dart-project/internal/config"
	"github.com/MKhiriev/go-dart-project/internal/logger"
	"github.com/MKhiriev/go-dart-project/internal/project"
	"github.com/MKhiriev/go-dart-project/models"
	"github.com/rs/zerolog"
)

// EngineProgramName is argv[0] of the engine command line.
const EngineProgramName = "flutter"

// Launcher resolves a project into a [models.LaunchPlan].
type Launcher struct {
	project *project.Project
	env     project.Environment
	ids     IDGenerator

	logger *logger.Logger
}

// NewProject creates a project.Project and applies the non-empty overrides
// from cfg. Entrypoint arguments are only set when configured, so that
// "not configured" survives into the project.
func NewProject(cfg config.Project) *project.Project {
	p := project.New()

	if cfg.AOTLibraryPath != "" {
		p.SetAOTLibraryPath(cfg.AOTLibraryPath)
	}
	if cfg.AssetsPath != "" {
		p.SetAssetsPath(cfg.AssetsPath)
	}
	if cfg.ICUDataPath != "" {
		p.SetICUDataPath(cfg.ICUDataPath)
	}
	if cfg.EnableMirrors {
		p.SetEnableMirrors(true)
	}
	if cfg.EntrypointArgs != nil {
		p.SetEntrypointArguments(cfg.EntrypointArgs)
	}

	return p
}

// New returns a Launcher for p. Engine switches are read from env.
func New(p *project.Project, env project.Environment, ids IDGenerator, log *logger.Logger) (*Launcher, error) {
	if p == nil {
		return nil, ErrNilProject
	}
	if log == nil {
		log = logger.Nop()
	}
	if env == nil {
		env = project.OSEnvironment{}
	}
	if ids == nil {
		ids = NewUUIDGenerator()
	}

	return &Launcher{
		project: p,
		env:     env,
		ids:     ids,
		logger:  log,
	}, nil
}

// Plan resolves every setting of the project. It fails only if a path has
// no override and the executable location is unknown; the error then wraps
// project.ErrPathResolution.
//
// Diagnostics go to the logger attached to ctx, or to the launcher's own
// logger when ctx carries none.
func (l *Launcher) Plan(ctx context.Context) (models.LaunchPlan, error) {
	id := l.ids.Generate()
	log := l.planLogger(ctx, id)

	aotLibraryPath, err := l.project.AOTLibraryPath()
	if err != nil {
		return models.LaunchPlan{}, fmt.Errorf("resolve aot library path: %w", err)
	}

	assetsPath, err := l.project.AssetsPath()
	if err != nil {
		return models.LaunchPlan{}, fmt.Errorf("resolve assets path: %w", err)
	}

	icuDataPath, err := l.project.ICUDataPath()
	if err != nil {
		return models.LaunchPlan{}, fmt.Errorf("resolve icu data path: %w", err)
	}

	switches := l.project.EngineSwitches(l.env)

	commandLine := make([]string, 0, len(switches)+1)
	commandLine = append(commandLine, EngineProgramName)
	commandLine = append(commandLine, switches...)

	// nil means "never configured".
	entrypointArgs, _ := l.project.EntrypointArguments()

	plan := models.LaunchPlan{
		ID:             id,
		AOTLibraryPath: aotLibraryPath,
		AssetsPath:     assetsPath,
		ICUDataPath:    icuDataPath,
		EnableMirrors:  l.project.EnableMirrors(),
		EngineSwitches: switches,
		CommandLine:    commandLine,
		EntrypointArgs: entrypointArgs,
	}

	log.Debug().
		Str("aot_library_path", plan.AOTLibraryPath).
		Str("assets_path", plan.AssetsPath).
		Str("icu_data_path", plan.ICUDataPath).
		Strs("engine_switches", plan.EngineSwitches).
		Bool("entrypoint_args_set", plan.HasEntrypointArgs()).
		Msg("launch plan resolved")

	if plan.EnableMirrors {
		log.Warn().Msg("dart:mirrors is deprecated and ignored by AOT builds")
	}

	return plan, nil
}

// planLogger returns a child of the context logger, or of l.logger if ctx
// has none, tagged with the launch id.
func (l *Launcher) planLogger(ctx context.Context, id string) *logger.Logger {
	base := logger.FromContext(ctx)
	if base.GetLevel() == zerolog.Disabled {
		base = l.logger
	}

	child := base.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("launch_id", id)
	})

	return child
}

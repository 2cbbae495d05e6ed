package main

import (
	"context"
	"encoding/json"
	"io"
	"fmt"
	"os"

	"github.com/MKhiriev/go-dart-project/internal/config"
	"github.com/MKhiriev/go-dart-project/internal/launcher"
	"github.com/MKhiriev/go-dart-project/internal/logger"
	"github.com/MKhiriev/go-dart-project/internal/project"
	"github.com/MKhiriev/go-dart-project/internal/view"
	"github.com/MKhiriev/go-dart-project/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Fprintln(os.Stderr, buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("dart-launcher").Fatal().Err(err).Msg("error getting configs")
	}

	log, closer := newLogger(cfg.Log)
	if closer != nil {
		// log.Fatal exits without running defers; file writes are unbuffered.
		defer closer.Close()
	}

	log.Debug().Any("config", cfg).Str("version", buildInfo.Version).Msg("received configs")

	l, err := launcher.New(launcher.NewProject(cfg.Project), project.NewMapEnvironment(os.Environ()), launcher.NewUUIDGenerator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create launcher")
	}

	ctx := log.WithContext(context.Background())
	plan, err := l.Plan(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve launch plan; set explicit paths if the executable cannot be located")
	}

	if cfg.Output.CheckArtifacts {
		if err = launcher.CheckArtifacts(plan); err != nil {
			log.Fatal().Err(err).Str("launch_id", plan.ID).Msg("artifact check failed")
		}
	}

	if err = printPlan(plan, cfg.Output.Format); err != nil {
		log.Fatal().Err(err).Msg("print launch plan")
	}
}

func newLogger(cfg config.Log) (*logger.Logger, io.Closer) {
	log := logger.NewLogger("dart-launcher")
	var closer io.Closer
	if cfg.File != "" {
		log, closer = logger.NewFileLogger("dart-launcher", cfg.File)
	}

	leveled, err := log.WithLevel(cfg.Level)
	if err != nil {
		log.Warn().Err(err).Str("level", cfg.Level).Msg("unknown log level, keeping default")
	}

	return leveled, closer
}

func printPlan(plan models.LaunchPlan, format string) error {
	if format == config.OutputFormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	_, err := fmt.Println(view.RenderPlan(plan))
	return err
}

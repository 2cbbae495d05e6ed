package config

import (
	"flag"
	"slices"
)

// ParseFlags parses all configuration flags from the process command line.
// Positional arguments left after the flags become the Dart entrypoint
// arguments; use "--" to pass arguments that start with a dash.
//
// Flags:
//
//	-aot-library     AOT compiled library path
//	-assets          assets directory path
//	-icu-data        ICU data file path
//	-enable-mirrors  enable dart:mirrors (deprecated)
//	-log-level       log level (debug, info, warn, error)
//	-log-file        write logs to a file
//	-o               output format (text, json)
//	-check           verify that all artifacts exist
//	-c/-config       json file path with configs
func ParseFlags() *StructuredConfig {
	var aotLibraryPath string
	var assetsPath string
	var icuDataPath string
	var enableMirrors bool
	var logLevel string
	var logFile string
	var outputFormat string
	var checkArtifacts bool
	var jsonConfigPath string

	flag.StringVar(&aotLibraryPath, "aot-library", "", "AOT compiled library path")
	flag.StringVar(&assetsPath, "assets", "", "Assets directory path")
	flag.StringVar(&icuDataPath, "icu-data", "", "ICU data file path")
	flag.BoolVar(&enableMirrors, "enable-mirrors", false, "Enable dart:mirrors (deprecated)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&outputFormat, "o", "", "Output format (text, json)")
	flag.BoolVar(&checkArtifacts, "check", false, "Verify that all artifacts exist")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	var entrypointArgs []string
	if flag.NArg() > 0 {
		entrypointArgs = slices.Clone(flag.Args())
	}

	return &StructuredConfig{
		Project: Project{
			AOTLibraryPath: aotLibraryPath,
			AssetsPath:     assetsPath,
			ICUDataPath:    icuDataPath,
			EnableMirrors:  enableMirrors,
			EntrypointArgs: entrypointArgs,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Output: Output{
			Format:         outputFormat,
			CheckArtifacts: checkArtifacts,
		},
		JSONFilePath: jsonConfigPath,
	}
}

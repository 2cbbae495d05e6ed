package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetCommandLine installs a fresh flag set and simulates the given
// command-line arguments for the duration of the test.
func resetCommandLine(t *testing.T, args ...string) {
	t.Helper()

	oldCommandLine := flag.CommandLine
	oldArgs := os.Args
	t.Cleanup(func() {
		flag.CommandLine = oldCommandLine
		os.Args = oldArgs
	})

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = append([]string{"cmd"}, args...)
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-aot-library", "/opt/app/lib/libapp.so",
				"-assets", "/opt/app/data/flutter_assets",
				"-icu-data", "/opt/app/data/icudtl.dat",
				"-enable-mirrors",
				"-log-level", "debug",
				"-log-file", "/tmp/launcher.log",
				"-o", "json",
				"-check",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/opt/app/lib/libapp.so", cfg.Project.AOTLibraryPath)
				assert.Equal(t, "/opt/app/data/flutter_assets", cfg.Project.AssetsPath)
				assert.Equal(t, "/opt/app/data/icudtl.dat", cfg.Project.ICUDataPath)
				assert.True(t, cfg.Project.EnableMirrors)
				assert.Nil(t, cfg.Project.EntrypointArgs)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "/tmp/launcher.log", cfg.Log.File)
				assert.Equal(t, "json", cfg.Output.Format)
				assert.True(t, cfg.Output.CheckArtifacts)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "positional arguments become entrypoint arguments",
			args: []string{
				"-assets", "/a", "first", "second",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/a", cfg.Project.AssetsPath)
				assert.Equal(t, []string{"first", "second"}, cfg.Project.EntrypointArgs)
			},
		},
		{
			name: "double dash keeps dashed arguments",
			args: []string{
				"--", "--dart-flag", "-x",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, []string{"--dart-flag", "-x"}, cfg.Project.EntrypointArgs)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCommandLine(t, tt.args...)

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_EntrypointArgsAreCopied verifies that the returned slice does
// not share storage with os.Args.
func TestParseFlags_EntrypointArgsAreCopied(t *testing.T) {
	resetCommandLine(t, "one", "two")

	cfg := ParseFlags()
	os.Args[1] = "changed"

	assert.Equal(t, []string{"one", "two"}, cfg.Project.EntrypointArgs)
}

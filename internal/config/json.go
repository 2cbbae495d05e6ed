package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	Project struct {
		AOTLibraryPath string   `json:"aot_library_path"`
		AssetsPath     string   `json:"assets_path"`
		ICUDataPath    string   `json:"icu_data_path"`
		EnableMirrors  bool     `json:"enable_mirrors"`
		EntrypointArgs []string `json:"entrypoint_args,omitempty"`
	} `json:"project,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`

	Output struct {
		Format         string `json:"format"`
		CheckArtifacts bool   `json:"check_artifacts"`
	} `json:"output,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Project: Project{
			AOTLibraryPath: jsonCfg.Project.AOTLibraryPath,
			AssetsPath:     jsonCfg.Project.AssetsPath,
			ICUDataPath:    jsonCfg.Project.ICUDataPath,
			EnableMirrors:  jsonCfg.Project.EnableMirrors,
			EntrypointArgs: jsonCfg.Project.EntrypointArgs,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		Output: Output{
			Format:         jsonCfg.Output.Format,
			CheckArtifacts: jsonCfg.Output.CheckArtifacts,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors the subset of [StructuredConfig] that can be
// set from a JSON config file.
type StructuredJSONConfig struct {
	Sync struct {
		Source         string `json:"from"`
		OutputDir      string `json:"out_dir"`
		CanonicalName  string `json:"canonical_name"`
		NormalizedName string `json:"normalized_name"`
	} `json:"sync,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Sync: Sync{
			Source:         jsonCfg.Sync.Source,
			OutputDir:      jsonCfg.Sync.OutputDir,
			CanonicalName:  jsonCfg.Sync.CanonicalName,
			NormalizedName: jsonCfg.Sync.NormalizedName,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

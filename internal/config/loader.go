package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds pipeline defaults loadable from a file.
// Zero values mean "unspecified" and are replaced by built-in defaults.
type Config struct {
	ModelsDir        string `json:"models_dir" yaml:"models_dir" toml:"models_dir"`
	LlamaDir         string `json:"llama_dir" yaml:"llama_dir" toml:"llama_dir"`
	RepoURL          string `json:"repo_url" yaml:"repo_url" toml:"repo_url"`
	Branch           string `json:"branch" yaml:"branch" toml:"branch"`
	HubEndpoint      string `json:"hub_endpoint" yaml:"hub_endpoint" toml:"hub_endpoint"`
	Prompt           string `json:"prompt" yaml:"prompt" toml:"prompt"`
	CtxSize          int    `json:"ctx_size" yaml:"ctx_size" toml:"ctx_size"`
	DefaultGPULayers int    `json:"default_gpu_layers" yaml:"default_gpu_layers" toml:"default_gpu_layers"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YX-hueimie/geometric-solver/search"
)

// fileConfig is the optional YAML config file shape read via -config,
// giving operators a way to set defaults without repeating flags on
// every invocation.
type fileConfig struct {
	MaxSteps     int    `yaml:"max_steps"`
	OpenListCap  int    `yaml:"open_list_cap"`
	LogLevel     string `yaml:"log_level"`
	Strengthened bool   `yaml:"strengthened_heuristic"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		MaxSteps:    search.DefaultMaxSteps,
		OpenListCap: search.DefaultOpenListCap,
		LogLevel:    "info",
	}
}

func loadFileConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, err
	}

	return cfg, nil
}

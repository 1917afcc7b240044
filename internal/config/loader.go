package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDir is the per-user directory under the home directory.
const ConfigDir = ".linecraft"

const blocksFile = "blocks.yaml"

// LoadBlocks loads the block puzzle configuration.
// Search order: customPath -> ~/.linecraft/configs/blocks.yaml ->
// ./configs/blocks.yaml -> embedded default -> DefaultBlocksConfig.
//
// Files only need to set the keys they change; everything else keeps its
// default. A custom path that cannot be read, parsed or validated is an
// error; broken files on the search path are skipped.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlocksConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParseBlocks(data)
		if err != nil {
			return DefaultBlocksConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseBlocks(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := ParseBlocks(defaultBlocksYAML); err == nil {
		return cfg, nil
	}
	return DefaultBlocksConfig(), nil
}

// ParseBlocks decodes YAML over the defaults and validates the result.
func ParseBlocks(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBlocksConfig(), fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultBlocksConfig(), err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML, e.g. for "config dump".
func Marshal(cfg BlocksConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(blocksFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", blocksFile))
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDir, "configs", filename)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// ProjectConfigFile is looked up in the project root.
const ProjectConfigFile = ".headerdump.yaml"

// UserConfigFile returns the per-user config path under the XDG config home.
func UserConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load layers configuration for a project root: defaults, then the user
// config, then <root>/.headerdump.yaml, then explicitPath if given.
// Implicit files that do not exist are skipped; an explicit one must exist.
func Load(root, explicitPath string) (Options, error) {
	return load(UserConfigFile(), filepath.Join(root, ProjectConfigFile), explicitPath)
}

func load(userPath, projectPath, explicitPath string) (Options, error) {
	opts := Default()

	for _, path := range []string{userPath, projectPath} {
		if path == "" {
			continue
		}
		if err := mergeFile(&opts, path); err != nil && !errors.Is(err, ErrConfigNotFound) {
			return opts, err
		}
	}

	if explicitPath != "" {
		if err := mergeFile(&opts, explicitPath); err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// mergeFile decodes a YAML file on top of opts; keys absent from the file
// keep their current values.
func mergeFile(opts *Options, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

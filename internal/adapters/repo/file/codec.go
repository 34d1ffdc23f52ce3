package file

import (
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatTOML format = "toml"
	formatYAML format = "yaml"
)

func formatForPath(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unsupported file extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

func decode(path string, data []byte, v any) error {
	f, err := formatForPath(path)
	if err != nil {
		return err
	}

	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
	default:
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
	}

	return nil
}

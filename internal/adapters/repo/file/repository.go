package file

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	NetworkPathKey = "network.path"
	PuzzlesPathKey = "puzzles.path"
	ManualsPathKey = "manuals.path"
)

//go:embed defaults/*.toml
var defaults embed.FS

// source is a configured file, or an embedded default when no path is configured.
type source struct {
	path     string
	fallback string
}

func newSource(cfg *viper.Viper, key, fallback string) (source, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	configured := strings.TrimSpace(cfg.GetString(key))
	if configured == "" {
		return source{fallback: fallback}, nil
	}

	normalized, err := normalizePath(configured)
	if err != nil {
		return source{}, fmt.Errorf("%s: %w", key, err)
	}
	if _, err := formatForPath(normalized); err != nil {
		return source{}, fmt.Errorf("%s: %w", key, err)
	}

	return source{path: normalized}, nil
}

func (s source) name() string {
	if s.path != "" {
		return s.path
	}
	return s.fallback
}

func (s source) read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.path == "" {
		data, err := defaults.ReadFile(path.Join("defaults", s.fallback))
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", s.fallback, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

func (s source) decode(ctx context.Context, v any) error {
	data, err := s.read(ctx)
	if err != nil {
		return err
	}
	return decode(s.name(), data, v)
}

func normalizePath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		p = filepath.Join(homeDir, strings.TrimPrefix(p, "~"))
	}

	absPath, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".superuser"
	envPrefix  = "SUPERUSER"
	logFile    = "superuser.log"

	LogPathKey     = "log.path"
	LogLevelKey    = "log.level"
	BoardStepKey   = "board.step"
	WelcomeKey     = "board.welcome"
	SeedKey        = "game.seed"
	DefaultLevel   = "info"
	DefaultWelcome = "readme"
)

// Load reads ~/.superuser/config.toml when present and layers SUPERUSER_* environment
// variables on top. A missing config file is not an error.
func Load(cfg *viper.Viper) (*viper.Viper, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(LogPathKey, filepath.Join(dir, logFile))
	cfg.SetDefault(LogLevelKey, DefaultLevel)
	cfg.SetDefault(BoardStepKey, 1)
	cfg.SetDefault(WelcomeKey, DefaultWelcome)
	cfg.SetDefault(SeedKey, 0)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

// Dir is the per-user configuration directory.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, configDir), nil
}

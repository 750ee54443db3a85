// Package config loads runtime settings from defaults, an optional
// galactic.yaml and GALACTIC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "galactic"

// EnvPrefix namespaces environment overrides: GALACTIC_SSH_PORT sets ssh.port.
const EnvPrefix = "GALACTIC"

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // Empty logs to stderr (servers) or nowhere (local game)
}

// SSHConfig holds the SSH host settings.
type SSHConfig struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	HostKeyPath string `mapstructure:"hostKeyPath"`
}

// WebConfig holds the landing page settings.
type WebConfig struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	SSHDisplayHost string `mapstructure:"sshDisplayHost"`
}

// ScoresConfig holds leaderboard storage settings.
type ScoresConfig struct {
	Path string `mapstructure:"path"`
	Top  int    `mapstructure:"top"`
}

// GameConfig holds simulation settings.
type GameConfig struct {
	Seed int64 `mapstructure:"seed"` // 0 picks a time-based seed
}

// Settings is the full runtime configuration.
type Settings struct {
	Log    LogConfig    `mapstructure:"log"`
	SSH    SSHConfig    `mapstructure:"ssh"`
	Web    WebConfig    `mapstructure:"web"`
	Scores ScoresConfig `mapstructure:"scores"`
	Game   GameConfig   `mapstructure:"game"`
}

// Load sets default values, reads the optional config file from configDir
// and binds environment overrides. A missing file is not an error.
func Load(configDir string) error {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "")

	viper.SetDefault("ssh.host", "::")
	viper.SetDefault("ssh.port", "2222")
	viper.SetDefault("ssh.hostKeyPath", ".ssh/galactic_host_key")

	viper.SetDefault("web.host", "0.0.0.0")
	viper.SetDefault("web.port", "8080")
	viper.SetDefault("web.sshDisplayHost", "localhost")

	viper.SetDefault("scores.path", "galactic_scores.db")
	viper.SetDefault("scores.top", 10)

	viper.SetDefault("game.seed", 0)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// Current returns the loaded settings.
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

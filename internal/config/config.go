package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the decoded, validated configuration.
type Config struct {
	Endpoint string    `mapstructure:"endpoint" validate:"required,url"`
	Renderer string    `mapstructure:"renderer" validate:"oneof=lines markdown"`
	Output   string    `mapstructure:"output" validate:"oneof=plain pretty json ndjson tui"`
	UI       UIConfig  `mapstructure:"ui"`
	Log      LogConfig `mapstructure:"log"`
}

type UIConfig struct {
	Style    string `mapstructure:"style" validate:"required"`
	WordWrap int    `mapstructure:"word_wrap" validate:"gte=20"`
}

type LogConfig struct {
	File  string `mapstructure:"file" validate:"required"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// Flags are applied on top by the caller.
func Load(ctx context.Context, v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "gemchat"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gemchat"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// GEMCHAT_ENDPOINT, GEMCHAT_UI_STYLE, ...
	v.SetEnvPrefix("gemchat")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("log.file")) == "" {
		v.Set("log.file", defaultLogFile())
	}
	return nil
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// CheckConfigValidity reports every invalid option in v at once.
func CheckConfigValidity(v *viper.Viper) error {
	_, err := Decode(v)
	return err
}

// defaultLogFile resolves $XDG_STATE_HOME/gemchat/gemchat.log or ~/.local/state/gemchat/gemchat.log
func defaultLogFile() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "gemchat", "gemchat.log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "gemchat", "gemchat.log")
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "gemchat", "config.toml")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
